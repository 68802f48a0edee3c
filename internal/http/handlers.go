package http

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"dasbor/internal/core"
	"dasbor/internal/dashboard"
	"dasbor/internal/export"
)

const buildTimeout = 30 * time.Second

func (s *Server) handleDashboard(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.Header().Set("Allow", "GET")
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	snap, err := s.buildFromRequest(r)
	if err != nil {
		s.writeBuildError(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusOK, snap)
}

func (s *Server) handleExportCSV(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.Header().Set("Allow", "GET")
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	snap, err := s.buildFromRequest(r)
	if err != nil {
		s.writeBuildError(w, r, err)
		return
	}

	filename := fmt.Sprintf("dashboard-%s-%s.csv", snap.Period, snap.GeneratedAt.Format("20060102"))
	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))

	if err := export.WriteCSV(w, snap); err != nil {
		// Headers are out by now; all we can do is log.
		slog.ErrorContext(r.Context(), "CSV export failed mid-stream", "error", err)
	}
}

type askRequest struct {
	Question string `json:"question"`
	Period   string `json:"period,omitempty"`
}

type askResponse struct {
	Answer string `json:"answer"`
	Period string `json:"period"`
}

func (s *Server) handleAsk(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.Header().Set("Allow", "POST")
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	if s.answerer == nil {
		writeError(w, r, http.StatusServiceUnavailable, "assistant not configured")
		return
	}

	var req askRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, r, http.StatusBadRequest, "invalid request body")
		return
	}
	if strings.TrimSpace(req.Question) == "" {
		writeError(w, r, http.StatusBadRequest, "question is required")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), buildTimeout)
	defer cancel()

	snap, err := s.assembler.Build(ctx, req.Period, core.Filters{}, false)
	if err != nil {
		s.writeBuildError(w, r, err)
		return
	}

	answer, err := s.answerer.Ask(ctx, snap, req.Question)
	if err != nil {
		slog.ErrorContext(r.Context(), "Assistant request failed", "error", err)
		writeError(w, r, http.StatusBadGateway, "assistant unavailable")
		return
	}

	writeJSON(w, r, http.StatusOK, askResponse{Answer: answer, Period: snap.Period})
}

func (s *Server) handleRefresh(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.Header().Set("Allow", "POST")
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	if s.publisher == nil {
		writeError(w, r, http.StatusServiceUnavailable, "refresh worker not configured")
		return
	}

	period := strings.TrimSpace(r.URL.Query().Get("period"))
	if period != "" {
		period = core.CanonicalPeriod(period)
	}

	if err := s.publisher.PublishRefresh(r.Context(), period, "api request"); err != nil {
		slog.ErrorContext(r.Context(), "Failed to publish refresh", "error", err)
		writeError(w, r, http.StatusBadGateway, "refresh could not be scheduled")
		return
	}

	writeJSON(w, r, http.StatusAccepted, map[string]string{"status": "scheduled", "period": period})
}

// buildFromRequest parses period and filters from the query string and runs
// one snapshot build under the request timeout.
func (s *Server) buildFromRequest(r *http.Request) (*dashboard.Snapshot, error) {
	ctx, cancel := context.WithTimeout(r.Context(), buildTimeout)
	defer cancel()

	period, filters := parseQuery(r)
	force := r.URL.Query().Get("refresh") == "true"
	return s.assembler.Build(ctx, period, filters, force)
}

// parseQuery maps query parameters onto the filter set. Dates use the
// 2006-01-02 form; malformed dates are ignored rather than rejected.
func parseQuery(r *http.Request) (string, core.Filters) {
	q := r.URL.Query()
	f := core.Filters{
		Wallet:      strings.TrimSpace(q.Get("wallet")),
		WalletOwner: strings.TrimSpace(q.Get("owner")),
		Purpose:     strings.TrimSpace(q.Get("purpose")),
		Category:    strings.TrimSpace(q.Get("category")),
		Subcategory: strings.TrimSpace(q.Get("subcategory")),
		Note:        strings.TrimSpace(q.Get("note")),
		Description: strings.TrimSpace(q.Get("description")),
	}
	if t, err := time.Parse("2006-01-02", q.Get("start")); err == nil {
		f.StartDate = &t
	}
	if t, err := time.Parse("2006-01-02", q.Get("end")); err == nil {
		f.EndDate = &t
	}
	return q.Get("period"), f
}

func (s *Server) writeBuildError(w http.ResponseWriter, r *http.Request, err error) {
	var missing *dashboard.MissingDataError
	switch {
	case errors.As(err, &missing):
		slog.WarnContext(r.Context(), "Dashboard source incomplete", "table", missing.Table)
		writeError(w, r, http.StatusConflict, missing.Error())
	case errors.Is(err, context.DeadlineExceeded):
		writeError(w, r, http.StatusGatewayTimeout, "dashboard build timed out")
	default:
		slog.ErrorContext(r.Context(), "Dashboard build failed", "error", err)
		writeError(w, r, http.StatusInternalServerError, "dashboard build failed")
	}
}

func writeJSON(w http.ResponseWriter, r *http.Request, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.ErrorContext(r.Context(), "Failed to encode response", "error", err)
	}
}

func writeError(w http.ResponseWriter, r *http.Request, status int, msg string) {
	writeJSON(w, r, status, map[string]string{"error": msg})
}
