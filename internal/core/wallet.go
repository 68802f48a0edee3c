package core

import (
	"math"
	"strings"
	"time"
)

// Wallet type labels produced by inference.
const (
	WalletTypeCash    = "Cash"
	WalletTypeBank    = "Bank"
	WalletTypeEWallet = "E-Wallet"
)

// WalletBalance is the running signed balance of one wallet across all
// supplied rows, plus the observed Source tags and the configured or
// inferred wallet type. Rebuilt fully on every call.
type WalletBalance struct {
	Wallet  string   `json:"wallet"`
	Type    string   `json:"type"`
	Owner   string   `json:"owner"`
	Balance float64  `json:"balance"`
	Sources []string `json:"sources"`
}

// walletTypeRule is one step of the inference cascade, evaluated in order.
type walletTypeRule struct {
	name  string
	infer func(wallet string, sources []string) string
}

func (e *Engine) walletTypeRules() []walletTypeRule {
	return []walletTypeRule{
		{name: "configured-name", infer: func(wallet string, _ []string) string {
			if containsFold(wallet, e.kw.BankNames) {
				return WalletTypeBank
			}
			if containsFold(wallet, e.kw.EWalletNames) {
				return WalletTypeEWallet
			}
			return ""
		}},
		{name: "observed-sources", infer: func(_ string, sources []string) string {
			// A liquid-source match wins over an e-wallet-name match.
			for _, s := range sources {
				low := strings.ToLower(s)
				for _, term := range e.kw.LiquidSources {
					if term == "" || !strings.Contains(low, strings.ToLower(term)) {
						continue
					}
					if typ := liquidSourceType(term); typ != "" {
						return typ
					}
				}
			}
			for _, s := range sources {
				if containsFold(s, e.kw.EWalletNames) {
					return WalletTypeEWallet
				}
			}
			return ""
		}},
	}
}

// liquidSourceType maps a configured liquid-source keyword to its wallet
// type label. Unrecognized keywords still classify a wallet as liquid for
// asset sums but carry no type.
func liquidSourceType(term string) string {
	switch strings.ReplaceAll(strings.ToLower(strings.TrimSpace(term)), "-", "") {
	case "cash":
		return WalletTypeCash
	case "bank":
		return WalletTypeBank
	case "ewallet":
		return WalletTypeEWallet
	}
	return ""
}

// WalletStatus accumulates per-wallet signed balances over ALL supplied rows
// (callers pass full history for balances-as-of). Wallet types come from the
// setup table when configured, otherwise from the inference cascade; wallets
// that resist both stay untyped.
func (e *Engine) WalletStatus(all []Transaction, setup []WalletConfig) []WalletBalance {
	configured := make(map[string]WalletConfig, len(setup))
	for _, w := range setup {
		configured[strings.ToLower(strings.TrimSpace(w.Wallet))] = w
	}

	index := make(map[string]int)
	var out []WalletBalance
	for _, t := range all {
		if t.Wallet == "" {
			continue
		}
		i, ok := index[t.Wallet]
		if !ok {
			i = len(out)
			index[t.Wallet] = i
			out = append(out, WalletBalance{Wallet: t.Wallet})
		}
		out[i].Balance += t.Amount
		if t.Source != "" && !containsString(out[i].Sources, t.Source) {
			out[i].Sources = append(out[i].Sources, t.Source)
		}
		if t.Owner != "" && out[i].Owner == "" {
			out[i].Owner = t.Owner
		}
	}

	rules := e.walletTypeRules()
	for i := range out {
		if cfg, ok := configured[strings.ToLower(out[i].Wallet)]; ok {
			if cfg.Owner != "" {
				out[i].Owner = cfg.Owner
			}
			if cfg.Type != "" {
				out[i].Type = cfg.Type
				continue
			}
		}
		for _, r := range rules {
			if typ := r.infer(out[i].Wallet, out[i].Sources); typ != "" {
				out[i].Type = typ
				break
			}
		}
	}
	return out
}

// LiquidAssets sums the balances of wallets typed as cash, bank, or e-wallet.
func (e *Engine) LiquidAssets(balances []WalletBalance) float64 {
	var total float64
	for _, b := range balances {
		if containsFold(b.Type, e.kw.LiquidSources) {
			total += b.Balance
		}
	}
	return total
}

// NetWorthSnapshot is assets minus liabilities as of a cutoff date.
type NetWorthSnapshot struct {
	AsOf        time.Time `json:"asOf"`
	Assets      float64   `json:"assets"`
	Liabilities float64   `json:"liabilities"`
	NetWorth    float64   `json:"netWorth"`
}

// NetWorth replays all rows dated at or before the cutoff, building wallet
// balances under the same sign rule as projection. A row whose Source reads
// "liabilities" (or "liability") is the only liability signal; its absolute
// amount accrues regardless of sign. A non-empty owner restricts both sides
// to matching rows.
func (e *Engine) NetWorth(all []Transaction, cutoff time.Time, owner string) NetWorthSnapshot {
	snap := NetWorthSnapshot{AsOf: cutoff}
	byWallet := make(map[string]float64)
	for _, t := range all {
		if t.Date.After(cutoff) {
			continue
		}
		if owner != "" && t.Owner != owner {
			continue
		}
		if t.Wallet != "" {
			byWallet[t.Wallet] += t.Amount
		}
		src := strings.ToLower(strings.TrimSpace(t.Source))
		if src == "liabilities" || src == "liability" {
			snap.Liabilities += math.Abs(t.Amount)
		}
	}
	for _, bal := range byWallet {
		snap.Assets += bal
	}
	snap.NetWorth = snap.Assets - snap.Liabilities
	return snap
}

func containsString(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
