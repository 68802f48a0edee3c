package core

import (
	"regexp"
	"strings"
)

// Keywords holds the pattern lists driving the classification heuristics.
// They are configuration data rather than inline literals so tests can swap
// them; DefaultKeywords mirrors the sheet conventions this system grew up
// with. Note: DisguisedSavingSources exists for symmetry with SavingSources
// but no reducer consults it today. The intended behavior is ambiguous, so
// the list stays as configuration rather than being silently repurposed.
type Keywords struct {
	// SavingTerms are matched on word boundaries against Category and
	// Subcategory to spot expense rows that are really savings contributions.
	SavingTerms []string

	// SavingSources are exact (trimmed, case-folded) Source values whose
	// positive rows count as savings.
	SavingSources []string

	// DisguisedSavingSources: defined, never consulted. See type comment.
	DisguisedSavingSources []string

	// LiquidSources classify a wallet's observed sources as cash/bank/e-wallet.
	LiquidSources []string

	// BankNames and EWalletNames drive wallet-type inference from the wallet
	// name itself.
	BankNames    []string
	EWalletNames []string

	// LiabilityTerms are substring-matched against Source, Category and
	// Subcategory to detect liability rows.
	LiabilityTerms []string
}

// DefaultKeywords returns the pattern lists used in production.
func DefaultKeywords() Keywords {
	return Keywords{
		SavingTerms: []string{
			"tabungan", "menabung", "saving", "savings", "autosave",
			"investment", "investasi", "deposito", "reksadana", "mutualfund",
			"saham", "stock", "equity", "obligasi", "bond", "pensiun",
			"retirement", "emergencyfund", "aset", "asset", "capital",
		},
		SavingSources: []string{
			"saving/investment", "other asset", "investment", "otherasset",
		},
		DisguisedSavingSources: []string{
			"saving/investment", "investment",
		},
		LiquidSources: []string{"cash", "bank", "e-wallet", "ewallet"},
		BankNames: []string{
			"bca", "bni", "bri", "mandiri", "cimb", "permata", "jago",
			"seabank", "btn", "danamon", "bank",
		},
		EWalletNames: []string{
			"gopay", "ovo", "dana", "shopeepay", "linkaja", "ewallet", "e-wallet",
		},
		LiabilityTerms: []string{
			"debt", "loan", "credit", "installment", "mortgage",
			"hutang", "utang", "pinjaman", "cicilan", "kredit", "angsuran",
		},
	}
}

// savingPattern compiles the word-boundary matcher for SavingTerms.
func (k Keywords) savingPattern() *regexp.Regexp {
	terms := make([]string, len(k.SavingTerms))
	for i, t := range k.SavingTerms {
		terms[i] = regexp.QuoteMeta(t)
	}
	return regexp.MustCompile(`(?i)\b(` + strings.Join(terms, "|") + `)\b`)
}

// containsFold reports whether s contains any of the terms, case-insensitively.
func containsFold(s string, terms []string) bool {
	s = strings.ToLower(s)
	for _, t := range terms {
		if t != "" && strings.Contains(s, strings.ToLower(t)) {
			return true
		}
	}
	return false
}

// equalsFoldAny reports whether the trimmed, case-folded s equals any term.
func equalsFoldAny(s string, terms []string) bool {
	s = strings.ToLower(strings.TrimSpace(s))
	for _, t := range terms {
		if s == strings.ToLower(strings.TrimSpace(t)) {
			return true
		}
	}
	return false
}
