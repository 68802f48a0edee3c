package core

import "regexp"

// Engine is the family of pure reducers over projected transactions. It
// carries only compiled keyword configuration; no state survives between
// calls, and every reducer recomputes fully from its inputs.
type Engine struct {
	kw     Keywords
	saving *regexp.Regexp
}

// NewEngine compiles the keyword configuration once for all reducers.
func NewEngine(kw Keywords) *Engine {
	return &Engine{kw: kw, saving: kw.savingPattern()}
}

// NewDefaultEngine is NewEngine with DefaultKeywords.
func NewDefaultEngine() *Engine { return NewEngine(DefaultKeywords()) }

// isDisguisedSaving reports whether an expense-typed transaction is really a
// savings contribution, judged by its category or subcategory.
func (e *Engine) isDisguisedSaving(t Transaction) bool {
	if !isExpenseType(t) {
		return false
	}
	return e.saving.MatchString(t.Category) || e.saving.MatchString(t.Subcategory)
}
