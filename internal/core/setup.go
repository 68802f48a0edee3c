package core

import "time"

// WalletConfig is one row of the Wallet Setup table.
type WalletConfig struct {
	Wallet string
	Type   string
	Owner  string
}

// CategoryConfig is one row of the Category Setup table. Budget carries the
// per-subcategory budget amount; Ratio tags the row for ratio breakdowns.
type CategoryConfig struct {
	Category    string
	Subcategory string
	Budget      float64
	Ratio       string
}

// GoalConfig is one row of the Goals Setup table. A zero Deadline means the
// goal has no deadline.
type GoalConfig struct {
	Name        string
	Owner       string
	TotalNeeded float64
	Deadline    time.Time
}

// ScheduledPayment is one row of the Scheduled table. Its columns are looked
// up case-insensitively because that sheet is maintained by hand.
type ScheduledPayment struct {
	Status      string
	NextDueDate time.Time
	Description string
	Category    string
	Amount      float64
	Wallet      string
	Owner       string
}

// DecodeWalletSetup reads the Wallet Setup table. Rows with an empty wallet
// name are skipped.
func DecodeWalletSetup(t RawTable) []WalletConfig {
	d := NewRowDecoder(t.Header)
	colWallet := d.Column("Wallet")
	colType := d.Column("Wallet Type")
	colOwner := d.Column("Wallet Owner")

	var out []WalletConfig
	for _, row := range t.Rows {
		w := d.String(row, colWallet)
		if w == "" {
			continue
		}
		out = append(out, WalletConfig{
			Wallet: w,
			Type:   d.String(row, colType),
			Owner:  d.String(row, colOwner),
		})
	}
	return out
}

// DecodeCategorySetup reads the Category Setup table in sheet order.
func DecodeCategorySetup(t RawTable) []CategoryConfig {
	d := NewRowDecoder(t.Header)
	colCat := d.Column("Category")
	colSub := d.Column("Subcategory")
	colBudget := d.Column("Budget Subcategory")
	colRatio := d.Column("Ratios")

	var out []CategoryConfig
	for _, row := range t.Rows {
		cat := d.String(row, colCat)
		if cat == "" {
			continue
		}
		out = append(out, CategoryConfig{
			Category:    cat,
			Subcategory: d.String(row, colSub),
			Budget:      d.Number(row, colBudget),
			Ratio:       d.String(row, colRatio),
		})
	}
	return out
}

// DecodeGoalSetup reads the Goals Setup table. Rows without a goal name are
// skipped; an unparseable deadline leaves the goal deadline-less rather than
// failing.
func DecodeGoalSetup(t RawTable) []GoalConfig {
	d := NewRowDecoder(t.Header)
	colName := d.Column("Goals")
	colOwner := d.Column("Goal Owner")
	colNeeded := d.Column("Nominal Needed")
	colDeadline := d.Column("Deadline")

	var out []GoalConfig
	for _, row := range t.Rows {
		name := d.String(row, colName)
		if name == "" {
			continue
		}
		g := GoalConfig{
			Name:        name,
			Owner:       d.String(row, colOwner),
			TotalNeeded: d.Number(row, colNeeded),
		}
		if deadline, ok := d.Date(row, colDeadline); ok {
			g.Deadline = deadline
		}
		out = append(out, g)
	}
	return out
}

// DecodeScheduled reads the Scheduled table with case-insensitive headers.
func DecodeScheduled(t RawTable) []ScheduledPayment {
	d := NewRowDecoder(t.Header)
	colStatus := d.ColumnFold("Status")
	colDue := d.ColumnFold("NextDueDate")
	colDesc := d.ColumnFold("Description")
	colCat := d.ColumnFold("Category")
	colAmount := d.ColumnFold("Amount")
	colWallet := d.ColumnFold("Wallet")
	colOwner := d.ColumnFold("Wallet Owner")

	var out []ScheduledPayment
	for _, row := range t.Rows {
		p := ScheduledPayment{
			Status:      d.String(row, colStatus),
			Description: d.String(row, colDesc),
			Category:    d.String(row, colCat),
			Amount:      d.Number(row, colAmount),
			Wallet:      d.String(row, colWallet),
			Owner:       d.String(row, colOwner),
		}
		if due, ok := d.Date(row, colDue); ok {
			p.NextDueDate = due
		}
		if p.Status == "" && p.Description == "" && p.Amount == 0 {
			continue
		}
		out = append(out, p)
	}
	return out
}
