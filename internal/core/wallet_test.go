package core

import (
	"testing"
	"time"
)

func TestWalletStatusBalances(t *testing.T) {
	e := NewDefaultEngine()
	all := []Transaction{
		tx("2024-01-01", "income", 1000, withWallet("BCA", "Andi")),
		tx("2024-02-01", "expense", 300, withWallet("BCA", "Andi")),
		tx("2024-02-15", "income", 50, withWallet("GoPay", "Andi")),
	}
	balances := e.WalletStatus(all, nil)
	if len(balances) != 2 {
		t.Fatalf("wallet count = %d", len(balances))
	}
	if balances[0].Wallet != "BCA" || balances[0].Balance != 700 {
		t.Fatalf("BCA = %+v", balances[0])
	}
	if balances[1].Wallet != "GoPay" || balances[1].Balance != 50 {
		t.Fatalf("GoPay = %+v", balances[1])
	}
}

func TestWalletTypeInference(t *testing.T) {
	e := NewDefaultEngine()
	cases := []struct {
		name    string
		all     []Transaction
		setup   []WalletConfig
		want    string
	}{
		{
			name: "configured type wins",
			all:  []Transaction{tx("2024-01-01", "income", 10, withWallet("Kas Kecil", ""))},
			setup: []WalletConfig{{Wallet: "Kas Kecil", Type: "Petty Cash"}},
			want: "Petty Cash",
		},
		{
			name: "bank name pattern",
			all:  []Transaction{tx("2024-01-01", "income", 10, withWallet("BCA Tahapan", ""))},
			want: WalletTypeBank,
		},
		{
			name: "e-wallet name pattern",
			all:  []Transaction{tx("2024-01-01", "income", 10, withWallet("OVO Cash", ""))},
			want: WalletTypeEWallet,
		},
		{
			name: "liquid source beats e-wallet name",
			all: []Transaction{
				tx("2024-01-01", "income", 10, withWallet("Dompet Utama", ""), withSource("Cash")),
				tx("2024-01-02", "income", 10, withWallet("Dompet Utama", ""), withSource("GoPay")),
			},
			want: WalletTypeCash,
		},
		{
			name: "e-wallet source fallback",
			all:  []Transaction{tx("2024-01-01", "income", 10, withWallet("Dompet Lain", ""), withSource("GoPay"))},
			want: WalletTypeEWallet,
		},
		{
			name: "no signal stays blank",
			all:  []Transaction{tx("2024-01-01", "income", 10, withWallet("Misc", ""), withSource("Salary"))},
			want: "",
		},
	}
	for _, tc := range cases {
		balances := e.WalletStatus(tc.all, tc.setup)
		if len(balances) != 1 {
			t.Fatalf("%s: wallet count = %d", tc.name, len(balances))
		}
		if balances[0].Type != tc.want {
			t.Fatalf("%s: type = %q, want %q", tc.name, balances[0].Type, tc.want)
		}
	}
}

func TestWalletTypeInferenceUsesConfiguredSources(t *testing.T) {
	all := []Transaction{
		tx("2024-01-01", "income", 10, withWallet("Dompet", ""), withSource("Bank Transfer")),
	}

	kw := DefaultKeywords()
	kw.LiquidSources = nil
	balances := NewEngine(kw).WalletStatus(all, nil)
	if got := balances[0].Type; got != "" {
		t.Fatalf("type = %q, want no inference with an empty liquid-source list", got)
	}

	kw.LiquidSources = []string{"bank"}
	balances = NewEngine(kw).WalletStatus(all, nil)
	if got := balances[0].Type; got != WalletTypeBank {
		t.Fatalf("type = %q, want %q from the configured source keyword", got, WalletTypeBank)
	}
}

func TestLiquidAssets(t *testing.T) {
	e := NewDefaultEngine()
	balances := []WalletBalance{
		{Wallet: "BCA", Type: "Bank", Balance: 700},
		{Wallet: "GoPay", Type: "E-Wallet", Balance: 50},
		{Wallet: "Rumah", Type: "Property", Balance: 100000},
		{Wallet: "Laci", Type: "cash", Balance: 25},
	}
	if got := e.LiquidAssets(balances); got != 775 {
		t.Fatalf("liquid assets = %v, want 775", got)
	}
}

func TestNetWorthReplay(t *testing.T) {
	e := NewDefaultEngine()
	all := []Transaction{
		tx("2024-01-10", "income", 1000, withWallet("BCA", "Andi")),
		tx("2024-02-10", "expense", 200, withWallet("BCA", "Andi")),
		tx("2024-02-20", "expense", 300, withWallet("BCA", "Andi"), withSource("Liabilities")),
		tx("2024-03-05", "income", 500, withWallet("BCA", "Andi")),
	}
	cutoff := time.Date(2024, 2, 28, 23, 59, 59, 0, time.UTC)
	snap := e.NetWorth(all, cutoff, "")
	if snap.Assets != 500 {
		t.Fatalf("assets = %v, want 500", snap.Assets)
	}
	if snap.Liabilities != 300 {
		t.Fatalf("liabilities = %v, want 300", snap.Liabilities)
	}
	if snap.NetWorth != 200 {
		t.Fatalf("net worth = %v, want 200", snap.NetWorth)
	}
}

func TestNetWorthMatchesWalletBalances(t *testing.T) {
	e := NewDefaultEngine()
	all := []Transaction{
		tx("2024-01-10", "income", 1000, withWallet("BCA", "Andi")),
		tx("2024-01-20", "expense", 150, withWallet("GoPay", "Andi")),
		tx("2024-02-01", "income", 75, withWallet("GoPay", "Budi")),
	}
	cutoff := time.Date(2024, 12, 31, 0, 0, 0, 0, time.UTC)
	snap := e.NetWorth(all, cutoff, "")

	var sum float64
	for _, b := range e.WalletStatus(all, nil) {
		sum += b.Balance
	}
	if snap.Assets != sum {
		t.Fatalf("assets %v != wallet balance sum %v", snap.Assets, sum)
	}
}

func TestNetWorthOwnerFilter(t *testing.T) {
	e := NewDefaultEngine()
	all := []Transaction{
		tx("2024-01-10", "income", 1000, withWallet("BCA", "Andi")),
		tx("2024-01-11", "income", 400, withWallet("OVO", "Budi")),
		tx("2024-01-12", "expense", 100, withWallet("OVO", "Budi"), withSource("Liability")),
	}
	cutoff := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	snap := e.NetWorth(all, cutoff, "Budi")
	if snap.Assets != 300 || snap.Liabilities != 100 || snap.NetWorth != 200 {
		t.Fatalf("owner-scoped snapshot = %+v", snap)
	}
}
