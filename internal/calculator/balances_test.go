package calculator

import (
	"reflect"
	"testing"

	"github.com/expenseshare/expenseshare/internal/money"
)

func netSum(balances NetBalance) money.Money {
	sum := money.Zero
	for _, b := range balances {
		sum = sum.Add(b)
	}
	return sum
}

func TestAggregate(t *testing.T) {
	// Alice pays 90.00 split equally three ways; her own split is a no-op.
	expenses := []ExpenseForBalance{
		{
			PayerID: "alice",
			Splits: []SplitShare{
				{UserID: "alice", Amount: money.MustParse("30.00")},
				{UserID: "bob", Amount: money.MustParse("30.00")},
				{UserID: "carol", Amount: money.MustParse("30.00")},
			},
		},
	}

	balances := Aggregate(expenses, nil)

	if got := balances["alice"]; got.Cmp(money.MustParse("60.00")) != 0 {
		t.Errorf("alice = %s, want 60.00", got)
	}
	if got := balances["bob"]; got.Cmp(money.MustParse("-30.00")) != 0 {
		t.Errorf("bob = %s, want -30.00", got)
	}
	if got := balances["carol"]; got.Cmp(money.MustParse("-30.00")) != 0 {
		t.Errorf("carol = %s, want -30.00", got)
	}
	if sum := netSum(balances); !sum.IsZero() {
		t.Errorf("balances sum to %s, want 0.00 (conservation)", sum)
	}
}

func TestAggregateSettlementClearsDebt(t *testing.T) {
	// Bob owes Alice 50.00 from an expense, then settles in full.
	expenses := []ExpenseForBalance{
		{
			PayerID: "alice",
			Splits: []SplitShare{
				{UserID: "bob", Amount: money.MustParse("50.00")},
			},
		},
	}
	settlements := []SettlementForBalance{
		{PayerID: "bob", PayeeID: "alice", Amount: money.MustParse("50.00")},
	}

	balances := Aggregate(expenses, settlements)

	if got := balances["alice"]; !got.IsZero() {
		t.Errorf("alice = %s, want 0.00", got)
	}
	if got := balances["bob"]; !got.IsZero() {
		t.Errorf("bob = %s, want 0.00", got)
	}
	if transfers := Simplify(balances); len(transfers) != 0 {
		t.Errorf("expected no transfers after full settlement, got %v", transfers)
	}
}

func TestAggregateOrderIndependent(t *testing.T) {
	e1 := ExpenseForBalance{
		PayerID: "alice",
		Splits:  []SplitShare{{UserID: "bob", Amount: money.MustParse("10.00")}},
	}
	e2 := ExpenseForBalance{
		PayerID: "bob",
		Splits:  []SplitShare{{UserID: "carol", Amount: money.MustParse("7.50")}},
	}
	s1 := SettlementForBalance{PayerID: "carol", PayeeID: "bob", Amount: money.MustParse("2.50")}

	forward := Aggregate([]ExpenseForBalance{e1, e2}, []SettlementForBalance{s1})
	reversed := Aggregate([]ExpenseForBalance{e2, e1}, []SettlementForBalance{s1})

	if !reflect.DeepEqual(forward, reversed) {
		t.Errorf("aggregation depends on input order: %v vs %v", forward, reversed)
	}
	if sum := netSum(forward); !sum.IsZero() {
		t.Errorf("balances sum to %s, want 0.00", sum)
	}
}

func TestSimplify(t *testing.T) {
	tests := []struct {
		name     string
		balances map[string]string
		want     []Transfer
	}{
		{
			name:     "two debtors one creditor, largest debtor first",
			balances: map[string]string{"A": "30.00", "B": "-10.00", "C": "-20.00"},
			want: []Transfer{
				{FromUserID: "C", ToUserID: "A", Amount: money.MustParse("20.00")},
				{FromUserID: "B", ToUserID: "A", Amount: money.MustParse("10.00")},
			},
		},
		{
			name:     "debtor larger than top creditor spills to next",
			balances: map[string]string{"A": "25.00", "B": "15.00", "C": "-40.00"},
			want: []Transfer{
				{FromUserID: "C", ToUserID: "A", Amount: money.MustParse("25.00")},
				{FromUserID: "C", ToUserID: "B", Amount: money.MustParse("15.00")},
			},
		},
		{
			name:     "equal amounts tie-break by ascending user ID",
			balances: map[string]string{"B": "10.00", "A": "10.00", "C": "-10.00", "D": "-10.00"},
			want: []Transfer{
				{FromUserID: "C", ToUserID: "A", Amount: money.MustParse("10.00")},
				{FromUserID: "D", ToUserID: "B", Amount: money.MustParse("10.00")},
			},
		},
		{
			name:     "all settled yields no transfers",
			balances: map[string]string{"A": "0.00", "B": "0.00"},
			want:     nil,
		},
		{
			name:     "empty input",
			balances: nil,
			want:     nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			balances := make(NetBalance, len(tt.balances))
			for id, s := range tt.balances {
				balances[id] = money.MustParse(s)
			}

			got := Simplify(balances)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Simplify() = %v, want %v", got, tt.want)
			}

			// Same input must yield identical output.
			again := Simplify(balances)
			if !reflect.DeepEqual(got, again) {
				t.Errorf("Simplify() not deterministic: %v vs %v", got, again)
			}
		})
	}
}

// Transfer conservation: for every user with a nonzero balance, the
// transfers move exactly their net position.
func TestSimplifyConservation(t *testing.T) {
	balances := NetBalance{
		"alice": money.MustParse("37.12"),
		"bob":   money.MustParse("-12.40"),
		"carol": money.MustParse("-0.62"),
		"dave":  money.MustParse("-24.10"),
		"erin":  money.Zero,
	}

	transfers := Simplify(balances)

	for userID, balance := range balances {
		out := money.Zero
		in := money.Zero
		for _, transfer := range transfers {
			if transfer.FromUserID == userID {
				out = out.Add(transfer.Amount)
			}
			if transfer.ToUserID == userID {
				in = in.Add(transfer.Amount)
			}
		}
		if net := out.Sub(in); net.Cmp(balance.Neg()) != 0 {
			t.Errorf("%s: transfers move %s, want %s", userID, net, balance.Neg())
		}
	}
}
