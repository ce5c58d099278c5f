package calculator

import (
	"testing"

	"github.com/expenseshare/expenseshare/internal/money"
)

func sumAllocations(allocations []Allocation) money.Money {
	sum := money.Zero
	for _, a := range allocations {
		sum = sum.Add(a.Amount)
	}
	return sum
}

func TestAllocateEqual(t *testing.T) {
	tests := []struct {
		name        string
		total       string
		userIDs     []string
		wantAmounts []string
		wantErr     bool
	}{
		{
			name:        "exact division no residue",
			total:       "1500.00",
			userIDs:     []string{"alice", "bob", "carol"},
			wantAmounts: []string{"500.00", "500.00", "500.00"},
		},
		{
			name:        "residue lands on last participant",
			total:       "100.00",
			userIDs:     []string{"alice", "bob", "carol"},
			wantAmounts: []string{"33.33", "33.33", "33.34"},
		},
		{
			name:        "half-up share overshoots so last absorbs negative residue",
			total:       "0.05",
			userIDs:     []string{"alice", "bob"},
			wantAmounts: []string{"0.03", "0.02"},
		},
		{
			name:        "single participant takes everything",
			total:       "42.37",
			userIDs:     []string{"alice"},
			wantAmounts: []string{"42.37"},
		},
		{
			name:    "empty participants rejected",
			total:   "10.00",
			userIDs: nil,
			wantErr: true,
		},
		{
			name:    "duplicate participants rejected",
			total:   "10.00",
			userIDs: []string{"alice", "alice"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			total := money.MustParse(tt.total)
			allocations, err := AllocateEqual(total, tt.userIDs)
			if (err != nil) != tt.wantErr {
				t.Fatalf("AllocateEqual() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				if !IsValidation(err) {
					t.Errorf("expected ValidationError, got %T", err)
				}
				return
			}

			if len(allocations) != len(tt.wantAmounts) {
				t.Fatalf("got %d allocations, want %d", len(allocations), len(tt.wantAmounts))
			}
			for i, want := range tt.wantAmounts {
				if allocations[i].UserID != tt.userIDs[i] {
					t.Errorf("allocation %d user = %s, want %s", i, allocations[i].UserID, tt.userIDs[i])
				}
				if got := allocations[i].Amount.String(); got != want {
					t.Errorf("allocation %d amount = %s, want %s", i, got, want)
				}
			}
			if sum := sumAllocations(allocations); sum.Cmp(total) != 0 {
				t.Errorf("allocations sum to %s, want %s", sum, total)
			}
		})
	}
}

func TestAllocateExact(t *testing.T) {
	tests := []struct {
		name    string
		total   string
		amounts map[string]string
		wantErr bool
	}{
		{
			name:    "sum matches total",
			total:   "120.00",
			amounts: map[string]string{"john": "50.00", "sara": "40.00", "mike": "30.00"},
		},
		{
			name:    "sum one short rejected",
			total:   "120.00",
			amounts: map[string]string{"john": "50.00", "sara": "40.00", "mike": "29.00"},
			wantErr: true,
		},
		{
			name:    "one cent off rejected",
			total:   "100.00",
			amounts: map[string]string{"alice": "50.00", "bob": "49.99"},
			wantErr: true,
		},
		{
			name:    "empty amounts rejected",
			total:   "100.00",
			amounts: nil,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			total := money.MustParse(tt.total)
			amounts := make(map[string]money.Money, len(tt.amounts))
			for id, s := range tt.amounts {
				amounts[id] = money.MustParse(s)
			}

			allocations, err := AllocateExact(total, amounts)
			if (err != nil) != tt.wantErr {
				t.Fatalf("AllocateExact() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				if !IsValidation(err) {
					t.Errorf("expected ValidationError, got %T", err)
				}
				return
			}

			if len(allocations) != len(tt.amounts) {
				t.Fatalf("got %d allocations, want %d", len(allocations), len(tt.amounts))
			}
			for _, a := range allocations {
				if want := amounts[a.UserID]; a.Amount.Cmp(want) != 0 {
					t.Errorf("%s amount = %s, want %s (verbatim)", a.UserID, a.Amount, want)
				}
			}
			if sum := sumAllocations(allocations); sum.Cmp(total) != 0 {
				t.Errorf("allocations sum to %s, want %s", sum, total)
			}
		})
	}
}

func TestAllocatePercentage(t *testing.T) {
	tests := []struct {
		name        string
		total       string
		percentages map[string]string
		want        map[string]string
		wantErr     bool
	}{
		{
			name:        "thirds with explicit residue percentage",
			total:       "100.00",
			percentages: map[string]string{"alice": "33.33", "bob": "33.33", "carol": "33.34"},
			want:        map[string]string{"alice": "33.33", "bob": "33.33", "carol": "33.34"},
		},
		{
			name:        "even thirds leave residue for last user",
			total:       "100.00",
			percentages: map[string]string{"a": "33.34", "b": "33.33", "c": "33.33"},
			// a: 33.34, b: 33.33, c (last by ID) absorbs: 100 - 66.67 = 33.33
			want: map[string]string{"a": "33.34", "b": "33.33", "c": "33.33"},
		},
		{
			name:        "fifty fifty",
			total:       "99.99",
			percentages: map[string]string{"alice": "50", "bob": "50"},
			// alice: round(49.995) = 50.00, bob absorbs: 49.99
			want: map[string]string{"alice": "50.00", "bob": "49.99"},
		},
		{
			name:        "percentages must sum to 100",
			total:       "100.00",
			percentages: map[string]string{"alice": "60", "bob": "50"},
			wantErr:     true,
		},
		{
			name:        "empty percentages rejected",
			total:       "100.00",
			percentages: nil,
			wantErr:     true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			total := money.MustParse(tt.total)
			percentages := make(map[string]money.Money, len(tt.percentages))
			for id, s := range tt.percentages {
				percentages[id] = money.MustParse(s)
			}

			allocations, err := AllocatePercentage(total, percentages)
			if (err != nil) != tt.wantErr {
				t.Fatalf("AllocatePercentage() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				if !IsValidation(err) {
					t.Errorf("expected ValidationError, got %T", err)
				}
				return
			}

			for _, a := range allocations {
				if want := tt.want[a.UserID]; a.Amount.String() != want {
					t.Errorf("%s amount = %s, want %s", a.UserID, a.Amount, want)
				}
				if a.Percentage == nil {
					t.Errorf("%s missing percentage", a.UserID)
				} else if a.Percentage.Cmp(percentages[a.UserID]) != 0 {
					t.Errorf("%s percentage = %s, want %s (stated, not back-computed)",
						a.UserID, a.Percentage, percentages[a.UserID])
				}
			}
			if sum := sumAllocations(allocations); sum.Cmp(total) != 0 {
				t.Errorf("allocations sum to %s, want %s", sum, total)
			}
		})
	}
}

// The sum invariant must hold for every policy regardless of how awkward
// the division is.
func TestAllocationSumInvariant(t *testing.T) {
	totals := []string{"0.01", "0.10", "1.00", "99.99", "123.45", "1000.01"}
	users := []string{"a", "b", "c", "d", "e", "f", "g"}

	for _, s := range totals {
		total := money.MustParse(s)
		for n := 1; n <= len(users); n++ {
			allocations, err := AllocateEqual(total, users[:n])
			if err != nil {
				t.Fatalf("AllocateEqual(%s, %d users) failed: %v", s, n, err)
			}
			if sum := sumAllocations(allocations); sum.Cmp(total) != 0 {
				t.Errorf("AllocateEqual(%s, %d users): sum %s != total", s, n, sum)
			}
		}
	}
}
