package calculator

import (
	"testing"

	"github.com/expenseshare/expenseshare/internal/money"
)

func TestSummarize(t *testing.T) {
	transfers := []Transfer{
		{FromUserID: "bob", ToUserID: "alice", Amount: money.MustParse("25.00")},
		{FromUserID: "alice", ToUserID: "carol", Amount: money.MustParse("10.00")},
		{FromUserID: "dave", ToUserID: "alice", Amount: money.MustParse("5.50")},
		{FromUserID: "bob", ToUserID: "carol", Amount: money.MustParse("3.00")},
	}

	summary := Summarize("alice", transfers)

	if len(summary.Debts) != 1 || summary.Debts[0].ToUserID != "carol" {
		t.Errorf("debts = %v, want one transfer to carol", summary.Debts)
	}
	if len(summary.Credits) != 2 {
		t.Errorf("credits = %v, want two transfers to alice", summary.Credits)
	}
	if got := summary.TotalOwed; got.Cmp(money.MustParse("10.00")) != 0 {
		t.Errorf("TotalOwed = %s, want 10.00", got)
	}
	if got := summary.TotalOwing; got.Cmp(money.MustParse("30.50")) != 0 {
		t.Errorf("TotalOwing = %s, want 30.50", got)
	}
	if got := summary.NetBalance; got.Cmp(money.MustParse("20.50")) != 0 {
		t.Errorf("NetBalance = %s, want 20.50", got)
	}
	if summary.IsSettled() {
		t.Error("IsSettled() = true for a nonzero net balance")
	}
}

func TestSummarizeUninvolvedUserIsSettled(t *testing.T) {
	transfers := []Transfer{
		{FromUserID: "bob", ToUserID: "carol", Amount: money.MustParse("9.99")},
	}

	summary := Summarize("alice", transfers)

	if !summary.IsSettled() {
		t.Errorf("NetBalance = %s, want exactly 0.00", summary.NetBalance)
	}
	if len(summary.Debts) != 0 || len(summary.Credits) != 0 {
		t.Errorf("expected empty debts/credits, got %v / %v", summary.Debts, summary.Credits)
	}
}

func TestSummarizeAcrossGroups(t *testing.T) {
	// Two groups simplified independently; the overall view is their
	// concatenation, never a re-netted merge. Alice both owes and is owed
	// across groups and the two positions must not cancel into fewer
	// itemized entries.
	group1 := []Transfer{
		{FromUserID: "alice", ToUserID: "bob", Amount: money.MustParse("20.00")},
	}
	group2 := []Transfer{
		{FromUserID: "bob", ToUserID: "alice", Amount: money.MustParse("12.00")},
	}

	summary := Summarize("alice", append(append([]Transfer{}, group1...), group2...))

	if len(summary.Debts) != 1 || len(summary.Credits) != 1 {
		t.Fatalf("debts/credits = %d/%d, want 1/1 (no cross-group netting)",
			len(summary.Debts), len(summary.Credits))
	}
	if got := summary.NetBalance; got.Cmp(money.MustParse("-8.00")) != 0 {
		t.Errorf("NetBalance = %s, want -8.00", got)
	}
}

func TestBalanceBetween(t *testing.T) {
	transfers := []Transfer{
		{FromUserID: "alice", ToUserID: "bob", Amount: money.MustParse("15.00")},
		{FromUserID: "bob", ToUserID: "alice", Amount: money.MustParse("4.00")},
		{FromUserID: "carol", ToUserID: "bob", Amount: money.MustParse("99.00")},
	}

	if got := BalanceBetween(transfers, "alice", "bob"); got.Cmp(money.MustParse("11.00")) != 0 {
		t.Errorf("alice vs bob = %s, want 11.00", got)
	}
	if got := BalanceBetween(transfers, "bob", "alice"); got.Cmp(money.MustParse("-11.00")) != 0 {
		t.Errorf("bob vs alice = %s, want -11.00", got)
	}
	if got := BalanceBetween(transfers, "alice", "carol"); !got.IsZero() {
		t.Errorf("alice vs carol = %s, want 0.00", got)
	}
}
