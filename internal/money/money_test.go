package money

import (
	"encoding/json"
	"testing"
)

func TestParse(t *testing.T) {
	tests := []struct {
		input     string
		wantCents int64
		wantErr   bool
	}{
		{input: "12.34", wantCents: 1234},
		{input: "100", wantCents: 10000},
		{input: "0.05", wantCents: 5},
		{input: ".5", wantCents: 50},
		{input: "-0.05", wantCents: -5},
		{input: "-12.34", wantCents: -1234},
		{input: "7.5", wantCents: 750},
		{input: "0", wantCents: 0},
		{input: "12.345", wantErr: true},
		{input: "12.", wantErr: true},
		{input: "abc", wantErr: true},
		{input: "", wantErr: true},
		{input: "12.3x", wantErr: true},
		// signs are only valid as the leading character
		{input: "12.-5", wantErr: true},
		{input: "12.+5", wantErr: true},
		{input: "--5", wantErr: true},
		{input: "+-5", wantErr: true},
		{input: "1-2", wantErr: true},
		// whole part would overflow int64 cents
		{input: "92233720368547758.08", wantErr: true},
		{input: "99999999999999999999", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			m, err := Parse(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Parse(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if !tt.wantErr && m.Cents() != tt.wantCents {
				t.Errorf("Parse(%q) = %d cents, want %d", tt.input, m.Cents(), tt.wantCents)
			}
		})
	}
}

func TestString(t *testing.T) {
	tests := []struct {
		cents int64
		want  string
	}{
		{cents: 1234, want: "12.34"},
		{cents: 5, want: "0.05"},
		{cents: -5, want: "-0.05"},
		{cents: -1234, want: "-12.34"},
		{cents: 0, want: "0.00"},
		{cents: 150000, want: "1500.00"},
	}

	for _, tt := range tests {
		if got := FromCents(tt.cents).String(); got != tt.want {
			t.Errorf("FromCents(%d).String() = %q, want %q", tt.cents, got, tt.want)
		}
	}
}

func TestDivShare(t *testing.T) {
	tests := []struct {
		total string
		n     int64
		want  string
	}{
		{total: "1500.00", n: 3, want: "500.00"},
		{total: "100.00", n: 3, want: "33.33"},
		{total: "0.10", n: 3, want: "0.03"},
		{total: "0.05", n: 2, want: "0.03"}, // 2.5 cents rounds up
		{total: "-100.00", n: 3, want: "-33.33"},
	}

	for _, tt := range tests {
		got := MustParse(tt.total).DivShare(tt.n)
		if got.String() != tt.want {
			t.Errorf("DivShare(%s, %d) = %s, want %s", tt.total, tt.n, got, tt.want)
		}
	}
}

func TestMulPercent(t *testing.T) {
	tests := []struct {
		total string
		pct   string
		want  string
	}{
		{total: "100.00", pct: "33.33", want: "33.33"},
		{total: "100.00", pct: "50", want: "50.00"},
		{total: "10.00", pct: "33.33", want: "3.33"},
		{total: "0.01", pct: "50", want: "0.01"}, // 0.5 cent rounds up
		{total: "99.99", pct: "33.33", want: "33.33"},
	}

	for _, tt := range tests {
		got := MustParse(tt.total).MulPercent(MustParse(tt.pct))
		if got.String() != tt.want {
			t.Errorf("%s * %s%% = %s, want %s", tt.total, tt.pct, got, tt.want)
		}
	}
}

func TestArithmeticIsExact(t *testing.T) {
	a := MustParse("0.10")
	b := MustParse("0.20")
	if got := a.Add(b); got.Cmp(MustParse("0.30")) != 0 {
		t.Errorf("0.10 + 0.20 = %s, want 0.30", got)
	}
	if got := b.Sub(a); got.Cmp(a) != 0 {
		t.Errorf("0.20 - 0.10 = %s, want 0.10", got)
	}
	if got := a.Neg().Add(a); !got.IsZero() {
		t.Errorf("-0.10 + 0.10 = %s, want 0.00", got)
	}
}

func TestJSONRoundTrip(t *testing.T) {
	type wrapper struct {
		Amount Money `json:"amount"`
	}

	in := wrapper{Amount: MustParse("-42.07")}
	data, err := json.Marshal(in)
	if err != nil {
		t.Fatalf("Marshal failed: %v", err)
	}
	if string(data) != `{"amount":"-42.07"}` {
		t.Errorf("Marshal = %s, want {\"amount\":\"-42.07\"}", data)
	}

	var out wrapper
	if err := json.Unmarshal(data, &out); err != nil {
		t.Fatalf("Unmarshal failed: %v", err)
	}
	if out.Amount.Cmp(in.Amount) != 0 {
		t.Errorf("round trip = %s, want %s", out.Amount, in.Amount)
	}
}
