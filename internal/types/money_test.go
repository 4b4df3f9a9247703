package types

import (
	"math"
	"testing"
)

func TestMoney_String(t *testing.T) {
	tests := []struct {
		name  string
		money Money
		want  string
	}{
		{"whole pounds", GBP(74), "£74.00"},
		{"rounds half up", GBP(19.125), "£19.13"},
		{"rounds down", GBP(40.254), "£40.25"},
		{"zero", GBP(0), "£0.00"},
		{"empty currency defaults to pounds", Money{Amount: 5}, "£5.00"},
		{"other currency", Money{Amount: 12.5, Currency: "EUR"}, "12.50 EUR"},
		{"positive infinity", GBP(math.Inf(1)), "£+Inf"},
		{"NaN", GBP(math.NaN()), "£NaN"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.money.String(); got != tt.want {
				t.Errorf("String() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestNewID_Unique(t *testing.T) {
	a, b := NewID(), NewID()
	if a == "" || a == b {
		t.Errorf("NewID() returned %q and %q", a, b)
	}
}
