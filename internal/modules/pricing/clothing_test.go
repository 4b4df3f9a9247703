package pricing

import "testing"

func TestClothingEstimator_Estimate(t *testing.T) {
	tests := []struct {
		name string
		item string
		want float64
	}{
		{name: "empty falls back to default", item: "", want: 40},
		{name: "dress", item: "Dress repair", want: 50},
		{name: "upper case", item: "DRESS", want: 50},
		{name: "shirt", item: "shirt sleeves", want: 20},
		{name: "pants", item: "Pants taken in", want: 30},
		{name: "jacket", item: "Jacket alteration", want: 60},
		{name: "skirt", item: "skirt hem", want: 25},
		{name: "first match in table order wins", item: "my shirt-jacket combo", want: 20},
		{name: "order beats position in text", item: "jacket over a dress", want: 50},
		{name: "keyword inside a word", item: "overskirts", want: 25},
		{name: "no match", item: "sweater", want: 40},
		{name: "jeans are not pants", item: "Jeans hemming", want: 40},
	}

	e := NewClothingEstimator(DefaultPriceTable())

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := e.Estimate(tt.item); got != tt.want {
				t.Errorf("Estimate(%q) = %v, want %v", tt.item, got, tt.want)
			}
		})
	}
}

func TestClothingEstimator_EmptyTable(t *testing.T) {
	e := NewClothingEstimator(PriceTable{DefaultPrice: 40})
	if got := e.Estimate("dress"); got != 40 {
		t.Errorf("Estimate() = %v, want 40", got)
	}
}

func TestClothingEstimator_EmptyKeywordSkipped(t *testing.T) {
	table := PriceTable{
		Entries:      []PriceEntry{{Keyword: "", Price: 1}, {Keyword: "coat", Price: 70}},
		DefaultPrice: 40,
	}
	e := NewClothingEstimator(table)

	if got := e.Estimate("sweater"); got != 40 {
		t.Errorf("Estimate(sweater) = %v, want 40", got)
	}
	if got := e.Estimate("Winter Coat"); got != 70 {
		t.Errorf("Estimate(Winter Coat) = %v, want 70", got)
	}
}
