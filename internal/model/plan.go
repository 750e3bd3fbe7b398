package model

// Plan is a tier on the premium page. Nothing is ever charged.
type Plan struct {
	Name         string   `json:"name"`
	PriceMonthly int      `json:"priceMonthly"` // whole dollars
	Features     []string `json:"features"`
	Highlighted  bool     `json:"highlighted,omitempty"`
}
