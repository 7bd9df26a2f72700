package domain

// Currency is a 3-letter currency code. The platform trades a fixed, closed set
// of currencies; anything outside SupportedCurrencies is rejected at validation.
type Currency string

const (
	USD Currency = "USD"
	ARS Currency = "ARS"
	BRL Currency = "BRL"
	WLD Currency = "WLD"
)

// SupportedCurrencies is the closed allow-list of tradable currencies.
var SupportedCurrencies = []Currency{USD, ARS, BRL, WLD}

// IsSupported reports whether c belongs to the platform's currency allow-list.
func (c Currency) IsSupported() bool {
	switch c {
	case USD, ARS, BRL, WLD:
		return true
	}
	return false
}

// CurrencyPair identifies a directed trading pair, e.g. USD/ARS.
type CurrencyPair struct {
	From Currency `json:"from"`
	To   Currency `json:"to"`
}

// PairUSDARS is the platform's primary pair; the dashboard rate and both
// exchange directions price against it.
var PairUSDARS = CurrencyPair{From: USD, To: ARS}

// Symbol returns the feed ticker symbol for the pair (e.g. "USDARS").
func (p CurrencyPair) Symbol() string {
	return string(p.From) + string(p.To)
}

// Inverse returns the pair with from/to swapped.
func (p CurrencyPair) Inverse() CurrencyPair {
	return CurrencyPair{From: p.To, To: p.From}
}
