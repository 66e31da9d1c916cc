package rates

import (
	"sort"

	"github.com/shopspring/decimal"
)

// DefaultDelivery is the delivery estimate used when a pair has no hint.
const DefaultDelivery = "2-3 hours"

// Currency describes a supported currency for display purposes.
type Currency struct {
	Code   string `json:"code"`
	Name   string `json:"name"`
	Symbol string `json:"symbol"`
}

// PairRate is a single reference rate entry, keyed as FROM-TO.
type PairRate struct {
	Pair string          `json:"pair"`
	Rate decimal.Decimal `json:"rate"`
}

// ReferenceTable is the canonical, read-only table of reference exchange
// rates and delivery-time hints. It is built once at startup and owns both
// the quoting fallback data and the display data, so the two cannot drift.
type ReferenceTable struct {
	rates      map[string]decimal.Decimal
	delivery   map[string]string
	currencies []Currency
}

// Hand-authored reference data. Rates are not guaranteed symmetric or
// transitively consistent.
var referenceRates = map[string]string{
	"USD-EUR": "0.92", "USD-GBP": "0.79", "USD-JPY": "148.32", "USD-CAD": "1.35",
	"USD-AUD": "1.52", "USD-ZAR": "18.75", "USD-NGN": "845.50", "USD-KES": "157.80",
	"USD-GHS": "11.45", "USD-EGP": "30.90", "USD-XOF": "605.80",
	"EUR-USD": "1.09", "EUR-GBP": "0.86", "EUR-ZAR": "20.45", "EUR-NGN": "920.25",
	"GBP-USD": "1.27", "GBP-EUR": "1.16", "GBP-ZAR": "23.75", "GBP-NGN": "1075.75",
}

var deliveryHints = map[string]string{
	"USD-EUR": "1-2 hours", "USD-GBP": "1-2 hours", "USD-CAD": "1-2 hours",
	"USD-AUD": "2-3 hours", "USD-JPY": "2-3 hours", "USD-ZAR": "2-3 hours",
	"USD-NGN": "1-3 hours", "USD-KES": "1-3 hours", "USD-GHS": "1-3 hours",
	"USD-EGP": "1-3 hours", "EUR-USD": "1-2 hours", "EUR-GBP": "1-2 hours",
	"EUR-ZAR": "2-3 hours", "EUR-NGN": "2-3 hours", "GBP-USD": "1-2 hours",
	"GBP-EUR": "1-2 hours", "GBP-ZAR": "2-3 hours",
}

var supportedCurrencies = []Currency{
	{Code: "USD", Name: "US Dollar", Symbol: "$"},
	{Code: "EUR", Name: "Euro", Symbol: "€"},
	{Code: "GBP", Name: "British Pound", Symbol: "£"},
	{Code: "JPY", Name: "Japanese Yen", Symbol: "¥"},
	{Code: "CAD", Name: "Canadian Dollar", Symbol: "C$"},
	{Code: "AUD", Name: "Australian Dollar", Symbol: "A$"},
	{Code: "ZAR", Name: "South African Rand", Symbol: "R"},
	{Code: "NGN", Name: "Nigerian Naira", Symbol: "₦"},
	{Code: "KES", Name: "Kenyan Shilling", Symbol: "KSh"},
	{Code: "GHS", Name: "Ghanaian Cedi", Symbol: "GH₵"},
	{Code: "EGP", Name: "Egyptian Pound", Symbol: "E£"},
	{Code: "XOF", Name: "West African CFA Franc", Symbol: "CFA"},
}

// NewReferenceTable builds the canonical reference table from the static data.
func NewReferenceTable() *ReferenceTable {
	t := &ReferenceTable{
		rates:      make(map[string]decimal.Decimal, len(referenceRates)),
		delivery:   deliveryHints,
		currencies: supportedCurrencies,
	}
	for pair, rate := range referenceRates {
		t.rates[pair] = decimal.RequireFromString(rate)
	}
	return t
}

// Rate returns the reference rate for a pair. Identity pairs always resolve
// to 1; unknown pairs return ok=false and the caller applies its default.
func (t *ReferenceTable) Rate(from, to string) (decimal.Decimal, bool) {
	if from == to {
		return decimal.NewFromInt(1), true
	}
	r, ok := t.rates[from+"-"+to]
	return r, ok
}

// Delivery returns the delivery-time hint for a pair, or DefaultDelivery
// when the pair has no hint. The value is purely presentational.
func (t *ReferenceTable) Delivery(from, to string) string {
	if d, ok := t.delivery[from+"-"+to]; ok {
		return d
	}
	return DefaultDelivery
}

// IsSupported reports whether the currency code belongs to the closed set
// of currencies present in the reference data.
func (t *ReferenceTable) IsSupported(code string) bool {
	for _, c := range t.currencies {
		if c.Code == code {
			return true
		}
	}
	return false
}

// Currencies returns the supported currency metadata for display.
func (t *ReferenceTable) Currencies() []Currency {
	out := make([]Currency, len(t.currencies))
	copy(out, t.currencies)
	return out
}

// Pairs returns all reference rate entries sorted by pair key.
func (t *ReferenceTable) Pairs() []PairRate {
	out := make([]PairRate, 0, len(t.rates))
	for pair, rate := range t.rates {
		out = append(out, PairRate{Pair: pair, Rate: rate})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Pair < out[j].Pair })
	return out
}
