package pricing

import (
	"math"
	"strconv"
	"strings"
)

const (
	DefaultEntryPriceUSD = 5.0
	DefaultTaxRate       = 0.16
	// FallbackRate is used whenever no positive exchange rate is available.
	FallbackRate = 122.17
)

type Input struct {
	Entries           int
	Exempt            int
	AreaIDs           []string
	UnitEntryPriceUSD float64
	ExchangeRate      float64
	TaxRate           float64
}

type Quote struct {
	TotalPeople   int
	EntriesUSD    float64
	AreasUSD      float64
	SubtotalUSD   float64
	ExchangeRate  float64
	SubtotalLocal float64
	TaxLocal      float64
	TotalLocal    float64
	Areas         []Area
}

// Calculate is pure; the tax applies to the converted local subtotal.
func Calculate(catalog Catalog, in Input) Quote {
	areas := catalog.Select(in.AreaIDs)

	var areasUSD float64
	for _, a := range areas {
		areasUSD += a.PriceUSD
	}

	entriesUSD := float64(in.Entries) * in.UnitEntryPriceUSD
	subtotalUSD := entriesUSD + areasUSD
	rate := EffectiveRate(in.ExchangeRate)
	subtotalLocal := subtotalUSD * rate
	taxLocal := subtotalLocal * in.TaxRate

	return Quote{
		TotalPeople:   in.Entries + in.Exempt,
		EntriesUSD:    entriesUSD,
		AreasUSD:      areasUSD,
		SubtotalUSD:   subtotalUSD,
		ExchangeRate:  rate,
		SubtotalLocal: subtotalLocal,
		TaxLocal:      taxLocal,
		TotalLocal:    subtotalLocal + taxLocal,
		Areas:         areas,
	}
}

func EffectiveRate(rate float64) float64 {
	if rate > 0 && !math.IsInf(rate, 0) {
		return rate
	}
	return FallbackRate
}

func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}

func FormatAmount(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}

// FormatRate renders a rate the way the BCV publishes it: 8 decimals, comma separator.
func FormatRate(rate float64) string {
	return strings.Replace(strconv.FormatFloat(rate, 'f', 8, 64), ".", ",", 1)
}
