package response

import (
	"rincon-reservas/internal/domain/pricing"
	"rincon-reservas/internal/usecase/queries"
)

type ExchangeRateResponse struct {
	Rate      float64 `json:"rate"`
	Formatted string  `json:"formatted"`
	FetchedAt string  `json:"fetchedAt"`
	Source    string  `json:"source"`
}

func FromRateView(v queries.RateView) ExchangeRateResponse {
	return ExchangeRateResponse{
		Rate:      v.Rate,
		Formatted: v.Formatted,
		FetchedAt: v.FetchedAt,
		Source:    v.Source,
	}
}

type AreaResponse struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Price       float64 `json:"price"`
	Description string  `json:"description,omitempty"`
	Capacity    int     `json:"capacity,omitempty"`
}

type AreasResponse struct {
	Category string         `json:"category"`
	Areas    []AreaResponse `json:"areas"`
}

func FromAreaViews(category string, views []queries.AreaView) AreasResponse {
	return AreasResponse{Category: category, Areas: toAreaResponses(views)}
}

// QuoteResponse carries raw values plus 2-decimal display strings.
type QuoteResponse struct {
	Category     string               `json:"category"`
	TotalPeople  int                  `json:"totalPeople"`
	EntradaPrice float64              `json:"entradaPrice"`
	ExchangeRate ExchangeRateResponse `json:"exchangeRate"`
	Areas        []AreaResponse       `json:"areas"`
	SubtotalUSD  float64              `json:"subtotalUSD"`
	SubtotalVEF  float64              `json:"subtotalVEF"`
	IvaVEF       float64              `json:"ivaVEF"`
	TotalVEF     float64              `json:"totalVEF"`
	Display      QuoteDisplay         `json:"display"`
}

type QuoteDisplay struct {
	SubtotalUSD string `json:"subtotalUSD"`
	SubtotalVEF string `json:"subtotalVEF"`
	IvaVEF      string `json:"ivaVEF"`
	TotalVEF    string `json:"totalVEF"`
}

func FromQuoteView(v *queries.QuoteView) QuoteResponse {
	return QuoteResponse{
		Category:     v.Category.String(),
		TotalPeople:  v.TotalPeople,
		EntradaPrice: v.EntryPriceUSD,
		ExchangeRate: FromRateView(v.Rate),
		Areas:        toAreaResponses(v.Areas),
		SubtotalUSD:  v.SubtotalUSD,
		SubtotalVEF:  v.SubtotalLocal,
		IvaVEF:       v.TaxLocal,
		TotalVEF:     v.TotalLocal,
		Display: QuoteDisplay{
			SubtotalUSD: pricing.FormatAmount(v.SubtotalUSD),
			SubtotalVEF: pricing.FormatAmount(v.SubtotalLocal),
			IvaVEF:      pricing.FormatAmount(v.TaxLocal),
			TotalVEF:    pricing.FormatAmount(v.TotalLocal),
		},
	}
}

func toAreaResponses(views []queries.AreaView) []AreaResponse {
	out := make([]AreaResponse, 0, len(views))
	for _, a := range views {
		out = append(out, AreaResponse{
			ID:          a.ID,
			Name:        a.Name,
			Price:       a.PriceUSD,
			Description: a.Description,
			Capacity:    a.Capacity,
		})
	}
	return out
}
