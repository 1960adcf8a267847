package request

import "rincon-reservas/internal/usecase/queries"

type QuoteRequest struct {
	Category      string   `json:"category" binding:"required,oneof=general small_groups"`
	Entradas      int      `json:"entradas" binding:"min=0,max=1000"`
	Exonerados    int      `json:"exonerados" binding:"min=0,max=1000"`
	SelectedAreas []string `json:"selectedAreas" binding:"max=20,dive,required"`
}

func (r QuoteRequest) ToParams() queries.QuoteParams {
	return queries.QuoteParams{
		Category:      r.Category,
		Entries:       r.Entradas,
		Exempt:        r.Exonerados,
		SelectedAreas: r.SelectedAreas,
	}
}
