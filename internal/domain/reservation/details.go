package reservation

import "strings"

const (
	defaultCustomerName = "Cliente"
	unspecifiedDate     = "No especificada"
)

type AreaDetail struct {
	ID    string  `json:"id"`
	Name  string  `json:"name"`
	Price float64 `json:"price"`
}

// Details is a finalized draft plus its derived totals. The intake side
// receives it from clients, so every field may be missing.
type Details struct {
	Category             string       `json:"category,omitempty"`
	FirstName            string       `json:"firstName"`
	LastName             string       `json:"lastName"`
	BookerName           string       `json:"bookerName"`
	Cedula               string       `json:"cedula"`
	BookerEmail          string       `json:"bookerEmail"`
	BookerPhone          string       `json:"bookerPhone"`
	VisitDate            string       `json:"visitDate"`
	Entradas             int          `json:"entradas"`
	Exonerados           int          `json:"exonerados"`
	TotalPeople          int          `json:"totalPeople"`
	SelectedAreas        []string     `json:"selectedAreas"`
	SelectedAreasDetails []AreaDetail `json:"selectedAreasDetails"`
	SpecialRequests      string       `json:"specialRequests,omitempty"`
	AcceptsTerms         bool         `json:"acceptsTerms"`
	EntradaPrice         float64      `json:"entradaPrice"`
	BCVRate              float64      `json:"bcvRate"`
	SubtotalUSD          float64      `json:"subtotalUSD"`
	SubtotalVEF          float64      `json:"subtotalVEF"`
	IvaVEF               float64      `json:"ivaVEF"`
	TotalVEF             float64      `json:"totalVEF"`
}

func (d Details) CustomerName() string {
	if name := strings.TrimSpace(d.BookerName); name != "" {
		return name
	}
	if name := strings.TrimSpace(d.FirstName + " " + d.LastName); name != "" {
		return name
	}
	return defaultCustomerName
}

func (d Details) VisitDateOrDefault() string {
	if strings.TrimSpace(d.VisitDate) == "" {
		return unspecifiedDate
	}
	return d.VisitDate
}
