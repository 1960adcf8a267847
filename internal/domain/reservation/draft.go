package reservation

import (
	"slices"
	"strings"
	"time"
)

// Field keys shared by validation errors and UpdateField.
const (
	FieldFirstName       = "firstName"
	FieldLastName        = "lastName"
	FieldCedula          = "cedula"
	FieldEmail           = "bookerEmail"
	FieldPhone           = "bookerPhone"
	FieldVisitDate       = "visitDate"
	FieldEntries         = "entradas"
	FieldExempt          = "exonerados"
	FieldSelectedAreas   = "selectedAreas"
	FieldSpecialRequests = "specialRequests"
	FieldAcceptsTerms    = "acceptsTerms"
	FieldTotalPeople     = "totalPeople"
)

const DateLayout = "2006-01-02"

type Draft struct {
	FirstName       string
	LastName        string
	Cedula          string
	Email           string
	Phone           string
	VisitDate       time.Time // zero until chosen
	Entries         int
	Exempt          int
	SelectedAreas   []string
	SpecialRequests string
	AcceptsTerms    bool
}

func NewDraft() Draft {
	return Draft{Entries: 1}
}

func (d Draft) TotalPeople() int {
	return d.Entries + d.Exempt
}

func (d Draft) BookerName() string {
	return strings.TrimSpace(strings.TrimSpace(d.FirstName) + " " + strings.TrimSpace(d.LastName))
}

func (d Draft) HasArea(id string) bool {
	return slices.Contains(d.SelectedAreas, id)
}

func (d Draft) clone() Draft {
	d.SelectedAreas = slices.Clone(d.SelectedAreas)
	return d
}

func ParseVisitDate(s string, loc *time.Location) (time.Time, error) {
	if loc == nil {
		loc = time.UTC
	}
	return time.ParseInLocation(DateLayout, strings.TrimSpace(s), loc)
}

// FieldErrors maps a field key to its user-facing message.
type FieldErrors map[string]string

func (e FieldErrors) HasErrors() bool {
	return len(e) > 0
}

func (e FieldErrors) Fields() []string {
	keys := make([]string, 0, len(e))
	for k := range e {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}

func (e FieldErrors) clone() FieldErrors {
	out := make(FieldErrors, len(e))
	for k, v := range e {
		out[k] = v
	}
	return out
}
