package reservation

import (
	"fmt"
	"strings"
	"time"
	"unicode"
)

// Validate checks a draft against the category rules. today is the current
// calendar date in the business time zone.
func (rs RuleSet) Validate(d Draft, today time.Time) FieldErrors {
	errs := FieldErrors{}

	if strings.TrimSpace(d.FirstName) == "" {
		errs[FieldFirstName] = "El nombre es requerido"
	}
	if strings.TrimSpace(d.LastName) == "" {
		errs[FieldLastName] = "El apellido es requerido"
	}

	if strings.TrimSpace(d.Cedula) == "" {
		errs[FieldCedula] = "La cédula es requerida"
	} else if !rs.CedulaPattern.MatchString(stripSpaces(d.Cedula)) {
		errs[FieldCedula] = fmt.Sprintf("Formato de cédula inválido (ej: %s)", rs.CedulaExample)
	}

	if strings.TrimSpace(d.Email) == "" {
		errs[FieldEmail] = "El email es requerido"
	} else if !rs.EmailPattern.MatchString(strings.TrimSpace(d.Email)) {
		errs[FieldEmail] = "Email inválido"
	}

	if strings.TrimSpace(d.Phone) == "" {
		errs[FieldPhone] = "El teléfono es requerido"
	} else if !phonePattern.MatchString(stripSpaces(d.Phone)) {
		errs[FieldPhone] = "Formato de teléfono inválido (ej: 0412-1234567)"
	}

	if d.VisitDate.IsZero() {
		errs[FieldVisitDate] = "La fecha de visita es requerida"
	} else if visit := dateIn(d.VisitDate, today.Location()); visit.Before(today) {
		errs[FieldVisitDate] = "La fecha debe ser futura"
	}

	switch {
	case d.Entries < 1:
		errs[FieldEntries] = "Debe haber al menos 1 entrada"
	case d.Entries > rs.MaxEntries:
		errs[FieldEntries] = rs.maxEntriesMessage()
	}

	switch {
	case d.Exempt < 0:
		errs[FieldExempt] = "Los exonerados no pueden ser negativos"
	case rs.MaxExempt > 0 && d.Exempt > rs.MaxExempt:
		errs[FieldExempt] = fmt.Sprintf("Máximo %d exonerados", rs.MaxExempt)
	}

	if d.TotalPeople() > rs.MaxTotalPeople {
		errs[FieldTotalPeople] = fmt.Sprintf("El total de personas no puede exceder %d", rs.MaxTotalPeople)
	}

	if !d.AcceptsTerms {
		errs[FieldAcceptsTerms] = "Debe aceptar los términos y condiciones"
	}

	return errs
}

func (rs RuleSet) maxEntriesMessage() string {
	if rs.Category == CategorySmallGroups {
		return fmt.Sprintf("Máximo %d entradas para grupos pequeños", rs.MaxEntries)
	}
	return fmt.Sprintf("Máximo %d entradas por reserva", rs.MaxEntries)
}

func stripSpaces(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, s)
}

func dateIn(t time.Time, loc *time.Location) time.Time {
	y, m, d := t.In(loc).Date()
	return time.Date(y, m, d, 0, 0, 0, 0, loc)
}
