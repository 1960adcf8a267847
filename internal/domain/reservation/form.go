package reservation

import (
	"errors"
	"fmt"
	"slices"
	"strconv"
	"strings"
	"time"

	"rincon-reservas/internal/domain/pricing"
	"rincon-reservas/internal/pkg/clock"
)

var (
	ErrUnknownField      = errors.New("unknown form field")
	ErrInvalidFieldValue = errors.New("invalid value for form field")
	ErrUnknownArea       = errors.New("unknown area")
	ErrFormLocked        = errors.New("form already submitted for payment")
)

type FormState string

const (
	StateCollecting          FormState = "collecting"
	StateSubmittedForPayment FormState = "submitted_for_payment"
)

type FormOptions struct {
	Clock         clock.Clock
	Location      *time.Location
	EntryPriceUSD float64
	TaxRate       float64
	ExchangeRate  float64
}

// FormController owns one reservation draft through validation and hand-off to payment.
// It is not safe for concurrent use.
type FormController struct {
	rules  RuleSet
	opts   FormOptions
	rate   float64
	draft  Draft
	errors FieldErrors
	state  FormState
}

func NewFormController(rules RuleSet, opts FormOptions) *FormController {
	if opts.Clock == nil {
		opts.Clock = clock.NewRealClock()
	}
	if opts.Location == nil {
		opts.Location = time.UTC
	}
	if opts.EntryPriceUSD <= 0 {
		opts.EntryPriceUSD = pricing.DefaultEntryPriceUSD
	}
	if opts.TaxRate <= 0 {
		opts.TaxRate = pricing.DefaultTaxRate
	}
	return &FormController{
		rules:  rules,
		opts:   opts,
		rate:   pricing.EffectiveRate(opts.ExchangeRate),
		draft:  NewDraft(),
		errors: FieldErrors{},
		state:  StateCollecting,
	}
}

func (f *FormController) Rules() RuleSet   { return f.rules }
func (f *FormController) State() FormState { return f.state }
func (f *FormController) Draft() Draft     { return f.draft.clone() }

func (f *FormController) Errors() FieldErrors {
	return f.errors.clone()
}

func (f *FormController) ExchangeRate() float64 {
	return f.rate
}

// SetExchangeRate replaces the held rate; non-positive values fall back.
func (f *FormController) SetExchangeRate(rate float64) {
	f.rate = pricing.EffectiveRate(rate)
}

func (f *FormController) Quote() pricing.Quote {
	return pricing.Calculate(f.rules.Areas, pricing.Input{
		Entries:           f.draft.Entries,
		Exempt:            f.draft.Exempt,
		AreaIDs:           f.draft.SelectedAreas,
		UnitEntryPriceUSD: f.opts.EntryPriceUSD,
		ExchangeRate:      f.rate,
		TaxRate:           f.opts.TaxRate,
	})
}

// UpdateField sets one draft field and clears its pending error.
func (f *FormController) UpdateField(name string, value any) error {
	if f.state != StateCollecting {
		return ErrFormLocked
	}

	var err error
	switch name {
	case FieldFirstName:
		err = set(&f.draft.FirstName, name, value, asString)
	case FieldLastName:
		err = set(&f.draft.LastName, name, value, asString)
	case FieldCedula:
		err = set(&f.draft.Cedula, name, value, asString)
	case FieldEmail:
		err = set(&f.draft.Email, name, value, asString)
	case FieldPhone:
		err = set(&f.draft.Phone, name, value, asString)
	case FieldSpecialRequests:
		err = set(&f.draft.SpecialRequests, name, value, asString)
	case FieldVisitDate:
		err = set(&f.draft.VisitDate, name, value, f.asDate)
	case FieldEntries:
		err = set(&f.draft.Entries, name, value, asInt)
	case FieldExempt:
		err = set(&f.draft.Exempt, name, value, asInt)
	case FieldAcceptsTerms:
		err = set(&f.draft.AcceptsTerms, name, value, asBool)
	case FieldSelectedAreas:
		var ids []string
		if ids, err = asStrings(name, value); err == nil {
			err = f.replaceAreas(ids)
		}
	default:
		return fmt.Errorf("%w: %s", ErrUnknownField, name)
	}
	if err != nil {
		return err
	}

	delete(f.errors, name)
	if name == FieldEntries || name == FieldExempt {
		delete(f.errors, FieldTotalPeople)
	}
	return nil
}

func (f *FormController) ToggleArea(id string, included bool) error {
	if f.state != StateCollecting {
		return ErrFormLocked
	}
	if !f.rules.Areas.Contains(id) {
		return fmt.Errorf("%w: %s", ErrUnknownArea, id)
	}

	has := f.draft.HasArea(id)
	switch {
	case included && !has:
		f.draft.SelectedAreas = append(f.draft.SelectedAreas, id)
	case !included && has:
		f.draft.SelectedAreas = slices.DeleteFunc(f.draft.SelectedAreas, func(s string) bool { return s == id })
	}
	delete(f.errors, FieldSelectedAreas)
	return nil
}

func (f *FormController) Validate() FieldErrors {
	f.errors = f.rules.Validate(f.draft, clock.Today(f.opts.Clock, f.opts.Location))
	return f.errors.clone()
}

// Submit hands a valid draft to payment. An invalid draft stays in collecting
// with its errors kept. A form already in payment returns ErrFormLocked.
func (f *FormController) Submit() (*Details, FieldErrors, error) {
	if f.state != StateCollecting {
		return nil, nil, ErrFormLocked
	}
	if errs := f.Validate(); errs.HasErrors() {
		return nil, errs, nil
	}

	details := f.details()
	f.state = StateSubmittedForPayment
	return &details, nil, nil
}

// Back returns from the payment step keeping the draft.
func (f *FormController) Back() {
	f.state = StateCollecting
}

func (f *FormController) Reset() {
	f.draft = NewDraft()
	f.errors = FieldErrors{}
	f.state = StateCollecting
}

func (f *FormController) details() Details {
	q := f.Quote()
	d := f.draft

	areas := make([]AreaDetail, 0, len(q.Areas))
	ids := make([]string, 0, len(q.Areas))
	for _, a := range q.Areas {
		areas = append(areas, AreaDetail{ID: a.ID, Name: a.Name, Price: a.PriceUSD})
		ids = append(ids, a.ID)
	}

	return Details{
		Category:             f.rules.Category.String(),
		FirstName:            strings.TrimSpace(d.FirstName),
		LastName:             strings.TrimSpace(d.LastName),
		BookerName:           d.BookerName(),
		Cedula:               strings.ToUpper(stripSpaces(d.Cedula)),
		BookerEmail:          strings.TrimSpace(d.Email),
		BookerPhone:          stripSpaces(d.Phone),
		VisitDate:            d.VisitDate.Format(DateLayout),
		Entradas:             d.Entries,
		Exonerados:           d.Exempt,
		TotalPeople:          q.TotalPeople,
		SelectedAreas:        ids,
		SelectedAreasDetails: areas,
		SpecialRequests:      strings.TrimSpace(d.SpecialRequests),
		AcceptsTerms:         d.AcceptsTerms,
		EntradaPrice:         f.opts.EntryPriceUSD,
		BCVRate:              q.ExchangeRate,
		SubtotalUSD:          q.SubtotalUSD,
		SubtotalVEF:          q.SubtotalLocal,
		IvaVEF:               q.TaxLocal,
		TotalVEF:             q.TotalLocal,
	}
}

func (f *FormController) replaceAreas(ids []string) error {
	next := make([]string, 0, len(ids))
	for _, id := range ids {
		if !f.rules.Areas.Contains(id) {
			return fmt.Errorf("%w: %s", ErrUnknownArea, id)
		}
		if !slices.Contains(next, id) {
			next = append(next, id)
		}
	}
	f.draft.SelectedAreas = next
	return nil
}

func (f *FormController) asDate(name string, value any) (time.Time, error) {
	switch v := value.(type) {
	case time.Time:
		return clock.DateOf(v, f.opts.Location), nil
	case string:
		if strings.TrimSpace(v) == "" {
			return time.Time{}, nil
		}
		t, err := ParseVisitDate(v, f.opts.Location)
		if err != nil {
			return time.Time{}, fmt.Errorf("%w: %s: %v", ErrInvalidFieldValue, name, err)
		}
		return t, nil
	default:
		return time.Time{}, invalidValue(name, value)
	}
}

func set[T any](dst *T, name string, value any, conv func(string, any) (T, error)) error {
	v, err := conv(name, value)
	if err != nil {
		return err
	}
	*dst = v
	return nil
}

func asString(name string, value any) (string, error) {
	s, ok := value.(string)
	if !ok {
		return "", invalidValue(name, value)
	}
	return s, nil
}

func asInt(name string, value any) (int, error) {
	switch v := value.(type) {
	case int:
		return v, nil
	case int64:
		return int(v), nil
	case float64:
		if v != float64(int(v)) {
			return 0, invalidValue(name, value)
		}
		return int(v), nil
	case string:
		n, err := strconv.Atoi(strings.TrimSpace(v))
		if err != nil {
			return 0, invalidValue(name, value)
		}
		return n, nil
	default:
		return 0, invalidValue(name, value)
	}
}

func asBool(name string, value any) (bool, error) {
	b, ok := value.(bool)
	if !ok {
		return false, invalidValue(name, value)
	}
	return b, nil
}

func asStrings(name string, value any) ([]string, error) {
	switch v := value.(type) {
	case []string:
		return v, nil
	case []any:
		out := make([]string, 0, len(v))
		for _, item := range v {
			s, ok := item.(string)
			if !ok {
				return nil, invalidValue(name, value)
			}
			out = append(out, s)
		}
		return out, nil
	default:
		return nil, invalidValue(name, value)
	}
}

func invalidValue(name string, value any) error {
	return fmt.Errorf("%w: %s: %T", ErrInvalidFieldValue, name, value)
}
