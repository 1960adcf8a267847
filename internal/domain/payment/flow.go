package payment

import (
	"context"
	"errors"

	"rincon-reservas/internal/domain/reservation"
)

var ErrWrongStage = errors.New("action not available at the current stage")

type Stage string

const (
	StageForm    Stage = "form"
	StagePayment Stage = "payment"
	StagePending Stage = "pending"
)

// Flow chains form, payment and pending confirmation for one visitor session.
type Flow struct {
	form    *reservation.FormController
	client  IntakeClient
	contact reservation.ContactInfo
	stage   Stage
	step    *Step
	pending *reservation.PendingView
}

func NewFlow(form *reservation.FormController, client IntakeClient, contact reservation.ContactInfo) *Flow {
	return &Flow{
		form:    form,
		client:  client,
		contact: contact,
		stage:   StageForm,
	}
}

func (f *Flow) Stage() Stage                      { return f.stage }
func (f *Flow) Form() *reservation.FormController { return f.form }
func (f *Flow) Payment() *Step                    { return f.step }
func (f *Flow) Pending() *reservation.PendingView { return f.pending }

// ProceedToPayment submits the form; validation errors keep the flow on the form.
func (f *Flow) ProceedToPayment() (reservation.FieldErrors, error) {
	if f.stage != StageForm {
		return nil, ErrWrongStage
	}
	details, fieldErrs, err := f.form.Submit()
	if err != nil {
		return nil, err
	}
	if fieldErrs.HasErrors() {
		return fieldErrs, nil
	}
	f.step = NewStep(*details, f.client)
	f.stage = StagePayment
	return nil, nil
}

func (f *Flow) BackToForm() error {
	if f.stage != StagePayment {
		return ErrWrongStage
	}
	f.form.Back()
	f.step = nil
	f.stage = StageForm
	return nil
}

func (f *Flow) SubmitPayment(ctx context.Context) (*reservation.PendingView, error) {
	if f.stage != StagePayment {
		return nil, ErrWrongStage
	}
	id, err := f.step.Submit(ctx)
	if err != nil {
		return nil, err
	}

	d := f.step.Details()
	view := reservation.NewPendingView(id, d.BookerEmail, d.BookerPhone, f.contact)
	f.pending = &view
	f.stage = StagePending
	return f.pending, nil
}

// StartOver discards everything and returns to an empty form.
func (f *Flow) StartOver() {
	f.form.Reset()
	f.step = nil
	f.pending = nil
	f.stage = StageForm
}
