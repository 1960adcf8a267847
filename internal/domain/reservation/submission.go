package reservation

import (
	"errors"
	"strings"
)

const PaymentMethodPagoMovil = "pago-movil"

var (
	ErrReferenceRequired = errors.New("transaction reference required")
	ErrReceiptRequired   = errors.New("payment receipt required")
)

const (
	MsgReferenceRequired = "Por favor, ingresa el número de referencia de tu pago móvil."
	MsgReceiptRequired   = "Por favor, sube una captura de pantalla del pago móvil."
)

// Submission is immutable once built.
type Submission struct {
	details       Details
	reference     string
	screenshot    string
	paymentMethod string
}

func NewSubmission(details Details, reference, screenshotDataURL string) (*Submission, error) {
	reference = strings.TrimSpace(reference)
	if reference == "" {
		return nil, ErrReferenceRequired
	}
	if strings.TrimSpace(screenshotDataURL) == "" {
		return nil, ErrReceiptRequired
	}
	details.SelectedAreas = append([]string(nil), details.SelectedAreas...)
	details.SelectedAreasDetails = append([]AreaDetail(nil), details.SelectedAreasDetails...)
	return &Submission{
		details:       details,
		reference:     reference,
		screenshot:    screenshotDataURL,
		paymentMethod: PaymentMethodPagoMovil,
	}, nil
}

func (s *Submission) Details() Details {
	d := s.details
	d.SelectedAreas = append([]string(nil), d.SelectedAreas...)
	d.SelectedAreasDetails = append([]AreaDetail(nil), d.SelectedAreasDetails...)
	return d
}

func (s *Submission) Reference() string         { return s.reference }
func (s *Submission) ScreenshotDataURL() string { return s.screenshot }
func (s *Submission) PaymentMethod() string     { return s.paymentMethod }
