package payment

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"rincon-reservas/internal/domain/reservation"
)

// Pago Móvil destination shown to the payer.
const (
	PagoMovilPhone    = "0412-2328332"
	PagoMovilBank     = "Banco de Venezuela"
	PagoMovilRIF      = "J-505396544"
	PagoMovilHolder   = "Cafe Paya C.A."
	MsgConnectionLost = "Error de conexión. Verifica tu internet e inténtalo de nuevo."
	MsgUnknownFailure = "Error desconocido al procesar el pago"
)

var ErrSubmitInFlight = errors.New("payment submission already in flight")

type IntakeAck struct {
	SolicitudID  string
	Status       string
	CustomerName string
	TotalAmount  float64
	Reference    string
	Message      string
}

type IntakeClient interface {
	ProcessReservation(ctx context.Context, sub *reservation.Submission) (*IntakeAck, error)
}

// EndpointError is an explicit error answer from the intake endpoint.
type EndpointError struct {
	Status  int
	Message string
}

func (e *EndpointError) Error() string {
	return fmt.Sprintf("intake endpoint returned %d: %s", e.Status, e.Message)
}

// Step collects the Pago Móvil reference and receipt for one finalized reservation.
type Step struct {
	details   reservation.Details
	client    IntakeClient
	reference string
	receipt   *Receipt
	inFlight  bool
	lastErr   string
	ack       *IntakeAck
}

func NewStep(details reservation.Details, client IntakeClient) *Step {
	return &Step{details: details, client: client}
}

func (s *Step) Details() reservation.Details { return s.details }
func (s *Step) Reference() string            { return s.reference }
func (s *Step) Receipt() *Receipt            { return s.receipt }
func (s *Step) InFlight() bool               { return s.inFlight }
func (s *Step) Ack() *IntakeAck              { return s.ack }

// LastError is the user-facing message of the last failed action.
func (s *Step) LastError() string { return s.lastErr }

func (s *Step) AmountDue() float64 {
	return s.details.TotalVEF
}

func (s *Step) SetReference(ref string) {
	s.reference = ref
	s.lastErr = ""
}

// AttachReceipt replaces the current receipt. On failure no receipt is kept.
func (s *Step) AttachReceipt(filename string, data []byte) error {
	s.receipt = nil
	r, err := ProcessReceipt(filename, data)
	if err != nil {
		s.lastErr = UserMessage(err)
		return err
	}
	s.receipt = r
	s.lastErr = ""
	return nil
}

func (s *Step) RemoveReceipt() {
	s.receipt = nil
}

// Submit sends the submission once; failures leave the step ready for a manual retry.
func (s *Step) Submit(ctx context.Context) (string, error) {
	if s.inFlight {
		return "", ErrSubmitInFlight
	}

	var screenshot string
	if s.receipt != nil {
		screenshot = s.receipt.DataURL()
	}
	sub, err := reservation.NewSubmission(s.details, s.reference, screenshot)
	if err != nil {
		s.lastErr = UserMessage(err)
		return "", err
	}

	s.inFlight = true
	ack, err := s.client.ProcessReservation(ctx, sub)
	s.inFlight = false
	if err != nil {
		s.lastErr = UserMessage(err)
		return "", err
	}

	s.ack = ack
	s.lastErr = ""
	return ack.SolicitudID, nil
}

func UserMessage(err error) string {
	var endpointErr *EndpointError
	switch {
	case err == nil:
		return ""
	case errors.Is(err, reservation.ErrReferenceRequired):
		return reservation.MsgReferenceRequired
	case errors.Is(err, reservation.ErrReceiptRequired):
		return reservation.MsgReceiptRequired
	case errors.Is(err, ErrNotAnImage):
		return "El archivo debe ser una imagen"
	case errors.Is(err, ErrImageTooLarge):
		return "La imagen es demasiado grande. Máximo 10MB"
	case errors.Is(err, ErrImageUnreadable):
		return "No se pudo cargar la imagen"
	case errors.Is(err, ErrImageEncode):
		return "Error al procesar la imagen"
	case errors.As(err, &endpointErr):
		if strings.TrimSpace(endpointErr.Message) == "" {
			return MsgUnknownFailure
		}
		return endpointErr.Message
	default:
		return MsgConnectionLost
	}
}
