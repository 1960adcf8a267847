package request

import (
	"rincon-reservas/internal/domain/reservation"
	"rincon-reservas/internal/pkg/errs"
	"rincon-reservas/internal/usecase/commands"

	"github.com/jinzhu/copier"
)

type AreaDetail struct {
	ID    LooseString `json:"id" swaggertype:"string"`
	Name  LooseString `json:"name" swaggertype:"string"`
	Price LooseFloat  `json:"price" swaggertype:"number"`
}

// ReservationDetails mirrors what the reservation form hands to payment.
// Every field is optional on the wire and scalars accept string or number.
type ReservationDetails struct {
	Category             LooseString  `json:"category,omitempty" swaggertype:"string"`
	FirstName            LooseString  `json:"firstName" swaggertype:"string"`
	LastName             LooseString  `json:"lastName" swaggertype:"string"`
	BookerName           LooseString  `json:"bookerName" swaggertype:"string"`
	Cedula               LooseString  `json:"cedula" swaggertype:"string"`
	BookerEmail          LooseString  `json:"bookerEmail" swaggertype:"string"`
	BookerPhone          LooseString  `json:"bookerPhone" swaggertype:"string"`
	VisitDate            LooseString  `json:"visitDate" swaggertype:"string"`
	Entradas             LooseInt     `json:"entradas" swaggertype:"integer"`
	Exonerados           LooseInt     `json:"exonerados" swaggertype:"integer"`
	TotalPeople          LooseInt     `json:"totalPeople" swaggertype:"integer"`
	SelectedAreas        []string     `json:"selectedAreas"`
	SelectedAreasDetails []AreaDetail `json:"selectedAreasDetails"`
	SpecialRequests      LooseString  `json:"specialRequests,omitempty" swaggertype:"string"`
	AcceptsTerms         bool         `json:"acceptsTerms"`
	EntradaPrice         LooseFloat   `json:"entradaPrice" swaggertype:"number"`
	BCVRate              LooseFloat   `json:"bcvRate" swaggertype:"number"`
	SubtotalUSD          LooseFloat   `json:"subtotalUSD" swaggertype:"number"`
	SubtotalVEF          LooseFloat   `json:"subtotalVEF" swaggertype:"number"`
	IvaVEF               LooseFloat   `json:"ivaVEF" swaggertype:"number"`
	TotalVEF             LooseFloat   `json:"totalVEF" swaggertype:"number"`
}

type ProcessReservationRequest struct {
	ReservationDetails *ReservationDetails `json:"reservationDetails"`
	// Pago Móvil references are digits; a numeric JSON value keeps its literal digits.
	TransactionReference LooseString `json:"transactionReference" swaggertype:"string"`
	ScreenshotFileBase64 string      `json:"screenshotFileBase64"`
	PaymentMethod        string      `json:"paymentMethod"`
}

func (r ProcessReservationRequest) ToInput() (commands.IntakeInput, error) {
	in := commands.IntakeInput{
		TransactionReference: string(r.TransactionReference),
		ScreenshotDataURL:    r.ScreenshotFileBase64,
		PaymentMethod:        r.PaymentMethod,
	}
	if r.ReservationDetails == nil {
		return in, nil
	}

	var details reservation.Details
	if err := copier.CopyWithOption(&details, r.ReservationDetails, copier.Option{DeepCopy: true}); err != nil {
		return in, errs.Wrap(err, "map reservation details")
	}
	in.Details = &details
	return in, nil
}

// NewProcessReservationRequest is the client-side inverse of ToInput.
func NewProcessReservationRequest(sub *reservation.Submission) (ProcessReservationRequest, error) {
	var details ReservationDetails
	d := sub.Details()
	if err := copier.CopyWithOption(&details, &d, copier.Option{DeepCopy: true}); err != nil {
		return ProcessReservationRequest{}, errs.Wrap(err, "map reservation details")
	}
	return ProcessReservationRequest{
		ReservationDetails:   &details,
		TransactionReference: LooseString(sub.Reference()),
		ScreenshotFileBase64: sub.ScreenshotDataURL(),
		PaymentMethod:        sub.PaymentMethod(),
	}, nil
}
