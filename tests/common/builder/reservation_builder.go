//go:build unit || e2e

package builder

import (
	"time"

	"rincon-reservas/internal/domain/pricing"
	"rincon-reservas/internal/domain/reservation"
	reqdto "rincon-reservas/internal/handler/dto/request"
	"rincon-reservas/internal/pkg/dataurl"
	"rincon-reservas/internal/usecase/commands"
)

// a tiny JPEG header, enough to round-trip through data URLs
var SampleReceipt = []byte{0xff, 0xd8, 0xff, 0xe0, 0x00, 0x10, 'J', 'F', 'I', 'F'}

type ReservationBuilder struct {
	FirstName   string
	LastName    string
	Cedula      string
	Email       string
	Phone       string
	VisitDate   time.Time
	Entries     int
	Exempt      int
	AreaIDs     []string
	Rate        float64
	Reference   string
	Screenshot  []byte
	SubmittedAt time.Time
}

func NewReservationBuilder() *ReservationBuilder {
	now := time.Date(2026, 10, 19, 9, 30, 0, 0, time.UTC)
	return &ReservationBuilder{
		FirstName:   "Ana",
		LastName:    "Pérez",
		Cedula:      "12345678",
		Email:       "ana@example.com",
		Phone:       "04121234567",
		VisitDate:   now.AddDate(0, 0, 14),
		Entries:     3,
		Exempt:      0,
		Rate:        pricing.FallbackRate,
		Reference:   "123456",
		Screenshot:  SampleReceipt,
		SubmittedAt: now,
	}
}

func (b *ReservationBuilder) With(mutate func(*ReservationBuilder)) *ReservationBuilder {
	mutate(b)
	return b
}

func (b *ReservationBuilder) BuildDetails() reservation.Details {
	q := pricing.Calculate(pricing.GeneralAreas(), pricing.Input{
		Entries:           b.Entries,
		Exempt:            b.Exempt,
		AreaIDs:           b.AreaIDs,
		UnitEntryPriceUSD: pricing.DefaultEntryPriceUSD,
		ExchangeRate:      b.Rate,
		TaxRate:           pricing.DefaultTaxRate,
	})

	areas := make([]reservation.AreaDetail, 0, len(q.Areas))
	ids := make([]string, 0, len(q.Areas))
	for _, a := range q.Areas {
		areas = append(areas, reservation.AreaDetail{ID: a.ID, Name: a.Name, Price: a.PriceUSD})
		ids = append(ids, a.ID)
	}

	return reservation.Details{
		Category:             reservation.CategoryGeneral.String(),
		FirstName:            b.FirstName,
		LastName:             b.LastName,
		BookerName:           b.FirstName + " " + b.LastName,
		Cedula:               b.Cedula,
		BookerEmail:          b.Email,
		BookerPhone:          b.Phone,
		VisitDate:            b.VisitDate.Format(reservation.DateLayout),
		Entradas:             b.Entries,
		Exonerados:           b.Exempt,
		TotalPeople:          q.TotalPeople,
		SelectedAreas:        ids,
		SelectedAreasDetails: areas,
		AcceptsTerms:         true,
		EntradaPrice:         pricing.DefaultEntryPriceUSD,
		BCVRate:              q.ExchangeRate,
		SubtotalUSD:          q.SubtotalUSD,
		SubtotalVEF:          q.SubtotalLocal,
		IvaVEF:               q.TaxLocal,
		TotalVEF:             q.TotalLocal,
	}
}

func (b *ReservationBuilder) ScreenshotDataURL() string {
	if len(b.Screenshot) == 0 {
		return ""
	}
	return dataurl.Encode("image/jpeg", b.Screenshot)
}

func (b *ReservationBuilder) BuildSubmission() (*reservation.Submission, error) {
	return reservation.NewSubmission(b.BuildDetails(), b.Reference, b.ScreenshotDataURL())
}

func (b *ReservationBuilder) BuildRecord(solicitudID string) *reservation.Record {
	return reservation.NewRecord(solicitudID, b.BuildDetails(), b.Reference, len(b.Screenshot) > 0, b.SubmittedAt)
}

func (b *ReservationBuilder) BuildIntakeInput() commands.IntakeInput {
	details := b.BuildDetails()
	return commands.IntakeInput{
		Details:              &details,
		TransactionReference: b.Reference,
		ScreenshotDataURL:    b.ScreenshotDataURL(),
		PaymentMethod:        reservation.PaymentMethodPagoMovil,
	}
}

func (b *ReservationBuilder) BuildRequestDTO() reqdto.ProcessReservationRequest {
	return reqdto.ProcessReservationRequest{
		ReservationDetails:   toRequestDetails(b.BuildDetails()),
		TransactionReference: reqdto.LooseString(b.Reference),
		ScreenshotFileBase64: b.ScreenshotDataURL(),
		PaymentMethod:        reservation.PaymentMethodPagoMovil,
	}
}

func (b *ReservationBuilder) BuildIntakeResult(solicitudID string) *commands.IntakeResult {
	rec := b.BuildRecord(solicitudID)
	details := rec.Details()
	return &commands.IntakeResult{
		Record:       rec,
		CustomerName: details.CustomerName(),
		TotalAmount:  details.TotalVEF,
		Notification: commands.NotificationResult{CustomerSent: true, BusinessSent: true},
		Stored:       true,
	}
}

func toRequestDetails(d reservation.Details) *reqdto.ReservationDetails {
	type (
		str = reqdto.LooseString
		num = reqdto.LooseFloat
		cnt = reqdto.LooseInt
	)
	areas := make([]reqdto.AreaDetail, 0, len(d.SelectedAreasDetails))
	for _, a := range d.SelectedAreasDetails {
		areas = append(areas, reqdto.AreaDetail{ID: str(a.ID), Name: str(a.Name), Price: num(a.Price)})
	}
	return &reqdto.ReservationDetails{
		Category:             str(d.Category),
		FirstName:            str(d.FirstName),
		LastName:             str(d.LastName),
		BookerName:           str(d.BookerName),
		Cedula:               str(d.Cedula),
		BookerEmail:          str(d.BookerEmail),
		BookerPhone:          str(d.BookerPhone),
		VisitDate:            str(d.VisitDate),
		Entradas:             cnt(d.Entradas),
		Exonerados:           cnt(d.Exonerados),
		TotalPeople:          cnt(d.TotalPeople),
		SelectedAreas:        d.SelectedAreas,
		SelectedAreasDetails: areas,
		AcceptsTerms:         d.AcceptsTerms,
		EntradaPrice:         num(d.EntradaPrice),
		BCVRate:              num(d.BCVRate),
		SubtotalUSD:          num(d.SubtotalUSD),
		SubtotalVEF:          num(d.SubtotalVEF),
		IvaVEF:               num(d.IvaVEF),
		TotalVEF:             num(d.TotalVEF),
	}
}
