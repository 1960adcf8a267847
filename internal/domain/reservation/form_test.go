//go:build unit

package reservation_test

import (
	"testing"
	"time"

	"rincon-reservas/internal/domain/reservation"
	"rincon-reservas/internal/pkg/clock"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

type FormControllerTestSuite struct {
	suite.Suite
	clock *clock.MockClock
	form  *reservation.FormController
}

func (s *FormControllerTestSuite) SetupTest() {
	s.clock = clock.NewMockClock(time.Date(2026, 10, 19, 15, 0, 0, 0, time.UTC))
	s.form = reservation.NewFormController(reservation.MustRules(reservation.CategoryGeneral), reservation.FormOptions{
		Clock:        s.clock,
		Location:     caracas,
		ExchangeRate: 100,
	})
}

func TestFormControllerSuite(t *testing.T) {
	suite.Run(t, new(FormControllerTestSuite))
}

func (s *FormControllerTestSuite) fillValid() {
	fields := map[string]any{
		reservation.FieldFirstName: "María",
		reservation.FieldLastName:  "Pérez",
		reservation.FieldCedula:    "12345678",
		reservation.FieldEmail:     "maria@example.com",
		reservation.FieldPhone:     "0412-1234567",
		reservation.FieldVisitDate: "2026-10-25",
		reservation.FieldEntries:   2,
	}
	for name, v := range fields {
		s.Require().NoError(s.form.UpdateField(name, v))
	}
	s.Require().NoError(s.form.UpdateField(reservation.FieldAcceptsTerms, true))
}

func (s *FormControllerTestSuite) TestInitialState() {
	s.Equal(reservation.StateCollecting, s.form.State())
	s.Equal(1, s.form.Draft().Entries)
	s.Empty(s.form.Errors())
}

func (s *FormControllerTestSuite) TestUpdateField() {
	s.Run("success: clears the field error", func() {
		errs := s.form.Validate()
		s.Contains(errs, reservation.FieldFirstName)

		s.Require().NoError(s.form.UpdateField(reservation.FieldFirstName, "Ana"))

		s.NotContains(s.form.Errors(), reservation.FieldFirstName)
		s.Contains(s.form.Errors(), reservation.FieldLastName)
	})

	s.Run("success: numeric strings are accepted for counts", func() {
		s.Require().NoError(s.form.UpdateField(reservation.FieldEntries, "4"))
		s.Equal(4, s.form.Draft().Entries)
	})

	s.Run("error: wrong value type keeps the previous value", func() {
		s.Require().NoError(s.form.UpdateField(reservation.FieldEntries, 3))

		err := s.form.UpdateField(reservation.FieldEntries, true)

		s.ErrorIs(err, reservation.ErrInvalidFieldValue)
		s.Equal(3, s.form.Draft().Entries)
	})

	s.Run("error: unknown field", func() {
		err := s.form.UpdateField("nickname", "x")
		s.ErrorIs(err, reservation.ErrUnknownField)
	})

	s.Run("error: malformed date", func() {
		err := s.form.UpdateField(reservation.FieldVisitDate, "25/10/2026")
		s.ErrorIs(err, reservation.ErrInvalidFieldValue)
	})
}

func (s *FormControllerTestSuite) TestToggleArea() {
	s.Require().NoError(s.form.ToggleArea("bohio_potrero", true))
	s.Require().NoError(s.form.ToggleArea("bohio_potrero", true))
	s.Require().NoError(s.form.ToggleArea("salon_colonial_mesa", true))
	s.Equal([]string{"bohio_potrero", "salon_colonial_mesa"}, s.form.Draft().SelectedAreas)

	s.Require().NoError(s.form.ToggleArea("bohio_potrero", false))
	s.Equal([]string{"salon_colonial_mesa"}, s.form.Draft().SelectedAreas)

	s.ErrorIs(s.form.ToggleArea("gazebo-principal", true), reservation.ErrUnknownArea)
}

func (s *FormControllerTestSuite) TestQuoteFollowsDraft() {
	s.Require().NoError(s.form.ToggleArea("salon_colonial_mesa", true))

	q := s.form.Quote()

	s.Equal(30.0, q.SubtotalUSD)
	s.Equal(3480.0, q.TotalLocal)

	s.form.SetExchangeRate(0)
	s.Equal(122.17, s.form.ExchangeRate())
}

func (s *FormControllerTestSuite) TestSubmit() {
	s.Run("error: invalid draft stays collecting", func() {
		details, errs, err := s.form.Submit()

		s.Require().NoError(err)
		s.Nil(details)
		s.True(errs.HasErrors())
		s.Equal(reservation.StateCollecting, s.form.State())
		s.Equal(errs, s.form.Errors())
	})

	s.Run("success: valid draft moves to payment", func() {
		s.fillValid()
		s.Require().NoError(s.form.ToggleArea("caney_piscina_grande", true))

		details, errs, err := s.form.Submit()

		s.Require().NoError(err)
		s.Require().Empty(errs)
		s.Require().NotNil(details)
		s.Equal(reservation.StateSubmittedForPayment, s.form.State())
		s.Equal("María Pérez", details.BookerName)
		s.Equal("2026-10-25", details.VisitDate)
		s.Equal(60.0, details.SubtotalUSD)
		s.Equal(6000.0, details.SubtotalVEF)
		s.Equal(960.0, details.IvaVEF)
		s.Equal(6960.0, details.TotalVEF)
		s.Equal(100.0, details.BCVRate)
		s.Require().Len(details.SelectedAreasDetails, 1)
		s.Equal("Caney Piscina Grande", details.SelectedAreasDetails[0].Name)
	})

	s.Run("error: locked while in payment", func() {
		s.ErrorIs(s.form.UpdateField(reservation.FieldFirstName, "Otra"), reservation.ErrFormLocked)

		details, errs, err := s.form.Submit()
		s.ErrorIs(err, reservation.ErrFormLocked)
		s.Nil(details)
		s.Nil(errs)
		s.Equal(reservation.StateSubmittedForPayment, s.form.State())
	})

	s.Run("success: back keeps the draft", func() {
		s.form.Back()
		s.Equal(reservation.StateCollecting, s.form.State())
		s.Equal("María", s.form.Draft().FirstName)
	})

	s.Run("success: reset restores the initial draft", func() {
		s.form.Reset()
		s.Equal(reservation.NewDraft(), s.form.Draft())
		s.Empty(s.form.Errors())
	})
}

func TestFormControllerBusinessDay(t *testing.T) {
	// 02:00 UTC on the 20th is still the 19th in Caracas.
	clk := clock.NewMockClock(time.Date(2026, 10, 20, 2, 0, 0, 0, time.UTC))
	form := reservation.NewFormController(reservation.MustRules(reservation.CategorySmallGroups), reservation.FormOptions{
		Clock:    clk,
		Location: caracas,
	})

	require.NoError(t, form.UpdateField(reservation.FieldVisitDate, "2026-10-19"))
	assert.NotContains(t, form.Validate(), reservation.FieldVisitDate)
}
