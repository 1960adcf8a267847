//go:build e2e

package reservation_test

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"rincon-reservas/internal/domain/reservation"
	"rincon-reservas/internal/handler/api"
	"rincon-reservas/internal/handler/dto/response"
	"rincon-reservas/internal/handler/middleware"
	"rincon-reservas/internal/pkg/config"
	"rincon-reservas/tests/common/builder"
	"rincon-reservas/tests/common/httptest"
	"rincon-reservas/tests/common/testutil"
	"rincon-reservas/tests/e2e"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const processURL = "/api/process-reservation"

type ReservationSuite struct {
	e2e.SharedSuite
}

func TestReservationSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(ReservationSuite))
}

type storedRecord struct {
	SolicitudID   string
	BookerName    string
	BookerEmail   *string
	TotalPeople   int
	TotalVEF      float64
	PaymentMethod string
	Reference     string
	HasScreenshot bool
	Status        string
	Details       map[string]any
}

func (s *ReservationSuite) findRecord(solicitudID string) (storedRecord, int) {
	var count int
	err := s.DB.QueryRow(context.Background(),
		"SELECT count(*) FROM reservation_records WHERE solicitud_id = $1", solicitudID).Scan(&count)
	s.Require().NoError(err)
	if count == 0 {
		return storedRecord{}, 0
	}

	var (
		rec     storedRecord
		details []byte
	)
	err = s.DB.QueryRow(context.Background(), `
		SELECT solicitud_id, booker_name, booker_email, total_people, total_vef::float8,
		       payment_method, reference, has_screenshot, status, details
		FROM reservation_records WHERE solicitud_id = $1`, solicitudID).
		Scan(&rec.SolicitudID, &rec.BookerName, &rec.BookerEmail, &rec.TotalPeople, &rec.TotalVEF,
			&rec.PaymentMethod, &rec.Reference, &rec.HasScreenshot, &rec.Status, &details)
	s.Require().NoError(err)
	s.Require().NoError(json.Unmarshal(details, &rec.Details))
	return rec, count
}

func (s *ReservationSuite) TestProcessReservation() {
	s.Run("Normal case: payment is acknowledged and recorded even without a mail server", func() {
		t := s.T()
		b := builder.NewReservationBuilder().With(func(b *builder.ReservationBuilder) {
			b.AreaIDs = []string{"bohio_potrero"}
			b.Exempt = 1
		})

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, processURL, b.BuildRequestDTO())
		require.Equal(t, http.StatusOK, w.Code)
		require.NotEmpty(t, w.Header().Get(middleware.RequestIDHeader))

		var res response.ProcessReservationResponse
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &res))
		require.True(t, res.Success)
		require.Regexp(t, `^PM-\d+`, res.SolicitudID)
		require.Equal(t, response.MsgReservationProcessed, res.Message)
		require.Equal(t, "pending_verification", res.Data.Status)
		require.Equal(t, "Ana Pérez", res.Data.CustomerName)
		require.Equal(t, "123456", res.Data.Reference)

		rec, count := s.findRecord(res.SolicitudID)
		require.Equal(t, 1, count)
		require.Equal(t, "Ana Pérez", rec.BookerName)
		require.NotNil(t, rec.BookerEmail)
		require.Equal(t, "ana@example.com", *rec.BookerEmail)
		require.Equal(t, 4, rec.TotalPeople)
		require.InDelta(t, b.BuildDetails().TotalVEF, rec.TotalVEF, 0.01)
		require.Equal(t, reservation.PaymentMethodPagoMovil, rec.PaymentMethod)
		require.True(t, rec.HasScreenshot)
		require.Equal(t, reservation.StatusPendingVerification.String(), rec.Status)
		require.Equal(t, []any{"bohio_potrero"}, rec.Details["selectedAreas"])
	})

	s.Run("Normal case: numeric form values are accepted and a blank email is stored as NULL", func() {
		t := s.T()
		req := builder.NewReservationBuilder().With(func(b *builder.ReservationBuilder) {
			b.Email = ""
		}).BuildRequestDTO()
		m := testutil.DtoMap(t, req,
			testutil.Field("reservationDetails.cedula", 12345678),
			testutil.Field("reservationDetails.entradas", "3"),
			testutil.Field("transactionReference", 654321),
		)

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, processURL, m)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		var res response.ProcessReservationResponse
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &res))
		require.Equal(t, "654321", res.Data.Reference)

		rec, count := s.findRecord(res.SolicitudID)
		require.Equal(t, 1, count)
		require.Nil(t, rec.BookerEmail)
		require.Equal(t, "654321", rec.Reference)
		require.Equal(t, "12345678", rec.Details["cedula"])
		require.EqualValues(t, 3, rec.Details["entradas"])
	})

	s.Run("Error case: missing reference is rejected and nothing is stored", func() {
		t := s.T()
		req := builder.NewReservationBuilder().With(func(b *builder.ReservationBuilder) {
			b.Reference = ""
		}).BuildRequestDTO()

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, processURL, req)
		httptest.AssertErrorResponse(t, w, http.StatusBadRequest, api.MsgMissingReference)

		var count int
		require.NoError(t, s.DB.QueryRow(context.Background(), "SELECT count(*) FROM reservation_records").Scan(&count))
		require.Zero(t, count)
	})

	s.Run("Error case: malformed JSON reports the payload message", func() {
		t := s.T()

		w := httptest.PerformRawRequest(t, s.Router, http.MethodPost, processURL, `{"reservationDetails":`)
		httptest.AssertErrorResponse(t, w, http.StatusInternalServerError, api.MsgIntakePayload)
		// development mode echoes the cause
		httptest.AssertErrorDetails(t, w, s.Config.App.Env == config.EnvDevelopment)
	})
}

func (s *ReservationSuite) TestHealth() {
	s.Run("Normal case: health check answers ok", func() {
		t := s.T()

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, "/health", nil)
		require.Equal(t, http.StatusOK, w.Code)

		var body map[string]string
		_ = httptest.DecodeResponseBody(t, w.Body, &body)
		require.Equal(t, "ok", body["status"])
		require.Equal(t, s.Config.App.Env, body["env"])
	})

	s.Run("Error case: unknown route answers with the error body", func() {
		t := s.T()

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, "/api/reservas", nil)
		httptest.AssertErrorResponse(t, w, http.StatusNotFound, "Ruta no encontrada")
	})

	s.Run("Error case: GET on a POST-only endpoint is not allowed", func() {
		t := s.T()

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, processURL, nil)
		httptest.AssertErrorResponse(t, w, http.StatusMethodNotAllowed, "Método no permitido")
	})
}
