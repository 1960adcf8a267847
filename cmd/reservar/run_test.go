//go:build unit

package main

import (
	"bytes"
	"context"
	"encoding/json"
	"image"
	"image/png"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	reqdto "rincon-reservas/internal/handler/dto/request"
	"rincon-reservas/internal/pkg/config"
	"rincon-reservas/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testEnv() cliEnv {
	cfg := config.NewTestConfig()
	return cliEnv{Business: cfg.Business, Pricing: cfg.Pricing}
}

func writeFile(t *testing.T, name string, data []byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, data, 0o600))
	return path
}

func writeDraft(t *testing.T, fields map[string]any) string {
	t.Helper()
	raw, err := json.Marshal(fields)
	require.NoError(t, err)
	return writeFile(t, "draft.json", raw)
}

func receiptPNG(t *testing.T) []byte {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, image.NewRGBA(image.Rect(0, 0, 40, 30))))
	return buf.Bytes()
}

func validDraft() map[string]any {
	return map[string]any{
		"firstName":     "María",
		"lastName":      "González",
		"cedula":        "12345678",
		"bookerEmail":   "maria@example.com",
		"bookerPhone":   "0412-1234567",
		"visitDate":     time.Now().AddDate(0, 1, 0).Format("2006-01-02"),
		"entradas":      2,
		"exonerados":    1,
		"selectedAreas": []string{"bohio_potrero"},
		"acceptsTerms":  true,
	}
}

type fakeServer struct {
	*httptest.Server
	received *reqdto.ProcessReservationRequest
}

func newFakeServer(t *testing.T, rateStatus int) *fakeServer {
	t.Helper()
	fs := &fakeServer{}
	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/exchange-rate", func(w http.ResponseWriter, _ *http.Request) {
		if rateStatus != http.StatusOK {
			w.WriteHeader(rateStatus)
			return
		}
		_, _ = w.Write([]byte(`{"rate":200,"formatted":"200,00000000","fetchedAt":"2026-10-19T13:00:00Z","source":"simulated"}`))
	})
	mux.HandleFunc("POST /api/process-reservation", func(w http.ResponseWriter, r *http.Request) {
		var req reqdto.ProcessReservationRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		fs.received = &req
		_, _ = w.Write([]byte(`{"success":true,"solicitudId":"PM-1760866200000","message":"Pago móvil procesado correctamente","data":{"id":"PM-1760866200000","status":"pending_verification","customerName":"María González","totalAmount":1,"reference":"123456"}}`))
	})
	fs.Server = httptest.NewServer(mux)
	t.Cleanup(fs.Close)
	return fs
}

func TestRun(t *testing.T) {
	t.Run("submits the reservation and prints the pending view", func(t *testing.T) {
		srv := newFakeServer(t, http.StatusOK)
		var out bytes.Buffer

		err := run(context.Background(), options{
			Server:      srv.URL,
			DraftPath:   writeDraft(t, validDraft()),
			Category:    "general",
			ReceiptPath: writeFile(t, "captura.png", receiptPNG(t)),
			Reference:   "123456",
			Timeout:     time.Second,
		}, testEnv(), &out)

		require.NoError(t, err)
		require.NotNil(t, srv.received)
		assert.Equal(t, reqdto.LooseString("123456"), srv.received.TransactionReference)
		assert.Contains(t, srv.received.ScreenshotFileBase64, "data:image/jpeg;base64,")
		require.NotNil(t, srv.received.ReservationDetails)
		assert.Equal(t, reqdto.LooseFloat(200), srv.received.ReservationDetails.BCVRate)
		assert.Equal(t, reqdto.LooseInt(3), srv.received.ReservationDetails.TotalPeople)

		assert.Contains(t, out.String(), "[PENDING] Solicitud PM-1760866200000 recibida")
		assert.Contains(t, out.String(), "https://wa.me/584122328332")
	})

	t.Run("falls back to the configured rate when the server has none", func(t *testing.T) {
		srv := newFakeServer(t, http.StatusInternalServerError)
		var out bytes.Buffer

		err := run(context.Background(), options{
			Server:      srv.URL,
			DraftPath:   writeDraft(t, validDraft()),
			Category:    "general",
			ReceiptPath: writeFile(t, "captura.png", receiptPNG(t)),
			Reference:   "123456",
			Timeout:     time.Second,
		}, testEnv(), &out)

		require.NoError(t, err)
		assert.Contains(t, out.String(), "usando tasa de respaldo")
		assert.Equal(t, reqdto.LooseFloat(122.17), srv.received.ReservationDetails.BCVRate)
	})

	t.Run("prints field errors and does not submit an invalid draft", func(t *testing.T) {
		srv := newFakeServer(t, http.StatusOK)
		draft := validDraft()
		draft["bookerEmail"] = "no-es-email"
		delete(draft, "acceptsTerms")
		var out bytes.Buffer

		err := run(context.Background(), options{
			Server:    srv.URL,
			DraftPath: writeDraft(t, draft),
			Category:  "general",
			Timeout:   time.Second,
		}, testEnv(), &out)

		require.Error(t, err)
		assert.True(t, errs.Is(err, ErrInvalidDraft))
		assert.Nil(t, srv.received)
		assert.Contains(t, out.String(), "bookerEmail: Email inválido")
		assert.Contains(t, out.String(), "acceptsTerms: Debe aceptar los términos y condiciones")
	})

	t.Run("missing receipt is rejected before reaching the server", func(t *testing.T) {
		srv := newFakeServer(t, http.StatusOK)
		var out bytes.Buffer

		err := run(context.Background(), options{
			Server:    srv.URL,
			DraftPath: writeDraft(t, validDraft()),
			Category:  "general",
			Reference: "123456",
			Timeout:   time.Second,
		}, testEnv(), &out)

		require.Error(t, err)
		assert.Nil(t, srv.received)
	})

	t.Run("unknown draft field is an error", func(t *testing.T) {
		srv := newFakeServer(t, http.StatusOK)
		draft := validDraft()
		draft["mascota"] = "perro"

		err := run(context.Background(), options{
			Server:    srv.URL,
			DraftPath: writeDraft(t, draft),
			Category:  "general",
			Timeout:   time.Second,
		}, testEnv(), &bytes.Buffer{})

		require.Error(t, err)
		assert.Contains(t, err.Error(), `"mascota"`)
	})
}
