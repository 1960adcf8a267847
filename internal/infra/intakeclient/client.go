package intakeclient

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strings"
	"time"

	"rincon-reservas/internal/domain/payment"
	"rincon-reservas/internal/domain/reservation"
	reqdto "rincon-reservas/internal/handler/dto/request"
	resdto "rincon-reservas/internal/handler/dto/response"
	"rincon-reservas/internal/handler/httperr"
	"rincon-reservas/internal/pkg/errs"
)

const (
	processPath = "/api/process-reservation"
	ratePath    = "/api/exchange-rate"
	maxBodySize = 1 << 20
)

// Client submits payments to a running intake server.
type Client struct {
	baseURL string
	http    *http.Client
}

func New(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
	}
}

func (c *Client) ProcessReservation(ctx context.Context, sub *reservation.Submission) (*payment.IntakeAck, error) {
	body, err := reqdto.NewProcessReservationRequest(sub)
	if err != nil {
		return nil, err
	}
	payload, err := json.Marshal(body)
	if err != nil {
		return nil, errs.Wrap(err, "encode intake request")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+processPath, bytes.NewReader(payload))
	if err != nil {
		return nil, errs.Wrap(err, "build intake request")
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, errs.Wrap(err, "post intake request")
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxBodySize))
	if err != nil {
		return nil, errs.Wrap(err, "read intake response")
	}

	if resp.StatusCode != http.StatusOK {
		var e httperr.Response
		_ = json.Unmarshal(raw, &e)
		return nil, &payment.EndpointError{Status: resp.StatusCode, Message: e.Error}
	}

	var ok resdto.ProcessReservationResponse
	if err := json.Unmarshal(raw, &ok); err != nil {
		return nil, errs.Wrap(err, "decode intake response")
	}
	if !ok.Success || ok.SolicitudID == "" {
		return nil, &payment.EndpointError{Status: resp.StatusCode, Message: ""}
	}

	return &payment.IntakeAck{
		SolicitudID:  ok.SolicitudID,
		Status:       ok.Data.Status,
		CustomerName: ok.Data.CustomerName,
		TotalAmount:  ok.Data.TotalAmount,
		Reference:    ok.Data.Reference,
		Message:      ok.Message,
	}, nil
}

// ExchangeRate reads the server's current rate.
func (c *Client) ExchangeRate(ctx context.Context) (float64, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+ratePath, nil)
	if err != nil {
		return 0, errs.Wrap(err, "build exchange rate request")
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return 0, errs.Wrap(err, "get exchange rate")
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return 0, &payment.EndpointError{Status: resp.StatusCode}
	}

	var body resdto.ExchangeRateResponse
	if err := json.NewDecoder(io.LimitReader(resp.Body, maxBodySize)).Decode(&body); err != nil {
		return 0, errs.Wrap(err, "decode exchange rate")
	}
	return body.Rate, nil
}
