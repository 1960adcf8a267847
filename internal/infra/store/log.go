package store

import (
	"context"
	"log/slog"
	"time"

	"rincon-reservas/internal/domain/reservation"
)

// LogRecordStore writes each record as one structured log line. It is the
// store used when no database is configured.
type LogRecordStore struct {
	logger *slog.Logger
}

func NewLogRecordStore(logger *slog.Logger) *LogRecordStore {
	return &LogRecordStore{logger: logger}
}

func (s *LogRecordStore) Save(ctx context.Context, rec *reservation.Record) error {
	d := rec.Details()
	s.logger.LogAttrs(ctx, slog.LevelInfo, "reservation record saved",
		slog.String("record_store", "log"),
		slog.String("record_id", rec.ID().String()),
		slog.String("solicitud_id", rec.SolicitudID()),
		slog.String("customer_name", d.CustomerName()),
		slog.String("customer_email", d.BookerEmail),
		slog.String("visit_date", d.VisitDate),
		slog.Int("total_people", d.TotalPeople),
		slog.Float64("total_vef", d.TotalVEF),
		slog.String("payment_method", rec.PaymentMethod()),
		slog.String("reference", rec.Reference()),
		slog.Bool("has_screenshot", rec.HasScreenshot()),
		slog.String("status", rec.Status().String()),
		slog.String("submitted_at", rec.SubmittedAt().UTC().Format(time.RFC3339)),
	)
	return nil
}
