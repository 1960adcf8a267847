package store

import (
	"context"
	_ "embed"
	"encoding/json"
	"log/slog"

	"rincon-reservas/internal/domain/reservation"
	"rincon-reservas/internal/infra"
	"rincon-reservas/internal/pkg/pgconv"

	"github.com/jackc/pgx/v5/pgxpool"
)

//go:embed schema.sql
var schemaSQL string

const insertRecordSQL = `
INSERT INTO reservation_records (
    id, solicitud_id, category, booker_name, booker_email, visit_date, total_people,
    total_vef, payment_method, reference, has_screenshot, status, details, submitted_at
) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)`

// PostgresRecordStore appends intake records; it never updates or reads them.
type PostgresRecordStore struct {
	pool   *pgxpool.Pool
	logger *slog.Logger
}

func NewPostgresRecordStore(pool *pgxpool.Pool, logger *slog.Logger) *PostgresRecordStore {
	return &PostgresRecordStore{pool: pool, logger: logger}
}

func (s *PostgresRecordStore) EnsureSchema(ctx context.Context) error {
	if _, err := s.pool.Exec(ctx, schemaSQL); err != nil {
		return infra.WrapRepoErr(s.logger, infra.KindOf(err), "failed to apply record schema", err)
	}
	return nil
}

func (s *PostgresRecordStore) Save(ctx context.Context, rec *reservation.Record) error {
	details := rec.Details()
	payload, err := json.Marshal(details)
	if err != nil {
		return infra.WrapRepoErr(s.logger, infra.KindInvalidRecord, "failed to encode reservation details", err)
	}

	total, err := pgconv.NumericFromAmount(details.TotalVEF)
	if err != nil {
		return infra.WrapRepoErr(s.logger, infra.KindInvalidRecord, "invalid reservation total", err)
	}

	_, err = s.pool.Exec(ctx, insertRecordSQL,
		pgconv.UUIDToPgtype(rec.ID()),
		rec.SolicitudID(),
		pgconv.TextToPgtype(details.Category),
		details.CustomerName(),
		pgconv.TextToPgtype(details.BookerEmail),
		pgconv.TextToPgtype(details.VisitDate),
		details.TotalPeople,
		total,
		rec.PaymentMethod(),
		rec.Reference(),
		rec.HasScreenshot(),
		rec.Status().String(),
		payload,
		pgconv.TimeToPgtype(rec.SubmittedAt()),
	)
	if err != nil {
		return infra.WrapRepoErr(s.logger, infra.KindOf(err), "failed to insert reservation record", err)
	}
	return nil
}
