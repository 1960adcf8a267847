package infra

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"rincon-reservas/internal/pkg/errs"

	"github.com/jackc/pgx/v5/pgconn"
)

// StoreErrorKind classifies record store failures for logs and callers.
type StoreErrorKind string

const (
	KindDBFailure       StoreErrorKind = "DB_FAILURE"
	KindDuplicateRecord StoreErrorKind = "DUPLICATE_RECORD"
	KindInvalidRecord   StoreErrorKind = "INVALID_RECORD"
	KindUnavailable     StoreErrorKind = "DB_UNAVAILABLE"
)

const storeStackLines = 6

type StoreError struct {
	Kind StoreErrorKind
	msg  string
	err  error
}

func (e StoreError) Error() string {
	if e.err == nil {
		return string(e.Kind) + ": " + e.msg
	}
	return string(e.Kind) + ": " + e.msg + ": " + e.err.Error()
}

func (e StoreError) Unwrap() error {
	return e.err
}

// WrapRepoErr logs the failure and returns a StoreError whose cause is marked
// errs.ErrRecordStoreFailed.
func WrapRepoErr(logger *slog.Logger, kind StoreErrorKind, msg string, err error) error {
	attrs := []any{slog.String("kind", string(kind))}
	if err != nil {
		attrs = append(attrs, slog.String("error", err.Error()))
		err = errs.Mark(errs.Wrap(err, msg), errs.ErrRecordStoreFailed)
		attrs = append(attrs, slog.Any("stack", errs.ExtractStackLines(err, storeStackLines)))
	}
	logger.Error("record store: "+msg, attrs...)

	return StoreError{Kind: kind, msg: msg, err: err}
}

func IsKind(err error, kind StoreErrorKind) bool {
	var e StoreError
	return errors.As(err, &e) && e.Kind == kind
}

// KindOf classifies a pgx error by SQLSTATE class.
func KindOf(err error) StoreErrorKind {
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return KindUnavailable
	}

	var connErr *pgconn.ConnectError
	if errors.As(err, &connErr) {
		return KindUnavailable
	}

	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return KindDBFailure
	}
	switch {
	case pgErr.Code == "23505":
		return KindDuplicateRecord
	case strings.HasPrefix(pgErr.Code, "22"), strings.HasPrefix(pgErr.Code, "23"):
		return KindInvalidRecord
	case strings.HasPrefix(pgErr.Code, "08"), strings.HasPrefix(pgErr.Code, "57P"):
		return KindUnavailable
	default:
		return KindDBFailure
	}
}
