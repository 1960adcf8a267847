package pgconv

import (
	"errors"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

var ErrInvalidNumeric = errors.New("value cannot be stored as numeric")

func UUIDToPgtype(id uuid.UUID) pgtype.UUID {
	return pgtype.UUID{Bytes: id, Valid: true}
}

// TextToPgtype stores blank strings as NULL.
func TextToPgtype(s string) pgtype.Text {
	if strings.TrimSpace(s) == "" {
		return pgtype.Text{Valid: false}
	}
	return pgtype.Text{String: s, Valid: true}
}

func TimeToPgtype(t time.Time) pgtype.Timestamptz {
	if t.IsZero() {
		return pgtype.Timestamptz{Valid: false}
	}
	return pgtype.Timestamptz{Time: t.UTC(), Valid: true}
}

// NumericFromAmount keeps two decimals, the precision of money columns.
func NumericFromAmount(v float64) (pgtype.Numeric, error) {
	var n pgtype.Numeric
	if err := n.Scan(strconv.FormatFloat(v, 'f', 2, 64)); err != nil {
		return pgtype.Numeric{}, errors.Join(ErrInvalidNumeric, err)
	}
	if n.NaN || n.InfinityModifier != pgtype.Finite {
		return pgtype.Numeric{}, ErrInvalidNumeric
	}
	return n, nil
}
