package reservation

import (
	"strconv"
	"time"

	"github.com/google/uuid"
)

const solicitudPrefix = "PM-"

// NewSolicitudID derives the public request id from the last 8 digits of the
// millisecond timestamp. Two requests in the same millisecond share an id.
func NewSolicitudID(now time.Time) string {
	ms := strconv.FormatInt(now.UnixMilli(), 10)
	if len(ms) > 8 {
		ms = ms[len(ms)-8:]
	}
	return solicitudPrefix + ms
}

type Record struct {
	id            uuid.UUID
	solicitudID   string
	details       Details
	paymentMethod string
	reference     string
	hasScreenshot bool
	status        Status
	submittedAt   time.Time
}

func NewRecord(solicitudID string, details Details, reference string, hasScreenshot bool, submittedAt time.Time) *Record {
	return &Record{
		id:            uuid.New(),
		solicitudID:   solicitudID,
		details:       details,
		paymentMethod: PaymentMethodPagoMovil,
		reference:     reference,
		hasScreenshot: hasScreenshot,
		status:        StatusPendingVerification,
		submittedAt:   submittedAt,
	}
}

func (r *Record) ID() uuid.UUID          { return r.id }
func (r *Record) SolicitudID() string    { return r.solicitudID }
func (r *Record) Details() Details       { return r.details }
func (r *Record) PaymentMethod() string  { return r.paymentMethod }
func (r *Record) Reference() string      { return r.reference }
func (r *Record) HasScreenshot() bool    { return r.hasScreenshot }
func (r *Record) Status() Status         { return r.status }
func (r *Record) SubmittedAt() time.Time { return r.submittedAt }
