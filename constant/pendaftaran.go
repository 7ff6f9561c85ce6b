package constant

import "time"

type contextKey string

const RequestIDKey contextKey = "request_id"

type PendaftaranEvent string

const (
	PendaftaranEventCreated PendaftaranEvent = "pendaftaran.created"
	PendaftaranEventUpdated PendaftaranEvent = "pendaftaran.updated"
	PendaftaranEventDeleted PendaftaranEvent = "pendaftaran.deleted"
)

const (
	// DefaultRedirectDelay is how long the success page stays up before
	// navigating back to the listing.
	DefaultRedirectDelay     = 2 * time.Second
	DefaultSubmissionLockTTL = 30 * time.Second
	DefaultDisplayTimezone   = "Asia/Jakarta"

	// ConfirmDelete is the value a delete form must carry in its "confirm" field.
	ConfirmDelete = "ya"
)
