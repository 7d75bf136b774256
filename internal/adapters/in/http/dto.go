package http

import "time"

// RegisterAccountRequest is the body for POST /api/v1/accounts.
type RegisterAccountRequest struct {
	DisplayName string `json:"display_name"`
	Phone       string `json:"phone"`
}

// AttachPaymentProfileRequest is the body for
// POST /api/v1/accounts/:accountId/payment-profile. At least one ref is
// required; each may be set only once.
type AttachPaymentProfileRequest struct {
	PayerRef string `json:"payer_ref"`
	PayeeRef string `json:"payee_ref"`
}

// PostJobRequest is the body for POST /api/v1/jobs. Price is in cents.
type PostJobRequest struct {
	PosterID           string `json:"poster_id"`
	Title              string `json:"title"`
	Description        string `json:"description"`
	ContactPhone       string `json:"contact_phone"`
	OriginAddress      string `json:"origin_address"`
	DestinationAddress string `json:"destination_address"`
	Price              int64  `json:"price"`
}

// AcceptJobRequest is the body for POST /api/v1/jobs/:jobId/accept.
type AcceptJobRequest struct {
	MoverID string `json:"mover_id"`
}

// ConfirmCompletionRequest is the body for POST /api/v1/jobs/:jobId/confirm.
// Side is "poster" or "mover".
type ConfirmCompletionRequest struct {
	Side string `json:"side"`
}

// ReportConflictRequest is the body for POST /api/v1/jobs/:jobId/conflict.
type ReportConflictRequest struct {
	ReporterID string `json:"reporter_id"`
	AgainstID  string `json:"against_id"`
	Comment    string `json:"comment"`
}

// CreatedResponse carries the server-assigned identifier of a new resource.
type CreatedResponse struct {
	ID string `json:"id"`
}

// OpenJobResponse is one entry on the open job board.
type OpenJobResponse struct {
	ID                 string    `json:"id"`
	Title              string    `json:"title"`
	Description        string    `json:"description"`
	OriginAddress      string    `json:"origin_address"`
	DestinationAddress string    `json:"destination_address"`
	DistanceKm         float64   `json:"distance_km"`
	Price              int64     `json:"price"`
	CreatedAt          time.Time `json:"created_at"`
}

// GeoPointResponse is a resolved coordinate pair.
type GeoPointResponse struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// JobDetailResponse is the full job detail, status text included.
type JobDetailResponse struct {
	ID                 string            `json:"id"`
	PosterID           string            `json:"poster_id"`
	MoverID            *string           `json:"mover_id,omitempty"`
	Title              string            `json:"title"`
	Description        string            `json:"description"`
	ContactPhone       string            `json:"contact_phone"`
	OriginAddress      string            `json:"origin_address"`
	DestinationAddress string            `json:"destination_address"`
	Origin             *GeoPointResponse `json:"origin,omitempty"`
	Destination        *GeoPointResponse `json:"destination,omitempty"`
	DistanceKm         float64           `json:"distance_km"`
	Price              int64             `json:"price"`
	Status             string            `json:"status"`
	StatusLabel        string            `json:"status_label"`
	PosterConfirmed    bool              `json:"poster_confirmed"`
	MoverConfirmed     bool              `json:"mover_confirmed"`
	Completed          bool              `json:"completed"`
	InConflict         bool              `json:"in_conflict"`
	ConfirmableInSec   int64             `json:"confirmable_in_seconds"`
	CreatedAt          time.Time         `json:"created_at"`
	AcceptedAt         *time.Time        `json:"accepted_at,omitempty"`
}

// ErrorResponse is the uniform error body.
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}
