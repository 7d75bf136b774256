package cmd

import "time"

// Config carries everything the composition root needs to wire the
// application. Values come from the environment; see cmd/app/main.go.
type Config struct {
	HTTPPort   string
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSslMode  string

	StripeSecretKey  string
	GeocoderAPIKey   string
	TwilioAccountSID string
	TwilioAuthToken  string
	TwilioFromPhone  string
	IdentityURL      string

	// PlatformFeePercent is retained from every captured hold. Default 20.
	PlatformFeePercent int64

	// StrikeBanThreshold suspends an account once its strike count reaches
	// this value. Zero disables automatic suspension.
	StrikeBanThreshold int

	// BanDuration is how long a suspension lasts before the unban sweep
	// lifts it.
	BanDuration time.Duration

	// MinConfirmAge gates confirmations and conflict reports until the job
	// has been accepted for at least this long. Zero disables the gate.
	MinConfirmAge time.Duration
}
