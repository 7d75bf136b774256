package services

import "haul/internal/pkg/errs"

// StrikePolicy is a domain service deciding when accumulated strikes turn
// into a suspension. A threshold of zero disables automatic suspension.
type StrikePolicy struct {
	banThreshold int
}

// NewStrikePolicy creates a policy suspending users at banThreshold strikes.
func NewStrikePolicy(banThreshold int) (StrikePolicy, error) {
	if banThreshold < 0 {
		return StrikePolicy{}, errs.NewValueIsInvalidError("banThreshold")
	}

	return StrikePolicy{banThreshold: banThreshold}, nil
}

// BanThreshold returns the configured strike limit. Zero means disabled.
func (p StrikePolicy) BanThreshold() int {
	return p.banThreshold
}

// ShouldSuspend reports whether a user with strikeCount strikes must be suspended.
func (p StrikePolicy) ShouldSuspend(strikeCount int) bool {
	if p.banThreshold == 0 {
		return false
	}
	return strikeCount >= p.banThreshold
}
