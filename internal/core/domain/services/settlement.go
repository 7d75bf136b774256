package services

import "haul/internal/pkg/errs"

// SettlementCalculator is a domain service computing the platform's cut of a
// settled job. The fee is a whole percentage of the held amount, rounded down
// (integer division), so the mover always receives at least amount - fee and
// the platform never over-collects on sub-unit remainders.
type SettlementCalculator struct {
	feePercent int64
}

// NewSettlementCalculator creates a calculator for the given fee percentage.
// The percentage must be within [0, 100].
func NewSettlementCalculator(feePercent int64) (SettlementCalculator, error) {
	if feePercent < 0 || feePercent > 100 {
		return SettlementCalculator{}, errs.NewValueIsOutOfRangeError(
			"feePercent", feePercent, 0, 100)
	}

	return SettlementCalculator{feePercent: feePercent}, nil
}

// FeePercent returns the configured platform fee percentage.
func (c SettlementCalculator) FeePercent() int64 {
	return c.feePercent
}

// Fee computes the platform fee for a held amount in the smallest currency unit.
func (c SettlementCalculator) Fee(amount int64) int64 {
	return amount * c.feePercent / 100
}
