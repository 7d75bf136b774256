package ports

import "context"

// HoldState describes where a payment hold currently stands on the
// processor side.
type HoldState int

const (
	HoldStateUnknown HoldState = iota
	// HoldStateOpen means the funds are authorized and capturable.
	HoldStateOpen
	// HoldStateCaptured means the funds were already collected.
	HoldStateCaptured
	// HoldStateVoided means the authorization expired or was released.
	HoldStateVoided
)

func (s HoldState) String() string {
	switch s {
	case HoldStateOpen:
		return "open"
	case HoldStateCaptured:
		return "captured"
	case HoldStateVoided:
		return "voided"
	default:
		return "unknown"
	}
}

// Receipt is the processor's confirmation of a captured hold.
type Receipt struct {
	HoldRef   string
	Amount    int64
	FeeAmount int64
}

// LedgerGateway is the payment processor boundary. Amounts are in the
// smallest currency unit (cents). Calls are synchronous and potentially
// slow; callers pass a context with a deadline and never invoke the
// gateway while holding anything wider than a per-job scope.
type LedgerGateway interface {
	// OpenHold authorizes amount against the payer without collecting it
	// and returns the processor's hold reference.
	OpenHold(ctx context.Context, payerRef string, amount int64, description string) (string, error)

	// CaptureHold collects a previously opened hold, retaining feeAmount
	// for the platform and routing the remainder to the payee.
	CaptureHold(ctx context.Context, holdRef string, amount int64, feeAmount int64, payeeRef string) (Receipt, error)

	// RetrieveHold reports the current state of a hold. Used to make
	// settlement retries safe: an already-captured hold is finalized
	// locally instead of captured twice.
	RetrieveHold(ctx context.Context, holdRef string) (HoldState, error)
}
