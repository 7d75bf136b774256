package commands_test

import (
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"haul/internal/core/domain/model/account"
	"haul/internal/core/domain/model/job"
	"haul/internal/core/domain/model/kernel"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestAccount(t *testing.T, name string) *account.Account {
	t.Helper()
	acc, err := account.NewAccount(kernel.NewUUID(), name, "+15550100")
	require.NoError(t, err)
	return acc
}

func newOpenJob(t *testing.T, posterID kernel.UUID) *job.Job {
	t.Helper()
	j, err := job.NewJob(kernel.NewUUID(), posterID, "Couch move", "",
		"+15550100", "12 Fremont St", "400 Main St", 12500,
		time.Now().UTC().Add(-2*time.Hour))
	require.NoError(t, err)
	return j
}

// newAcceptedJob builds a job accepted two hours ago with a hold attached,
// old enough to clear any confirmation age gate used in these tests.
func newAcceptedJob(t *testing.T, posterID, moverID kernel.UUID) *job.Job {
	t.Helper()
	j := newOpenJob(t, posterID)
	require.NoError(t, j.Assign(moverID, time.Now().UTC().Add(-2*time.Hour)))
	require.NoError(t, j.AttachHold("hold_123"))
	return j
}
