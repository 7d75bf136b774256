package strike_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"haul/internal/core/domain/model/kernel"
	"haul/internal/core/domain/model/strike"
	"haul/internal/pkg/errs"
)

func TestNewStrike(t *testing.T) {
	id := kernel.NewUUID()
	againstID := kernel.NewUUID()
	issuedBy := kernel.NewUUID()
	jobID := kernel.NewUUID()
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	s, err := strike.NewStrike(id, againstID, issuedBy, jobID, "mover never showed up", now)
	require.NoError(t, err)

	assert.NoError(t, s.Validate())
	assert.True(t, s.ID().IsEqual(id))
	assert.True(t, s.AgainstID().IsEqual(againstID))
	assert.True(t, s.IssuedBy().IsEqual(issuedBy))
	assert.True(t, s.JobID().IsEqual(jobID))
	assert.Equal(t, "mover never showed up", s.Comment())
	assert.Equal(t, now, s.CreatedAt())
}

func TestNewStrikeEmptyCommentIsAllowed(t *testing.T) {
	s, err := strike.NewStrike(kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
		kernel.NewUUID(), "", time.Now())
	require.NoError(t, err)
	assert.Empty(t, s.Comment())
}

func TestNewStrikeValidation(t *testing.T) {
	valid := kernel.NewUUID()

	tests := map[string][4]kernel.UUID{
		"empty id":      {{}, valid, valid, valid},
		"empty against": {valid, {}, valid, valid},
		"empty issuer":  {valid, valid, {}, valid},
		"empty job":     {valid, valid, valid, {}},
	}

	for name, ids := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := strike.NewStrike(ids[0], ids[1], ids[2], ids[3], "", time.Now())
			assert.ErrorIs(t, err, errs.ErrValueIsRequired)
		})
	}
}

func TestStrikeZeroValueIsNotValid(t *testing.T) {
	var s strike.Strike
	assert.ErrorIs(t, s.Validate(), strike.ErrStrikeIsNotConstructed)
}
