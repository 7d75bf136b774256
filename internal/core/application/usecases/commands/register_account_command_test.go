package commands_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"haul/internal/core/application/usecases/commands"
	"haul/internal/core/domain/model/kernel"
	"haul/internal/pkg/errs"
)

func TestNewRegisterAccountCommand(t *testing.T) {
	id := kernel.NewUUID()

	cmd, err := commands.NewRegisterAccountCommand(id, "Sam Porter", "+15550100")
	require.NoError(t, err)

	assert.NoError(t, cmd.Validate())
	assert.True(t, cmd.AccountID().IsEqual(id))
	assert.Equal(t, "Sam Porter", cmd.DisplayName())
	assert.Equal(t, "+15550100", cmd.Phone())
}

func TestNewRegisterAccountCommandValidation(t *testing.T) {
	id := kernel.NewUUID()

	tests := map[string]struct {
		id      kernel.UUID
		name    string
		phone   string
		wantErr error
	}{
		"empty id":    {kernel.UUID{}, "Sam", "+15550100", errs.ErrValueIsRequired},
		"empty name":  {id, "", "+15550100", commands.ErrDisplayNameIsRequired},
		"empty phone": {id, "Sam", "", commands.ErrPhoneIsRequired},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := commands.NewRegisterAccountCommand(tc.id, tc.name, tc.phone)
			assert.ErrorIs(t, err, tc.wantErr)
		})
	}
}

func TestRegisterAccountCommandZeroValueIsNotValid(t *testing.T) {
	var cmd commands.RegisterAccountCommand
	assert.ErrorIs(t, cmd.Validate(), commands.ErrRegisterAccountCommandIsNotConstructed)
}
