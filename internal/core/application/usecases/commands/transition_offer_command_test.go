package commands_test

import (
	"testing"

	"yolnext/internal/core/application/usecases/commands"
	"yolnext/internal/core/domain/model/kernel"
	"yolnext/internal/core/domain/model/offer"
	"yolnext/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTransitionOfferCommand_ValidInput(t *testing.T) {
	offerID := kernel.NewUUID()
	actor, err := kernel.NewActor(kernel.NewUUID(), kernel.RoleShipper)
	require.NoError(t, err)

	cmd, err := commands.NewTransitionOfferCommand(offerID, actor, offer.StatusAccepted, "best price")
	require.NoError(t, err)
	assert.Equal(t, offerID, cmd.OfferID())
	assert.Equal(t, actor, cmd.Actor())
	assert.Equal(t, offer.StatusAccepted, cmd.NextStatus())
	assert.Equal(t, "best price", cmd.Notes())
}

func TestNewTransitionOfferCommand_InvalidOfferID(t *testing.T) {
	actor, err := kernel.NewActor(kernel.NewUUID(), kernel.RoleShipper)
	require.NoError(t, err)

	_, err = commands.NewTransitionOfferCommand(kernel.UUID{}, actor, offer.StatusRejected, "")
	require.Error(t, err)
	assert.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
}

func TestNewTransitionOfferCommand_InvalidStatus(t *testing.T) {
	actor, err := kernel.NewActor(kernel.NewUUID(), kernel.RoleShipper)
	require.NoError(t, err)

	_, err = commands.NewTransitionOfferCommand(kernel.NewUUID(), actor, offer.StatusUnknown, "")
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
}

func TestTransitionOfferCommand_NotConstructed(t *testing.T) {
	var cmd commands.TransitionOfferCommand
	err := cmd.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, commands.ErrTransitionOfferCommandIsNotConstructed)
}
