package commands_test

import (
	"testing"

	"yolnext/internal/core/application/usecases/commands"
	"yolnext/internal/core/domain/model/kernel"
	"yolnext/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSubmitOfferCommand_ValidInput(t *testing.T) {
	offerID := kernel.NewUUID()
	shipmentID := kernel.NewUUID()
	carrierID := kernel.NewUUID()

	cmd, err := commands.NewSubmitOfferCommand(offerID, shipmentID, carrierID, 3800)
	require.NoError(t, err)
	assert.Equal(t, offerID, cmd.OfferID())
	assert.Equal(t, shipmentID, cmd.ShipmentID())
	assert.Equal(t, carrierID, cmd.CarrierID())
	assert.Equal(t, int64(3800), cmd.Price())
	assert.NoError(t, cmd.Validate())
}

func TestNewSubmitOfferCommand_InvalidOfferID(t *testing.T) {
	invalidID := kernel.UUID{}
	_, err := commands.NewSubmitOfferCommand(invalidID, kernel.NewUUID(), kernel.NewUUID(), 3800)
	require.Error(t, err)
	assert.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
}

func TestNewSubmitOfferCommand_NonPositivePrice(t *testing.T) {
	_, err := commands.NewSubmitOfferCommand(kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), 0)
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
}

func TestSubmitOfferCommand_NotConstructed(t *testing.T) {
	var cmd commands.SubmitOfferCommand
	err := cmd.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, commands.ErrSubmitOfferCommandIsNotConstructed)
}
