package commands_test

import (
	"testing"

	"yolnext/internal/core/application/usecases/commands"
	"yolnext/internal/core/domain/model/history"
	"yolnext/internal/core/domain/model/kernel"
	"yolnext/internal/core/domain/model/offer"
	"yolnext/internal/core/domain/model/shipment"
	"yolnext/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestTransitionShipmentCommandHandler_Handle_PublishSuccess(t *testing.T) {
	ctx := t.Context()

	shipperID := kernel.NewUUID()
	owner, err := kernel.NewActor(shipperID, kernel.RoleShipper)
	require.NoError(t, err)

	testShipment, err := shipment.NewShipment(
		kernel.NewUUID(), shipperID, "Istanbul", "Ankara", 1200, 4500)
	require.NoError(t, err)

	cmd, err := commands.NewTransitionShipmentCommand(
		testShipment.ID(), owner, shipment.StatusWaitingForOffers, "publishing")
	require.NoError(t, err)

	shipmentRepo := new(MockShipmentRepository)
	historyRepo := new(MockHistoryRepository)
	outboxRepo := new(MockOutboxRepository)
	uow := new(MockUoW)

	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("ShipmentRepository").Return(shipmentRepo)
	uow.On("HistoryRepository").Return(historyRepo)
	uow.On("OutboxRepository").Return(outboxRepo)
	shipmentRepo.On("Get", ctx, testShipment.ID()).Return(testShipment, nil).Once()
	shipmentRepo.On("Update", ctx, mock.AnythingOfType("*shipment.Shipment")).Return(nil).Once()
	historyRepo.On("Add", ctx, mock.AnythingOfType("*history.Record")).Return(nil).Once()
	outboxRepo.On("Add", ctx, mock.AnythingOfType("*notification.StatusChangedEvent")).Return(nil).Once()
	uow.On("Commit", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewTransitionShipmentCommandHandler(factory)
	updated, err := handler.Handle(ctx, cmd)

	require.NoError(t, err)
	require.NotNil(t, updated)
	assert.Equal(t, shipment.StatusWaitingForOffers, updated.Status())

	// the audit record captures the edge and the actor
	recordCall := historyRepo.Calls[0]
	record := recordCall.Arguments[1].(*history.Record)
	assert.Equal(t, "pending", record.OldStatus())
	assert.Equal(t, "waiting_for_offers", record.NewStatus())
	assert.Equal(t, shipperID, record.ActorID())
	assert.Equal(t, "publishing", record.Notes())

	shipmentRepo.AssertExpectations(t)
	historyRepo.AssertExpectations(t)
	outboxRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestTransitionShipmentCommandHandler_Handle_UnauthorizedLeavesShipmentUnchanged(t *testing.T) {
	ctx := t.Context()

	stranger, err := kernel.NewActor(kernel.NewUUID(), kernel.RoleShipper)
	require.NoError(t, err)

	testShipment, err := shipment.NewShipment(
		kernel.NewUUID(), kernel.NewUUID(), "Istanbul", "Ankara", 1200, 4500)
	require.NoError(t, err)

	cmd, err := commands.NewTransitionShipmentCommand(
		testShipment.ID(), stranger, shipment.StatusCancelled, "")
	require.NoError(t, err)

	shipmentRepo := new(MockShipmentRepository)
	historyRepo := new(MockHistoryRepository)
	uow := new(MockUoW)

	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("ShipmentRepository").Return(shipmentRepo)
	shipmentRepo.On("Get", ctx, testShipment.ID()).Return(testShipment, nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewTransitionShipmentCommandHandler(factory)
	_, err = handler.Handle(ctx, cmd)

	require.Error(t, err)
	require.ErrorIs(t, err, errs.ErrUnauthorized)
	assert.Equal(t, shipment.StatusPending, testShipment.Status())
	shipmentRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	historyRepo.AssertNotCalled(t, "Add", mock.Anything, mock.Anything)
	uow.AssertNotCalled(t, "Commit", ctx)
}

func TestTransitionShipmentCommandHandler_Handle_UnauthorizedBeforeTaxonomy(t *testing.T) {
	ctx := t.Context()

	// a carrier not assigned to the shipment requests an edge that is also
	// invalid from pending; authorization must win
	stranger, err := kernel.NewActor(kernel.NewUUID(), kernel.RoleCarrier)
	require.NoError(t, err)

	testShipment, err := shipment.NewShipment(
		kernel.NewUUID(), kernel.NewUUID(), "Istanbul", "Ankara", 1200, 4500)
	require.NoError(t, err)

	cmd, err := commands.NewTransitionShipmentCommand(
		testShipment.ID(), stranger, shipment.StatusDelivered, "")
	require.NoError(t, err)

	shipmentRepo := new(MockShipmentRepository)
	uow := new(MockUoW)

	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("ShipmentRepository").Return(shipmentRepo)
	shipmentRepo.On("Get", ctx, testShipment.ID()).Return(testShipment, nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewTransitionShipmentCommandHandler(factory)
	_, err = handler.Handle(ctx, cmd)

	require.Error(t, err)
	require.ErrorIs(t, err, errs.ErrUnauthorized)
	assert.NotErrorIs(t, err, errs.ErrInvalidTransition)
}

func TestTransitionShipmentCommandHandler_Handle_InvalidEdge(t *testing.T) {
	ctx := t.Context()

	shipperID := kernel.NewUUID()
	owner, err := kernel.NewActor(shipperID, kernel.RoleShipper)
	require.NoError(t, err)

	testShipment, err := shipment.NewShipment(
		kernel.NewUUID(), shipperID, "Istanbul", "Ankara", 1200, 4500)
	require.NoError(t, err)

	// pending → completed is not in the taxonomy
	cmd, err := commands.NewTransitionShipmentCommand(
		testShipment.ID(), owner, shipment.StatusCompleted, "")
	require.NoError(t, err)

	shipmentRepo := new(MockShipmentRepository)
	historyRepo := new(MockHistoryRepository)
	uow := new(MockUoW)

	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("ShipmentRepository").Return(shipmentRepo)
	shipmentRepo.On("Get", ctx, testShipment.ID()).Return(testShipment, nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewTransitionShipmentCommandHandler(factory)
	_, err = handler.Handle(ctx, cmd)

	require.Error(t, err)
	require.ErrorIs(t, err, errs.ErrInvalidTransition)
	assert.Equal(t, shipment.StatusPending, testShipment.Status())
	shipmentRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	historyRepo.AssertNotCalled(t, "Add", mock.Anything, mock.Anything)
}

func TestTransitionShipmentCommandHandler_Handle_ShipmentNotFound(t *testing.T) {
	ctx := t.Context()

	owner, err := kernel.NewActor(kernel.NewUUID(), kernel.RoleShipper)
	require.NoError(t, err)

	shipmentID := kernel.NewUUID()
	cmd, err := commands.NewTransitionShipmentCommand(
		shipmentID, owner, shipment.StatusCancelled, "")
	require.NoError(t, err)

	shipmentRepo := new(MockShipmentRepository)
	uow := new(MockUoW)

	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("ShipmentRepository").Return(shipmentRepo)
	shipmentRepo.On("Get", ctx, shipmentID).
		Return(nil, errs.NewObjectNotFoundError("shipment", shipmentID.String())).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewTransitionShipmentCommandHandler(factory)
	_, err = handler.Handle(ctx, cmd)

	require.Error(t, err)
	require.ErrorIs(t, err, errs.ErrObjectNotFound)
}

func TestTransitionShipmentCommandHandler_Handle_CancelClosesPendingOffers(t *testing.T) {
	ctx := t.Context()

	shipperID := kernel.NewUUID()
	owner, err := kernel.NewActor(shipperID, kernel.RoleShipper)
	require.NoError(t, err)

	testShipment, err := shipment.RestoreShipment(
		kernel.NewUUID(), shipperID, nil,
		shipment.StatusWaitingForOffers, "Istanbul", "Ankara", 1200, 4500, 2)
	require.NoError(t, err)

	offer1, err := offer.NewOffer(kernel.NewUUID(), testShipment.ID(), kernel.NewUUID(), 3800)
	require.NoError(t, err)
	offer2, err := offer.NewOffer(kernel.NewUUID(), testShipment.ID(), kernel.NewUUID(), 4100)
	require.NoError(t, err)

	cmd, err := commands.NewTransitionShipmentCommand(
		testShipment.ID(), owner, shipment.StatusCancelled, "plans changed")
	require.NoError(t, err)

	shipmentRepo := new(MockShipmentRepository)
	offerRepo := new(MockOfferRepository)
	historyRepo := new(MockHistoryRepository)
	outboxRepo := new(MockOutboxRepository)
	uow := new(MockUoW)

	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("ShipmentRepository").Return(shipmentRepo)
	uow.On("OfferRepository").Return(offerRepo)
	uow.On("HistoryRepository").Return(historyRepo)
	uow.On("OutboxRepository").Return(outboxRepo)
	shipmentRepo.On("Get", ctx, testShipment.ID()).Return(testShipment, nil).Once()
	offerRepo.On("GetPendingByShipment", ctx, testShipment.ID()).
		Return([]*offer.Offer{offer1, offer2}, nil).Once()
	offerRepo.On("Update", ctx, mock.AnythingOfType("*offer.Offer")).Return(nil).Times(2)
	shipmentRepo.On("Update", ctx, mock.AnythingOfType("*shipment.Shipment")).Return(nil).Once()
	// one record per rejected offer plus one for the shipment itself
	historyRepo.On("Add", ctx, mock.AnythingOfType("*history.Record")).Return(nil).Times(3)
	outboxRepo.On("Add", ctx, mock.AnythingOfType("*notification.StatusChangedEvent")).
		Return(nil).Times(3)
	uow.On("Commit", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewTransitionShipmentCommandHandler(factory)
	updated, err := handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, shipment.StatusCancelled, updated.Status())
	assert.Equal(t, offer.StatusRejected, offer1.Status())
	assert.Equal(t, offer.StatusRejected, offer2.Status())

	shipmentRepo.AssertExpectations(t)
	offerRepo.AssertExpectations(t)
	historyRepo.AssertExpectations(t)
	outboxRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}
