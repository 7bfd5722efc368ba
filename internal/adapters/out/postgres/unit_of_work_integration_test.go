package postgres_test

import (
	"context"
	"testing"
	"time"

	"yolnext/internal/adapters/out/postgres"
	"yolnext/internal/adapters/out/postgres/historyrepo"
	"yolnext/internal/adapters/out/postgres/offerrepo"
	"yolnext/internal/adapters/out/postgres/outboxrepo"
	"yolnext/internal/adapters/out/postgres/shipmentrepo"
	"yolnext/internal/core/domain/model/history"
	"yolnext/internal/core/domain/model/kernel"
	"yolnext/internal/core/domain/model/notification"
	"yolnext/internal/core/domain/model/shipment"
	"yolnext/internal/pkg/errs"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	tcpostgres "github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// UnitOfWorkIntegrationTestSuite verifies that a transition's writes commit
// and roll back as one unit across all four repositories.
type UnitOfWorkIntegrationTestSuite struct {
	suite.Suite
	container *tcpostgres.PostgresContainer
	db        *gorm.DB
	factory   *postgres.GormUnitOfWorkFactory
}

func (suite *UnitOfWorkIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := tcpostgres.Run(ctx,
		"postgres:15-alpine",
		tcpostgres.WithDatabase("testdb"),
		tcpostgres.WithUsername("testuser"),
		tcpostgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	suite.Require().NoError(err)
	suite.container = container

	connStr, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(postgresdriver.Open(connStr), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	suite.Require().NoError(db.AutoMigrate(
		&shipmentrepo.ShipmentDTO{},
		&offerrepo.OfferDTO{},
		&historyrepo.RecordDTO{},
		&outboxrepo.EventDTO{},
	))
}

func (suite *UnitOfWorkIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(
		suite.db.Exec("TRUNCATE TABLE shipments, offers, history_records, outbox_events").Error)
	suite.factory = postgres.NewGormUnitOfWorkFactory(suite.db)
}

func (suite *UnitOfWorkIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *UnitOfWorkIntegrationTestSuite) TestTransactionLifecycle() {
	ctx := context.Background()
	uow := suite.factory.Create()

	suite.Require().NoError(uow.Begin(ctx))
	// Begin twice must not open a nested transaction
	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.Commit(ctx))

	// no transaction left to commit or roll back
	suite.Require().ErrorIs(uow.Commit(ctx), gorm.ErrInvalidTransaction)
	suite.Require().ErrorIs(uow.Rollback(ctx), gorm.ErrInvalidTransaction)
}

func (suite *UnitOfWorkIntegrationTestSuite) TestCommit_PersistsAcrossRepositories() {
	ctx := context.Background()
	uow := suite.factory.Create()

	testShipment := suite.createTestShipment()
	record := suite.createTestRecord(testShipment.ID())
	event := suite.createTestEvent(testShipment.ID(), testShipment.ShipperID())

	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.ShipmentRepository().Add(ctx, testShipment))
	suite.Require().NoError(uow.HistoryRepository().Add(ctx, record))
	suite.Require().NoError(uow.OutboxRepository().Add(ctx, event))
	suite.Require().NoError(uow.Commit(ctx))

	verify := suite.factory.Create()
	loaded, err := verify.ShipmentRepository().Get(ctx, testShipment.ID())
	suite.Require().NoError(err)
	suite.Equal(testShipment.ID(), loaded.ID())

	records, err := verify.HistoryRepository().GetBySubject(ctx, kernel.SubjectShipment, testShipment.ID())
	suite.Require().NoError(err)
	suite.Len(records, 1)

	events, err := verify.OutboxRepository().GetUnpublished(ctx, 10)
	suite.Require().NoError(err)
	suite.Len(events, 1)
}

func (suite *UnitOfWorkIntegrationTestSuite) TestRollback_DiscardsAcrossRepositories() {
	ctx := context.Background()
	uow := suite.factory.Create()

	testShipment := suite.createTestShipment()
	record := suite.createTestRecord(testShipment.ID())
	event := suite.createTestEvent(testShipment.ID(), testShipment.ShipperID())

	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.ShipmentRepository().Add(ctx, testShipment))
	suite.Require().NoError(uow.HistoryRepository().Add(ctx, record))
	suite.Require().NoError(uow.OutboxRepository().Add(ctx, event))
	suite.Require().NoError(uow.Rollback(ctx))

	verify := suite.factory.Create()
	_, err := verify.ShipmentRepository().Get(ctx, testShipment.ID())
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)

	records, err := verify.HistoryRepository().GetBySubject(ctx, kernel.SubjectShipment, testShipment.ID())
	suite.Require().NoError(err)
	suite.Empty(records)

	events, err := verify.OutboxRepository().GetUnpublished(ctx, 10)
	suite.Require().NoError(err)
	suite.Empty(events)
}

func (suite *UnitOfWorkIntegrationTestSuite) TestWithoutTransaction_RepositoriesUsePool() {
	ctx := context.Background()
	uow := suite.factory.Create()

	testShipment := suite.createTestShipment()
	suite.Require().NoError(uow.ShipmentRepository().Add(ctx, testShipment))

	// visible immediately, no commit needed
	loaded, err := suite.factory.Create().ShipmentRepository().Get(ctx, testShipment.ID())
	suite.Require().NoError(err)
	suite.Equal(testShipment.ID(), loaded.ID())
}

func (suite *UnitOfWorkIntegrationTestSuite) TestUncommittedChanges_InvisibleOutsideTransaction() {
	ctx := context.Background()
	uow := suite.factory.Create()

	testShipment := suite.createTestShipment()
	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.ShipmentRepository().Add(ctx, testShipment))

	_, err := suite.factory.Create().ShipmentRepository().Get(ctx, testShipment.ID())
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)

	suite.Require().NoError(uow.Rollback(ctx))
}

func (suite *UnitOfWorkIntegrationTestSuite) createTestShipment() *shipment.Shipment {
	s, err := shipment.NewShipment(
		kernel.NewUUID(), kernel.NewUUID(), "Istanbul", "Ankara", 1200, 4500)
	suite.Require().NoError(err)
	return s
}

func (suite *UnitOfWorkIntegrationTestSuite) createTestRecord(subjectID kernel.UUID) *history.Record {
	record, err := history.RestoreRecord(
		kernel.NewUUID(), kernel.SubjectShipment, subjectID,
		kernel.NewUUID(), kernel.RoleShipper,
		"pending", "waiting_for_offers", "", time.Now().UTC())
	suite.Require().NoError(err)
	return record
}

func (suite *UnitOfWorkIntegrationTestSuite) createTestEvent(
	subjectID, affectedUserID kernel.UUID,
) *notification.StatusChangedEvent {
	event, err := notification.NewStatusChangedEvent(
		kernel.NewUUID(), kernel.SubjectShipment, subjectID,
		"pending", "waiting_for_offers", []kernel.UUID{affectedUserID})
	suite.Require().NoError(err)
	return event
}

func TestUnitOfWorkIntegrationTestSuite(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration tests in short mode")
	}
	suite.Run(t, new(UnitOfWorkIntegrationTestSuite))
}
