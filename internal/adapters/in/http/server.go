package http

import (
	"errors"
	"net/http"

	"yolnext/internal/core/application/usecases/commands"
	"yolnext/internal/core/application/usecases/queries"
	"yolnext/internal/core/domain/model/kernel"
	"yolnext/internal/core/domain/model/offer"
	"yolnext/internal/core/domain/model/shipment"
	"yolnext/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// Server handles the HTTP API for the shipment marketplace.
// It coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	createShipmentHandler     commands.CreateShipmentCommandHandler
	transitionShipmentHandler commands.TransitionShipmentCommandHandler
	submitOfferHandler        commands.SubmitOfferCommandHandler
	transitionOfferHandler    commands.TransitionOfferCommandHandler

	// Query handlers
	getHistoryHandler         queries.GetHistoryQueryHandler
	getActiveShipmentsHandler queries.GetActiveShipmentsQueryHandler
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	createShipmentHandler commands.CreateShipmentCommandHandler,
	transitionShipmentHandler commands.TransitionShipmentCommandHandler,
	submitOfferHandler commands.SubmitOfferCommandHandler,
	transitionOfferHandler commands.TransitionOfferCommandHandler,
	getHistoryHandler queries.GetHistoryQueryHandler,
	getActiveShipmentsHandler queries.GetActiveShipmentsQueryHandler,
) *Server {
	return &Server{
		createShipmentHandler:     createShipmentHandler,
		transitionShipmentHandler: transitionShipmentHandler,
		submitOfferHandler:        submitOfferHandler,
		transitionOfferHandler:    transitionOfferHandler,
		getHistoryHandler:         getHistoryHandler,
		getActiveShipmentsHandler: getActiveShipmentsHandler,
	}
}

// RegisterRoutes wires the API routes onto the given echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	api := e.Group("/api/v1")

	api.POST("/shipments", s.CreateShipment)
	api.GET("/shipments/active", s.GetActiveShipments)
	api.POST("/shipments/:id/transitions", s.TransitionShipment)
	api.GET("/shipments/:id/history", s.GetShipmentHistory)
	api.POST("/shipments/:id/offers", s.SubmitOffer)
	api.POST("/offers/:id/transitions", s.TransitionOffer)
	api.GET("/offers/:id/history", s.GetOfferHistory)
}

// CreateShipment handles POST /api/v1/shipments - publishes a new shipment.
func (s *Server) CreateShipment(ctx echo.Context) error {
	var req NewShipment
	if err := ctx.Bind(&req); err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	shipperID, err := kernel.UUIDFromString(req.ShipperID)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid shipper id: " + err.Error(),
		})
	}

	cmd, err := commands.NewCreateShipmentCommand(
		kernel.NewUUID(), shipperID, req.Origin, req.Destination, req.WeightKg, req.Price)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid shipment data: " + err.Error(),
		})
	}

	created, err := s.createShipmentHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.errorResponse(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, shipmentFromDomain(created))
}

// TransitionShipment handles POST /api/v1/shipments/:id/transitions -
// requests a status change on a shipment.
func (s *Server) TransitionShipment(ctx echo.Context) error {
	shipmentID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid shipment id: " + err.Error(),
		})
	}

	var req NewTransition
	if err = ctx.Bind(&req); err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	actor, err := actorFromRequest(req)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid actor: " + err.Error(),
		})
	}

	nextStatus, err := shipment.StatusFromString(req.NextStatus)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid status: " + err.Error(),
		})
	}

	cmd, err := commands.NewTransitionShipmentCommand(shipmentID, actor, nextStatus, req.Notes)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid transition data: " + err.Error(),
		})
	}

	updated, err := s.transitionShipmentHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.errorResponse(ctx, err)
	}

	return ctx.JSON(http.StatusOK, shipmentFromDomain(updated))
}

// SubmitOffer handles POST /api/v1/shipments/:id/offers - submits a carrier
// offer on an open shipment.
func (s *Server) SubmitOffer(ctx echo.Context) error {
	shipmentID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid shipment id: " + err.Error(),
		})
	}

	var req NewOffer
	if err = ctx.Bind(&req); err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	carrierID, err := kernel.UUIDFromString(req.CarrierID)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid carrier id: " + err.Error(),
		})
	}

	cmd, err := commands.NewSubmitOfferCommand(kernel.NewUUID(), shipmentID, carrierID, req.Price)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid offer data: " + err.Error(),
		})
	}

	created, err := s.submitOfferHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.errorResponse(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, offerFromDomain(created))
}

// TransitionOffer handles POST /api/v1/offers/:id/transitions - accepts or
// rejects a pending offer.
func (s *Server) TransitionOffer(ctx echo.Context) error {
	offerID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid offer id: " + err.Error(),
		})
	}

	var req NewTransition
	if err = ctx.Bind(&req); err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	actor, err := actorFromRequest(req)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid actor: " + err.Error(),
		})
	}

	nextStatus, err := offer.StatusFromString(req.NextStatus)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid status: " + err.Error(),
		})
	}

	cmd, err := commands.NewTransitionOfferCommand(offerID, actor, nextStatus, req.Notes)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid transition data: " + err.Error(),
		})
	}

	updated, err := s.transitionOfferHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.errorResponse(ctx, err)
	}

	return ctx.JSON(http.StatusOK, offerFromDomain(updated))
}

// GetShipmentHistory handles GET /api/v1/shipments/:id/history - retrieves
// the transition trail of a shipment, oldest first.
func (s *Server) GetShipmentHistory(ctx echo.Context) error {
	return s.history(ctx, kernel.SubjectShipment)
}

// GetOfferHistory handles GET /api/v1/offers/:id/history - retrieves the
// transition trail of an offer, oldest first.
func (s *Server) GetOfferHistory(ctx echo.Context) error {
	return s.history(ctx, kernel.SubjectOffer)
}

func (s *Server) history(ctx echo.Context, subjectType kernel.SubjectType) error {
	subjectID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid subject id: " + err.Error(),
		})
	}

	query, err := queries.NewGetHistoryQuery(subjectType, subjectID)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid history request: " + err.Error(),
		})
	}

	records, err := s.getHistoryHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return ctx.JSON(http.StatusInternalServerError, Error{
			Code:    http.StatusInternalServerError,
			Message: "Failed to retrieve history",
		})
	}

	response := make([]HistoryRecord, len(records))
	for i, record := range records {
		response[i] = HistoryRecord{
			ID:          record.ID.String(),
			SubjectType: record.SubjectType,
			SubjectID:   record.SubjectID.String(),
			ActorID:     record.ActorID.String(),
			ActorRole:   record.ActorRole,
			OldStatus:   record.OldStatus,
			NewStatus:   record.NewStatus,
			Notes:       record.Notes,
			CreatedAt:   record.CreatedAt,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetActiveShipments handles GET /api/v1/shipments/active - retrieves all
// shipments not yet completed or cancelled.
func (s *Server) GetActiveShipments(ctx echo.Context) error {
	query := queries.NewGetActiveShipmentsQuery()

	shipments, err := s.getActiveShipmentsHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return ctx.JSON(http.StatusInternalServerError, Error{
			Code:    http.StatusInternalServerError,
			Message: "Failed to retrieve shipments",
		})
	}

	response := make([]Shipment, len(shipments))
	for i, item := range shipments {
		response[i] = Shipment{
			ID:          item.ID.String(),
			ShipperID:   item.ShipperID.String(),
			CarrierID:   uuidPtrToString(item.CarrierID),
			Status:      item.Status,
			Origin:      item.Origin,
			Destination: item.Destination,
			WeightKg:    item.WeightKg,
			Price:       item.Price,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// errorResponse maps use-case errors onto HTTP status codes.
func (s *Server) errorResponse(ctx echo.Context, err error) error {
	var code int
	switch {
	case errors.Is(err, errs.ErrValueIsRequired), errors.Is(err, errs.ErrValueIsInvalid):
		code = http.StatusBadRequest
	case errors.Is(err, errs.ErrUnauthorized):
		code = http.StatusForbidden
	case errors.Is(err, errs.ErrObjectNotFound):
		code = http.StatusNotFound
	case errors.Is(err, errs.ErrInvalidTransition),
		errors.Is(err, errs.ErrConcurrentModification),
		errors.Is(err, commands.ErrShipmentNotOpenForOffers):
		code = http.StatusConflict
	default:
		code = http.StatusInternalServerError
	}

	return ctx.JSON(code, Error{Code: code, Message: err.Error()})
}

func actorFromRequest(req NewTransition) (kernel.Actor, error) {
	actorID, err := kernel.UUIDFromString(req.ActorID)
	if err != nil {
		return kernel.Actor{}, err
	}

	role, err := kernel.RoleFromString(req.ActorRole)
	if err != nil {
		return kernel.Actor{}, err
	}

	return kernel.NewActor(actorID, role)
}

func shipmentFromDomain(aggregate *shipment.Shipment) Shipment {
	return Shipment{
		ID:          aggregate.ID().String(),
		ShipperID:   aggregate.ShipperID().String(),
		CarrierID:   uuidPtrToString(aggregate.Carrier()),
		Status:      aggregate.Status().String(),
		Origin:      aggregate.Origin(),
		Destination: aggregate.Destination(),
		WeightKg:    aggregate.WeightKg(),
		Price:       aggregate.Price(),
	}
}

func offerFromDomain(aggregate *offer.Offer) Offer {
	return Offer{
		ID:         aggregate.ID().String(),
		ShipmentID: aggregate.ShipmentID().String(),
		CarrierID:  aggregate.CarrierID().String(),
		Status:     aggregate.Status().String(),
		Price:      aggregate.Price(),
	}
}

func uuidPtrToString(id *kernel.UUID) *string {
	if id == nil {
		return nil
	}
	s := id.String()
	return &s
}
