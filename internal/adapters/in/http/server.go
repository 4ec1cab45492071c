package http

import (
	"context"
	"net/http"

	"packflow/internal/core/application/usecases/commands"
	"packflow/internal/core/application/usecases/queries"
	"packflow/internal/core/domain/model/access"
	"packflow/internal/core/domain/model/complaint"
	"packflow/internal/core/domain/model/kernel"
	"packflow/internal/core/domain/model/order"
	"packflow/internal/pkg/errs"

	"github.com/labstack/echo/v4"
	openapi_types "github.com/oapi-codegen/runtime/types"
)

type (
	SubmitOrderHandler interface {
		Handle(ctx context.Context, cmd commands.SubmitOrderCommand) error
	}
	AdvanceOrderHandler interface {
		Handle(ctx context.Context, cmd commands.AdvanceOrderCommand) error
	}
	RaiseComplaintHandler interface {
		Handle(ctx context.Context, cmd commands.RaiseComplaintCommand) error
	}
	ResolveComplaintHandler interface {
		Handle(ctx context.Context, cmd commands.ResolveComplaintCommand) error
	}
	ListOrdersHandler interface {
		Handle(ctx context.Context, query queries.ListOrdersQuery) ([]queries.OrderResponse, error)
	}
	GetOrderHandler interface {
		Handle(ctx context.Context, query queries.GetOrderQuery) (queries.OrderResponse, error)
	}
	OrderHistoryHandler interface {
		Handle(ctx context.Context, query queries.OrderHistoryQuery) ([]queries.HistoryEntryResponse, error)
	}
	OrdersSummaryHandler interface {
		Handle(ctx context.Context, query queries.OrdersSummaryQuery) (queries.SummaryResponse, error)
	}
	ListComplaintsHandler interface {
		Handle(ctx context.Context, query queries.ListComplaintsQuery) ([]queries.ComplaintResponse, error)
	}
	GetComplaintHandler interface {
		Handle(ctx context.Context, query queries.GetComplaintQuery) (queries.ComplaintResponse, error)
	}
)

// Handlers groups the use cases the server delegates to.
type Handlers struct {
	SubmitOrder      SubmitOrderHandler
	AdvanceOrder     AdvanceOrderHandler
	RaiseComplaint   RaiseComplaintHandler
	ResolveComplaint ResolveComplaintHandler

	ListOrders     ListOrdersHandler
	GetOrder       GetOrderHandler
	OrderHistory   OrderHistoryHandler
	OrdersSummary  OrdersSummaryHandler
	ListComplaints ListComplaintsHandler
	GetComplaint   GetComplaintHandler
}

// Server implements ServerInterface on top of the application use cases.
// Every method expects BearerAuth to have run.
type Server struct {
	h Handlers
}

var _ ServerInterface = (*Server)(nil)

func NewServer(handlers Handlers) *Server {
	return &Server{h: handlers}
}

// ListOrders handles GET /orders - lists orders, optionally narrowed to a board view.
func (s *Server) ListOrders(ctx echo.Context, params ListOrdersParams) error {
	actor, err := actorFrom(ctx)
	if err != nil {
		return err
	}

	var filter order.Filter
	switch {
	case params.Board != nil:
		board, err := access.ParseSection(*params.Board)
		if err != nil {
			return err
		}
		filter, err = order.NewFilter(board, deref(params.Filter))
		if err != nil {
			return err
		}
	case params.Filter != nil:
		return errs.NewValueIsRequiredError("board")
	}

	query, err := queries.NewListOrdersQuery(actor, filter)
	if err != nil {
		return err
	}
	orders, err := s.h.ListOrders.Handle(ctx.Request().Context(), query)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, orders)
}

// SubmitOrder handles POST /orders - enters a new customer order.
func (s *Server) SubmitOrder(ctx echo.Context) error {
	actor, err := actorFrom(ctx)
	if err != nil {
		return err
	}

	var body NewOrder
	if err := ctx.Bind(&body); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request body")
	}

	items := make([]order.Item, 0, len(body.Items))
	for _, in := range body.Items {
		itemType, err := order.ParseItemType(in.ItemType)
		if err != nil {
			return err
		}
		item, err := order.NewItem(itemType, in.Quantity, in.Price, in.Description, deref(in.PhotoPath))
		if err != nil {
			return err
		}
		items = append(items, item)
	}

	orderID := kernel.NewUUID()
	cmd, err := commands.NewSubmitOrderCommand(actor, orderID, body.CustomerName, body.CustomerPhone, items)
	if err != nil {
		return err
	}
	if err := s.h.SubmitOrder.Handle(ctx.Request().Context(), cmd); err != nil {
		return err
	}

	return s.respondWithOrder(ctx, actor, orderID, http.StatusCreated)
}

// AdvanceOrder handles PUT /orders - moves an order on from one stage.
func (s *Server) AdvanceOrder(ctx echo.Context) error {
	actor, err := actorFrom(ctx)
	if err != nil {
		return err
	}

	var body AdvanceOrder
	if err := ctx.Bind(&body); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request body")
	}

	orderID, err := toKernelUUID("orderId", body.OrderId)
	if err != nil {
		return err
	}
	stage, err := order.ParseStage(body.Section)
	if err != nil {
		return err
	}
	target, err := order.ParseStatus(body.Status)
	if err != nil {
		return err
	}

	cmd, err := commands.NewAdvanceOrderCommand(actor, orderID, stage, target)
	if err != nil {
		return err
	}
	if err := s.h.AdvanceOrder.Handle(ctx.Request().Context(), cmd); err != nil {
		return err
	}

	return s.respondWithOrder(ctx, actor, orderID, http.StatusOK)
}

// GetOrdersSummary handles GET /orders/summary - counts orders per filter of a board.
func (s *Server) GetOrdersSummary(ctx echo.Context, params GetOrdersSummaryParams) error {
	actor, err := actorFrom(ctx)
	if err != nil {
		return err
	}
	board, err := access.ParseSection(params.Board)
	if err != nil {
		return err
	}

	query, err := queries.NewOrdersSummaryQuery(actor, board)
	if err != nil {
		return err
	}
	summary, err := s.h.OrdersSummary.Handle(ctx.Request().Context(), query)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, summary)
}

// GetOrder handles GET /orders/{orderId}.
func (s *Server) GetOrder(ctx echo.Context, orderId openapi_types.UUID) error {
	actor, err := actorFrom(ctx)
	if err != nil {
		return err
	}
	orderID, err := toKernelUUID("orderId", orderId)
	if err != nil {
		return err
	}
	return s.respondWithOrder(ctx, actor, orderID, http.StatusOK)
}

// GetOrderHistory handles GET /orders/{orderId}/history - the audit trail, oldest first.
func (s *Server) GetOrderHistory(ctx echo.Context, orderId openapi_types.UUID) error {
	actor, err := actorFrom(ctx)
	if err != nil {
		return err
	}
	orderID, err := toKernelUUID("orderId", orderId)
	if err != nil {
		return err
	}

	query, err := queries.NewOrderHistoryQuery(actor, orderID)
	if err != nil {
		return err
	}
	history, err := s.h.OrderHistory.Handle(ctx.Request().Context(), query)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, history)
}

// ListComplaints handles GET /complaints.
func (s *Server) ListComplaints(ctx echo.Context, params ListComplaintsParams) error {
	actor, err := actorFrom(ctx)
	if err != nil {
		return err
	}

	query, err := queries.NewListComplaintsQuery(actor, deref(params.Filter))
	if err != nil {
		return err
	}
	complaints, err := s.h.ListComplaints.Handle(ctx.Request().Context(), query)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, complaints)
}

// RaiseComplaint handles POST /complaints - opens a complaint against an order.
func (s *Server) RaiseComplaint(ctx echo.Context) error {
	actor, err := actorFrom(ctx)
	if err != nil {
		return err
	}

	var body NewComplaint
	if err := ctx.Bind(&body); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request body")
	}

	orderID, err := toKernelUUID("orderId", body.OrderId)
	if err != nil {
		return err
	}
	section, err := access.ParseSection(body.Section)
	if err != nil {
		return err
	}

	complaintID := kernel.NewUUID()
	cmd, err := commands.NewRaiseComplaintCommand(actor, complaintID, orderID, section, body.Description)
	if err != nil {
		return err
	}
	if err := s.h.RaiseComplaint.Handle(ctx.Request().Context(), cmd); err != nil {
		return err
	}

	return s.respondWithComplaint(ctx, actor, complaintID, http.StatusCreated)
}

// ResolveComplaint handles PUT /complaints - marks an open complaint resolved.
func (s *Server) ResolveComplaint(ctx echo.Context) error {
	actor, err := actorFrom(ctx)
	if err != nil {
		return err
	}

	var body ResolveComplaint
	if err := ctx.Bind(&body); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request body")
	}

	status, err := complaint.ParseStatus(body.Status)
	if err != nil {
		return err
	}
	if status != complaint.Resolved {
		return errs.NewValueIsInvalidError("status")
	}
	complaintID, err := toKernelUUID("complaintId", body.ComplaintId)
	if err != nil {
		return err
	}

	cmd, err := commands.NewResolveComplaintCommand(actor, complaintID)
	if err != nil {
		return err
	}
	if err := s.h.ResolveComplaint.Handle(ctx.Request().Context(), cmd); err != nil {
		return err
	}

	return s.respondWithComplaint(ctx, actor, complaintID, http.StatusOK)
}

// GetMe handles GET /me - who the bearer is and what they may touch.
func (s *Server) GetMe(ctx echo.Context) error {
	actor, err := actorFrom(ctx)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, Me{
		Id:          actor.ID().Bytes(),
		FullName:    actor.FullName(),
		Email:       actor.Email(),
		Role:        actor.Role().String(),
		Permissions: actor.Permissions().Codes(),
	})
}

func (s *Server) respondWithOrder(ctx echo.Context, actor *access.Actor, orderID kernel.UUID, code int) error {
	query, err := queries.NewGetOrderQuery(actor, orderID)
	if err != nil {
		return err
	}
	resp, err := s.h.GetOrder.Handle(ctx.Request().Context(), query)
	if err != nil {
		return err
	}
	return ctx.JSON(code, resp)
}

func (s *Server) respondWithComplaint(ctx echo.Context, actor *access.Actor, complaintID kernel.UUID, code int) error {
	query, err := queries.NewGetComplaintQuery(actor, complaintID)
	if err != nil {
		return err
	}
	resp, err := s.h.GetComplaint.Handle(ctx.Request().Context(), query)
	if err != nil {
		return err
	}
	return ctx.JSON(code, resp)
}

func toKernelUUID(name string, id openapi_types.UUID) (kernel.UUID, error) {
	out, err := kernel.UUIDFromBytes(id[:])
	if err != nil {
		return kernel.UUID{}, errs.NewValueIsInvalidErrorWithCause(name, err)
	}
	return out, nil
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
