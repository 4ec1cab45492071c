package http

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/oapi-codegen/runtime"
	openapi_types "github.com/oapi-codegen/runtime/types"
	"github.com/shopspring/decimal"
)

// Wire types of openapi/openapi.yaml.

type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

type NewItem struct {
	ItemType    string          `json:"itemType"`
	Quantity    int             `json:"quantity"`
	Price       decimal.Decimal `json:"price"`
	Description string          `json:"description"`
	PhotoPath   *string         `json:"photoPath,omitempty"`
}

type NewOrder struct {
	CustomerName  string    `json:"customerName"`
	CustomerPhone string    `json:"customerPhone"`
	Items         []NewItem `json:"items"`
}

type AdvanceOrder struct {
	OrderId openapi_types.UUID `json:"orderId"`
	Status  string             `json:"status"`
	Section string             `json:"section"`
}

type NewComplaint struct {
	OrderId     openapi_types.UUID `json:"orderId"`
	Section     string             `json:"section"`
	Description string             `json:"description"`
}

type ResolveComplaint struct {
	ComplaintId openapi_types.UUID `json:"complaintId"`
	Status      string             `json:"status"`
}

type Me struct {
	Id          openapi_types.UUID `json:"id"`
	FullName    string             `json:"fullName"`
	Email       string             `json:"email"`
	Role        string             `json:"role"`
	Permissions map[string]string  `json:"permissions"`
}

type ListOrdersParams struct {
	Board  *string `form:"board,omitempty" json:"board,omitempty"`
	Filter *string `form:"filter,omitempty" json:"filter,omitempty"`
}

type GetOrdersSummaryParams struct {
	Board string `form:"board" json:"board"`
}

type ListComplaintsParams struct {
	Filter *string `form:"filter,omitempty" json:"filter,omitempty"`
}

// ServerInterface lists one method per operation of the API document.
type ServerInterface interface {
	ListOrders(ctx echo.Context, params ListOrdersParams) error
	SubmitOrder(ctx echo.Context) error
	AdvanceOrder(ctx echo.Context) error
	GetOrdersSummary(ctx echo.Context, params GetOrdersSummaryParams) error
	GetOrder(ctx echo.Context, orderId openapi_types.UUID) error
	GetOrderHistory(ctx echo.Context, orderId openapi_types.UUID) error
	ListComplaints(ctx echo.Context, params ListComplaintsParams) error
	RaiseComplaint(ctx echo.Context) error
	ResolveComplaint(ctx echo.Context) error
	GetMe(ctx echo.Context) error
}

// ServerInterfaceWrapper binds path and query parameters before calling the server.
type ServerInterfaceWrapper struct {
	Handler ServerInterface
}

func (w *ServerInterfaceWrapper) ListOrders(ctx echo.Context) error {
	var params ListOrdersParams
	if err := runtime.BindQueryParameter("form", true, false, "board", ctx.QueryParams(), &params.Board); err != nil {
		return badParameter("board", err)
	}
	if err := runtime.BindQueryParameter("form", true, false, "filter", ctx.QueryParams(), &params.Filter); err != nil {
		return badParameter("filter", err)
	}
	return w.Handler.ListOrders(ctx, params)
}

func (w *ServerInterfaceWrapper) SubmitOrder(ctx echo.Context) error {
	return w.Handler.SubmitOrder(ctx)
}

func (w *ServerInterfaceWrapper) AdvanceOrder(ctx echo.Context) error {
	return w.Handler.AdvanceOrder(ctx)
}

func (w *ServerInterfaceWrapper) GetOrdersSummary(ctx echo.Context) error {
	var params GetOrdersSummaryParams
	if err := runtime.BindQueryParameter("form", true, true, "board", ctx.QueryParams(), &params.Board); err != nil {
		return badParameter("board", err)
	}
	return w.Handler.GetOrdersSummary(ctx, params)
}

func (w *ServerInterfaceWrapper) GetOrder(ctx echo.Context) error {
	orderID, err := bindOrderID(ctx)
	if err != nil {
		return err
	}
	return w.Handler.GetOrder(ctx, orderID)
}

func (w *ServerInterfaceWrapper) GetOrderHistory(ctx echo.Context) error {
	orderID, err := bindOrderID(ctx)
	if err != nil {
		return err
	}
	return w.Handler.GetOrderHistory(ctx, orderID)
}

func (w *ServerInterfaceWrapper) ListComplaints(ctx echo.Context) error {
	var params ListComplaintsParams
	if err := runtime.BindQueryParameter("form", true, false, "filter", ctx.QueryParams(), &params.Filter); err != nil {
		return badParameter("filter", err)
	}
	return w.Handler.ListComplaints(ctx, params)
}

func (w *ServerInterfaceWrapper) RaiseComplaint(ctx echo.Context) error {
	return w.Handler.RaiseComplaint(ctx)
}

func (w *ServerInterfaceWrapper) ResolveComplaint(ctx echo.Context) error {
	return w.Handler.ResolveComplaint(ctx)
}

func (w *ServerInterfaceWrapper) GetMe(ctx echo.Context) error {
	return w.Handler.GetMe(ctx)
}

func bindOrderID(ctx echo.Context) (openapi_types.UUID, error) {
	var orderID openapi_types.UUID
	err := runtime.BindStyledParameterWithOptions("simple", "orderId", ctx.Param("orderId"), &orderID,
		runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		return orderID, badParameter("orderId", err)
	}
	return orderID, nil
}

func badParameter(name string, err error) error {
	return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter %s: %s", name, err))
}

// EchoRouter is the subset of echo used to mount the routes.
type EchoRouter interface {
	GET(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	POST(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	PUT(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
}

// RegisterHandlers mounts every operation on router, wrapping each route in m.
func RegisterHandlers(router EchoRouter, si ServerInterface, m ...echo.MiddlewareFunc) {
	w := &ServerInterfaceWrapper{Handler: si}

	router.GET("/orders", w.ListOrders, m...)
	router.POST("/orders", w.SubmitOrder, m...)
	router.PUT("/orders", w.AdvanceOrder, m...)
	router.GET("/orders/summary", w.GetOrdersSummary, m...)
	router.GET("/orders/:orderId", w.GetOrder, m...)
	router.GET("/orders/:orderId/history", w.GetOrderHistory, m...)
	router.GET("/complaints", w.ListComplaints, m...)
	router.POST("/complaints", w.RaiseComplaint, m...)
	router.PUT("/complaints", w.ResolveComplaint, m...)
	router.GET("/me", w.GetMe, m...)
}
