// Package http exposes the order lifecycle over a REST API.
package http

import (
	"errors"
	"net/http"
	"time"

	"storefront/internal/core/application/usecases/commands"
	"storefront/internal/core/application/usecases/queries"
	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/order"
	"storefront/internal/core/ports"
	"storefront/internal/pkg/errs"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
)

// Error is the JSON error envelope returned by every failing endpoint.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// OrderItemPayload is one line item in requests and responses.
type OrderItemPayload struct {
	ProductID string          `json:"productId"`
	Name      string          `json:"name"`
	Quantity  int             `json:"quantity"`
	Price     decimal.Decimal `json:"price"`
	Image     string          `json:"image,omitempty"`
}

// AddressPayload is the shipping destination in requests and responses.
type AddressPayload struct {
	Street     string `json:"street"`
	City       string `json:"city"`
	State      string `json:"state,omitempty"`
	PostalCode string `json:"postalCode"`
	Country    string `json:"country"`
}

// CreateOrderRequest is the body of POST /api/v1/orders.
type CreateOrderRequest struct {
	CustomerID      string             `json:"customerId"`
	StoreID         string             `json:"storeId"`
	Items           []OrderItemPayload `json:"items"`
	PaymentMethod   string             `json:"paymentMethod"`
	ShippingAddress AddressPayload     `json:"shippingAddress"`
	ShippingCost    decimal.Decimal    `json:"shippingCost"`
	Subtotal        decimal.Decimal    `json:"subtotal"`
	TaxAmount       decimal.Decimal    `json:"taxAmount"`
	TotalAmount     decimal.Decimal    `json:"totalAmount"`
	TrackingNumber  string             `json:"trackingNumber,omitempty"`
}

// UpdateOrderStatusRequest is the body of PATCH /api/v1/orders/:orderId/status.
type UpdateOrderStatusRequest struct {
	Status string `json:"status"`
}

// OrderResponse is the full order representation returned by mutating endpoints.
type OrderResponse struct {
	ID              string             `json:"id"`
	OrderNumber     string             `json:"orderNumber"`
	CustomerID      string             `json:"customerId"`
	StoreID         string             `json:"storeId"`
	Items           []OrderItemPayload `json:"items"`
	Status          string             `json:"status"`
	PaymentStatus   string             `json:"paymentStatus"`
	PaymentMethod   string             `json:"paymentMethod"`
	ShippingAddress AddressPayload     `json:"shippingAddress"`
	ShippingCost    decimal.Decimal    `json:"shippingCost"`
	Subtotal        decimal.Decimal    `json:"subtotal"`
	TaxAmount       decimal.Decimal    `json:"taxAmount"`
	TotalAmount     decimal.Decimal    `json:"totalAmount"`
	TrackingNumber  string             `json:"trackingNumber,omitempty"`
	OrderDate       time.Time          `json:"orderDate"`
	DeliveredAt     *time.Time         `json:"deliveredAt,omitempty"`
}

// StoreOrderResponse is one row of GET /api/v1/stores/:storeId/orders.
type StoreOrderResponse struct {
	ID            string          `json:"id"`
	OrderNumber   string          `json:"orderNumber"`
	CustomerID    string          `json:"customerId"`
	Status        string          `json:"status"`
	PaymentStatus string          `json:"paymentStatus"`
	PaymentMethod string          `json:"paymentMethod"`
	TotalAmount   decimal.Decimal `json:"totalAmount"`
	OrderDate     time.Time       `json:"orderDate"`
	DeliveredAt   *time.Time      `json:"deliveredAt,omitempty"`
}

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	createOrderHandler       commands.CreateOrderCommandHandler
	updateOrderStatusHandler commands.UpdateOrderStatusCommandHandler
	confirmDeliveryHandler   commands.ConfirmDeliveryCommandHandler
	cancelOrderHandler       commands.CancelOrderCommandHandler

	// Query handlers
	getStoreOrdersHandler queries.GetStoreOrdersQueryHandler
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	createOrderHandler commands.CreateOrderCommandHandler,
	updateOrderStatusHandler commands.UpdateOrderStatusCommandHandler,
	confirmDeliveryHandler commands.ConfirmDeliveryCommandHandler,
	cancelOrderHandler commands.CancelOrderCommandHandler,
	getStoreOrdersHandler queries.GetStoreOrdersQueryHandler,
) *Server {
	return &Server{
		createOrderHandler:       createOrderHandler,
		updateOrderStatusHandler: updateOrderStatusHandler,
		confirmDeliveryHandler:   confirmDeliveryHandler,
		cancelOrderHandler:       cancelOrderHandler,
		getStoreOrdersHandler:    getStoreOrdersHandler,
	}
}

// RegisterRoutes attaches all API routes to the Echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", s.Health)

	api := e.Group("/api/v1")
	api.POST("/orders", s.CreateOrder)
	api.PATCH("/orders/:orderId/status", s.UpdateOrderStatus)
	api.POST("/orders/:orderId/delivery", s.ConfirmDelivery)
	api.POST("/orders/:orderId/cancel", s.CancelOrder)
	api.GET("/stores/:storeId/orders", s.GetStoreOrders)
}

// Health handles GET /health.
func (s *Server) Health(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, map[string]string{"status": "healthy"})
}

// CreateOrder handles POST /api/v1/orders - places a new order.
func (s *Server) CreateOrder(ctx echo.Context) error {
	var req CreateOrderRequest
	if err := ctx.Bind(&req); err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	items := make([]order.Item, 0, len(req.Items))
	for _, itemReq := range req.Items {
		item, err := order.NewItem(itemReq.ProductID, itemReq.Name, itemReq.Quantity, itemReq.Price, itemReq.Image)
		if err != nil {
			return errorResponse(ctx, err)
		}
		items = append(items, item)
	}

	paymentMethod, err := order.PaymentMethodFromString(req.PaymentMethod)
	if err != nil {
		return errorResponse(ctx, err)
	}

	address, err := order.NewAddress(
		req.ShippingAddress.Street,
		req.ShippingAddress.City,
		req.ShippingAddress.State,
		req.ShippingAddress.PostalCode,
		req.ShippingAddress.Country,
	)
	if err != nil {
		return errorResponse(ctx, err)
	}

	totals, err := order.NewTotals(req.ShippingCost, req.Subtotal, req.TaxAmount, req.TotalAmount)
	if err != nil {
		return errorResponse(ctx, err)
	}

	cmd, err := commands.NewCreateOrderCommand(
		req.CustomerID,
		req.StoreID,
		items,
		paymentMethod,
		address,
		totals,
		req.TrackingNumber,
	)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid order data: " + err.Error(),
		})
	}

	created, err := s.createOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, orderToResponse(created))
}

// UpdateOrderStatus handles PATCH /api/v1/orders/:orderId/status - moves an
// order along the forward flow.
func (s *Server) UpdateOrderStatus(ctx echo.Context) error {
	orderID, err := parseOrderID(ctx)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid order id",
		})
	}

	var req UpdateOrderStatusRequest
	if err = ctx.Bind(&req); err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	newStatus, err := order.StatusFromString(req.Status)
	if err != nil {
		return errorResponse(ctx, err)
	}

	cmd, err := commands.NewUpdateOrderStatusCommand(orderID, newStatus)
	if err != nil {
		return errorResponse(ctx, err)
	}

	updated, err := s.updateOrderStatusHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.JSON(http.StatusOK, orderToResponse(updated))
}

// ConfirmDelivery handles POST /api/v1/orders/:orderId/delivery - confirms
// delivery of a shipped order.
func (s *Server) ConfirmDelivery(ctx echo.Context) error {
	orderID, err := parseOrderID(ctx)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid order id",
		})
	}

	cmd, err := commands.NewConfirmDeliveryCommand(orderID)
	if err != nil {
		return errorResponse(ctx, err)
	}

	confirmed, err := s.confirmDeliveryHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.JSON(http.StatusOK, orderToResponse(confirmed))
}

// CancelOrder handles POST /api/v1/orders/:orderId/cancel - cancels an order
// that has not shipped yet.
func (s *Server) CancelOrder(ctx echo.Context) error {
	orderID, err := parseOrderID(ctx)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid order id",
		})
	}

	cmd, err := commands.NewCancelOrderCommand(orderID)
	if err != nil {
		return errorResponse(ctx, err)
	}

	cancelled, err := s.cancelOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.JSON(http.StatusOK, orderToResponse(cancelled))
}

// GetStoreOrders handles GET /api/v1/stores/:storeId/orders - lists a store's
// orders, newest first.
func (s *Server) GetStoreOrders(ctx echo.Context) error {
	query, err := queries.NewGetStoreOrdersQuery(ctx.Param("storeId"))
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid store id",
		})
	}

	orders, err := s.getStoreOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return ctx.JSON(http.StatusInternalServerError, Error{
			Code:    http.StatusInternalServerError,
			Message: "Failed to retrieve orders",
		})
	}

	response := make([]StoreOrderResponse, len(orders))
	for i, row := range orders {
		response[i] = StoreOrderResponse{
			ID:            row.ID.String(),
			OrderNumber:   row.OrderNumber,
			CustomerID:    row.CustomerID,
			Status:        row.Status,
			PaymentStatus: row.PaymentStatus,
			PaymentMethod: row.PaymentMethod,
			TotalAmount:   row.TotalAmount,
			OrderDate:     row.OrderDate,
			DeliveredAt:   row.DeliveredAt,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

func parseOrderID(ctx echo.Context) (kernel.UUID, error) {
	return kernel.UUIDFromString(ctx.Param("orderId"))
}

// errorResponse maps domain and port errors onto HTTP statuses. Transition
// errors keep their exact message; all not-found variants collapse to
// "order not found".
func errorResponse(ctx echo.Context, err error) error {
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		return ctx.JSON(http.StatusNotFound, Error{
			Code:    http.StatusNotFound,
			Message: "order not found",
		})
	case errors.Is(err, errs.ErrInvalidTransition):
		return ctx.JSON(http.StatusConflict, Error{
			Code:    http.StatusConflict,
			Message: err.Error(),
		})
	case errors.Is(err, ports.ErrStaleOrder):
		return ctx.JSON(http.StatusConflict, Error{
			Code:    http.StatusConflict,
			Message: "order was modified concurrently",
		})
	case errors.Is(err, errs.ErrValueIsInvalid), errors.Is(err, errs.ErrValueIsRequired):
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: err.Error(),
		})
	default:
		return ctx.JSON(http.StatusInternalServerError, Error{
			Code:    http.StatusInternalServerError,
			Message: "Internal server error",
		})
	}
}

func orderToResponse(aggregate *order.Order) OrderResponse {
	items := aggregate.Items()
	itemPayloads := make([]OrderItemPayload, 0, len(items))
	for _, item := range items {
		itemPayloads = append(itemPayloads, OrderItemPayload{
			ProductID: item.ProductID(),
			Name:      item.Name(),
			Quantity:  item.Quantity(),
			Price:     item.Price(),
			Image:     item.Image(),
		})
	}

	address := aggregate.ShippingAddress()
	totals := aggregate.Totals()

	return OrderResponse{
		ID:            aggregate.ID().String(),
		OrderNumber:   aggregate.OrderNumber().String(),
		CustomerID:    aggregate.CustomerID(),
		StoreID:       aggregate.StoreID(),
		Items:         itemPayloads,
		Status:        aggregate.Status().String(),
		PaymentStatus: aggregate.PaymentStatus().String(),
		PaymentMethod: aggregate.PaymentMethod().String(),
		ShippingAddress: AddressPayload{
			Street:     address.Street(),
			City:       address.City(),
			State:      address.State(),
			PostalCode: address.PostalCode(),
			Country:    address.Country(),
		},
		ShippingCost:   totals.ShippingCost(),
		Subtotal:       totals.Subtotal(),
		TaxAmount:      totals.TaxAmount(),
		TotalAmount:    totals.TotalAmount(),
		TrackingNumber: aggregate.TrackingNumber(),
		OrderDate:      aggregate.OrderDate(),
		DeliveredAt:    aggregate.DeliveredAt(),
	}
}
