// Package http exposes the application use cases over an echo HTTP API.
// Handlers translate JSON bodies into commands and queries, and map
// application errors onto HTTP statuses.
package http

import (
	"net/http"

	"orders/internal/core/application/usecases/commands"
	"orders/internal/core/application/usecases/queries"
	"orders/internal/core/domain/model/kernel"
	"orders/internal/core/domain/model/order"

	"github.com/labstack/echo/v4"
	echoswagger "github.com/swaggo/echo-swagger"
)

// Handlers bundles the command and query handlers the server dispatches to.
type Handlers struct {
	// Commands
	CreateOrder     commands.CreateOrderCommandHandler
	UpdateOrder     commands.UpdateOrderCommandHandler
	AddOrderItems   commands.AddOrderItemsCommandHandler
	UpdateOrderItem commands.UpdateOrderItemCommandHandler
	DeleteOrderItem commands.DeleteOrderItemCommandHandler
	DeleteOrder     commands.DeleteOrderCommandHandler
	CreateCustomer  commands.CreateCustomerCommandHandler
	UpdateCustomer  commands.UpdateCustomerCommandHandler
	DeleteCustomer  commands.DeleteCustomerCommandHandler
	CreateProduct   commands.CreateProductCommandHandler
	UpdateProduct   commands.UpdateProductCommandHandler
	DeleteProduct   commands.DeleteProductCommandHandler

	// Queries
	GetOrder        queries.GetOrderQueryHandler
	ListOrders      queries.ListOrdersQueryHandler
	GetCustomer     queries.GetCustomerQueryHandler
	SearchCustomers queries.SearchCustomersQueryHandler
	GetProduct      queries.GetProductQueryHandler
	SearchProducts  queries.SearchProductsQueryHandler
}

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	handlers Handlers
}

// NewServer creates a new HTTP server dispatching to the given handlers.
func NewServer(handlers Handlers) *Server {
	return &Server{handlers: handlers}
}

// RegisterRoutes attaches all API routes to the echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	e.POST("/orders", s.CreateOrder)
	e.GET("/orders", s.ListOrders)
	e.GET("/orders/:id", s.GetOrder)
	e.PATCH("/orders/:id", s.UpdateOrder)
	e.DELETE("/orders/:orderId", s.DeleteOrder)
	e.POST("/orders/:id/items", s.AddOrderItems)
	e.PUT("/orders/:orderId/items/:productId", s.UpdateOrderItem)
	e.DELETE("/orders/:orderId/items/:productId", s.DeleteOrderItem)

	e.POST("/customers", s.CreateCustomer)
	e.GET("/customers", s.SearchCustomers)
	e.GET("/customers/:id", s.GetCustomer)
	e.PUT("/customers/:id", s.UpdateCustomer)
	e.DELETE("/customers/:id", s.DeleteCustomer)

	e.POST("/products", s.CreateProduct)
	e.GET("/products", s.SearchProducts)
	e.GET("/products/:id", s.GetProduct)
	e.PUT("/products/:id", s.UpdateProduct)
	e.DELETE("/products/:id", s.DeleteProduct)

	e.GET("/swagger/*", echoswagger.WrapHandler)
}

// CreateOrder handles POST /orders.
//
//	@Summary	Place a new order
//	@Tags		orders
//	@Accept		json
//	@Produce	json
//	@Param		request	body		CreateOrderRequest	true	"order to place"
//	@Success	201		{object}	IDResponse
//	@Failure	400		{object}	ErrorResponse
//	@Failure	404		{object}	ErrorResponse
//	@Failure	409		{object}	ErrorResponse
//	@Router		/orders [post]
func (s *Server) CreateOrder(ctx echo.Context) error {
	var req CreateOrderRequest
	if err := ctx.Bind(&req); err != nil {
		return respondBadRequest(ctx, "invalid request body")
	}

	customerID, err := kernel.UUIDFromString(req.CustomerID)
	if err != nil {
		return respondError(ctx, err)
	}

	discount := kernel.ZeroMoney()
	if req.Discount != "" {
		if discount, err = kernel.MoneyFromString(req.Discount); err != nil {
			return respondError(ctx, err)
		}
	}

	items, err := itemArguments(req.Items)
	if err != nil {
		return respondError(ctx, err)
	}

	orderID := kernel.NewUUID()
	cmd, err := commands.NewCreateOrderCommand(orderID, customerID, items, discount)
	if err != nil {
		return respondError(ctx, err)
	}

	if err := s.handlers.CreateOrder.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, IDResponse{ID: orderID.String()})
}

// GetOrder handles GET /orders/:id.
//
//	@Summary	Get one order with its lines and derived total
//	@Tags		orders
//	@Produce	json
//	@Param		id	path		string	true	"order id"
//	@Success	200	{object}	OrderResponse
//	@Failure	400	{object}	ErrorResponse
//	@Failure	404	{object}	ErrorResponse
//	@Router		/orders/{id} [get]
func (s *Server) GetOrder(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return respondError(ctx, err)
	}

	query, err := queries.NewGetOrderQuery(orderID)
	if err != nil {
		return respondError(ctx, err)
	}

	resp, err := s.handlers.GetOrder.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toOrderResponse(resp))
}

// ListOrders handles GET /orders.
//
//	@Summary	List orders with optional filters
//	@Tags		orders
//	@Produce	json
//	@Param		status		query		string	false	"status filter"
//	@Param		customerId	query		string	false	"customer filter"
//	@Param		productId	query		string	false	"orders containing a product"
//	@Param		page		query		int		false	"zero-based page"
//	@Param		size		query		int		false	"page size"
//	@Success	200			{object}	OrderPageResponse
//	@Failure	400			{object}	ErrorResponse
//	@Router		/orders [get]
func (s *Server) ListOrders(ctx echo.Context) error {
	var statusFilter *order.Status
	if raw := ctx.QueryParam("status"); raw != "" {
		status, err := order.StatusFromString(raw)
		if err != nil {
			return respondError(ctx, err)
		}
		statusFilter = &status
	}

	var customerFilter *kernel.UUID
	if raw := ctx.QueryParam("customerId"); raw != "" {
		customerID, err := kernel.UUIDFromString(raw)
		if err != nil {
			return respondError(ctx, err)
		}
		customerFilter = &customerID
	}

	var productFilter *kernel.UUID
	if raw := ctx.QueryParam("productId"); raw != "" {
		productID, err := kernel.UUIDFromString(raw)
		if err != nil {
			return respondError(ctx, err)
		}
		productFilter = &productID
	}

	page, size, err := pagingParams(ctx)
	if err != nil {
		return respondBadRequest(ctx, "page and size must be integers")
	}

	query, err := queries.NewListOrdersQuery(statusFilter, customerFilter, productFilter, page, size)
	if err != nil {
		return respondError(ctx, err)
	}

	resp, err := s.handlers.ListOrders.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toOrderPageResponse(resp))
}

// UpdateOrder handles PATCH /orders/:id. Fields absent from the body stay
// unchanged; a status change on a processed order drops the other fields.
//
//	@Summary	Update an order
//	@Tags		orders
//	@Accept		json
//	@Produce	json
//	@Param		id		path		string				true	"order id"
//	@Param		request	body		UpdateOrderRequest	true	"fields to change"
//	@Success	200		{object}	OrderResponse
//	@Failure	400		{object}	ErrorResponse
//	@Failure	404		{object}	ErrorResponse
//	@Failure	409		{object}	ErrorResponse
//	@Router		/orders/{id} [patch]
func (s *Server) UpdateOrder(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return respondError(ctx, err)
	}

	var req UpdateOrderRequest
	if err := ctx.Bind(&req); err != nil {
		return respondBadRequest(ctx, "invalid request body")
	}

	items, err := itemArguments(req.Items)
	if err != nil {
		return respondError(ctx, err)
	}

	var customerID *kernel.UUID
	if req.CustomerID != nil {
		id, err := kernel.UUIDFromString(*req.CustomerID)
		if err != nil {
			return respondError(ctx, err)
		}
		customerID = &id
	}

	var discount *kernel.Money
	if req.Discount != nil {
		m, err := kernel.MoneyFromString(*req.Discount)
		if err != nil {
			return respondError(ctx, err)
		}
		discount = &m
	}

	var status *order.Status
	if req.Status != nil {
		st, err := order.StatusFromString(*req.Status)
		if err != nil {
			return respondError(ctx, err)
		}
		status = &st
	}

	cmd, err := commands.NewUpdateOrderCommand(orderID, items, customerID, discount, status)
	if err != nil {
		return respondError(ctx, err)
	}

	if err := s.handlers.UpdateOrder.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return s.respondWithOrder(ctx, orderID)
}

// AddOrderItems handles POST /orders/:id/items.
//
//	@Summary	Add lines to an order
//	@Tags		orders
//	@Accept		json
//	@Produce	json
//	@Param		id		path		string					true	"order id"
//	@Param		request	body		AddOrderItemsRequest	true	"lines to add"
//	@Success	200		{object}	OrderResponse
//	@Failure	400		{object}	ErrorResponse
//	@Failure	404		{object}	ErrorResponse
//	@Failure	409		{object}	ErrorResponse
//	@Router		/orders/{id}/items [post]
func (s *Server) AddOrderItems(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return respondError(ctx, err)
	}

	var req AddOrderItemsRequest
	if err := ctx.Bind(&req); err != nil {
		return respondBadRequest(ctx, "invalid request body")
	}

	items, err := itemArguments(req.Items)
	if err != nil {
		return respondError(ctx, err)
	}

	cmd, err := commands.NewAddOrderItemsCommand(orderID, items)
	if err != nil {
		return respondError(ctx, err)
	}

	if err := s.handlers.AddOrderItems.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return s.respondWithOrder(ctx, orderID)
}

// UpdateOrderItem handles PUT /orders/:orderId/items/:productId.
//
//	@Summary	Change quantity and price of one order line
//	@Tags		orders
//	@Accept		json
//	@Produce	json
//	@Param		orderId		path		string					true	"order id"
//	@Param		productId	path		string					true	"product id"
//	@Param		request		body		UpdateOrderItemRequest	true	"new quantity and price"
//	@Success	200			{object}	OrderResponse
//	@Failure	400			{object}	ErrorResponse
//	@Failure	404			{object}	ErrorResponse
//	@Failure	409			{object}	ErrorResponse
//	@Router		/orders/{orderId}/items/{productId} [put]
func (s *Server) UpdateOrderItem(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("orderId"))
	if err != nil {
		return respondError(ctx, err)
	}

	productID, err := kernel.UUIDFromString(ctx.Param("productId"))
	if err != nil {
		return respondError(ctx, err)
	}

	var req UpdateOrderItemRequest
	if err := ctx.Bind(&req); err != nil {
		return respondBadRequest(ctx, "invalid request body")
	}

	price, err := kernel.MoneyFromString(req.Price)
	if err != nil {
		return respondError(ctx, err)
	}

	cmd, err := commands.NewUpdateOrderItemCommand(orderID, productID, req.Quantity, price)
	if err != nil {
		return respondError(ctx, err)
	}

	if err := s.handlers.UpdateOrderItem.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return s.respondWithOrder(ctx, orderID)
}

// DeleteOrderItem handles DELETE /orders/:orderId/items/:productId.
//
//	@Summary	Remove one line from an order
//	@Tags		orders
//	@Param		orderId		path	string	true	"order id"
//	@Param		productId	path	string	true	"product id"
//	@Success	204
//	@Failure	400	{object}	ErrorResponse
//	@Failure	404	{object}	ErrorResponse
//	@Failure	409	{object}	ErrorResponse
//	@Router		/orders/{orderId}/items/{productId} [delete]
func (s *Server) DeleteOrderItem(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("orderId"))
	if err != nil {
		return respondError(ctx, err)
	}

	productID, err := kernel.UUIDFromString(ctx.Param("productId"))
	if err != nil {
		return respondError(ctx, err)
	}

	cmd, err := commands.NewDeleteOrderItemCommand(orderID, productID)
	if err != nil {
		return respondError(ctx, err)
	}

	if err := s.handlers.DeleteOrderItem.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// DeleteOrder handles DELETE /orders/:orderId.
//
//	@Summary	Delete an order still open for modification
//	@Tags		orders
//	@Param		orderId	path	string	true	"order id"
//	@Success	204
//	@Failure	400	{object}	ErrorResponse
//	@Failure	404	{object}	ErrorResponse
//	@Failure	409	{object}	ErrorResponse
//	@Router		/orders/{orderId} [delete]
func (s *Server) DeleteOrder(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("orderId"))
	if err != nil {
		return respondError(ctx, err)
	}

	cmd, err := commands.NewDeleteOrderCommand(orderID)
	if err != nil {
		return respondError(ctx, err)
	}

	if err := s.handlers.DeleteOrder.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// respondWithOrder returns the current state of an order after a mutation.
func (s *Server) respondWithOrder(ctx echo.Context, orderID kernel.UUID) error {
	query, err := queries.NewGetOrderQuery(orderID)
	if err != nil {
		return respondError(ctx, err)
	}

	resp, err := s.handlers.GetOrder.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toOrderResponse(resp))
}
