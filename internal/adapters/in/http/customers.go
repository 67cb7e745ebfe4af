package http

import (
	"net/http"

	"orders/internal/core/application/usecases/commands"
	"orders/internal/core/application/usecases/queries"
	"orders/internal/core/domain/model/kernel"

	"github.com/labstack/echo/v4"
)

// CreateCustomer handles POST /customers.
//
//	@Summary	Register a customer
//	@Tags		customers
//	@Accept		json
//	@Produce	json
//	@Param		request	body		CustomerRequest	true	"customer"
//	@Success	201		{object}	IDResponse
//	@Failure	400		{object}	ErrorResponse
//	@Router		/customers [post]
func (s *Server) CreateCustomer(ctx echo.Context) error {
	var req CustomerRequest
	if err := ctx.Bind(&req); err != nil {
		return respondBadRequest(ctx, "invalid request body")
	}

	customerID := kernel.NewUUID()
	cmd, err := commands.NewCreateCustomerCommand(customerID, req.Name, req.Phone)
	if err != nil {
		return respondError(ctx, err)
	}

	if err := s.handlers.CreateCustomer.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, IDResponse{ID: customerID.String()})
}

// GetCustomer handles GET /customers/:id.
//
//	@Summary	Get one customer
//	@Tags		customers
//	@Produce	json
//	@Param		id	path		string	true	"customer id"
//	@Success	200	{object}	CustomerResponse
//	@Failure	400	{object}	ErrorResponse
//	@Failure	404	{object}	ErrorResponse
//	@Router		/customers/{id} [get]
func (s *Server) GetCustomer(ctx echo.Context) error {
	customerID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return respondError(ctx, err)
	}

	query, err := queries.NewGetCustomerQuery(customerID)
	if err != nil {
		return respondError(ctx, err)
	}

	resp, err := s.handlers.GetCustomer.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toCustomerResponse(resp))
}

// SearchCustomers handles GET /customers.
//
//	@Summary	Search customers by name fragment
//	@Tags		customers
//	@Produce	json
//	@Param		search	query		string	false	"name fragment"
//	@Param		page	query		int		false	"zero-based page"
//	@Param		size	query		int		false	"page size"
//	@Success	200		{object}	CustomerPageResponse
//	@Failure	400		{object}	ErrorResponse
//	@Router		/customers [get]
func (s *Server) SearchCustomers(ctx echo.Context) error {
	page, size, err := pagingParams(ctx)
	if err != nil {
		return respondBadRequest(ctx, "page and size must be integers")
	}

	query, err := queries.NewSearchCustomersQuery(ctx.QueryParam("search"), page, size)
	if err != nil {
		return respondError(ctx, err)
	}

	resp, err := s.handlers.SearchCustomers.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	customers := make([]CustomerResponse, len(resp.Customers))
	for i, c := range resp.Customers {
		customers[i] = toCustomerResponse(c)
	}

	return ctx.JSON(http.StatusOK, CustomerPageResponse{
		Customers:     customers,
		Page:          resp.Page,
		Size:          resp.Size,
		TotalElements: resp.TotalElements,
		TotalPages:    resp.TotalPages,
	})
}

// UpdateCustomer handles PUT /customers/:id.
//
//	@Summary	Update a customer
//	@Tags		customers
//	@Accept		json
//	@Produce	json
//	@Param		id		path		string			true	"customer id"
//	@Param		request	body		CustomerRequest	true	"new name and phone"
//	@Success	200		{object}	CustomerResponse
//	@Failure	400		{object}	ErrorResponse
//	@Failure	404		{object}	ErrorResponse
//	@Router		/customers/{id} [put]
func (s *Server) UpdateCustomer(ctx echo.Context) error {
	customerID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return respondError(ctx, err)
	}

	var req CustomerRequest
	if err := ctx.Bind(&req); err != nil {
		return respondBadRequest(ctx, "invalid request body")
	}

	cmd, err := commands.NewUpdateCustomerCommand(customerID, req.Name, req.Phone)
	if err != nil {
		return respondError(ctx, err)
	}

	if err := s.handlers.UpdateCustomer.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, CustomerResponse{
		ID:    customerID.String(),
		Name:  req.Name,
		Phone: req.Phone,
	})
}

// DeleteCustomer handles DELETE /customers/:id.
//
//	@Summary	Delete a customer
//	@Tags		customers
//	@Param		id	path	string	true	"customer id"
//	@Success	204
//	@Failure	400	{object}	ErrorResponse
//	@Failure	404	{object}	ErrorResponse
//	@Router		/customers/{id} [delete]
func (s *Server) DeleteCustomer(ctx echo.Context) error {
	customerID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return respondError(ctx, err)
	}

	cmd, err := commands.NewDeleteCustomerCommand(customerID)
	if err != nil {
		return respondError(ctx, err)
	}

	if err := s.handlers.DeleteCustomer.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}
