package http

import (
	"net/http"

	"orders/internal/core/application/usecases/commands"
	"orders/internal/core/application/usecases/queries"
	"orders/internal/core/domain/model/kernel"

	"github.com/labstack/echo/v4"
)

// CreateProduct handles POST /products.
//
//	@Summary	Add a catalog product
//	@Tags		products
//	@Accept		json
//	@Produce	json
//	@Param		request	body		ProductRequest	true	"product"
//	@Success	201		{object}	IDResponse
//	@Failure	400		{object}	ErrorResponse
//	@Failure	409		{object}	ErrorResponse
//	@Router		/products [post]
func (s *Server) CreateProduct(ctx echo.Context) error {
	var req ProductRequest
	if err := ctx.Bind(&req); err != nil {
		return respondBadRequest(ctx, "invalid request body")
	}

	price, err := kernel.MoneyFromString(req.Price)
	if err != nil {
		return respondError(ctx, err)
	}

	productID := kernel.NewUUID()
	cmd, err := commands.NewCreateProductCommand(productID, req.SKU, req.Name, price)
	if err != nil {
		return respondError(ctx, err)
	}

	if err := s.handlers.CreateProduct.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, IDResponse{ID: productID.String()})
}

// GetProduct handles GET /products/:id.
//
//	@Summary	Get one product
//	@Tags		products
//	@Produce	json
//	@Param		id	path		string	true	"product id"
//	@Success	200	{object}	ProductResponse
//	@Failure	400	{object}	ErrorResponse
//	@Failure	404	{object}	ErrorResponse
//	@Router		/products/{id} [get]
func (s *Server) GetProduct(ctx echo.Context) error {
	productID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return respondError(ctx, err)
	}

	query, err := queries.NewGetProductQuery(productID)
	if err != nil {
		return respondError(ctx, err)
	}

	resp, err := s.handlers.GetProduct.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toProductResponse(resp))
}

// SearchProducts handles GET /products.
//
//	@Summary	Search products by name or SKU fragment
//	@Tags		products
//	@Produce	json
//	@Param		search	query		string	false	"name or SKU fragment"
//	@Param		page	query		int		false	"zero-based page"
//	@Param		size	query		int		false	"page size"
//	@Success	200		{object}	ProductPageResponse
//	@Failure	400		{object}	ErrorResponse
//	@Router		/products [get]
func (s *Server) SearchProducts(ctx echo.Context) error {
	page, size, err := pagingParams(ctx)
	if err != nil {
		return respondBadRequest(ctx, "page and size must be integers")
	}

	query, err := queries.NewSearchProductsQuery(ctx.QueryParam("search"), page, size)
	if err != nil {
		return respondError(ctx, err)
	}

	resp, err := s.handlers.SearchProducts.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	products := make([]ProductResponse, len(resp.Products))
	for i, p := range resp.Products {
		products[i] = toProductResponse(p)
	}

	return ctx.JSON(http.StatusOK, ProductPageResponse{
		Products:      products,
		Page:          resp.Page,
		Size:          resp.Size,
		TotalElements: resp.TotalElements,
		TotalPages:    resp.TotalPages,
	})
}

// UpdateProduct handles PUT /products/:id.
//
//	@Summary	Update a product
//	@Tags		products
//	@Accept		json
//	@Produce	json
//	@Param		id		path		string			true	"product id"
//	@Param		request	body		ProductRequest	true	"new sku, name and price"
//	@Success	200		{object}	ProductResponse
//	@Failure	400		{object}	ErrorResponse
//	@Failure	404		{object}	ErrorResponse
//	@Failure	409		{object}	ErrorResponse
//	@Router		/products/{id} [put]
func (s *Server) UpdateProduct(ctx echo.Context) error {
	productID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return respondError(ctx, err)
	}

	var req ProductRequest
	if err := ctx.Bind(&req); err != nil {
		return respondBadRequest(ctx, "invalid request body")
	}

	price, err := kernel.MoneyFromString(req.Price)
	if err != nil {
		return respondError(ctx, err)
	}

	cmd, err := commands.NewUpdateProductCommand(productID, req.SKU, req.Name, price)
	if err != nil {
		return respondError(ctx, err)
	}

	if err := s.handlers.UpdateProduct.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, ProductResponse{
		ID:    productID.String(),
		SKU:   req.SKU,
		Name:  req.Name,
		Price: price.String(),
	})
}

// DeleteProduct handles DELETE /products/:id.
//
//	@Summary	Delete a product
//	@Tags		products
//	@Param		id	path	string	true	"product id"
//	@Success	204
//	@Failure	400	{object}	ErrorResponse
//	@Failure	404	{object}	ErrorResponse
//	@Router		/products/{id} [delete]
func (s *Server) DeleteProduct(ctx echo.Context) error {
	productID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return respondError(ctx, err)
	}

	cmd, err := commands.NewDeleteProductCommand(productID)
	if err != nil {
		return respondError(ctx, err)
	}

	if err := s.handlers.DeleteProduct.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}
