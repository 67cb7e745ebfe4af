package http

import (
	"orders/internal/core/application/usecases/commands"
	"orders/internal/core/application/usecases/queries"
	"orders/internal/core/domain/model/kernel"
)

// ItemRequest is one order line in a request body. Price is a decimal
// string such as "19.90".
type ItemRequest struct {
	ProductID string `json:"productId"`
	Quantity  int    `json:"quantity"`
	Price     string `json:"price"`
}

// CreateOrderRequest is the body of POST /orders.
type CreateOrderRequest struct {
	CustomerID string        `json:"customerId"`
	Items      []ItemRequest `json:"items"`
	Discount   string        `json:"discount,omitempty"`
}

// UpdateOrderRequest is the body of PATCH /orders/:id. Absent fields are
// left unchanged; an absent items list keeps the current lines.
type UpdateOrderRequest struct {
	Items      []ItemRequest `json:"items,omitempty"`
	CustomerID *string       `json:"customerId,omitempty"`
	Discount   *string       `json:"discount,omitempty"`
	Status     *string       `json:"status,omitempty"`
}

// AddOrderItemsRequest is the body of POST /orders/:id/items.
type AddOrderItemsRequest struct {
	Items []ItemRequest `json:"items"`
}

// UpdateOrderItemRequest is the body of PUT /orders/:orderId/items/:productId.
type UpdateOrderItemRequest struct {
	Quantity int    `json:"quantity"`
	Price    string `json:"price"`
}

// CustomerRequest is the body of customer create and update calls.
type CustomerRequest struct {
	Name  string `json:"name"`
	Phone string `json:"phone"`
}

// ProductRequest is the body of product create and update calls.
type ProductRequest struct {
	SKU   string `json:"sku"`
	Name  string `json:"name"`
	Price string `json:"price"`
}

// IDResponse carries the identifier of a newly created resource.
type IDResponse struct {
	ID string `json:"id"`
}

// OrderItemResponse is one order line in an order response.
type OrderItemResponse struct {
	ID        string `json:"id"`
	ProductID string `json:"productId"`
	Quantity  int    `json:"quantity"`
	Price     string `json:"price"`
	Subtotal  string `json:"subtotal"`
}

// OrderResponse is the full order view returned by GET /orders/:id and the
// mutating order endpoints.
type OrderResponse struct {
	ID         string              `json:"id"`
	CustomerID string              `json:"customerId"`
	Items      []OrderItemResponse `json:"items"`
	Discount   string              `json:"discount"`
	Status     string              `json:"status"`
	Total      string              `json:"total"`
}

// OrderSummaryResponse is one row of the order list.
type OrderSummaryResponse struct {
	ID         string `json:"id"`
	CustomerID string `json:"customerId"`
	Discount   string `json:"discount"`
	Status     string `json:"status"`
}

// OrderPageResponse is a page of order summaries.
type OrderPageResponse struct {
	Orders        []OrderSummaryResponse `json:"orders"`
	Page          int                    `json:"page"`
	Size          int                    `json:"size"`
	TotalElements int64                  `json:"totalElements"`
	TotalPages    int                    `json:"totalPages"`
}

// CustomerResponse is the customer view.
type CustomerResponse struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Phone string `json:"phone"`
}

// CustomerPageResponse is a page of customers.
type CustomerPageResponse struct {
	Customers     []CustomerResponse `json:"customers"`
	Page          int                `json:"page"`
	Size          int                `json:"size"`
	TotalElements int64              `json:"totalElements"`
	TotalPages    int                `json:"totalPages"`
}

// ProductResponse is the product view.
type ProductResponse struct {
	ID    string `json:"id"`
	SKU   string `json:"sku"`
	Name  string `json:"name"`
	Price string `json:"price"`
}

// ProductPageResponse is a page of products.
type ProductPageResponse struct {
	Products      []ProductResponse `json:"products"`
	Page          int               `json:"page"`
	Size          int               `json:"size"`
	TotalElements int64             `json:"totalElements"`
	TotalPages    int               `json:"totalPages"`
}

// ErrorResponse is the JSON error body for all failure statuses.
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Path    string `json:"path"`
}

func itemArguments(items []ItemRequest) ([]commands.ItemArgument, error) {
	args := make([]commands.ItemArgument, 0, len(items))
	for _, item := range items {
		productID, err := kernel.UUIDFromString(item.ProductID)
		if err != nil {
			return nil, err
		}

		price, err := kernel.MoneyFromString(item.Price)
		if err != nil {
			return nil, err
		}

		arg, err := commands.NewItemArgument(productID, item.Quantity, price)
		if err != nil {
			return nil, err
		}

		args = append(args, arg)
	}

	return args, nil
}

func toOrderResponse(resp queries.GetOrderQueryResponse) OrderResponse {
	items := make([]OrderItemResponse, len(resp.Items))
	for i, item := range resp.Items {
		items[i] = OrderItemResponse{
			ID:        item.ID.String(),
			ProductID: item.ProductID.String(),
			Quantity:  item.Quantity,
			Price:     item.Price.String(),
			Subtotal:  item.Subtotal.String(),
		}
	}

	return OrderResponse{
		ID:         resp.ID.String(),
		CustomerID: resp.CustomerID.String(),
		Items:      items,
		Discount:   resp.Discount.String(),
		Status:     resp.Status,
		Total:      resp.Total.String(),
	}
}

func toOrderPageResponse(resp queries.ListOrdersQueryResponse) OrderPageResponse {
	orders := make([]OrderSummaryResponse, len(resp.Orders))
	for i, ord := range resp.Orders {
		orders[i] = OrderSummaryResponse{
			ID:         ord.ID.String(),
			CustomerID: ord.CustomerID.String(),
			Discount:   ord.Discount.String(),
			Status:     ord.Status,
		}
	}

	return OrderPageResponse{
		Orders:        orders,
		Page:          resp.Page,
		Size:          resp.Size,
		TotalElements: resp.TotalElements,
		TotalPages:    resp.TotalPages,
	}
}

func toCustomerResponse(resp queries.CustomerResponse) CustomerResponse {
	return CustomerResponse{
		ID:    resp.ID.String(),
		Name:  resp.Name,
		Phone: resp.Phone,
	}
}

func toProductResponse(resp queries.ProductResponse) ProductResponse {
	return ProductResponse{
		ID:    resp.ID.String(),
		SKU:   resp.SKU,
		Name:  resp.Name,
		Price: resp.Price.String(),
	}
}
