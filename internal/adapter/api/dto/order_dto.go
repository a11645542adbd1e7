package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/shah-dhwanil/gaatha-salesforce-sub000/internal/domain/order"
)

// OrderItemRequest is one requested (product, quantity) line
type OrderItemRequest struct {
	ProductID string `json:"product_id" binding:"required"`
	Quantity  int    `json:"quantity" binding:"required"`
}

// OrderRequest carries the creation payload. No amount is accepted from the
// client; everything is computed server-side from resolved prices.
type OrderRequest struct {
	RetailerID string             `json:"retailer_id" binding:"required"`
	OrderType  string             `json:"order_type"`
	Items      []OrderItemRequest `json:"items" binding:"required"`
}

// OrderItemsRequest carries the item upsert payload of a draft order
type OrderItemsRequest struct {
	Items []OrderItemRequest `json:"items" binding:"required"`
}

// OrderStatusRequest moves an order through the status machine
type OrderStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// OrderItemResponse is the read view of one order line
type OrderItemResponse struct {
	ID        string `json:"id"`
	ProductID string `json:"product_id"`
	Quantity  int    `json:"quantity"`
}

// OrderResponse is the read view of an order
type OrderResponse struct {
	ID             string              `json:"id"`
	RetailerID     string              `json:"retailer_id"`
	MemberID       string              `json:"member_id"`
	BaseAmount     decimal.Decimal     `json:"base_amount"`
	DiscountAmount decimal.Decimal     `json:"discount_amount"`
	NetAmount      decimal.Decimal     `json:"net_amount"`
	IGSTAmount     decimal.Decimal     `json:"igst_amount"`
	CGSTAmount     decimal.Decimal     `json:"cgst_amount"`
	SGSTAmount     decimal.Decimal     `json:"sgst_amount"`
	TotalAmount    decimal.Decimal     `json:"total_amount"`
	OrderType      string              `json:"order_type"`
	OrderStatus    string              `json:"order_status"`
	Items          []OrderItemResponse `json:"items,omitempty"`
	CreatedAt      time.Time           `json:"created_at"`
	UpdatedAt      time.Time           `json:"updated_at"`
}

// OrderItemDetailResponse is one order line joined with its product
type OrderItemDetailResponse struct {
	OrderItemResponse
	ProductName string `json:"product_name"`
	ProductCode string `json:"product_code"`
}

// OrderDetailResponse is the joined read view of an order
type OrderDetailResponse struct {
	OrderResponse
	RetailerName string                    `json:"retailer_name"`
	MemberName   string                    `json:"member_name"`
	ItemDetails  []OrderItemDetailResponse `json:"item_details"`
}

// ToOrderResponse converts a domain order into its response form
func ToOrderResponse(o *order.Order) OrderResponse {
	response := OrderResponse{
		ID:             o.ID,
		RetailerID:     o.RetailerID,
		MemberID:       o.MemberID,
		BaseAmount:     o.BaseAmount,
		DiscountAmount: o.DiscountAmount,
		NetAmount:      o.NetAmount,
		IGSTAmount:     o.IGSTAmount,
		CGSTAmount:     o.CGSTAmount,
		SGSTAmount:     o.SGSTAmount,
		TotalAmount:    o.TotalAmount,
		OrderType:      string(o.OrderType),
		OrderStatus:    string(o.OrderStatus),
		CreatedAt:      o.CreatedAt,
		UpdatedAt:      o.UpdatedAt,
	}
	for _, item := range o.Items {
		response.Items = append(response.Items, OrderItemResponse{
			ID:        item.ID,
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
		})
	}
	return response
}

// ToOrderListResponse converts a page of orders
func ToOrderListResponse(orders []*order.Order) []OrderResponse {
	response := make([]OrderResponse, len(orders))
	for i, o := range orders {
		response[i] = ToOrderResponse(o)
	}
	return response
}

// ToOrderDetailResponse converts the joined read view
func ToOrderDetailResponse(d *order.Detail) OrderDetailResponse {
	response := OrderDetailResponse{
		OrderResponse: ToOrderResponse(&d.Order),
		RetailerName:  d.RetailerName,
		MemberName:    d.MemberName,
	}
	for _, item := range d.Items {
		response.ItemDetails = append(response.ItemDetails, OrderItemDetailResponse{
			OrderItemResponse: OrderItemResponse{
				ID:        item.ID,
				ProductID: item.ProductID,
				Quantity:  item.Quantity,
			},
			ProductName: item.ProductName,
			ProductCode: item.ProductCode,
		})
	}
	return response
}

// ToItemRequests converts request lines into domain item requests
func ToItemRequests(items []OrderItemRequest) []order.ItemRequest {
	requests := make([]order.ItemRequest, len(items))
	for i, item := range items {
		requests[i] = order.ItemRequest{ProductID: item.ProductID, Quantity: item.Quantity}
	}
	return requests
}
