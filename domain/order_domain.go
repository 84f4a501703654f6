package domain

import (
	"errors"
	"time"
)

var (
	MessageSuccessPlaceOrder        = "order placed successfully"
	MessageSuccessUpdateOrderStatus = "order status updated successfully"
	MessageSuccessGetOrders         = "orders retrieved successfully"
	MessageSuccessGetDashboard      = "dashboard statistics retrieved successfully"

	MessageFailedPlaceOrder        = "failed to place order"
	MessageFailedUpdateOrderStatus = "failed to update order status"
	MessageFailedGetOrders         = "failed to retrieve orders"
	MessageFailedGetDashboard      = "failed to retrieve dashboard statistics"

	ErrOrderNotFound      = errors.New("order not found")
	ErrInvalidQuantity    = errors.New("quantity must be positive")
	ErrInvalidOrderStatus = errors.New("invalid order status")
)

type (
	PlaceOrderRequest struct {
		MealID   string `json:"mealId" validate:"required,uuid"`
		Quantity int    `json:"quantity" validate:"omitempty,min=1"`
	}

	UpdateOrderStatusRequest struct {
		Status string `json:"status" validate:"required"`
	}

	OrderMealResponse struct {
		ID    string  `json:"id"`
		Name  string  `json:"name"`
		Price float64 `json:"price"`
	}

	OrderPartyResponse struct {
		ID   string `json:"id"`
		Name string `json:"name"`
	}

	OrderResponse struct {
		ID         string              `json:"id"`
		BuyerID    string              `json:"buyer_id"`
		SellerID   string              `json:"seller_id"`
		Quantity   int                 `json:"quantity"`
		TotalPrice float64             `json:"total_price"`
		Status     string              `json:"status"`
		Meal       *OrderMealResponse  `json:"meal,omitempty"`
		Buyer      *OrderPartyResponse `json:"buyer,omitempty"`
		Seller     *OrderPartyResponse `json:"seller,omitempty"`
		CreatedAt  time.Time           `json:"created_at"`
	}

	SellerDashboardResponse struct {
		TotalMeals      int64   `json:"total_meals"`
		TotalOrders     int64   `json:"total_orders"`
		PendingOrders   int64   `json:"pending_orders"`
		ConfirmedOrders int64   `json:"confirmed_orders"`
		DeliveredOrders int64   `json:"delivered_orders"`
		TotalRevenue    float64 `json:"total_revenue"`
	}

	BuyerDashboardResponse struct {
		TotalOrders     int64   `json:"total_orders"`
		PendingOrders   int64   `json:"pending_orders"`
		ConfirmedOrders int64   `json:"confirmed_orders"`
		DeliveredOrders int64   `json:"delivered_orders"`
		TotalSpent      float64 `json:"total_spent"`
	}
)
