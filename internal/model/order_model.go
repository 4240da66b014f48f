package model

import "time"

// OrderRow mirrors the orders table. Status is an opaque string, not a closed
// enum; the store may hold values beyond the four well-known ones.
type OrderRow struct {
	OrderID     int64
	UserID      int64
	Status      *string
	Gender      *string
	CreatedAt   *time.Time
	ReturnedAt  *time.Time
	ShippedAt   *time.Time
	DeliveredAt *time.Time
	NumOfItems  *int
}

// OrderStatsRow is the aggregate row behind the customer order summary.
// TotalItems and the dates are null when the customer has no orders.
type OrderStatsRow struct {
	TotalOrders    int
	Delivered      int
	Returned       int
	Shipped        int
	Pending        int
	TotalItems     *int64
	FirstOrderDate *time.Time
	LastOrderDate  *time.Time
}

// OrderWithCustomerRow is an order left-joined with its owning customer.
// All customer fields are nil when the order's user_id is dangling.
type OrderWithCustomerRow struct {
	OrderRow
	FirstName *string
	LastName  *string
	Email     *string
	Age       *int
	City      *string
	State     *string
	Country   *string
}

type OrderItem struct {
	OrderID     int64   `json:"order_id"`
	UserID      int64   `json:"user_id"`
	Status      *string `json:"status"`
	Gender      *string `json:"gender"`
	NumOfItems  *int    `json:"num_of_items"`
	CreatedAt   *string `json:"created_at"`
	ReturnedAt  *string `json:"returned_at"`
	ShippedAt   *string `json:"shipped_at"`
	DeliveredAt *string `json:"delivered_at"`
}

type CustomerStub struct {
	ID   int64   `json:"id"`
	Name *string `json:"name"`
}

type StatusFilter struct {
	Status string `json:"status"`
}

type CustomerOrdersResponse struct {
	Customer   CustomerStub  `json:"customer"`
	Orders     []OrderItem   `json:"orders"`
	Pagination Pagination    `json:"pagination"`
	Filter     *StatusFilter `json:"filter,omitempty"`
	Status     int           `json:"status"`
}

type OrderTimestamps struct {
	CreatedAt   *string `json:"created_at"`
	ReturnedAt  *string `json:"returned_at"`
	ShippedAt   *string `json:"shipped_at"`
	DeliveredAt *string `json:"delivered_at"`
}

type OrderDetail struct {
	OrderID    int64           `json:"order_id"`
	UserID     int64           `json:"user_id"`
	Status     *string         `json:"status"`
	Gender     *string         `json:"gender"`
	NumOfItems *int            `json:"num_of_items"`
	Timestamps OrderTimestamps `json:"timestamps"`
}

type OrderCustomerLocation struct {
	City    *string `json:"city"`
	State   *string `json:"state"`
	Country *string `json:"country"`
}

type OrderCustomer struct {
	ID        int64                 `json:"id"`
	FirstName *string               `json:"first_name"`
	LastName  *string               `json:"last_name"`
	FullName  *string               `json:"full_name"`
	Email     *string               `json:"email"`
	Age       *int                  `json:"age"`
	Location  OrderCustomerLocation `json:"location"`
}

type OrderDetailResponse struct {
	Order    OrderDetail   `json:"order"`
	Customer OrderCustomer `json:"customer"`
	Status   int           `json:"status"`
}
