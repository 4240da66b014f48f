package model

import "time"

// CustomerRow is the narrow column set selected by the customer list query.
// Nullable columns are pointers so absent values survive scanning.
type CustomerRow struct {
	ID        int64
	FirstName *string
	LastName  *string
	Email     *string
	Age       *int
	Gender    *string
	State     *string
	City      *string
	Country   *string
	Timestamp *time.Time
}

// CustomerDetailRow carries the full column set behind the detail endpoint.
type CustomerDetailRow struct {
	ID         int64
	FirstName  *string
	LastName   *string
	Email      *string
	Age        *int
	Gender     *string
	State      *string
	Address    *string
	PostalCode *string
	City       *string
	Country    *string
	Latitude   *float64
	Longitude  *float64
	SearchTerm *string
	Timestamp  *time.Time
}

// CustomerStubRow is the existence-check row read before listing a customer's orders.
type CustomerStubRow struct {
	ID        int64
	FirstName *string
	LastName  *string
}

type CustomerSummary struct {
	ID        int64   `json:"id"`
	FirstName *string `json:"first_name"`
	LastName  *string `json:"last_name"`
	Email     *string `json:"email"`
	Age       *int    `json:"age"`
	Gender    *string `json:"gender"`
	State     *string `json:"state"`
	City      *string `json:"city"`
	Country   *string `json:"country"`
	Timestamp *string `json:"timestamp"`
}

type CustomerListResponse struct {
	Customers  []CustomerSummary `json:"customers"`
	Pagination Pagination        `json:"pagination"`
	Search     string            `json:"search,omitempty"`
	Status     int               `json:"status"`
}

type Coordinates struct {
	Latitude  *float64 `json:"latitude"`
	Longitude *float64 `json:"longitude"`
}

type Location struct {
	Address     *string     `json:"address"`
	City        *string     `json:"city"`
	State       *string     `json:"state"`
	PostalCode  *string     `json:"postal_code"`
	Country     *string     `json:"country"`
	Coordinates Coordinates `json:"coordinates"`
}

type CustomerDetail struct {
	ID           int64    `json:"id"`
	FirstName    *string  `json:"first_name"`
	LastName     *string  `json:"last_name"`
	FullName     *string  `json:"full_name"`
	Email        *string  `json:"email"`
	Age          *int     `json:"age"`
	Gender       *string  `json:"gender"`
	Location     Location `json:"location"`
	SearchTerm   *string  `json:"search_term"`
	RegisteredAt *string  `json:"registered_at"`
}

type OrdersByStatus struct {
	Delivered int `json:"delivered"`
	Returned  int `json:"returned"`
	Shipped   int `json:"shipped"`
	Pending   int `json:"pending"`
}

// OrderSummary aggregates a customer's orders. An order in a status outside
// the four named buckets counts toward TotalOrders only.
type OrderSummary struct {
	TotalOrders         int            `json:"total_orders"`
	OrdersByStatus      OrdersByStatus `json:"orders_by_status"`
	TotalItemsPurchased int64          `json:"total_items_purchased"`
	FirstOrderDate      *string        `json:"first_order_date"`
	LastOrderDate       *string        `json:"last_order_date"`
}

type CustomerDetailResponse struct {
	Customer     CustomerDetail `json:"customer"`
	OrderSummary OrderSummary   `json:"order_summary"`
	Status       int            `json:"status"`
}
