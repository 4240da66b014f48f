package services

import (
	"context"
	"net/http"

	"CustomerAPI/internal/apperr"
	"CustomerAPI/internal/model"
)

// CustomerStore is the slice of the customer repository the service needs.
type CustomerStore interface {
	Count(ctx context.Context, search string) (int, error)
	List(ctx context.Context, search string, limit, offset int) ([]model.CustomerRow, error)
	GetByID(ctx context.Context, id int64) (*model.CustomerDetailRow, error)
	GetStub(ctx context.Context, id int64) (*model.CustomerStubRow, error)
}

// OrderStore is the slice of the order repository the services need.
type OrderStore interface {
	CountByCustomer(ctx context.Context, customerID int64, status string) (int, error)
	ListByCustomer(ctx context.Context, customerID int64, status string, limit, offset int) ([]model.OrderRow, error)
	StatsByCustomer(ctx context.Context, customerID int64) (*model.OrderStatsRow, error)
	GetWithCustomer(ctx context.Context, orderID int64) (*model.OrderWithCustomerRow, error)
}

type CustomerService struct {
	Customers CustomerStore
	Orders    OrderStore
}

func NewCustomerService(cs CustomerStore, os OrderStore) *CustomerService {
	return &CustomerService{Customers: cs, Orders: os}
}

// ListCustomers runs the count and page queries with the same search
// predicate and assembles the list envelope. Parameters arrive validated.
func (s *CustomerService) ListCustomers(ctx context.Context, page, limit int, search string) (*model.CustomerListResponse, error) {
	total, err := s.Customers.Count(ctx, search)
	if err != nil {
		return nil, err
	}
	rows, err := s.Customers.List(ctx, search, limit, model.Offset(page, limit))
	if err != nil {
		return nil, err
	}

	customers := make([]model.CustomerSummary, 0, len(rows))
	for _, c := range rows {
		customers = append(customers, model.CustomerSummary{
			ID:        c.ID,
			FirstName: c.FirstName,
			LastName:  c.LastName,
			Email:     c.Email,
			Age:       c.Age,
			Gender:    c.Gender,
			State:     c.State,
			City:      c.City,
			Country:   c.Country,
			Timestamp: isoTime(c.Timestamp),
		})
	}

	return &model.CustomerListResponse{
		Customers:  customers,
		Pagination: model.NewPagination(page, limit, total),
		Search:     search,
		Status:     http.StatusOK,
	}, nil
}

// GetCustomer returns the customer detail plus its order summary.
func (s *CustomerService) GetCustomer(ctx context.Context, id int64) (*model.CustomerDetailResponse, error) {
	c, err := s.Customers.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, apperr.ErrCustomerNotFound
	}

	stats, err := s.Orders.StatsByCustomer(ctx, id)
	if err != nil {
		return nil, err
	}

	var totalItems int64
	if stats.TotalItems != nil {
		totalItems = *stats.TotalItems
	}

	return &model.CustomerDetailResponse{
		Customer: model.CustomerDetail{
			ID:        c.ID,
			FirstName: c.FirstName,
			LastName:  c.LastName,
			FullName:  fullName(c.FirstName, c.LastName),
			Email:     c.Email,
			Age:       c.Age,
			Gender:    c.Gender,
			Location: model.Location{
				Address:    c.Address,
				City:       c.City,
				State:      c.State,
				PostalCode: c.PostalCode,
				Country:    c.Country,
				Coordinates: model.Coordinates{
					Latitude:  c.Latitude,
					Longitude: c.Longitude,
				},
			},
			SearchTerm:   c.SearchTerm,
			RegisteredAt: isoTime(c.Timestamp),
		},
		OrderSummary: model.OrderSummary{
			TotalOrders: stats.TotalOrders,
			OrdersByStatus: model.OrdersByStatus{
				Delivered: stats.Delivered,
				Returned:  stats.Returned,
				Shipped:   stats.Shipped,
				Pending:   stats.Pending,
			},
			TotalItemsPurchased: totalItems,
			FirstOrderDate:      isoTime(stats.FirstOrderDate),
			LastOrderDate:       isoTime(stats.LastOrderDate),
		},
		Status: http.StatusOK,
	}, nil
}

// GetCustomerOrders verifies the customer exists, then pages through its
// orders with the optional status filter applied to count and page alike.
func (s *CustomerService) GetCustomerOrders(ctx context.Context, id int64, page, limit int, status string) (*model.CustomerOrdersResponse, error) {
	stub, err := s.Customers.GetStub(ctx, id)
	if err != nil {
		return nil, err
	}
	if stub == nil {
		return nil, apperr.ErrCustomerNotFound
	}

	total, err := s.Orders.CountByCustomer(ctx, id, status)
	if err != nil {
		return nil, err
	}
	rows, err := s.Orders.ListByCustomer(ctx, id, status, limit, model.Offset(page, limit))
	if err != nil {
		return nil, err
	}

	orders := make([]model.OrderItem, 0, len(rows))
	for _, o := range rows {
		orders = append(orders, model.OrderItem{
			OrderID:     o.OrderID,
			UserID:      o.UserID,
			Status:      o.Status,
			Gender:      o.Gender,
			NumOfItems:  o.NumOfItems,
			CreatedAt:   isoTime(o.CreatedAt),
			ReturnedAt:  isoTime(o.ReturnedAt),
			ShippedAt:   isoTime(o.ShippedAt),
			DeliveredAt: isoTime(o.DeliveredAt),
		})
	}

	resp := &model.CustomerOrdersResponse{
		Customer: model.CustomerStub{
			ID:   stub.ID,
			Name: fullName(stub.FirstName, stub.LastName),
		},
		Orders:     orders,
		Pagination: model.NewPagination(page, limit, total),
		Status:     http.StatusOK,
	}
	if status != "" {
		resp.Filter = &model.StatusFilter{Status: status}
	}
	return resp, nil
}
