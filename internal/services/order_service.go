package services

import (
	"context"
	"net/http"

	"CustomerAPI/internal/apperr"
	"CustomerAPI/internal/model"
)

type OrderService struct {
	Orders OrderStore
}

func NewOrderService(os OrderStore) *OrderService {
	return &OrderService{Orders: os}
}

// GetOrder returns an order joined with its owning customer. A dangling
// user_id is not an error: the order comes back with null customer fields,
// customer.id echoing the order's user_id.
func (s *OrderService) GetOrder(ctx context.Context, id int64) (*model.OrderDetailResponse, error) {
	o, err := s.Orders.GetWithCustomer(ctx, id)
	if err != nil {
		return nil, err
	}
	if o == nil {
		return nil, apperr.ErrOrderNotFound
	}

	return &model.OrderDetailResponse{
		Order: model.OrderDetail{
			OrderID:    o.OrderID,
			UserID:     o.UserID,
			Status:     o.Status,
			Gender:     o.Gender,
			NumOfItems: o.NumOfItems,
			Timestamps: model.OrderTimestamps{
				CreatedAt:   isoTime(o.CreatedAt),
				ReturnedAt:  isoTime(o.ReturnedAt),
				ShippedAt:   isoTime(o.ShippedAt),
				DeliveredAt: isoTime(o.DeliveredAt),
			},
		},
		Customer: model.OrderCustomer{
			ID:        o.UserID,
			FirstName: o.FirstName,
			LastName:  o.LastName,
			FullName:  fullName(o.FirstName, o.LastName),
			Email:     o.Email,
			Age:       o.Age,
			Location: model.OrderCustomerLocation{
				City:    o.City,
				State:   o.State,
				Country: o.Country,
			},
		},
		Status: http.StatusOK,
	}, nil
}
