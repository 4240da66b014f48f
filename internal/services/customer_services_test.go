package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"CustomerAPI/internal/apperr"
	"CustomerAPI/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListCustomers(t *testing.T) {
	reg := time.Date(2023, 1, 15, 9, 0, 0, 0, time.UTC)
	customers := &fakeCustomerStore{
		count: func(search string) (int, error) {
			assert.Equal(t, "smith", search)
			return 23, nil
		},
		list: func(search string, limit, offset int) ([]model.CustomerRow, error) {
			assert.Equal(t, "smith", search)
			assert.Equal(t, 10, limit)
			assert.Equal(t, 10, offset)
			return []model.CustomerRow{
				{ID: 11, FirstName: strptr("Anna"), LastName: strptr("Smith"), Timestamp: &reg},
				{ID: 12, FirstName: strptr("Bob"), LastName: strptr("Smith")},
			}, nil
		},
	}

	svc := NewCustomerService(customers, &fakeOrderStore{})
	resp, err := svc.ListCustomers(context.Background(), 2, 10, "smith")
	require.NoError(t, err)

	assert.Len(t, resp.Customers, 2)
	require.NotNil(t, resp.Customers[0].Timestamp)
	assert.Equal(t, "2023-01-15T09:00:00", *resp.Customers[0].Timestamp)
	assert.Nil(t, resp.Customers[1].Timestamp)
	assert.Equal(t, "smith", resp.Search)
	assert.Equal(t, 200, resp.Status)

	assert.Equal(t, 2, resp.Pagination.Page)
	assert.Equal(t, 23, resp.Pagination.TotalCount)
	assert.Equal(t, 3, resp.Pagination.TotalPages)
	assert.True(t, resp.Pagination.HasNext)
	assert.True(t, resp.Pagination.HasPrev)
}

func TestListCustomersStoreError(t *testing.T) {
	boom := errors.New("connection reset")
	customers := &fakeCustomerStore{
		count: func(string) (int, error) { return 0, boom },
	}

	svc := NewCustomerService(customers, &fakeOrderStore{})
	_, err := svc.ListCustomers(context.Background(), 1, 10, "")
	assert.ErrorIs(t, err, boom)
}

func TestGetCustomer(t *testing.T) {
	reg := time.Date(2022, 3, 4, 5, 6, 7, 0, time.UTC)
	first := time.Date(2022, 5, 1, 0, 0, 0, 0, time.UTC)
	last := time.Date(2023, 2, 1, 0, 0, 0, 0, time.UTC)

	customers := &fakeCustomerStore{
		getByID: func(id int64) (*model.CustomerDetailRow, error) {
			assert.Equal(t, int64(42), id)
			return &model.CustomerDetailRow{
				ID:        42,
				FirstName: strptr("Jane"),
				LastName:  strptr("Doe"),
				Email:     strptr("jane@example.com"),
				Age:       intptr(34),
				Latitude:  f64ptr(40.7128),
				Longitude: f64ptr(-74.006),
				Timestamp: &reg,
			}, nil
		},
	}
	orders := &fakeOrderStore{
		statsByCustomer: func(customerID int64) (*model.OrderStatsRow, error) {
			// 4 orders, one of them in an unrecognized status
			return &model.OrderStatsRow{
				TotalOrders:    4,
				Delivered:      2,
				Shipped:        1,
				TotalItems:     i64ptr(9),
				FirstOrderDate: &first,
				LastOrderDate:  &last,
			}, nil
		},
	}

	svc := NewCustomerService(customers, orders)
	resp, err := svc.GetCustomer(context.Background(), 42)
	require.NoError(t, err)

	require.NotNil(t, resp.Customer.FullName)
	assert.Equal(t, "Jane Doe", *resp.Customer.FullName)
	require.NotNil(t, resp.Customer.Location.Coordinates.Latitude)
	assert.InDelta(t, 40.7128, *resp.Customer.Location.Coordinates.Latitude, 1e-9)
	require.NotNil(t, resp.Customer.RegisteredAt)
	assert.Equal(t, "2022-03-04T05:06:07", *resp.Customer.RegisteredAt)

	// the unrecognized status counts in the total but in no named bucket
	assert.Equal(t, 4, resp.OrderSummary.TotalOrders)
	assert.Equal(t, 2, resp.OrderSummary.OrdersByStatus.Delivered)
	assert.Equal(t, 1, resp.OrderSummary.OrdersByStatus.Shipped)
	assert.Equal(t, 0, resp.OrderSummary.OrdersByStatus.Returned)
	assert.Equal(t, 0, resp.OrderSummary.OrdersByStatus.Pending)
	assert.Equal(t, int64(9), resp.OrderSummary.TotalItemsPurchased)
	assert.Equal(t, 200, resp.Status)
}

func TestGetCustomerNoOrders(t *testing.T) {
	customers := &fakeCustomerStore{
		getByID: func(int64) (*model.CustomerDetailRow, error) {
			return &model.CustomerDetailRow{ID: 7}, nil
		},
	}
	orders := &fakeOrderStore{
		statsByCustomer: func(int64) (*model.OrderStatsRow, error) {
			return &model.OrderStatsRow{}, nil
		},
	}

	svc := NewCustomerService(customers, orders)
	resp, err := svc.GetCustomer(context.Background(), 7)
	require.NoError(t, err)

	assert.Equal(t, 0, resp.OrderSummary.TotalOrders)
	assert.Equal(t, int64(0), resp.OrderSummary.TotalItemsPurchased)
	assert.Nil(t, resp.OrderSummary.FirstOrderDate)
	assert.Nil(t, resp.OrderSummary.LastOrderDate)
	assert.Nil(t, resp.Customer.FullName)
}

func TestGetCustomerNotFound(t *testing.T) {
	customers := &fakeCustomerStore{
		getByID: func(int64) (*model.CustomerDetailRow, error) { return nil, nil },
	}

	svc := NewCustomerService(customers, &fakeOrderStore{})
	_, err := svc.GetCustomer(context.Background(), 99999)
	assert.ErrorIs(t, err, apperr.ErrCustomerNotFound)
}

func TestGetCustomerOrders(t *testing.T) {
	created := time.Date(2023, 7, 8, 12, 0, 0, 0, time.UTC)
	shipped := time.Date(2023, 7, 9, 12, 0, 0, 0, time.UTC)

	customers := &fakeCustomerStore{
		getStub: func(id int64) (*model.CustomerStubRow, error) {
			return &model.CustomerStubRow{ID: id, FirstName: strptr("Jane"), LastName: strptr("Doe")}, nil
		},
	}
	orders := &fakeOrderStore{
		countByCustomer: func(customerID int64, status string) (int, error) {
			assert.Equal(t, "shipped", status)
			return 1, nil
		},
		listByCustomer: func(customerID int64, status string, limit, offset int) ([]model.OrderRow, error) {
			assert.Equal(t, "shipped", status)
			assert.Equal(t, 0, offset)
			return []model.OrderRow{{
				OrderID:    100,
				UserID:     customerID,
				Status:     strptr("shipped"),
				NumOfItems: intptr(3),
				CreatedAt:  &created,
				ShippedAt:  &shipped,
			}}, nil
		},
	}

	svc := NewCustomerService(customers, orders)
	resp, err := svc.GetCustomerOrders(context.Background(), 42, 1, 10, "shipped")
	require.NoError(t, err)

	require.NotNil(t, resp.Customer.Name)
	assert.Equal(t, "Jane Doe", *resp.Customer.Name)
	require.Len(t, resp.Orders, 1)
	require.NotNil(t, resp.Orders[0].CreatedAt)
	assert.Equal(t, "2023-07-08T12:00:00", *resp.Orders[0].CreatedAt)
	assert.Nil(t, resp.Orders[0].DeliveredAt)
	require.NotNil(t, resp.Filter)
	assert.Equal(t, "shipped", resp.Filter.Status)
	assert.Equal(t, 1, resp.Pagination.TotalCount)
}

func TestGetCustomerOrdersNoFilter(t *testing.T) {
	customers := &fakeCustomerStore{
		getStub: func(id int64) (*model.CustomerStubRow, error) {
			return &model.CustomerStubRow{ID: id}, nil
		},
	}
	orders := &fakeOrderStore{
		countByCustomer: func(int64, string) (int, error) { return 0, nil },
		listByCustomer: func(int64, string, int, int) ([]model.OrderRow, error) {
			return nil, nil
		},
	}

	svc := NewCustomerService(customers, orders)
	resp, err := svc.GetCustomerOrders(context.Background(), 42, 1, 10, "")
	require.NoError(t, err)

	assert.Nil(t, resp.Filter)
	assert.NotNil(t, resp.Orders)
	assert.Empty(t, resp.Orders)
}

func TestGetCustomerOrdersCustomerMissing(t *testing.T) {
	customers := &fakeCustomerStore{
		getStub: func(int64) (*model.CustomerStubRow, error) { return nil, nil },
	}

	svc := NewCustomerService(customers, &fakeOrderStore{})
	_, err := svc.GetCustomerOrders(context.Background(), 42, 1, 10, "")
	assert.ErrorIs(t, err, apperr.ErrCustomerNotFound)
}
