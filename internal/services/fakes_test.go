package services

import (
	"context"

	"CustomerAPI/internal/model"
)

// Function-field fakes for the store interfaces. Unset fields mean the call
// is unexpected for the test.

type fakeCustomerStore struct {
	count   func(search string) (int, error)
	list    func(search string, limit, offset int) ([]model.CustomerRow, error)
	getByID func(id int64) (*model.CustomerDetailRow, error)
	getStub func(id int64) (*model.CustomerStubRow, error)
}

func (f *fakeCustomerStore) Count(_ context.Context, search string) (int, error) {
	return f.count(search)
}

func (f *fakeCustomerStore) List(_ context.Context, search string, limit, offset int) ([]model.CustomerRow, error) {
	return f.list(search, limit, offset)
}

func (f *fakeCustomerStore) GetByID(_ context.Context, id int64) (*model.CustomerDetailRow, error) {
	return f.getByID(id)
}

func (f *fakeCustomerStore) GetStub(_ context.Context, id int64) (*model.CustomerStubRow, error) {
	return f.getStub(id)
}

type fakeOrderStore struct {
	countByCustomer func(customerID int64, status string) (int, error)
	listByCustomer  func(customerID int64, status string, limit, offset int) ([]model.OrderRow, error)
	statsByCustomer func(customerID int64) (*model.OrderStatsRow, error)
	getWithCustomer func(orderID int64) (*model.OrderWithCustomerRow, error)
}

func (f *fakeOrderStore) CountByCustomer(_ context.Context, customerID int64, status string) (int, error) {
	return f.countByCustomer(customerID, status)
}

func (f *fakeOrderStore) ListByCustomer(_ context.Context, customerID int64, status string, limit, offset int) ([]model.OrderRow, error) {
	return f.listByCustomer(customerID, status, limit, offset)
}

func (f *fakeOrderStore) StatsByCustomer(_ context.Context, customerID int64) (*model.OrderStatsRow, error) {
	return f.statsByCustomer(customerID)
}

func (f *fakeOrderStore) GetWithCustomer(_ context.Context, orderID int64) (*model.OrderWithCustomerRow, error) {
	return f.getWithCustomer(orderID)
}

func strptr(s string) *string   { return &s }
func intptr(n int) *int         { return &n }
func i64ptr(n int64) *int64     { return &n }
func f64ptr(f float64) *float64 { return &f }
