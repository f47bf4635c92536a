package service_test

import (
	"context"

	"github.com/niksmo/storefront/internal/core/domain"
	"github.com/stretchr/testify/mock"
)

type MockFakeStore struct {
	mock.Mock
}

func (m *MockFakeStore) FetchProducts(ctx context.Context) ([]domain.Product, error) {
	args := m.Called(ctx)
	ps, _ := args.Get(0).([]domain.Product)
	return ps, args.Error(1)
}

func (m *MockFakeStore) FetchProduct(ctx context.Context, id int) (domain.Product, error) {
	args := m.Called(ctx, id)
	p, _ := args.Get(0).(domain.Product)
	return p, args.Error(1)
}

func (m *MockFakeStore) FetchCategories(ctx context.Context) ([]string, error) {
	args := m.Called(ctx)
	names, _ := args.Get(0).([]string)
	return names, args.Error(1)
}

type MockReactBD struct {
	mock.Mock
}

func (m *MockReactBD) FetchProducts(ctx context.Context) ([]domain.Product, error) {
	args := m.Called(ctx)
	ps, _ := args.Get(0).([]domain.Product)
	return ps, args.Error(1)
}

func (m *MockReactBD) FetchCategories(ctx context.Context) ([]string, error) {
	args := m.Called(ctx)
	names, _ := args.Get(0).([]string)
	return names, args.Error(1)
}

func (m *MockReactBD) FetchReviews(ctx context.Context) ([]domain.Review, error) {
	args := m.Called(ctx)
	rs, _ := args.Get(0).([]domain.Review)
	return rs, args.Error(1)
}

func (m *MockReactBD) FetchComments(ctx context.Context) ([]domain.Comment, error) {
	args := m.Called(ctx)
	cs, _ := args.Get(0).([]domain.Comment)
	return cs, args.Error(1)
}

type MockOrdersProducer struct {
	mock.Mock
}

func (m *MockOrdersProducer) ProduceOrder(ctx context.Context, o domain.Order) error {
	return m.Called(ctx, o).Error(0)
}

type MockOrderHistory struct {
	mock.Mock
}

func (m *MockOrderHistory) ReadOrderHistory(
	ctx context.Context, email string,
) ([]domain.OrderSummary, error) {
	args := m.Called(ctx, email)
	os, _ := args.Get(0).([]domain.OrderSummary)
	return os, args.Error(1)
}
