package item_test

import (
	"catalog/domain"
	"catalog/pkg/events"
	"context"

	"github.com/stretchr/testify/mock"
)

type RepositoryMock struct{ mock.Mock }

func (m *RepositoryMock) Close() error { return nil }

func (m *RepositoryMock) list(method string, args ...any) ([]domain.Item, error) {
	ret := m.MethodCalled(method, args...)
	items, _ := ret.Get(0).([]domain.Item)
	return items, ret.Error(1)
}

func (m *RepositoryMock) ListAll(ctx context.Context) ([]domain.Item, error) {
	return m.list("ListAll", ctx)
}

func (m *RepositoryMock) FindByID(ctx context.Context, id int64) (domain.Item, error) {
	args := m.Called(ctx, id)
	item, _ := args.Get(0).(domain.Item)
	return item, args.Error(1)
}

func (m *RepositoryMock) FindByNameContains(ctx context.Context, name string) ([]domain.Item, error) {
	return m.list("FindByNameContains", ctx, name)
}

func (m *RepositoryMock) FindActive(ctx context.Context) ([]domain.Item, error) {
	return m.list("FindActive", ctx)
}

func (m *RepositoryMock) FindActiveOrLegacy(ctx context.Context) ([]domain.Item, error) {
	return m.list("FindActiveOrLegacy", ctx)
}

func (m *RepositoryMock) FindByNameContainsAndActive(ctx context.Context, name string) ([]domain.Item, error) {
	return m.list("FindByNameContainsAndActive", ctx, name)
}

func (m *RepositoryMock) SearchText(ctx context.Context, term string) ([]domain.Item, error) {
	return m.list("SearchText", ctx, term)
}

func (m *RepositoryMock) CountActive(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func (m *RepositoryMock) Recent(ctx context.Context, limit int) ([]domain.Item, error) {
	return m.list("Recent", ctx, limit)
}

func (m *RepositoryMock) Save(ctx context.Context, item domain.Item) (domain.Item, error) {
	args := m.Called(ctx, item)
	saved, _ := args.Get(0).(domain.Item)
	return saved, args.Error(1)
}

func (m *RepositoryMock) Delete(ctx context.Context, item domain.Item) error {
	args := m.Called(ctx, item)
	return args.Error(0)
}

type PublisherMock struct{ mock.Mock }

func (m *PublisherMock) Publish(ctx context.Context, exchange string, event *events.Event, headers events.Headers) error {
	args := m.Called(ctx, exchange, event, headers)
	return args.Error(0)
}

func (m *PublisherMock) Close() error { return nil }
