package service

import (
	"context"

	"github.com/stretchr/testify/mock"
	"github.com/syslocale/domainpbn/internal/database"
)

// MockRepository is a testify mock of Repository[T] shared by the entity
// service tests.
type MockRepository[T any] struct {
	mock.Mock
}

func (r *MockRepository[T]) Insert(ctx context.Context, id string, doc *T) error {
	args := r.Called(ctx, id, doc)
	return args.Error(0)
}

func (r *MockRepository[T]) Find(ctx context.Context, q database.Query) ([]*T, error) {
	args := r.Called(ctx, q)
	docs, _ := args.Get(0).([]*T)
	return docs, args.Error(1)
}

func (r *MockRepository[T]) FindOne(ctx context.Context, q database.Query) (*T, error) {
	args := r.Called(ctx, q)
	doc, _ := args.Get(0).(*T)
	return doc, args.Error(1)
}

func (r *MockRepository[T]) FindByID(ctx context.Context, id string) (*T, error) {
	args := r.Called(ctx, id)
	doc, _ := args.Get(0).(*T)
	return doc, args.Error(1)
}

func (r *MockRepository[T]) Replace(ctx context.Context, id string, doc *T) (*T, error) {
	args := r.Called(ctx, id, doc)
	stored, _ := args.Get(0).(*T)
	return stored, args.Error(1)
}

func (r *MockRepository[T]) Delete(ctx context.Context, id string) error {
	args := r.Called(ctx, id)
	return args.Error(0)
}
