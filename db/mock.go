package db

import (
	"context"

	"github.com/TFMV/codegauge/types"
)

type MockDB struct {
	InitializeFunc   func(ctx context.Context) error
	StoreMetricsFunc func(ctx context.Context, dir string, metrics types.ComplexityMetrics) error
}

func NewMockDB() *MockDB {
	return &MockDB{
		InitializeFunc: func(ctx context.Context) error {
			return nil
		},
	}
}

func (m *MockDB) Initialize(ctx context.Context) error {
	return m.InitializeFunc(ctx)
}

func (m *MockDB) StoreMetrics(ctx context.Context, dir string, metrics types.ComplexityMetrics) error {
	if m.StoreMetricsFunc != nil {
		return m.StoreMetricsFunc(ctx, dir, metrics)
	}
	return nil
}
