package rates

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
)

type MockSource struct {
	mock.Mock
}

func (m *MockSource) GetRate(ctx context.Context, from, to string) (decimal.Decimal, time.Time, error) {
	args := m.Called(ctx, from, to)
	return args.Get(0).(decimal.Decimal), args.Get(1).(time.Time), args.Error(2)
}
