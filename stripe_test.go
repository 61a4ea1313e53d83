package lookup

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"goflare.io/lookup/charge"
	"goflare.io/lookup/display"
	"goflare.io/lookup/models"
)

type MockChargeService struct {
	mock.Mock
}

func (m *MockChargeService) Resolve(ctx context.Context, transactionID string) (*models.Charge, error) {
	args := m.Called(ctx, transactionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Charge), args.Error(1)
}

func newTestLookup(svc charge.Service) Lookup {
	return NewStripeLookup(svc, display.NewFormatter(display.Options{UserIDKey: "user_id"}), zap.NewNop())
}

func TestStripeLookup_Find(t *testing.T) {
	ctx := context.Background()
	svc := new(MockChargeService)
	svc.On("Resolve", ctx, "ch_1").Return(&models.Charge{
		ID:       "ch_1",
		Currency: "usd",
		Refunds:  []*models.Refund{{ID: "re_1", ChargeID: "ch_1", Currency: "usd"}},
	}, nil).Once()

	items, err := newTestLookup(svc).Find(ctx, "  ch_1\n")
	require.NoError(t, err)
	assert.Len(t, items, 2)
	assert.Equal(t, "ch_1", items[0].Arg)
	svc.AssertExpectations(t)
}

func TestStripeLookup_FindEmptyID(t *testing.T) {
	svc := new(MockChargeService)

	items, err := newTestLookup(svc).Find(context.Background(), " \t ")
	assert.ErrorIs(t, err, ErrEmptyTransactionID)
	assert.Nil(t, items)
	svc.AssertNotCalled(t, "Resolve", mock.Anything, mock.Anything)
}

func TestStripeLookup_FindNotFound(t *testing.T) {
	ctx := context.Background()
	svc := new(MockChargeService)
	svc.On("Resolve", ctx, "ch_x").Return(nil, &charge.NotFoundError{
		TransactionID: "ch_x",
		LastErr:       charge.ErrNotConfigured,
	}).Once()

	items, err := newTestLookup(svc).Find(ctx, "ch_x")
	assert.Nil(t, items)
	assert.ErrorIs(t, err, charge.ErrAllRegionsExhausted)
	svc.AssertExpectations(t)
}
