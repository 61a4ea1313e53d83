package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"goflare.io/lookup"
	"goflare.io/lookup/charge"
	"goflare.io/lookup/models"
)

type MockLookup struct {
	mock.Mock
}

func (m *MockLookup) Find(ctx context.Context, transactionID string) ([]models.DisplayItem, error) {
	args := m.Called(ctx, transactionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.DisplayItem), args.Error(1)
}

func TestChargeHandler_GetCharge(t *testing.T) {
	tests := []struct {
		name           string
		id             string
		items          []models.DisplayItem
		err            error
		expectedStatus int
	}{
		{
			name:           "found",
			id:             "ch_1",
			items:          []models.DisplayItem{{Title: "t", Arg: "ch_1"}},
			expectedStatus: http.StatusOK,
		},
		{
			name:           "empty id",
			id:             " ",
			err:            lookup.ErrEmptyTransactionID,
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "not found in any region",
			id:             "ch_missing",
			err:            &charge.NotFoundError{TransactionID: "ch_missing", LastErr: charge.ErrNotConfigured},
			expectedStatus: http.StatusNotFound,
		},
		{
			name:           "unexpected failure",
			id:             "ch_2",
			err:            errors.New("boom"),
			expectedStatus: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := echo.New()
			req := httptest.NewRequest(http.MethodGet, "/charges/"+url.PathEscape(tt.id), nil)
			rec := httptest.NewRecorder()
			c := e.NewContext(req, rec)
			c.SetParamNames("id")
			c.SetParamValues(tt.id)

			m := new(MockLookup)
			if tt.err != nil {
				m.On("Find", mock.Anything, tt.id).Return(nil, tt.err).Once()
			} else {
				m.On("Find", mock.Anything, tt.id).Return(tt.items, nil).Once()
			}

			h := NewChargeHandler(m, zap.NewNop())
			require.NoError(t, h.GetCharge(c))
			assert.Equal(t, tt.expectedStatus, rec.Code)

			if tt.expectedStatus == http.StatusOK {
				var doc models.Document
				require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &doc))
				assert.Equal(t, tt.items[0].Arg, doc.Items[0].Arg)
			}
			m.AssertExpectations(t)
		})
	}
}
