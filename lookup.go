package lookup

import (
	"context"
	"errors"

	"goflare.io/lookup/models"
)

var ErrEmptyTransactionID = errors.New("transaction id is empty")

type Lookup interface {
	// Find resolves a transaction id across the regional accounts and returns
	// the display items for the charge and its refunds.
	Find(ctx context.Context, transactionID string) ([]models.DisplayItem, error) // Interacts with Stripe
}
