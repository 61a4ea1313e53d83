package lookup

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"goflare.io/lookup/charge"
	"goflare.io/lookup/display"
	"goflare.io/lookup/models"
)

type StripeLookup struct {
	charge    charge.Service
	formatter display.Formatter
	logger    *zap.Logger
}

func NewStripeLookup(charge charge.Service, formatter display.Formatter, logger *zap.Logger) Lookup {
	return &StripeLookup{
		charge:    charge,
		formatter: formatter,
		logger:    logger,
	}
}

// Find returns nothing unless the charge was fully resolved.
func (sl *StripeLookup) Find(ctx context.Context, transactionID string) ([]models.DisplayItem, error) {

	transactionID = strings.TrimSpace(transactionID)
	if transactionID == "" {
		return nil, ErrEmptyTransactionID
	}

	resolved, err := sl.charge.Resolve(ctx, transactionID)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve charge: %w", err)
	}

	items := sl.formatter.Format(resolved)
	sl.logger.Debug("charge resolved",
		zap.String("charge_id", resolved.ID),
		zap.String("currency", string(resolved.Currency)),
		zap.Int("refunds", len(resolved.Refunds)))

	return items, nil
}
