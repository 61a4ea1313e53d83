package charge

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"goflare.io/lookup/config"
	"goflare.io/lookup/models"
	"goflare.io/lookup/models/enum"
)

// Attempt records how a single region responded to a lookup.
type Attempt struct {
	Region  enum.Region
	Outcome enum.Outcome
	Charge  *models.Charge
	Err     error
}

type Service interface {
	Resolve(ctx context.Context, transactionID string) (*models.Charge, error)
}

type service struct {
	stripeConfig config.StripeConfig
	newRetriever RetrieverFactory
	regions      []enum.Region
	logger       *zap.Logger
}

func NewService(stripeConfig config.StripeConfig, newRetriever RetrieverFactory, logger *zap.Logger) Service {
	return &service{
		stripeConfig: stripeConfig,
		newRetriever: newRetriever,
		regions:      enum.Regions,
		logger:       logger,
	}
}

// Resolve tries each regional account in turn and returns the first charge
// found. Per-region failures are only surfaced through the NotFoundError
// returned once every region has been tried.
func (s *service) Resolve(ctx context.Context, transactionID string) (*models.Charge, error) {

	attempts := make([]Attempt, 0, len(s.regions))
	for _, region := range s.regions {
		attempt := s.attempt(ctx, region, transactionID)
		attempts = append(attempts, attempt)

		s.logger.Debug("charge lookup attempt",
			zap.String("transaction_id", transactionID),
			zap.String("region", region.String()),
			zap.String("outcome", string(attempt.Outcome)),
			zap.Error(attempt.Err))

		if attempt.Outcome == enum.OutcomeSuccess {
			return attempt.Charge, nil
		}
	}

	var lastErr error = ErrNotConfigured
	if len(attempts) > 0 {
		lastErr = attempts[len(attempts)-1].Err
	}

	s.logger.Warn("charge not found in any region",
		zap.String("transaction_id", transactionID),
		zap.Int("attempts", len(attempts)),
		zap.Error(lastErr))

	return nil, &NotFoundError{
		TransactionID: transactionID,
		Attempts:      attempts,
		LastErr:       lastErr,
	}
}

func (s *service) attempt(ctx context.Context, region enum.Region, transactionID string) Attempt {

	key := s.stripeConfig.KeyFor(region)
	if key == "" {
		return Attempt{Region: region, Outcome: enum.OutcomeNotConfigured, Err: ErrNotConfigured}
	}

	stripeCharge, err := s.newRetriever(key).Get(ctx, transactionID)
	if err == nil && stripeCharge == nil {
		err = errors.New("empty response")
	}
	if err != nil {
		return Attempt{
			Region:  region,
			Outcome: enum.OutcomeFailed,
			Err:     &RetrievalError{Region: region, Err: fmt.Errorf("charge %s: %w", transactionID, err)},
		}
	}

	return Attempt{
		Region:  region,
		Outcome: enum.OutcomeSuccess,
		Charge:  models.NewCharge().ConvertFromStripe(stripeCharge),
	}
}
