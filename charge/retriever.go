package charge

import (
	"context"

	"github.com/stripe/stripe-go/v79"
	"github.com/stripe/stripe-go/v79/client"
	"go.uber.org/zap"

	"goflare.io/lookup/config"
)

// Retriever fetches a single charge from one regional account.
type Retriever interface {
	Get(ctx context.Context, id string) (*stripe.Charge, error)
}

// RetrieverFactory builds a Retriever bound to one secret key.
type RetrieverFactory func(key string) Retriever

// sdkLogger demotes everything the Stripe SDK logs to debug. A 404 from one
// region is an expected step of the fallback, not an error.
type sdkLogger struct {
	logger *zap.SugaredLogger
}

func (l *sdkLogger) Debugf(format string, v ...interface{}) { l.logger.Debugf(format, v...) }
func (l *sdkLogger) Infof(format string, v ...interface{})  { l.logger.Debugf(format, v...) }
func (l *sdkLogger) Warnf(format string, v ...interface{})  { l.logger.Debugf(format, v...) }
func (l *sdkLogger) Errorf(format string, v ...interface{}) { l.logger.Debugf(format, v...) }

type stripeRetriever struct {
	client *client.API
}

// NewStripeRetrieverFactory returns a factory producing Stripe clients that
// never retry, so each region gets exactly one request per lookup.
func NewStripeRetrieverFactory(stripeConfig config.StripeConfig, logger *zap.Logger) RetrieverFactory {

	backendConfig := &stripe.BackendConfig{
		MaxNetworkRetries: stripe.Int64(0),
		LeveledLogger:     &sdkLogger{logger: logger.Sugar()},
	}
	if stripeConfig.APIURL != "" {
		backendConfig.URL = stripe.String(stripeConfig.APIURL)
	}

	backend := stripe.GetBackendWithConfig(stripe.APIBackend, backendConfig)
	backends := &stripe.Backends{
		API:     backend,
		Connect: backend,
		Uploads: backend,
	}

	return func(key string) Retriever {
		return &stripeRetriever{client: client.New(key, backends)}
	}
}

func (r *stripeRetriever) Get(ctx context.Context, id string) (*stripe.Charge, error) {
	params := &stripe.ChargeParams{}
	params.Context = ctx
	params.AddExpand("refunds")

	return r.client.Charges.Get(id, params)
}
