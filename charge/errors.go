package charge

import (
	"errors"
	"fmt"

	"goflare.io/lookup/models/enum"
)

var (
	ErrNotConfigured       = errors.New("no api key configured for region")
	ErrAllRegionsExhausted = errors.New("charge not found in any region")
)

// RetrievalError wraps whatever a single region's lookup failed with.
type RetrievalError struct {
	Region enum.Region
	Err    error
}

func (e *RetrievalError) Error() string {
	return fmt.Sprintf("failed to retrieve charge from %s account: %v", e.Region.Upper(), e.Err)
}

func (e *RetrievalError) Unwrap() error {
	return e.Err
}

// NotFoundError is returned once every region has been tried without success.
// LastErr is the error from the final attempt.
type NotFoundError struct {
	TransactionID string
	Attempts      []Attempt
	LastErr       error
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("no charge found for %s: %v", e.TransactionID, e.LastErr)
}

func (e *NotFoundError) Unwrap() []error {
	return []error{ErrAllRegionsExhausted, e.LastErr}
}
