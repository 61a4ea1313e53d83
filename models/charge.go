package models

import (
	"github.com/stripe/stripe-go/v79"
)

type Charge struct {
	ID             string              `json:"id"`
	Amount         int64               `json:"amount"`
	AmountRefunded int64               `json:"amount_refunded"`
	Currency       stripe.Currency     `json:"currency"`
	Description    string              `json:"description"`
	Disputed       bool                `json:"disputed"`
	Status         stripe.ChargeStatus `json:"status"`
	ReceiptURL     string              `json:"receipt_url"`
	Metadata       map[string]string   `json:"metadata"`
	Refunds        []*Refund           `json:"refunds"`
}

func NewCharge() *Charge {
	return &Charge{}
}

// ConvertFromStripe copies the fields the lookup cares about out of a Stripe
// charge. Missing fields are left at their zero value and Metadata is never nil.
func (c *Charge) ConvertFromStripe(sc *stripe.Charge) *Charge {
	if sc == nil {
		return nil
	}

	c.ID = sc.ID
	c.Amount = sc.Amount
	c.AmountRefunded = sc.AmountRefunded
	c.Currency = sc.Currency
	c.Description = sc.Description
	c.Disputed = sc.Disputed
	c.Status = sc.Status
	c.ReceiptURL = sc.ReceiptURL
	c.Metadata = copyMetadata(sc.Metadata)
	c.Refunds = nil

	if sc.Refunds == nil {
		return c
	}

	for _, sr := range sc.Refunds.Data {
		refund := NewRefund().ConvertFromStripe(sr)
		if refund == nil {
			continue
		}
		if refund.ChargeID == "" {
			refund.ChargeID = c.ID
		}
		c.Refunds = append(c.Refunds, refund)
	}

	return c
}

// WasRefunded reports whether any part of the charge has been refunded.
func (c *Charge) WasRefunded() bool {
	return c.AmountRefunded > 0
}

func copyMetadata(src map[string]string) map[string]string {
	dst := make(map[string]string, len(src))
	for k, v := range src {
		dst[k] = v
	}
	return dst
}
