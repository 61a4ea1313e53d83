package models

import (
	"github.com/stripe/stripe-go/v79"
)

type Refund struct {
	ID       string              `json:"id"`
	ChargeID string              `json:"charge_id"`
	Amount   int64               `json:"amount"`
	Currency stripe.Currency     `json:"currency"`
	Status   stripe.RefundStatus `json:"status"`
	Metadata map[string]string   `json:"metadata"`
}

func NewRefund() *Refund {
	return &Refund{}
}

func (r *Refund) ConvertFromStripe(sr *stripe.Refund) *Refund {
	if sr == nil {
		return nil
	}

	var chargeID string
	if sr.Charge != nil {
		chargeID = sr.Charge.ID
	}

	r.ID = sr.ID
	r.ChargeID = chargeID
	r.Amount = sr.Amount
	r.Currency = sr.Currency
	r.Status = sr.Status
	r.Metadata = copyMetadata(sr.Metadata)

	return r
}
