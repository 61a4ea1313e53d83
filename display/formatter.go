package display

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/shopspring/decimal"

	"goflare.io/lookup/config"
	"goflare.io/lookup/models"
)

// DefaultUserIDPrefixes are the account-environment prefixes stripped from a
// user id before it is shown in a charge title.
var DefaultUserIDPrefixes = []string{"production:us-", "production:ca-"}

type Options struct {
	UserIDKey       string
	RefundUserIDKey string
	UserIDPrefixes  []string
}

// ProvideOptions reads the formatter options from the application config.
func ProvideOptions(appConfig *config.Config) Options {
	return Options{
		UserIDKey:       appConfig.Metadata.UserIDKey,
		RefundUserIDKey: appConfig.Metadata.RefundUserIDKey,
		UserIDPrefixes:  appConfig.Metadata.UserIDPrefixes,
	}
}

type Formatter interface {
	Format(charge *models.Charge) []models.DisplayItem
}

type formatter struct {
	options Options
}

func NewFormatter(options Options) Formatter {
	if options.RefundUserIDKey == "" {
		options.RefundUserIDKey = options.UserIDKey
	}
	if len(options.UserIDPrefixes) == 0 {
		options.UserIDPrefixes = DefaultUserIDPrefixes
	}
	return &formatter{options: options}
}

// Format returns one item for the charge followed by one item per refund, in
// the order the refunds were returned by the API.
func (f *formatter) Format(charge *models.Charge) []models.DisplayItem {
	if charge == nil {
		return []models.DisplayItem{}
	}

	items := make([]models.DisplayItem, 0, 1+len(charge.Refunds))
	items = append(items, f.chargeItem(charge))

	for _, refund := range charge.Refunds {
		if refund == nil {
			continue
		}
		items = append(items, f.refundItem(charge, refund))
	}

	return items
}

func (f *formatter) chargeItem(charge *models.Charge) models.DisplayItem {
	currency := strings.ToUpper(string(charge.Currency))
	userID, hasUserID := lookupMetadata(charge.Metadata, f.options.UserIDKey)

	var userLabel string
	if hasUserID {
		userLabel = "User ID: " + f.stripPrefixes(userID)
	}

	copyText := charge.ReceiptURL
	var userIDVar any
	if hasUserID {
		copyText = userID
		userIDVar = userID
	}

	return models.DisplayItem{
		Title: fmt.Sprintf("%s status: %s Refunded: %t %s ",
			userLabel, charge.Status, charge.WasRefunded(), currency),
		Subtitle: fmt.Sprintf("%s Paid: %s, Refunded: %s %s",
			charge.ID, FormatCurrency(charge.Amount), FormatCurrency(charge.AmountRefunded), currency),
		Arg: charge.ID,
		Text: models.ItemText{
			Copy:      copyText,
			LargeType: charge.ReceiptURL,
		},
		Variables: map[string]any{
			"receipt": charge.ReceiptURL,
			"charge":  charge.ID,
			"userId":  userIDVar,
		},
	}
}

// refundItem reports the parent charge's status in its subtitle, not the
// refund's own status.
func (f *formatter) refundItem(charge *models.Charge, refund *models.Refund) models.DisplayItem {
	currency := strings.ToUpper(string(refund.Currency))
	amount := FormatCurrency(refund.Amount)

	chargeID := refund.ChargeID
	if chargeID == "" {
		chargeID = charge.ID
	}

	title := fmt.Sprintf("Refund of $%s %s", amount, currency)
	if userID, ok := lookupMetadata(refund.Metadata, f.options.RefundUserIDKey); ok {
		title = fmt.Sprintf("%s refund for %s %s", userID, amount, currency)
	}

	return models.DisplayItem{
		Title:    title,
		Subtitle: fmt.Sprintf("%s, %s, associated charge: %s", refund.ID, charge.Status, chargeID),
		Arg:      chargeID,
		Text: models.ItemText{
			Copy:      chargeID,
			LargeType: chargeID,
		},
		Variables: map[string]any{
			"receipt": charge.ReceiptURL,
			"charge":  chargeID,
		},
	}
}

// stripPrefixes removes the first occurrence of each configured prefix.
func (f *formatter) stripPrefixes(userID string) string {
	for _, prefix := range f.options.UserIDPrefixes {
		if prefix == "" {
			continue
		}
		userID = strings.Replace(userID, prefix, "", 1)
	}
	return userID
}

// lookupMetadata treats a missing key, an empty key name and an empty value
// all as absent.
func lookupMetadata(metadata map[string]string, key string) (string, bool) {
	if key == "" {
		return "", false
	}
	value, ok := metadata[key]
	if !ok || value == "" {
		return "", false
	}
	return value, true
}

// FormatCurrency renders an amount in minor units with exactly two decimals.
func FormatCurrency(minorUnits int64) string {
	return decimal.New(minorUnits, -2).StringFixed(2)
}

// Write encodes items as the launcher document. A nil slice is written as an
// empty list.
func Write(w io.Writer, items []models.DisplayItem) error {
	if items == nil {
		items = []models.DisplayItem{}
	}
	if err := json.NewEncoder(w).Encode(models.Document{Items: items}); err != nil {
		return fmt.Errorf("failed to encode items: %w", err)
	}
	return nil
}
