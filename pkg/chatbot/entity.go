package chatbot

import "strings"

// IntentKind classifies what the user is asking about.
type IntentKind string

const (
	IntentProductInfo    IntentKind = "product_info"
	IntentPriceInquiry   IntentKind = "price_inquiry"
	IntentRatingInquiry  IntentKind = "rating_inquiry"
	IntentCategorySearch IntentKind = "category_search"
	IntentGeneral        IntentKind = "general_inquiry"
)

// Intent is the structured reading of a user message produced by the
// extraction stage. Nil fields were not mentioned.
type Intent struct {
	Kind            IntentKind `json:"intent"`
	ProductName     *string    `json:"product_name"`
	Category        *string    `json:"category"`
	RatingThreshold *float64   `json:"rating_threshold"`
}

// DefaultIntent is used whenever extraction yields nothing usable.
func DefaultIntent() Intent {
	return Intent{Kind: IntentGeneral}
}

// normalize drops blank entity strings so they behave like absent ones.
func (i Intent) normalize() Intent {
	i.ProductName = trimmedOrNil(i.ProductName)
	i.Category = trimmedOrNil(i.Category)
	return i
}

func trimmedOrNil(s *string) *string {
	if s == nil {
		return nil
	}
	v := strings.TrimSpace(*s)
	if v == "" {
		return nil
	}
	return &v
}
