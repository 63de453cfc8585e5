package pipeline

import "strings"

var priceReplacer = strings.NewReplacer(",", ".")

// NormalizePrice drops "$" signs, trims whitespace and turns decimal commas
// into periods. The result is not validated as a number.
func NormalizePrice(price string) string {
	if price == "" {
		return ""
	}
	cleaned := strings.ReplaceAll(price, "$", "")
	cleaned = strings.TrimSpace(cleaned)
	return priceReplacer.Replace(cleaned)
}
