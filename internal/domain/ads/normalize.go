package ads

import (
	"fmt"
	"math"
	"regexp"
	"strings"
)

const customerIDWidth = 10

var campaignResourceRe = regexp.MustCompile(`^customers/(\d{10})/campaigns/(\d+)$`)

// NormalizeCustomerID reduces an arbitrary string to a fixed-width digit
// string suitable for resource paths. All non-digit characters (dashes,
// quotes, braces) are stripped and the remainder is left-padded with zeros
// to at least 10 characters. Longer digit runs pass through unchanged;
// truncation never happens. Empty input yields "0000000000".
//
// The function never fails: malformed input is silently coerced. Callers
// that need strict input checking must validate before normalizing.
func NormalizeCustomerID(raw string) string {
	var b strings.Builder
	for _, r := range raw {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	digits := b.String()
	if len(digits) >= customerIDWidth {
		return digits
	}
	return strings.Repeat("0", customerIDWidth-len(digits)) + digits
}

// Micros converts a decimal currency amount to integer micros. The amount
// is rounded to cent precision first so the result is exact for any value
// the validators accept, with no float drift below the cent.
func Micros(amount float64) int64 {
	return int64(math.Round(amount*100)) * 10_000
}

// FromMicros converts integer micros back to decimal currency units.
func FromMicros(micros int64) float64 {
	return float64(micros) / 1_000_000
}

// RoundMoney rounds a currency amount to 2 decimals.
func RoundMoney(amount float64) float64 {
	return math.Round(amount*100) / 100
}

// ParseCampaignResource splits a campaign resource name of the exact shape
// customers/{10-digit}/campaigns/{numeric} into its customer and campaign
// IDs. Any other shape is rejected.
func ParseCampaignResource(resource string) (customerID, campaignID string, err error) {
	m := campaignResourceRe.FindStringSubmatch(resource)
	if m == nil {
		return "", "", fmt.Errorf("campaign resource %q does not match customers/{10-digit}/campaigns/{numeric}", resource)
	}
	return m[1], m[2], nil
}

// CampaignResource builds a campaign resource name from its parts.
func CampaignResource(customerID, campaignID string) string {
	return fmt.Sprintf("customers/%s/campaigns/%s", customerID, campaignID)
}

// LastPathSegment returns the trailing segment of a resource name, which
// is how the upstream encodes the numeric ID of a created entity.
func LastPathSegment(resource string) string {
	if resource == "" {
		return ""
	}
	parts := strings.Split(resource, "/")
	return parts[len(parts)-1]
}
