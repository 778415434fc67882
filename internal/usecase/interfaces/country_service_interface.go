package interfaces

import "context"

// ICountryService resolves an ISO 3166-1 alpha-3 country code to its
// numeric dialing prefix (e.g. IDN -> 62). Lookup failure is non-fatal for
// callers: phone normalization degrades to the raw digits.
type ICountryService interface {
	DialingCode(ctx context.Context, alpha3 string) (string, error)
}
