package usecase

import (
	"context"
	"strings"

	"midtrans_gateway/internal/domain/entities"
	"midtrans_gateway/internal/usecase/interfaces"

	"go.uber.org/zap"
)

// PhoneNormalizer converts free-form phone input into an E.164-like form
// using the country's dialing prefix. It never fails: a prefix lookup
// error is logged and the raw digits pass through unprefixed.
type PhoneNormalizer struct {
	countries      interfaces.ICountryService
	defaultCountry string
	logger         *zap.Logger
}

func NewPhoneNormalizer(countries interfaces.ICountryService, defaultCountry string, logger *zap.Logger) *PhoneNormalizer {
	return &PhoneNormalizer{countries: countries, defaultCountry: defaultCountry, logger: logger}
}

// Normalize strips everything but digits, then prepends the country's
// dialing prefix unless the number already starts with it. A single
// leading zero (the common local-format marker) is dropped before the
// prefix goes on.
func (p *PhoneNormalizer) Normalize(ctx context.Context, phone, countryCode string) entities.PhoneNumber {
	digits := stripNonDigits(phone)

	if countryCode == "" {
		countryCode = p.defaultCountry
	}

	prefix := ""
	if p.countries != nil {
		code, err := p.countries.DialingCode(ctx, countryCode)
		if err != nil {
			p.logger.Warn("dialing prefix lookup failed; skipping phone normalization",
				zap.String("country_code", countryCode),
				zap.Error(err),
			)
		} else {
			prefix = code
		}
	}

	if prefix != "" && !strings.HasPrefix(digits, prefix) {
		digits = strings.TrimPrefix(digits, "0")
		digits = prefix + digits
	}

	number := digits
	if prefix != "" {
		number = strings.TrimPrefix(digits, prefix)
	}

	return entities.PhoneNumber{
		CountryCode: prefix,
		Number:      number,
		FullNumber:  "+" + digits,
	}
}

func stripNonDigits(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}
