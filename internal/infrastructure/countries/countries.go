// Package countries resolves ISO 3166-1 alpha-3 country codes to numeric
// dialing prefixes for phone normalization.
package countries

import (
	"context"
	"fmt"
	"strings"

	"midtrans_gateway/internal/usecase/interfaces"
)

// Markets Midtrans checkout sees traffic from, plus common fallbacks.
var dialingCodes = map[string]string{
	"IDN": "62",
	"SGP": "65",
	"MYS": "60",
	"THA": "66",
	"PHL": "63",
	"VNM": "84",
	"BRN": "673",
	"KHM": "855",
	"LAO": "856",
	"MMR": "95",
	"TLS": "670",
	"AUS": "61",
	"NZL": "64",
	"JPN": "81",
	"KOR": "82",
	"CHN": "86",
	"HKG": "852",
	"TWN": "886",
	"IND": "91",
	"USA": "1",
	"CAN": "1",
	"GBR": "44",
	"DEU": "49",
	"FRA": "33",
	"NLD": "31",
	"ESP": "34",
	"ITA": "39",
	"CHE": "41",
	"SWE": "46",
	"NOR": "47",
	"ARE": "971",
	"SAU": "966",
	"QAT": "974",
	"TUR": "90",
	"BRA": "55",
	"MEX": "52",
	"ZAF": "27",
	"NGA": "234",
	"EGY": "20",
	"RUS": "7",
}

type Service struct{}

var _ interfaces.ICountryService = (*Service)(nil)

func NewService() *Service {
	return &Service{}
}

func (s *Service) DialingCode(_ context.Context, alpha3 string) (string, error) {
	code, ok := dialingCodes[strings.ToUpper(strings.TrimSpace(alpha3))]
	if !ok {
		return "", fmt.Errorf("no dialing code for country %q", alpha3)
	}
	return code, nil
}
