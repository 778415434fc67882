package usecase

import (
	"fmt"
	"strings"

	"midtrans_gateway/internal/domain/entities"
)

// DescribePaymentMethod maps a notification's payment type plus its
// auxiliary fields to the human-readable label used in balance-credit
// descriptions. Pure lookup; unknown types fall back to the title-cased
// type code with underscores replaced by spaces.
func DescribePaymentMethod(n entities.Notification) string {
	switch n.PaymentType {
	case "credit_card":
		return fmt.Sprintf("%s (%s %s %s)", titleCase(n.PaymentType), n.Bank, n.CardType, n.MaskedCard)
	case "bank_transfer":
		bank := n.Bank
		vaNumber := n.PermataVANumber
		if len(n.VANumbers) > 0 {
			bank = n.VANumbers[0].Bank
			vaNumber = n.VANumbers[0].VANumber
		}
		return fmt.Sprintf("Bank Transfer %s (%s)", bank, vaNumber)
	case "gopay":
		return "GoPay"
	case "shopeepay":
		return "ShopeePay"
	case "cstore":
		return fmt.Sprintf("%s Payment", n.Store)
	case "akulaku":
		return "Akulaku"
	case "bca_klikpay":
		return "BCA KlikPay"
	case "bca_klikbca":
		return "Klik BCA"
	case "mandiri_clickpay":
		return "Mandiri Clickpay"
	case "echannel":
		return "Mandiri Bill Payment"
	case "cimb_clicks":
		return "CIMB Clicks"
	case "danamon_online":
		return "Danamon Online Banking"
	case "qris":
		return fmt.Sprintf("QRIS (%s)", n.Acquirer)
	case "bri_epay":
		return "BRI e-Pay"
	case "indomaret":
		return "Indomaret"
	case "alfamart":
		return "Alfamart"
	case "ovo":
		return "OVO"
	case "dana":
		return "DANA"
	case "linkaja":
		return "LinkAja"
	default:
		return titleCase(n.PaymentType)
	}
}

// titleCase uppercases only the first letter, after swapping underscores
// for spaces: "foo_bar" -> "Foo bar".
func titleCase(s string) string {
	s = strings.ReplaceAll(s, "_", " ")
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
