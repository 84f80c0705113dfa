package gateway

import "go.uber.org/zap"

// Caller-facing messages. Raw upstream messages are logged, never shown.
const (
	MsgGenericDecline = "Payment processing error. Please check your card details or contact your card issuer."
	MsgTransport      = "Payment service is temporarily unavailable. Please try again later."
)

// declineMessages maps upstream return codes to caller-facing text.
var declineMessages = map[string]string{
	"001": "The card was declined by the issuer.",
	"002": "The card has expired.",
	"003": "Insufficient funds on the card.",
	"004": "Incorrect card verification code.",
	"005": "The card is blocked. Please contact your card issuer.",
	"006": "Incorrect national ID for this card.",
	"033": "Invalid card number.",
	"036": "The card is not supported by this terminal.",
	"039": "Invalid expiry date.",
}

// TranslateDecline converts an upstream decline into a message safe to show
// the end user, falling back to a generic one for unknown codes.
func TranslateDecline(code, rawMessage string) string {
	if msg, ok := declineMessages[code]; ok {
		return msg
	}
	zap.L().Debug("untranslated gateway decline", zap.String("code", code), zap.String("rawMessage", rawMessage))
	return MsgGenericDecline
}
