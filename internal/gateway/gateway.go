package gateway

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/Eliezelg/myfamilyreplit-sub000/internal/config"
	"github.com/Eliezelg/myfamilyreplit-sub000/internal/domain"
	"github.com/Eliezelg/myfamilyreplit-sub000/pkg/clients"
	"github.com/Eliezelg/myfamilyreplit-sub000/pkg/validate"
	"go.uber.org/zap"
)

const (
	chargePath   = "/api/transactions"
	tokenizePath = "/api/tokens"

	// returnCodeOK is the upstream "no error" status. A charge is approved
	// only when this code AND the explicit approval flag are both present.
	returnCodeOK = "000"

	// tokenizeAmount is the 1-agora authorization-only charge used to
	// validate a card without capturing funds.
	tokenizeAmount int64 = 1
)

// TransportError marks network-level failures talking to the gateway, as
// opposed to explicit declines carried in a well-formed response. Only
// declines are safe to surface to the end user.
type TransportError struct {
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("gateway transport error: %v", e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

type Client struct {
	url      string
	terminal string
	apiKey   string
	client   clients.HTTPClientI
}

func New(cfg *config.Config, client clients.HTTPClientI) *Client {
	return &Client{
		url:      cfg.GatewayAddress,
		terminal: cfg.GatewayTerminal,
		apiKey:   cfg.GatewayAPIKey,
		client:   client,
	}
}

// chargeRequest is the gateway wire format. Amounts cross the wire as
// major-unit decimal strings; conversion happens only here.
type chargeRequest struct {
	Terminal         string `json:"terminal"`
	TransactionType  string `json:"transactionType"`
	Total            string `json:"total"`
	Currency         string `json:"currency"`
	Description      string `json:"description,omitempty"`
	Token            string `json:"token,omitempty"`
	CardNumber       string `json:"cardNumber,omitempty"`
	CardExpiry       string `json:"cardExpiry,omitempty"`
	CVV              string `json:"cvv,omitempty"`
	HolderID         string `json:"holderId,omitempty"`
	NumberOfPayments int    `json:"numberOfPayments,omitempty"`
	FirstPayment     string `json:"firstPayment,omitempty"`
	OtherPayments    string `json:"otherPayments,omitempty"`
}

// Charge submits a single charge attempt. Transport failures return a
// *TransportError; explicit declines return a result with Approved=false and
// a nil error.
func (c *Client) Charge(ctx context.Context, req domain.ChargeRequest) (*domain.ChargeResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, &TransportError{Err: err}
	}

	wire := chargeRequest{
		Terminal:        c.terminal,
		TransactionType: "debit",
		Total:           formatAmount(req.Amount),
		Currency:        "ILS",
		Description:     req.Description,
		Token:           req.Token,
	}
	if req.Card != nil {
		wire.CardNumber = req.Card.Number
		wire.CardExpiry = req.Card.Expiry
		wire.CVV = req.Card.CVV
		wire.HolderID = req.Card.HolderID
	}
	if req.Installments > 1 {
		first, other := splitInstallments(req.Amount, req.Installments)
		wire.NumberOfPayments = req.Installments
		wire.FirstPayment = formatAmount(first)
		wire.OtherPayments = formatAmount(other)
	}

	respBody, err := c.post(chargePath, wire)
	if err != nil {
		return nil, err
	}

	resp, ok := parseChargeResponse(respBody)
	if !ok {
		return nil, &TransportError{Err: fmt.Errorf("unparseable gateway response")}
	}

	result := &domain.ChargeResult{
		Approved:        resp.StatusCode == returnCodeOK && isApproved(resp.Approved),
		ReferenceNumber: resp.ReferenceNumber,
		MaskedCard:      resp.CardMask,
		CardBrand:       resp.CardBrand,
		ReturnCode:      resp.StatusCode,
		ReturnMessage:   resp.ErrorMessage,
	}
	if result.MaskedCard == "" && req.Card != nil {
		result.MaskedCard = validate.MaskCard(req.Card.Number)
	}
	return result, nil
}

// Tokenize exchanges raw card details for a reusable token by issuing a
// minimal authorization-only request upstream. No funds are captured.
func (c *Client) Tokenize(ctx context.Context, card domain.CardDetails) (*domain.TokenizeResult, error) {
	if !isNumeric(card.Number) {
		return &domain.TokenizeResult{Success: false, Message: "card number must be numeric"}, nil
	}
	if !validate.IsExpiry(card.Expiry) {
		return &domain.TokenizeResult{Success: false, Message: "card expiry must be 4 digits MMYY"}, nil
	}
	if err := ctx.Err(); err != nil {
		return nil, &TransportError{Err: err}
	}

	wire := chargeRequest{
		Terminal:        c.terminal,
		TransactionType: "authorize",
		Total:           formatAmount(tokenizeAmount),
		Currency:        "ILS",
		CardNumber:      card.Number,
		CardExpiry:      card.Expiry,
		CVV:             card.CVV,
		HolderID:        card.HolderID,
	}

	respBody, err := c.post(tokenizePath, wire)
	if err != nil {
		return nil, err
	}

	token, ok := extractToken(respBody)
	if !ok {
		zap.L().Warn("no token in gateway response", zap.ByteString("body", respBody))
		return &domain.TokenizeResult{Success: false, Message: "card could not be tokenized"}, nil
	}

	return &domain.TokenizeResult{
		Success:    true,
		Token:      token,
		MaskedCard: validate.MaskCard(card.Number),
	}, nil
}

func (c *Client) post(path string, wire chargeRequest) ([]byte, error) {
	body, err := json.Marshal(wire)
	if err != nil {
		return nil, fmt.Errorf("failed to encode gateway request: %w", err)
	}

	headers := http.Header{}
	headers.Set("Content-Type", "application/json")
	if c.apiKey != "" {
		headers.Set("Authorization", "Bearer "+c.apiKey)
	}

	statusCode, respBody, _, err := c.client.Post(c.url+path, headers, body)
	if err != nil {
		zap.L().Error("gateway request failed", zap.String("path", path), zap.Error(err))
		return nil, &TransportError{Err: err}
	}
	if statusCode != http.StatusOK {
		zap.L().Error("unexpected gateway status code", zap.String("path", path), zap.Int("status", statusCode))
		return nil, &TransportError{Err: fmt.Errorf("unexpected status code %d", statusCode)}
	}
	return respBody, nil
}

// formatAmount converts integer minor units to the major-unit decimal string
// the gateway expects ("5000" agorot -> "50.00").
func formatAmount(minor int64) string {
	sign := ""
	if minor < 0 {
		sign = "-"
		minor = -minor
	}
	return fmt.Sprintf("%s%d.%02d", sign, minor/100, minor%100)
}

// splitInstallments divides a total into n equal installments, flooring the
// recurring amount and folding the remainder into the first installment so
// that first + (n-1)*other == total exactly.
func splitInstallments(total int64, n int) (first, other int64) {
	other = total / int64(n)
	first = total - other*int64(n-1)
	return first, other
}

func isNumeric(s string) bool {
	if s == "" {
		return false
	}
	for _, c := range s {
		if c < '0' || c > '9' {
			return false
		}
	}
	return true
}

func isApproved(flag string) bool {
	return flag == "1" || flag == "true" || flag == "Y"
}
