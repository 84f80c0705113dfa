package domain

import "time"

// Transaction types recorded in the fund ledger.
const (
	TransactionTypePayment = "payment"
	TransactionTypeDeposit = "deposit"
	TransactionTypeRefund  = "refund"
)

type User struct {
	ID           int       `db:"id"`
	Email        string    `db:"email"`
	PasswordHash string    `db:"password_hash"`
	FamilyID     int       `db:"family_id"`
	CreatedAt    time.Time `db:"created_at"`
}

type Family struct {
	ID        int       `db:"id"`
	Name      string    `db:"name"`
	CreatedAt time.Time `db:"created_at"`
}

// FamilyFund is the shared prepaid balance of one family. Balance is stored
// in minor currency units (agorot) and never goes negative.
type FamilyFund struct {
	ID        int       `db:"id"`
	FamilyID  int       `db:"family_id"`
	Balance   int64     `db:"balance"`
	Currency  string    `db:"currency"`
	CreatedAt time.Time `db:"created_at"`
}

// FundTransaction is an append-only ledger entry. Amount is signed:
// negative for debits, positive for deposits and refunds. The fund balance
// always equals the sum of its transaction amounts.
type FundTransaction struct {
	ID              int       `db:"id"`
	FamilyFundID    int       `db:"family_fund_id"`
	UserID          int       `db:"user_id"`
	Amount          int64     `db:"amount"`
	Description     string    `db:"description"`
	Type            string    `db:"type"`
	ReferenceNumber string    `db:"reference_number"`
	CreatedAt       time.Time `db:"created_at"`
}

// CardDetails carries raw card input. Expiry is four digits, MMYY.
type CardDetails struct {
	Number   string
	Expiry   string
	CVV      string
	HolderID string
}

// PaymentMethod is the credential for the card leg of a cascade: either a
// gateway token or raw card details. Both empty means no card is available.
type PaymentMethod struct {
	Token string
	Card  *CardDetails
}

func (m PaymentMethod) IsZero() bool {
	return m.Token == "" && m.Card == nil
}

// ChargeRequest is a normalized charge for the gateway client. Amount is in
// minor units; the client converts to the wire format.
type ChargeRequest struct {
	Token        string
	Card         *CardDetails
	Amount       int64
	Description  string
	Installments int
}

// ChargeResult is the normalized gateway response. Approved is true only
// when the upstream return code indicates no error AND the explicit approval
// flag is set.
type ChargeResult struct {
	Approved        bool
	ReferenceNumber string
	MaskedCard      string
	CardBrand       string
	ReturnCode      string
	ReturnMessage   string
}

type TokenizeResult struct {
	Success    bool
	Token      string
	MaskedCard string
	Message    string
}

// PaymentResult is the outcome of one cascade invocation. It is returned to
// the caller and never persisted.
type PaymentResult struct {
	Success            bool
	Message            string
	FromCollectiveFund bool
	AmountFromFund     int64
	AmountFromCard     int64
	ReferenceNumber    string
	CardMask           string
}
