package dto

import "time"

type FundResponseDTO struct {
	Balance  int64  `json:"balance" example:"350000"`
	Currency string `json:"currency" example:"ILS"`
}

type DepositRequestDTO struct {
	Amount      int64  `json:"amount" example:"10000"`
	Description string `json:"description" example:"monthly contribution"`
}

type DepositResponseDTO struct {
	TransactionID int64 `json:"transaction_id" example:"42"`
	Amount        int64 `json:"amount" example:"10000"`
}

type FundTransactionDTO struct {
	ID              int       `json:"id" example:"42"`
	Amount          int64     `json:"amount" example:"-5000"`
	Description     string    `json:"description" example:"gazette subscription"`
	Type            string    `json:"type" example:"payment"`
	ReferenceNumber string    `json:"reference_number,omitempty" example:"REF-123"`
	CreatedAt       time.Time `json:"created_at" example:"2024-12-09T16:09:57+03:00"`
}
