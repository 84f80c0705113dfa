package dto

type CardDTO struct {
	Number   string `json:"number" example:"4580458045804580"`
	Expiry   string `json:"expiry" example:"1227"`
	CVV      string `json:"cvv" example:"123"`
	HolderID string `json:"holder_id" example:"012345678"`
}

type PaymentRequestDTO struct {
	Amount       int64    `json:"amount" example:"5000"`
	Description  string   `json:"description" example:"gazette subscription"`
	Token        string   `json:"token,omitempty"`
	Card         *CardDTO `json:"card,omitempty"`
	Installments int      `json:"installments,omitempty" example:"3"`
}

type PaymentResponseDTO struct {
	Success            bool   `json:"success"`
	Message            string `json:"message"`
	FromCollectiveFund bool   `json:"from_collective_fund"`
	AmountFromFund     int64  `json:"amount_from_fund"`
	AmountFromCard     int64  `json:"amount_from_card"`
	ReferenceNumber    string `json:"reference_number,omitempty"`
	CardMask           string `json:"card_mask,omitempty"`
}

type TokenizeRequestDTO struct {
	Card CardDTO `json:"card"`
}

type TokenizeResponseDTO struct {
	Token      string `json:"token"`
	MaskedCard string `json:"masked_card"`
}
