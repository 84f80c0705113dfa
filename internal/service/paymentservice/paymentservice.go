package paymentservice

import (
	"context"
	"errors"

	"github.com/Eliezelg/myfamilyreplit-sub000/internal/domain"
	"github.com/Eliezelg/myfamilyreplit-sub000/internal/gateway"
	"go.uber.org/zap"
)

type FundRepo interface {
	GetByFamilyID(ctx context.Context, familyID int) (*domain.FamilyFund, error)
	Debit(ctx context.Context, fundID int, amount int64, userID int, description string) (*domain.FundTransaction, error)
	Credit(ctx context.Context, fundID int, amount int64, userID int, description, txType string) (*domain.FundTransaction, error)
}

type Gateway interface {
	Tokenize(ctx context.Context, card domain.CardDetails) (*domain.TokenizeResult, error)
	Charge(ctx context.Context, req domain.ChargeRequest) (*domain.ChargeResult, error)
}

var (
	ErrNonPositiveAmount = errors.New("payment amount must be positive")
	ErrNoPaymentMethod   = errors.New("no card token or card details provided")
)

// Service implements the payment cascade: an amount due is satisfied first
// from the family's collective fund, then any shortfall is charged to a card.
// If the card leg fails after the fund was debited, the debit is reversed by
// a compensating credit.
type Service struct {
	fundRepo FundRepo
	gateway  Gateway
}

func New(fundRepo FundRepo, gateway Gateway) *Service {
	return &Service{
		fundRepo: fundRepo,
		gateway:  gateway,
	}
}

// ProcessPayment runs one cascade invocation. Validation and ledger write
// failures are returned as errors; gateway declines and transport failures
// come back as a PaymentResult with Success=false and a user-facing message.
func (s *Service) ProcessPayment(ctx context.Context, familyID, userID int, amount int64, description string, method domain.PaymentMethod, installments int) (*domain.PaymentResult, error) {
	if amount <= 0 {
		return nil, ErrNonPositiveAmount
	}

	fund, err := s.fundRepo.GetByFamilyID(ctx, familyID)
	if err != nil {
		zap.L().Error("failed to look up family fund", zap.Int("familyID", familyID), zap.Error(err))
		return nil, err
	}

	// An absent fund row is not an error: the family simply has nothing
	// prepaid, so the whole amount goes to the card.
	var fundID int
	var available int64
	if fund != nil {
		fundID = fund.ID
		available = fund.Balance
	}

	amountFromFund := min(available, amount)
	amountFromCard := amount - amountFromFund

	if amountFromCard == 0 {
		if _, err := s.fundRepo.Debit(ctx, fundID, amountFromFund, userID, description); err != nil {
			zap.L().Error("fund debit failed", zap.Int("fundID", fundID), zap.Error(err))
			return nil, err
		}
		return &domain.PaymentResult{
			Success:            true,
			Message:            "paid in full from the collective fund",
			FromCollectiveFund: true,
			AmountFromFund:     amountFromFund,
		}, nil
	}

	// The fund debit always precedes the card charge so the card amount is
	// already minimized by whatever the fund could cover.
	fundDebited := false
	if amountFromFund > 0 {
		if _, err := s.fundRepo.Debit(ctx, fundID, amountFromFund, userID, description+" (fund portion)"); err != nil {
			zap.L().Error("partial fund debit failed", zap.Int("fundID", fundID), zap.Error(err))
			return nil, err
		}
		fundDebited = true
	}

	if method.IsZero() {
		if fundDebited {
			s.rollbackFund(ctx, fundID, amountFromFund, userID, description)
		}
		return nil, ErrNoPaymentMethod
	}

	chargeResult, err := s.gateway.Charge(ctx, domain.ChargeRequest{
		Token:        method.Token,
		Card:         method.Card,
		Amount:       amountFromCard,
		Description:  description,
		Installments: installments,
	})
	if err != nil {
		zap.L().Error("gateway charge failed", zap.Int("familyID", familyID), zap.Error(err))
		if fundDebited {
			s.rollbackFund(ctx, fundID, amountFromFund, userID, description)
		}
		return &domain.PaymentResult{
			Success: false,
			Message: gateway.MsgTransport,
		}, nil
	}

	if !chargeResult.Approved {
		zap.L().Info("card charge declined",
			zap.Int("familyID", familyID),
			zap.String("returnCode", chargeResult.ReturnCode),
		)
		if fundDebited {
			s.rollbackFund(ctx, fundID, amountFromFund, userID, description)
		}
		return &domain.PaymentResult{
			Success: false,
			Message: gateway.TranslateDecline(chargeResult.ReturnCode, chargeResult.ReturnMessage),
		}, nil
	}

	return &domain.PaymentResult{
		Success:            true,
		Message:            "payment successful",
		FromCollectiveFund: fundDebited,
		AmountFromFund:     amountFromFund,
		AmountFromCard:     amountFromCard,
		ReferenceNumber:    chargeResult.ReferenceNumber,
		CardMask:           chargeResult.MaskedCard,
	}, nil
}

// TokenizeCard exchanges raw card details for a reusable gateway token so
// later cascades never re-transmit the card number.
func (s *Service) TokenizeCard(ctx context.Context, card domain.CardDetails) (*domain.TokenizeResult, error) {
	result, err := s.gateway.Tokenize(ctx, card)
	if err != nil {
		zap.L().Error("card tokenization failed", zap.Error(err))
		return nil, err
	}
	return result, nil
}

// rollbackFund reverses exactly the amount debited in this invocation. A
// failed rollback is logged and left for the reconciliation worker; the
// original failure reason still wins for caller messaging.
func (s *Service) rollbackFund(ctx context.Context, fundID int, amount int64, userID int, description string) {
	refundDescription := "refund - card payment failed for: " + description
	if _, err := s.fundRepo.Credit(ctx, fundID, amount, userID, refundDescription, domain.TransactionTypeRefund); err != nil {
		zap.L().Error("rollback credit failed, fund needs reconciliation",
			zap.Int("fundID", fundID),
			zap.Int64("amount", amount),
			zap.Error(err),
		)
	}
}
