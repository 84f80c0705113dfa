package fundservice

import (
	"context"
	"errors"

	"github.com/Eliezelg/myfamilyreplit-sub000/internal/domain"
	"go.uber.org/zap"
)

// FundRepo is the full ledger-store surface. The payment cascade and the
// reconciliation worker consume subsets of it.
type FundRepo interface {
	GetByFamilyID(ctx context.Context, familyID int) (*domain.FamilyFund, error)
	Create(ctx context.Context, familyID int) (*domain.FamilyFund, error)
	Debit(ctx context.Context, fundID int, amount int64, userID int, description string) (*domain.FundTransaction, error)
	Credit(ctx context.Context, fundID int, amount int64, userID int, description, txType string) (*domain.FundTransaction, error)
	ListFunds(ctx context.Context, limit uint32) ([]domain.FamilyFund, error)
}

type TransactionRepo interface {
	ListByFundID(ctx context.Context, fundID int) ([]domain.FundTransaction, error)
	SumByFundID(ctx context.Context, fundID int) (int64, error)
}

var (
	ErrNonPositiveAmount = errors.New("deposit amount must be positive")
	ErrFundNotFound      = errors.New("family fund not found")
)

type Service struct {
	fundRepo        FundRepo
	transactionRepo TransactionRepo
}

func New(fundRepo FundRepo, transactionRepo TransactionRepo) *Service {
	return &Service{
		fundRepo:        fundRepo,
		transactionRepo: transactionRepo,
	}
}

func (s *Service) GetFund(ctx context.Context, familyID int) (*domain.FamilyFund, error) {
	fund, err := s.fundRepo.GetByFamilyID(ctx, familyID)
	if err != nil {
		zap.L().Error("failed to get family fund", zap.Error(err))
		return nil, err
	}
	if fund == nil {
		return nil, ErrFundNotFound
	}
	return fund, nil
}

func (s *Service) CreateFund(ctx context.Context, familyID int) (*domain.FamilyFund, error) {
	fund, err := s.fundRepo.Create(ctx, familyID)
	if err != nil {
		zap.L().Error("failed to create family fund", zap.Error(err))
		return nil, err
	}
	return fund, nil
}

// Deposit credits the family fund. A missing fund row is created on the fly
// so early deposits do not fail.
func (s *Service) Deposit(ctx context.Context, familyID, userID int, amount int64, description string) (*domain.FundTransaction, error) {
	if amount <= 0 {
		return nil, ErrNonPositiveAmount
	}

	fund, err := s.fundRepo.GetByFamilyID(ctx, familyID)
	if err != nil {
		zap.L().Error("failed to get family fund", zap.Error(err))
		return nil, err
	}
	if fund == nil {
		fund, err = s.fundRepo.Create(ctx, familyID)
		if err != nil {
			zap.L().Error("failed to create family fund", zap.Error(err))
			return nil, err
		}
	}

	transaction, err := s.fundRepo.Credit(ctx, fund.ID, amount, userID, description, domain.TransactionTypeDeposit)
	if err != nil {
		zap.L().Error("failed to credit family fund", zap.Error(err))
		return nil, err
	}
	return transaction, nil
}

func (s *Service) GetTransactions(ctx context.Context, familyID int) ([]domain.FundTransaction, error) {
	fund, err := s.fundRepo.GetByFamilyID(ctx, familyID)
	if err != nil {
		zap.L().Error("failed to get family fund", zap.Error(err))
		return nil, err
	}
	if fund == nil {
		return nil, nil
	}

	transactions, err := s.transactionRepo.ListByFundID(ctx, fund.ID)
	if err != nil {
		zap.L().Error("failed to fetch fund transactions", zap.Error(err))
		return nil, err
	}
	return transactions, nil
}
