package fundservice

import (
	"context"
	"errors"
	"testing"

	"github.com/Eliezelg/myfamilyreplit-sub000/internal/domain"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"
)

func NewMock(t *testing.T) (*Service, *MockFundRepo, *MockTransactionRepo) {
	ctrl := gomock.NewController(t)
	fundRepo := NewMockFundRepo(ctrl)
	transactionRepo := NewMockTransactionRepo(ctrl)
	service := New(fundRepo, transactionRepo)
	defer ctrl.Finish()
	return service, fundRepo, transactionRepo
}

func TestGetFund(t *testing.T) {
	tests := []struct {
		name          string
		familyID      int
		prepareMock   func(fundRepo *MockFundRepo)
		expectedFund  *domain.FamilyFund
		expectedError error
	}{
		{
			name:     "Retrieve fund successfully",
			familyID: 1,
			prepareMock: func(fundRepo *MockFundRepo) {
				fundRepo.EXPECT().GetByFamilyID(gomock.Any(), 1).Return(&domain.FamilyFund{
					ID:       10,
					FamilyID: 1,
					Balance:  3000,
					Currency: "ILS",
				}, nil)
			},
			expectedFund: &domain.FamilyFund{
				ID:       10,
				FamilyID: 1,
				Balance:  3000,
				Currency: "ILS",
			},
			expectedError: nil,
		},
		{
			name:     "Fund not found",
			familyID: 2,
			prepareMock: func(fundRepo *MockFundRepo) {
				fundRepo.EXPECT().GetByFamilyID(gomock.Any(), 2).Return(nil, nil)
			},
			expectedFund:  nil,
			expectedError: ErrFundNotFound,
		},
		{
			name:     "Error retrieving fund",
			familyID: 1,
			prepareMock: func(fundRepo *MockFundRepo) {
				fundRepo.EXPECT().GetByFamilyID(gomock.Any(), 1).Return(nil, errors.New("db error"))
			},
			expectedFund:  nil,
			expectedError: errors.New("db error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, fundRepo, _ := NewMock(t)
			tt.prepareMock(fundRepo)

			fund, err := service.GetFund(context.Background(), tt.familyID)

			if tt.expectedError != nil {
				assert.Error(t, err)
				assert.Equal(t, tt.expectedError.Error(), err.Error())
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expectedFund, fund)
			}
		})
	}
}

func TestCreateFund(t *testing.T) {
	service, fundRepo, _ := NewMock(t)

	fundRepo.EXPECT().Create(gomock.Any(), 1).Return(&domain.FamilyFund{ID: 10, FamilyID: 1}, nil)

	fund, err := service.CreateFund(context.Background(), 1)
	assert.NoError(t, err)
	assert.Equal(t, 10, fund.ID)
}

func TestDeposit(t *testing.T) {
	tests := []struct {
		name          string
		familyID      int
		amount        int64
		prepareMock   func(fundRepo *MockFundRepo)
		expectedError error
	}{
		{
			name:     "Successful deposit",
			familyID: 1,
			amount:   2000,
			prepareMock: func(fundRepo *MockFundRepo) {
				fundRepo.EXPECT().GetByFamilyID(gomock.Any(), 1).Return(&domain.FamilyFund{ID: 10}, nil)
				fundRepo.EXPECT().Credit(gomock.Any(), 10, int64(2000), 5, "monthly deposit", domain.TransactionTypeDeposit).
					Return(&domain.FundTransaction{ID: 1, Amount: 2000}, nil)
			},
			expectedError: nil,
		},
		{
			name:     "Missing fund is created",
			familyID: 1,
			amount:   2000,
			prepareMock: func(fundRepo *MockFundRepo) {
				fundRepo.EXPECT().GetByFamilyID(gomock.Any(), 1).Return(nil, nil)
				fundRepo.EXPECT().Create(gomock.Any(), 1).Return(&domain.FamilyFund{ID: 11}, nil)
				fundRepo.EXPECT().Credit(gomock.Any(), 11, int64(2000), 5, "monthly deposit", domain.TransactionTypeDeposit).
					Return(&domain.FundTransaction{ID: 1, Amount: 2000}, nil)
			},
			expectedError: nil,
		},
		{
			name:          "Zero amount rejected",
			familyID:      1,
			amount:        0,
			prepareMock:   func(fundRepo *MockFundRepo) {},
			expectedError: ErrNonPositiveAmount,
		},
		{
			name:          "Negative amount rejected",
			familyID:      1,
			amount:        -500,
			prepareMock:   func(fundRepo *MockFundRepo) {},
			expectedError: ErrNonPositiveAmount,
		},
		{
			name:     "Credit error",
			familyID: 1,
			amount:   2000,
			prepareMock: func(fundRepo *MockFundRepo) {
				fundRepo.EXPECT().GetByFamilyID(gomock.Any(), 1).Return(&domain.FamilyFund{ID: 10}, nil)
				fundRepo.EXPECT().Credit(gomock.Any(), 10, int64(2000), 5, "monthly deposit", domain.TransactionTypeDeposit).
					Return(nil, errors.New("db error"))
			},
			expectedError: errors.New("db error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, fundRepo, _ := NewMock(t)
			tt.prepareMock(fundRepo)

			transaction, err := service.Deposit(context.Background(), tt.familyID, 5, tt.amount, "monthly deposit")

			if tt.expectedError != nil {
				assert.Error(t, err)
				assert.Equal(t, tt.expectedError.Error(), err.Error())
				assert.Nil(t, transaction)
			} else {
				assert.NoError(t, err)
				assert.NotNil(t, transaction)
			}
		})
	}
}

func TestGetTransactions(t *testing.T) {
	t.Run("Returns history", func(t *testing.T) {
		service, fundRepo, transactionRepo := NewMock(t)

		fundRepo.EXPECT().GetByFamilyID(gomock.Any(), 1).Return(&domain.FamilyFund{ID: 10}, nil)
		transactionRepo.EXPECT().ListByFundID(gomock.Any(), 10).Return([]domain.FundTransaction{
			{ID: 2, Amount: -500},
			{ID: 1, Amount: 2000},
		}, nil)

		transactions, err := service.GetTransactions(context.Background(), 1)
		assert.NoError(t, err)
		assert.Len(t, transactions, 2)
	})

	t.Run("No fund means empty history", func(t *testing.T) {
		service, fundRepo, _ := NewMock(t)

		fundRepo.EXPECT().GetByFamilyID(gomock.Any(), 1).Return(nil, nil)

		transactions, err := service.GetTransactions(context.Background(), 1)
		assert.NoError(t, err)
		assert.Empty(t, transactions)
	})
}
