package fundrepo

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/Eliezelg/myfamilyreplit-sub000/internal/domain"
	"github.com/Eliezelg/myfamilyreplit-sub000/internal/pg"
	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func NewMock(t *testing.T) (*Repository, pgxmock.PgxPoolIface, *pg.MockTXManager) {
	ctrl := gomock.NewController(t)
	mockTxManager := pg.NewMockTXManager(ctrl)

	mockDB, err := pgxmock.NewPool()
	assert.NoError(t, err)
	repo := New(mockDB, mockTxManager)
	defer mockDB.Close()
	defer ctrl.Finish()

	return repo, mockDB, mockTxManager
}

func TestRepository_GetByFamilyID(t *testing.T) {
	repo, mock, _ := NewMock(t)

	tests := []struct {
		name      string
		familyID  int
		mockSetup func()
		expectErr bool
		result    *domain.FamilyFund
	}{
		{
			name:     "Valid familyID returns fund",
			familyID: 1,
			mockSetup: func() {
				rows := pgxmock.NewRows([]string{"id", "family_id", "balance", "currency"}).
					AddRow(10, 1, int64(350000), "ILS")
				mock.ExpectQuery(regexp.QuoteMeta(`SELECT id, family_id, balance, currency FROM family_funds WHERE family_id = $1`)).
					WithArgs(1).
					WillReturnRows(rows)
			},
			expectErr: false,
			result: &domain.FamilyFund{
				ID:       10,
				FamilyID: 1,
				Balance:  350000,
				Currency: "ILS",
			},
		},
		{
			name:     "Non-existing familyID returns nil",
			familyID: 99,
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(`SELECT id, family_id, balance, currency FROM family_funds WHERE family_id = $1`)).
					WithArgs(99).
					WillReturnError(pgx.ErrNoRows)
			},
			expectErr: false,
			result:    nil,
		},
		{
			name:     "Database error",
			familyID: 1,
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(`SELECT id, family_id, balance, currency FROM family_funds WHERE family_id = $1`)).
					WithArgs(1).
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
			result:    nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			result, err := repo.GetByFamilyID(context.Background(), tt.familyID)

			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}

			if tt.result == nil {
				assert.Nil(t, result)
			} else {
				assert.NotNil(t, result)
				assert.Equal(t, tt.result, result)
			}
		})
	}
}

func TestRepository_Create(t *testing.T) {
	repo, mock, _ := NewMock(t)

	tests := []struct {
		name      string
		familyID  int
		mockSetup func()
		expectErr bool
		result    *domain.FamilyFund
	}{
		{
			name:     "Successfully creates fund",
			familyID: 1,
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(`
        INSERT INTO family_funds (family_id, balance)
        VALUES ($1, 0)
        RETURNING id, family_id, balance, currency`)).
					WithArgs(1).
					WillReturnRows(pgxmock.NewRows([]string{"id", "family_id", "balance", "currency"}).
						AddRow(10, 1, int64(0), "ILS"),
					)
			},
			expectErr: false,
			result: &domain.FamilyFund{
				ID:       10,
				FamilyID: 1,
				Balance:  0,
				Currency: "ILS",
			},
		},
		{
			name:     "Database error",
			familyID: 1,
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(`
        INSERT INTO family_funds (family_id, balance)
        VALUES ($1, 0)
        RETURNING id, family_id, balance, currency`)).
					WithArgs(1).
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
			result:    nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()

			result, err := repo.Create(context.Background(), tt.familyID)

			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.NotNil(t, result)
				assert.Equal(t, tt.result, result)
			}
		})
	}
}

func TestRepository_ListFunds(t *testing.T) {
	repo, mock, _ := NewMock(t)

	t.Run("Returns funds", func(t *testing.T) {
		rows := pgxmock.NewRows([]string{"id", "family_id", "balance", "currency"}).
			AddRow(10, 1, int64(350000), "ILS").
			AddRow(11, 2, int64(0), "ILS")
		mock.ExpectQuery(regexp.QuoteMeta(`SELECT id, family_id, balance, currency FROM family_funds ORDER BY id LIMIT $1`)).
			WithArgs(uint32(100)).
			WillReturnRows(rows)

		funds, err := repo.ListFunds(context.Background(), 100)
		assert.NoError(t, err)
		assert.Len(t, funds, 2)
		assert.Equal(t, 10, funds[0].ID)
		assert.Equal(t, int64(350000), funds[0].Balance)
	})

	t.Run("Database error", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta(`SELECT id, family_id, balance, currency FROM family_funds ORDER BY id LIMIT $1`)).
			WithArgs(uint32(100)).
			WillReturnError(errors.New("database error"))

		funds, err := repo.ListFunds(context.Background(), 100)
		assert.Error(t, err)
		assert.Nil(t, funds)
	})
}

func TestRepository_Debit(t *testing.T) {
	repo, mock, tx := NewMock(t)
	now := time.Now()

	tests := []struct {
		name        string
		fundID      int
		amount      int64
		mockSetup   func()
		expectedErr error
	}{
		{
			name:   "Successfully debits fund",
			fundID: 10,
			amount: 5000,
			mockSetup: func() {
				tx.EXPECT().Begin(gomock.Any(), gomock.Any()).DoAndReturn(func(ctx context.Context, fn pg.TransactionalFn) error {
					mock.ExpectQuery(regexp.QuoteMeta(`
				UPDATE family_funds
				SET balance = balance - $1
				WHERE id = $2 AND balance >= $1
				RETURNING id`)).
						WithArgs(int64(5000), 10).
						WillReturnRows(pgxmock.NewRows([]string{"id"}).AddRow(10))
					mock.ExpectQuery(regexp.QuoteMeta(`
			INSERT INTO fund_transactions (family_fund_id, user_id, amount, description, type, reference_number)
			VALUES ($1, $2, $3, $4, $5, $6)
			RETURNING id, created_at`)).
						WithArgs(10, 5, int64(-5000), "gazette subscription", domain.TransactionTypePayment, "").
						WillReturnRows(pgxmock.NewRows([]string{"id", "created_at"}).AddRow(1, now))
					return fn(ctx)
				})
			},
			expectedErr: nil,
		},
		{
			name:   "Insufficient balance",
			fundID: 10,
			amount: 5000,
			mockSetup: func() {
				tx.EXPECT().Begin(gomock.Any(), gomock.Any()).DoAndReturn(func(ctx context.Context, fn pg.TransactionalFn) error {
					mock.ExpectQuery(regexp.QuoteMeta(`
				UPDATE family_funds
				SET balance = balance - $1
				WHERE id = $2 AND balance >= $1
				RETURNING id`)).
						WithArgs(int64(5000), 10).
						WillReturnError(pgx.ErrNoRows)
					return fn(ctx)
				})
			},
			expectedErr: ErrInsufficientFunds,
		},
		{
			name:   "Database error",
			fundID: 10,
			amount: 5000,
			mockSetup: func() {
				tx.EXPECT().Begin(gomock.Any(), gomock.Any()).DoAndReturn(func(ctx context.Context, fn pg.TransactionalFn) error {
					mock.ExpectQuery(regexp.QuoteMeta(`
				UPDATE family_funds
				SET balance = balance - $1
				WHERE id = $2 AND balance >= $1
				RETURNING id`)).
						WithArgs(int64(5000), 10).
						WillReturnError(errors.New("database error"))
					return fn(ctx)
				})
			},
			expectedErr: errors.New("database error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()

			transaction, err := repo.Debit(context.Background(), tt.fundID, tt.amount, 5, "gazette subscription")

			if tt.expectedErr != nil {
				assert.Error(t, err)
				assert.Equal(t, tt.expectedErr.Error(), err.Error())
				assert.Nil(t, transaction)
			} else {
				assert.NoError(t, err)
				assert.NotNil(t, transaction)
				assert.Equal(t, int64(-5000), transaction.Amount)
				assert.Equal(t, domain.TransactionTypePayment, transaction.Type)
				assert.Equal(t, 1, transaction.ID)
			}
		})
	}
}

func TestRepository_Credit(t *testing.T) {
	repo, mock, tx := NewMock(t)
	now := time.Now()

	tests := []struct {
		name        string
		txType      string
		mockSetup   func(txType string)
		expectedErr error
	}{
		{
			name:   "Successfully credits fund with deposit",
			txType: domain.TransactionTypeDeposit,
			mockSetup: func(txType string) {
				tx.EXPECT().Begin(gomock.Any(), gomock.Any()).DoAndReturn(func(ctx context.Context, fn pg.TransactionalFn) error {
					mock.ExpectQuery(regexp.QuoteMeta(`
				UPDATE family_funds
				SET balance = balance + $1
				WHERE id = $2
				RETURNING id`)).
						WithArgs(int64(2000), 10).
						WillReturnRows(pgxmock.NewRows([]string{"id"}).AddRow(10))
					mock.ExpectQuery(regexp.QuoteMeta(`
			INSERT INTO fund_transactions (family_fund_id, user_id, amount, description, type, reference_number)
			VALUES ($1, $2, $3, $4, $5, $6)
			RETURNING id, created_at`)).
						WithArgs(10, 5, int64(2000), "monthly contribution", txType, "").
						WillReturnRows(pgxmock.NewRows([]string{"id", "created_at"}).AddRow(2, now))
					return fn(ctx)
				})
			},
			expectedErr: nil,
		},
		{
			name:   "Successfully credits fund with refund",
			txType: domain.TransactionTypeRefund,
			mockSetup: func(txType string) {
				tx.EXPECT().Begin(gomock.Any(), gomock.Any()).DoAndReturn(func(ctx context.Context, fn pg.TransactionalFn) error {
					mock.ExpectQuery(regexp.QuoteMeta(`
				UPDATE family_funds
				SET balance = balance + $1
				WHERE id = $2
				RETURNING id`)).
						WithArgs(int64(2000), 10).
						WillReturnRows(pgxmock.NewRows([]string{"id"}).AddRow(10))
					mock.ExpectQuery(regexp.QuoteMeta(`
			INSERT INTO fund_transactions (family_fund_id, user_id, amount, description, type, reference_number)
			VALUES ($1, $2, $3, $4, $5, $6)
			RETURNING id, created_at`)).
						WithArgs(10, 5, int64(2000), "monthly contribution", txType, "").
						WillReturnRows(pgxmock.NewRows([]string{"id", "created_at"}).AddRow(3, now))
					return fn(ctx)
				})
			},
			expectedErr: nil,
		},
		{
			name:   "Database error",
			txType: domain.TransactionTypeDeposit,
			mockSetup: func(txType string) {
				tx.EXPECT().Begin(gomock.Any(), gomock.Any()).DoAndReturn(func(ctx context.Context, fn pg.TransactionalFn) error {
					mock.ExpectQuery(regexp.QuoteMeta(`
				UPDATE family_funds
				SET balance = balance + $1
				WHERE id = $2
				RETURNING id`)).
						WithArgs(int64(2000), 10).
						WillReturnError(errors.New("database error"))
					return fn(ctx)
				})
			},
			expectedErr: errors.New("database error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup(tt.txType)

			transaction, err := repo.Credit(context.Background(), 10, 2000, 5, "monthly contribution", tt.txType)

			if tt.expectedErr != nil {
				assert.Error(t, err)
				assert.Equal(t, tt.expectedErr.Error(), err.Error())
				assert.Nil(t, transaction)
			} else {
				assert.NoError(t, err)
				assert.NotNil(t, transaction)
				assert.Equal(t, int64(2000), transaction.Amount)
				assert.Equal(t, tt.txType, transaction.Type)
			}
		})
	}
}
