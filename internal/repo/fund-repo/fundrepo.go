package fundrepo

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"github.com/Eliezelg/myfamilyreplit-sub000/internal/domain"
	"github.com/Eliezelg/myfamilyreplit-sub000/internal/pg"
	"go.uber.org/zap"
)

// ErrInsufficientFunds is returned when the guarded debit rejects because
// the balance dropped below the debit amount between the caller's read and
// the update.
var ErrInsufficientFunds = errors.New("insufficient fund balance")

type Repository struct {
	db        pg.Database
	txManager pg.TXManager
}

func New(db pg.Database, txManager pg.TXManager) *Repository {
	return &Repository{
		db:        db,
		txManager: txManager,
	}
}

func (r *Repository) GetByFamilyID(ctx context.Context, familyID int) (*domain.FamilyFund, error) {
	query := `
        SELECT id, family_id, balance, currency
        FROM family_funds
        WHERE family_id = $1
    `
	row := r.db.QueryRow(ctx, query, familyID)
	var fund domain.FamilyFund
	err := row.Scan(&fund.ID, &fund.FamilyID, &fund.Balance, &fund.Currency)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		zap.L().Error("failed to get family fund", zap.Error(err))
		return nil, err
	}
	return &fund, nil
}

func (r *Repository) Create(ctx context.Context, familyID int) (*domain.FamilyFund, error) {
	query := `
        INSERT INTO family_funds (family_id, balance)
        VALUES ($1, 0)
        RETURNING id, family_id, balance, currency
    `
	row := r.db.QueryRow(ctx, query, familyID)
	var fund domain.FamilyFund
	err := row.Scan(&fund.ID, &fund.FamilyID, &fund.Balance, &fund.Currency)
	if err != nil {
		zap.L().Error("failed to create family fund", zap.Error(err))
		return nil, err
	}
	return &fund, nil
}

func (r *Repository) ListFunds(ctx context.Context, limit uint32) ([]domain.FamilyFund, error) {
	query := `
        SELECT id, family_id, balance, currency
        FROM family_funds
        ORDER BY id
        LIMIT $1
    `
	rows, err := r.db.Query(ctx, query, limit)
	if err != nil {
		zap.L().Error("failed to list family funds", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var funds []domain.FamilyFund
	for rows.Next() {
		var fund domain.FamilyFund
		if err := rows.Scan(&fund.ID, &fund.FamilyID, &fund.Balance, &fund.Currency); err != nil {
			zap.L().Error("failed to scan fund row", zap.Error(err))
			return nil, err
		}
		funds = append(funds, fund)
	}

	return funds, nil
}

// Debit decreases the balance by amount (given positive, recorded negative)
// and appends the ledger entry in the same transaction. The balance update is
// a single guarded statement so concurrent debits cannot overdraw.
func (r *Repository) Debit(ctx context.Context, fundID int, amount int64, userID int, description string) (*domain.FundTransaction, error) {
	transaction := &domain.FundTransaction{
		FamilyFundID: fundID,
		UserID:       userID,
		Amount:       -amount,
		Description:  description,
		Type:         domain.TransactionTypePayment,
	}

	err := r.txManager.Begin(ctx, func(ctx context.Context) error {
		updateQuery := `
			UPDATE family_funds
			SET balance = balance - $1
			WHERE id = $2 AND balance >= $1
			RETURNING id
		`
		var id int
		if err := r.db.QueryRow(ctx, updateQuery, amount, fundID).Scan(&id); err != nil {
			if err == pgx.ErrNoRows {
				return ErrInsufficientFunds
			}
			zap.L().Error("failed to debit family fund", zap.Error(err))
			return err
		}
		return r.appendTransaction(ctx, transaction)
	})

	if err != nil {
		return nil, err
	}
	return transaction, nil
}

// Credit increases the balance and appends a positive ledger entry of the
// given type (deposit or refund) in the same transaction.
func (r *Repository) Credit(ctx context.Context, fundID int, amount int64, userID int, description, txType string) (*domain.FundTransaction, error) {
	transaction := &domain.FundTransaction{
		FamilyFundID: fundID,
		UserID:       userID,
		Amount:       amount,
		Description:  description,
		Type:         txType,
	}

	err := r.txManager.Begin(ctx, func(ctx context.Context) error {
		updateQuery := `
			UPDATE family_funds
			SET balance = balance + $1
			WHERE id = $2
			RETURNING id
		`
		var id int
		if err := r.db.QueryRow(ctx, updateQuery, amount, fundID).Scan(&id); err != nil {
			zap.L().Error("failed to credit family fund", zap.Error(err))
			return err
		}
		return r.appendTransaction(ctx, transaction)
	})

	if err != nil {
		return nil, err
	}
	return transaction, nil
}

func (r *Repository) appendTransaction(ctx context.Context, transaction *domain.FundTransaction) error {
	query := `
		INSERT INTO fund_transactions (family_fund_id, user_id, amount, description, type, reference_number)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at
	`
	err := r.db.QueryRow(ctx, query,
		transaction.FamilyFundID,
		transaction.UserID,
		transaction.Amount,
		transaction.Description,
		transaction.Type,
		transaction.ReferenceNumber,
	).Scan(&transaction.ID, &transaction.CreatedAt)
	if err != nil {
		zap.L().Error("failed to append fund transaction", zap.Error(err))
		return err
	}
	return nil
}
