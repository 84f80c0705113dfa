package transactionrepo

import (
	"context"

	"github.com/Eliezelg/myfamilyreplit-sub000/internal/domain"
	"github.com/Eliezelg/myfamilyreplit-sub000/internal/pg"
	"go.uber.org/zap"
)

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{
		db: db,
	}
}

func (r *Repository) ListByFundID(ctx context.Context, fundID int) ([]domain.FundTransaction, error) {
	query := `
        SELECT id, family_fund_id, user_id, amount, description, type, reference_number, created_at
        FROM fund_transactions
        WHERE family_fund_id = $1
        ORDER BY created_at DESC
    `
	rows, err := r.db.Query(ctx, query, fundID)
	if err != nil {
		zap.L().Error("failed to fetch fund transactions", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var transactions []domain.FundTransaction
	for rows.Next() {
		var tx domain.FundTransaction
		err := rows.Scan(&tx.ID, &tx.FamilyFundID, &tx.UserID, &tx.Amount, &tx.Description, &tx.Type, &tx.ReferenceNumber, &tx.CreatedAt)
		if err != nil {
			zap.L().Error("failed to scan fund transaction row", zap.Error(err))
			return nil, err
		}
		transactions = append(transactions, tx)
	}

	return transactions, nil
}

// SumByFundID returns the signed sum of all ledger entries for a fund. The
// reconciliation worker compares it against the stored balance.
func (r *Repository) SumByFundID(ctx context.Context, fundID int) (int64, error) {
	query := `
        SELECT COALESCE(SUM(amount), 0)
        FROM fund_transactions
        WHERE family_fund_id = $1
    `
	var sum int64
	if err := r.db.QueryRow(ctx, query, fundID).Scan(&sum); err != nil {
		zap.L().Error("failed to sum fund transactions", zap.Error(err))
		return 0, err
	}
	return sum, nil
}
