package userrepo

import (
	"context"

	"github.com/Eliezelg/myfamilyreplit-sub000/internal/domain"
	"github.com/Eliezelg/myfamilyreplit-sub000/internal/pg"
	"github.com/jackc/pgx/v5"
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

func (repo *Repository) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	var user domain.User
	err := repo.db.QueryRow(ctx, "SELECT id, email, password_hash, family_id FROM users WHERE email = $1", email).
		Scan(&user.ID, &user.Email, &user.PasswordHash, &user.FamilyID)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		zap.L().Error("can't find user", zap.Error(err))
		return nil, err
	}
	return &user, nil
}

func (repo *Repository) Create(ctx context.Context, user *domain.User) (*domain.User, error) {
	query := `
		INSERT INTO users (email, password_hash, family_id)
		VALUES ($1, $2, $3)
		RETURNING id
	`
	err := repo.db.QueryRow(ctx, query, user.Email, user.PasswordHash, user.FamilyID).Scan(&user.ID)
	if err != nil {
		zap.L().Error("can't save user", zap.Error(err))
		return nil, err
	}
	return user, nil
}

func (repo *Repository) CreateFamily(ctx context.Context, name string) (*domain.Family, error) {
	family := &domain.Family{Name: name}
	query := `
		INSERT INTO families (name)
		VALUES ($1)
		RETURNING id
	`
	err := repo.db.QueryRow(ctx, query, name).Scan(&family.ID)
	if err != nil {
		zap.L().Error("can't save family", zap.Error(err))
		return nil, err
	}
	return family, nil
}
