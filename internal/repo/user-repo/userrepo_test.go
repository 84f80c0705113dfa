package userrepo

import (
	"context"
	"errors"
	"regexp"
	"testing"

	"github.com/Eliezelg/myfamilyreplit-sub000/internal/domain"
	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/assert"
)

func NewMock(t *testing.T) (*Repository, pgxmock.PgxPoolIface) {
	mockDB, err := pgxmock.NewPool()
	assert.NoError(t, err)
	repo := New(mockDB)
	defer mockDB.Close()

	return repo, mockDB
}

func TestRepository_FindByEmail(t *testing.T) {
	repo, mock := NewMock(t)

	tests := []struct {
		name      string
		email     string
		mockSetup func()
		expectErr bool
		result    *domain.User
	}{
		{
			name:  "Existing email returns user",
			email: "rivka@example.com",
			mockSetup: func() {
				rows := pgxmock.NewRows([]string{"id", "email", "password_hash", "family_id"}).
					AddRow(1, "rivka@example.com", "hashedpassword", 7)
				mock.ExpectQuery(regexp.QuoteMeta("SELECT id, email, password_hash, family_id FROM users WHERE email = $1")).
					WithArgs("rivka@example.com").
					WillReturnRows(rows)
			},
			expectErr: false,
			result: &domain.User{
				ID:           1,
				Email:        "rivka@example.com",
				PasswordHash: "hashedpassword",
				FamilyID:     7,
			},
		},
		{
			name:  "Unknown email returns nil",
			email: "nobody@example.com",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta("SELECT id, email, password_hash, family_id FROM users WHERE email = $1")).
					WithArgs("nobody@example.com").
					WillReturnError(pgx.ErrNoRows)
			},
			expectErr: false,
			result:    nil,
		},
		{
			name:  "Database error",
			email: "rivka@example.com",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta("SELECT id, email, password_hash, family_id FROM users WHERE email = $1")).
					WithArgs("rivka@example.com").
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
			result:    nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			result, err := repo.FindByEmail(context.Background(), tt.email)

			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}

			if tt.result == nil {
				assert.Nil(t, result)
			} else {
				assert.Equal(t, tt.result, result)
			}
		})
	}
}

func TestRepository_Create(t *testing.T) {
	repo, mock := NewMock(t)

	t.Run("Successfully creates user", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta(`
			INSERT INTO users (email, password_hash, family_id)
			VALUES ($1, $2, $3)
			RETURNING id`)).
			WithArgs("rivka@example.com", "hashedpassword", 7).
			WillReturnRows(pgxmock.NewRows([]string{"id"}).AddRow(1))

		user, err := repo.Create(context.Background(), &domain.User{
			Email:        "rivka@example.com",
			PasswordHash: "hashedpassword",
			FamilyID:     7,
		})
		assert.NoError(t, err)
		assert.Equal(t, 1, user.ID)
	})

	t.Run("Database error", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta(`
			INSERT INTO users (email, password_hash, family_id)
			VALUES ($1, $2, $3)
			RETURNING id`)).
			WithArgs("rivka@example.com", "hashedpassword", 7).
			WillReturnError(errors.New("database error"))

		user, err := repo.Create(context.Background(), &domain.User{
			Email:        "rivka@example.com",
			PasswordHash: "hashedpassword",
			FamilyID:     7,
		})
		assert.Error(t, err)
		assert.Nil(t, user)
	})
}

func TestRepository_CreateFamily(t *testing.T) {
	repo, mock := NewMock(t)

	t.Run("Successfully creates family", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta(`
			INSERT INTO families (name)
			VALUES ($1)
			RETURNING id`)).
			WithArgs("Cohen").
			WillReturnRows(pgxmock.NewRows([]string{"id"}).AddRow(7))

		family, err := repo.CreateFamily(context.Background(), "Cohen")
		assert.NoError(t, err)
		assert.Equal(t, 7, family.ID)
		assert.Equal(t, "Cohen", family.Name)
	})

	t.Run("Database error", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta(`
			INSERT INTO families (name)
			VALUES ($1)
			RETURNING id`)).
			WithArgs("Cohen").
			WillReturnError(errors.New("database error"))

		family, err := repo.CreateFamily(context.Background(), "Cohen")
		assert.Error(t, err)
		assert.Nil(t, family)
	})
}
