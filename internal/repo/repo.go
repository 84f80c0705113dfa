package repo

import (
	"github.com/Eliezelg/myfamilyreplit-sub000/internal/pg"
	fundrepo "github.com/Eliezelg/myfamilyreplit-sub000/internal/repo/fund-repo"
	transactionrepo "github.com/Eliezelg/myfamilyreplit-sub000/internal/repo/transaction-repo"
	userrepo "github.com/Eliezelg/myfamilyreplit-sub000/internal/repo/user-repo"
	"github.com/Eliezelg/myfamilyreplit-sub000/internal/service/authservice"
	"github.com/Eliezelg/myfamilyreplit-sub000/internal/service/fundservice"
)

type Repositories struct {
	UserRepo        authservice.Repo
	FundRepo        fundservice.FundRepo
	TransactionRepo fundservice.TransactionRepo
}

func New(conn pg.Database, txManager pg.TXManager) *Repositories {
	userRepo := userrepo.New(conn)
	fundRepo := fundrepo.New(conn, txManager)
	transactionRepo := transactionrepo.New(conn)

	return &Repositories{
		UserRepo:        userRepo,
		FundRepo:        fundRepo,
		TransactionRepo: transactionRepo,
	}
}
