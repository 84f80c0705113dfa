package service

import (
	"github.com/Eliezelg/myfamilyreplit-sub000/internal/handlers/auth"
	"github.com/Eliezelg/myfamilyreplit-sub000/internal/handlers/fund"
	"github.com/Eliezelg/myfamilyreplit-sub000/internal/handlers/payment"

	pkgauth "github.com/Eliezelg/myfamilyreplit-sub000/pkg/auth"

	"github.com/Eliezelg/myfamilyreplit-sub000/internal/repo"
	authservice "github.com/Eliezelg/myfamilyreplit-sub000/internal/service/authservice"
	fundservice "github.com/Eliezelg/myfamilyreplit-sub000/internal/service/fundservice"
	paymentservice "github.com/Eliezelg/myfamilyreplit-sub000/internal/service/paymentservice"
)

type Services struct {
	AuthService    auth.Service
	FundService    fund.Service
	PaymentService payment.Service
}

func New(repo *repo.Repositories, gateway paymentservice.Gateway) *Services {
	fundService := fundservice.New(repo.FundRepo, repo.TransactionRepo)
	paymentService := paymentservice.New(repo.FundRepo, gateway)
	authService := authservice.New(repo.UserRepo, fundService, &pkgauth.HashService{}, &pkgauth.JWTService{})

	return &Services{
		AuthService:    authService,
		FundService:    fundService,
		PaymentService: paymentService,
	}
}
