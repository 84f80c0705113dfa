package handlers

import (
	"net/http"

	_ "github.com/Eliezelg/myfamilyreplit-sub000/docs"
	authhandlers "github.com/Eliezelg/myfamilyreplit-sub000/internal/handlers/auth"
	fundhandlers "github.com/Eliezelg/myfamilyreplit-sub000/internal/handlers/fund"
	paymenthandlers "github.com/Eliezelg/myfamilyreplit-sub000/internal/handlers/payment"
	"github.com/Eliezelg/myfamilyreplit-sub000/internal/service"
	"github.com/Eliezelg/myfamilyreplit-sub000/pkg/auth"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"
)

type AuthHandler interface {
	Register(w http.ResponseWriter, r *http.Request)
	Login(w http.ResponseWriter, r *http.Request)
}

type FundHandler interface {
	GetFund(w http.ResponseWriter, r *http.Request)
	Deposit(w http.ResponseWriter, r *http.Request)
	GetTransactions(w http.ResponseWriter, r *http.Request)
}

type PaymentHandler interface {
	ProcessPayment(w http.ResponseWriter, r *http.Request)
	TokenizeCard(w http.ResponseWriter, r *http.Request)
}

type Handlers struct {
	AuthHandler    AuthHandler
	FundHandler    FundHandler
	PaymentHandler PaymentHandler
}

func New(s *service.Services) *Handlers {
	return &Handlers{
		AuthHandler:    authhandlers.New(s.AuthService),
		FundHandler:    fundhandlers.New(s.FundService),
		PaymentHandler: paymenthandlers.New(s.PaymentService),
	}
}

func (h *Handlers) InitRoutes(r chi.Router) chi.Router {
	r.Use(
		middleware.RealIP,
		middleware.Recoverer,
		middleware.Logger,
	)
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("doc.json"),
	))
	r.Route("/api/user", func(r chi.Router) {
		r.Post("/register", h.AuthHandler.Register)
		r.Post("/login", h.AuthHandler.Login)
	})

	r.Group(func(r chi.Router) {
		r.Use(auth.AuthMiddleware)
		r.Route("/api/family", func(r chi.Router) {
			r.Route("/fund", func(r chi.Router) {
				r.Get("/", h.FundHandler.GetFund)
				r.Post("/deposit", h.FundHandler.Deposit)
				r.Get("/transactions", h.FundHandler.GetTransactions)
			})
			r.Post("/payments", h.PaymentHandler.ProcessPayment)
		})
		r.Post("/api/cards/tokenize", h.PaymentHandler.TokenizeCard)
	})

	return r
}
