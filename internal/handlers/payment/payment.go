package payment

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/Eliezelg/myfamilyreplit-sub000/internal/domain"
	"github.com/Eliezelg/myfamilyreplit-sub000/internal/dto"
	paymentservice "github.com/Eliezelg/myfamilyreplit-sub000/internal/service/paymentservice"
	"github.com/Eliezelg/myfamilyreplit-sub000/pkg/auth"
	"github.com/Eliezelg/myfamilyreplit-sub000/pkg/utils"
	"github.com/Eliezelg/myfamilyreplit-sub000/pkg/validate"
)

type Service interface {
	ProcessPayment(ctx context.Context, familyID, userID int, amount int64, description string, method domain.PaymentMethod, installments int) (*domain.PaymentResult, error)
	TokenizeCard(ctx context.Context, card domain.CardDetails) (*domain.TokenizeResult, error)
}

type PaymentHandler struct {
	paymentService Service
}

func New(paymentService Service) *PaymentHandler {
	return &PaymentHandler{
		paymentService: paymentService,
	}
}

// ProcessPayment godoc
//
//	@Summary		Process a payment
//	@Description	Pay an amount due, drawing from the collective fund first and charging the shortfall to the provided card.
//	@Tags			Payments
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.PaymentRequestDTO	true	"Payment request payload"
//	@Success		200		{object}	dto.PaymentResponseDTO	"Payment outcome"
//	@Failure		400		{object}	utils.Response			"Invalid request"
//	@Failure		401		{object}	utils.Response			"User not authorized"
//	@Failure		422		{object}	utils.Response			"Invalid card number"
//	@Failure		500		{object}	utils.Response			"Internal server error"
//	@Router			/api/family/payments [post]
func (h *PaymentHandler) ProcessPayment(w http.ResponseWriter, r *http.Request) {
	familyID := r.Context().Value(auth.FamilyIDKey).(int)
	userID := r.Context().Value(auth.UserIDKey).(int)

	var req dto.PaymentRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	method := domain.PaymentMethod{Token: req.Token}
	if req.Card != nil {
		ok := validate.IsCardNumber(req.Card.Number)
		if !ok {
			utils.RespondWithError(w, http.StatusUnprocessableEntity, "Invalid card number")
			return
		}
		method.Card = &domain.CardDetails{
			Number:   req.Card.Number,
			Expiry:   req.Card.Expiry,
			CVV:      req.Card.CVV,
			HolderID: req.Card.HolderID,
		}
	}

	result, err := h.paymentService.ProcessPayment(r.Context(), familyID, userID, req.Amount, req.Description, method, req.Installments)
	if err != nil {
		switch {
		case errors.Is(err, paymentservice.ErrNonPositiveAmount):
			utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		case errors.Is(err, paymentservice.ErrNoPaymentMethod):
			utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, dto.PaymentResponseDTO{
		Success:            result.Success,
		Message:            result.Message,
		FromCollectiveFund: result.FromCollectiveFund,
		AmountFromFund:     result.AmountFromFund,
		AmountFromCard:     result.AmountFromCard,
		ReferenceNumber:    result.ReferenceNumber,
		CardMask:           result.CardMask,
	})
}

// TokenizeCard godoc
//
//	@Summary		Tokenize a card
//	@Description	Exchange raw card details for a reusable gateway token.
//	@Tags			Payments
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.TokenizeRequestDTO	true	"Card details"
//	@Success		200		{object}	dto.TokenizeResponseDTO	"Token issued"
//	@Failure		400		{object}	utils.Response			"Invalid request body"
//	@Failure		401		{object}	utils.Response			"User not authorized"
//	@Failure		422		{object}	utils.Response			"Card rejected"
//	@Failure		500		{object}	utils.Response			"Internal server error"
//	@Router			/api/cards/tokenize [post]
func (h *PaymentHandler) TokenizeCard(w http.ResponseWriter, r *http.Request) {
	var req dto.TokenizeRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	ok := validate.IsCardNumber(req.Card.Number)
	if !ok {
		utils.RespondWithError(w, http.StatusUnprocessableEntity, "Invalid card number")
		return
	}

	result, err := h.paymentService.TokenizeCard(r.Context(), domain.CardDetails{
		Number:   req.Card.Number,
		Expiry:   req.Card.Expiry,
		CVV:      req.Card.CVV,
		HolderID: req.Card.HolderID,
	})
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	if !result.Success {
		utils.RespondWithError(w, http.StatusUnprocessableEntity, result.Message)
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, dto.TokenizeResponseDTO{
		Token:      result.Token,
		MaskedCard: result.MaskedCard,
	})
}
