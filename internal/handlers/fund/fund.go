package fund

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/Eliezelg/myfamilyreplit-sub000/internal/domain"
	"github.com/Eliezelg/myfamilyreplit-sub000/internal/dto"
	fundservice "github.com/Eliezelg/myfamilyreplit-sub000/internal/service/fundservice"
	"github.com/Eliezelg/myfamilyreplit-sub000/pkg/auth"
	"github.com/Eliezelg/myfamilyreplit-sub000/pkg/utils"
)

type Service interface {
	CreateFund(ctx context.Context, familyID int) (*domain.FamilyFund, error)
	GetFund(ctx context.Context, familyID int) (*domain.FamilyFund, error)
	Deposit(ctx context.Context, familyID, userID int, amount int64, description string) (*domain.FundTransaction, error)
	GetTransactions(ctx context.Context, familyID int) ([]domain.FundTransaction, error)
}

type FundHandler struct {
	fundService Service
}

func New(fundService Service) *FundHandler {
	return &FundHandler{
		fundService: fundService,
	}
}

// GetFund godoc
//
//	@Summary		Get the family fund balance
//	@Description	Retrieve the collective fund balance for the authenticated user's family.
//	@Tags			Fund
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{object}	dto.FundResponseDTO	"Current fund balance"
//	@Failure		401	{object}	utils.Response		"User not authorized"
//	@Failure		404	{object}	utils.Response		"Fund not found"
//	@Failure		500	{object}	utils.Response		"Internal server error"
//	@Router			/api/family/fund [get]
func (h *FundHandler) GetFund(w http.ResponseWriter, r *http.Request) {
	familyID := r.Context().Value(auth.FamilyIDKey).(int)

	fund, err := h.fundService.GetFund(r.Context(), familyID)
	if err != nil {
		switch {
		case errors.Is(err, fundservice.ErrFundNotFound):
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.FundResponseDTO{
		Balance:  fund.Balance,
		Currency: fund.Currency,
	})
}

// Deposit godoc
//
//	@Summary		Deposit into the family fund
//	@Description	Credit the collective fund with the given amount in minor currency units.
//	@Tags			Fund
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.DepositRequestDTO	true	"Deposit request payload"
//	@Success		200		{object}	dto.DepositResponseDTO	"Deposit recorded"
//	@Failure		400		{object}	utils.Response			"Invalid request body"
//	@Failure		401		{object}	utils.Response			"User not authorized"
//	@Failure		500		{object}	utils.Response			"Internal server error"
//	@Router			/api/family/fund/deposit [post]
func (h *FundHandler) Deposit(w http.ResponseWriter, r *http.Request) {
	familyID := r.Context().Value(auth.FamilyIDKey).(int)
	userID := r.Context().Value(auth.UserIDKey).(int)

	var req dto.DepositRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	transaction, err := h.fundService.Deposit(r.Context(), familyID, userID, req.Amount, req.Description)
	if err != nil {
		switch {
		case errors.Is(err, fundservice.ErrNonPositiveAmount):
			utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.DepositResponseDTO{
		TransactionID: int64(transaction.ID),
		Amount:        transaction.Amount,
	})
}

// GetTransactions godoc
//
//	@Summary		Get fund transaction history
//	@Description	Get the fund ledger for the authenticated user's family, newest entries first.
//	@Tags			Fund
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{array}		dto.FundTransactionDTO	"Fund transaction history"
//	@Success		204	{object}	utils.Response			"No transactions yet"
//	@Failure		401	{object}	utils.Response			"User not authorized"
//	@Failure		500	{object}	utils.Response			"Internal server error"
//	@Router			/api/family/fund/transactions [get]
func (h *FundHandler) GetTransactions(w http.ResponseWriter, r *http.Request) {
	familyID := r.Context().Value(auth.FamilyIDKey).(int)

	transactions, err := h.fundService.GetTransactions(r.Context(), familyID)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to fetch transactions")
		return
	}

	if len(transactions) == 0 {
		utils.RespondWithError(w, http.StatusNoContent, "Transactions not found")
		return
	}

	response := make([]dto.FundTransactionDTO, len(transactions))
	for i, tx := range transactions {
		response[i] = dto.FundTransactionDTO{
			ID:              tx.ID,
			Amount:          tx.Amount,
			Description:     tx.Description,
			Type:            tx.Type,
			ReferenceNumber: tx.ReferenceNumber,
			CreatedAt:       tx.CreatedAt,
		}
	}

	utils.RespondWithJSON(w, http.StatusOK, response)
}
