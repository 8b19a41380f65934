package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/SscSPs/bank_account_kata/internal/apperrors"
	"github.com/SscSPs/bank_account_kata/internal/core/domain"
	portssvc "github.com/SscSPs/bank_account_kata/internal/core/ports/services"
	"github.com/SscSPs/bank_account_kata/internal/dto"
	"github.com/SscSPs/bank_account_kata/internal/middleware"
)

// accountHandler handles HTTP requests related to accounts.
type accountHandler struct {
	accountService portssvc.AccountSvcFacade
}

// newAccountHandler creates a new accountHandler.
func newAccountHandler(as portssvc.AccountSvcFacade) *accountHandler {
	return &accountHandler{
		accountService: as,
	}
}

// registerAccountRoutes registers routes related to accounts and transfers.
func registerAccountRoutes(rg *gin.RouterGroup, accountService portssvc.AccountSvcFacade) {
	h := newAccountHandler(accountService)

	accounts := rg.Group("/accounts")
	{
		accounts.POST("", h.openAccount)
		accounts.GET("", h.listAccounts)
		accounts.GET("/:id", h.getAccount)
		accounts.POST("/:id/deposit", h.deposit)
		accounts.POST("/:id/withdraw", h.withdraw)
		accounts.GET("/:id/transactions", h.listTransactions)
		accounts.GET("/:id/compare/:otherID", h.compareBalances)
		accounts.POST("/:id/statements/balance", h.printBalanceStatement)
		accounts.POST("/:id/statements/full", h.printFullStatement)
	}
	rg.POST("/transfers", h.transfer)
}

// openAccount godoc
// @Summary Open a new account
// @Description Opens an account, recording a positive initial amount as its first deposit
// @Tags accounts
// @Accept  json
// @Produce  json
// @Param   account body dto.OpenAccountRequest false "Opening amount"
// @Success 201 {object} dto.AccountResponse
// @Failure 400 {object} map[string]string "Invalid input format or validation error"
// @Router /accounts [post]
func (h *accountHandler) openAccount(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.OpenAccountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for OpenAccount", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	initial := domain.Zero
	if req.InitialAmount != "" {
		amount, err := domain.ParseMoney(req.InitialAmount)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		initial = amount
	}

	account, err := h.accountService.OpenAccount(c.Request.Context(), initial)
	if err != nil {
		h.writeServiceError(c, err, "Failed to open account")
		return
	}
	c.JSON(http.StatusCreated, dto.ToAccountResponse(account))
}

// getAccount godoc
// @Summary Get an account by ID
// @Tags accounts
// @Produce  json
// @Param   id path string true "Account ID"
// @Success 200 {object} dto.AccountResponse
// @Failure 404 {object} map[string]string "Account not found"
// @Router /accounts/{id} [get]
func (h *accountHandler) getAccount(c *gin.Context) {
	account, err := h.accountService.GetAccount(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.writeServiceError(c, err, "Failed to retrieve account")
		return
	}
	c.JSON(http.StatusOK, dto.ToAccountResponse(account))
}

func (h *accountHandler) listAccounts(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var params dto.ListAccountsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		logger.Warn("Failed to bind query parameters for ListAccounts", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}

	accounts, err := h.accountService.ListAccounts(c.Request.Context(), params.Limit, params.Offset, params.OrderBy == "balance")
	if err != nil {
		h.writeServiceError(c, err, "Failed to list accounts")
		return
	}
	c.JSON(http.StatusOK, dto.ListAccountsResponse{Accounts: dto.ToListAccountResponse(accounts)})
}

// deposit godoc
// @Summary Deposit into an account
// @Tags accounts
// @Accept  json
// @Produce  json
// @Param   id path string true "Account ID"
// @Param   amount body dto.AmountRequest true "Amount"
// @Success 200 {object} dto.AccountResponse
// @Failure 400 {object} map[string]string "Invalid amount"
// @Failure 404 {object} map[string]string "Account not found"
// @Router /accounts/{id}/deposit [post]
func (h *accountHandler) deposit(c *gin.Context) {
	amount, ok := bindAmount(c)
	if !ok {
		return
	}
	account, err := h.accountService.Deposit(c.Request.Context(), c.Param("id"), amount)
	if err != nil {
		h.writeServiceError(c, err, "Failed to deposit")
		return
	}
	c.JSON(http.StatusOK, dto.ToAccountResponse(account))
}

// withdraw godoc
// @Summary Withdraw from an account
// @Tags accounts
// @Accept  json
// @Produce  json
// @Param   id path string true "Account ID"
// @Param   amount body dto.AmountRequest true "Amount"
// @Success 200 {object} dto.AccountResponse
// @Failure 409 {object} map[string]string "Insufficient funds"
// @Router /accounts/{id}/withdraw [post]
func (h *accountHandler) withdraw(c *gin.Context) {
	amount, ok := bindAmount(c)
	if !ok {
		return
	}
	account, err := h.accountService.Withdraw(c.Request.Context(), c.Param("id"), amount)
	if err != nil {
		h.writeServiceError(c, err, "Failed to withdraw")
		return
	}
	c.JSON(http.StatusOK, dto.ToAccountResponse(account))
}

// transfer godoc
// @Summary Transfer between two accounts
// @Tags transfers
// @Accept  json
// @Produce  json
// @Param   transfer body dto.TransferRequest true "Transfer"
// @Success 200 {object} dto.TransferResponse
// @Failure 409 {object} map[string]string "Insufficient funds"
// @Router /transfers [post]
func (h *accountHandler) transfer(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.TransferRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for Transfer", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}
	amount, err := domain.ParseMoney(req.Amount)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	from, to, err := h.accountService.Transfer(c.Request.Context(), req.FromAccountID, req.ToAccountID, amount)
	if err != nil {
		h.writeServiceError(c, err, "Failed to transfer")
		return
	}
	c.JSON(http.StatusOK, dto.TransferResponse{
		From: dto.ToAccountResponse(from),
		To:   dto.ToAccountResponse(to),
	})
}

func (h *accountHandler) listTransactions(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var params dto.ListTransactionsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		logger.Warn("Failed to bind query parameters for ListTransactions", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}

	accountID := c.Param("id")
	txns, err := h.accountService.ListTransactions(c.Request.Context(), accountID, params.Filters()...)
	if err != nil {
		h.writeServiceError(c, err, "Failed to list transactions")
		return
	}
	c.JSON(http.StatusOK, dto.ListTransactionsResponse{AccountID: accountID, Transactions: txns})
}

func (h *accountHandler) compareBalances(c *gin.Context) {
	cmp, err := h.accountService.CompareBalances(c.Request.Context(), c.Param("id"), c.Param("otherID"))
	if err != nil {
		h.writeServiceError(c, err, "Failed to compare balances")
		return
	}
	c.JSON(http.StatusOK, dto.CompareBalancesResponse{Comparison: cmp, SameBalance: cmp == 0})
}

func (h *accountHandler) printBalanceStatement(c *gin.Context) {
	if err := h.accountService.PrintBalanceStatement(c.Request.Context(), c.Param("id")); err != nil {
		h.writeServiceError(c, err, "Failed to print balance statement")
		return
	}
	c.Status(http.StatusAccepted)
}

// printFullStatement accepts the same filters as listTransactions.
func (h *accountHandler) printFullStatement(c *gin.Context) {
	var params dto.ListTransactionsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}
	if err := h.accountService.PrintFullStatement(c.Request.Context(), c.Param("id"), params.Filters()...); err != nil {
		h.writeServiceError(c, err, "Failed to print full statement")
		return
	}
	c.Status(http.StatusAccepted)
}

// bindAmount binds an AmountRequest body and parses it, writing a 400 on failure.
func bindAmount(c *gin.Context) (domain.Money, bool) {
	var req dto.AmountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.GetLoggerFromCtx(c.Request.Context()).Warn("Failed to bind amount", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return domain.Zero, false
	}
	amount, err := domain.ParseMoney(req.Amount)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return domain.Zero, false
	}
	return amount, true
}

// writeServiceError maps service errors onto HTTP status codes.
func (h *accountHandler) writeServiceError(c *gin.Context, err error, msg string) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	switch {
	case errors.Is(err, apperrors.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, apperrors.ErrInsufficientFunds):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case errors.Is(err, apperrors.ErrValidation):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		logger.Error(msg, slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": msg})
	}
}
