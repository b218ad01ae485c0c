package handlers

import (
	"log/slog"
	"net/http"

	"github.com/SscSPs/loyalty_token_ledger/internal/core/domain"
	portssvc "github.com/SscSPs/loyalty_token_ledger/internal/core/ports/services"
	"github.com/SscSPs/loyalty_token_ledger/internal/dto"
	"github.com/SscSPs/loyalty_token_ledger/internal/middleware"
	"github.com/gin-gonic/gin"
)

// tokenHandler handles HTTP requests related to symbols, supply and balances.
type tokenHandler struct {
	tokenService portssvc.TokenSvcFacade
}

func newTokenHandler(ts portssvc.TokenSvcFacade) *tokenHandler {
	return &tokenHandler{tokenService: ts}
}

// registerTokenRoutes registers the token queries on public and the token actions on signed.
func registerTokenRoutes(public, signed *gin.RouterGroup, h *tokenHandler) {
	tokens := public.Group("/tokens")
	{
		tokens.GET("", h.listSymbols)
		tokens.GET("/:symbol/supply", h.getSupply)
		tokens.GET("/:symbol/stats", h.getStats)
	}
	accounts := public.Group("/accounts/:owner")
	{
		accounts.GET("/balances/:symbol", h.getBalance)
		accounts.GET("/rows/:symbol", h.getAccount)
	}

	signedTokens := signed.Group("/tokens")
	{
		signedTokens.POST("", h.createToken)
		signedTokens.POST("/issue", h.issue)
		signedTokens.POST("/burn", h.burn)
	}
}

// createToken godoc
// @Summary Create a new token
// @Description Registers a symbol with zero supply and a fixed maximum supply. Must be signed by the ledger administrator.
// @Tags tokens
// @Accept  json
// @Produce  json
// @Param   token body dto.CreateTokenRequest true "Token details"
// @Success 201 {object} dto.StatsResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 401 {object} map[string]string "Invalid identity proof"
// @Failure 403 {object} map[string]string "Missing required authority"
// @Failure 409 {object} map[string]string "Token with symbol already exists"
// @Failure 500 {object} map[string]string "Failed to create token"
// @Security BearerAuth
// @Router /tokens [post]
func (h *tokenHandler) createToken(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateTokenRequest
	if !bindJSON(c, logger, &req) {
		return
	}

	maxSupply, err := domain.ParseAsset(req.MaximumSupply)
	if err != nil {
		respondError(c, logger, err, "Failed to create token")
		return
	}

	info := domain.StoreInfo{Name: req.Name, URL: req.URL, LogoURL: req.LogoURL}
	stats, err := h.tokenService.Create(c.Request.Context(), domain.Name(req.Issuer), maxSupply, info)
	if err != nil {
		respondError(c, logger, err, "Failed to create token")
		return
	}

	logger.Info("Token created successfully", slog.String("symbol", stats.Symbol().String()))
	c.JSON(http.StatusCreated, dto.ToStatsResponse(stats))
}

// issue godoc
// @Summary Issue tokens
// @Description Mints quantity to an account. Must be signed by the symbol's issuer.
// @Tags tokens
// @Accept  json
// @Produce  json
// @Param   issue body dto.IssueRequest true "Recipient and quantity"
// @Success 200 {object} dto.StatsResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 403 {object} map[string]string "Missing required authority"
// @Failure 404 {object} map[string]string "Symbol not found"
// @Failure 422 {object} map[string]string "Quantity exceeds available supply"
// @Failure 500 {object} map[string]string "Failed to issue tokens"
// @Security BearerAuth
// @Router /tokens/issue [post]
func (h *tokenHandler) issue(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.IssueRequest
	if !bindJSON(c, logger, &req) {
		return
	}

	quantity, err := domain.ParseAsset(req.Quantity)
	if err != nil {
		respondError(c, logger, err, "Failed to issue tokens")
		return
	}

	stats, err := h.tokenService.Issue(c.Request.Context(), domain.Name(req.To), quantity, req.Memo)
	if err != nil {
		respondError(c, logger, err, "Failed to issue tokens")
		return
	}

	c.JSON(http.StatusOK, dto.ToStatsResponse(stats))
}

// burn godoc
// @Summary Burn tokens
// @Description Destroys value from the owner's spendable balance. Must be signed by the owner.
// @Tags tokens
// @Accept  json
// @Produce  json
// @Param   burn body dto.BurnRequest true "Owner and value"
// @Success 200 {object} dto.StatsResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 403 {object} map[string]string "Missing required authority"
// @Failure 404 {object} map[string]string "No balance object found"
// @Failure 422 {object} map[string]string "Overdrawn balance"
// @Failure 500 {object} map[string]string "Failed to burn tokens"
// @Security BearerAuth
// @Router /tokens/burn [post]
func (h *tokenHandler) burn(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.BurnRequest
	if !bindJSON(c, logger, &req) {
		return
	}

	value, err := domain.ParseAsset(req.Value)
	if err != nil {
		respondError(c, logger, err, "Failed to burn tokens")
		return
	}

	stats, err := h.tokenService.Burn(c.Request.Context(), domain.Name(req.Owner), value)
	if err != nil {
		respondError(c, logger, err, "Failed to burn tokens")
		return
	}

	c.JSON(http.StatusOK, dto.ToStatsResponse(stats))
}

// listSymbols godoc
// @Summary List all symbols
// @Description Enumerates the symbol registry ordered by code
// @Tags tokens
// @Produce  json
// @Success 200 {array} dto.SymbolResponse
// @Failure 500 {object} map[string]string "Failed to list symbols"
// @Router /tokens [get]
func (h *tokenHandler) listSymbols(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	entries, err := h.tokenService.ListSymbols(c.Request.Context())
	if err != nil {
		respondError(c, logger, err, "Failed to list symbols")
		return
	}
	c.JSON(http.StatusOK, dto.ToListSymbolResponse(entries))
}

// getSupply godoc
// @Summary Get token supply
// @Description Returns the current supply of a symbol
// @Tags tokens
// @Produce  json
// @Param   symbol path string true "Symbol code" MaxLength(7)
// @Success 200 {object} dto.AssetResponse
// @Failure 400 {object} map[string]string "Invalid symbol name"
// @Failure 404 {object} map[string]string "Symbol not found"
// @Failure 500 {object} map[string]string "Failed to retrieve supply"
// @Router /tokens/{symbol}/supply [get]
func (h *tokenHandler) getSupply(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	supply, err := h.tokenService.GetSupply(c.Request.Context(), c.Param("symbol"))
	if err != nil {
		respondError(c, logger, err, "Failed to retrieve supply")
		return
	}
	c.JSON(http.StatusOK, dto.ToAssetResponse(*supply))
}

// getStats godoc
// @Summary Get token stats
// @Description Returns supply, maximum supply, issuer and metadata of a symbol
// @Tags tokens
// @Produce  json
// @Param   symbol path string true "Symbol code" MaxLength(7)
// @Success 200 {object} dto.StatsResponse
// @Failure 400 {object} map[string]string "Invalid symbol name"
// @Failure 404 {object} map[string]string "Symbol not found"
// @Failure 500 {object} map[string]string "Failed to retrieve stats"
// @Router /tokens/{symbol}/stats [get]
func (h *tokenHandler) getStats(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	stats, err := h.tokenService.GetStats(c.Request.Context(), c.Param("symbol"))
	if err != nil {
		respondError(c, logger, err, "Failed to retrieve stats")
		return
	}
	c.JSON(http.StatusOK, dto.ToStatsResponse(stats))
}

// getBalance godoc
// @Summary Get spendable balance
// @Description Returns the balance of owner in symbol minus the amount under hold
// @Tags accounts
// @Produce  json
// @Param   owner path string true "Account name"
// @Param   symbol path string true "Symbol code"
// @Success 200 {object} dto.BalanceResponse
// @Failure 400 {object} map[string]string "Invalid name or symbol"
// @Failure 404 {object} map[string]string "Owner holds no such symbol"
// @Failure 500 {object} map[string]string "Failed to retrieve balance"
// @Router /accounts/{owner}/balances/{symbol} [get]
func (h *tokenHandler) getBalance(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	owner := c.Param("owner")

	balance, err := h.tokenService.GetBalance(c.Request.Context(), domain.Name(owner), c.Param("symbol"))
	if err != nil {
		respondError(c, logger, err, "Failed to retrieve balance")
		return
	}
	c.JSON(http.StatusOK, dto.BalanceResponse{Owner: owner, AssetResponse: dto.ToAssetResponse(*balance)})
}

// getAccount godoc
// @Summary Get balance row
// @Description Returns the raw balance row of owner in symbol, including the blocked amount and payer
// @Tags accounts
// @Produce  json
// @Param   owner path string true "Account name"
// @Param   symbol path string true "Symbol code"
// @Success 200 {object} dto.AccountResponse
// @Failure 400 {object} map[string]string "Invalid name or symbol"
// @Failure 404 {object} map[string]string "Owner holds no such symbol"
// @Failure 500 {object} map[string]string "Failed to retrieve account"
// @Router /accounts/{owner}/rows/{symbol} [get]
func (h *tokenHandler) getAccount(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	acc, err := h.tokenService.GetAccount(c.Request.Context(), domain.Name(c.Param("owner")), c.Param("symbol"))
	if err != nil {
		respondError(c, logger, err, "Failed to retrieve account")
		return
	}
	c.JSON(http.StatusOK, dto.ToAccountResponse(acc))
}
