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

// escrowHandler handles HTTP requests related to holds and their settlement.
type escrowHandler struct {
	escrowService portssvc.EscrowSvcFacade
}

func newEscrowHandler(es portssvc.EscrowSvcFacade) *escrowHandler {
	return &escrowHandler{escrowService: es}
}

func registerEscrowRoutes(public, signed *gin.RouterGroup, h *escrowHandler) {
	claims := public.Group("/claims")
	{
		claims.GET("/:holder", h.listClaims)
		claims.GET("/:holder/:beneficiary/:symbol", h.getClaim)
	}
	public.GET("/accounts/:owner/escrow", h.auditHolder)

	signedClaims := signed.Group("/claims")
	{
		signedClaims.POST("/allow", h.allowClaim)
		signedClaims.POST("/settle", h.settleClaim)
	}
}

// allowClaim godoc
// @Summary Place or release a hold
// @Description A positive quantity blocks that much of from's balance for to; a negative quantity releases part of an existing hold. Must be signed by from and the exchange.
// @Tags claims
// @Accept  json
// @Produce  json
// @Param   claim body dto.AllowClaimRequest true "Holder, beneficiary and quantity"
// @Success 200 {object} dto.ClaimResponse "Outstanding claim after the change; quantity is zero once released"
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 403 {object} map[string]string "Missing required authority"
// @Failure 404 {object} map[string]string "No balance or claim found"
// @Failure 422 {object} map[string]string "Overdrawn balance or claim"
// @Failure 500 {object} map[string]string "Failed to change claim"
// @Security BearerAuth
// @Router /claims/allow [post]
func (h *escrowHandler) allowClaim(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.AllowClaimRequest
	if !bindJSON(c, logger, &req) {
		return
	}

	quantity, err := domain.ParseAsset(req.Quantity)
	if err != nil {
		respondError(c, logger, err, "Failed to change claim")
		return
	}

	claim, err := h.escrowService.AllowClaim(c.Request.Context(), domain.Name(req.From), domain.Name(req.To), quantity)
	if err != nil {
		respondError(c, logger, err, "Failed to change claim")
		return
	}

	logger.Info("Claim changed", slog.String("outstanding", claim.Quantity.String()))
	c.JSON(http.StatusOK, dto.ToClaimResponse(claim))
}

// settleClaim godoc
// @Summary Settle a hold
// @Description Moves quantity of an outstanding hold from the holder to the beneficiary. Must be signed by the beneficiary and the exchange.
// @Tags claims
// @Accept  json
// @Produce  json
// @Param   claim body dto.ClaimRequest true "Holder, beneficiary and quantity"
// @Success 200 {object} dto.AccountResponse "Beneficiary row after settlement"
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 403 {object} map[string]string "Missing required authority"
// @Failure 404 {object} map[string]string "No claim found"
// @Failure 422 {object} map[string]string "Overdrawn claim"
// @Failure 500 {object} map[string]string "Failed to settle claim"
// @Security BearerAuth
// @Router /claims/settle [post]
func (h *escrowHandler) settleClaim(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.ClaimRequest
	if !bindJSON(c, logger, &req) {
		return
	}

	quantity, err := domain.ParseAsset(req.Quantity)
	if err != nil {
		respondError(c, logger, err, "Failed to settle claim")
		return
	}

	row, err := h.escrowService.Claim(c.Request.Context(), domain.Name(req.From), domain.Name(req.To), quantity)
	if err != nil {
		respondError(c, logger, err, "Failed to settle claim")
		return
	}
	c.JSON(http.StatusOK, dto.ToAccountResponse(row))
}

// listClaims godoc
// @Summary List claims of a holder
// @Description Pages through the holds placed by holder, ordered by beneficiary and symbol
// @Tags claims
// @Produce  json
// @Param   holder path string true "Holder account name"
// @Param   limit query int false "Page size (default 20, max 100)"
// @Param   nextToken query string false "Token from the previous page"
// @Success 200 {object} dto.ListClaimsResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 500 {object} map[string]string "Failed to list claims"
// @Router /claims/{holder} [get]
func (h *escrowHandler) listClaims(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var params dto.ListClaimsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		logger.Warn("Failed to bind query parameters", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}

	page, err := h.escrowService.ListClaims(c.Request.Context(), domain.Name(c.Param("holder")), params.NextToken, params.Limit)
	if err != nil {
		respondError(c, logger, err, "Failed to list claims")
		return
	}
	c.JSON(http.StatusOK, dto.ToListClaimsResponse(page))
}

// getClaim godoc
// @Summary Get one claim
// @Description Returns the outstanding hold holder placed for beneficiary in symbol
// @Tags claims
// @Produce  json
// @Param   holder path string true "Holder account name"
// @Param   beneficiary path string true "Beneficiary account name"
// @Param   symbol path string true "Symbol code"
// @Success 200 {object} dto.ClaimResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 404 {object} map[string]string "No claim found"
// @Failure 500 {object} map[string]string "Failed to retrieve claim"
// @Router /claims/{holder}/{beneficiary}/{symbol} [get]
func (h *escrowHandler) getClaim(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	key := domain.ClaimKey{
		Holder:      domain.Name(c.Param("holder")),
		Beneficiary: domain.Name(c.Param("beneficiary")),
		Code:        c.Param("symbol"),
	}

	claim, err := h.escrowService.GetClaim(c.Request.Context(), key)
	if err != nil {
		respondError(c, logger, err, "Failed to retrieve claim")
		return
	}
	c.JSON(http.StatusOK, dto.ToClaimResponse(claim))
}

// auditHolder godoc
// @Summary Reconcile an owner's holds
// @Description Checks that the blocked amount of every balance row equals the claims the owner placed in that symbol
// @Tags claims
// @Produce  json
// @Param   owner path string true "Owner account name"
// @Success 200 {object} dto.HolderAuditResponse
// @Failure 400 {object} map[string]string "Invalid owner name"
// @Failure 422 {object} map[string]string "Holds and claims disagree"
// @Router /accounts/{owner}/escrow [get]
func (h *escrowHandler) auditHolder(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	audit, err := h.escrowService.AuditHolder(c.Request.Context(), domain.Name(c.Param("owner")))
	if err != nil {
		respondError(c, logger, err, "Failed to audit holds")
		return
	}
	c.JSON(http.StatusOK, dto.ToHolderAuditResponse(audit))
}
