package handlers

import (
	"net/http"

	"github.com/SscSPs/loyalty_token_ledger/internal/core/domain"
	portssvc "github.com/SscSPs/loyalty_token_ledger/internal/core/ports/services"
	"github.com/SscSPs/loyalty_token_ledger/internal/dto"
	"github.com/SscSPs/loyalty_token_ledger/internal/middleware"
	"github.com/gin-gonic/gin"
)

type adminHandler struct {
	adminService portssvc.AdminSvc
}

func newAdminHandler(as portssvc.AdminSvc) *adminHandler {
	return &adminHandler{adminService: as}
}

func registerAdminRoutes(public, signed *gin.RouterGroup, h *adminHandler) {
	public.GET("/version", h.getVersion)

	admin := signed.Group("/admin")
	{
		admin.POST("/cleanstate", h.cleanState)
		admin.POST("/sweep", h.sweepState)
	}
}

// cleanState godoc
// @Summary Drop the version record
// @Description Removes the ledger-wide version record when the unit of work ends. Token tables are untouched. Must be signed by the ledger administrator.
// @Tags admin
// @Produce  json
// @Success 200 {object} dto.ActionResponse
// @Failure 403 {object} map[string]string "Missing required authority"
// @Failure 500 {object} map[string]string "Failed to clean state"
// @Security BearerAuth
// @Router /admin/cleanstate [post]
func (h *adminHandler) cleanState(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	if err := h.adminService.CleanState(c.Request.Context()); err != nil {
		respondError(c, logger, err, "Failed to clean state")
		return
	}
	c.JSON(http.StatusOK, dto.ActionResponse{Action: string(domain.ActionCleanState), Status: "applied"})
}

// sweepState godoc
// @Summary Wipe ledger rows
// @Description Deletes the stats of the listed symbols, the whole symbol registry, and every balance row and claim of the listed owners. Must be signed by the ledger administrator.
// @Tags admin
// @Accept  json
// @Produce  json
// @Param   sweep body dto.SweepStateRequest true "Symbols and owners to wipe"
// @Success 200 {object} dto.SweepReportResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 403 {object} map[string]string "Missing required authority"
// @Failure 500 {object} map[string]string "Failed to sweep state"
// @Security BearerAuth
// @Router /admin/sweep [post]
func (h *adminHandler) sweepState(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.SweepStateRequest
	if !bindJSON(c, logger, &req) {
		return
	}

	report, err := h.adminService.SweepState(c.Request.Context(), req.Symbols, req.OwnerNames())
	if err != nil {
		respondError(c, logger, err, "Failed to sweep state")
		return
	}
	c.JSON(http.StatusOK, dto.ToSweepReportResponse(report))
}

// getVersion godoc
// @Summary Get the version record
// @Tags admin
// @Produce  json
// @Success 200 {object} dto.VersionResponse
// @Failure 500 {object} map[string]string "Failed to retrieve version"
// @Router /version [get]
func (h *adminHandler) getVersion(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	v, err := h.adminService.GetVersion(c.Request.Context())
	if err != nil {
		respondError(c, logger, err, "Failed to retrieve version")
		return
	}
	c.JSON(http.StatusOK, dto.ToVersionResponse(v))
}
