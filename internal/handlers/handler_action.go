package handlers

import (
	"fmt"

	"github.com/SscSPs/loyalty_token_ledger/internal/core/domain"
	"github.com/SscSPs/loyalty_token_ledger/internal/middleware"
	"github.com/gin-gonic/gin"
)

// actionHandler dispatches POST /actions/:name to the handler of a ledger action.
type actionHandler struct {
	routes map[domain.Action]gin.HandlerFunc
}

// newActionHandler binds every entry of domain.Actions to its handler.
// It panics when an action has no handler, so a new action cannot ship unrouted.
func newActionHandler(token *tokenHandler, escrow *escrowHandler, admin *adminHandler) *actionHandler {
	routes := map[domain.Action]gin.HandlerFunc{
		domain.ActionCreate:     token.createToken,
		domain.ActionIssue:      token.issue,
		domain.ActionBurn:       token.burn,
		domain.ActionAllowClaim: escrow.allowClaim,
		domain.ActionClaim:      escrow.settleClaim,
		domain.ActionCleanState: admin.cleanState,
		domain.ActionSweepState: admin.sweepState,
	}
	for _, a := range domain.Actions {
		if _, ok := routes[a]; !ok {
			panic(fmt.Sprintf("no handler for action %q", a))
		}
	}
	return &actionHandler{routes: routes}
}

func registerActionRoutes(signed *gin.RouterGroup, h *actionHandler) {
	signed.POST("/actions/:name", h.dispatch)
}

// dispatch godoc
// @Summary Apply a ledger action by name
// @Description Accepts the body of the named action: create, issue, burn, allowclaim, claim, cleanstate or sweepstate.
// @Tags actions
// @Accept  json
// @Produce  json
// @Param   name path string true "Action name"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} map[string]string "Unknown action or invalid input"
// @Failure 403 {object} map[string]string "Missing required authority"
// @Security BearerAuth
// @Router /actions/{name} [post]
func (h *actionHandler) dispatch(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	action, err := domain.ParseAction(c.Param("name"))
	if err != nil {
		respondError(c, logger, err, "Failed to dispatch action")
		return
	}
	h.routes[action](c)
}
