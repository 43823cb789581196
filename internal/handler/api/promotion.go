package api

import (
	"net/http"
	"strconv"

	reqdto "spigot-link/internal/handler/dto/request"
	resdto "spigot-link/internal/handler/dto/response"
	"spigot-link/internal/handler/httperr"
	"spigot-link/internal/pkg/errs"
	"spigot-link/internal/usecase/commands"

	"github.com/gin-gonic/gin"
)

type PromotionHandler struct {
	promotions commands.PromotionCommands
}

func NewPromotionHandler(promotions commands.PromotionCommands) *PromotionHandler {
	return &PromotionHandler{promotions: promotions}
}

// Start begins a verification flow for a Discord user claiming a marketplace
// account. Already-linked users get a role re-sync instead of a new flow.
func (h *PromotionHandler) Start(c *gin.Context) {
	var req reqdto.StartPromotionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	userID, err := parseDiscordID(req.DiscordID)
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid discord id", nil)
		return
	}

	result, err := h.promotions.Start(c.Request.Context(), userID, req.SpigotName)
	if err != nil {
		switch {
		case errs.Is(err, commands.ErrAlreadyLinked):
			httperr.AbortWithError(c, http.StatusConflict, err,
				"This marketplace account is already linked to a Discord account", nil)
		case errs.Is(err, commands.ErrIdentityReserved):
			httperr.AbortWithError(c, http.StatusConflict, err,
				"Another promotion for this marketplace account is in progress", nil)
		case errs.Is(err, commands.ErrCodeCooldown):
			httperr.AbortWithError(c, http.StatusTooManyRequests, err,
				"A promotion code was already issued, check your inbox", nil)
		case errs.Is(err, commands.ErrNoPurchase):
			httperr.AbortWithError(c, http.StatusNotFound, err,
				"No purchase found for this marketplace account", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err,
				"Failed to start promotion", nil)
		}
		return
	}

	c.JSON(http.StatusOK, resdto.NewStartPromotionResponse(result))
}

// Confirm presents a received confirmation artifact. The issued code is
// invalidated on first presentation regardless of the outcome.
func (h *PromotionHandler) Confirm(c *gin.Context) {
	var req reqdto.ConfirmPromotionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	userID, err := parseDiscordID(req.DiscordID)
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid discord id", nil)
		return
	}

	result, err := h.promotions.Confirm(c.Request.Context(), userID, req.Text)
	if err != nil {
		switch {
		case errs.Is(err, commands.ErrNoActivePromo):
			httperr.AbortWithError(c, http.StatusNotFound, err,
				"No active promotion for this user", nil)
		case errs.Is(err, commands.ErrAlreadyLinked):
			httperr.AbortWithError(c, http.StatusConflict, err,
				"This marketplace account was linked to another Discord account", nil)
		case errs.Is(err, commands.ErrInvalidCode):
			httperr.AbortWithError(c, http.StatusUnprocessableEntity, err,
				"Promotion code mismatch, restart the promotion", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err,
				"Failed to confirm promotion", nil)
		}
		return
	}

	c.JSON(http.StatusOK, resdto.NewConfirmPromotionResponse(result))
}

// Cancel invalidates a user's in-flight promotion (admin only).
func (h *PromotionHandler) Cancel(c *gin.Context) {
	userID, err := parseDiscordID(c.Param("discord_id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid discord id", nil)
		return
	}

	if err := h.promotions.Cancel(c.Request.Context(), userID); err != nil {
		if errs.Is(err, commands.ErrNoActivePromo) {
			httperr.AbortWithError(c, http.StatusNotFound, err,
				"No active promotion for this user", nil)
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err,
			"Failed to cancel promotion", nil)
		return
	}

	c.Status(http.StatusNoContent)
}

func parseDiscordID(raw string) (int64, error) {
	return strconv.ParseInt(raw, 10, 64)
}
