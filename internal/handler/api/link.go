package api

import (
	"net/http"

	resdto "spigot-link/internal/handler/dto/response"
	"spigot-link/internal/handler/httperr"
	"spigot-link/internal/infra"
	"spigot-link/internal/pkg/errs"
	"spigot-link/internal/usecase/commands"
	"spigot-link/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type LinkHandler struct {
	links queries.LinkQueries
	admin commands.AdminCommands
}

func NewLinkHandler(links queries.LinkQueries, admin commands.AdminCommands) *LinkHandler {
	return &LinkHandler{links: links, admin: admin}
}

func (h *LinkHandler) List(c *gin.Context) {
	views, err := h.links.List(c.Request.Context())
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to list links", nil)
		return
	}
	c.JSON(http.StatusOK, gin.H{"links": views})
}

func (h *LinkHandler) Get(c *gin.Context) {
	userID, err := parseDiscordID(c.Param("discord_id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid discord id", nil)
		return
	}

	view, err := h.links.ByUser(c.Request.Context(), userID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			httperr.AbortWithError(c, http.StatusNotFound, err, "Link not found", nil)
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to find link", nil)
		return
	}
	c.JSON(http.StatusOK, view)
}

// Unlink removes a user's marketplace link and strips their managed roles
// (admin only).
func (h *LinkHandler) Unlink(c *gin.Context) {
	userID, err := parseDiscordID(c.Param("discord_id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid discord id", nil)
		return
	}

	changed, err := h.admin.Unlink(c.Request.Context(), userID)
	if err != nil {
		if errs.Is(err, commands.ErrLinkNotFound) {
			httperr.AbortWithError(c, http.StatusNotFound, err,
				"This Discord user is not linked to a marketplace account", nil)
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to unlink", nil)
		return
	}

	c.JSON(http.StatusOK, resdto.UnlinkResponse{RolesChanged: changed})
}
