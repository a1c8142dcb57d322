package handlers

import (
	"net/http"

	portssvc "github.com/SscSPs/advisor_client_app/internal/core/ports/services"
	"github.com/SscSPs/advisor_client_app/internal/dto"
	"github.com/SscSPs/advisor_client_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

// clientHandler handles HTTP requests addressed by client identifier.
type clientHandler struct {
	clientService portssvc.ClientSvc
}

func newClientHandler(cs portssvc.ClientSvc) *clientHandler {
	return &clientHandler{clientService: cs}
}

func registerClientRoutes(rg *gin.RouterGroup, clientService portssvc.ClientSvc) {
	h := newClientHandler(clientService)

	clients := rg.Group("/clients")
	{
		clients.GET("/:clientID", h.getClient)
		clients.DELETE("/:clientID", h.deleteClient)
	}
}

func clientIDParam(c *gin.Context) (string, bool) {
	clientID := c.Param("clientID")
	if !validClientID(clientID) {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid client ID"})
		return "", false
	}
	return clientID, true
}

// getClient godoc
// @Summary Get a client by client ID
// @Tags clients
// @Produce json
// @Param clientID path string true "Client ID"
// @Success 200 {object} dto.AdvisorInfo
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /clients/{clientID} [get]
func (h *clientHandler) getClient(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	clientID, ok := clientIDParam(c)
	if !ok {
		return
	}

	client, err := h.clientService.GetClientInfo(c.Request.Context(), clientID)
	if err != nil {
		respondError(c, logger, err, "Failed to get client")
		return
	}

	c.JSON(http.StatusOK, dto.ToClientLookupInfo(client))
}

// deleteClient godoc
// @Summary Delete a client
// @Description Soft-deletes the client with the given client ID.
// @Tags clients
// @Produce json
// @Param clientID path string true "Client ID"
// @Success 200 {object} dto.StatusResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /clients/{clientID} [delete]
func (h *clientHandler) deleteClient(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	clientID, ok := clientIDParam(c)
	if !ok {
		return
	}

	if err := h.clientService.DeleteUser(c.Request.Context(), clientID); err != nil {
		respondError(c, logger, err, "Failed to delete client")
		return
	}

	c.JSON(http.StatusOK, dto.StatusResponse{Message: "client deleted"})
}
