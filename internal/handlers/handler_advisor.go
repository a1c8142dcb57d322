package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/advisor_client_app/internal/core/ports/services"
	"github.com/SscSPs/advisor_client_app/internal/dto"
	"github.com/SscSPs/advisor_client_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

// advisorHandler handles HTTP requests related to advisors and their clients.
type advisorHandler struct {
	advisorService portssvc.AdvisorSvcFacade
}

func newAdvisorHandler(as portssvc.AdvisorSvcFacade) *advisorHandler {
	return &advisorHandler{advisorService: as}
}

// registerAdvisorRoutes registers all advisor-related routes.
func registerAdvisorRoutes(rg *gin.RouterGroup, advisorService portssvc.AdvisorSvcFacade) {
	h := newAdvisorHandler(advisorService)

	advisors := rg.Group("/advisors")
	{
		advisors.POST("/password-reset-token", h.requestResetToken)
		advisors.GET("", h.listAdvisors)
		advisors.GET("/:email", h.getAdvisor)
		advisors.PUT("/:email", h.updateAdvisor) // Own profile only
		advisors.GET("/:email/clients", h.listClients)
		advisors.POST("/:email/clients", h.addClient) // Own client book only
	}
}

// emailParam reads and validates the :email path parameter, writing a 400 when invalid.
func emailParam(c *gin.Context) (string, bool) {
	email := c.Param("email")
	if !validEmail(email) {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid email"})
		return "", false
	}
	return email, true
}

// ownEmailParam additionally requires the path email to be the caller's own.
func ownEmailParam(c *gin.Context, logger *slog.Logger) (string, bool) {
	email, ok := emailParam(c)
	if !ok {
		return "", false
	}

	caller, ok := middleware.GetAdvisorEmailFromContext(c)
	if !ok {
		logger.Error("Advisor email not found in context")
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return "", false
	}
	if caller != email {
		logger.Warn("Advisor forbidden to modify another advisor", slog.String("target_email", email))
		c.JSON(http.StatusForbidden, ErrorResponse{Error: "Forbidden"})
		return "", false
	}
	return email, true
}

// requestResetToken godoc
// @Summary Issue a password reset token
// @Description Issues a reset token for the logged-in advisor and returns it.
// @Tags advisors
// @Produce json
// @Success 200 {object} dto.ResetTokenResponse
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /advisors/password-reset-token [post]
func (h *advisorHandler) requestResetToken(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	email, ok := middleware.GetAdvisorEmailFromContext(c)
	if !ok {
		logger.Error("Advisor email not found in context")
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	token, err := h.advisorService.RequestPasswordReset(c.Request.Context(), email)
	if err != nil {
		respondError(c, logger, err, "Failed to issue reset token")
		return
	}

	c.JSON(http.StatusOK, dto.ResetTokenResponse{Token: token})
}

// listAdvisors godoc
// @Summary List advisors
// @Description Lists every advisor that has not been deleted.
// @Tags advisors
// @Produce json
// @Success 200 {object} dto.ListAdvisorsResponse
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /advisors [get]
func (h *advisorHandler) listAdvisors(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	advisors, err := h.advisorService.GetAllAdvisors(c.Request.Context())
	if err != nil {
		respondError(c, logger, err, "Failed to list advisors")
		return
	}

	c.JSON(http.StatusOK, dto.ToListAdvisorsResponse(advisors))
}

// getAdvisor godoc
// @Summary Get an advisor by email
// @Tags advisors
// @Produce json
// @Param email path string true "Advisor email"
// @Success 200 {object} dto.AdvisorInfo
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /advisors/{email} [get]
func (h *advisorHandler) getAdvisor(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	email, ok := emailParam(c)
	if !ok {
		return
	}

	advisor, err := h.advisorService.GetAdvisorInfo(c.Request.Context(), email)
	if err != nil {
		respondError(c, logger, err, "Failed to get advisor")
		return
	}

	c.JSON(http.StatusOK, dto.ToAdvisorInfo(advisor))
}

// updateAdvisor godoc
// @Summary Update an advisor profile
// @Description Overwrites the profile fields of the logged-in advisor.
// @Tags advisors
// @Accept json
// @Produce json
// @Param email path string true "Advisor email"
// @Param profile body dto.UpdateAdvisorRequest true "Profile fields"
// @Success 200 {object} dto.StatusResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /advisors/{email} [put]
func (h *advisorHandler) updateAdvisor(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	email, ok := ownEmailParam(c, logger)
	if !ok {
		return
	}

	var req dto.UpdateAdvisorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body: " + err.Error()})
		return
	}

	if _, err := h.advisorService.UpdateAdvisor(c.Request.Context(), email, req); err != nil {
		respondError(c, logger, err, "Failed to update advisor")
		return
	}

	c.JSON(http.StatusOK, dto.StatusResponse{Message: "advisor updated"})
}

// listClients godoc
// @Summary List an advisor's clients
// @Tags advisors
// @Produce json
// @Param email path string true "Advisor email"
// @Success 200 {object} dto.ListClientsResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /advisors/{email}/clients [get]
func (h *advisorHandler) listClients(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	email, ok := emailParam(c)
	if !ok {
		return
	}

	clients, err := h.advisorService.GetAllClientsForAdvisor(c.Request.Context(), email)
	if err != nil {
		respondError(c, logger, err, "Failed to list clients")
		return
	}

	c.JSON(http.StatusOK, dto.ToListClientsResponse(clients))
}

// addClient godoc
// @Summary Add a client
// @Description Creates a client and links it to the logged-in advisor.
// @Tags advisors
// @Accept json
// @Produce json
// @Param email path string true "Advisor email"
// @Param client body dto.CreateClientRequest true "Client details"
// @Success 201 {object} dto.ClientInfo
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /advisors/{email}/clients [post]
func (h *advisorHandler) addClient(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	email, ok := ownEmailParam(c, logger)
	if !ok {
		return
	}

	var req dto.CreateClientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body: " + err.Error()})
		return
	}

	client, err := h.advisorService.AddClient(c.Request.Context(), email, req)
	if err != nil {
		respondError(c, logger, err, "Failed to add client")
		return
	}

	c.JSON(http.StatusCreated, dto.ToClientInfo(client))
}
