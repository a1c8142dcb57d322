package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/advisor_client_app/internal/core/ports/services"
	"github.com/SscSPs/advisor_client_app/internal/dto"
	"github.com/SscSPs/advisor_client_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

// authHandler handles the public account endpoints.
type authHandler struct {
	advisorService portssvc.AdvisorSvcFacade
}

func newAuthHandler(as portssvc.AdvisorSvcFacade) *authHandler {
	return &authHandler{advisorService: as}
}

// register godoc
// @Summary Register new advisor
// @Description Creates a new advisor account.
// @Tags auth
// @Accept json
// @Produce json
// @Param register body dto.AdvisorRegisterRequest true "Advisor Registration Info"
// @Success 201 {object} dto.StatusResponse
// @Failure 400 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse "Email already exists"
// @Failure 500 {object} ErrorResponse
// @Router /auth/register [post]
func (h *authHandler) register(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.AdvisorRegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body: " + err.Error()})
		return
	}

	if _, err := h.advisorService.CreateAdvisor(c.Request.Context(), req); err != nil {
		respondError(c, logger, err, "Failed to register advisor")
		return
	}

	c.JSON(http.StatusCreated, dto.StatusResponse{Message: "advisor registered"})
}

// login godoc
// @Summary Advisor login
// @Description Authenticates an advisor and returns a session token.
// @Tags auth
// @Accept json
// @Produce json
// @Param login body dto.LoginRequest true "Login Credentials"
// @Success 200 {object} dto.LoginResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 429 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /auth/login [post]
func (h *authHandler) login(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body"})
		return
	}

	token, err := h.advisorService.LoginAdvisor(c.Request.Context(), req)
	if err != nil {
		respondError(c, logger, err, "Login failed")
		return
	}

	c.JSON(http.StatusOK, dto.LoginResponse{Token: token})
}

// forgotPassword godoc
// @Summary Request a password reset email
// @Description Issues a reset token and emails it to the advisor.
// @Tags auth
// @Accept json
// @Produce json
// @Param request body dto.ForgotPasswordRequest true "Account email"
// @Success 200 {object} dto.StatusResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /auth/forgot-password [post]
func (h *authHandler) forgotPassword(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.ForgotPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body: " + err.Error()})
		return
	}

	if _, err := h.advisorService.ForgotPassword(c.Request.Context(), req); err != nil {
		respondError(c, logger, err, "Failed to issue reset token")
		return
	}

	logger.Info("Password reset token issued", slog.String("email", req.Email))
	c.JSON(http.StatusOK, dto.StatusResponse{Message: "password reset token sent"})
}

// resetPassword godoc
// @Summary Reset password with a token
// @Description Replaces the password when the reset token is valid.
// @Tags auth
// @Accept json
// @Produce json
// @Param request body dto.PasswordResetRequest true "Email, token and new password"
// @Success 200 {object} dto.StatusResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse "Token mismatch"
// @Failure 404 {object} ErrorResponse
// @Failure 410 {object} ErrorResponse "Token expired"
// @Failure 500 {object} ErrorResponse
// @Router /auth/reset-password [post]
func (h *authHandler) resetPassword(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.PasswordResetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body: " + err.Error()})
		return
	}

	if err := h.advisorService.ResetPassword(c.Request.Context(), req); err != nil {
		respondError(c, logger, err, "Password reset failed")
		return
	}

	c.JSON(http.StatusOK, dto.StatusResponse{Message: "password updated"})
}
