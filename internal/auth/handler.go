package auth

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/TiaanDorfling/CampusLearn-HSLS-sub000/internal/dto"
	"github.com/TiaanDorfling/CampusLearn-HSLS-sub000/internal/middleware"
	"github.com/TiaanDorfling/CampusLearn-HSLS-sub000/pkg/response"
)

type Handler struct {
	service    *Service
	cookieName string
	secure     bool
}

// Register
// @Summary Register an account
// @Description Students register with a student domain email, tutors and admins with a staff domain email
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body RegisterRequest true "registration"
// @Success 201 {object} response.Response
// @Failure 400 {object} response.ErrorBody
// @Failure 409 {object} response.ErrorBody
// @Router /auth/register [post]
func (h *Handler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		dto.ValidationErrorResponse(c, err)
		return
	}

	u, err := h.service.Register(c.Request.Context(), req)
	if err != nil {
		dto.ErrorResponse(c, err)
		return
	}
	dto.CreatedResponse(c, u)
}

// Login
// @Summary Sign in
// @Description Sets an HttpOnly session cookie
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body LoginRequest true "credentials"
// @Success 200 {object} response.Response{data=LoginResponse}
// @Failure 401 {object} response.ErrorBody
// @Router /auth/login [post]
func (h *Handler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		dto.ValidationErrorResponse(c, err)
		return
	}

	result, err := h.service.Login(c.Request.Context(), req)
	if err != nil {
		dto.ErrorResponse(c, err)
		return
	}

	maxAge := int(h.service.issuer.TTL().Seconds())
	c.SetSameSite(http.SameSiteStrictMode)
	c.SetCookie(h.cookieName, result.Token, maxAge, "/", "", h.secure, true)

	dto.SuccessResponse(c, result.LoginResponse)
}

// Logout
// @Summary Sign out
// @Description Clears the session cookie. Issued tokens stay valid until they expire.
// @Tags Auth
// @Produce json
// @Success 200 {object} response.Response
// @Router /auth/logout [post]
func (h *Handler) Logout(c *gin.Context) {
	c.SetSameSite(http.SameSiteStrictMode)
	c.SetCookie(h.cookieName, "", -1, "/", "", h.secure, true)
	dto.SuccessResponse(c, gin.H{"logged_out": true})
}

// Me
// @Summary Current user
// @Tags Auth
// @Produce json
// @Success 200 {object} response.Response{data=MeResponse}
// @Failure 401 {object} response.ErrorBody
// @Router /auth/me [get]
func (h *Handler) Me(c *gin.Context) {
	userID, _, ok := middleware.CurrentUser(c)
	if !ok {
		dto.ErrorResponse(c, response.ErrUnauthorized("authentication required"))
		return
	}
	me, err := h.service.Me(c.Request.Context(), userID)
	if err != nil {
		dto.ErrorResponse(c, err)
		return
	}
	dto.SuccessResponse(c, me)
}
