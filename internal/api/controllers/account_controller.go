package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/usamabinnadeem-10/realtime-feedback/internal/models/request_models"
	"github.com/usamabinnadeem-10/realtime-feedback/internal/models/response_models"
	"github.com/usamabinnadeem-10/realtime-feedback/internal/services"
	"github.com/usamabinnadeem-10/realtime-feedback/pkg/middleware"
	"github.com/usamabinnadeem-10/realtime-feedback/pkg/utils"
)

const sessionCookieMaxAge = 24 * 60 * 60

type AccountController struct {
	accountService services.AccountServiceInterface
}

func NewAccountController(accountService services.AccountServiceInterface) *AccountController {
	return &AccountController{
		accountService: accountService,
	}
}

// Register godoc
// @Summary Register a new account
// @Description Create a new user account
// @Tags Accounts
// @Accept json
// @Produce json
// @Param request body request_models.SignUpRequest true "Account registration payload"
// @Success 200 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Router /api/accounts/register [post]
func (a *AccountController) Register(c *gin.Context) {
	var req request_models.SignUpRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := a.accountService.CreateAccount(c.Request.Context(), req); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Account created successfully")
}

// Login godoc
// @Summary Login to an account
// @Description Authenticate a user, set the session cookie and return a token
// @Tags Accounts
// @Accept json
// @Produce json
// @Param request body request_models.LoginRequest true "Login payload"
// @Success 200 {object} utils.APIResponse
// @Failure 401 {object} utils.APIResponse
// @Router /api/accounts/login [post]
func (a *AccountController) Login(c *gin.Context) {
	var req request_models.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	token, account, err := a.accountService.Login(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	c.SetCookie(middleware.SessionCookie, token, sessionCookieMaxAge, "/", "", false, true)

	utils.RespondSuccess(c, response_models.AccountLoginResponse{
		Token: token,
		ID:    account.ID.String(),
		Email: account.Email,
	}, "Login successful")
}

// Logout godoc
// @Summary Logout
// @Description Revoke the current session token and clear the session cookie
// @Tags Accounts
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Router /api/accounts/logout [post]
func (a *AccountController) Logout(c *gin.Context) {
	if token := middleware.TokenFromRequest(c); token != "" {
		a.accountService.Logout(token)
	}

	c.SetCookie(middleware.SessionCookie, "", -1, "/", "", false, true)
	utils.RespondSuccess(c, nil, "Logged out")
}
