package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	authUC "github.com/khanhduong/smartresume/internal/application/usecase/auth"
	"github.com/khanhduong/smartresume/pkg/apperror"
)

type AuthHandler struct {
	registerUseCase *authUC.RegisterUseCase
	loginUseCase    *authUC.LoginUseCase
	refreshUseCase  *authUC.RefreshUseCase
	meUseCase       *authUC.MeUseCase
}

func NewAuthHandler(registerUC *authUC.RegisterUseCase, loginUC *authUC.LoginUseCase, refreshUC *authUC.RefreshUseCase, meUC *authUC.MeUseCase) *AuthHandler {
	return &AuthHandler{
		registerUseCase: registerUC,
		loginUseCase:    loginUC,
		refreshUseCase:  refreshUC,
		meUseCase:       meUC,
	}
}

func (h *AuthHandler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.NewInvalidInput("invalid request data", err))
		return
	}

	u, err := h.registerUseCase.Execute(c.Request.Context(), authUC.RegisterInput{
		Username:  req.Username,
		Email:     req.Email,
		Password:  req.Password,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Bio:       req.Bio,
	})
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusCreated, ToUserDTO(u))
}

type tokenRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

func (h *AuthHandler) Token(c *gin.Context) {
	var req tokenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.NewInvalidInput("invalid request data", err))
		return
	}

	pair, err := h.loginUseCase.Execute(c.Request.Context(), authUC.LoginInput{
		Username: req.Username,
		Password: req.Password,
	})
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, pair)
}

type refreshRequest struct {
	Refresh string `json:"refresh" binding:"required"`
}

func (h *AuthHandler) Refresh(c *gin.Context) {
	var req refreshRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.NewInvalidInput("invalid request data", err))
		return
	}

	pair, err := h.refreshUseCase.Execute(c.Request.Context(), req.Refresh)
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, pair)
}

func (h *AuthHandler) Me(c *gin.Context) {
	userID, ok := GetUserIDFromGinContext(c)
	if !ok {
		c.Error(apperror.NewUnauthorized("user not found in context", nil))
		return
	}

	u, err := h.meUseCase.Execute(c.Request.Context(), userID)
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, ToUserDTO(u))
}
