package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/kunalPisolkar24/payflow/internal/domain/entity"
	coreport "github.com/kunalPisolkar24/payflow/internal/domain/port/core"
	"github.com/kunalPisolkar24/payflow/internal/domain/port/usecase"
	"github.com/kunalPisolkar24/payflow/internal/infrastructure/adapter/api/dto"
)

// AccountHandler handles sign-up, sign-in and user lookups
type AccountHandler struct {
	accounts usecase.AccountUseCase
	logger   coreport.Logger
}

// NewAccountHandler creates a new account handler instance
func NewAccountHandler(accounts usecase.AccountUseCase, logger coreport.Logger) *AccountHandler {
	return &AccountHandler{
		accounts: accounts,
		logger:   logger,
	}
}

// Register handles POST /api/register
func (h *AccountHandler) Register(c *gin.Context) {
	var req dto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	user, err := h.accounts.Register(c.Request.Context(), usecase.RegisterRequest{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusCreated, toUserResponse(user))
}

// Login handles POST /api/login
func (h *AccountHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	session, err := h.accounts.Authenticate(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, dto.LoginResponse{
		Token:     session.Token,
		ExpiresAt: session.ExpiresAt,
		User:      toUserResponse(session.User),
	})
}

// Me handles GET /api/users/me
func (h *AccountHandler) Me(c *gin.Context) {
	userID, ok := callerID(c, h.logger)
	if !ok {
		return
	}

	user, err := h.accounts.GetProfile(c.Request.Context(), userID)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, toUserResponse(user))
}

// ListRecipients handles GET /api/user
func (h *AccountHandler) ListRecipients(c *gin.Context) {
	userID, ok := callerID(c, h.logger)
	if !ok {
		return
	}

	users, err := h.accounts.ListRecipients(c.Request.Context(), userID)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	recipients := make([]dto.RecipientResponse, 0, len(users))
	for _, user := range users {
		recipients = append(recipients, dto.RecipientResponse{
			ID:    user.ID,
			Name:  user.Name,
			Email: user.Email,
		})
	}

	c.JSON(http.StatusOK, recipients)
}

func toUserResponse(user *entity.User) dto.UserResponse {
	return dto.UserResponse{
		ID:        user.ID,
		Name:      user.Name,
		Email:     user.Email,
		CreatedAt: user.CreatedAt,
	}
}
