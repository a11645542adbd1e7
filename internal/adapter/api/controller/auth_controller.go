package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/shah-dhwanil/gaatha-salesforce-sub000/internal/adapter/api/dto"
	memberdomain "github.com/shah-dhwanil/gaatha-salesforce-sub000/internal/domain/member"
	"github.com/shah-dhwanil/gaatha-salesforce-sub000/pkg/auth"
	"github.com/shah-dhwanil/gaatha-salesforce-sub000/pkg/logger"
)

// AuthController handles member registration and login
type AuthController struct {
	memberRepo memberdomain.Repository
	jwtService *auth.JWTService
	logger     logger.Logger
}

// NewAuthController creates a new AuthController
func NewAuthController(memberRepo memberdomain.Repository, jwtService *auth.JWTService, logger logger.Logger) *AuthController {
	return &AuthController{
		memberRepo: memberRepo,
		jwtService: jwtService,
		logger:     logger,
	}
}

// Register creates a member account
// @Summary Register member
// @Tags auth
// @Accept json
// @Produce json
// @Param member body dto.RegisterRequest true "Registration payload"
// @Success 201 {object} dto.Envelope{data=dto.MemberResponse}
// @Failure 400 {object} dto.ErrorResponse
// @Failure 409 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /auth/register [post]
func (c *AuthController) Register(ctx *gin.Context) {
	var req dto.RegisterRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		respondBindError(ctx, err)
		return
	}

	m, err := memberdomain.NewMember(req.Name, req.Email, req.Password, req.Phone)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(err.Error()))
		return
	}

	if err := c.memberRepo.Create(ctx.Request.Context(), m); err != nil {
		respondError(ctx, c.logger, "auth.register", err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewEnvelope(http.StatusCreated, dto.ToMemberResponse(m)))
}

// Login verifies credentials and issues a token
// @Summary Login
// @Tags auth
// @Accept json
// @Produce json
// @Param credentials body dto.LoginRequest true "Credentials"
// @Success 200 {object} dto.Envelope{data=dto.TokenResponse}
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /auth/login [post]
func (c *AuthController) Login(ctx *gin.Context) {
	var req dto.LoginRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		respondBindError(ctx, err)
		return
	}

	m, err := c.memberRepo.FindByEmail(ctx.Request.Context(), req.Email)
	if err != nil {
		// A missing account and a wrong password are indistinguishable to the
		// caller.
		c.logger.Info("auth.login", "email", req.Email, "detail", err.Error())
		ctx.JSON(http.StatusUnauthorized, dto.NewErrorResponse("invalid credentials"))
		return
	}

	if err := m.CheckPassword(req.Password); err != nil {
		if errors.Is(err, memberdomain.ErrInvalidPassword) {
			ctx.JSON(http.StatusUnauthorized, dto.NewErrorResponse("invalid credentials"))
			return
		}
		respondError(ctx, c.logger, "auth.login", err)
		return
	}

	token, err := c.jwtService.GenerateToken(m)
	if err != nil {
		respondError(ctx, c.logger, "auth.login", err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewEnvelope(http.StatusOK, dto.TokenResponse{
		Token:  token,
		Member: dto.ToMemberResponse(m),
	}))
}

// Refresh reissues a token with a fresh expiry
// @Summary Refresh token
// @Tags auth
// @Accept json
// @Produce json
// @Param token body dto.RefreshRequest true "Token to refresh"
// @Success 200 {object} dto.Envelope{data=dto.TokenResponse}
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /auth/refresh [post]
func (c *AuthController) Refresh(ctx *gin.Context) {
	var req dto.RefreshRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		respondBindError(ctx, err)
		return
	}

	token, err := c.jwtService.RefreshToken(req.Token)
	if err != nil {
		ctx.JSON(http.StatusUnauthorized, dto.NewErrorResponse("invalid token"))
		return
	}

	claims, err := c.jwtService.ValidateToken(token)
	if err != nil {
		respondError(ctx, c.logger, "auth.refresh", err)
		return
	}

	m, err := c.memberRepo.FindByID(ctx.Request.Context(), claims.MemberID)
	if err != nil {
		respondError(ctx, c.logger, "auth.refresh", err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewEnvelope(http.StatusOK, dto.TokenResponse{
		Token:  token,
		Member: dto.ToMemberResponse(m),
	}))
}

// Me returns the authenticated member
// @Summary Current member
// @Tags auth
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Success 200 {object} dto.Envelope{data=dto.MemberResponse}
// @Failure 401 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /auth/me [get]
func (c *AuthController) Me(ctx *gin.Context) {
	m, err := c.memberRepo.FindByID(ctx.Request.Context(), auth.MemberID(ctx))
	if err != nil {
		respondError(ctx, c.logger, "auth.me", err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewEnvelope(http.StatusOK, dto.ToMemberResponse(m)))
}
