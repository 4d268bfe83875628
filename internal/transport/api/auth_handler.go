package api

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/fsdevblog/lodes-affiliate/internal/domain"
	"github.com/fsdevblog/lodes-affiliate/internal/service"
)

type AuthHandler struct {
	userService      UserServicer
	affiliateService AffiliateServicer
}

func NewAuthHandler(userService UserServicer, affiliateService AffiliateServicer) *AuthHandler {
	return &AuthHandler{
		userService:      userService,
		affiliateService: affiliateService,
	}
}

type AffiliateRegisterParams struct {
	Name     string `binding:"required,min=1,max=100"  json:"name"`
	Email    string `binding:"required,email,max=255"  json:"email"`
	Password string `binding:"required,min=6,max=255"  json:"password"`
	Phone    string `binding:"omitempty,max=30"        json:"phone"`
}

type AffiliateResponse struct {
	ID            int64     `json:"ID"`
	Name          string    `json:"name"`
	Email         string    `json:"email"`
	Phone         string    `json:"phone,omitempty"`
	Code          string    `json:"affiliateCode"`
	Active        bool      `json:"active"`
	Balance       float64   `json:"balance"`
	TotalEarnings float64   `json:"totalEarnings"`
	TotalSales    int64     `json:"totalSales"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

func newAffiliateResponse(a *domain.Affiliate) AffiliateResponse {
	return AffiliateResponse{
		ID:            a.ID,
		Name:          a.Name,
		Email:         a.Email,
		Phone:         a.Phone,
		Code:          a.Code,
		Active:        a.Active,
		Balance:       a.Balance.InexactFloat64(),
		TotalEarnings: a.TotalEarnings.InexactFloat64(),
		TotalSales:    a.TotalSales,
		CreatedAt:     a.CreatedAt,
		UpdatedAt:     a.UpdatedAt,
	}
}

// Register POST RouteGroup + AffiliateRegisterRoute. Регистрирует партнера,
// выдает ему реферальный код и аутентифицирует его.
func (h *AuthHandler) Register(c *gin.Context) {
	var params AffiliateRegisterParams
	if !bindJSON(c, &params) {
		return
	}

	ctx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	affiliate, jwtToken, createErr := h.affiliateService.Register(ctx, service.RegisterAffiliateArgs{
		Name:     params.Name,
		Email:    params.Email,
		Password: params.Password,
		Phone:    params.Phone,
	})
	if createErr != nil {
		if errors.Is(createErr, domain.ErrDuplicateKey) {
			_ = c.AbortWithError(http.StatusConflict, errors.New("affiliate with this email already exists")).
				SetType(gin.ErrorTypePublic)
			return
		}
		_ = c.AbortWithError(http.StatusInternalServerError, createErr).
			SetType(gin.ErrorTypePrivate)
		return
	}

	c.Header("Authorization", "Bearer "+jwtToken)
	c.JSON(http.StatusCreated, gin.H{"affiliate": newAffiliateResponse(affiliate)})
}

type LoginParams struct {
	Email    string `binding:"required,email,max=255" json:"email"`
	Password string `binding:"required,min=6,max=255" json:"password"`
}

// Login POST RouteGroup + AffiliateLoginRoute. Аутентификация партнера по паре email/пароль.
func (h *AuthHandler) Login(c *gin.Context) {
	var params LoginParams
	if bindErr := c.ShouldBindJSON(&params); bindErr != nil {
		_ = c.AbortWithError(http.StatusBadRequest, bindErr).
			SetType(gin.ErrorTypeBind)
		return
	}

	ctx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	affiliate, token, err := h.affiliateService.Login(ctx, params.Email, params.Password)
	if err != nil {
		if errors.Is(err, domain.ErrRecordNotFound) || errors.Is(err, domain.ErrPasswordMissMatch) {
			_ = c.Error(err)
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid credentials"})
			return
		}
		_ = c.AbortWithError(http.StatusInternalServerError, err).SetType(gin.ErrorTypePublic)
		return
	}
	c.Header("Authorization", "Bearer "+token)

	c.JSON(http.StatusOK, gin.H{"affiliate": newAffiliateResponse(affiliate)})
}

type AdminResponse struct {
	ID        int64           `json:"ID"`
	Email     string          `json:"email"`
	Role      domain.RoleType `json:"role"`
	CreatedAt time.Time       `json:"createdAt"`
}

// AdminLogin POST RouteGroup + AdminLoginRoute.
func (h *AuthHandler) AdminLogin(c *gin.Context) {
	var params LoginParams
	if bindErr := c.ShouldBindJSON(&params); bindErr != nil {
		_ = c.AbortWithError(http.StatusBadRequest, bindErr).
			SetType(gin.ErrorTypeBind)
		return
	}

	ctx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	user, token, err := h.userService.Login(ctx, params.Email, params.Password)
	if err != nil {
		if errors.Is(err, domain.ErrRecordNotFound) || errors.Is(err, domain.ErrPasswordMissMatch) {
			_ = c.Error(err)
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid credentials"})
			return
		}
		_ = c.AbortWithError(http.StatusInternalServerError, err).SetType(gin.ErrorTypePublic)
		return
	}
	c.Header("Authorization", "Bearer "+token)

	c.JSON(http.StatusOK, gin.H{"user": AdminResponse{
		ID:        user.ID,
		Email:     user.Email,
		Role:      user.Role,
		CreatedAt: user.CreatedAt,
	}})
}
