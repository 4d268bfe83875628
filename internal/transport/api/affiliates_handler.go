package api

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
)

type AffiliatesHandler struct {
	svs AffiliateServicer
}

func NewAffiliatesHandler(svs AffiliateServicer) *AffiliatesHandler {
	return &AffiliatesHandler{
		svs: svs,
	}
}

type BalanceResponse struct {
	Balance       float64 `json:"balance"`
	TotalEarnings float64 `json:"totalEarnings"`
	TotalSales    int64   `json:"totalSales"`
}

// Balance GET RouteGroup + AffiliateBalanceRoute. Баланс и статистика текущего партнера.
func (h *AffiliatesHandler) Balance(c *gin.Context) {
	currentID := getActorIDFromContext(c)

	reqCtx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	affiliate, err := h.svs.FindByID(reqCtx, currentID)
	if err != nil {
		abortWithServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, &BalanceResponse{
		Balance:       affiliate.Balance.InexactFloat64(),
		TotalEarnings: affiliate.TotalEarnings.InexactFloat64(),
		TotalSales:    affiliate.TotalSales,
	})
}

// Index GET RouteGroup + AdminAffiliatesRoute. Все партнеры для админа.
func (h *AffiliatesHandler) Index(c *gin.Context) {
	reqCtx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	affiliates, err := h.svs.GetAll(reqCtx)
	if err != nil {
		_ = c.AbortWithError(http.StatusInternalServerError, err).SetType(gin.ErrorTypePrivate)
		return
	}

	response := make([]AffiliateResponse, len(affiliates))
	for i := range affiliates {
		response[i] = newAffiliateResponse(&affiliates[i])
	}
	c.JSON(http.StatusOK, response)
}

type SetAffiliateActiveParams struct {
	Active *bool `binding:"required" json:"active"`
}

// SetActive PUT RouteGroup + AdminAffiliateActiveRoute. Активация/деактивация партнера.
// Код деактивированного партнера перестает привязывать новые заказы.
func (h *AffiliatesHandler) SetActive(c *gin.Context) {
	id, ok := getIDParam(c)
	if !ok {
		return
	}

	var params SetAffiliateActiveParams
	if !bindJSON(c, &params) {
		return
	}

	reqCtx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	affiliate, err := h.svs.SetActive(reqCtx, id, *params.Active)
	if err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, newAffiliateResponse(affiliate))
}
