package api

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/fsdevblog/lodes-affiliate/internal/domain"
	"github.com/fsdevblog/lodes-affiliate/internal/service"
)

type SalesHandler struct {
	saleSvs    SaleServicer
	productSvs ProductServicer
}

func NewSalesHandler(saleSvs SaleServicer, productSvs ProductServicer) *SalesHandler {
	return &SalesHandler{
		saleSvs:    saleSvs,
		productSvs: productSvs,
	}
}

type SaleResponse struct {
	ID                int64                 `json:"ID"`
	OrderCode         string                `json:"orderCode"`
	AffiliateID       *int64                `json:"affiliateId,omitempty"`
	AffiliateCode     string                `json:"affiliateCode,omitempty"`
	ProductID         int64                 `json:"productId"`
	ProductName       string                `json:"productName"`
	CustomerName      string                `json:"customerName"`
	CustomerPhone     string                `json:"customerPhone,omitempty"`
	CustomerAddress   string                `json:"customerAddress,omitempty"`
	Quantity          int32                 `json:"quantity"`
	Price             float64               `json:"price"`
	Amount            float64               `json:"amount"`
	CommissionPercent float64               `json:"commissionPercent"`
	Commission        float64               `json:"commission"`
	Status            domain.SaleStatusType `json:"status"`
	CreatedAt         time.Time             `json:"createdAt"`
	UpdatedAt         time.Time             `json:"updatedAt"`
}

func newSaleResponse(s domain.Sale) SaleResponse {
	return SaleResponse{
		ID:                s.ID,
		OrderCode:         s.OrderCode,
		AffiliateID:       s.AffiliateID,
		AffiliateCode:     s.AffiliateCode,
		ProductID:         s.ProductID,
		ProductName:       s.ProductName,
		CustomerName:      s.CustomerName,
		CustomerPhone:     s.CustomerPhone,
		CustomerAddress:   s.CustomerAddress,
		Quantity:          s.Quantity,
		Price:             s.Price.InexactFloat64(),
		Amount:            s.Amount.InexactFloat64(),
		CommissionPercent: s.CommissionPercent.InexactFloat64(),
		Commission:        s.Commission.InexactFloat64(),
		Status:            s.Status,
		CreatedAt:         s.CreatedAt,
		UpdatedAt:         s.UpdatedAt,
	}
}

func salesResponse(sales []domain.Sale) []SaleResponse {
	response := make([]SaleResponse, len(sales))
	for i, s := range sales {
		response[i] = newSaleResponse(s)
	}
	return response
}

// Index GET RouteGroup + AdminSalesRoute. Все продажи для админа.
func (h *SalesHandler) Index(c *gin.Context) {
	reqCtx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	sales, err := h.saleSvs.GetAll(reqCtx)
	if err != nil {
		_ = c.AbortWithError(http.StatusInternalServerError, err).SetType(gin.ErrorTypePrivate)
		return
	}
	c.JSON(http.StatusOK, salesResponse(sales))
}

// My GET RouteGroup + AffiliateSalesRoute. Продажи текущего партнера.
func (h *SalesHandler) My(c *gin.Context) {
	currentID := getActorIDFromContext(c)

	reqCtx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	sales, err := h.saleSvs.GetByAffiliateID(reqCtx, currentID)
	if err != nil {
		_ = c.AbortWithError(http.StatusInternalServerError, err).SetType(gin.ErrorTypePrivate)
		return
	}
	c.JSON(http.StatusOK, salesResponse(sales))
}

type CreateSaleParams struct {
	ProductID       int64                 `binding:"required,gt=0"           json:"productId"`
	Quantity        int32                 `binding:"required,gt=0"           json:"quantity"`
	CustomerName    string                `binding:"required,min=1,max=100"  json:"customerName"`
	CustomerPhone   string                `binding:"omitempty,max=30"        json:"customerPhone"`
	CustomerAddress string                `binding:"omitempty,max=500"       json:"customerAddress"`
	AffiliateID     *int64                `binding:"omitempty,gt=0"          json:"affiliateId"`
	OrderCode       string                `binding:"omitempty,max=30"        json:"orderCode"`
	Status          domain.SaleStatusType `binding:"omitempty"               json:"status"`
}

// Create POST RouteGroup + AdminSalesRoute. Ручное создание продажи админом.
// Цена и процент комиссии берутся из продукта на момент создания.
func (h *SalesHandler) Create(c *gin.Context) {
	var params CreateSaleParams
	if !bindJSON(c, &params) {
		return
	}

	reqCtx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	product, productErr := h.productSvs.FindByID(reqCtx, params.ProductID)
	if productErr != nil {
		abortWithServiceError(c, productErr)
		return
	}

	sale, err := h.saleSvs.Create(reqCtx, service.CreateSaleArgs{
		AffiliateID:       params.AffiliateID,
		OrderCode:         params.OrderCode,
		ProductID:         product.ID,
		ProductName:       product.Name,
		CustomerName:      params.CustomerName,
		CustomerPhone:     params.CustomerPhone,
		CustomerAddress:   params.CustomerAddress,
		Quantity:          params.Quantity,
		Price:             product.Price,
		CommissionPercent: product.CommissionPercent,
		Status:            params.Status,
	})
	if err != nil {
		abortWithServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, newSaleResponse(*sale))
}

type UpdateSaleStatusParams struct {
	Status domain.SaleStatusType `binding:"required" json:"status"`
}

// UpdateStatus PUT RouteGroup + AdminSaleRoute. Перевод продажи в новый статус.
func (h *SalesHandler) UpdateStatus(c *gin.Context) {
	id, ok := getIDParam(c)
	if !ok {
		return
	}

	var params UpdateSaleStatusParams
	if !bindJSON(c, &params) {
		return
	}

	reqCtx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	sale, err := h.saleSvs.SetStatus(reqCtx, id, params.Status)
	if err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, newSaleResponse(*sale))
}
