package api

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/fsdevblog/lodes-affiliate/internal/domain"
	"github.com/fsdevblog/lodes-affiliate/internal/service"
)

// PublicHandler обслуживает витрину: каталог и оформление заказа покупателем.
// Авторизация не требуется.
type PublicHandler struct {
	saleSvs    SaleServicer
	productSvs ProductServicer
}

func NewPublicHandler(saleSvs SaleServicer, productSvs ProductServicer) *PublicHandler {
	return &PublicHandler{
		saleSvs:    saleSvs,
		productSvs: productSvs,
	}
}

type PublicOrderParams struct {
	ProductID       int64  `binding:"required,gt=0"          json:"productId"`
	Quantity        int32  `binding:"required,gt=0"          json:"quantity"`
	CustomerName    string `binding:"required,min=1,max=100" json:"customerName"`
	CustomerPhone   string `binding:"required,max=30"        json:"customerPhone"`
	CustomerAddress string `binding:"required,max=500"       json:"customerAddress"`
	AffiliateCode   string `binding:"omitempty,max=20"       json:"affiliateCode"`
}

type PublicOrderResponse struct {
	OrderCode string  `json:"orderCode"`
	Amount    float64 `json:"amount"`
	CreatedAt string  `json:"createdAt"`
}

// CreateOrder POST RouteGroup + PublicOrderRoute. Оформляет заказ покупателя.
// Неизвестный реферальный код не считается ошибкой - заказ создается без партнера.
func (h *PublicHandler) CreateOrder(c *gin.Context) {
	var params PublicOrderParams
	if !bindJSON(c, &params) {
		return
	}

	ctx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	sale, err := h.saleSvs.CreatePublicOrder(ctx, service.PublicOrderArgs{
		ProductID:       params.ProductID,
		Quantity:        params.Quantity,
		CustomerName:    params.CustomerName,
		CustomerPhone:   params.CustomerPhone,
		CustomerAddress: params.CustomerAddress,
		AffiliateCode:   params.AffiliateCode,
	})
	if err != nil {
		abortWithServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, PublicOrderResponse{
		OrderCode: sale.OrderCode,
		Amount:    sale.Amount.InexactFloat64(),
		CreatedAt: sale.CreatedAt.Format(time.RFC3339),
	})
}

type PublicProductResponse struct {
	ID          int64   `json:"ID"`
	Name        string  `json:"name"`
	Description string  `json:"description,omitempty"`
	Price       float64 `json:"price"`
}

// Products GET RouteGroup + PublicProductsRoute. Отдает только активные продукты.
// Процент комиссии наружу не отдаем.
func (h *PublicHandler) Products(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	products, err := h.productSvs.GetAll(ctx, true)
	if err != nil {
		_ = c.AbortWithError(http.StatusInternalServerError, err).SetType(gin.ErrorTypePrivate)
		return
	}

	response := make([]PublicProductResponse, len(products))
	for i, p := range products {
		response[i] = publicProductResponse(p)
	}
	c.JSON(http.StatusOK, response)
}

func publicProductResponse(p domain.Product) PublicProductResponse {
	return PublicProductResponse{
		ID:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		Price:       p.Price.InexactFloat64(),
	}
}
