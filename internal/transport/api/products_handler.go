package api

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"github.com/fsdevblog/lodes-affiliate/internal/domain"
	"github.com/fsdevblog/lodes-affiliate/internal/service"
)

type ProductsHandler struct {
	svs ProductServicer
}

func NewProductsHandler(svs ProductServicer) *ProductsHandler {
	return &ProductsHandler{
		svs: svs,
	}
}

type ProductParams struct {
	Name              string          `binding:"required,min=1,max=100" json:"name"`
	Description       string          `binding:"omitempty,max=1000"     json:"description"`
	Price             decimal.Decimal `binding:"required"               json:"price"`
	CommissionPercent decimal.Decimal `binding:"required"               json:"commissionPercent"`
	Active            *bool           `binding:"omitempty"              json:"active"`
}

type ProductResponse struct {
	ID                int64     `json:"ID"`
	Name              string    `json:"name"`
	Description       string    `json:"description,omitempty"`
	Price             float64   `json:"price"`
	CommissionPercent float64   `json:"commissionPercent"`
	Active            bool      `json:"active"`
	CreatedAt         time.Time `json:"createdAt"`
	UpdatedAt         time.Time `json:"updatedAt"`
}

func newProductResponse(p *domain.Product) ProductResponse {
	return ProductResponse{
		ID:                p.ID,
		Name:              p.Name,
		Description:       p.Description,
		Price:             p.Price.InexactFloat64(),
		CommissionPercent: p.CommissionPercent.InexactFloat64(),
		Active:            p.Active,
		CreatedAt:         p.CreatedAt,
		UpdatedAt:         p.UpdatedAt,
	}
}

func (p ProductParams) toArgs() service.ProductArgs {
	active := true
	if p.Active != nil {
		active = *p.Active
	}
	return service.ProductArgs{
		Name:              p.Name,
		Description:       p.Description,
		Price:             p.Price,
		CommissionPercent: p.CommissionPercent,
		Active:            active,
	}
}

// Index GET RouteGroup + AdminProductsRoute. Все продукты, включая неактивные.
func (h *ProductsHandler) Index(c *gin.Context) {
	reqCtx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	products, err := h.svs.GetAll(reqCtx, false)
	if err != nil {
		_ = c.AbortWithError(http.StatusInternalServerError, err).SetType(gin.ErrorTypePrivate)
		return
	}

	response := make([]ProductResponse, len(products))
	for i := range products {
		response[i] = newProductResponse(&products[i])
	}
	c.JSON(http.StatusOK, response)
}

// Create POST RouteGroup + AdminProductsRoute.
func (h *ProductsHandler) Create(c *gin.Context) {
	var params ProductParams
	if !bindJSON(c, &params) {
		return
	}

	reqCtx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	product, err := h.svs.Create(reqCtx, params.toArgs())
	if err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, newProductResponse(product))
}

// Update PUT RouteGroup + AdminProductRoute. Меняет карточку продукта.
// Цена и процент в уже созданных продажах зафиксированы и не пересчитываются.
func (h *ProductsHandler) Update(c *gin.Context) {
	id, ok := getIDParam(c)
	if !ok {
		return
	}

	var params ProductParams
	if !bindJSON(c, &params) {
		return
	}

	reqCtx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	product, err := h.svs.Update(reqCtx, id, params.toArgs())
	if err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, newProductResponse(product))
}
