package api

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"github.com/fsdevblog/lodes-affiliate/internal/domain"
)

type WithdrawalsHandler struct {
	svs WithdrawalServicer
}

func NewWithdrawalsHandler(svs WithdrawalServicer) *WithdrawalsHandler {
	return &WithdrawalsHandler{
		svs: svs,
	}
}

type PaymentInfoParams struct {
	BankName      string `binding:"omitempty,max=100" json:"bankName"`
	AccountNumber string `binding:"omitempty,max=50"  json:"accountNumber"`
	AccountHolder string `binding:"omitempty,max=100" json:"accountHolder"`
	EwalletType   string `binding:"omitempty,max=50"  json:"ewalletType"`
}

type WithdrawalResponse struct {
	ID          int64                       `json:"ID"`
	AffiliateID int64                       `json:"affiliateId"`
	Amount      float64                     `json:"amount"`
	Status      domain.WithdrawalStatusType `json:"status"`
	AdminNote   string                      `json:"adminNote,omitempty"`
	ProcessedAt *time.Time                  `json:"processedAt,omitempty"`
	CreatedAt   time.Time                   `json:"createdAt"`
}

func newWithdrawalResponse(w domain.Withdrawal) WithdrawalResponse {
	return WithdrawalResponse{
		ID:          w.ID,
		AffiliateID: w.AffiliateID,
		Amount:      w.Amount.InexactFloat64(),
		Status:      w.Status,
		AdminNote:   w.AdminNote,
		ProcessedAt: w.ProcessedAt,
		CreatedAt:   w.CreatedAt,
	}
}

func withdrawalsResponse(withdrawals []domain.Withdrawal) []WithdrawalResponse {
	response := make([]WithdrawalResponse, len(withdrawals))
	for i, w := range withdrawals {
		response[i] = newWithdrawalResponse(w)
	}
	return response
}

// Amount указатель: validator не заглядывает внутрь decimal.Decimal, и без
// указателя отсутствующее поле связалось бы как ноль и прошло бы required.
type CreateWithdrawalParams struct {
	Amount         *decimal.Decimal  `binding:"required" json:"amount"`
	PaymentDetails PaymentInfoParams `binding:"omitempty" json:"paymentDetails"`
}

// Create POST RouteGroup + AffiliateWithdrawalsRoute. Заявка партнера на вывод.
// Сумма сразу резервируется на балансе.
func (h *WithdrawalsHandler) Create(c *gin.Context) {
	currentID := getActorIDFromContext(c)

	var params CreateWithdrawalParams
	if !bindJSON(c, &params) {
		return
	}

	reqCtx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	withdrawal, err := h.svs.Create(reqCtx, currentID, *params.Amount, domain.PaymentInfo{
		BankName:      params.PaymentDetails.BankName,
		AccountNumber: params.PaymentDetails.AccountNumber,
		AccountHolder: params.PaymentDetails.AccountHolder,
		EwalletType:   params.PaymentDetails.EwalletType,
	})
	if err != nil {
		abortWithServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, newWithdrawalResponse(*withdrawal))
}

// My GET RouteGroup + AffiliateWithdrawalsRoute. Заявки текущего партнера.
func (h *WithdrawalsHandler) My(c *gin.Context) {
	currentID := getActorIDFromContext(c)

	reqCtx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	withdrawals, err := h.svs.GetByAffiliateID(reqCtx, currentID)
	if err != nil {
		_ = c.AbortWithError(http.StatusInternalServerError, err).SetType(gin.ErrorTypePrivate)
		return
	}
	c.JSON(http.StatusOK, withdrawalsResponse(withdrawals))
}

// Index GET RouteGroup + AdminWithdrawalsRoute. Все заявки для админа.
func (h *WithdrawalsHandler) Index(c *gin.Context) {
	reqCtx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	withdrawals, err := h.svs.GetAll(reqCtx)
	if err != nil {
		_ = c.AbortWithError(http.StatusInternalServerError, err).SetType(gin.ErrorTypePrivate)
		return
	}
	c.JSON(http.StatusOK, withdrawalsResponse(withdrawals))
}

type UpdateWithdrawalStatusParams struct {
	Status    domain.WithdrawalStatusType `binding:"required"          json:"status"`
	AdminNote string                      `binding:"omitempty,max=500" json:"adminNote"`
}

// UpdateStatus PUT RouteGroup + AdminWithdrawalRoute. Выплата или отклонение заявки.
// При отклонении зарезервированная сумма возвращается на баланс партнера.
func (h *WithdrawalsHandler) UpdateStatus(c *gin.Context) {
	id, ok := getIDParam(c)
	if !ok {
		return
	}

	var params UpdateWithdrawalStatusParams
	if !bindJSON(c, &params) {
		return
	}

	reqCtx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	withdrawal, err := h.svs.SetStatus(reqCtx, id, params.Status, params.AdminNote)
	if err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, newWithdrawalResponse(*withdrawal))
}
