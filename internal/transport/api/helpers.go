package api

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"github.com/fsdevblog/lodes-affiliate/internal/domain"
	"github.com/fsdevblog/lodes-affiliate/internal/transport/api/middlewares"
)

// getActorIDFromContext берет из контекста gin ID текущего актора. ID устанавливается в
// middlewares.AuthRequired. В случае, если значения в контексте нет или ошибка утверждения типа -
// вернется 0.
func getActorIDFromContext(c *gin.Context) int64 {
	actorIDStr, exist := c.Get(middlewares.CurrentActorIDKey)
	if !exist {
		return 0
	}
	actorID, ok := actorIDStr.(int64)
	if !ok {
		return 0
	}
	return actorID
}

// getIDParam парсит path-параметр :id. При неудаче отвечает 400 и возвращает false.
func getIDParam(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		_ = c.AbortWithError(http.StatusBadRequest, errors.New("invalid id")).SetType(gin.ErrorTypePublic)
		return 0, false
	}
	return id, true
}

// abortWithServiceError транслирует доменные ошибки в http статусы.
func abortWithServiceError(c *gin.Context, err error) {
	var belowMin *domain.BelowMinimumError

	switch {
	case errors.As(err, &belowMin):
		_ = c.AbortWithError(http.StatusBadRequest, belowMin).SetType(gin.ErrorTypePublic)
	case errors.Is(err, domain.ErrInvalidArgument):
		_ = c.AbortWithError(http.StatusBadRequest, err).SetType(gin.ErrorTypePublic)
	case errors.Is(err, domain.ErrRecordNotFound):
		c.AbortWithStatus(http.StatusNotFound)
	case errors.Is(err, domain.ErrInvalidState):
		_ = c.AbortWithError(http.StatusConflict, err).SetType(gin.ErrorTypePublic)
	case errors.Is(err, domain.ErrNotEnoughBalance):
		c.AbortWithStatus(http.StatusPaymentRequired)
	case errors.Is(err, domain.ErrDuplicateKey):
		_ = c.AbortWithError(http.StatusConflict, err).SetType(gin.ErrorTypePublic)
	default:
		_ = c.AbortWithError(http.StatusInternalServerError, err).SetType(gin.ErrorTypePrivate)
	}
}

// bindJSON биндит тело запроса. Ошибки валидации отдает как 422, прочие ошибки
// парсинга как 400. Возвращает false если ответ уже записан.
func bindJSON(c *gin.Context, params any) bool {
	bindErr := c.ShouldBindJSON(params)
	if bindErr == nil {
		return true
	}

	var valErrs validator.ValidationErrors
	if errors.As(bindErr, &valErrs) {
		c.AbortWithStatusJSON(http.StatusUnprocessableEntity, gin.H{"error": valErrs.Error()})
		return false
	}
	_ = c.AbortWithError(http.StatusBadRequest, bindErr).SetType(gin.ErrorTypeBind)
	return false
}
