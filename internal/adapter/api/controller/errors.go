package controller

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/shah-dhwanil/gaatha-salesforce-sub000/internal/adapter/api/dto"
	"github.com/shah-dhwanil/gaatha-salesforce-sub000/internal/domain/domainerr"
	"github.com/shah-dhwanil/gaatha-salesforce-sub000/pkg/logger"
)

// respondError maps domain errors onto HTTP responses. Not-found and conflict
// outcomes are part of normal operation and logged at lower levels; anything
// unclassified is a server fault.
func respondError(ctx *gin.Context, log logger.Logger, op string, err error) {
	var (
		notFound      *domainerr.NotFoundError
		alreadyExists *domainerr.AlreadyExistsError
		hierarchy     *domainerr.InvalidHierarchyError
		validation    *domainerr.ValidationError
		transition    *domainerr.StatusTransitionError
	)

	switch {
	case errors.As(err, &notFound):
		log.Info(op, "detail", err.Error())
		ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(err.Error()))
	case errors.As(err, &alreadyExists):
		log.Warn(op, "detail", err.Error())
		ctx.JSON(http.StatusConflict, dto.NewErrorResponse(err.Error()))
	case errors.As(err, &hierarchy):
		log.Warn(op, "detail", err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(err.Error()))
	case errors.As(err, &validation), errors.As(err, &transition):
		log.Info(op, "detail", err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(err.Error()))
	default:
		log.Error(op, "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse("internal server error"))
	}
}

// respondBindError reports a malformed request body
func respondBindError(ctx *gin.Context, err error) {
	ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(err.Error()))
}

// pageParams parses the page/page_size query values
func pageParams(ctx *gin.Context) dto.PaginationParams {
	page := atoiOr(ctx.Query("page"), 1)
	pageSize := atoiOr(ctx.Query("page_size"), 10)
	return dto.GetPagination(page, pageSize)
}

func atoiOr(s string, fallback int) int {
	n, err := strconv.Atoi(s)
	if err != nil {
		return fallback
	}
	return n
}
