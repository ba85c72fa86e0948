package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/Zattox/RavensPedia-sub000/packages/core/apperrors"
)

const (
	defaultPage     = 1
	defaultPageSize = 10
	maxPageSize     = 100
)

func respondError(c *gin.Context, err error) {
	c.JSON(apperrors.Status(err), gin.H{"error": apperrors.Message(err)})
}

func parseUintParam(c *gin.Context, name string) (uint, bool) {
	value, err := strconv.ParseUint(c.Param(name), 10, 32)
	if err != nil {
		respondError(c, apperrors.BadInput("Invalid %s parameter", name))
		return 0, false
	}
	return uint(value), true
}

func badQueryParam(name string) error {
	return apperrors.BadInput("Invalid %s parameter", name)
}

func parsePagination(c *gin.Context) (page, pageSize int) {
	page, err := strconv.Atoi(c.DefaultQuery("page", strconv.Itoa(defaultPage)))
	if err != nil || page < 1 {
		page = defaultPage
	}
	pageSize, err = strconv.Atoi(c.DefaultQuery("pageSize", strconv.Itoa(defaultPageSize)))
	if err != nil || pageSize < 1 {
		pageSize = defaultPageSize
	}
	if pageSize > maxPageSize {
		pageSize = maxPageSize
	}
	return page, pageSize
}
