package handler

import (
	"strconv"

	"github.com/davidmro/escolar-api/pkg/pagination"
	"github.com/gin-gonic/gin"
)

// parsePagination extracts page-based pagination parameters from the query
func parsePagination(c *gin.Context) *pagination.PaginationParams {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	perPage, _ := strconv.Atoi(c.DefaultQuery("per_page", "15"))

	params := &pagination.PaginationParams{
		Page:    page,
		PerPage: perPage,
	}
	params.Validate()
	return params
}
