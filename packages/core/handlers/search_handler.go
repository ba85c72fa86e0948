package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Zattox/RavensPedia-sub000/packages/core/services"
)

type SearchHandler struct {
	searchService *services.SearchService
}

func NewSearchHandler(searchService *services.SearchService) *SearchHandler {
	return &SearchHandler{
		searchService: searchService,
	}
}

// Search runs a cross-entity substring search
// @Summary Search
// @Description Case-insensitive substring search across players, teams and tournaments
// @Tags search
// @Produce json
// @Param query query string false "Search query; empty matches everything"
// @Success 200 {object} services.SearchResponse
// @Router /search/ [get]
func (h *SearchHandler) Search(c *gin.Context) {
	response, err := h.searchService.Search(c.Query("query"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response)
}
