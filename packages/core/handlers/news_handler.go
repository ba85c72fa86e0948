package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Zattox/RavensPedia-sub000/packages/core/models"
	"github.com/Zattox/RavensPedia-sub000/packages/core/services"
)

type NewsHandler struct {
	newsService *services.NewsService
}

func NewNewsHandler(newsService *services.NewsService) *NewsHandler {
	return &NewsHandler{
		newsService: newsService,
	}
}

// GetNews lists news
// @Summary List news
// @Description Get a paginated list of news, newest first
// @Tags news
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param pageSize query int false "Items per page" default(10)
// @Success 200 {object} models.PaginatedNewsResponse
// @Router /news/ [get]
func (h *NewsHandler) GetNews(c *gin.Context) {
	page, pageSize := parsePagination(c)
	response, err := h.newsService.GetAllNews(page, pageSize)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response)
}

// GetNewsItem gets one news item
// @Summary Get news item
// @Tags news
// @Produce json
// @Param id path int true "News ID"
// @Success 200 {object} models.News
// @Failure 404 {object} map[string]string
// @Router /news/{id}/ [get]
func (h *NewsHandler) GetNewsItem(c *gin.Context) {
	id, ok := parseUintParam(c, "id")
	if !ok {
		return
	}
	news, err := h.newsService.GetNewsByID(id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, news)
}

// CreateNews creates a news item
// @Summary Create news
// @Tags news
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param news body models.CreateNewsRequest true "News data"
// @Success 201 {object} models.News
// @Failure 400 {object} map[string]string
// @Router /news/ [post]
func (h *NewsHandler) CreateNews(c *gin.Context) {
	var req models.CreateNewsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	news, err := h.newsService.CreateNews(req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, news)
}

// UpdateNews updates a news item
// @Summary Update news
// @Tags news
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path int true "News ID"
// @Param news body models.UpdateNewsRequest true "News update data"
// @Success 200 {object} models.News
// @Failure 404 {object} map[string]string
// @Router /news/{id}/ [patch]
func (h *NewsHandler) UpdateNews(c *gin.Context) {
	id, ok := parseUintParam(c, "id")
	if !ok {
		return
	}

	var req models.UpdateNewsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	news, err := h.newsService.UpdateNews(id, req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, news)
}

// DeleteNews deletes a news item
// @Summary Delete news
// @Tags news
// @Security BearerAuth
// @Param id path int true "News ID"
// @Success 204
// @Failure 404 {object} map[string]string
// @Router /news/{id}/ [delete]
func (h *NewsHandler) DeleteNews(c *gin.Context) {
	id, ok := parseUintParam(c, "id")
	if !ok {
		return
	}
	if err := h.newsService.DeleteNews(id); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
