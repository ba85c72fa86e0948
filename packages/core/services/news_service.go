package services

import (
	"errors"

	"gorm.io/gorm"

	"github.com/Zattox/RavensPedia-sub000/packages/core/apperrors"
	"github.com/Zattox/RavensPedia-sub000/packages/core/models"
)

type NewsService struct {
	db *gorm.DB
}

func NewNewsService(db *gorm.DB) *NewsService {
	return &NewsService{
		db: db,
	}
}

func (s *NewsService) GetAllNews(page, pageSize int) (*models.PaginatedNewsResponse, error) {
	var news []models.News
	var total int64

	if err := s.db.Model(&models.News{}).Count(&total).Error; err != nil {
		return nil, err
	}

	offset := (page - 1) * pageSize
	if err := s.db.
		Order("created_at DESC").
		Offset(offset).
		Limit(pageSize).
		Find(&news).Error; err != nil {
		return nil, err
	}

	return &models.PaginatedNewsResponse{
		Data:       news,
		Total:      total,
		Page:       page,
		PageSize:   pageSize,
		TotalPages: totalPages(total, pageSize),
	}, nil
}

func (s *NewsService) GetNewsByID(id uint) (*models.News, error) {
	var news models.News
	if err := s.db.First(&news, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFound("News %d not found", id)
		}
		return nil, err
	}
	return &news, nil
}

func (s *NewsService) CreateNews(req models.CreateNewsRequest) (*models.News, error) {
	news := &models.News{
		Title:   req.Title,
		Content: req.Content,
		Author:  req.Author,
	}
	if err := s.db.Create(news).Error; err != nil {
		return nil, err
	}
	return news, nil
}

func (s *NewsService) UpdateNews(id uint, req models.UpdateNewsRequest) (*models.News, error) {
	news, err := s.GetNewsByID(id)
	if err != nil {
		return nil, err
	}

	updates := make(map[string]interface{})
	if req.Title != nil {
		updates["title"] = *req.Title
	}
	if req.Content != nil {
		updates["content"] = *req.Content
	}
	if req.Author != nil {
		updates["author"] = *req.Author
	}

	if len(updates) > 0 {
		if err := s.db.Model(news).Updates(updates).Error; err != nil {
			return nil, err
		}
	}
	return s.GetNewsByID(id)
}

func (s *NewsService) DeleteNews(id uint) error {
	news, err := s.GetNewsByID(id)
	if err != nil {
		return err
	}
	return s.db.Delete(news).Error
}
