package repository

import (
	"context"

	"careerbridge.org/jobfairhub/internal/entity"
	"gorm.io/gorm"
)

type ContentRepository interface {
	FindEvents(ctx context.Context) ([]entity.Event, error)
	FindPrograms(ctx context.Context) ([]entity.Program, error)
	FindImpactStats(ctx context.Context) ([]entity.ImpactStat, error)
	FindGalleryImages(ctx context.Context) ([]entity.GalleryImage, error)
	CreateGalleryImage(ctx context.Context, image *entity.GalleryImage) error
	DeleteGalleryImage(ctx context.Context, id uint) (*entity.GalleryImage, error)
}

type contentRepository struct {
	db *gorm.DB
}

func NewContentRepository(db *gorm.DB) ContentRepository {
	return &contentRepository{db: db}
}

func (r *contentRepository) FindEvents(ctx context.Context) ([]entity.Event, error) {
	var events []entity.Event
	if err := r.db.WithContext(ctx).Order("created_at DESC").Find(&events).Error; err != nil {
		return nil, err
	}
	return events, nil
}

func (r *contentRepository) FindPrograms(ctx context.Context) ([]entity.Program, error) {
	var programs []entity.Program
	if err := r.db.WithContext(ctx).Order("id ASC").Find(&programs).Error; err != nil {
		return nil, err
	}
	return programs, nil
}

func (r *contentRepository) FindImpactStats(ctx context.Context) ([]entity.ImpactStat, error) {
	var stats []entity.ImpactStat
	if err := r.db.WithContext(ctx).Order("sort_order ASC").Find(&stats).Error; err != nil {
		return nil, err
	}
	return stats, nil
}

func (r *contentRepository) FindGalleryImages(ctx context.Context) ([]entity.GalleryImage, error) {
	var images []entity.GalleryImage
	if err := r.db.WithContext(ctx).Order("created_at DESC").Find(&images).Error; err != nil {
		return nil, err
	}
	return images, nil
}

func (r *contentRepository) CreateGalleryImage(ctx context.Context, image *entity.GalleryImage) error {
	return r.db.WithContext(ctx).Create(image).Error
}

func (r *contentRepository) DeleteGalleryImage(ctx context.Context, id uint) (*entity.GalleryImage, error) {
	var image entity.GalleryImage
	if err := r.db.WithContext(ctx).First(&image, "id = ?", id).Error; err != nil {
		return nil, err
	}
	if err := r.db.WithContext(ctx).Delete(&image).Error; err != nil {
		return nil, err
	}
	return &image, nil
}
