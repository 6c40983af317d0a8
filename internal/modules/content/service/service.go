package service

import (
	"context"
	"errors"
	"log"
	"mime/multipart"
	"os"

	"careerbridge.org/jobfairhub/internal/entity"
	"careerbridge.org/jobfairhub/internal/modules/content/dto"
	"careerbridge.org/jobfairhub/internal/modules/content/repository"
	"careerbridge.org/jobfairhub/pkg/apperror"
	"careerbridge.org/jobfairhub/pkg/storage"
	"gorm.io/gorm"
)

type ContentService interface {
	GetEvents(ctx context.Context) ([]entity.Event, error)
	GetPrograms(ctx context.Context) ([]entity.Program, error)
	GetImpactStats(ctx context.Context) ([]entity.ImpactStat, error)
	GetGallery(ctx context.Context) ([]entity.GalleryImage, error)
	AddGalleryImage(ctx context.Context, req dto.UploadGalleryImageRequest, file *multipart.FileHeader) (*entity.GalleryImage, error)
	RemoveGalleryImage(ctx context.Context, id uint) error
}

type contentService struct {
	repo         repository.ContentRepository
	imageStorage storage.ImageStorage
	uploadFolder string
}

func NewContentService(repo repository.ContentRepository, imageStorage storage.ImageStorage) ContentService {
	folder := os.Getenv("CLOUDINARY_UPLOAD_FOLDER")
	if folder == "" {
		folder = "jobfairhub/gallery"
	}

	return &contentService{
		repo:         repo,
		imageStorage: imageStorage,
		uploadFolder: folder,
	}
}

func (s *contentService) GetEvents(ctx context.Context) ([]entity.Event, error) {
	return s.repo.FindEvents(ctx)
}

func (s *contentService) GetPrograms(ctx context.Context) ([]entity.Program, error) {
	return s.repo.FindPrograms(ctx)
}

func (s *contentService) GetImpactStats(ctx context.Context) ([]entity.ImpactStat, error) {
	return s.repo.FindImpactStats(ctx)
}

func (s *contentService) GetGallery(ctx context.Context) ([]entity.GalleryImage, error) {
	return s.repo.FindGalleryImages(ctx)
}

func (s *contentService) AddGalleryImage(ctx context.Context, req dto.UploadGalleryImageRequest, file *multipart.FileHeader) (*entity.GalleryImage, error) {
	src, err := file.Open()
	if err != nil {
		return nil, apperror.New(400, "could not read uploaded file", err)
	}
	defer src.Close()

	url, err := s.imageStorage.UploadImage(ctx, src, s.uploadFolder, file.Filename)
	if err != nil {
		return nil, err
	}

	image := &entity.GalleryImage{
		Title:    req.Title,
		AltText:  req.AltText,
		ImageURL: url,
	}
	if err := s.repo.CreateGalleryImage(ctx, image); err != nil {
		// Roll back the upload on insert failure.
		if delErr := s.imageStorage.DeleteImage(ctx, url); delErr != nil {
			log.Printf("failed to delete orphan gallery upload %s: %v", url, delErr)
		}
		return nil, err
	}

	return image, nil
}

func (s *contentService) RemoveGalleryImage(ctx context.Context, id uint) error {
	image, err := s.repo.DeleteGalleryImage(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperror.ErrNotFound
		}
		return err
	}

	if err := s.imageStorage.DeleteImage(ctx, image.ImageURL); err != nil {
		log.Printf("failed to delete gallery image from storage %s: %v", image.ImageURL, err)
	}
	return nil
}
