package repository

import (
	"context"
	"errors"

	"careerbridge.org/jobfairhub/internal/entity"
	"careerbridge.org/jobfairhub/pkg/apperror"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

type RegistrationRepository interface {
	Create(ctx context.Context, reg *entity.Registration) error
	FindAll(ctx context.Context) ([]entity.Registration, error)
}

type registrationRepository struct {
	db *gorm.DB
}

func NewRegistrationRepository(db *gorm.DB) RegistrationRepository {
	return &registrationRepository{db: db}
}

func (r *registrationRepository) Create(ctx context.Context, reg *entity.Registration) error {
	if err := r.db.WithContext(ctx).Create(reg).Error; err != nil {
		if isUniqueViolation(err) {
			return apperror.ErrDuplicateEmail
		}
		return err
	}
	return nil
}

// FindAll returns every registration, most recent first. The dashboard and
// the CSV export both rely on this ordering without re-sorting.
func (r *registrationRepository) FindAll(ctx context.Context) ([]entity.Registration, error) {
	var regs []entity.Registration
	if err := r.db.WithContext(ctx).Order("created_at DESC").Find(&regs).Error; err != nil {
		return nil, err
	}
	return regs, nil
}

// isUniqueViolation reports whether err is a Postgres unique-constraint
// violation (SQLSTATE 23505), i.e. a duplicate email.
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23505"
	}
	return errors.Is(err, gorm.ErrDuplicatedKey)
}
