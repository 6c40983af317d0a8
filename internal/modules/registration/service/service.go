package service

import (
	"context"
	"slices"

	"careerbridge.org/jobfairhub/internal/entity"
	"careerbridge.org/jobfairhub/internal/modules/registration/dto"
	"careerbridge.org/jobfairhub/internal/modules/registration/repository"
	"careerbridge.org/jobfairhub/pkg/apperror"
	pkgvalidator "careerbridge.org/jobfairhub/pkg/validator"
	"github.com/go-playground/validator/v10"
)

type RegistrationService interface {
	Register(ctx context.Context, req dto.RegisterRequest) (*entity.Registration, error)
	GetAll(ctx context.Context) ([]entity.Registration, error)
}

type registrationService struct {
	repo     repository.RegistrationRepository
	validate *validator.Validate
}

func NewRegistrationService(repo repository.RegistrationRepository) RegistrationService {
	return &registrationService{
		repo:     repo,
		validate: validator.New(),
	}
}

// Register validates the full candidate record before touching the database.
// A failed check rejects the whole submission with per-field messages; no
// partial insert happens.
func (s *registrationService) Register(ctx context.Context, req dto.RegisterRequest) (*entity.Registration, error) {
	req.Normalize()

	if err := s.validate.Struct(req); err != nil {
		return nil, &apperror.ValidationError{Fields: pkgvalidator.FieldErrors(err)}
	}

	if fields := validateChoices(req); len(fields) > 0 {
		return nil, &apperror.ValidationError{Fields: fields}
	}

	reg := &entity.Registration{
		FullName:        req.FullName,
		Email:           req.Email,
		Phone:           req.Phone,
		ResumeURL:       optional(req.ResumeURL),
		LinkedinProfile: optional(req.LinkedinProfile),
		YearsExperience: int(req.YearsExperience),
		Industry:        req.Industry,
		JobTitle:        req.JobTitle,
		Availability:    req.Availability,
	}
	if err := reg.SetPreferences(req.EventPreferences); err != nil {
		return nil, err
	}

	if err := s.repo.Create(ctx, reg); err != nil {
		return nil, err
	}

	return reg, nil
}

func (s *registrationService) GetAll(ctx context.Context) ([]entity.Registration, error) {
	return s.repo.FindAll(ctx)
}

// validateChoices checks the enumerated fields the struct tags cannot express:
// availability is a closed set, and every event preference must be a known
// event type. Industry stays free-form.
func validateChoices(req dto.RegisterRequest) map[string]string {
	fields := make(map[string]string)

	if !slices.Contains(entity.AvailabilityOptions, req.Availability) {
		fields["availability"] = "Please select your availability"
	}

	for _, pref := range req.EventPreferences {
		if !slices.Contains(entity.EventTypes, pref) {
			fields["event_preferences"] = "Please select valid event preferences"
			break
		}
	}

	if len(fields) == 0 {
		return nil
	}
	return fields
}

// optional maps a blank form field to an absent value instead of an empty string.
func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
