package service

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"careerbridge.org/jobfairhub/internal/entity"
	"careerbridge.org/jobfairhub/internal/modules/registration/dto"
	"careerbridge.org/jobfairhub/pkg/apperror"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubRepo struct {
	created   []*entity.Registration
	createErr error
	all       []entity.Registration
	allErr    error
}

func (s *stubRepo) Create(ctx context.Context, reg *entity.Registration) error {
	if s.createErr != nil {
		return s.createErr
	}
	s.created = append(s.created, reg)
	return nil
}

func (s *stubRepo) FindAll(ctx context.Context) ([]entity.Registration, error) {
	return s.all, s.allErr
}

func validRequest() dto.RegisterRequest {
	return dto.RegisterRequest{
		FullName:         "Jo",
		Email:            "jo@x.com",
		Phone:            "5551234567",
		YearsExperience:  3,
		Industry:         "Technology",
		JobTitle:         "Dev",
		Availability:     "Immediately",
		EventPreferences: []string{"In-person job fairs"},
	}
}

func TestRegisterSuccessCreatesExactlyOneRecord(t *testing.T) {
	repo := &stubRepo{}
	svc := NewRegistrationService(repo)

	reg, err := svc.Register(context.Background(), validRequest())

	require.NoError(t, err)
	require.Len(t, repo.created, 1)
	assert.Equal(t, "jo@x.com", reg.Email)
	assert.Equal(t, 3, reg.YearsExperience)
	assert.Equal(t, []string{"In-person job fairs"}, reg.Preferences())
	assert.Nil(t, reg.ResumeURL)
	assert.Nil(t, reg.LinkedinProfile)
}

func TestRegisterValidationFailureSkipsPersistence(t *testing.T) {
	cases := map[string]struct {
		mutate func(*dto.RegisterRequest)
		field  string
	}{
		"short name":           {func(r *dto.RegisterRequest) { r.FullName = "J" }, "full_name"},
		"bad email":            {func(r *dto.RegisterRequest) { r.Email = "not-an-email" }, "email"},
		"short phone":          {func(r *dto.RegisterRequest) { r.Phone = "555" }, "phone"},
		"bad resume url":       {func(r *dto.RegisterRequest) { r.ResumeURL = "not a url" }, "resume_url"},
		"too much experience":  {func(r *dto.RegisterRequest) { r.YearsExperience = 51 }, "years_experience"},
		"missing industry":     {func(r *dto.RegisterRequest) { r.Industry = "" }, "industry"},
		"short job title":      {func(r *dto.RegisterRequest) { r.JobTitle = "D" }, "job_title"},
		"unknown availability": {func(r *dto.RegisterRequest) { r.Availability = "Someday" }, "availability"},
		"no event preferences": {func(r *dto.RegisterRequest) { r.EventPreferences = nil }, "event_preferences"},
		"bad event preference": {func(r *dto.RegisterRequest) { r.EventPreferences = []string{"Skydiving"} }, "event_preferences"},
	}

	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			repo := &stubRepo{}
			svc := NewRegistrationService(repo)

			req := validRequest()
			tc.mutate(&req)

			_, err := svc.Register(context.Background(), req)

			var valErr *apperror.ValidationError
			require.ErrorAs(t, err, &valErr)
			assert.Contains(t, valErr.Fields, tc.field)
			assert.Empty(t, repo.created, "no record may be created on validation failure")
		})
	}
}

func TestRegisterDuplicateEmailSurfacesDistinctError(t *testing.T) {
	repo := &stubRepo{createErr: apperror.ErrDuplicateEmail}
	svc := NewRegistrationService(repo)

	_, err := svc.Register(context.Background(), validRequest())

	assert.ErrorIs(t, err, apperror.ErrDuplicateEmail)

	var valErr *apperror.ValidationError
	assert.False(t, errors.As(err, &valErr), "duplicate email is not a validation failure")
}

func TestRegisterBlankOptionalsBecomeAbsent(t *testing.T) {
	repo := &stubRepo{}
	svc := NewRegistrationService(repo)

	req := validRequest()
	req.ResumeURL = "  "
	req.LinkedinProfile = ""

	reg, err := svc.Register(context.Background(), req)

	require.NoError(t, err)
	assert.Nil(t, reg.ResumeURL)
	assert.Nil(t, reg.LinkedinProfile)
}

func TestRegisterTrimsTextFields(t *testing.T) {
	repo := &stubRepo{}
	svc := NewRegistrationService(repo)

	req := validRequest()
	req.FullName = "  Jo Smith  "
	req.Email = " jo@x.com "

	reg, err := svc.Register(context.Background(), req)

	require.NoError(t, err)
	assert.Equal(t, "Jo Smith", reg.FullName)
	assert.Equal(t, "jo@x.com", reg.Email)
}

func TestYearsCoercesGarbageToZero(t *testing.T) {
	var req dto.RegisterRequest
	body := `{"full_name":"Jo","email":"jo@x.com","phone":"5551234567","years_experience":"abc","industry":"Technology","job_title":"Dev","availability":"Immediately","event_preferences":["In-person job fairs"]}`
	require.NoError(t, json.Unmarshal([]byte(body), &req))

	assert.Equal(t, dto.Years(0), req.YearsExperience)

	repo := &stubRepo{}
	svc := NewRegistrationService(repo)
	reg, err := svc.Register(context.Background(), req)

	require.NoError(t, err)
	assert.Equal(t, 0, reg.YearsExperience)
}
