package service

import (
	"context"
	"fmt"
	"time"

	"careerbridge.org/jobfairhub/internal/modules/registration/repository"
)

type DashboardService interface {
	GetStats(ctx context.Context) (*Stats, error)
	ExportRegistrations(ctx context.Context) (data []byte, filename string, err error)
}

type dashboardService struct {
	registrationRepo repository.RegistrationRepository
}

func NewDashboardService(registrationRepo repository.RegistrationRepository) DashboardService {
	return &dashboardService{registrationRepo: registrationRepo}
}

func (s *dashboardService) GetStats(ctx context.Context) (*Stats, error) {
	regs, err := s.registrationRepo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	return Aggregate(regs), nil
}

func (s *dashboardService) ExportRegistrations(ctx context.Context) ([]byte, string, error) {
	regs, err := s.registrationRepo.FindAll(ctx)
	if err != nil {
		return nil, "", err
	}

	data, err := ExportCSV(regs)
	if err != nil {
		return nil, "", err
	}

	filename := fmt.Sprintf("job-fair-registrations-%s.csv", time.Now().Format("2006-01-02"))
	return data, filename, nil
}
