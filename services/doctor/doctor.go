package doctor

import (
	"context"
	"fmt"

	doctorRepo "medibook/database/repository/doctor"
	"medibook/models"
	"medibook/utils"

	"go.uber.org/zap"
)

// DoctorService covers the admin-managed doctor roster.
type DoctorService interface {
	GetAll(ctx context.Context) ([]models.Doctor, error)
	Create(ctx context.Context, doctor *models.Doctor) (*models.Doctor, error)
	// Delete removes a doctor and reports how many records were removed.
	Delete(ctx context.Context, id string) (int64, error)
}

// DefaultDoctorService implements DoctorService over the doctor repository.
type DefaultDoctorService struct {
	Repo doctorRepo.DoctorRepository
}

func (s *DefaultDoctorService) GetAll(ctx context.Context) ([]models.Doctor, error) {
	doctors, err := s.Repo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch doctors: %w", err)
	}
	return doctors, nil
}

func (s *DefaultDoctorService) Create(ctx context.Context, doctor *models.Doctor) (*models.Doctor, error) {
	if err := s.Repo.Create(ctx, doctor); err != nil {
		return nil, fmt.Errorf("failed to create doctor: %w", err)
	}
	utils.GetLogger().Info("doctor created",
		zap.String("id", doctor.ID.Hex()), zap.String("name", doctor.Name))
	return doctor, nil
}

func (s *DefaultDoctorService) Delete(ctx context.Context, id string) (int64, error) {
	deleted, err := s.Repo.Delete(ctx, id)
	if err != nil {
		return 0, err
	}
	return deleted, nil
}
