package department

import (
	"log/slog"
	"time"

	"github.com/google/uuid"
)

// Repository defines the data access methods for departments.
type Repository interface {
	Create(dept *Department) error
	GetByID(id string) (*Department, error)
	GetByName(name string) (*Department, error)
	List() ([]*Department, error)
	Update(dept *Department) error
	Delete(id string) error
}

type Service struct {
	repo   Repository
	logger *slog.Logger
}

func NewService(repo Repository, logger *slog.Logger) *Service {
	return &Service{repo: repo, logger: logger}
}

func (s *Service) Create(dto CreateDepartmentDTO) (*Department, error) {
	if err := dto.Validate(); err != nil {
		return nil, err
	}

	if existing, err := s.repo.GetByName(dto.Name); err == nil && existing != nil {
		return nil, ErrNameTaken
	}

	now := time.Now()
	dept := &Department{
		ID:          uuid.NewString(),
		Name:        dto.Name,
		Description: dto.Description,
		ManagerID:   dto.ManagerID,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := s.repo.Create(dept); err != nil {
		s.logger.Error("failed to create department", "error", err, "name", dto.Name)
		return nil, err
	}

	s.logger.Info("department created", "department_id", dept.ID, "name", dept.Name)
	return dept, nil
}

func (s *Service) GetByID(id string) (*Department, error) {
	dept, err := s.repo.GetByID(id)
	if err != nil {
		return nil, ErrDepartmentNotFound
	}
	return dept, nil
}

func (s *Service) List() ([]*Department, error) {
	return s.repo.List()
}

func (s *Service) Update(id string, dto UpdateDepartmentDTO) (*Department, error) {
	if err := dto.Validate(); err != nil {
		return nil, err
	}

	dept, err := s.repo.GetByID(id)
	if err != nil {
		return nil, ErrDepartmentNotFound
	}

	if dto.Name != dept.Name {
		if existing, err := s.repo.GetByName(dto.Name); err == nil && existing != nil {
			return nil, ErrNameTaken
		}
	}

	dept.Name = dto.Name
	dept.Description = dto.Description
	dept.ManagerID = dto.ManagerID
	dept.UpdatedAt = time.Now()

	if err := s.repo.Update(dept); err != nil {
		s.logger.Error("failed to update department", "error", err, "department_id", id)
		return nil, err
	}
	return dept, nil
}

func (s *Service) Delete(id string) error {
	if _, err := s.repo.GetByID(id); err != nil {
		return ErrDepartmentNotFound
	}
	return s.repo.Delete(id)
}
