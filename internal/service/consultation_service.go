package service

import (
	"errors"
	"fmt"
	"strings"

	"github.com/AsyaBav/DietPlanner/internal/models"
	"github.com/AsyaBav/DietPlanner/internal/repository"
	"gorm.io/gorm"
)

type ConsultationService struct {
	repo repository.NutritionistRepository
}

func NewConsultationService(repo repository.NutritionistRepository) *ConsultationService {
	return &ConsultationService{repo: repo}
}

func (s *ConsultationService) CreateNutritionist(dto CreateNutritionistDTO) (*models.Nutritionist, error) {
	fullName := strings.TrimSpace(dto.FullName)
	if fullName == "" {
		return nil, fmt.Errorf("имя специалиста не может быть пустым")
	}

	return s.repo.Create(&models.Nutritionist{
		FullName:         fullName,
		Education:        dto.Education,
		Experience:       dto.Experience,
		Specialization:   dto.Specialization,
		Approach:         dto.Approach,
		TelegramUsername: strings.TrimPrefix(strings.TrimSpace(dto.TelegramUsername), "@"),
		Email:            dto.Email,
		Phone:            dto.Phone,
		WorkHours:        dto.WorkHours,
		Price:            dto.Price,
	})
}

// GetNutritionistByID возвращает nil без ошибки, если специалист не найден
func (s *ConsultationService) GetNutritionistByID(id uint) (*models.Nutritionist, error) {
	n, err := s.repo.FindByID(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return n, nil
}

func (s *ConsultationService) ListNutritionists() ([]*models.Nutritionist, error) {
	return s.repo.FindAll()
}

func (s *ConsultationService) UpdateNutritionist(id uint, dto UpdateNutritionistDTO) (*models.Nutritionist, error) {
	n, err := s.repo.FindByID(id)
	if err != nil {
		return nil, err
	}

	if fullName := strings.TrimSpace(dto.FullName); fullName != "" {
		n.FullName = fullName
	}
	if dto.Education != "" {
		n.Education = dto.Education
	}
	if dto.Experience != "" {
		n.Experience = dto.Experience
	}
	if dto.Specialization != "" {
		n.Specialization = dto.Specialization
	}
	if dto.Approach != "" {
		n.Approach = dto.Approach
	}
	if dto.TelegramUsername != "" {
		n.TelegramUsername = strings.TrimPrefix(strings.TrimSpace(dto.TelegramUsername), "@")
	}
	if dto.Email != "" {
		n.Email = dto.Email
	}
	if dto.Phone != "" {
		n.Phone = dto.Phone
	}
	if dto.WorkHours != "" {
		n.WorkHours = dto.WorkHours
	}
	if dto.Price != "" {
		n.Price = dto.Price
	}

	return n, s.repo.Update(n)
}

func (s *ConsultationService) DeleteNutritionist(id uint) error {
	return s.repo.Delete(id)
}
