package service

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/AsyaBav/DietPlanner/internal/models"
	"github.com/AsyaBav/DietPlanner/internal/repository"
	"github.com/AsyaBav/DietPlanner/pkg/utils"
	"gorm.io/gorm"
)

type UserService struct {
	repo repository.UserRepository
}

func NewUserService(repo repository.UserRepository) *UserService {
	return &UserService{repo: repo}
}

// GetUserByTelegramID возвращает nil без ошибки, если пользователь не найден
func (s *UserService) GetUserByTelegramID(telegramID int64) (*models.User, error) {
	user, err := s.repo.FindByTelegramID(telegramID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return user, nil
}

// RegisterUser завершает регистрацию: валидирует анкету,
// считает целевые калории и БЖУ и сохраняет пользователя.
func (s *UserService) RegisterUser(dto RegisterUserDTO) (*models.User, error) {
	name := strings.TrimSpace(dto.Name)
	if name == "" || len([]rune(name)) > 50 {
		return nil, fmt.Errorf("имя должно быть не длиннее 50 символов")
	}
	if dto.Age < 12 || dto.Age > 120 {
		return nil, fmt.Errorf("возраст должен быть от 12 до 120 лет")
	}
	if dto.Height < 100 || dto.Height > 250 {
		return nil, fmt.Errorf("рост должен быть от 100 до 250 см")
	}
	if dto.Weight < 30 || dto.Weight > 300 {
		return nil, fmt.Errorf("вес должен быть от 30 до 300 кг")
	}

	tdee := utils.CalculateTDEE(dto.Weight, dto.Height, dto.Age, dto.ActivityLevel, dto.Gender)
	goalCalories := math.Round(utils.GetGoalCalories(tdee, dto.Goal))
	macros := utils.CalculateMacronutrients(goalCalories, dto.Weight, dto.Goal)

	user, err := s.GetUserByTelegramID(dto.TelegramID)
	if err != nil {
		return nil, err
	}

	if user == nil {
		user = &models.User{TelegramID: dto.TelegramID, WaterGoal: 2000}
	}

	user.Name = name
	user.Age = dto.Age
	user.Gender = dto.Gender
	user.Height = dto.Height
	user.Weight = dto.Weight
	user.ActivityLevel = dto.ActivityLevel
	user.Goal = dto.Goal
	user.GoalCalories = goalCalories
	user.Protein = macros.Protein
	user.Fat = macros.Fat
	user.Carbs = macros.Carbs
	user.RegistrationComplete = true

	if user.ID == 0 {
		return s.repo.Create(user)
	}
	return user, s.repo.Update(user)
}

// UpdateWeight меняет вес в профиле и пересчитывает цели
func (s *UserService) UpdateWeight(telegramID int64, weight float64) (*models.User, error) {
	if weight < 30 || weight > 300 {
		return nil, fmt.Errorf("вес должен быть от 30 до 300 кг")
	}

	user, err := s.GetUserByTelegramID(telegramID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, fmt.Errorf("пользователь не найден")
	}

	user.Weight = weight
	s.recalculateTargets(user)
	return user, s.repo.Update(user)
}

// UpdateGoal меняет цель и пересчитывает калории и БЖУ
func (s *UserService) UpdateGoal(telegramID int64, goal string) (*models.User, error) {
	if _, ok := utils.UserGoals[goal]; !ok {
		return nil, fmt.Errorf("неизвестная цель")
	}

	user, err := s.GetUserByTelegramID(telegramID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, fmt.Errorf("пользователь не найден")
	}

	user.Goal = goal
	s.recalculateTargets(user)
	return user, s.repo.Update(user)
}

// SetWaterGoal устанавливает дневную цель по воде (500-10000 мл)
func (s *UserService) SetWaterGoal(telegramID int64, goal int) error {
	if goal < 500 || goal > 10000 {
		return fmt.Errorf("введите значение от 500 до 10000 мл")
	}

	user, err := s.GetUserByTelegramID(telegramID)
	if err != nil {
		return err
	}
	if user == nil {
		return fmt.Errorf("пользователь не найден")
	}

	user.WaterGoal = goal
	return s.repo.Update(user)
}

func (s *UserService) recalculateTargets(user *models.User) {
	tdee := utils.CalculateTDEE(user.Weight, user.Height, user.Age, user.ActivityLevel, user.Gender)
	user.GoalCalories = math.Round(utils.GetGoalCalories(tdee, user.Goal))
	macros := utils.CalculateMacronutrients(user.GoalCalories, user.Weight, user.Goal)
	user.Protein = macros.Protein
	user.Fat = macros.Fat
	user.Carbs = macros.Carbs
}

func (s *UserService) ListUsers() ([]*models.User, error) {
	return s.repo.FindAll()
}

func (s *UserService) CountUsers() (int64, error) {
	return s.repo.Count()
}
