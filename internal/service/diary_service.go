package service

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/AsyaBav/DietPlanner/internal/models"
	"github.com/AsyaBav/DietPlanner/internal/repository"
	"gorm.io/gorm"
)

type DiaryService struct {
	repo repository.FoodRepository
}

// DailyTotals — суммарные КБЖУ за день
type DailyTotals struct {
	Calories float64
	Protein  float64
	Fat      float64
	Carbs    float64
}

// DayCalories — калории за конкретный день недельной статистики
type DayCalories struct {
	Date     string
	Calories float64
}

func NewDiaryService(repo repository.FoodRepository) *DiaryService {
	return &DiaryService{repo: repo}
}

// AddEntry добавляет продукт в дневник
func (s *DiaryService) AddEntry(dto AddFoodEntryDTO) (*models.FoodEntry, error) {
	if strings.TrimSpace(dto.FoodName) == "" {
		return nil, fmt.Errorf("название продукта не может быть пустым")
	}
	if dto.Calories < 0 {
		return nil, fmt.Errorf("калорийность не может быть отрицательной")
	}
	if dto.Date == "" {
		dto.Date = time.Now().Format("2006-01-02")
	}

	entry := &models.FoodEntry{
		UserID:   dto.UserID,
		Date:     dto.Date,
		MealType: dto.MealType,
		FoodName: dto.FoodName,
		Calories: dto.Calories,
		Protein:  dto.Protein,
		Fat:      dto.Fat,
		Carbs:    dto.Carbs,
		Weight:   dto.Weight,
	}
	return s.repo.Create(entry)
}

// GetDailyEntries возвращает записи дневника за день
func (s *DiaryService) GetDailyEntries(userID int64, date string) ([]*models.FoodEntry, error) {
	return s.repo.FindByUserAndDate(userID, date)
}

// GetDailyTotals считает суммарные КБЖУ за день
func (s *DiaryService) GetDailyTotals(userID int64, date string) (DailyTotals, error) {
	entries, err := s.repo.FindByUserAndDate(userID, date)
	if err != nil {
		return DailyTotals{}, err
	}

	var totals DailyTotals
	for _, e := range entries {
		totals.Calories += e.Calories
		totals.Protein += e.Protein
		totals.Fat += e.Fat
		totals.Carbs += e.Carbs
	}
	return totals, nil
}

// GetRecentFoods возвращает последние добавленные продукты без повторов
func (s *DiaryService) GetRecentFoods(userID int64, limit int) ([]*models.FoodEntry, error) {
	return s.repo.FindRecent(userID, limit)
}

// GetEntryByID возвращает nil без ошибки, если запись не найдена
func (s *DiaryService) GetEntryByID(id uint) (*models.FoodEntry, error) {
	entry, err := s.repo.FindByID(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return entry, nil
}

// ClearDay удаляет все записи дневника за день
func (s *DiaryService) ClearDay(userID int64, date string) error {
	return s.repo.DeleteByUserAndDate(userID, date)
}

// GetWeeklyCalories возвращает калории по дням за последние 7 дней,
// от старых к новым
func (s *DiaryService) GetWeeklyCalories(userID int64) ([]DayCalories, error) {
	result := make([]DayCalories, 0, 7)
	for i := 6; i >= 0; i-- {
		date := time.Now().AddDate(0, 0, -i).Format("2006-01-02")
		totals, err := s.GetDailyTotals(userID, date)
		if err != nil {
			return nil, err
		}
		result = append(result, DayCalories{Date: date, Calories: totals.Calories})
	}
	return result, nil
}

// CountEntriesByDate считает записи дневника за день по всем пользователям
func (s *DiaryService) CountEntriesByDate(date string) (int64, error) {
	return s.repo.CountByDate(date)
}
