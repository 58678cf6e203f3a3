package service

import (
	"fmt"
	"math"
	"sort"

	"github.com/AsyaBav/DietPlanner/internal/models"
	"github.com/AsyaBav/DietPlanner/internal/repository"
	"github.com/AsyaBav/DietPlanner/pkg/utils"
)

type PlannerService struct {
	planRepo   repository.PlanRepository
	recipeRepo repository.RecipeRepository
}

// mealShare — доля приема пищи от дневных целей (калории/белки/жиры/углеводы)
type mealShare struct {
	Calories float64
	Protein  float64
	Fat      float64
	Carbs    float64
}

// Распределение дневных целей по приемам пищи
var mealShares = map[string]mealShare{
	"Завтрак": {Calories: 0.25, Protein: 0.25, Fat: 0.30, Carbs: 0.30},
	"Обед":    {Calories: 0.35, Protein: 0.40, Fat: 0.35, Carbs: 0.35},
	"Ужин":    {Calories: 0.30, Protein: 0.30, Fat: 0.25, Carbs: 0.25},
	"Перекус": {Calories: 0.10, Protein: 0.05, Fat: 0.10, Carbs: 0.10},
}

// NutritionTargets — дневные цели пользователя
type NutritionTargets struct {
	Calories float64
	Protein  float64
	Fat      float64
	Carbs    float64
}

func NewPlannerService(planRepo repository.PlanRepository, recipeRepo repository.RecipeRepository) *PlannerService {
	return &PlannerService{planRepo: planRepo, recipeRepo: recipeRepo}
}

// GetDailyPlan возвращает план питания на день
func (s *PlannerService) GetDailyPlan(userID int64, date string) ([]*models.MealPlanEntry, error) {
	return s.planRepo.FindByUserAndDate(userID, date)
}

// AddRecipeToPlan ставит рецепт в прием пищи, заменяя прежнее блюдо
func (s *PlannerService) AddRecipeToPlan(userID int64, date, mealType string, recipeID uint) error {
	valid := false
	for _, mt := range utils.MealTypes {
		if mt == mealType {
			valid = true
			break
		}
	}
	if !valid {
		return fmt.Errorf("неизвестный прием пищи: %s", mealType)
	}

	if _, err := s.recipeRepo.FindByID(recipeID); err != nil {
		return fmt.Errorf("рецепт не найден: %w", err)
	}

	if err := s.planRepo.DeleteByUserDateAndMeal(userID, date, mealType); err != nil {
		return err
	}

	_, err := s.planRepo.Create(&models.MealPlanEntry{
		UserID:   userID,
		Date:     date,
		MealType: mealType,
		RecipeID: recipeID,
	})
	return err
}

// ClearPlan удаляет план на день
func (s *PlannerService) ClearPlan(userID int64, date string) error {
	return s.planRepo.DeleteByUserAndDate(userID, date)
}

// GenerateDailyPlan подбирает блюда на день под цели пользователя.
// Для каждого приема пищи берется доля дневных целей, из рецептов
// пользователя отбираются кандидаты по калорийности и среди них
// выбирается блюдо с минимальным взвешенным отклонением от целей.
// Выбранный рецепт исключается из пула, чтобы блюда в дне не повторялись.
func (s *PlannerService) GenerateDailyPlan(userID int64, date string, targets NutritionTargets) ([]*models.MealPlanEntry, error) {
	recipes, err := s.recipeRepo.FindByUser(userID)
	if err != nil {
		return nil, err
	}
	if len(recipes) == 0 {
		return nil, fmt.Errorf("нет сохраненных рецептов для генерации рациона")
	}

	if err := s.planRepo.DeleteByUserAndDate(userID, date); err != nil {
		return nil, err
	}

	pool := make([]*models.Recipe, len(recipes))
	copy(pool, recipes)

	var plan []*models.MealPlanEntry
	for _, mealType := range utils.MealTypes {
		if len(pool) == 0 {
			break
		}

		share := mealShares[mealType]
		slotTargets := NutritionTargets{
			Calories: targets.Calories * share.Calories,
			Protein:  targets.Protein * share.Protein,
			Fat:      targets.Fat * share.Fat,
			Carbs:    targets.Carbs * share.Carbs,
		}

		chosen := pickRecipeForSlot(pool, slotTargets)
		if chosen == nil {
			continue
		}

		entry, err := s.planRepo.Create(&models.MealPlanEntry{
			UserID:   userID,
			Date:     date,
			MealType: mealType,
			RecipeID: chosen.ID,
		})
		if err != nil {
			return nil, err
		}
		entry.Recipe = *chosen
		plan = append(plan, entry)

		// Убираем выбранный рецепт из пула
		for i, r := range pool {
			if r.ID == chosen.ID {
				pool = append(pool[:i], pool[i+1:]...)
				break
			}
		}
	}

	return plan, nil
}

// pickRecipeForSlot выбирает рецепт под цели приема пищи.
// Сначала кандидаты в пределах ±20% калорийности, затем ±40%,
// затем ближайший по калориям. Среди топ-5 по близости калорий
// минимизируется взвешенное отклонение по всем нутриентам.
func pickRecipeForSlot(pool []*models.Recipe, targets NutritionTargets) *models.Recipe {
	if len(pool) == 0 {
		return nil
	}

	candidates := filterByCalories(pool, targets.Calories, 0.20)
	if len(candidates) == 0 {
		candidates = filterByCalories(pool, targets.Calories, 0.40)
	}
	if len(candidates) == 0 {
		candidates = pool
	}

	// Сортируем по близости к целевым калориям и берем топ-5
	sort.SliceStable(candidates, func(i, j int) bool {
		return math.Abs(candidates[i].Calories-targets.Calories) <
			math.Abs(candidates[j].Calories-targets.Calories)
	})
	if len(candidates) > 5 {
		candidates = candidates[:5]
	}

	best := candidates[0]
	bestScore := deviationScore(best, targets)
	for _, r := range candidates[1:] {
		score := deviationScore(r, targets)
		if score < bestScore {
			best = r
			bestScore = score
		}
	}
	return best
}

func filterByCalories(pool []*models.Recipe, target, tolerance float64) []*models.Recipe {
	var result []*models.Recipe
	for _, r := range pool {
		if math.Abs(r.Calories-target) <= target*tolerance {
			result = append(result, r)
		}
	}
	return result
}

// deviationScore — взвешенное отклонение рецепта от целей приема пищи.
// Отклонение по калориям учитывается полностью, по БЖУ — с весом 0.3.
// Каждое отклонение нормируется на свою цель.
func deviationScore(r *models.Recipe, targets NutritionTargets) float64 {
	calDiff := normalizedDiff(r.Calories, targets.Calories)
	proteinDiff := normalizedDiff(r.Protein, targets.Protein)
	fatDiff := normalizedDiff(r.Fat, targets.Fat)
	carbsDiff := normalizedDiff(r.Carbs, targets.Carbs)

	return calDiff + 0.3*(proteinDiff+fatDiff+carbsDiff)
}

func normalizedDiff(value, target float64) float64 {
	if target <= 0 {
		return 0
	}
	return math.Abs(value-target) / target
}

// PlanTotals считает суммарные КБЖУ плана
func (s *PlannerService) PlanTotals(plan []*models.MealPlanEntry) DailyTotals {
	var totals DailyTotals
	for _, entry := range plan {
		totals.Calories += entry.Recipe.Calories
		totals.Protein += entry.Recipe.Protein
		totals.Fat += entry.Recipe.Fat
		totals.Carbs += entry.Recipe.Carbs
	}
	return totals
}
