package service

import (
	"testing"

	"github.com/AsyaBav/DietPlanner/internal/models"
	"github.com/AsyaBav/DietPlanner/internal/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newPlannerFixture(t *testing.T) (*PlannerService, *RecipeService) {
	db := setupTestDB(t)
	recipeRepo := repository.NewRecipeRepo(db)
	return NewPlannerService(repository.NewPlanRepo(db), recipeRepo), NewRecipeService(recipeRepo)
}

func addRecipe(t *testing.T, recipes *RecipeService, name string, cal, p, f, c float64) *models.Recipe {
	t.Helper()
	r, err := recipes.CreateRecipe(CreateRecipeDTO{
		UserID:      1,
		Name:        name,
		Ingredients: name + " - 100 г",
		Calories:    cal, Protein: p, Fat: f, Carbs: c,
	})
	require.NoError(t, err)
	return r
}

var testTargets = NutritionTargets{Calories: 2000, Protein: 150, Fat: 55, Carbs: 220}

func TestGenerateDailyPlanAssignsRecipesBySlotCalories(t *testing.T) {
	planner, recipes := newPlannerFixture(t)

	// Калорийность подобрана под доли приемов пищи:
	// завтрак 500, обед 700, ужин 600, перекус 200
	addRecipe(t, recipes, "Омлет", 480, 30, 20, 20)
	addRecipe(t, recipes, "Курица с рисом", 690, 55, 18, 70)
	addRecipe(t, recipes, "Рыба с овощами", 610, 45, 15, 50)
	addRecipe(t, recipes, "Йогурт", 210, 10, 5, 20)

	plan, err := planner.GenerateDailyPlan(1, "2026-08-30", testTargets)
	require.NoError(t, err)
	require.Len(t, plan, 4)

	byMeal := map[string]string{}
	for _, entry := range plan {
		byMeal[entry.MealType] = entry.Recipe.Name
	}
	assert.Equal(t, "Омлет", byMeal["Завтрак"])
	assert.Equal(t, "Курица с рисом", byMeal["Обед"])
	assert.Equal(t, "Рыба с овощами", byMeal["Ужин"])
	assert.Equal(t, "Йогурт", byMeal["Перекус"])
}

func TestGenerateDailyPlanNoRepeats(t *testing.T) {
	planner, recipes := newPlannerFixture(t)

	// Все рецепты близки друг к другу: без исключения из пула
	// один и тот же попал бы в несколько приемов пищи
	addRecipe(t, recipes, "Блюдо 1", 500, 30, 15, 50)
	addRecipe(t, recipes, "Блюдо 2", 510, 30, 15, 50)
	addRecipe(t, recipes, "Блюдо 3", 520, 30, 15, 50)
	addRecipe(t, recipes, "Блюдо 4", 530, 30, 15, 50)

	plan, err := planner.GenerateDailyPlan(1, "2026-08-30", testTargets)
	require.NoError(t, err)
	require.Len(t, plan, 4)

	used := map[uint]bool{}
	for _, entry := range plan {
		assert.False(t, used[entry.RecipeID], "рецепт попал в план дважды")
		used[entry.RecipeID] = true
	}
}

func TestGenerateDailyPlanPrefersBetterMacroFit(t *testing.T) {
	planner, recipes := newPlannerFixture(t)

	// Одинаковое отклонение по калориям от завтрака (цель 500),
	// но у первого БЖУ близки к долям приема пищи
	good := addRecipe(t, recipes, "Сбалансированный завтрак", 520, 37, 16, 65)
	addRecipe(t, recipes, "Жирный завтрак", 480, 5, 50, 10)

	plan, err := planner.GenerateDailyPlan(1, "2026-08-30", testTargets)
	require.NoError(t, err)
	require.NotEmpty(t, plan)

	assert.Equal(t, good.ID, plan[0].RecipeID)
	assert.Equal(t, "Завтрак", plan[0].MealType)
}

func TestGenerateDailyPlanFallbackToNearest(t *testing.T) {
	planner, recipes := newPlannerFixture(t)

	// Единственный рецепт не попадает ни в ±20%, ни в ±40%
	addRecipe(t, recipes, "Огромная порция", 2000, 100, 80, 200)

	plan, err := planner.GenerateDailyPlan(1, "2026-08-30", testTargets)
	require.NoError(t, err)
	require.Len(t, plan, 1)
	assert.Equal(t, "Огромная порция", plan[0].Recipe.Name)
}

func TestGenerateDailyPlanWithoutRecipes(t *testing.T) {
	planner, _ := newPlannerFixture(t)

	_, err := planner.GenerateDailyPlan(1, "2026-08-30", testTargets)
	assert.Error(t, err)
}

func TestGenerateDailyPlanReplacesPreviousPlan(t *testing.T) {
	planner, recipes := newPlannerFixture(t)

	addRecipe(t, recipes, "Блюдо", 500, 30, 15, 50)

	_, err := planner.GenerateDailyPlan(1, "2026-08-30", testTargets)
	require.NoError(t, err)
	_, err = planner.GenerateDailyPlan(1, "2026-08-30", testTargets)
	require.NoError(t, err)

	plan, err := planner.GetDailyPlan(1, "2026-08-30")
	require.NoError(t, err)
	assert.Len(t, plan, 1)
}

func TestAddRecipeToPlanReplacesSlot(t *testing.T) {
	planner, recipes := newPlannerFixture(t)

	r1 := addRecipe(t, recipes, "Старое блюдо", 400, 20, 10, 40)
	r2 := addRecipe(t, recipes, "Новое блюдо", 450, 25, 12, 45)

	require.NoError(t, planner.AddRecipeToPlan(1, "2026-08-30", "Завтрак", r1.ID))
	require.NoError(t, planner.AddRecipeToPlan(1, "2026-08-30", "Завтрак", r2.ID))

	plan, err := planner.GetDailyPlan(1, "2026-08-30")
	require.NoError(t, err)
	require.Len(t, plan, 1)
	assert.Equal(t, r2.ID, plan[0].RecipeID)
}

func TestAddRecipeToPlanValidation(t *testing.T) {
	planner, recipes := newPlannerFixture(t)
	r := addRecipe(t, recipes, "Блюдо", 400, 20, 10, 40)

	assert.Error(t, planner.AddRecipeToPlan(1, "2026-08-30", "Полдник", r.ID))
	assert.Error(t, planner.AddRecipeToPlan(1, "2026-08-30", "Обед", 9999))
}

func TestPlanTotals(t *testing.T) {
	planner, recipes := newPlannerFixture(t)

	r1 := addRecipe(t, recipes, "Блюдо 1", 400, 20, 10, 40)
	r2 := addRecipe(t, recipes, "Блюдо 2", 600, 30, 15, 60)

	require.NoError(t, planner.AddRecipeToPlan(1, "2026-08-30", "Завтрак", r1.ID))
	require.NoError(t, planner.AddRecipeToPlan(1, "2026-08-30", "Обед", r2.ID))

	plan, err := planner.GetDailyPlan(1, "2026-08-30")
	require.NoError(t, err)

	totals := planner.PlanTotals(plan)
	assert.Equal(t, 1000.0, totals.Calories)
	assert.Equal(t, 50.0, totals.Protein)
	assert.Equal(t, 25.0, totals.Fat)
	assert.Equal(t, 100.0, totals.Carbs)
}
