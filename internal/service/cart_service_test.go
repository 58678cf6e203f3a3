package service

import (
	"testing"
	"time"

	"github.com/AsyaBav/DietPlanner/internal/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newCartFixture(t *testing.T) (*CartService, *PlannerService, *RecipeService, *DiaryService) {
	db := setupTestDB(t)
	recipeRepo := repository.NewRecipeRepo(db)
	planRepo := repository.NewPlanRepo(db)
	foodRepo := repository.NewFoodRepo(db)

	return NewCartService(repository.NewCartRepo(db), planRepo, foodRepo),
		NewPlannerService(planRepo, recipeRepo),
		NewRecipeService(recipeRepo),
		NewDiaryService(foodRepo)
}

func TestParseIngredients(t *testing.T) {
	cases := []struct {
		name     string
		line     string
		product  string
		quantity float64
		unit     string
	}{
		{"через дефис", "Куриная грудка - 150 г", "Куриная грудка", 150, "г"},
		{"через тире", "Молоко — 250 мл", "Молоко", 250, "мл"},
		{"без дефиса", "Сыр 30 г", "Сыр", 30, "г"},
		{"количество впереди", "150 г куриной грудки", "Куриной грудки", 150, "г"},
		{"маркер списка", "• Огурец - 1 шт", "Огурец", 1, "шт"},
		{"килограммы в граммы", "Картофель - 1.5 кг", "Картофель", 1500, "г"},
		{"литры в миллилитры", "Вода - 2 л", "Вода", 2000, "мл"},
		{"столовая ложка", "Мед - 2 ст.л.", "Мед", 30, "г"},
		{"чайная ложка", "Оливковое масло - 1 ч.л.", "Оливковое масло", 5, "г"},
		{"нераспознанная строка", "соль по вкусу", "Соль по вкусу", 100, "г"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			products := ParseIngredients(tc.line)
			require.Len(t, products, 1)
			assert.Equal(t, tc.product, products[0].Name)
			assert.Equal(t, tc.quantity, products[0].Quantity)
			assert.Equal(t, tc.unit, products[0].Unit)
		})
	}
}

func TestParseIngredientsMultiline(t *testing.T) {
	text := "Куриная грудка - 150 г\n\nПомидор - 1 шт\n• Соль, перец - по вкусу"

	products := ParseIngredients(text)
	require.Len(t, products, 3)
	assert.Equal(t, "Куриная грудка", products[0].Name)
	assert.Equal(t, "Помидор", products[1].Name)
	// Строка без количества получает 100 г по умолчанию
	assert.Equal(t, 100.0, products[2].Quantity)
}

func TestMergeProducts(t *testing.T) {
	products := []CartProduct{
		{Name: "Яйца", Quantity: 3, Unit: "шт"},
		{Name: "Молоко", Quantity: 200, Unit: "мл"},
		{Name: "яйца", Quantity: 2, Unit: "шт"},
	}

	merged := MergeProducts(products)
	require.Len(t, merged, 2)
	assert.Equal(t, 5.0, merged[0].Quantity)
	assert.Equal(t, "Молоко", merged[1].Name)
}

func TestMergeProductsDifferentUnits(t *testing.T) {
	products := []CartProduct{
		{Name: "Молоко", Quantity: 200, Unit: "мл"},
		{Name: "Молоко", Quantity: 50, Unit: "г"},
	}

	merged := MergeProducts(products)
	require.Len(t, merged, 2)
	assert.Equal(t, "Молоко", merged[0].Name)
	assert.Equal(t, "Молоко (г)", merged[1].Name)
}

func TestGenerateCartFromPlanAndDiary(t *testing.T) {
	cart, planner, recipes, diary := newCartFixture(t)
	today := time.Now().Format("2006-01-02")

	r, err := recipes.CreateRecipe(CreateRecipeDTO{
		UserID:      1,
		Name:        "Салат",
		Ingredients: "Огурец - 2 шт\nПомидор - 1 шт",
		Calories:    150, Protein: 3, Fat: 5, Carbs: 10,
	})
	require.NoError(t, err)
	require.NoError(t, planner.AddRecipeToPlan(1, today, "Обед", r.ID))

	// 300 ккал — оценка веса 100 г
	_, err = diary.AddEntry(AddFoodEntryDTO{
		UserID: 1, Date: today, MealType: "Завтрак", FoodName: "овсянка", Calories: 300,
	})
	require.NoError(t, err)

	items, err := cart.GenerateCart(1, 1)
	require.NoError(t, err)
	require.Len(t, items, 3)

	byName := map[string]float64{}
	for _, item := range items {
		byName[item.ProductName] = item.Quantity
		assert.Equal(t, "на сегодня", item.Period)
	}
	assert.Equal(t, 2.0, byName["Огурец"])
	assert.Equal(t, 1.0, byName["Помидор"])
	assert.Equal(t, 100.0, byName["Овсянка"])
}

func TestGenerateCartDiaryWeightFloor(t *testing.T) {
	cart, _, _, diary := newCartFixture(t)
	today := time.Now().Format("2006-01-02")

	// Совсем легкий продукт: вес не меньше 50 г
	_, err := diary.AddEntry(AddFoodEntryDTO{
		UserID: 1, Date: today, MealType: "Перекус", FoodName: "чай", Calories: 5,
	})
	require.NoError(t, err)

	items, err := cart.GenerateCart(1, 1)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, 50.0, items[0].Quantity)
}

func TestGenerateCartMultiDayPeriod(t *testing.T) {
	cart, _, _, diary := newCartFixture(t)
	today := time.Now().Format("2006-01-02")

	_, err := diary.AddEntry(AddFoodEntryDTO{
		UserID: 1, Date: today, MealType: "Обед", FoodName: "Суп", Calories: 200,
	})
	require.NoError(t, err)

	items, err := cart.GenerateCart(1, 3)
	require.NoError(t, err)
	require.NotEmpty(t, items)
	assert.Equal(t, "на 3 дн.", items[0].Period)
}

func TestGenerateCartReplacesOldCart(t *testing.T) {
	cart, _, _, diary := newCartFixture(t)
	today := time.Now().Format("2006-01-02")

	_, err := cart.AddManualItem(1, "Хлеб - 1 шт")
	require.NoError(t, err)

	_, err = diary.AddEntry(AddFoodEntryDTO{
		UserID: 1, Date: today, MealType: "Обед", FoodName: "Суп", Calories: 200,
	})
	require.NoError(t, err)

	items, err := cart.GenerateCart(1, 1)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "Суп", items[0].ProductName)
}

func TestGenerateCartEmpty(t *testing.T) {
	cart, _, _, _ := newCartFixture(t)

	_, err := cart.GenerateCart(1, 1)
	assert.Error(t, err)
}

func TestAddManualItem(t *testing.T) {
	cart, _, _, _ := newCartFixture(t)

	item, err := cart.AddManualItem(1, "Молоко - 1 л")
	require.NoError(t, err)
	assert.Equal(t, "Молоко", item.ProductName)
	assert.Equal(t, 1000.0, item.Quantity)
	assert.Equal(t, "мл", item.Unit)
}

func TestTogglePurchasedAndClear(t *testing.T) {
	cart, _, _, _ := newCartFixture(t)

	item, err := cart.AddManualItem(1, "Хлеб")
	require.NoError(t, err)

	purchased, err := cart.TogglePurchased(item.ID)
	require.NoError(t, err)
	assert.True(t, purchased)

	purchased, err = cart.TogglePurchased(item.ID)
	require.NoError(t, err)
	assert.False(t, purchased)

	require.NoError(t, cart.ClearCart(1))
	items, err := cart.ListItems(1)
	require.NoError(t, err)
	assert.Empty(t, items)
}
