package service

import (
	"testing"

	"github.com/AsyaBav/DietPlanner/internal/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRecipeService(t *testing.T) *RecipeService {
	return NewRecipeService(repository.NewRecipeRepo(setupTestDB(t)))
}

func TestCreateRecipeValidation(t *testing.T) {
	svc := newRecipeService(t)

	_, err := svc.CreateRecipe(CreateRecipeDTO{UserID: 1, Name: " ", Ingredients: "х", Calories: 100})
	assert.Error(t, err)

	_, err = svc.CreateRecipe(CreateRecipeDTO{UserID: 1, Name: "Суп", Ingredients: " ", Calories: 100})
	assert.Error(t, err)

	_, err = svc.CreateRecipe(CreateRecipeDTO{UserID: 1, Name: "Суп", Ingredients: "Вода - 1 л", Calories: 0})
	assert.Error(t, err)

	_, err = svc.CreateRecipe(CreateRecipeDTO{UserID: 1, Name: "Суп", Ingredients: "Вода - 1 л", Calories: 100, Protein: -1})
	assert.Error(t, err)
}

func TestSearchRecipes(t *testing.T) {
	svc := newRecipeService(t)

	names := []string{"Куриный суп", "Салат с курицей", "Овсянка"}
	for _, n := range names {
		_, err := svc.CreateRecipe(CreateRecipeDTO{UserID: 1, Name: n, Ingredients: "х - 1 шт", Calories: 100})
		require.NoError(t, err)
	}

	found, err := svc.SearchRecipes(1, "кур")
	require.NoError(t, err)
	assert.Len(t, found, 2)

	found, err = svc.SearchRecipes(1, "борщ")
	require.NoError(t, err)
	assert.Empty(t, found)
}

func TestToggleFavorite(t *testing.T) {
	svc := newRecipeService(t)

	r, err := svc.CreateRecipe(CreateRecipeDTO{UserID: 1, Name: "Суп", Ingredients: "Вода - 1 л", Calories: 100})
	require.NoError(t, err)

	favorite, err := svc.ToggleFavorite(r.ID)
	require.NoError(t, err)
	assert.True(t, favorite)

	favorites, err := svc.ListFavorites(1)
	require.NoError(t, err)
	require.Len(t, favorites, 1)

	favorite, err = svc.ToggleFavorite(r.ID)
	require.NoError(t, err)
	assert.False(t, favorite)
}

func TestGenerateRecipeMatchesGoal(t *testing.T) {
	svc := newRecipeService(t)

	dto := svc.GenerateRecipe("🔻 Похудение")
	assert.Contains(t, []string{"Салат с куриной грудкой", "Овощной омлет"}, dto.Name)

	// Неизвестная цель — шаблоны поддержания веса
	dto = svc.GenerateRecipe("что-то")
	assert.Contains(t, []string{"Киноа с овощами", "Творожная запеканка"}, dto.Name)
}

func TestSeedBaseRecipes(t *testing.T) {
	svc := newRecipeService(t)

	require.NoError(t, svc.SeedBaseRecipes(1))
	recipes, err := svc.ListRecipes(1)
	require.NoError(t, err)
	assert.Len(t, recipes, 6)

	// Повторный вызов не дублирует
	require.NoError(t, svc.SeedBaseRecipes(1))
	recipes, err = svc.ListRecipes(1)
	require.NoError(t, err)
	assert.Len(t, recipes, 6)
}

func TestDeleteRecipe(t *testing.T) {
	svc := newRecipeService(t)

	r, err := svc.CreateRecipe(CreateRecipeDTO{UserID: 1, Name: "Суп", Ingredients: "Вода - 1 л", Calories: 100})
	require.NoError(t, err)

	require.NoError(t, svc.DeleteRecipe(r.ID))

	got, err := svc.GetRecipeByID(r.ID)
	require.NoError(t, err)
	assert.Nil(t, got)
}
