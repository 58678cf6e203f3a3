package service

import (
	"errors"
	"fmt"
	"math/rand"
	"strings"

	"github.com/AsyaBav/DietPlanner/internal/models"
	"github.com/AsyaBav/DietPlanner/internal/repository"
	"gorm.io/gorm"
)

type RecipeService struct {
	repo repository.RecipeRepository
}

func NewRecipeService(repo repository.RecipeRepository) *RecipeService {
	return &RecipeService{repo: repo}
}

// Базовые шаблоны рецептов для разных целей
var baseRecipes = map[string][]CreateRecipeDTO{
	"🔻 Похудение": {
		{
			Name:         "Салат с куриной грудкой",
			Ingredients:  "Куриная грудка - 150 г\nЛистья салата - 80 г\nОгурец - 1 шт\nПомидор - 1 шт\nОливковое масло - 1 ч.л.\nЛимонный сок - 1 ст.л.\nСоль, перец - по вкусу",
			Instructions: "1. Куриную грудку отварить и нарезать кубиками\n2. Овощи нарезать и смешать с курицей\n3. Заправить оливковым маслом и лимонным соком\n4. Посолить, поперчить по вкусу",
			Calories:     220, Protein: 30, Fat: 8, Carbs: 10,
		},
		{
			Name:         "Овощной омлет",
			Ingredients:  "Яйца - 3 шт\nМолоко 1% - 30 мл\nШпинат - 50 г\nПомидор - 1 шт\nСладкий перец - 1/2 шт\nСоль, перец - по вкусу",
			Instructions: "1. Яйца взбить с молоком, посолить и поперчить\n2. Овощи мелко нарезать\n3. Смешать овощи с яичной смесью\n4. Вылить на разогретую сковороду\n5. Готовить под крышкой на среднем огне 5-7 минут",
			Calories:     250, Protein: 20, Fat: 15, Carbs: 8,
		},
	},
	"🔺 Набор веса": {
		{
			Name:         "Протеиновый коктейль с бананом",
			Ingredients:  "Молоко 3.2% - 250 мл\nПротеин - 30 г (1 мерная ложка)\nБанан - 1 шт\nМед - 1 ст.л.\nОвсяные хлопья - 30 г",
			Instructions: "1. Добавить все ингредиенты в блендер\n2. Взбить до однородной массы\n3. Подавать охлажденным",
			Calories:     450, Protein: 35, Fat: 10, Carbs: 55,
		},
		{
			Name:         "Паста с куриным филе",
			Ingredients:  "Макароны - 100 г\nКуриное филе - 200 г\nСливки 20% - 100 мл\nСыр пармезан - 30 г\nЧеснок - 2 зубчика\nОливковое масло - 2 ст.л.\nСоль, перец, специи - по вкусу",
			Instructions: "1. Макароны отварить согласно инструкции\n2. Куриное филе нарезать, обжарить на оливковом масле\n3. Добавить измельченный чеснок и сливки\n4. Тушить 5-7 минут\n5. Добавить макароны, перемешать\n6. Посыпать тертым сыром",
			Calories:     650, Protein: 50, Fat: 25, Carbs: 60,
		},
	},
	"🔄 Поддержание текущего веса": {
		{
			Name:         "Киноа с овощами",
			Ingredients:  "Киноа - 70 г\nБрокколи - 100 г\nМорковь - 1 шт\nСладкий перец - 1 шт\nОливковое масло - 1 ст.л.\nЛимонный сок - 1 ч.л.\nСоль, перец, зелень - по вкусу",
			Instructions: "1. Киноа промыть и отварить\n2. Овощи нарезать и обжарить на оливковом масле\n3. Смешать киноа с овощами\n4. Добавить лимонный сок, соль, перец и зелень",
			Calories:     350, Protein: 12, Fat: 10, Carbs: 55,
		},
		{
			Name:         "Творожная запеканка",
			Ingredients:  "Творог 5% - 250 г\nЯйца - 2 шт\nМед - 2 ст.л.\nВанилин - на кончике ножа\nЯблоко - 1 шт\nОвсяные хлопья - 30 г",
			Instructions: "1. Творог смешать с яйцами и медом\n2. Яблоко натереть на терке\n3. Добавить яблоко, овсяные хлопья и ванилин к творожной массе\n4. Выложить в форму и выпекать при 180°C 30-35 минут",
			Calories:     400, Protein: 30, Fat: 15, Carbs: 35,
		},
	},
}

// CreateRecipe сохраняет рецепт пользователя
func (s *RecipeService) CreateRecipe(dto CreateRecipeDTO) (*models.Recipe, error) {
	name := strings.TrimSpace(dto.Name)
	if name == "" || len([]rune(name)) > 100 {
		return nil, fmt.Errorf("название рецепта должно быть не длиннее 100 символов")
	}
	if strings.TrimSpace(dto.Ingredients) == "" {
		return nil, fmt.Errorf("список ингредиентов не может быть пустым")
	}
	if dto.Calories <= 0 {
		return nil, fmt.Errorf("калорийность должна быть положительной")
	}
	if dto.Protein < 0 || dto.Fat < 0 || dto.Carbs < 0 {
		return nil, fmt.Errorf("БЖУ не могут быть отрицательными")
	}

	recipe := &models.Recipe{
		UserID:       dto.UserID,
		Name:         name,
		Ingredients:  dto.Ingredients,
		Instructions: dto.Instructions,
		Calories:     dto.Calories,
		Protein:      dto.Protein,
		Fat:          dto.Fat,
		Carbs:        dto.Carbs,
	}
	return s.repo.Create(recipe)
}

// GetRecipeByID возвращает nil без ошибки, если рецепт не найден
func (s *RecipeService) GetRecipeByID(id uint) (*models.Recipe, error) {
	recipe, err := s.repo.FindByID(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return recipe, nil
}

func (s *RecipeService) ListRecipes(userID int64) ([]*models.Recipe, error) {
	return s.repo.FindByUser(userID)
}

func (s *RecipeService) ListFavorites(userID int64) ([]*models.Recipe, error) {
	return s.repo.FindFavorites(userID)
}

func (s *RecipeService) SearchRecipes(userID int64, query string) ([]*models.Recipe, error) {
	return s.repo.SearchByName(userID, query)
}

// ToggleFavorite переключает флаг избранного, возвращает новое состояние
func (s *RecipeService) ToggleFavorite(id uint) (bool, error) {
	recipe, err := s.repo.FindByID(id)
	if err != nil {
		return false, err
	}

	recipe.IsFavorite = !recipe.IsFavorite
	if err := s.repo.Update(recipe); err != nil {
		return false, err
	}
	return recipe.IsFavorite, nil
}

func (s *RecipeService) DeleteRecipe(id uint) error {
	return s.repo.Delete(id)
}

// GenerateRecipe выбирает случайный базовый рецепт под цель пользователя
func (s *RecipeService) GenerateRecipe(goal string) CreateRecipeDTO {
	templates, ok := baseRecipes[goal]
	if !ok {
		templates = baseRecipes["🔄 Поддержание текущего веса"]
	}
	return templates[rand.Intn(len(templates))]
}

// SeedBaseRecipes добавляет базовые рецепты новому пользователю,
// чтобы генератору рациона было из чего выбирать
func (s *RecipeService) SeedBaseRecipes(userID int64) error {
	count, err := s.repo.CountByUser(userID)
	if err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	for _, templates := range baseRecipes {
		for _, tmpl := range templates {
			tmpl.UserID = userID
			if _, err := s.CreateRecipe(tmpl); err != nil {
				return err
			}
		}
	}
	return nil
}
