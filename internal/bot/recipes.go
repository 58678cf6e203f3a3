package bot

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/AsyaBav/DietPlanner/internal/models"
	"github.com/AsyaBav/DietPlanner/internal/service"
	"github.com/AsyaBav/DietPlanner/pkg/utils"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// ==================== Рецепты ====================

func (b *BotApp) showRecipesMenu(chatID int64) {
	rows := [][]tgbotapi.InlineKeyboardButton{
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("📋 Все рецепты", "recipe:list"),
			tgbotapi.NewInlineKeyboardButtonData("⭐ Избранное", "recipe:favorites"),
		),
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("🔍 Поиск", "recipe:search"),
			tgbotapi.NewInlineKeyboardButtonData("➕ Создать", "recipe:create"),
		),
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("🎲 Случайный рецепт", "recipe:generate"),
		),
	}
	b.sendTextWithKeyboard(chatID, "🍳 *Рецепты*\n\nВыберите действие:", rows)
}

func recipeListRows(recipes []*models.Recipe) [][]tgbotapi.InlineKeyboardButton {
	var rows [][]tgbotapi.InlineKeyboardButton
	for _, r := range recipes {
		title := fmt.Sprintf("%s — %.0f ккал", r.Name, r.Calories)
		if r.IsFavorite {
			title = "⭐ " + title
		}
		rows = append(rows, tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData(title, fmt.Sprintf("view_recipe:%d", r.ID)),
		))
	}
	rows = append(rows, tgbotapi.NewInlineKeyboardRow(
		tgbotapi.NewInlineKeyboardButtonData("⬅️ Назад", "recipe:back"),
	))
	return rows
}

func (b *BotApp) showRecipeList(chatID, userID int64) {
	recipes, err := b.recipeService.ListRecipes(userID)
	if err != nil {
		b.sendText(chatID, "❌ Ошибка при получении рецептов: "+err.Error())
		return
	}
	if len(recipes) == 0 {
		b.sendText(chatID, "У вас пока нет рецептов. Создайте первый 👨‍🍳")
		return
	}
	b.sendTextWithKeyboard(chatID, "📋 *Ваши рецепты:*", recipeListRows(recipes))
}

func (b *BotApp) showFavoriteRecipes(chatID, userID int64) {
	recipes, err := b.recipeService.ListFavorites(userID)
	if err != nil {
		b.sendText(chatID, "❌ Ошибка при получении рецептов: "+err.Error())
		return
	}
	if len(recipes) == 0 {
		b.sendText(chatID, "В избранном пока пусто. Отметьте рецепты звездочкой ⭐")
		return
	}
	b.sendTextWithKeyboard(chatID, "⭐ *Избранные рецепты:*", recipeListRows(recipes))
}

func (b *BotApp) handleRecipeSearch(chatID, userID int64, text string) {
	delete(b.userStates, userID)

	recipes, err := b.recipeService.SearchRecipes(userID, strings.TrimSpace(text))
	if err != nil {
		b.sendText(chatID, "❌ Ошибка при поиске: "+err.Error())
		return
	}
	if len(recipes) == 0 {
		b.sendText(chatID, "По вашему запросу ничего не найдено 😔")
		return
	}
	b.sendTextWithKeyboard(chatID, "🔍 *Результаты поиска:*", recipeListRows(recipes))
}

func recipeCard(r *models.Recipe) string {
	favorite := ""
	if r.IsFavorite {
		favorite = " ⭐"
	}
	return fmt.Sprintf(`🍳 *%s*%s

*Ингредиенты:*
%s

*Приготовление:*
%s

📊 Калории: %.0f ккал
Б: %.0f г | Ж: %.0f г | У: %.0f г`,
		r.Name, favorite, r.Ingredients, r.Instructions,
		r.Calories, r.Protein, r.Fat, r.Carbs)
}

func (b *BotApp) handleViewRecipe(callback *tgbotapi.CallbackQuery) {
	chatID := callback.Message.Chat.ID

	id, err := strconv.ParseUint(strings.TrimPrefix(callback.Data, "view_recipe:"), 10, 32)
	if err != nil {
		return
	}

	recipe, err := b.recipeService.GetRecipeByID(uint(id))
	if err != nil || recipe == nil {
		b.sendText(chatID, "❌ Рецепт не найден")
		return
	}

	rows := [][]tgbotapi.InlineKeyboardButton{
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("⭐ В избранное", fmt.Sprintf("toggle_favorite:%d", recipe.ID)),
			tgbotapi.NewInlineKeyboardButtonData("📖 В дневник", fmt.Sprintf("recipe_to_diary:%d", recipe.ID)),
		),
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("🗑 Удалить", fmt.Sprintf("delete_recipe:%d", recipe.ID)),
			tgbotapi.NewInlineKeyboardButtonData("⬅️ Назад", "recipe:back"),
		),
	}
	b.sendTextWithKeyboard(chatID, recipeCard(recipe), rows)
}

func (b *BotApp) handleToggleFavorite(callback *tgbotapi.CallbackQuery) {
	chatID := callback.Message.Chat.ID

	id, err := strconv.ParseUint(strings.TrimPrefix(callback.Data, "toggle_favorite:"), 10, 32)
	if err != nil {
		return
	}

	favorite, err := b.recipeService.ToggleFavorite(uint(id))
	if err != nil {
		b.sendText(chatID, "❌ "+err.Error())
		return
	}

	if favorite {
		b.sendText(chatID, "⭐ Рецепт добавлен в избранное")
	} else {
		b.sendText(chatID, "Рецепт убран из избранного")
	}
}

func (b *BotApp) handleDeleteRecipe(callback *tgbotapi.CallbackQuery) {
	chatID := callback.Message.Chat.ID
	userID := callback.From.ID

	id, err := strconv.ParseUint(strings.TrimPrefix(callback.Data, "delete_recipe:"), 10, 32)
	if err != nil {
		return
	}

	if err := b.recipeService.DeleteRecipe(uint(id)); err != nil {
		b.sendText(chatID, "❌ "+err.Error())
		return
	}
	b.sendText(chatID, "🗑 Рецепт удален")
	b.showRecipeList(chatID, userID)
}

// Добавление рецепта в дневник: сначала выбор приема пищи
func (b *BotApp) handleRecipeToDiary(callback *tgbotapi.CallbackQuery) {
	chatID := callback.Message.Chat.ID

	id := strings.TrimPrefix(callback.Data, "recipe_to_diary:")
	var rows [][]tgbotapi.InlineKeyboardButton
	for i, mealType := range utils.MealTypes {
		rows = append(rows, tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData(mealType, fmt.Sprintf("recipe_meal:%s:%d", id, i)),
		))
	}
	b.sendTextWithKeyboard(chatID, "🍽 В какой прием пищи добавить блюдо?", rows)
}

func (b *BotApp) handleRecipeMealCallback(callback *tgbotapi.CallbackQuery) {
	chatID := callback.Message.Chat.ID
	userID := callback.From.ID

	// recipe_meal:<recipeID>:<mealIdx>
	parts := strings.Split(strings.TrimPrefix(callback.Data, "recipe_meal:"), ":")
	if len(parts) != 2 {
		return
	}
	id, err := strconv.ParseUint(parts[0], 10, 32)
	if err != nil {
		return
	}
	idx, err := strconv.Atoi(parts[1])
	if err != nil || idx < 0 || idx >= len(utils.MealTypes) {
		return
	}

	recipe, err := b.recipeService.GetRecipeByID(uint(id))
	if err != nil || recipe == nil {
		b.sendText(chatID, "❌ Рецепт не найден")
		return
	}

	_, err = b.diaryService.AddEntry(service.AddFoodEntryDTO{
		UserID:   userID,
		MealType: utils.MealTypes[idx],
		FoodName: recipe.Name,
		Calories: recipe.Calories,
		Protein:  recipe.Protein,
		Fat:      recipe.Fat,
		Carbs:    recipe.Carbs,
	})
	if err != nil {
		b.sendText(chatID, "❌ "+err.Error())
		return
	}

	b.sendText(chatID, fmt.Sprintf("✅ %s добавлен в %s",
		recipe.Name, strings.ToLower(utils.MealTypes[idx])))
	b.showDiary(chatID, userID, today())
}

// ==================== Создание рецепта ====================

func (b *BotApp) startCreateRecipe(chatID, userID int64) {
	b.userStates[userID] = &UserState{
		Action:   "create_recipe",
		TempData: make(map[string]interface{}),
	}
	b.sendText(chatID, "➕ *Новый рецепт*\n\nВведите название:")
}

func (b *BotApp) handleCreateRecipeStep(chatID, userID int64, state *UserState, text string) {
	switch state.Step {
	case 0:
		state.TempData["name"] = strings.TrimSpace(text)
		state.Step = 1
		b.sendText(chatID, "Введите ингредиенты, каждый с новой строки:\n_Например: Куриная грудка - 150 г_")

	case 1:
		state.TempData["ingredients"] = text
		state.Step = 2
		b.sendText(chatID, "Опишите приготовление:")

	case 2:
		state.TempData["instructions"] = text
		state.Step = 3
		b.sendText(chatID, "Введите КБЖУ через пробел:\n_калории белки жиры углеводы_\nНапример: `350 25 12 30`")

	case 3:
		fields := strings.Fields(text)
		if len(fields) != 4 {
			b.sendText(chatID, "⚠️ Нужно 4 числа через пробел: калории белки жиры углеводы")
			return
		}
		values := make([]float64, 4)
		for i, f := range fields {
			v, err := strconv.ParseFloat(strings.Replace(f, ",", ".", 1), 64)
			if err != nil {
				b.sendText(chatID, "⚠️ Все значения должны быть числами")
				return
			}
			values[i] = v
		}

		name, _ := state.TempData["name"].(string)
		ingredients, _ := state.TempData["ingredients"].(string)
		instructions, _ := state.TempData["instructions"].(string)

		recipe, err := b.recipeService.CreateRecipe(service.CreateRecipeDTO{
			UserID:       userID,
			Name:         name,
			Ingredients:  ingredients,
			Instructions: instructions,
			Calories:     values[0],
			Protein:      values[1],
			Fat:          values[2],
			Carbs:        values[3],
		})
		if err != nil {
			b.sendText(chatID, "❌ "+err.Error())
			return
		}
		delete(b.userStates, userID)
		b.sendText(chatID, "✅ Рецепт сохранен!")
		b.sendTextWithKeyboard(chatID, recipeCard(recipe), [][]tgbotapi.InlineKeyboardButton{
			tgbotapi.NewInlineKeyboardRow(
				tgbotapi.NewInlineKeyboardButtonData("⬅️ К рецептам", "recipe:back"),
			),
		})
	}
}

// ==================== Случайный рецепт ====================

func (b *BotApp) generateRecipe(chatID, userID int64) {
	user, err := b.userService.GetUserByTelegramID(userID)
	if err != nil || user == nil {
		b.sendText(chatID, "❌ Профиль не найден. Отправьте /start")
		return
	}

	dto := b.recipeService.GenerateRecipe(user.Goal)
	b.userStates[userID] = &UserState{
		Action:   "generated_recipe",
		TempData: map[string]interface{}{"recipe": dto},
	}

	text := fmt.Sprintf(`🎲 *Рецепт под вашу цель (%s):*

🍳 *%s*

*Ингредиенты:*
%s

📊 Калории: %.0f ккал
Б: %.0f г | Ж: %.0f г | У: %.0f г`,
		user.Goal, dto.Name, dto.Ingredients,
		dto.Calories, dto.Protein, dto.Fat, dto.Carbs)

	rows := [][]tgbotapi.InlineKeyboardButton{
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("💾 Сохранить", "recipe:save"),
			tgbotapi.NewInlineKeyboardButtonData("❌ Отмена", "recipe:cancel"),
		),
	}
	b.sendTextWithKeyboard(chatID, text, rows)
}

func (b *BotApp) saveGeneratedRecipe(chatID, userID int64) {
	state, ok := b.userStates[userID]
	if !ok || state.Action != "generated_recipe" {
		return
	}
	dto, ok := state.TempData["recipe"].(service.CreateRecipeDTO)
	if !ok {
		return
	}
	delete(b.userStates, userID)

	dto.UserID = userID
	if _, err := b.recipeService.CreateRecipe(dto); err != nil {
		b.sendText(chatID, "❌ "+err.Error())
		return
	}
	b.sendText(chatID, "✅ Рецепт сохранен в вашу коллекцию!")
}
