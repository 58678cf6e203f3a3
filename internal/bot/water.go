package bot

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/AsyaBav/DietPlanner/pkg/utils"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// ==================== Трекер воды ====================

func (b *BotApp) showWaterTracker(chatID, userID int64) {
	user, err := b.userService.GetUserByTelegramID(userID)
	if err != nil || user == nil {
		b.sendText(chatID, "❌ Профиль не найден. Отправьте /start")
		return
	}

	total, err := b.waterService.GetDailyWater(userID, today())
	if err != nil {
		b.sendText(chatID, "❌ Ошибка при получении данных: "+err.Error())
		return
	}

	percent := utils.GetProgressPercentage(float64(total), float64(user.WaterGoal))
	text := fmt.Sprintf(`💧 *Трекер воды*

Сегодня выпито: %d мл из %d мл
%s %d%%`,
		total, user.WaterGoal, progressBar(percent), percent)

	rows := [][]tgbotapi.InlineKeyboardButton{
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("+200 мл", "water_add:200"),
			tgbotapi.NewInlineKeyboardButtonData("+300 мл", "water_add:300"),
			tgbotapi.NewInlineKeyboardButtonData("+500 мл", "water_add:500"),
		),
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("✏️ Свое количество", "water_custom"),
		),
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("🎯 Цель", "water_goal"),
			tgbotapi.NewInlineKeyboardButtonData("📊 Статистика", "water_stats"),
		),
	}
	b.sendTextWithKeyboard(chatID, text, rows)
}

// Текстовая шкала прогресса из 10 делений
func progressBar(percent int) string {
	filled := percent / 10
	return strings.Repeat("🟦", filled) + strings.Repeat("⬜", 10-filled)
}

func (b *BotApp) handleWaterAddCallback(callback *tgbotapi.CallbackQuery) {
	chatID := callback.Message.Chat.ID
	userID := callback.From.ID

	amount, err := strconv.Atoi(strings.TrimPrefix(callback.Data, "water_add:"))
	if err != nil {
		return
	}

	if err := b.waterService.AddWater(userID, amount); err != nil {
		b.sendText(chatID, "❌ "+err.Error())
		return
	}
	b.showWaterTracker(chatID, userID)
}

func (b *BotApp) handleWaterCustom(chatID, userID int64, text string) {
	amount, err := strconv.Atoi(strings.TrimSpace(text))
	if err != nil {
		b.sendText(chatID, "⚠️ Введите количество воды числом в мл:")
		return
	}

	if err := b.waterService.AddWater(userID, amount); err != nil {
		b.sendText(chatID, "❌ "+err.Error())
		return
	}
	delete(b.userStates, userID)
	b.showWaterTracker(chatID, userID)
}

func (b *BotApp) showWaterGoalMenu(chatID int64) {
	rows := [][]tgbotapi.InlineKeyboardButton{
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("1500 мл", "water_goal_set:1500"),
			tgbotapi.NewInlineKeyboardButtonData("2000 мл", "water_goal_set:2000"),
		),
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("2500 мл", "water_goal_set:2500"),
			tgbotapi.NewInlineKeyboardButtonData("3000 мл", "water_goal_set:3000"),
		),
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("✏️ Свое значение", "water_goal_set:custom"),
		),
	}
	b.sendTextWithKeyboard(chatID, "🎯 Выберите дневную цель по воде:", rows)
}

func (b *BotApp) handleWaterGoalSetCallback(callback *tgbotapi.CallbackQuery) {
	chatID := callback.Message.Chat.ID
	userID := callback.From.ID
	value := strings.TrimPrefix(callback.Data, "water_goal_set:")

	if value == "custom" {
		b.userStates[userID] = &UserState{Action: "water_goal"}
		b.sendText(chatID, "Введите цель в мл (от 500 до 10000):")
		return
	}

	goal, err := strconv.Atoi(value)
	if err != nil {
		return
	}

	if err := b.userService.SetWaterGoal(userID, goal); err != nil {
		b.sendText(chatID, "❌ "+err.Error())
		return
	}
	b.sendText(chatID, fmt.Sprintf("✅ Цель по воде: %d мл в день", goal))
	b.showWaterTracker(chatID, userID)
}

func (b *BotApp) handleWaterGoalInput(chatID, userID int64, text string) {
	goal, err := strconv.Atoi(strings.TrimSpace(text))
	if err != nil {
		b.sendText(chatID, "⚠️ Введите цель числом в мл:")
		return
	}

	if err := b.userService.SetWaterGoal(userID, goal); err != nil {
		b.sendText(chatID, "❌ "+err.Error())
		return
	}
	delete(b.userStates, userID)
	b.sendText(chatID, fmt.Sprintf("✅ Цель по воде: %d мл в день", goal))
	b.showWaterTracker(chatID, userID)
}

func (b *BotApp) showWaterStats(chatID, userID int64) {
	user, err := b.userService.GetUserByTelegramID(userID)
	if err != nil || user == nil {
		return
	}

	stats, err := b.waterService.GetWeekStats(userID, user.WaterGoal)
	if err != nil {
		b.sendText(chatID, "❌ Ошибка при получении статистики: "+err.Error())
		return
	}

	var sb strings.Builder
	sb.WriteString("📊 *Вода за неделю*\n\n")
	for _, day := range stats.Days {
		percent := utils.GetProgressPercentage(float64(day.Amount), float64(user.WaterGoal))
		sb.WriteString(fmt.Sprintf("%s: %d мл %s\n",
			utils.FormatDate(day.Date), day.Amount, progressBar(percent)))
	}
	sb.WriteString(fmt.Sprintf(`
Всего: %d мл
В среднем: %.0f мл в день
Дней с выполненной целью: %d из 7`,
		stats.Total, stats.DailyAverage, stats.DaysAchieved))

	b.sendText(chatID, sb.String())
}
