package bot

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/AsyaBav/DietPlanner/pkg/utils"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// ==================== Статистика ====================

func (b *BotApp) showStatistics(chatID, userID int64) {
	user, err := b.userService.GetUserByTelegramID(userID)
	if err != nil || user == nil {
		b.sendText(chatID, "❌ Профиль не найден. Отправьте /start")
		return
	}

	week, err := b.diaryService.GetWeeklyCalories(userID)
	if err != nil {
		b.sendText(chatID, "❌ Ошибка при получении статистики: "+err.Error())
		return
	}

	var sb strings.Builder
	sb.WriteString("📊 *Калории за неделю*\n\n")

	var total float64
	for _, day := range week {
		percent := utils.GetProgressPercentage(day.Calories, user.GoalCalories)
		sb.WriteString(fmt.Sprintf("%s: %.0f ккал %s\n",
			utils.FormatDate(day.Date), day.Calories, progressBar(percent)))
		total += day.Calories
	}
	sb.WriteString(fmt.Sprintf("\nВ среднем: %.0f ккал в день (цель %.0f)",
		total/7, user.GoalCalories))

	if stats, err := b.waterService.GetWeekStats(userID, user.WaterGoal); err == nil {
		sb.WriteString(fmt.Sprintf(`

💧 *Вода за неделю*
Всего: %d мл, в среднем %.0f мл в день
Дней с выполненной целью: %d из 7`,
			stats.Total, stats.DailyAverage, stats.DaysAchieved))
	}

	b.sendText(chatID, sb.String())
}

// ==================== Отчет о прогрессе ====================

func (b *BotApp) showWeightReport(chatID, userID int64) {
	user, err := b.userService.GetUserByTelegramID(userID)
	if err != nil || user == nil {
		b.sendText(chatID, "❌ Профиль не найден. Отправьте /start")
		return
	}

	report, err := b.weightService.GetReport(userID, 10)
	if err != nil {
		b.sendText(chatID, "❌ Ошибка при получении отчета: "+err.Error())
		return
	}

	var sb strings.Builder
	sb.WriteString("📈 *Отчет о прогрессе*\n\n")

	if len(report.Points) == 0 {
		sb.WriteString("Замеров пока нет. Внесите первый вес 👇")
	} else {
		bmi := utils.CalculateBMI(report.LastWeight, user.Height)
		sb.WriteString(fmt.Sprintf(`Текущий вес: %.1f кг
ИМТ: %.1f — %s
Цель: %s

Динамика за %d замеров: %+.1f кг`,
			report.LastWeight, bmi, utils.GetBMICategory(bmi),
			user.Goal, len(report.Points), report.TotalDelta))
	}

	rows := [][]tgbotapi.InlineKeyboardButton{
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("⚖️ Внести вес", "weight:enter"),
			tgbotapi.NewInlineKeyboardButtonData("📜 История", "weight:show_history"),
		),
	}
	b.sendTextWithKeyboard(chatID, sb.String(), rows)
}

func (b *BotApp) handleWeightCallback(callback *tgbotapi.CallbackQuery) {
	chatID := callback.Message.Chat.ID
	userID := callback.From.ID

	switch callback.Data {
	case "weight:enter":
		b.userStates[userID] = &UserState{Action: "enter_weight"}
		b.sendText(chatID, "⚖️ Введите текущий вес в кг:")

	case "weight:show_history":
		b.showWeightHistory(chatID, userID)
	}
}

func (b *BotApp) handleEnterWeight(chatID, userID int64, text string) {
	weight, err := strconv.ParseFloat(strings.Replace(strings.TrimSpace(text), ",", ".", 1), 64)
	if err != nil {
		b.sendText(chatID, "⚠️ Введите вес числом, например 72.5:")
		return
	}

	record, err := b.weightService.RecordWeight(userID, weight)
	if err != nil {
		b.sendText(chatID, "❌ "+err.Error())
		return
	}
	delete(b.userStates, userID)

	// Обновляем и профиль, чтобы цели пересчитались
	if _, err := b.userService.UpdateWeight(userID, weight); err != nil {
		utils.Log.Error("не удалось обновить вес профиля: " + err.Error())
	}

	b.sendText(chatID, fmt.Sprintf("✅ Вес %.1f кг записан на %s",
		record.Weight, utils.FormatDate(record.Date)))
	b.showWeightReport(chatID, userID)
}

func (b *BotApp) showWeightHistory(chatID, userID int64) {
	report, err := b.weightService.GetReport(userID, 10)
	if err != nil {
		b.sendText(chatID, "❌ Ошибка при получении истории: "+err.Error())
		return
	}
	if len(report.Points) == 0 {
		b.sendText(chatID, "Замеров пока нет")
		return
	}

	var sb strings.Builder
	sb.WriteString("📜 *История веса*\n\n")
	for _, p := range report.Points {
		line := fmt.Sprintf("%s: %.1f кг", utils.FormatDate(p.Date), p.Weight)
		if p.Delta != 0 {
			line += fmt.Sprintf(" (%+.1f)", p.Delta)
		}
		sb.WriteString(line + "\n")
	}
	sb.WriteString(fmt.Sprintf("\nИтого: %+.1f кг", report.TotalDelta))

	b.sendText(chatID, sb.String())
}
