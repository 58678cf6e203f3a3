package bot

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/AsyaBav/DietPlanner/internal/models"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// ==================== Консультация с диетологом ====================

func (b *BotApp) showConsultation(chatID int64) {
	b.showNutritionistCard(chatID, 0, 0)
}

// Карточки специалистов листаются по индексу
func (b *BotApp) showNutritionistCard(chatID int64, index int, messageID int) {
	list, err := b.consultationService.ListNutritionists()
	if err != nil {
		b.sendText(chatID, "❌ Ошибка при получении списка специалистов: "+err.Error())
		return
	}
	if len(list) == 0 {
		b.sendText(chatID, "🩺 Специалисты пока не добавлены, загляните позже")
		return
	}

	if index < 0 {
		index = len(list) - 1
	}
	if index >= len(list) {
		index = 0
	}
	n := list[index]

	text := nutritionistCard(n, index+1, len(list))
	rows := [][]tgbotapi.InlineKeyboardButton{
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("⬅️", fmt.Sprintf("consultation:prev:%d", index)),
			tgbotapi.NewInlineKeyboardButtonData(fmt.Sprintf("%d/%d", index+1, len(list)), "consultation:noop"),
			tgbotapi.NewInlineKeyboardButtonData("➡️", fmt.Sprintf("consultation:next:%d", index)),
		),
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("📞 Связаться", fmt.Sprintf("consultation:contact:%d", n.ID)),
		),
	}

	if messageID != 0 {
		b.editMessage(chatID, messageID, text, rows)
		return
	}
	b.sendTextWithKeyboard(chatID, text, rows)
}

func nutritionistCard(n *models.Nutritionist, position, total int) string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("🩺 *%s*\n", n.FullName))

	if n.Specialization != "" {
		sb.WriteString("\n🎯 Специализация: " + n.Specialization)
	}
	if n.Education != "" {
		sb.WriteString("\n🎓 Образование: " + n.Education)
	}
	if n.Experience != "" {
		sb.WriteString("\n💼 Опыт: " + n.Experience)
	}
	if n.Approach != "" {
		sb.WriteString("\n\n" + n.Approach)
	}
	if n.Price != "" {
		sb.WriteString("\n\n💰 Стоимость: " + n.Price)
	}
	if n.WorkHours != "" {
		sb.WriteString("\n🕐 Часы работы: " + n.WorkHours)
	}

	sb.WriteString(fmt.Sprintf("\n\n_Специалист %d из %d_", position, total))
	return sb.String()
}

func (b *BotApp) handleConsultationCallback(callback *tgbotapi.CallbackQuery) {
	chatID := callback.Message.Chat.ID
	data := callback.Data

	switch {
	case strings.HasPrefix(data, "consultation:prev:"):
		index, err := strconv.Atoi(strings.TrimPrefix(data, "consultation:prev:"))
		if err != nil {
			return
		}
		b.showNutritionistCard(chatID, index-1, callback.Message.MessageID)

	case strings.HasPrefix(data, "consultation:next:"):
		index, err := strconv.Atoi(strings.TrimPrefix(data, "consultation:next:"))
		if err != nil {
			return
		}
		b.showNutritionistCard(chatID, index+1, callback.Message.MessageID)

	case strings.HasPrefix(data, "consultation:contact:"):
		id, err := strconv.ParseUint(strings.TrimPrefix(data, "consultation:contact:"), 10, 32)
		if err != nil {
			return
		}
		b.showNutritionistContacts(chatID, uint(id))
	}
}

func (b *BotApp) showNutritionistContacts(chatID int64, id uint) {
	n, err := b.consultationService.GetNutritionistByID(id)
	if err != nil || n == nil {
		b.sendText(chatID, "❌ Специалист не найден")
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("📞 *Контакты: %s*\n", n.FullName))
	if n.TelegramUsername != "" {
		sb.WriteString("\nTelegram: @" + n.TelegramUsername)
	}
	if n.Email != "" {
		sb.WriteString("\nEmail: " + n.Email)
	}
	if n.Phone != "" {
		sb.WriteString("\nТелефон: " + n.Phone)
	}
	if n.WorkHours != "" {
		sb.WriteString("\n\n🕐 " + n.WorkHours)
	}

	if n.TelegramUsername != "" {
		rows := [][]tgbotapi.InlineKeyboardButton{
			tgbotapi.NewInlineKeyboardRow(
				tgbotapi.NewInlineKeyboardButtonURL("✍️ Написать в Telegram", "https://t.me/"+n.TelegramUsername),
			),
		}
		b.sendTextWithKeyboard(chatID, sb.String(), rows)
		return
	}
	b.sendText(chatID, sb.String())
}
