package bot

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/AsyaBav/DietPlanner/pkg/utils"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// ==================== Статьи ====================

func (b *BotApp) showArticleTopics(chatID int64) {
	topics, err := b.articleService.ListTopics()
	if err != nil {
		b.sendText(chatID, "❌ Ошибка при получении тем: "+err.Error())
		return
	}
	if len(topics) == 0 {
		b.sendText(chatID, "📚 Статей пока нет, загляните позже")
		return
	}

	var rows [][]tgbotapi.InlineKeyboardButton
	for _, t := range topics {
		title := t.Name
		if t.Emoji != "" {
			title = t.Emoji + " " + t.Name
		}
		rows = append(rows, tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData(title, fmt.Sprintf("articles:topic:%d", t.ID)),
		))
	}
	b.sendTextWithKeyboard(chatID, "📚 *Статьи*\n\nВыберите тему:", rows)
}

func (b *BotApp) handleArticlesCallback(callback *tgbotapi.CallbackQuery) {
	chatID := callback.Message.Chat.ID
	data := callback.Data

	switch {
	case strings.HasPrefix(data, "articles:topic:"):
		id, err := strconv.ParseUint(strings.TrimPrefix(data, "articles:topic:"), 10, 32)
		if err != nil {
			return
		}
		b.showArticlesByTopic(chatID, uint(id))

	case strings.HasPrefix(data, "articles:read:"):
		id, err := strconv.ParseUint(strings.TrimPrefix(data, "articles:read:"), 10, 32)
		if err != nil {
			return
		}
		b.showArticle(chatID, uint(id))

	case data == "articles:back_to_topics":
		b.showArticleTopics(chatID)
	}
}

func (b *BotApp) showArticlesByTopic(chatID int64, topicID uint) {
	topic, err := b.articleService.GetTopicByID(topicID)
	if err != nil || topic == nil {
		b.sendText(chatID, "❌ Тема не найдена")
		return
	}

	articles, err := b.articleService.ListArticlesByTopic(topicID)
	if err != nil {
		b.sendText(chatID, "❌ Ошибка при получении статей: "+err.Error())
		return
	}
	if len(articles) == 0 {
		b.sendText(chatID, "В этой теме пока нет статей")
		return
	}

	var rows [][]tgbotapi.InlineKeyboardButton
	for _, a := range articles {
		rows = append(rows, tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData(a.Title, fmt.Sprintf("articles:read:%d", a.ID)),
		))
	}
	rows = append(rows, tgbotapi.NewInlineKeyboardRow(
		tgbotapi.NewInlineKeyboardButtonData("⬅️ К темам", "articles:back_to_topics"),
	))

	b.sendTextWithKeyboard(chatID, fmt.Sprintf("📚 *%s*\n\nВыберите статью:", topic.Name), rows)
}

func (b *BotApp) showArticle(chatID int64, articleID uint) {
	article, err := b.articleService.GetArticleByID(articleID)
	if err != nil || article == nil {
		b.sendText(chatID, "❌ Статья не найдена")
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("📖 *%s*\n\n%s", article.Title, article.Content))
	if article.Author != "" {
		sb.WriteString("\n\n✍️ " + article.Author)
	}
	if article.PublicationDate != "" {
		sb.WriteString("\n📅 " + utils.FormatDate(article.PublicationDate))
	}
	if article.Sources != "" {
		sb.WriteString("\n\n🔗 *Источники:*\n" + article.Sources)
	}

	rows := [][]tgbotapi.InlineKeyboardButton{
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("⬅️ К статьям", fmt.Sprintf("articles:topic:%d", article.TopicID)),
			tgbotapi.NewInlineKeyboardButtonData("📚 К темам", "articles:back_to_topics"),
		),
	}

	// Длинные статьи отправляем несколькими сообщениями, кнопки — на последнем
	parts := splitMessage(sb.String(), 4000)
	for i, part := range parts {
		if i == len(parts)-1 {
			b.sendTextWithKeyboard(chatID, part, rows)
			continue
		}
		b.sendText(chatID, part)
	}
}
