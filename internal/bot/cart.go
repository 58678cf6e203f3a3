package bot

import (
	"fmt"
	"strconv"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// ==================== Продуктовая корзина ====================

func (b *BotApp) showCart(chatID, userID int64) {
	items, err := b.cartService.ListItems(userID)
	if err != nil {
		b.sendText(chatID, "❌ Ошибка при получении корзины: "+err.Error())
		return
	}

	if len(items) == 0 {
		rows := [][]tgbotapi.InlineKeyboardButton{
			tgbotapi.NewInlineKeyboardRow(
				tgbotapi.NewInlineKeyboardButtonData("📅 На сегодня", "cart:generate:1"),
				tgbotapi.NewInlineKeyboardButtonData("📅 На 3 дня", "cart:generate:3"),
			),
			tgbotapi.NewInlineKeyboardRow(
				tgbotapi.NewInlineKeyboardButtonData("📅 На неделю", "cart:generate:7"),
				tgbotapi.NewInlineKeyboardButtonData("✏️ Добавить вручную", "cart:add_manual"),
			),
		}
		b.sendTextWithKeyboard(chatID, `🛒 *Продуктовая корзина*

Корзина пуста. Соберите ее из рациона и дневника или добавьте продукты вручную 👇`, rows)
		return
	}

	var sb strings.Builder
	sb.WriteString("🛒 *Продуктовая корзина*")
	if items[0].Period != "" {
		sb.WriteString(fmt.Sprintf(" (%s)", items[0].Period))
	}
	sb.WriteString("\n\n")

	var rows [][]tgbotapi.InlineKeyboardButton
	for i, item := range items {
		mark := "⬜"
		if item.IsPurchased {
			mark = "✅"
		}
		sb.WriteString(fmt.Sprintf("%s %d. %s — %.0f %s\n",
			mark, i+1, item.ProductName, item.Quantity, item.Unit))

		rows = append(rows, tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData(
				fmt.Sprintf("%s %s", mark, item.ProductName),
				fmt.Sprintf("cart:mark:%d", item.ID),
			),
			tgbotapi.NewInlineKeyboardButtonData("🗑", fmt.Sprintf("cart:delete:%d", item.ID)),
		))
	}

	rows = append(rows,
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("🔄 Пересобрать", "cart:regenerate"),
			tgbotapi.NewInlineKeyboardButtonData("✏️ Добавить", "cart:add_manual"),
		),
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("🗑 Очистить корзину", "cart:clear"),
		),
	)

	b.sendTextWithKeyboard(chatID, sb.String(), rows)
}

func (b *BotApp) handleCartCallback(callback *tgbotapi.CallbackQuery) {
	chatID := callback.Message.Chat.ID
	userID := callback.From.ID
	data := callback.Data

	switch {
	case strings.HasPrefix(data, "cart:generate:"):
		days, err := strconv.Atoi(strings.TrimPrefix(data, "cart:generate:"))
		if err != nil {
			return
		}
		if _, err := b.cartService.GenerateCart(userID, days); err != nil {
			b.sendText(chatID, "❌ "+err.Error())
			return
		}
		b.showCart(chatID, userID)

	case data == "cart:regenerate":
		rows := [][]tgbotapi.InlineKeyboardButton{
			tgbotapi.NewInlineKeyboardRow(
				tgbotapi.NewInlineKeyboardButtonData("📅 На сегодня", "cart:generate:1"),
				tgbotapi.NewInlineKeyboardButtonData("📅 На 3 дня", "cart:generate:3"),
				tgbotapi.NewInlineKeyboardButtonData("📅 На неделю", "cart:generate:7"),
			),
		}
		b.sendTextWithKeyboard(chatID, "На какой период собрать корзину?", rows)

	case data == "cart:add_manual":
		b.userStates[userID] = &UserState{Action: "cart_manual"}
		b.sendText(chatID, "Введите продукт, например: _Молоко - 1 л_ или просто _Хлеб_")

	case strings.HasPrefix(data, "cart:mark:"):
		id, err := strconv.ParseUint(strings.TrimPrefix(data, "cart:mark:"), 10, 32)
		if err != nil {
			return
		}
		if _, err := b.cartService.TogglePurchased(uint(id)); err != nil {
			b.sendText(chatID, "❌ "+err.Error())
			return
		}
		b.showCart(chatID, userID)

	case strings.HasPrefix(data, "cart:delete:"):
		id, err := strconv.ParseUint(strings.TrimPrefix(data, "cart:delete:"), 10, 32)
		if err != nil {
			return
		}
		if err := b.cartService.DeleteItem(uint(id)); err != nil {
			b.sendText(chatID, "❌ "+err.Error())
			return
		}
		b.showCart(chatID, userID)

	case data == "cart:clear":
		if err := b.cartService.ClearCart(userID); err != nil {
			b.sendText(chatID, "❌ "+err.Error())
			return
		}
		b.sendText(chatID, "🗑 Корзина очищена")
		b.showCart(chatID, userID)
	}
}

func (b *BotApp) handleCartManualInput(chatID, userID int64, text string) {
	item, err := b.cartService.AddManualItem(userID, text)
	if err != nil {
		b.sendText(chatID, "❌ "+err.Error())
		return
	}
	delete(b.userStates, userID)
	b.sendText(chatID, fmt.Sprintf("✅ %s (%.0f %s) добавлен в корзину",
		item.ProductName, item.Quantity, item.Unit))
	b.showCart(chatID, userID)
}
