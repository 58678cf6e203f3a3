package bot

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestParseAdminIDs(t *testing.T) {
	assert.Empty(t, ParseAdminIDs(""))
	assert.Equal(t, []int64{123}, ParseAdminIDs("123"))
	assert.Equal(t, []int64{1, 2, 3}, ParseAdminIDs("1, 2,3"))

	// Мусор пропускается
	assert.Equal(t, []int64{42}, ParseAdminIDs("abc,42"))
}

func TestShiftDate(t *testing.T) {
	assert.Equal(t, "2026-08-29", shiftDate("2026-08-30", -1))
	assert.Equal(t, "2026-09-01", shiftDate("2026-08-31", 1))

	// Переход через месяц назад
	assert.Equal(t, "2026-07-31", shiftDate("2026-08-01", -1))

	// Невалидная дата — возвращаемся на сегодня
	assert.Equal(t, time.Now().Format("2006-01-02"), shiftDate("мусор", 1))
}

func TestSplitMessage(t *testing.T) {
	// Короткий текст не режется
	assert.Equal(t, []string{"привет"}, splitMessage("привет", 100))

	// Режем по границе абзаца
	text := strings.Repeat("а", 50) + "\n" + strings.Repeat("б", 50)
	parts := splitMessage(text, 60)
	assert.Equal(t, []string{strings.Repeat("а", 50), strings.Repeat("б", 50)}, parts)

	// Без переносов — режем жестко по лимиту
	parts = splitMessage(strings.Repeat("в", 25), 10)
	assert.Len(t, parts, 3)
	assert.Equal(t, strings.Repeat("в", 10), parts[0])
	assert.Equal(t, strings.Repeat("в", 5), parts[2])
}

func TestProgressBar(t *testing.T) {
	assert.Equal(t, "⬜⬜⬜⬜⬜⬜⬜⬜⬜⬜", progressBar(0))
	assert.Equal(t, "🟦🟦🟦🟦🟦⬜⬜⬜⬜⬜", progressBar(50))
	assert.Equal(t, "🟦🟦🟦🟦🟦🟦🟦🟦🟦🟦", progressBar(100))
	assert.Equal(t, "🟦🟦⬜⬜⬜⬜⬜⬜⬜⬜", progressBar(25))
}
