package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCalculateBMI(t *testing.T) {
	assert.InDelta(t, 22.86, CalculateBMI(70, 175), 0.01)
	assert.InDelta(t, 20.76, CalculateBMI(60, 170), 0.01)
}

func TestGetBMICategory(t *testing.T) {
	cases := []struct {
		bmi      float64
		category string
	}{
		{15.9, "🚨 Выраженный дефицит массы тела"},
		{17.0, "⚠️ Недостаточная масса тела"},
		{22.0, "✅ Нормальная масса тела"},
		{27.5, "⚠️ Избыточная масса тела (предожирение)"},
		{32.0, "🚨 Ожирение I степени"},
		{37.0, "🚨 Ожирение II степени"},
		{45.0, "🚨 Ожирение III степени"},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.category, GetBMICategory(tc.bmi))
	}
}

func TestCalculateTDEE(t *testing.T) {
	// Мужчина: 10*70 + 6.25*175 - 5*25 + 5 = 1673.75, сидячий x1.2
	tdee := CalculateTDEE(70, 175, 25, "Сидячий образ жизни", "Мужчина")
	assert.InDelta(t, 2008.5, tdee, 0.01)

	// Женщина: 10*60 + 6.25*170 - 5*25 - 161 = 1376.5, средняя x1.55
	tdee = CalculateTDEE(60, 170, 25, "Средняя активность (3-5 тренировок)", "Женщина")
	assert.InDelta(t, 2133.575, tdee, 0.01)

	// Неизвестный уровень активности — минимальный множитель
	tdee = CalculateTDEE(70, 175, 25, "неизвестно", "Мужчина")
	assert.InDelta(t, 2008.5, tdee, 0.01)
}

func TestGetGoalCalories(t *testing.T) {
	assert.InDelta(t, 1700, GetGoalCalories(2000, "🔻 Похудение"), 0.01)
	assert.InDelta(t, 2300, GetGoalCalories(2000, "🔺 Набор веса"), 0.01)
	assert.InDelta(t, 2000, GetGoalCalories(2000, "🔄 Поддержание текущего веса"), 0.01)
	assert.InDelta(t, 2000, GetGoalCalories(2000, "другое"), 0.01)
}

func TestCalculateMacronutrients(t *testing.T) {
	m := CalculateMacronutrients(2000, 70, "🔻 Похудение")

	// Белок 2.2 г/кг
	assert.Equal(t, 154, m.Protein)
	assert.InDelta(t, 616, m.ProteinCal, 0.01)

	// Жиры — 25% калорийности
	assert.Equal(t, 56, m.Fat)
	assert.InDelta(t, 500, m.FatCal, 0.01)

	// Углеводы — остаток
	assert.InDelta(t, 884, m.CarbsCal, 0.01)
	assert.Equal(t, 221, m.Carbs)

	// Набор веса — 1.8 г/кг
	m = CalculateMacronutrients(3000, 70, "🔺 Набор веса")
	assert.Equal(t, 126, m.Protein)

	// Поддержание — 2.0 г/кг
	m = CalculateMacronutrients(2500, 70, "🔄 Поддержание текущего веса")
	assert.Equal(t, 140, m.Protein)
}

func TestGetProgressPercentage(t *testing.T) {
	assert.Equal(t, 50, GetProgressPercentage(1000, 2000))
	assert.Equal(t, 100, GetProgressPercentage(2500, 2000))
	assert.Equal(t, 0, GetProgressPercentage(100, 0))
}

func TestFormatDate(t *testing.T) {
	assert.Equal(t, "30.08.2026", FormatDate("2026-08-30"))
	assert.Equal(t, "не дата", FormatDate("не дата"))
}
