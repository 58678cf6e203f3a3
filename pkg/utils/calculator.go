package utils

import (
	"fmt"
	"math"
	"strings"
)

// Уровни активности и их множители к базовому обмену
var ActivityLevels = map[string]float64{
	"Сидячий образ жизни": 1.2,
	"Легкая активность (1-2 тренировки в неделю)":  1.375,
	"Средняя активность (3-5 тренировок)":          1.55,
	"Высокая активность (6-7 тренировок)":          1.725,
	"Атлет (ежедневные интенсивные тренировки)":    1.9,
}

// Цели пользователя и множители к TDEE
var UserGoals = map[string]float64{
	"🔻 Похудение":                  0.85,
	"🔺 Набор веса":                 1.15,
	"🔄 Поддержание текущего веса": 1.0,
}

// Типы приемов пищи
var MealTypes = []string{"Завтрак", "Обед", "Ужин", "Перекус"}

// Macros — распределение макронутриентов в граммах и калориях
type Macros struct {
	Protein    int
	ProteinCal float64
	Fat        int
	FatCal     float64
	Carbs      int
	CarbsCal   float64
}

// CalculateBMI рассчитывает индекс массы тела: вес (кг) / (рост (м))²
func CalculateBMI(weight, height float64) float64 {
	heightM := height / 100
	return weight / (heightM * heightM)
}

// GetBMICategory возвращает категорию ИМТ
func GetBMICategory(bmi float64) string {
	switch {
	case bmi < 16:
		return "🚨 Выраженный дефицит массы тела"
	case bmi < 18.5:
		return "⚠️ Недостаточная масса тела"
	case bmi < 25:
		return "✅ Нормальная масса тела"
	case bmi < 30:
		return "⚠️ Избыточная масса тела (предожирение)"
	case bmi < 35:
		return "🚨 Ожирение I степени"
	case bmi < 40:
		return "🚨 Ожирение II степени"
	default:
		return "🚨 Ожирение III степени"
	}
}

// CalculateTDEE рассчитывает общий расход энергии.
// Базовый обмен по формуле Миффлина-Сан Жеора, затем множитель активности.
func CalculateTDEE(weight, height float64, age int, activityLevel, gender string) float64 {
	var bmr float64
	if gender == "Мужчина" {
		bmr = 10*weight + 6.25*height - 5*float64(age) + 5
	} else {
		bmr = 10*weight + 6.25*height - 5*float64(age) - 161
	}

	multiplier, ok := ActivityLevels[activityLevel]
	if !ok {
		multiplier = 1.2
	}

	return bmr * multiplier
}

// GetGoalCalories определяет целевые калории в зависимости от цели
func GetGoalCalories(tdee float64, goal string) float64 {
	multiplier, ok := UserGoals[goal]
	if !ok {
		multiplier = 1.0
	}
	return tdee * multiplier
}

// CalculateMacronutrients рассчитывает распределение БЖУ.
// Белок задается в г/кг веса по цели, жиры — 25% калорийности, остаток — углеводы.
func CalculateMacronutrients(calories, weight float64, goal string) Macros {
	var proteinPerKg float64
	switch goal {
	case "🔻 Похудение":
		proteinPerKg = 2.2
	case "🔺 Набор веса":
		proteinPerKg = 1.8
	default:
		proteinPerKg = 2.0
	}

	protein := int(math.Round(weight * proteinPerKg))
	proteinCal := float64(protein) * 4

	fatCal := calories * 0.25
	fat := int(math.Round(fatCal / 9))

	carbsCal := calories - proteinCal - fatCal
	carbs := int(math.Round(carbsCal / 4))

	return Macros{
		Protein:    protein,
		ProteinCal: proteinCal,
		Fat:        fat,
		FatCal:     fatCal,
		Carbs:      carbs,
		CarbsCal:   carbsCal,
	}
}

// GetProgressPercentage вычисляет процент выполнения цели (0-100)
func GetProgressPercentage(current, goal float64) int {
	if goal <= 0 {
		return 0
	}
	percentage := int(current / goal * 100)
	if percentage > 100 {
		return 100
	}
	return percentage
}

// FormatDate переводит дату из YYYY-MM-DD в DD.MM.YYYY
func FormatDate(dateStr string) string {
	parts := strings.Split(dateStr, "-")
	if len(parts) != 3 {
		return dateStr
	}
	return fmt.Sprintf("%s.%s.%s", parts[2], parts[1], parts[0])
}
