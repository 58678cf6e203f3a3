package service

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/AsyaBav/DietPlanner/internal/models"
	"github.com/AsyaBav/DietPlanner/internal/repository"
)

type CartService struct {
	cartRepo repository.CartRepository
	planRepo repository.PlanRepository
	foodRepo repository.FoodRepository
}

func NewCartService(cartRepo repository.CartRepository, planRepo repository.PlanRepository, foodRepo repository.FoodRepository) *CartService {
	return &CartService{cartRepo: cartRepo, planRepo: planRepo, foodRepo: foodRepo}
}

// CartProduct — распознанный продукт из текста ингредиентов
type CartProduct struct {
	Name     string
	Quantity float64
	Unit     string
}

var (
	// "Куриная грудка - 150 г"
	ingredientDashPattern = regexp.MustCompile(`^(.+?)\s*[-–—]\s*(\d+(?:\.\d+)?)\s*(г|кг|мл|л|шт|ст\.л\.|ч\.л\.)`)
	// "Куриная грудка 150 г"
	ingredientSpacePattern = regexp.MustCompile(`^(.+?)\s+(\d+(?:\.\d+)?)\s*(г|кг|мл|л|шт|ст\.л\.|ч\.л\.)`)
	// "150 г куриной грудки"
	ingredientQuantityFirstPattern = regexp.MustCompile(`^(\d+(?:\.\d+)?)\s*(г|кг|мл|л|шт|ст\.л\.|ч\.л\.)\s+(.+)$`)

	bulletPattern = regexp.MustCompile(`^[•\-*]\s*`)
)

// ParseIngredients разбирает текст со списком ингредиентов (по строке
// на ингредиент) в продукты с количеством и единицей измерения.
// Крупные единицы приводятся к граммам и миллилитрам. Строки, которые
// не удалось разобрать, попадают в список с количеством 100 г.
func ParseIngredients(text string) []CartProduct {
	var products []CartProduct

	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		line = bulletPattern.ReplaceAllString(line, "")
		if line == "" {
			continue
		}

		var name, unit string
		var quantity float64
		parsed := false

		if m := ingredientDashPattern.FindStringSubmatch(line); m != nil {
			name, unit = m[1], m[3]
			quantity, _ = strconv.ParseFloat(m[2], 64)
			parsed = true
		} else if m := ingredientQuantityFirstPattern.FindStringSubmatch(line); m != nil {
			name, unit = m[3], m[2]
			quantity, _ = strconv.ParseFloat(m[1], 64)
			parsed = true
		} else if m := ingredientSpacePattern.FindStringSubmatch(line); m != nil {
			name, unit = m[1], m[3]
			quantity, _ = strconv.ParseFloat(m[2], 64)
			parsed = true
		}

		if !parsed {
			// Непонятный формат: берем строку целиком как название
			if len([]rune(line)) <= 2 {
				continue
			}
			name, quantity, unit = line, 100, "г"
		}

		quantity, unit = normalizeUnit(quantity, unit)
		products = append(products, CartProduct{
			Name:     capitalizeName(name),
			Quantity: quantity,
			Unit:     unit,
		})
	}

	return products
}

// normalizeUnit приводит кг к граммам, л к миллилитрам,
// ложки к граммам по кулинарным нормам
func normalizeUnit(quantity float64, unit string) (float64, string) {
	switch unit {
	case "кг":
		return quantity * 1000, "г"
	case "л":
		return quantity * 1000, "мл"
	case "ст.л.":
		return quantity * 15, "г"
	case "ч.л.":
		return quantity * 5, "г"
	}
	return quantity, unit
}

func capitalizeName(name string) string {
	name = strings.TrimSpace(name)
	runes := []rune(name)
	if len(runes) == 0 {
		return name
	}
	return strings.ToUpper(string(runes[0])) + string(runes[1:])
}

// MergeProducts объединяет одинаковые продукты, складывая количество.
// Одинаковое название с другой единицей измерения становится
// отдельной позицией с единицей в названии.
func MergeProducts(products []CartProduct) []CartProduct {
	type key struct{ name, unit string }
	index := make(map[key]int)
	seenNames := make(map[string]string)
	var merged []CartProduct

	for _, p := range products {
		lower := strings.ToLower(p.Name)
		k := key{lower, p.Unit}
		if i, ok := index[k]; ok {
			merged[i].Quantity += p.Quantity
			continue
		}
		if prevUnit, ok := seenNames[lower]; ok && prevUnit != p.Unit {
			p.Name = fmt.Sprintf("%s (%s)", p.Name, p.Unit)
		} else {
			seenNames[lower] = p.Unit
		}
		index[k] = len(merged)
		merged = append(merged, p)
	}

	return merged
}

// GenerateCart собирает корзину на days дней вперед из рецептов плана
// питания и записей дневника. Старая корзина очищается.
func (s *CartService) GenerateCart(userID int64, days int) ([]*models.ShoppingCartItem, error) {
	if days < 1 {
		return nil, fmt.Errorf("число дней должно быть положительным")
	}

	if err := s.cartRepo.DeleteByUser(userID); err != nil {
		return nil, err
	}

	period := "на сегодня"
	if days > 1 {
		period = fmt.Sprintf("на %d дн.", days)
	}

	var products []CartProduct
	for i := 0; i < days; i++ {
		date := time.Now().AddDate(0, 0, i).Format("2006-01-02")

		plan, err := s.planRepo.FindByUserAndDate(userID, date)
		if err != nil {
			return nil, err
		}
		for _, entry := range plan {
			products = append(products, ParseIngredients(entry.Recipe.Ingredients)...)
		}

		entries, err := s.foodRepo.FindByUserAndDate(userID, date)
		if err != nil {
			return nil, err
		}
		for _, e := range entries {
			// Вес порции оцениваем по калорийности, но не меньше 50 г
			grams := math.Max(50, e.Calories/3)
			products = append(products, CartProduct{
				Name:     capitalizeName(e.FoodName),
				Quantity: grams,
				Unit:     "г",
			})
		}
	}

	if len(products) == 0 {
		return nil, fmt.Errorf("нет данных для корзины: добавьте рацион или записи в дневник")
	}

	var items []*models.ShoppingCartItem
	for _, p := range MergeProducts(products) {
		item, err := s.cartRepo.Create(&models.ShoppingCartItem{
			UserID:      userID,
			ProductName: p.Name,
			Quantity:    p.Quantity,
			Unit:        p.Unit,
			Period:      period,
		})
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}

	return items, nil
}

// AddManualItem добавляет продукт в корзину вручную.
// Строка разбирается теми же правилами, что и ингредиенты рецептов.
func (s *CartService) AddManualItem(userID int64, text string) (*models.ShoppingCartItem, error) {
	products := ParseIngredients(text)
	if len(products) == 0 {
		return nil, fmt.Errorf("не удалось распознать продукт")
	}

	p := products[0]
	return s.cartRepo.Create(&models.ShoppingCartItem{
		UserID:      userID,
		ProductName: p.Name,
		Quantity:    p.Quantity,
		Unit:        p.Unit,
		Period:      "добавлено вручную",
	})
}

// ListItems возвращает корзину пользователя
func (s *CartService) ListItems(userID int64) ([]*models.ShoppingCartItem, error) {
	return s.cartRepo.FindByUser(userID)
}

// TogglePurchased отмечает продукт купленным или снимает отметку
func (s *CartService) TogglePurchased(itemID uint) (bool, error) {
	item, err := s.cartRepo.FindByID(itemID)
	if err != nil {
		return false, err
	}

	item.IsPurchased = !item.IsPurchased
	if err := s.cartRepo.Update(item); err != nil {
		return false, err
	}
	return item.IsPurchased, nil
}

// DeleteItem удаляет продукт из корзины
func (s *CartService) DeleteItem(itemID uint) error {
	return s.cartRepo.Delete(itemID)
}

// ClearCart очищает корзину пользователя
func (s *CartService) ClearCart(userID int64) error {
	return s.cartRepo.DeleteByUser(userID)
}
