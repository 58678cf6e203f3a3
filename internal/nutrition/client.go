package nutrition

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// DefaultBaseURL — адрес Nutritionix API
const DefaultBaseURL = "https://trackapi.nutritionix.com/v2"

// Client — клиент Nutritionix API.
// Авторизация через заголовки x-app-id / x-app-key.
type Client struct {
	baseURL string
	appID   string
	apiKey  string
	http    *http.Client
}

// Food — найденный продукт (обычный или брендированный)
type Food struct {
	FoodName    string
	BrandName   string
	ServingUnit string
	ServingQty  float64
	FoodType    string // "common" или "branded"
	NixItemID   string
}

// Nutrients — пищевая ценность продукта
type Nutrients struct {
	FoodName           string
	BrandName          string
	ServingQty         float64
	ServingUnit        string
	ServingWeightGrams float64
	Calories           float64
	Protein            float64
	Fat                float64
	Carbs              float64
}

func NewClient(appID, apiKey string) *Client {
	return &Client{
		baseURL: DefaultBaseURL,
		appID:   appID,
		apiKey:  apiKey,
		http:    &http.Client{Timeout: 10 * time.Second},
	}
}

// NewClientWithBaseURL используется в тестах для подмены адреса API
func NewClientWithBaseURL(appID, apiKey, baseURL string) *Client {
	c := NewClient(appID, apiKey)
	c.baseURL = baseURL
	return c
}

func (c *Client) doRequest(method, endpoint string, body interface{}, out interface{}) error {
	if c.appID == "" || c.apiKey == "" {
		return fmt.Errorf("API ключи Nutritionix не настроены")
	}

	var reqBody *bytes.Buffer
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reqBody = bytes.NewBuffer(data)
	} else {
		reqBody = bytes.NewBuffer(nil)
	}

	req, err := http.NewRequest(method, c.baseURL+endpoint, reqBody)
	if err != nil {
		return err
	}

	req.Header.Set("x-app-id", c.appID)
	req.Header.Set("x-app-key", c.apiKey)
	req.Header.Set("x-remote-user-id", "0")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("ошибка при запросе к Nutritionix: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("nutritionix: unexpected status %d", resp.StatusCode)
	}

	return json.NewDecoder(resp.Body).Decode(out)
}

type instantResponse struct {
	Common []struct {
		FoodName    string  `json:"food_name"`
		ServingUnit string  `json:"serving_unit"`
		ServingQty  float64 `json:"serving_qty"`
		TagID       string  `json:"tag_id"`
	} `json:"common"`
	Branded []struct {
		FoodName    string  `json:"food_name"`
		BrandName   string  `json:"brand_name"`
		ServingUnit string  `json:"serving_unit"`
		ServingQty  float64 `json:"serving_qty"`
		NixItemID   string  `json:"nix_item_id"`
	} `json:"branded"`
}

type nutrientsResponse struct {
	Foods []struct {
		FoodName           string  `json:"food_name"`
		BrandName          string  `json:"brand_name"`
		ServingQty         float64 `json:"serving_qty"`
		ServingUnit        string  `json:"serving_unit"`
		ServingWeightGrams float64 `json:"serving_weight_grams"`
		Calories           float64 `json:"nf_calories"`
		Protein            float64 `json:"nf_protein"`
		Fat                float64 `json:"nf_total_fat"`
		Carbs              float64 `json:"nf_total_carbohydrate"`
	} `json:"foods"`
}

// SearchFood ищет продукты по запросу пользователя
func (c *Client) SearchFood(query string, limit int) ([]Food, error) {
	if query == "" {
		return nil, nil
	}

	var resp instantResponse
	endpoint := "/search/instant?query=" + url.QueryEscape(query)
	if err := c.doRequest(http.MethodGet, endpoint, nil, &resp); err != nil {
		return nil, err
	}

	var results []Food
	for _, f := range resp.Common {
		if len(results) >= limit {
			break
		}
		results = append(results, Food{
			FoodName:    f.FoodName,
			ServingUnit: f.ServingUnit,
			ServingQty:  f.ServingQty,
			FoodType:    "common",
		})
	}
	for _, f := range resp.Branded {
		if len(results) >= limit {
			break
		}
		results = append(results, Food{
			FoodName:    f.FoodName,
			BrandName:   f.BrandName,
			ServingUnit: f.ServingUnit,
			ServingQty:  f.ServingQty,
			FoodType:    "branded",
			NixItemID:   f.NixItemID,
		})
	}

	return results, nil
}

// GetFoodNutrients получает пищевую ценность обычного продукта
func (c *Client) GetFoodNutrients(foodName string) (*Nutrients, error) {
	var resp nutrientsResponse
	err := c.doRequest(http.MethodPost, "/natural/nutrients",
		map[string]string{"query": foodName}, &resp)
	if err != nil {
		return nil, err
	}

	if len(resp.Foods) == 0 {
		return nil, nil
	}

	f := resp.Foods[0]
	return &Nutrients{
		FoodName:           f.FoodName,
		ServingQty:         f.ServingQty,
		ServingUnit:        f.ServingUnit,
		ServingWeightGrams: f.ServingWeightGrams,
		Calories:           f.Calories,
		Protein:            f.Protein,
		Fat:                f.Fat,
		Carbs:              f.Carbs,
	}, nil
}

// GetBrandedFoodInfo получает пищевую ценность брендированного продукта по ID
func (c *Client) GetBrandedFoodInfo(nixItemID string) (*Nutrients, error) {
	var resp nutrientsResponse
	endpoint := "/search/item?nix_item_id=" + url.QueryEscape(nixItemID)
	if err := c.doRequest(http.MethodGet, endpoint, nil, &resp); err != nil {
		return nil, err
	}

	if len(resp.Foods) == 0 {
		return nil, nil
	}

	f := resp.Foods[0]
	return &Nutrients{
		FoodName:           f.FoodName,
		BrandName:          f.BrandName,
		ServingQty:         f.ServingQty,
		ServingUnit:        f.ServingUnit,
		ServingWeightGrams: f.ServingWeightGrams,
		Calories:           f.Calories,
		Protein:            f.Protein,
		Fat:                f.Fat,
		Carbs:              f.Carbs,
	}, nil
}

// GetNutrientsFromText считает суммарную питательность по текстовому описанию еды
func (c *Client) GetNutrientsFromText(text string) (*Nutrients, error) {
	var resp nutrientsResponse
	err := c.doRequest(http.MethodPost, "/natural/nutrients",
		map[string]string{"query": text}, &resp)
	if err != nil {
		return nil, err
	}

	if len(resp.Foods) == 0 {
		return nil, nil
	}

	total := &Nutrients{}
	names := make([]string, 0, len(resp.Foods))
	for _, f := range resp.Foods {
		total.Calories += f.Calories
		total.Protein += f.Protein
		total.Fat += f.Fat
		total.Carbs += f.Carbs
		total.ServingWeightGrams += f.ServingWeightGrams
		names = append(names, f.FoodName)
	}

	total.FoodName = strings.Join(names, ", ")
	return total, nil
}
