package nutrition

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestServer(t *testing.T, handler http.HandlerFunc) (*Client, *httptest.Server) {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	return NewClientWithBaseURL("test-app", "test-key", server.URL), server
}

func TestDoRequestSetsAuthHeaders(t *testing.T) {
	client, _ := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "test-app", r.Header.Get("x-app-id"))
		assert.Equal(t, "test-key", r.Header.Get("x-app-key"))
		assert.Equal(t, "0", r.Header.Get("x-remote-user-id"))
		w.Write([]byte(`{"common": [], "branded": []}`))
	})

	_, err := client.SearchFood("apple", 5)
	require.NoError(t, err)
}

func TestSearchFood(t *testing.T) {
	client, _ := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/search/instant", r.URL.Path)
		assert.Equal(t, "apple", r.URL.Query().Get("query"))
		w.Write([]byte(`{
			"common": [
				{"food_name": "apple", "serving_unit": "medium", "serving_qty": 1},
				{"food_name": "apple juice", "serving_unit": "cup", "serving_qty": 1}
			],
			"branded": [
				{"food_name": "Apple Pie", "brand_name": "TestBrand", "nix_item_id": "abc123"}
			]
		}`))
	})

	foods, err := client.SearchFood("apple", 5)
	require.NoError(t, err)
	require.Len(t, foods, 3)

	assert.Equal(t, "apple", foods[0].FoodName)
	assert.Equal(t, "common", foods[0].FoodType)
	assert.Equal(t, "branded", foods[2].FoodType)
	assert.Equal(t, "abc123", foods[2].NixItemID)
}

func TestSearchFoodRespectsLimit(t *testing.T) {
	client, _ := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{
			"common": [
				{"food_name": "a"}, {"food_name": "b"}, {"food_name": "c"}
			],
			"branded": []
		}`))
	})

	foods, err := client.SearchFood("x", 2)
	require.NoError(t, err)
	assert.Len(t, foods, 2)
}

func TestGetFoodNutrients(t *testing.T) {
	client, _ := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/natural/nutrients", r.URL.Path)
		w.Write([]byte(`{
			"foods": [{
				"food_name": "banana",
				"serving_qty": 1,
				"serving_unit": "medium",
				"serving_weight_grams": 118,
				"nf_calories": 105,
				"nf_protein": 1.3,
				"nf_total_fat": 0.4,
				"nf_total_carbohydrate": 27
			}]
		}`))
	})

	n, err := client.GetFoodNutrients("banana")
	require.NoError(t, err)
	require.NotNil(t, n)

	assert.Equal(t, "banana", n.FoodName)
	assert.InDelta(t, 105, n.Calories, 0.01)
	assert.InDelta(t, 118, n.ServingWeightGrams, 0.01)
}

func TestGetNutrientsFromTextSumsFoods(t *testing.T) {
	client, _ := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{
			"foods": [
				{"food_name": "apple", "nf_calories": 95, "nf_protein": 0.5, "nf_total_fat": 0.3, "nf_total_carbohydrate": 25, "serving_weight_grams": 182},
				{"food_name": "banana", "nf_calories": 105, "nf_protein": 1.3, "nf_total_fat": 0.4, "nf_total_carbohydrate": 27, "serving_weight_grams": 118}
			]
		}`))
	})

	n, err := client.GetNutrientsFromText("apple and banana")
	require.NoError(t, err)
	require.NotNil(t, n)

	assert.Equal(t, "apple, banana", n.FoodName)
	assert.InDelta(t, 200, n.Calories, 0.01)
	assert.InDelta(t, 1.8, n.Protein, 0.01)
	assert.InDelta(t, 300, n.ServingWeightGrams, 0.01)
}

func TestGetNutrientsFromTextEmptyResponse(t *testing.T) {
	client, _ := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"foods": []}`))
	})

	n, err := client.GetNutrientsFromText("абракадабра")
	require.NoError(t, err)
	assert.Nil(t, n)
}

func TestRequestWithoutKeys(t *testing.T) {
	client := NewClient("", "")

	_, err := client.SearchFood("apple", 5)
	assert.Error(t, err)
}

func TestUnexpectedStatus(t *testing.T) {
	client, _ := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	})

	_, err := client.GetFoodNutrients("banana")
	assert.Error(t, err)
}

func TestGetBrandedFoodInfo(t *testing.T) {
	client, _ := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/search/item", r.URL.Path)
		assert.Equal(t, "abc123", r.URL.Query().Get("nix_item_id"))
		w.Write([]byte(`{
			"foods": [{
				"food_name": "Apple Pie",
				"brand_name": "TestBrand",
				"nf_calories": 320
			}]
		}`))
	})

	n, err := client.GetBrandedFoodInfo("abc123")
	require.NoError(t, err)
	require.NotNil(t, n)
	assert.Equal(t, "TestBrand", n.BrandName)
	assert.InDelta(t, 320, n.Calories, 0.01)
}
