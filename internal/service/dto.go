package service

// User DTOs
type RegisterUserDTO struct {
	TelegramID    int64
	Name          string
	Age           int
	Gender        string
	Height        float64
	Weight        float64
	ActivityLevel string
	Goal          string
}

// Diary DTOs
type AddFoodEntryDTO struct {
	UserID   int64
	Date     string
	MealType string
	FoodName string
	Calories float64
	Protein  float64
	Fat      float64
	Carbs    float64
	Weight   float64
}

// Recipe DTOs
type CreateRecipeDTO struct {
	UserID       int64
	Name         string
	Ingredients  string
	Instructions string
	Calories     float64
	Protein      float64
	Fat          float64
	Carbs        float64
}

// Article DTOs
type CreateTopicDTO struct {
	Name  string
	Emoji string
}

type CreateArticleDTO struct {
	TopicID         uint
	Title           string
	Content         string
	Sources         string
	Author          string
	PublicationDate string
}

type UpdateArticleDTO struct {
	TopicID         uint
	Title           string
	Content         string
	Sources         string
	Author          string
	PublicationDate string
}

// Nutritionist DTOs
type CreateNutritionistDTO struct {
	FullName         string
	Education        string
	Experience       string
	Specialization   string
	Approach         string
	TelegramUsername string
	Email            string
	Phone            string
	WorkHours        string
	Price            string
}

type UpdateNutritionistDTO struct {
	FullName         string
	Education        string
	Experience       string
	Specialization   string
	Approach         string
	TelegramUsername string
	Email            string
	Phone            string
	WorkHours        string
	Price            string
}
