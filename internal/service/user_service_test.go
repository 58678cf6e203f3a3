package service

import (
	"testing"

	"github.com/AsyaBav/DietPlanner/internal/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newUserService(t *testing.T) *UserService {
	return NewUserService(repository.NewUserRepo(setupTestDB(t)))
}

func validRegisterDTO() RegisterUserDTO {
	return RegisterUserDTO{
		TelegramID:    100,
		Name:          "Анна",
		Age:           25,
		Gender:        "Женщина",
		Height:        170,
		Weight:        60,
		ActivityLevel: "Средняя активность (3-5 тренировок)",
		Goal:          "🔻 Похудение",
	}
}

func TestRegisterUser(t *testing.T) {
	svc := newUserService(t)

	user, err := svc.RegisterUser(validRegisterDTO())
	require.NoError(t, err)

	assert.True(t, user.RegistrationComplete)
	assert.Equal(t, 2000, user.WaterGoal)

	// BMR = 10*60 + 6.25*170 - 5*25 - 161 = 1376.5; TDEE = 1376.5*1.55
	// Цель похудение: *0.85
	assert.InDelta(t, 1813.0, user.GoalCalories, 1.0)

	// Белок 2.2 г/кг
	assert.Equal(t, 132, user.Protein)
	assert.Greater(t, user.Fat, 0)
	assert.Greater(t, user.Carbs, 0)
}

func TestRegisterUserValidation(t *testing.T) {
	svc := newUserService(t)

	cases := []struct {
		name   string
		mutate func(*RegisterUserDTO)
	}{
		{"пустое имя", func(d *RegisterUserDTO) { d.Name = "  " }},
		{"слишком длинное имя", func(d *RegisterUserDTO) {
			long := ""
			for i := 0; i < 51; i++ {
				long += "я"
			}
			d.Name = long
		}},
		{"возраст меньше 12", func(d *RegisterUserDTO) { d.Age = 11 }},
		{"возраст больше 120", func(d *RegisterUserDTO) { d.Age = 121 }},
		{"рост меньше 100", func(d *RegisterUserDTO) { d.Height = 99 }},
		{"рост больше 250", func(d *RegisterUserDTO) { d.Height = 251 }},
		{"вес меньше 30", func(d *RegisterUserDTO) { d.Weight = 29 }},
		{"вес больше 300", func(d *RegisterUserDTO) { d.Weight = 301 }},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			dto := validRegisterDTO()
			tc.mutate(&dto)
			_, err := svc.RegisterUser(dto)
			assert.Error(t, err)
		})
	}
}

func TestRegisterUserTwiceUpdatesProfile(t *testing.T) {
	svc := newUserService(t)

	first, err := svc.RegisterUser(validRegisterDTO())
	require.NoError(t, err)

	dto := validRegisterDTO()
	dto.Weight = 65
	second, err := svc.RegisterUser(dto)
	require.NoError(t, err)

	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, 65.0, second.Weight)
}

func TestGetUserByTelegramIDNotFound(t *testing.T) {
	svc := newUserService(t)

	user, err := svc.GetUserByTelegramID(999)
	require.NoError(t, err)
	assert.Nil(t, user)
}

func TestUpdateWeightRecalculatesTargets(t *testing.T) {
	svc := newUserService(t)

	user, err := svc.RegisterUser(validRegisterDTO())
	require.NoError(t, err)
	oldCalories := user.GoalCalories

	updated, err := svc.UpdateWeight(100, 70)
	require.NoError(t, err)
	assert.Equal(t, 70.0, updated.Weight)
	assert.Greater(t, updated.GoalCalories, oldCalories)

	_, err = svc.UpdateWeight(100, 10)
	assert.Error(t, err)
}

func TestUpdateGoal(t *testing.T) {
	svc := newUserService(t)

	_, err := svc.RegisterUser(validRegisterDTO())
	require.NoError(t, err)

	updated, err := svc.UpdateGoal(100, "🔺 Набор веса")
	require.NoError(t, err)
	assert.Equal(t, "🔺 Набор веса", updated.Goal)

	_, err = svc.UpdateGoal(100, "что-то другое")
	assert.Error(t, err)
}

func TestSetWaterGoal(t *testing.T) {
	svc := newUserService(t)

	_, err := svc.RegisterUser(validRegisterDTO())
	require.NoError(t, err)

	require.NoError(t, svc.SetWaterGoal(100, 2500))
	user, err := svc.GetUserByTelegramID(100)
	require.NoError(t, err)
	assert.Equal(t, 2500, user.WaterGoal)

	assert.Error(t, svc.SetWaterGoal(100, 400))
	assert.Error(t, svc.SetWaterGoal(100, 10001))
}
