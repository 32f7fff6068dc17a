package database

import (
	"context"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/tapi-calorie/tapi/internal/infra/database/models"
)

func TestLoadExampleDataIsIdempotent(t *testing.T) {
	db, err := gorm.Open(sqlite.Open("file::memory:?_pragma=foreign_keys(1)"), &gorm.Config{TranslateError: true})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	require.NoError(t, MigratePostgres(db))

	now := time.Date(2024, 5, 1, 8, 0, 0, 0, time.UTC)
	ctx := context.Background()
	require.NoError(t, LoadExampleData(ctx, db, now))
	require.NoError(t, LoadExampleData(ctx, db, now))

	for _, tc := range []struct {
		model any
		want  int64
	}{
		{&models.Person{}, 1},
		{&models.Portion{}, 5},
		{&models.Meal{}, 2},
		{&models.MealPortion{}, 5},
		{&models.MealRecord{}, 3},
	} {
		var count int64
		require.NoError(t, db.Model(tc.model).Count(&count).Error)
		assert.Equal(t, tc.want, count, "%T", tc.model)
	}

	var person models.Person
	require.NoError(t, db.First(&person, "id = ?", "123").Error)

	var portion models.Portion
	require.NoError(t, db.First(&portion, "id = ?", "olive-oil").Error)
	assert.Equal(t, 700.0, portion.Calories)

	var count int64

	require.NoError(t, db.Model(&models.MealPortion{}).Where("meal_id = ?", "salmon-soup").Count(&count).Error)
	assert.Equal(t, int64(3), count)

	require.NoError(t, db.Model(&models.MealRecord{}).Count(&count).Error)
	assert.Equal(t, int64(3), count)
}
