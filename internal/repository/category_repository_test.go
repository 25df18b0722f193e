package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"taskboard/internal/model"
)

func TestCategoryDeleteLeavesTasksDangling(t *testing.T) {
	db := newTestDB(t)
	categories := NewCategoryRepository(db)
	tasks := NewTaskRepository(db)
	ctx := context.Background()

	category := model.Category{UserID: 1, Name: "Errands", Icon: "list-check"}
	require.NoError(t, categories.Create(ctx, &category))

	task := model.Task{UserID: 1, CategoryID: &category.ID, Title: "Buy milk", Priority: model.PriorityLow}
	require.NoError(t, tasks.Create(ctx, &task))

	deleted, err := categories.Delete(ctx, 1, category.ID)
	require.NoError(t, err)
	assert.True(t, deleted)

	// The task keeps its category reference; the display layer treats the
	// dangling id as uncategorized.
	got, err := tasks.FindByID(ctx, 1, task.ID)
	require.NoError(t, err)
	require.NotNil(t, got.CategoryID)
	assert.Equal(t, category.ID, *got.CategoryID)
}

func TestCategoryListOrderedByName(t *testing.T) {
	db := newTestDB(t)
	repo := NewCategoryRepository(db)
	ctx := context.Background()

	for _, name := range []string{"Work", "Errands", "Personal"} {
		category := model.Category{UserID: 1, Name: name, Icon: "list-check"}
		require.NoError(t, repo.Create(ctx, &category))
	}

	categories, err := repo.ListByUser(ctx, 1)
	require.NoError(t, err)
	require.Len(t, categories, 3)
	assert.Equal(t, "Errands", categories[0].Name)
	assert.Equal(t, "Personal", categories[1].Name)
	assert.Equal(t, "Work", categories[2].Name)
}

func TestSeedIsIdempotent(t *testing.T) {
	db := newTestDB(t)
	require.NoError(t, Seed(db))
	require.NoError(t, Seed(db))

	users := NewUserRepository(db)
	demo, err := users.FindByID(context.Background(), DemoUserID)
	require.NoError(t, err)
	assert.Equal(t, "demo", demo.Username)

	categories, err := NewCategoryRepository(db).ListByUser(context.Background(), DemoUserID)
	require.NoError(t, err)
	assert.Len(t, categories, 3, "categories are not duplicated on re-seed")

	tasks, err := NewTaskRepository(db).ListByUser(context.Background(), DemoUserID)
	require.NoError(t, err)
	assert.Len(t, tasks, 7)
}
