package relational_test

import (
	"context"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/DhavalSuthar-24/acecourt/internal/models"
	"github.com/DhavalSuthar-24/acecourt/internal/storage"
	"github.com/DhavalSuthar-24/acecourt/internal/storage/relational"
	"github.com/DhavalSuthar-24/acecourt/internal/storage/storagetest"
)

func newStore(t *testing.T) *relational.Store {
	t.Helper()
	db, err := relational.OpenSQLite(filepath.Join(t.TempDir(), "academy.db"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	store := relational.New(db)
	require.NoError(t, store.Migrate(context.Background()))
	return store
}

func TestContract(t *testing.T) {
	storagetest.Run(t, func(t *testing.T) storage.EntityStore {
		return newStore(t)
	})
}

func TestAttendancePairIsUnique(t *testing.T) {
	ctx := context.Background()
	db, err := relational.OpenSQLite(filepath.Join(t.TempDir(), "raw.db"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	raw := relational.New(db)
	defer raw.Close()
	require.NoError(t, raw.Migrate(ctx))

	require.NoError(t, db.Create(&models.Attendance{SessionID: 1, StudentID: 1}).Error)
	err = db.Create(&models.Attendance{SessionID: 1, StudentID: 1}).Error
	assert.ErrorIs(t, err, gorm.ErrDuplicatedKey)
}

func TestConcurrentUpsertsKeepOneRow(t *testing.T) {
	store := newStore(t)
	defer store.Close()
	svc := storage.NewService(store, storage.ServiceConfig{})
	ctx := context.Background()

	var wg sync.WaitGroup
	for i := 0; i < 5; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := svc.UpdateAttendance(ctx, 3, 4, true)
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	rows, err := svc.ListAttendance(ctx, 3)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.True(t, rows[0].Present)
}

func TestGeneratedContentRejectedOnMismatch(t *testing.T) {
	store := newStore(t)
	defer store.Close()
	ctx := context.Background()

	bad := &models.GeneratedContent{Kind: models.ContentWeeklyPlan, Version: models.CurrentContentVersion}
	err := store.InsertTrainingPlan(ctx, &models.TrainingPlan{BatchID: new(uint), Week: 1, Status: models.PlanGenerated, Drills: bad})
	assert.Error(t, err)
}
