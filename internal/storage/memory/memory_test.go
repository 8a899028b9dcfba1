package memory_test

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/DhavalSuthar-24/acecourt/internal/models"
	"github.com/DhavalSuthar-24/acecourt/internal/storage"
	"github.com/DhavalSuthar-24/acecourt/internal/storage/memory"
	"github.com/DhavalSuthar-24/acecourt/internal/storage/storagetest"
)

func TestContract(t *testing.T) {
	storagetest.Run(t, func(t *testing.T) storage.EntityStore {
		return memory.New()
	})
}

func TestConcurrentAttendanceUpsert(t *testing.T) {
	svc := storage.NewService(memory.New(), storage.ServiceConfig{})
	ctx := context.Background()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(present bool) {
			defer wg.Done()
			_, err := svc.UpdateAttendance(ctx, 1, 1, present)
			assert.NoError(t, err)
		}(i%2 == 0)
	}
	wg.Wait()

	rows, err := svc.ListAttendance(ctx, 1)
	require.NoError(t, err)
	assert.Len(t, rows, 1)
}

func TestModifyFailureLeavesRecord(t *testing.T) {
	store := memory.New()
	ctx := context.Background()
	b := &models.Batch{Name: "Juniors", AgeGroup: "8-10", Level: models.LevelBeginner}
	require.NoError(t, store.InsertBatch(ctx, b))

	_, err := store.ModifyBatch(ctx, b.ID, func(b *models.Batch) error {
		b.Name = "Renamed"
		return assert.AnError
	})
	require.ErrorIs(t, err, assert.AnError)

	got, err := store.FindBatch(ctx, b.ID)
	require.NoError(t, err)
	assert.Equal(t, "Juniors", got.Name)
}
