package seed_test

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/juju/clock/testclock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/DhavalSuthar-24/acecourt/internal/models"
	"github.com/DhavalSuthar-24/acecourt/internal/seed"
	"github.com/DhavalSuthar-24/acecourt/internal/storage"
	"github.com/DhavalSuthar-24/acecourt/internal/storage/memory"
	"github.com/DhavalSuthar-24/acecourt/pkg/utils"
)

func TestLoad(t *testing.T) {
	utils.PasswordCost = 4
	ctx := context.Background()
	clk := testclock.NewClock(time.Date(2025, time.March, 10, 15, 0, 0, 0, time.UTC))
	store := storage.NewService(memory.New(), storage.ServiceConfig{Clock: clk})
	log := slog.New(slog.NewTextHandler(io.Discard, nil))

	res, err := seed.Load(ctx, store, clk, log)
	require.NoError(t, err)
	require.NotNil(t, res)
	assert.Equal(t, seed.Result{Users: 3, Batches: 4, Students: 6, Sessions: 3, Assessments: 3, Attendance: 4, Plans: 2, Summaries: 2, Drills: 2}, *res)

	coach, err := store.GetUserByUsername(ctx, seed.CoachUsername)
	require.NoError(t, err)
	require.NotNil(t, coach)
	assert.True(t, utils.CheckPassword(coach.Password, seed.CoachPassword))
	admin, err := store.GetUserByUsername(ctx, seed.AdminUsername)
	require.NoError(t, err)
	assert.Equal(t, models.RoleAdmin, admin.Role)

	atRisk, err := store.ListAtRiskStudents(ctx)
	require.NoError(t, err)
	require.Len(t, atRisk, 1)
	assert.Equal(t, "Alex Thompson", atRisk[0].Name)

	emma, err := store.GetStudent(ctx, 1)
	require.NoError(t, err)
	require.NotNil(t, emma.LatestSkillAssessment)
	assert.Equal(t, 7, emma.LatestSkillAssessment.Overall)
	require.NotNil(t, emma.Batch)
	assert.Equal(t, "Junior Beginners", emma.Batch.Name)

	yesterday, err := store.GetSession(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, models.SessionCompleted, yesterday.Status)
	assert.Len(t, yesterday.Attendance, 3)

	stats, err := store.DashboardStats(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, stats.SessionsToday)
	assert.Equal(t, 6, stats.TotalStudents)
	assert.Equal(t, 5, stats.ActiveStudents)

	again, err := seed.Load(ctx, store, clk, log)
	require.NoError(t, err)
	assert.Nil(t, again, "second load is a no-op")
	users, err := store.ListUsers(ctx)
	require.NoError(t, err)
	assert.Len(t, users, 3)
}
