// Package advisortest provides a scriptable Advisor for handler tests.
package advisortest

import (
	"context"
	"sync"

	"github.com/DhavalSuthar-24/acecourt/internal/advisor"
	"github.com/DhavalSuthar-24/acecourt/internal/models"
)

// Stub answers each call with the matching func field. A nil field fails
// the call with advisor.ErrUnavailable. Requests are recorded.
type Stub struct {
	Plan     func(advisor.PlanRequest) (*models.WeeklyPlan, error)
	Progress func(advisor.ProgressRequest) (*advisor.ProgressInsight, error)
	Drills   func(advisor.DrillRequest) ([]models.Drill, error)
	Risk     func(advisor.RiskRequest) (*advisor.RetentionPlan, error)

	mu               sync.Mutex
	PlanRequests     []advisor.PlanRequest
	ProgressRequests []advisor.ProgressRequest
	DrillRequests    []advisor.DrillRequest
	RiskRequests     []advisor.RiskRequest
}

var _ advisor.Advisor = (*Stub)(nil)

func (s *Stub) GenerateTrainingPlan(_ context.Context, req advisor.PlanRequest) (*models.WeeklyPlan, error) {
	s.mu.Lock()
	s.PlanRequests = append(s.PlanRequests, req)
	s.mu.Unlock()
	if s.Plan == nil {
		return nil, advisor.ErrUnavailable
	}
	return s.Plan(req)
}

func (s *Stub) GenerateProgressSummary(_ context.Context, req advisor.ProgressRequest) (*advisor.ProgressInsight, error) {
	s.mu.Lock()
	s.ProgressRequests = append(s.ProgressRequests, req)
	s.mu.Unlock()
	if s.Progress == nil {
		return nil, advisor.ErrUnavailable
	}
	return s.Progress(req)
}

func (s *Stub) RecommendDrills(_ context.Context, req advisor.DrillRequest) ([]models.Drill, error) {
	s.mu.Lock()
	s.DrillRequests = append(s.DrillRequests, req)
	s.mu.Unlock()
	if s.Drills == nil {
		return nil, advisor.ErrUnavailable
	}
	return s.Drills(req)
}

func (s *Stub) AnalyzeDropoutRisk(_ context.Context, req advisor.RiskRequest) (*advisor.RetentionPlan, error) {
	s.mu.Lock()
	s.RiskRequests = append(s.RiskRequests, req)
	s.mu.Unlock()
	if s.Risk == nil {
		return nil, advisor.ErrUnavailable
	}
	return s.Risk(req)
}

// Plan returns a one-day plan for the given week.
func Plan(week int, focus ...string) *models.WeeklyPlan {
	return &models.WeeklyPlan{
		Week:       week,
		FocusAreas: focus,
		Days: []models.PlanDay{{
			Day:    "Monday",
			Drills: []models.Drill{{Name: "Shadow Swings", Description: "Dry swings", Duration: "10 minutes", Difficulty: "beginner"}},
		}},
		ProgressGoals: []string{"Consistent toss"},
	}
}
