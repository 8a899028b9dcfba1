package advisor

import (
	"context"
	"log/slog"
	"strings"

	"github.com/DhavalSuthar-24/acecourt/internal/metrics"
	"github.com/DhavalSuthar-24/acecourt/internal/models"
	"github.com/DhavalSuthar-24/acecourt/pkg/logger"
)

// Observer records the outcome of each advisor call. *metrics.Collector
// satisfies it.
type Observer interface {
	ObserveAI(op, outcome string)
}

type nopObserver struct{}

func (nopObserver) ObserveAI(string, string) {}

// Fallback wraps an Advisor and answers drill and plan requests from a
// static catalogue when the wrapped advisor fails. Progress summaries and
// retention plans have no offline substitute and fail through.
type Fallback struct {
	next     Advisor
	observer Observer
	log      *slog.Logger
}

var _ Advisor = (*Fallback)(nil)

func WithFallback(next Advisor, observer Observer, log *slog.Logger) *Fallback {
	if observer == nil {
		observer = nopObserver{}
	}
	if log == nil {
		log = slog.Default()
	}
	return &Fallback{next: next, observer: observer, log: log}
}

func (f *Fallback) failed(ctx context.Context, op string, err error, fallback bool) {
	outcome := metrics.OutcomeError
	if fallback {
		outcome = metrics.OutcomeFallback
	}
	f.observer.ObserveAI(op, outcome)
	f.log.WarnContext(ctx, "advisor call failed", slog.String("op", op), slog.String("outcome", outcome), logger.Err(err))
}

func (f *Fallback) GenerateTrainingPlan(ctx context.Context, req PlanRequest) (*models.WeeklyPlan, error) {
	plan, err := f.next.GenerateTrainingPlan(ctx, req)
	if err != nil {
		f.failed(ctx, OpTrainingPlan, err, true)
		return FallbackPlan(req.SkillLevel), nil
	}
	f.observer.ObserveAI(OpTrainingPlan, metrics.OutcomeOK)
	return plan, nil
}

func (f *Fallback) GenerateProgressSummary(ctx context.Context, req ProgressRequest) (*ProgressInsight, error) {
	insight, err := f.next.GenerateProgressSummary(ctx, req)
	if err != nil {
		f.failed(ctx, OpProgressSummary, err, false)
		return nil, err
	}
	f.observer.ObserveAI(OpProgressSummary, metrics.OutcomeOK)
	return insight, nil
}

func (f *Fallback) RecommendDrills(ctx context.Context, req DrillRequest) ([]models.Drill, error) {
	drills, err := f.next.RecommendDrills(ctx, req)
	if err != nil {
		f.failed(ctx, OpRecommendDrills, err, true)
		return FallbackDrills(req.Query, req.SkillLevel), nil
	}
	f.observer.ObserveAI(OpRecommendDrills, metrics.OutcomeOK)
	return drills, nil
}

func (f *Fallback) AnalyzeDropoutRisk(ctx context.Context, req RiskRequest) (*RetentionPlan, error) {
	plan, err := f.next.AnalyzeDropoutRisk(ctx, req)
	if err != nil {
		f.failed(ctx, OpDropoutRisk, err, false)
		return nil, err
	}
	f.observer.ObserveAI(OpDropoutRisk, metrics.OutcomeOK)
	return plan, nil
}

// FallbackPlan is the one-day serve and footwork week served when no plan
// could be generated.
func FallbackPlan(skillLevel string) *models.WeeklyPlan {
	return &models.WeeklyPlan{
		Week:       1,
		FocusAreas: []string{"Serve", "Footwork", "Fallback AI Plan"},
		Days: []models.PlanDay{{
			Day:    "Day 1-2",
			Drills: FallbackDrills("serve, footwork", skillLevel),
			Notes:  "Generated using fallback due to AI error or quota limit.",
		}},
		ProgressGoals: []string{
			"Improve consistency using serve drills",
			"Build foundational movement with footwork patterns",
			"Maintain engagement despite AI unavailability",
		},
	}
}

// FallbackDrills picks a static drill set by keyword. The lead drill takes
// the requested skill level, intermediate when none is given.
func FallbackDrills(query, skillLevel string) []models.Drill {
	if skillLevel == "" {
		skillLevel = string(models.LevelIntermediate)
	}
	q := strings.ToLower(query)
	var drills []models.Drill
	switch {
	case strings.Contains(q, "serve") || strings.Contains(q, "serving"):
		drills = serveDrills()
		drills[0].Difficulty = skillLevel
	case strings.Contains(q, "footwork") || strings.Contains(q, "movement"):
		drills = footworkDrills()
		drills[0].Difficulty = skillLevel
	case strings.Contains(q, "forehand") || strings.Contains(q, "groundstroke"):
		drills = forehandDrills()
		drills[0].Difficulty = skillLevel
	default:
		drills = generalDrills()
	}
	return drills
}
