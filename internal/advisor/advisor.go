// Package advisor produces coaching content with a language model: weekly
// training plans, progress summaries, drill lists and retention plans.
package advisor

import (
	"context"
	"errors"
	"time"

	"github.com/DhavalSuthar-24/acecourt/internal/models"
)

// ErrUnavailable is returned when no model is configured.
var ErrUnavailable = errors.New("advisor unavailable")

// ErrMalformed is returned when the model answers with content that does
// not have the requested shape.
var ErrMalformed = errors.New("advisor returned malformed content")

// Operation names, used for logs and metrics.
const (
	OpTrainingPlan    = "generate_training_plan"
	OpProgressSummary = "generate_progress_summary"
	OpRecommendDrills = "recommend_drills"
	OpDropoutRisk     = "analyze_dropout_risk"
)

type PlanRequest struct {
	StudentName string
	Age         int
	SkillLevel  string
	Skills      models.SkillScores
	FocusAreas  []string
}

type ProgressRequest struct {
	StudentName    string
	Previous       models.SkillScores
	Current        models.SkillScores
	SessionNotes   []string
	AttendanceRate float64
}

// ProgressInsight is a generated week-over-week analysis.
type ProgressInsight struct {
	Summary         string   `json:"summary"`
	Improvements    []string `json:"improvements"`
	Concerns        []string `json:"concerns"`
	Recommendations []string `json:"recommendations"`
	NextWeekFocus   []string `json:"nextWeekFocus"`
}

type DrillRequest struct {
	Query      string
	AgeGroup   string
	SkillLevel string
}

type RiskRequest struct {
	StudentName    string
	AttendanceRate float64
	// SkillProgression lists overall scores, oldest first.
	SkillProgression []int
	MissedSessions   int
	SessionNotes     []string
}

// RetentionPlan is a generated intervention plan for a student at risk.
type RetentionPlan struct {
	RiskFactors    []string `json:"riskFactors"`
	Interventions  []string `json:"interventions"`
	Timeline       string   `json:"timeline"`
	SuccessMetrics []string `json:"successMetrics"`
}

// Advisor generates coaching content. Implementations fail rather than
// return partially filled results.
type Advisor interface {
	GenerateTrainingPlan(ctx context.Context, req PlanRequest) (*models.WeeklyPlan, error)
	GenerateProgressSummary(ctx context.Context, req ProgressRequest) (*ProgressInsight, error)
	RecommendDrills(ctx context.Context, req DrillRequest) ([]models.Drill, error)
	AnalyzeDropoutRisk(ctx context.Context, req RiskRequest) (*RetentionPlan, error)
}

// Offline is the Advisor used when no API key is configured.
type Offline struct{}

var _ Advisor = Offline{}

func (Offline) GenerateTrainingPlan(context.Context, PlanRequest) (*models.WeeklyPlan, error) {
	return nil, ErrUnavailable
}

func (Offline) GenerateProgressSummary(context.Context, ProgressRequest) (*ProgressInsight, error) {
	return nil, ErrUnavailable
}

func (Offline) RecommendDrills(context.Context, DrillRequest) ([]models.Drill, error) {
	return nil, ErrUnavailable
}

func (Offline) AnalyzeDropoutRisk(context.Context, RiskRequest) (*RetentionPlan, error) {
	return nil, ErrUnavailable
}

// WithTimeout bounds one advisor call. A non-positive timeout only adds
// cancellation.
func WithTimeout(ctx context.Context, timeout time.Duration) (context.Context, context.CancelFunc) {
	if timeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, timeout)
}
