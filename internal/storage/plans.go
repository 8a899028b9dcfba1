package storage

import (
	"context"

	"github.com/juju/errors"

	"github.com/DhavalSuthar-24/acecourt/internal/models"
)

// DefaultDrillRecommendationLimit is used when callers pass no limit.
const DefaultDrillRecommendationLimit = 10

func (s *Service) ListTrainingPlans(ctx context.Context, filter models.TrainingPlanFilter) ([]models.TrainingPlanWithDetails, error) {
	plans, err := s.store.FindTrainingPlans(ctx, filter)
	if err != nil {
		return nil, errors.Annotate(err, "listing training plans")
	}
	return s.planViews(ctx, plans)
}

func (s *Service) GetTrainingPlan(ctx context.Context, id uint) (*models.TrainingPlanWithDetails, error) {
	p, err := s.store.FindTrainingPlan(ctx, id)
	if err != nil || p == nil {
		return nil, errors.Annotatef(err, "getting training plan %d", id)
	}
	views, err := s.planViews(ctx, []models.TrainingPlan{*p})
	if err != nil {
		return nil, err
	}
	return &views[0], nil
}

func (s *Service) CreateTrainingPlan(ctx context.Context, in models.NewTrainingPlan) (*models.TrainingPlan, error) {
	p := &models.TrainingPlan{
		StudentID:   in.StudentID,
		BatchID:     in.BatchID,
		Week:        in.Week,
		FocusAreas:  models.StringSlice(in.FocusAreas).Clone(),
		Drills:      in.Drills.Clone(),
		Notes:       in.Notes,
		Status:      in.Status,
		GeneratedBy: in.GeneratedBy,
		CreatedBy:   actor(ctx, in.CreatedBy),
		CreatedAt:   s.now(),
	}
	if p.FocusAreas == nil {
		p.FocusAreas = models.StringSlice{}
	}
	if p.Status == "" {
		p.Status = models.PlanGenerated
	}
	if p.GeneratedBy == "" {
		p.GeneratedBy = models.GeneratedByAI
	}
	if err := validatePlan(p); err != nil {
		return nil, err
	}
	if err := s.store.InsertTrainingPlan(ctx, p); err != nil {
		return nil, errors.Annotate(err, "creating training plan")
	}
	return p, nil
}

func (s *Service) UpdateTrainingPlan(ctx context.Context, id uint, patch models.TrainingPlanPatch) (*models.TrainingPlan, error) {
	p, err := s.store.ModifyTrainingPlan(ctx, id, func(p *models.TrainingPlan) error {
		patch.StudentID.ApplyTo(&p.StudentID)
		patch.BatchID.ApplyTo(&p.BatchID)
		if patch.Week != nil {
			p.Week = *patch.Week
		}
		if patch.FocusAreas != nil {
			p.FocusAreas = models.StringSlice(*patch.FocusAreas).Clone()
			if p.FocusAreas == nil {
				p.FocusAreas = models.StringSlice{}
			}
		}
		if patch.Drills != nil {
			p.Drills = patch.Drills.Clone()
		}
		patch.Notes.ApplyTo(&p.Notes)
		if patch.Status != nil {
			p.Status = *patch.Status
		}
		return validatePlan(p)
	})
	return p, errors.Annotatef(err, "updating training plan %d", id)
}

func (s *Service) DeleteTrainingPlan(ctx context.Context, id uint) (bool, error) {
	ok, err := s.store.RemoveTrainingPlan(ctx, id)
	return ok, errors.Annotatef(err, "deleting training plan %d", id)
}

// Progress summaries

func (s *Service) ListProgressSummaries(ctx context.Context, studentID uint) ([]models.ProgressSummary, error) {
	list, err := s.store.FindProgressSummaries(ctx, studentID)
	return list, errors.Annotatef(err, "listing summaries of student %d", studentID)
}

func (s *Service) CreateProgressSummary(ctx context.Context, in models.NewProgressSummary) (*models.ProgressSummary, error) {
	if in.StudentID == 0 {
		return nil, errors.NotValidf("missing student")
	}
	if in.Summary == "" {
		return nil, errors.NotValidf("empty summary")
	}
	p := &models.ProgressSummary{
		StudentID:       in.StudentID,
		Week:            in.Week,
		Summary:         in.Summary,
		Improvements:    nonNil(in.Improvements),
		Concerns:        nonNil(in.Concerns),
		Recommendations: nonNil(in.Recommendations),
		GeneratedBy:     in.GeneratedBy,
		CreatedAt:       s.now(),
	}
	if p.GeneratedBy == "" {
		p.GeneratedBy = models.GeneratedByAI
	}
	if err := s.store.InsertProgressSummary(ctx, p); err != nil {
		return nil, errors.Annotate(err, "creating progress summary")
	}
	return p, nil
}

// Drill recommendations

func (s *Service) ListDrillRecommendations(ctx context.Context, limit int) ([]models.DrillRecommendation, error) {
	if limit <= 0 {
		limit = DefaultDrillRecommendationLimit
	}
	list, err := s.store.FindDrillRecommendations(ctx, limit)
	return list, errors.Annotate(err, "listing drill recommendations")
}

func (s *Service) CreateDrillRecommendation(ctx context.Context, in models.NewDrillRecommendation) (*models.DrillRecommendation, error) {
	if in.Query == "" {
		return nil, errors.NotValidf("empty drill query")
	}
	d := &models.DrillRecommendation{
		Query:           in.Query,
		Recommendations: in.Recommendations.Clone(),
		AgeGroup:        in.AgeGroup,
		SkillLevel:      in.SkillLevel,
		CreatedBy:       actor(ctx, in.CreatedBy),
		CreatedAt:       s.now(),
	}
	if d.Recommendations == nil {
		d.Recommendations = models.NewDrillContent(nil)
	}
	if err := d.Recommendations.Validate(); err != nil {
		return nil, errors.NewNotValid(err, "drill recommendations")
	}
	if err := s.store.InsertDrillRecommendation(ctx, d); err != nil {
		return nil, errors.Annotate(err, "creating drill recommendation")
	}
	return d, nil
}

func nonNil(in []string) models.StringSlice {
	if in == nil {
		return models.StringSlice{}
	}
	return models.StringSlice(in).Clone()
}
