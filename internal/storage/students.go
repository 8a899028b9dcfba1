package storage

import (
	"context"

	"github.com/juju/errors"

	"github.com/DhavalSuthar-24/acecourt/internal/models"
)

func (s *Service) ListStudents(ctx context.Context, filter models.StudentFilter) ([]models.StudentWithBatch, error) {
	students, err := s.store.FindStudents(ctx, filter)
	if err != nil {
		return nil, errors.Annotate(err, "listing students")
	}
	return s.studentViews(ctx, students)
}

func (s *Service) GetStudent(ctx context.Context, id uint) (*models.StudentWithBatch, error) {
	st, err := s.store.FindStudent(ctx, id)
	if err != nil || st == nil {
		return nil, errors.Annotatef(err, "getting student %d", id)
	}
	views, err := s.studentViews(ctx, []models.Student{*st})
	if err != nil {
		return nil, err
	}
	return &views[0], nil
}

func (s *Service) ListAtRiskStudents(ctx context.Context) ([]models.StudentWithBatch, error) {
	all, err := s.ListStudents(ctx, models.StudentFilter{})
	if err != nil {
		return nil, err
	}
	atRisk := make([]models.StudentWithBatch, 0)
	for _, v := range all {
		if v.Status == models.StudentAtRisk {
			atRisk = append(atRisk, v)
		}
	}
	return atRisk, nil
}

func (s *Service) CreateStudent(ctx context.Context, in models.NewStudent) (*models.Student, error) {
	now := s.now()
	st := &models.Student{
		Name:            in.Name,
		Age:             in.Age,
		Email:           in.Email,
		Phone:           in.Phone,
		ParentName:      in.ParentName,
		ParentPhone:     in.ParentPhone,
		BatchID:         in.BatchID,
		ProfileImageURL: in.ProfileImageURL,
		Status:          in.Status,
		JoinDate:        now,
		CreatedAt:       now,
	}
	if st.Status == "" {
		st.Status = models.StudentActive
	}
	if err := validateStudent(st); err != nil {
		return nil, err
	}
	if err := s.requireBatch(ctx, st.BatchID); err != nil {
		return nil, err
	}
	if err := s.store.InsertStudent(ctx, st); err != nil {
		return nil, errors.Annotate(err, "creating student")
	}
	return st, nil
}

func (s *Service) UpdateStudent(ctx context.Context, id uint, patch models.StudentPatch) (*models.Student, error) {
	if patch.BatchID.Set {
		if err := s.requireBatch(ctx, patch.BatchID.Value); err != nil {
			return nil, err
		}
	}
	st, err := s.store.ModifyStudent(ctx, id, func(st *models.Student) error {
		if patch.Name != nil {
			st.Name = *patch.Name
		}
		if patch.Age != nil {
			st.Age = *patch.Age
		}
		patch.Email.ApplyTo(&st.Email)
		patch.Phone.ApplyTo(&st.Phone)
		patch.ParentName.ApplyTo(&st.ParentName)
		patch.ParentPhone.ApplyTo(&st.ParentPhone)
		patch.BatchID.ApplyTo(&st.BatchID)
		patch.ProfileImageURL.ApplyTo(&st.ProfileImageURL)
		if patch.Status != nil {
			st.Status = *patch.Status
		}
		return validateStudent(st)
	})
	return st, errors.Annotatef(err, "updating student %d", id)
}

func (s *Service) DeleteStudent(ctx context.Context, id uint) (bool, error) {
	ok, err := s.store.RemoveStudent(ctx, id)
	return ok, errors.Annotatef(err, "deleting student %d", id)
}

// Skill assessments

func (s *Service) ListSkillAssessments(ctx context.Context, studentID uint) ([]models.SkillAssessment, error) {
	list, err := s.store.FindSkillAssessments(ctx, studentID, 0)
	return list, errors.Annotatef(err, "listing assessments of student %d", studentID)
}

func (s *Service) GetLatestSkillAssessment(ctx context.Context, studentID uint) (*models.SkillAssessment, error) {
	list, err := s.store.FindSkillAssessments(ctx, studentID, 1)
	if err != nil {
		return nil, errors.Annotatef(err, "getting latest assessment of student %d", studentID)
	}
	if len(list) == 0 {
		return nil, nil
	}
	return &list[0], nil
}

func (s *Service) CreateSkillAssessment(ctx context.Context, in models.NewSkillAssessment) (*models.SkillAssessment, error) {
	if in.StudentID == 0 {
		return nil, errors.NotValidf("missing student")
	}
	a := &models.SkillAssessment{
		StudentID:   in.StudentID,
		SessionID:   in.SessionID,
		Serve:       in.Serve,
		Footwork:    in.Footwork,
		Stamina:     in.Stamina,
		MentalFocus: in.MentalFocus,
		Notes:       in.Notes,
		AssessedBy:  actor(ctx, in.AssessedBy),
		CreatedAt:   s.now(),
	}
	if err := validateScores(a.Skills()); err != nil {
		return nil, err
	}
	a.Overall = overallScore(a.Skills())
	if err := s.store.InsertSkillAssessment(ctx, a); err != nil {
		return nil, errors.Annotate(err, "creating assessment")
	}
	return a, nil
}
