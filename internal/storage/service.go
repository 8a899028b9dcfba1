package storage

import (
	"context"
	"log/slog"
	"time"

	"github.com/juju/clock"
	"github.com/juju/errors"

	"github.com/DhavalSuthar-24/acecourt/internal/models"
	"github.com/DhavalSuthar-24/acecourt/internal/principal"
)

// ServiceConfig holds the service dependencies. Zero values fall back to the
// wall clock, UTC and the default logger.
type ServiceConfig struct {
	Clock    clock.Clock
	Location *time.Location
	Logger   *slog.Logger
}

// Service implements Storage over an EntityStore.
type Service struct {
	store EntityStore
	clock clock.Clock
	loc   *time.Location
	log   *slog.Logger
}

var _ Storage = (*Service)(nil)

func NewService(store EntityStore, cfg ServiceConfig) *Service {
	if cfg.Clock == nil {
		cfg.Clock = clock.WallClock
	}
	if cfg.Location == nil {
		cfg.Location = time.UTC
	}
	if cfg.Logger == nil {
		cfg.Logger = slog.Default()
	}
	return &Service{
		store: store,
		clock: cfg.Clock,
		loc:   cfg.Location,
		log:   cfg.Logger.With(slog.String("component", "storage")),
	}
}

// Close releases the backend.
func (s *Service) Close() error {
	return s.store.Close()
}

// now is the stamp for createdAt fields. Microsecond precision survives every
// backend round trip unchanged.
func (s *Service) now() time.Time {
	return s.clock.Now().UTC().Truncate(time.Microsecond)
}

func normalizeTime(t time.Time) time.Time {
	return t.UTC().Truncate(time.Microsecond)
}

// actor fills an empty ownership field from the request principal.
func actor(ctx context.Context, current *uint) *uint {
	if current != nil {
		return current
	}
	return principal.UserID(ctx)
}

// Users

func (s *Service) GetUser(ctx context.Context, id uint) (*models.User, error) {
	u, err := s.store.FindUser(ctx, id)
	return u, errors.Annotatef(err, "getting user %d", id)
}

func (s *Service) GetUserByUsername(ctx context.Context, username string) (*models.User, error) {
	u, err := s.store.FindUserByUsername(ctx, username)
	return u, errors.Annotatef(err, "getting user %q", username)
}

func (s *Service) ListUsers(ctx context.Context) ([]models.User, error) {
	users, err := s.store.FindUsers(ctx)
	return users, errors.Annotate(err, "listing users")
}

func (s *Service) CreateUser(ctx context.Context, in models.NewUser) (*models.User, error) {
	if in.Role == "" {
		in.Role = models.RoleCoach
	}
	if err := validateUser(in.Username, in.Password, in.Role); err != nil {
		return nil, err
	}
	existing, err := s.store.FindUserByUsername(ctx, in.Username)
	if err != nil {
		return nil, errors.Annotate(err, "checking username")
	}
	if existing != nil {
		return nil, errors.AlreadyExistsf("user %q", in.Username)
	}
	u := &models.User{
		Username:    in.Username,
		Password:    in.Password,
		Role:        in.Role,
		AcademyName: in.AcademyName,
		CreatedAt:   s.now(),
	}
	if err := s.store.InsertUser(ctx, u); err != nil {
		return nil, errors.Annotate(err, "creating user")
	}
	return u, nil
}

func (s *Service) UpdateUser(ctx context.Context, id uint, patch models.UserPatch) (*models.User, error) {
	if patch.Username != nil {
		existing, err := s.store.FindUserByUsername(ctx, *patch.Username)
		if err != nil {
			return nil, errors.Annotate(err, "checking username")
		}
		if existing != nil && existing.ID != id {
			return nil, errors.AlreadyExistsf("user %q", *patch.Username)
		}
	}
	u, err := s.store.ModifyUser(ctx, id, func(u *models.User) error {
		if patch.Username != nil {
			u.Username = *patch.Username
		}
		if patch.Password != nil {
			u.Password = *patch.Password
		}
		if patch.Role != nil {
			u.Role = *patch.Role
		}
		if patch.AcademyName != nil {
			u.AcademyName = *patch.AcademyName
		}
		return validateUser(u.Username, u.Password, u.Role)
	})
	return u, errors.Annotatef(err, "updating user %d", id)
}

func (s *Service) DeleteUser(ctx context.Context, id uint) (bool, error) {
	ok, err := s.store.RemoveUser(ctx, id)
	return ok, errors.Annotatef(err, "deleting user %d", id)
}

// Batches

func (s *Service) ListBatches(ctx context.Context, filter models.BatchFilter) ([]models.Batch, error) {
	batches, err := s.store.FindBatches(ctx, filter)
	return batches, errors.Annotate(err, "listing batches")
}

func (s *Service) GetBatch(ctx context.Context, id uint) (*models.Batch, error) {
	b, err := s.store.FindBatch(ctx, id)
	return b, errors.Annotatef(err, "getting batch %d", id)
}

func (s *Service) CreateBatch(ctx context.Context, in models.NewBatch) (*models.Batch, error) {
	b := &models.Batch{
		Name:      in.Name,
		AgeGroup:  in.AgeGroup,
		Level:     in.Level,
		CoachID:   actor(ctx, in.CoachID),
		CreatedAt: s.now(),
	}
	if err := validateBatch(b); err != nil {
		return nil, err
	}
	if err := s.requireCoach(ctx, b.CoachID); err != nil {
		return nil, err
	}
	if err := s.store.InsertBatch(ctx, b); err != nil {
		return nil, errors.Annotate(err, "creating batch")
	}
	return b, nil
}

func (s *Service) UpdateBatch(ctx context.Context, id uint, patch models.BatchPatch) (*models.Batch, error) {
	if patch.CoachID.Set {
		if err := s.requireCoach(ctx, patch.CoachID.Value); err != nil {
			return nil, err
		}
	}
	b, err := s.store.ModifyBatch(ctx, id, func(b *models.Batch) error {
		if patch.Name != nil {
			b.Name = *patch.Name
		}
		if patch.AgeGroup != nil {
			b.AgeGroup = *patch.AgeGroup
		}
		if patch.Level != nil {
			b.Level = *patch.Level
		}
		patch.CoachID.ApplyTo(&b.CoachID)
		return validateBatch(b)
	})
	return b, errors.Annotatef(err, "updating batch %d", id)
}

func (s *Service) DeleteBatch(ctx context.Context, id uint) (bool, error) {
	ok, err := s.store.RemoveBatch(ctx, id)
	return ok, errors.Annotatef(err, "deleting batch %d", id)
}

// requireCoach checks that a set coach reference resolves to a user.
func (s *Service) requireCoach(ctx context.Context, coachID *uint) error {
	if coachID == nil {
		return nil
	}
	u, err := s.store.FindUser(ctx, *coachID)
	if err != nil {
		return errors.Annotate(err, "checking coach")
	}
	if u == nil {
		return errors.NotValidf("coach %d", *coachID)
	}
	return nil
}

// requireBatch checks that a set batch reference resolves to a batch.
func (s *Service) requireBatch(ctx context.Context, batchID *uint) error {
	if batchID == nil {
		return nil
	}
	b, err := s.store.FindBatch(ctx, *batchID)
	if err != nil {
		return errors.Annotate(err, "checking batch")
	}
	if b == nil {
		return errors.NotValidf("batch %d", *batchID)
	}
	return nil
}
