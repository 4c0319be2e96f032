package workouts

import (
	"context"
	"fmt"
	"time"

	"github.com/2beens/gymlog/internal/gymstats/exercises"
	"github.com/2beens/gymlog/internal/telemetry/metrics"

	log "github.com/sirupsen/logrus"
)

//go:generate mockgen -source=$GOFILE -destination=service_mocks_test.go -package=workouts
type logStore interface {
	ListForSession(ctx context.Context, userID, sessionID string) ([]Log, error)
	RecentForExercise(ctx context.Context, userID, exerciseID string) (*Log, error)
	Add(ctx context.Context, l Log) (*Log, error)
	UpdateSets(ctx context.Context, userID, logID string, sets []Set) error
	Delete(ctx context.Context, userID, logID string) error
}

type exerciseLookup interface {
	Get(ctx context.Context, id string) (*exercises.Exercise, error)
}

// recordsInvalidator drops computed personal records of a user.
type recordsInvalidator interface {
	InvalidateUser(userID string)
}

type Service struct {
	sessions    *SessionList
	logs        logStore
	exercises   exerciseLookup
	invalidator recordsInvalidator
	metrics     *metrics.Manager

	// overridden in tests
	now func() time.Time
}

func NewService(
	sessions *SessionList,
	logs logStore,
	exercises exerciseLookup,
	invalidator recordsInvalidator,
	metricsManager *metrics.Manager,
) *Service {
	return &Service{
		sessions:    sessions,
		logs:        logs,
		exercises:   exercises,
		invalidator: invalidator,
		metrics:     metricsManager,
		now:         time.Now,
	}
}

func (s *Service) ListSessions(ctx context.Context, userID string, force bool) ([]Session, error) {
	return s.sessions.Sessions(ctx, userID, force)
}

func (s *Service) GetSession(ctx context.Context, userID, sessionID string) (*Session, error) {
	return s.sessions.Session(ctx, userID, sessionID)
}

// AddSession creates a session dated now.
func (s *Service) AddSession(ctx context.Context, userID string, in SessionInput) (*Session, error) {
	return s.sessions.Add(ctx, Session{
		UserID:        userID,
		Date:          s.now(),
		BodyPartIDs:   in.BodyPartIDs(),
		BodyPartNames: in.BodyPartNames(),
		Notes:         in.Notes,
	})
}

func (s *Service) UpdateSession(ctx context.Context, userID, sessionID string, in SessionInput) (*Session, error) {
	updated, err := s.sessions.Update(ctx, userID, sessionID, in)
	if err != nil {
		return nil, err
	}
	// backfilled log dates can change record dates
	s.invalidator.InvalidateUser(userID)
	return updated, nil
}

func (s *Service) DeleteSession(ctx context.Context, userID, sessionID string) error {
	deletedLogs, err := s.sessions.Delete(ctx, userID, sessionID)
	if err != nil {
		return err
	}

	log.Debugf("session %s deleted with %d logs", sessionID, deletedLogs)
	s.recordLogWrite("delete_session")
	s.invalidator.InvalidateUser(userID)
	return nil
}

func (s *Service) SessionLogs(ctx context.Context, userID, sessionID string) ([]Log, error) {
	return s.logs.ListForSession(ctx, userID, sessionID)
}

func (s *Service) RecentLog(ctx context.Context, userID, exerciseID string) (*Log, error) {
	return s.logs.RecentForExercise(ctx, userID, exerciseID)
}

// AddLog stores a log within the session. It takes the session date and the exercise name.
func (s *Service) AddLog(ctx context.Context, userID string, in LogInput) (*Log, error) {
	if err := ValidateSets(in.Sets); err != nil {
		return nil, err
	}

	session, err := s.sessions.Session(ctx, userID, in.SessionID)
	if err != nil {
		return nil, err
	}

	exercise, err := s.exercises.Get(ctx, in.ExerciseID)
	if err != nil {
		return nil, fmt.Errorf("get exercise %s: %w", in.ExerciseID, err)
	}

	sessionDate := session.Date
	added, err := s.logs.Add(ctx, Log{
		UserID:       userID,
		SessionID:    session.ID,
		ExerciseID:   exercise.ID,
		ExerciseName: exercise.Name,
		Sets:         in.Sets,
		Date:         &sessionDate,
		Notes:        in.Notes,
	})
	if err != nil {
		return nil, err
	}

	s.recordLogWrite("add")
	s.invalidator.InvalidateUser(userID)
	return added, nil
}

func (s *Service) UpdateLogSets(ctx context.Context, userID, logID string, sets []Set) error {
	if err := ValidateSets(sets); err != nil {
		return err
	}
	if err := s.logs.UpdateSets(ctx, userID, logID, sets); err != nil {
		return err
	}

	s.recordLogWrite("update_sets")
	s.invalidator.InvalidateUser(userID)
	return nil
}

func (s *Service) DeleteLog(ctx context.Context, userID, logID string) error {
	if err := s.logs.Delete(ctx, userID, logID); err != nil {
		return err
	}

	s.recordLogWrite("delete")
	s.invalidator.InvalidateUser(userID)
	return nil
}

// ForgetUser drops the memoized session list, e.g. on sign-out.
func (s *Service) ForgetUser(userID string) {
	s.sessions.Forget(userID)
}

func (s *Service) recordLogWrite(op string) {
	if s.metrics == nil {
		return
	}
	s.metrics.CounterWorkoutLogWrites.WithLabelValues(op).Inc()
}
