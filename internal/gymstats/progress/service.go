package progress

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/2beens/gymlog/internal/auth"
	"github.com/2beens/gymlog/internal/gymstats/exercises"
	"github.com/2beens/gymlog/internal/gymstats/workouts"
	"github.com/2beens/gymlog/internal/telemetry/metrics"
	"github.com/2beens/gymlog/internal/telemetry/tracing"

	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
	"golang.org/x/sync/errgroup"
)

var ErrNotAuthenticated = errors.New("not authenticated")

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=progress
type catalogProvider interface {
	List(ctx context.Context) ([]exercises.Exercise, error)
}

type logProvider interface {
	ListForUser(ctx context.Context, userID string) ([]workouts.Log, error)
	ListForExercise(ctx context.Context, userID, exerciseID string) ([]workouts.Log, error)
	ListForSession(ctx context.Context, userID, sessionID string) ([]workouts.Log, error)
}

type sessionProvider interface {
	GetSession(ctx context.Context, userID, sessionID string) (*workouts.Session, error)
}

// RecordsResult carries the records and how they were obtained.
// Stale is set when computing failed and the previous records were served.
type RecordsResult struct {
	Records []PersonalRecord
	Cached  bool
	Stale   bool
}

type ExerciseSummary struct {
	LogID        string         `json:"logId"`
	ExerciseID   string         `json:"exerciseId"`
	ExerciseName string         `json:"exerciseName"`
	Sets         []workouts.Set `json:"sets"`
	BestSet      string         `json:"bestSet"`
	MaxWeight    float64        `json:"maxWeight"`
	Volume       string         `json:"volume"`
}

type SessionSummary struct {
	SessionID   string            `json:"sessionId"`
	Title       string            `json:"title"`
	Date        time.Time         `json:"date"`
	Exercises   []ExerciseSummary `json:"exercises"`
	TotalVolume string            `json:"totalVolume"`
}

type Service struct {
	catalog  catalogProvider
	logs     logProvider
	sessions sessionProvider
	caches   *Caches
	metrics  *metrics.Manager
}

func NewService(
	catalog catalogProvider,
	logs logProvider,
	sessions sessionProvider,
	caches *Caches,
	metricsManager *metrics.Manager,
) *Service {
	return &Service{
		catalog:  catalog,
		logs:     logs,
		sessions: sessions,
		caches:   caches,
		metrics:  metricsManager,
	}
}

// Records returns the personal records of the identity, served from its session cache
// unless forced. A failed computation is logged and the previous records (or none)
// are returned, leaving the cache untouched.
func (s *Service) Records(ctx context.Context, identity auth.Identity, force bool) RecordsResult {
	if identity.IsZero() {
		return RecordsResult{Records: []PersonalRecord{}}
	}

	ctx, span := tracing.GlobalTracer.Start(ctx, "progressService.records")
	defer span.End()
	span.SetAttributes(
		attribute.String("user.id", identity.UserID),
		attribute.Bool("force", force),
	)

	cache := s.caches.For(identity)
	records, hit, err := cache.GetOrCompute(ctx, identity.UserID, force, func(ctx context.Context) ([]PersonalRecord, error) {
		return s.compute(ctx, identity.UserID)
	})
	if err != nil {
		log.Errorf("compute personal records for %s: %s", identity.UserID, err)
		span.RecordError(err)
		s.metrics.CounterRecordsFailures.Inc()
		return RecordsResult{
			Records: cache.Previous(identity.UserID),
			Stale:   true,
		}
	}

	if hit {
		s.metrics.CounterRecordsCacheHits.Inc()
	} else {
		s.metrics.CounterRecordsCacheMisses.Inc()
	}
	span.SetAttributes(attribute.Bool("cache.hit", hit), attribute.Int("records.count", len(records)))

	return RecordsResult{
		Records: records,
		Cached:  hit,
	}
}

func (s *Service) compute(ctx context.Context, userID string) ([]PersonalRecord, error) {
	start := time.Now()
	defer func() {
		s.metrics.HistRecordsComputeDuration.Observe(time.Since(start).Seconds())
	}()

	var (
		catalog []exercises.Exercise
		logs    []workouts.Log
	)
	g, gCtx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		catalog, err = s.catalog.List(gCtx)
		if err != nil {
			return fmt.Errorf("list exercises: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		logs, err = s.logs.ListForUser(gCtx, userID)
		if err != nil {
			return fmt.Errorf("list logs: %w", err)
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	s.metrics.CounterRecordsComputations.Inc()
	return ComputeAllRecords(userID, logs, catalog), nil
}

// BestSet returns the best set ever done by the identity for the exercise.
func (s *Service) BestSet(ctx context.Context, identity auth.Identity, exerciseID string) (workouts.Set, error) {
	if identity.IsZero() {
		return workouts.Set{}, nil
	}

	logs, err := s.logs.ListForExercise(ctx, identity.UserID, exerciseID)
	if err != nil {
		return workouts.Set{}, err
	}

	return FindBestSet(identity.UserID, exerciseID, logs), nil
}

func (s *Service) SessionSummary(ctx context.Context, identity auth.Identity, sessionID string) (*SessionSummary, error) {
	if identity.IsZero() {
		return nil, ErrNotAuthenticated
	}

	session, err := s.sessions.GetSession(ctx, identity.UserID, sessionID)
	if err != nil {
		return nil, err
	}

	logs, err := s.logs.ListForSession(ctx, identity.UserID, sessionID)
	if err != nil {
		return nil, err
	}

	summary := &SessionSummary{
		SessionID: session.ID,
		Title:     session.Title,
		Date:      session.Date,
		Exercises: make([]ExerciseSummary, 0, len(logs)),
	}
	var allSets []workouts.Set
	for _, l := range logs {
		summary.Exercises = append(summary.Exercises, ExerciseSummary{
			LogID:        l.ID,
			ExerciseID:   l.ExerciseID,
			ExerciseName: l.ExerciseName,
			Sets:         l.Sets,
			BestSet:      workouts.FormatBestSet(l.Sets),
			MaxWeight:    workouts.MaxWeight(l.Sets),
			Volume:       workouts.FormatVolume(l.Sets),
		})
		allSets = append(allSets, l.Sets...)
	}
	summary.TotalVolume = workouts.FormatVolume(allSets)

	return summary, nil
}
