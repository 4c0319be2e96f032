package workouts

import (
	"context"
	"errors"
	"fmt"

	"github.com/2beens/gymlog/internal/db"
	"github.com/2beens/gymlog/internal/telemetry/tracing"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.opentelemetry.io/otel/attribute"
	"go.uber.org/multierr"
)

var sessionColumns = []string{
	"id", "user_id", "title", "date", "body_part_ids", "body_part_names", "notes",
}

type SessionsRepo struct {
	db db.Pool
}

func NewSessionsRepo(db db.Pool) *SessionsRepo {
	return &SessionsRepo{
		db: db,
	}
}

// List returns the sessions of the user, newest first.
func (r *SessionsRepo) List(ctx context.Context, userID string) (_ []Session, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.sessions.list")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("user.id", userID))

	query, args, err := psql.Select(sessionColumns...).
		From("workout_session").
		Where(squirrel.Eq{"user_id": userID}).
		OrderBy("date DESC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list sessions query: %w", err)
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list sessions: %w", err)
	}
	defer rows.Close()

	sessions := []Session{}
	for rows.Next() {
		s, err := scanSession(rows)
		if err != nil {
			return nil, fmt.Errorf("scan session: %w", err)
		}
		sessions = append(sessions, *s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list sessions rows: %w", err)
	}

	span.SetAttributes(attribute.Int("sessions.count", len(sessions)))
	return sessions, nil
}

func (r *SessionsRepo) Get(ctx context.Context, userID, sessionID string) (_ *Session, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.sessions.get")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("session.id", sessionID))

	query, args, err := psql.Select(sessionColumns...).
		From("workout_session").
		Where(squirrel.Eq{"id": sessionID, "user_id": userID}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get session query: %w", err)
	}

	s, err := scanSession(r.db.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrSessionNotFound
		}
		return nil, fmt.Errorf("get session: %w", err)
	}
	return s, nil
}

// Add stores a new session. Title is derived from body part names and the session date.
func (r *SessionsRepo) Add(ctx context.Context, s Session) (_ *Session, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.sessions.add")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	s.ID = uuid.NewString()
	s.Title = SessionTitle(s.BodyPartNames, s.Date)
	if s.BodyPartIDs == nil {
		s.BodyPartIDs = []string{}
	}
	if s.BodyPartNames == nil {
		s.BodyPartNames = []string{}
	}

	query, args, err := psql.Insert("workout_session").
		Columns(sessionColumns...).
		Values(s.ID, s.UserID, s.Title, s.Date, s.BodyPartIDs, s.BodyPartNames, s.Notes).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build insert session query: %w", err)
	}

	if _, err := r.db.Exec(ctx, query, args...); err != nil {
		return nil, fmt.Errorf("insert session: %w", err)
	}

	span.SetAttributes(attribute.String("session.id", s.ID))
	return &s, nil
}

// Update rewrites the session body parts and notes, recomputes its title from the stored
// session date and stamps that date on child logs that lack one. All in one transaction.
func (r *SessionsRepo) Update(ctx context.Context, userID, sessionID string, in SessionInput) (_ *Session, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.sessions.update")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("session.id", sessionID))

	var updated *Session
	err = r.inTx(ctx, func(tx pgx.Tx) error {
		query, args, err := psql.Select(sessionColumns...).
			From("workout_session").
			Where(squirrel.Eq{"id": sessionID, "user_id": userID}).
			Suffix("FOR UPDATE").
			ToSql()
		if err != nil {
			return fmt.Errorf("build select session query: %w", err)
		}

		session, err := scanSession(tx.QueryRow(ctx, query, args...))
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return ErrSessionNotFound
			}
			return fmt.Errorf("select session: %w", err)
		}

		session.BodyPartIDs = in.BodyPartIDs()
		session.BodyPartNames = in.BodyPartNames()
		session.Notes = in.Notes
		session.Title = SessionTitle(session.BodyPartNames, session.Date)

		query, args, err = psql.Update("workout_session").
			Set("title", session.Title).
			Set("body_part_ids", session.BodyPartIDs).
			Set("body_part_names", session.BodyPartNames).
			Set("notes", session.Notes).
			Where(squirrel.Eq{"id": sessionID, "user_id": userID}).
			ToSql()
		if err != nil {
			return fmt.Errorf("build update session query: %w", err)
		}
		if _, err := tx.Exec(ctx, query, args...); err != nil {
			return fmt.Errorf("update session: %w", err)
		}

		backfilled, err := NewLogsRepo(tx).BackfillDates(ctx, userID, sessionID, session.Date)
		if err != nil {
			return err
		}
		span.SetAttributes(attribute.Int64("logs.backfilled", backfilled))

		updated = session
		return nil
	})
	if err != nil {
		return nil, err
	}

	return updated, nil
}

// DeleteCascade removes the session together with all of its logs, atomically.
// It returns the number of deleted logs.
func (r *SessionsRepo) DeleteCascade(ctx context.Context, userID, sessionID string) (_ int64, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.sessions.deleteCascade")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("session.id", sessionID))

	var deletedLogs int64
	err = r.inTx(ctx, func(tx pgx.Tx) error {
		deleted, err := NewLogsRepo(tx).DeleteForSession(ctx, userID, sessionID)
		if err != nil {
			return err
		}

		tag, err := tx.Exec(
			ctx,
			`DELETE FROM workout_session WHERE id = $1 AND user_id = $2`,
			sessionID, userID,
		)
		if err != nil {
			return fmt.Errorf("delete session: %w", err)
		}
		if tag.RowsAffected() == 0 {
			return ErrSessionNotFound
		}

		deletedLogs = deleted
		return nil
	})
	if err != nil {
		return 0, err
	}

	span.SetAttributes(attribute.Int64("logs.deleted", deletedLogs))
	return deletedLogs, nil
}

// inTx commits if fn succeeds, otherwise rolls back and reports both errors.
func (r *SessionsRepo) inTx(ctx context.Context, fn func(tx pgx.Tx) error) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}

	if err := fn(tx); err != nil {
		if rbErr := tx.Rollback(ctx); rbErr != nil && !errors.Is(rbErr, pgx.ErrTxClosed) {
			return multierr.Append(err, fmt.Errorf("rollback: %w", rbErr))
		}
		return err
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit tx: %w", err)
	}
	return nil
}

func scanSession(row pgx.Row) (*Session, error) {
	var s Session
	if err := row.Scan(
		&s.ID, &s.UserID, &s.Title, &s.Date, &s.BodyPartIDs, &s.BodyPartNames, &s.Notes,
	); err != nil {
		return nil, err
	}
	if s.BodyPartIDs == nil {
		s.BodyPartIDs = []string{}
	}
	if s.BodyPartNames == nil {
		s.BodyPartNames = []string{}
	}
	return &s, nil
}
