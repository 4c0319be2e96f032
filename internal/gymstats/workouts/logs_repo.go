package workouts

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/2beens/gymlog/internal/db"
	"github.com/2beens/gymlog/internal/telemetry/tracing"
	"github.com/2beens/gymlog/pkg"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.opentelemetry.io/otel/attribute"
)

var psql = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)

var logColumns = []string{
	"id", "user_id", "session_id", "exercise_id", "exercise_name", "sets", "date", "notes",
}

// LogsRepo stores workout logs. It works on a pool or on a transaction.
type LogsRepo struct {
	db db.Pool
}

func NewLogsRepo(db db.Pool) *LogsRepo {
	return &LogsRepo{
		db: db,
	}
}

// ListForUser returns all logs of the user. Logs without a date come first.
func (r *LogsRepo) ListForUser(ctx context.Context, userID string) (_ []Log, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.logs.listForUser")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("user.id", userID))

	return r.list(ctx,
		psql.Select(logColumns...).
			From("workout_log").
			Where(squirrel.Eq{"user_id": userID}).
			OrderBy("date ASC NULLS FIRST", "id"),
	)
}

func (r *LogsRepo) ListForSession(ctx context.Context, userID, sessionID string) (_ []Log, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.logs.listForSession")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("session.id", sessionID))

	return r.list(ctx,
		psql.Select(logColumns...).
			From("workout_log").
			Where(squirrel.Eq{"user_id": userID, "session_id": sessionID}).
			OrderBy("id"),
	)
}

func (r *LogsRepo) ListForExercise(ctx context.Context, userID, exerciseID string) (_ []Log, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.logs.listForExercise")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("exercise.id", exerciseID))

	return r.list(ctx,
		psql.Select(logColumns...).
			From("workout_log").
			Where(squirrel.Eq{"user_id": userID, "exercise_id": exerciseID}).
			OrderBy("date ASC NULLS FIRST", "id"),
	)
}

// RecentForExercise returns the newest dated log of the exercise, or ErrLogNotFound.
func (r *LogsRepo) RecentForExercise(ctx context.Context, userID, exerciseID string) (_ *Log, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.logs.recentForExercise")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("exercise.id", exerciseID))

	logs, err := r.list(ctx,
		psql.Select(logColumns...).
			From("workout_log").
			Where(squirrel.Eq{"user_id": userID, "exercise_id": exerciseID}).
			Where(squirrel.NotEq{"date": nil}).
			OrderBy("date DESC").
			Limit(1),
	)
	if err != nil {
		return nil, err
	}
	if len(logs) == 0 {
		return nil, ErrLogNotFound
	}
	return &logs[0], nil
}

func (r *LogsRepo) Add(ctx context.Context, l Log) (_ *Log, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.logs.add")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	if l.Sets == nil {
		l.Sets = []Set{}
	}
	setsJSON, err := json.Marshal(l.Sets)
	if err != nil {
		return nil, fmt.Errorf("marshal sets: %w", err)
	}

	l.ID = uuid.NewString()
	query, args, err := psql.Insert("workout_log").
		Columns(logColumns...).
		Values(l.ID, l.UserID, l.SessionID, l.ExerciseID, l.ExerciseName, setsJSON, l.Date, l.Notes).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build insert log query: %w", err)
	}

	if _, err := r.db.Exec(ctx, query, args...); err != nil {
		if pkg.IsForeignKeyViolationError(err) {
			return nil, ErrSessionNotFound
		}
		return nil, fmt.Errorf("insert log: %w", err)
	}

	span.SetAttributes(attribute.String("log.id", l.ID))
	return &l, nil
}

func (r *LogsRepo) UpdateSets(ctx context.Context, userID, logID string, sets []Set) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.logs.updateSets")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("log.id", logID))

	if sets == nil {
		sets = []Set{}
	}
	setsJSON, err := json.Marshal(sets)
	if err != nil {
		return fmt.Errorf("marshal sets: %w", err)
	}

	tag, err := r.db.Exec(
		ctx,
		`UPDATE workout_log SET sets = $1 WHERE id = $2 AND user_id = $3`,
		setsJSON, logID, userID,
	)
	if err != nil {
		return fmt.Errorf("update log sets: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrLogNotFound
	}
	return nil
}

func (r *LogsRepo) Delete(ctx context.Context, userID, logID string) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.logs.delete")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("log.id", logID))

	tag, err := r.db.Exec(
		ctx,
		`DELETE FROM workout_log WHERE id = $1 AND user_id = $2`,
		logID, userID,
	)
	if err != nil {
		return fmt.Errorf("delete log: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrLogNotFound
	}
	return nil
}

// DeleteForSession removes all logs of the session in one statement.
func (r *LogsRepo) DeleteForSession(ctx context.Context, userID, sessionID string) (_ int64, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.logs.deleteForSession")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("session.id", sessionID))

	tag, err := r.db.Exec(
		ctx,
		`DELETE FROM workout_log WHERE session_id = $1 AND user_id = $2`,
		sessionID, userID,
	)
	if err != nil {
		return 0, fmt.Errorf("delete session logs: %w", err)
	}
	return tag.RowsAffected(), nil
}

// BackfillDates stamps the given date on session logs that have none.
func (r *LogsRepo) BackfillDates(ctx context.Context, userID, sessionID string, date time.Time) (_ int64, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.logs.backfillDates")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	tag, err := r.db.Exec(
		ctx,
		`UPDATE workout_log SET date = $1 WHERE session_id = $2 AND user_id = $3 AND date IS NULL`,
		date, sessionID, userID,
	)
	if err != nil {
		return 0, fmt.Errorf("backfill log dates: %w", err)
	}
	return tag.RowsAffected(), nil
}

func (r *LogsRepo) list(ctx context.Context, builder squirrel.SelectBuilder) ([]Log, error) {
	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list logs query: %w", err)
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list logs: %w", err)
	}
	defer rows.Close()

	logs := []Log{}
	for rows.Next() {
		l, err := scanLog(rows)
		if err != nil {
			return nil, fmt.Errorf("scan log: %w", err)
		}
		logs = append(logs, *l)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list logs rows: %w", err)
	}

	return logs, nil
}

func scanLog(row pgx.Row) (*Log, error) {
	var (
		l        Log
		setsJSON []byte
	)
	if err := row.Scan(
		&l.ID, &l.UserID, &l.SessionID, &l.ExerciseID, &l.ExerciseName, &setsJSON, &l.Date, &l.Notes,
	); err != nil {
		return nil, err
	}

	l.Sets = []Set{}
	if len(setsJSON) > 0 {
		if err := json.Unmarshal(setsJSON, &l.Sets); err != nil {
			return nil, fmt.Errorf("unmarshal sets of log %s: %w", l.ID, err)
		}
	}
	return &l, nil
}
