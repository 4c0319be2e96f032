package exercises

import (
	"context"
	"errors"
	"fmt"

	"github.com/2beens/gymlog/internal/db"
	"github.com/2beens/gymlog/internal/telemetry/tracing"
	"github.com/2beens/gymlog/pkg"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.opentelemetry.io/otel/attribute"
)

var (
	ErrExerciseNotFound = errors.New("exercise not found")
	ErrBodyPartNotFound = errors.New("body part not found")
)

var psql = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)

var exerciseColumns = []string{
	"id", "name", "description", "body_part_id", "body_part_name", "equipment", "image_url",
}

type Repo struct {
	db db.Pool
}

func NewRepo(db db.Pool) *Repo {
	return &Repo{
		db: db,
	}
}

// List returns the whole catalog, sorted by body part name, then exercise name.
func (r *Repo) List(ctx context.Context) (_ []Exercise, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.exercises.list")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	query, args, err := psql.
		Select(exerciseColumns...).
		From("exercise").
		OrderBy("body_part_name", "name").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list query: %w", err)
	}

	exercises := []Exercise{}
	if err := pgxscan.Select(ctx, r.db, &exercises, query, args...); err != nil {
		return nil, fmt.Errorf("list exercises: %w", err)
	}

	span.SetAttributes(attribute.Int("exercises.count", len(exercises)))
	return exercises, nil
}

func (r *Repo) Get(ctx context.Context, id string) (_ *Exercise, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.exercises.get")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("id", id))

	query, args, err := psql.
		Select(exerciseColumns...).
		From("exercise").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get query: %w", err)
	}

	var exercise Exercise
	if err := pgxscan.Get(ctx, r.db, &exercise, query, args...); err != nil {
		if pgxscan.NotFound(err) {
			return nil, ErrExerciseNotFound
		}
		return nil, fmt.Errorf("get exercise: %w", err)
	}

	return &exercise, nil
}

// Add stores a new exercise. The body part name is denormalized from the body part table.
func (r *Repo) Add(ctx context.Context, exercise Exercise) (_ *Exercise, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.exercises.add")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	bodyPart, err := r.GetBodyPart(ctx, exercise.BodyPartID)
	if err != nil {
		return nil, err
	}

	exercise.ID = uuid.NewString()
	exercise.BodyPartName = bodyPart.Name

	query, args, err := psql.
		Insert("exercise").
		Columns(exerciseColumns...).
		Values(
			exercise.ID, exercise.Name, exercise.Description,
			exercise.BodyPartID, exercise.BodyPartName, exercise.Equipment, exercise.ImageURL,
		).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build insert query: %w", err)
	}

	if _, err := r.db.Exec(ctx, query, args...); err != nil {
		// body part removed in the meantime
		if pkg.IsForeignKeyViolationError(err) {
			return nil, ErrBodyPartNotFound
		}
		return nil, fmt.Errorf("insert exercise: %w", err)
	}

	span.SetAttributes(attribute.String("exercise.id", exercise.ID))
	return &exercise, nil
}

func (r *Repo) Update(ctx context.Context, id string, update ExerciseUpdate) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.exercises.update")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("id", id))

	if update.IsEmpty() {
		return nil
	}

	builder := psql.Update("exercise").Where(squirrel.Eq{"id": id})
	if update.Name != nil {
		builder = builder.Set("name", *update.Name)
	}
	if update.Description != nil {
		builder = builder.Set("description", *update.Description)
	}
	if update.BodyPartID != nil {
		bodyPart, err := r.GetBodyPart(ctx, *update.BodyPartID)
		if err != nil {
			return err
		}
		builder = builder.
			Set("body_part_id", bodyPart.ID).
			Set("body_part_name", bodyPart.Name)
	}
	if update.Equipment != nil {
		builder = builder.Set("equipment", *update.Equipment)
	}
	if update.ImageURL != nil {
		builder = builder.Set("image_url", *update.ImageURL)
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return fmt.Errorf("build update query: %w", err)
	}

	tag, err := r.db.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("update exercise: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrExerciseNotFound
	}

	return nil
}

func (r *Repo) Delete(ctx context.Context, id string) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.exercises.delete")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("id", id))

	tag, err := r.db.Exec(
		ctx,
		`DELETE FROM exercise WHERE id = $1`,
		id,
	)
	if err != nil {
		return fmt.Errorf("delete exercise: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrExerciseNotFound
	}
	return nil
}

// ListBodyParts returns all body parts, sorted by name.
func (r *Repo) ListBodyParts(ctx context.Context) (_ []BodyPart, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.exercises.listBodyParts")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	bodyParts := []BodyPart{}
	if err := pgxscan.Select(
		ctx, r.db, &bodyParts,
		`SELECT id, name, image_url FROM body_part ORDER BY name`,
	); err != nil {
		return nil, fmt.Errorf("list body parts: %w", err)
	}

	return bodyParts, nil
}

func (r *Repo) GetBodyPart(ctx context.Context, id string) (_ *BodyPart, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.exercises.getBodyPart")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("id", id))

	var bodyPart BodyPart
	err = r.db.QueryRow(
		ctx,
		`SELECT id, name, image_url FROM body_part WHERE id = $1`,
		id,
	).Scan(&bodyPart.ID, &bodyPart.Name, &bodyPart.ImageURL)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrBodyPartNotFound
		}
		return nil, fmt.Errorf("get body part: %w", err)
	}

	return &bodyPart, nil
}
