package mcp

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/2beens/gymlog/internal/auth"
	"github.com/2beens/gymlog/internal/gymstats/progress"
	"github.com/2beens/gymlog/internal/gymstats/workouts"
)

// MCP callers get their own records cache per user, separate from login sessions.
const identityTokenPrefix = "mcp::"

var (
	ErrUserIDRequired     = errors.New("user_id is required")
	errExerciseIDRequired = errors.New("exercise_id is required")
	errSessionIDRequired  = errors.New("session_id is required")
)

type progressService interface {
	Records(ctx context.Context, identity auth.Identity, force bool) progress.RecordsResult
	BestSet(ctx context.Context, identity auth.Identity, exerciseID string) (workouts.Set, error)
	SessionSummary(ctx context.Context, identity auth.Identity, sessionID string) (*progress.SessionSummary, error)
}

// contextService provides gymlog context data (schema, records, best sets, session summaries).
type contextService interface {
	GetSchema(ctx context.Context) (string, error)
	PersonalRecords(ctx context.Context, userID string, force bool) (progress.RecordsResult, error)
	BestSet(ctx context.Context, userID, exerciseID string) (workouts.Set, error)
	SessionSummary(ctx context.Context, userID, sessionID string) (*progress.SessionSummary, error)
}

// ContextService holds dependencies and implements the gymlog context business logic.
type ContextService struct {
	schema   SchemaRepo
	progress progressService
}

func NewContextService(schemaRepo SchemaRepo, progressService progressService) *ContextService {
	return &ContextService{
		schema:   schemaRepo,
		progress: progressService,
	}
}

func identityFor(userID string) (auth.Identity, error) {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return auth.Identity{}, ErrUserIDRequired
	}
	return auth.Identity{
		UserID: userID,
		Token:  identityTokenPrefix + userID,
		Role:   auth.RoleUser,
	}, nil
}

// GetSchema returns the DB schema (table names, columns, types) for gymlog tables.
func (s *ContextService) GetSchema(ctx context.Context) (string, error) {
	cols, err := s.schema.GetGymlogColumns(ctx)
	if err != nil {
		return "", err
	}
	return formatGymlogSchema(cols), nil
}

func formatGymlogSchema(cols []SchemaColumn) string {
	if len(cols) == 0 {
		return "# Gymlog DB Schema\n\nNo gymlog tables found in the database.\n"
	}

	byTable := make(map[string][]SchemaColumn)
	for _, c := range cols {
		byTable[c.TableName] = append(byTable[c.TableName], c)
	}

	tableOrder := make([]string, 0, len(byTable))
	for t := range byTable {
		tableOrder = append(tableOrder, t)
	}
	sort.Strings(tableOrder)

	var b strings.Builder
	b.WriteString("# Gymlog DB Schema\n\n")
	b.WriteString("Tables: ")
	b.WriteString(strings.Join(gymlogTables, ", "))
	b.WriteString(" (schema: public).\n\n")

	for _, tableName := range tableOrder {
		b.WriteString("## ")
		b.WriteString(tableName)
		b.WriteString("\n\n| Column | Type | Nullable | Default |\n|--------|------|----------|--------|\n")
		for _, c := range byTable[tableName] {
			def := "—"
			if c.ColumnDef != nil && *c.ColumnDef != "" {
				def = *c.ColumnDef
			}
			fmt.Fprintf(&b, "| %s | %s | %s | %s |\n", c.ColumnName, c.DataType, c.IsNullable, def)
		}
		b.WriteString("\n")
	}

	return strings.TrimSuffix(b.String(), "\n\n") + "\n"
}

// PersonalRecords returns the personal records of the user. Failed computations
// come back as stale records, not as an error.
func (s *ContextService) PersonalRecords(ctx context.Context, userID string, force bool) (progress.RecordsResult, error) {
	identity, err := identityFor(userID)
	if err != nil {
		return progress.RecordsResult{}, err
	}
	return s.progress.Records(ctx, identity, force), nil
}

func (s *ContextService) BestSet(ctx context.Context, userID, exerciseID string) (workouts.Set, error) {
	identity, err := identityFor(userID)
	if err != nil {
		return workouts.Set{}, err
	}
	return s.progress.BestSet(ctx, identity, exerciseID)
}

func (s *ContextService) SessionSummary(ctx context.Context, userID, sessionID string) (*progress.SessionSummary, error) {
	identity, err := identityFor(userID)
	if err != nil {
		return nil, err
	}
	return s.progress.SessionSummary(ctx, identity, sessionID)
}
