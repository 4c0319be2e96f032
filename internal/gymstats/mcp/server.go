package mcp

import (
	"github.com/2beens/gymlog/internal/db"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

const (
	serverName    = "gymlog"
	serverVersion = "1.0.0"
)

// NewServer creates an MCP server with the gymlog tools, backed by the DB pool
// for the schema and by the progress service for records.
func NewServer(pool db.Pool, progressService progressService) *mcp.Server {
	schemaRepo := NewPoolSchemaRepo(pool)
	service := NewContextService(schemaRepo, progressService)
	handler := NewHandler(service)

	s := mcp.NewServer(&mcp.Implementation{Name: serverName, Version: serverVersion}, nil)
	mcp.AddTool(s, &mcp.Tool{
		Name:        "get_gymlog_schema",
		Description: "Returns the database schema for gymlog tables (body_part, exercise, workout_session, workout_log): table names, columns, types, nullability and defaults.",
	}, handler.GetGymlogSchemaTool())
	mcp.AddTool(s, &mcp.Tool{
		Name:        "get_personal_records",
		Description: "Returns the personal records of a user: heaviest set per exercise, with reps and the date it was achieved. Results are cached until the user's workouts change.",
	}, handler.GetPersonalRecordsTool())
	mcp.AddTool(s, &mcp.Tool{
		Name:        "get_best_set",
		Description: "Returns the best set (highest weight, then most reps) a user has logged for an exercise.",
	}, handler.GetBestSetTool())
	mcp.AddTool(s, &mcp.Tool{
		Name:        "get_session_summary",
		Description: "Returns a summary of one workout session: exercises, their sets, best set, max weight and volume.",
	}, handler.GetSessionSummaryTool())

	return s
}
