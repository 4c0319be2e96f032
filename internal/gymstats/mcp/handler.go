package mcp

import (
	"context"
	"encoding/json"

	"github.com/2beens/gymlog/internal/gymstats/progress"
	"github.com/2beens/gymlog/internal/gymstats/workouts"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	log "github.com/sirupsen/logrus"
)

// Handler exposes MCP tool handlers that delegate to the context service.
type Handler struct {
	service contextService
}

func NewHandler(service contextService) *Handler {
	return &Handler{service: service}
}

type PersonalRecordsInput struct {
	UserID string `json:"user_id" jsonschema:"ID of the user whose personal records are returned"`
	Force  bool   `json:"force,omitempty" jsonschema:"recompute the records even if a cached result exists"`
}

type BestSetInput struct {
	UserID     string `json:"user_id" jsonschema:"ID of the user"`
	ExerciseID string `json:"exercise_id" jsonschema:"ID of the exercise"`
}

type SessionSummaryInput struct {
	UserID    string `json:"user_id" jsonschema:"ID of the user owning the session"`
	SessionID string `json:"session_id" jsonschema:"ID of the workout session"`
}

type recordsOutput struct {
	Records []progress.PersonalRecord `json:"records"`
	Cached  bool                      `json:"cached"`
	Stale   bool                      `json:"stale"`
}

type bestSetOutput struct {
	ExerciseID string       `json:"exerciseId"`
	Set        workouts.Set `json:"set"`
	Formatted  string       `json:"formatted"`
}

func errorResult(prefix string, err error) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		Content: []mcp.Content{&mcp.TextContent{Text: prefix + err.Error()}},
		IsError: true,
	}
}

func jsonResult(v any) (*mcp.CallToolResult, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, err
	}
	return &mcp.CallToolResult{
		Content: []mcp.Content{&mcp.TextContent{Text: string(data)}},
	}, nil
}

// GetGymlogSchemaTool returns the MCP tool handler for get_gymlog_schema.
func (h *Handler) GetGymlogSchemaTool() func(context.Context, *mcp.CallToolRequest, any) (*mcp.CallToolResult, any, error) {
	return func(ctx context.Context, _ *mcp.CallToolRequest, _ any) (*mcp.CallToolResult, any, error) {
		text, err := h.service.GetSchema(ctx)
		if err != nil {
			log.Errorf("mcp: get schema: %s", err)
			return errorResult("Error fetching schema: ", err), nil, nil
		}
		return &mcp.CallToolResult{
			Content: []mcp.Content{&mcp.TextContent{Text: text}},
		}, nil, nil
	}
}

func (h *Handler) GetPersonalRecordsTool() func(context.Context, *mcp.CallToolRequest, PersonalRecordsInput) (*mcp.CallToolResult, any, error) {
	return func(ctx context.Context, _ *mcp.CallToolRequest, in PersonalRecordsInput) (*mcp.CallToolResult, any, error) {
		res, err := h.service.PersonalRecords(ctx, in.UserID, in.Force)
		if err != nil {
			return errorResult("Error fetching personal records: ", err), nil, nil
		}
		records := res.Records
		if records == nil {
			records = []progress.PersonalRecord{}
		}
		out, err := jsonResult(recordsOutput{Records: records, Cached: res.Cached, Stale: res.Stale})
		if err != nil {
			return nil, nil, err
		}
		return out, nil, nil
	}
}

func (h *Handler) GetBestSetTool() func(context.Context, *mcp.CallToolRequest, BestSetInput) (*mcp.CallToolResult, any, error) {
	return func(ctx context.Context, _ *mcp.CallToolRequest, in BestSetInput) (*mcp.CallToolResult, any, error) {
		if in.ExerciseID == "" {
			return errorResult("Error fetching best set: ", errExerciseIDRequired), nil, nil
		}
		set, err := h.service.BestSet(ctx, in.UserID, in.ExerciseID)
		if err != nil {
			return errorResult("Error fetching best set: ", err), nil, nil
		}
		var logged []workouts.Set
		if set != (workouts.Set{}) {
			logged = append(logged, set)
		}
		out, err := jsonResult(bestSetOutput{
			ExerciseID: in.ExerciseID,
			Set:        set,
			Formatted:  workouts.FormatBestSet(logged),
		})
		if err != nil {
			return nil, nil, err
		}
		return out, nil, nil
	}
}

func (h *Handler) GetSessionSummaryTool() func(context.Context, *mcp.CallToolRequest, SessionSummaryInput) (*mcp.CallToolResult, any, error) {
	return func(ctx context.Context, _ *mcp.CallToolRequest, in SessionSummaryInput) (*mcp.CallToolResult, any, error) {
		if in.SessionID == "" {
			return errorResult("Error fetching session summary: ", errSessionIDRequired), nil, nil
		}
		summary, err := h.service.SessionSummary(ctx, in.UserID, in.SessionID)
		if err != nil {
			return errorResult("Error fetching session summary: ", err), nil, nil
		}
		out, err := jsonResult(summary)
		if err != nil {
			return nil, nil, err
		}
		return out, nil, nil
	}
}
