package mcp

import (
	"context"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

func registerTools(srv *server.MCPServer, svc *Service) {
	registerListRecordsTool(srv, svc)
	registerMergeTimekeepTool(srv, svc)
}

func registerListRecordsTool(srv *server.MCPServer, svc *Service) {
	tool := mcp.NewTool(
		"list_records",
		mcp.WithDescription("List timekeep records discovered in the vault."),
		mcp.WithString("query",
			mcp.Description("Optional case-insensitive substring filter on document paths."),
		),
	)

	srv.AddTool(tool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		var args struct {
			Query string `json:"query"`
		}
		if err := request.BindArguments(&args); err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("invalid arguments: %v", err)), nil
		}

		records, err := svc.ListRecords(ctx, args.Query)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return toJSONResult(records)
	})
}

func registerMergeTimekeepTool(srv *server.MCPServer, svc *Service) {
	tool := mcp.NewTool(
		"merge_timekeep",
		mcp.WithDescription("Merge timekeep records into one chronological record and return the embedded block text."),
		mcp.WithArray("paths",
			mcp.Description("Path substrings selecting records to merge; omit to merge every record."),
			mcp.WithStringItems(),
		),
		mcp.WithString("from",
			mcp.Description("Optional range start date, YYYY-MM-DD. Requires 'to'."),
		),
		mcp.WithString("to",
			mcp.Description("Optional range end date, YYYY-MM-DD. Requires 'from'."),
		),
	)

	srv.AddTool(tool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		var args struct {
			Paths []string `json:"paths"`
			From  string   `json:"from"`
			To    string   `json:"to"`
		}
		if err := request.BindArguments(&args); err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("invalid arguments: %v", err)), nil
		}

		result, err := svc.MergeRecords(ctx, args.Paths, args.From, args.To)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return toJSONResult(result)
	})
}

func toJSONResult(data any) (*mcp.CallToolResult, error) {
	result, err := mcp.NewToolResultJSON(data)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("marshal error: %v", err)), nil
	}
	return result, nil
}
