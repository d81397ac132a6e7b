package mcp

import (
	"context"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"tableflip.dev/weddingbook/pkg/parser"
)

func registerTools(srv *server.MCPServer, svc *Service) {
	registerExecuteTool(srv, svc)
	registerListPersonsTool(srv, svc)
	registerListWeddingsTool(srv, svc)
	registerGetWeddingTool(srv, svc)
	registerPendingTool(srv, svc)
	registerListCommandsTool(srv)
}

func registerExecuteTool(srv *server.MCPServer, svc *Service) {
	tool := mcp.NewTool(
		"execute_command",
		mcp.WithDescription("Run one address book command, e.g. \"addWedding n/Tan Lee d/20-Feb-2026 l/Hall\". "+
			"Commands that need confirmation are held until \"y\" is executed, unless confirm is set."),
		mcp.WithString("command",
			mcp.Required(),
			mcp.Description("The command line to run. Use list_commands for the vocabulary."),
		),
		mcp.WithBoolean("confirm",
			mcp.Description("Confirm the command immediately if it asks for confirmation."),
		),
	)

	srv.AddTool(tool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		var args struct {
			Command string `json:"command"`
			Confirm bool   `json:"confirm"`
		}
		if err := request.BindArguments(&args); err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("invalid arguments: %v", err)), nil
		}

		res, err := svc.Execute(ctx, args.Command, args.Confirm)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return toJSONResult(res)
	})
}

func registerListPersonsTool(srv *server.MCPServer, svc *Service) {
	tool := mcp.NewTool(
		"list_persons",
		mcp.WithDescription("List the persons in the current view. Use find, filter or list through execute_command to change the view."),
	)

	srv.AddTool(tool, func(ctx context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		persons := svc.Persons(ctx)
		return toJSONResult(map[string]any{
			"persons": persons,
			"count":   len(persons),
		})
	})
}

func registerListWeddingsTool(srv *server.MCPServer, svc *Service) {
	tool := mcp.NewTool(
		"list_weddings",
		mcp.WithDescription("List the weddings in the current view, in the current sort order."),
	)

	srv.AddTool(tool, func(ctx context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		weddings := svc.Weddings(ctx)
		return toJSONResult(map[string]any{
			"weddings": weddings,
			"count":    len(weddings),
		})
	})
}

func registerGetWeddingTool(srv *server.MCPServer, svc *Service) {
	tool := mcp.NewTool(
		"get_wedding",
		mcp.WithDescription("Fetch a single wedding and its tasks by ID."),
		mcp.WithString("id",
			mcp.Required(),
			mcp.Description("Wedding identifier, e.g. W1."),
		),
	)

	srv.AddTool(tool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		id, err := request.RequireString("id")
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}

		dto, err := svc.Wedding(ctx, id)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return toJSONResult(dto)
	})
}

func registerPendingTool(srv *server.MCPServer, svc *Service) {
	tool := mcp.NewTool(
		"pending_command",
		mcp.WithDescription("Report the command awaiting confirmation, if any."),
	)

	srv.AddTool(tool, func(_ context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		keyword, ok := svc.Pending()
		return toJSONResult(map[string]any{
			"pending": ok,
			"command": keyword,
		})
	})
}

func registerListCommandsTool(srv *server.MCPServer) {
	tool := mcp.NewTool(
		"list_commands",
		mcp.WithDescription("List the commands execute_command understands."),
	)

	srv.AddTool(tool, func(_ context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		return toJSONResult(map[string]any{
			"commands": parser.Usages(),
		})
	})
}

func toJSONResult(data any) (*mcp.CallToolResult, error) {
	result, err := mcp.NewToolResultJSON(data)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("marshal error: %v", err)), nil
	}
	return result, nil
}
