package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

func registerResources(srv *server.MCPServer, svc *Service) {
	registerPersonsResource(srv, svc)
	registerWeddingsResource(srv, svc)
	registerWeddingTemplate(srv, svc)
}

func registerPersonsResource(srv *server.MCPServer, svc *Service) {
	resource := mcp.NewResource(
		"weddingbook://persons",
		"Persons",
		mcp.WithResourceDescription("Persons in the current view."),
		mcp.WithMIMEType("application/json"),
	)

	srv.AddResource(resource, func(ctx context.Context, request mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
		persons := svc.Persons(ctx)
		payload := map[string]any{
			"persons": persons,
			"count":   len(persons),
		}
		return encodeResourceJSON(request.Params.URI, payload)
	})
}

func registerWeddingsResource(srv *server.MCPServer, svc *Service) {
	resource := mcp.NewResource(
		"weddingbook://weddings",
		"Weddings",
		mcp.WithResourceDescription("Weddings in the current view and sort order."),
		mcp.WithMIMEType("application/json"),
	)

	srv.AddResource(resource, func(ctx context.Context, request mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
		weddings := svc.Weddings(ctx)
		payload := map[string]any{
			"weddings": weddings,
			"count":    len(weddings),
		}
		return encodeResourceJSON(request.Params.URI, payload)
	})
}

func registerWeddingTemplate(srv *server.MCPServer, svc *Service) {
	template := mcp.NewResourceTemplate(
		"weddingbook://weddings/{id}",
		"Wedding Details",
		mcp.WithTemplateDescription("A single wedding with its tasks."),
		mcp.WithTemplateMIMEType("application/json"),
	)

	srv.AddResourceTemplate(template, func(ctx context.Context, request mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
		id, _ := request.Params.Arguments["id"].(string)
		if id == "" {
			return nil, fmt.Errorf("wedding id is required")
		}

		dto, err := svc.Wedding(ctx, id)
		if err != nil {
			return nil, err
		}

		payload := map[string]any{
			"wedding": dto,
		}
		return encodeResourceJSON(request.Params.URI, payload)
	})
}

func encodeResourceJSON(uri string, payload any) ([]mcp.ResourceContents, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	return []mcp.ResourceContents{
		mcp.TextResourceContents{
			URI:      uri,
			MIMEType: "application/json",
			Text:     string(data),
		},
	}, nil
}
