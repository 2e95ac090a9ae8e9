package mcp

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/kennyvt/kennyvt.github.io/internal/core/domain"
)

// defaultLimit applies when neither the caller nor settings give a limit.
const defaultLimit = 10

// SearchInput is the input schema for the search tool.
type SearchInput struct {
	Query string `json:"query" jsonschema:"free-text query; tokens shorter than 2 characters are ignored"`
	Limit int    `json:"limit,omitempty" jsonschema:"maximum number of results to return (default 10)"`
}

// SearchOutput is the output schema for the search tool.
type SearchOutput struct {
	Results []SearchResultOutput `json:"results"`
	Count   int                  `json:"count"`
}

// SearchResultOutput represents a single ranked document.
type SearchResultOutput struct {
	Title        string           `json:"title"`
	Path         string           `json:"path"`
	TitleScore   int              `json:"title_score"`
	ContentScore int              `json:"content_score"`
	TotalScore   int              `json:"total_score"`
	Relevance    int              `json:"relevance"`
	Snippets     []domain.Snippet `json:"snippets"`
}

// registerTools registers all tool handlers with the MCP server.
func (s *Server) registerTools() {
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "search",
		Description: "Rank indexed documents by title and content matches for a query",
	}, s.handleSearch)
}

// handleSearch handles the search tool invocation.
func (s *Server) handleSearch(
	_ context.Context,
	_ *mcp.CallToolRequest,
	input SearchInput,
) (*mcp.CallToolResult, SearchOutput, error) {
	results := s.ports.Search.Search(input.Query, s.searchOptions(input.Limit))
	return nil, toOutput(results), nil
}

// searchOptions fills the limit and snippet cap from settings when available.
func (s *Server) searchOptions(limit int) domain.SearchOptions {
	opts := domain.SearchOptions{Limit: limit}
	if s.ports.Settings != nil {
		if settings, err := s.ports.Settings.Get(); err == nil {
			opts.MaxSnippets = settings.Search.MaxSnippets
			if opts.Limit <= 0 {
				opts.Limit = settings.Search.Limit
			}
		}
	}
	if opts.Limit <= 0 {
		opts.Limit = defaultLimit
	}
	return opts
}

func toOutput(results []domain.QueryResult) SearchOutput {
	output := SearchOutput{
		Results: make([]SearchResultOutput, len(results)),
		Count:   len(results),
	}

	for i := range results {
		output.Results[i] = SearchResultOutput{
			Title:        results[i].Title,
			Path:         results[i].Path,
			TitleScore:   results[i].TitleScore,
			ContentScore: results[i].ContentScore,
			TotalScore:   results[i].TotalScore,
			Relevance:    results[i].Relevance(),
			Snippets:     results[i].Snippets,
		}
	}

	return output
}
