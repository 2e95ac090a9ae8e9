package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

const (
	// uriScheme is the custom URI scheme for docsearch resources.
	uriScheme = "docsearch://"
)

// registerResources registers all resource handlers with the MCP server.
func (s *Server) registerResources() {
	s.server.AddResource(&mcp.Resource{
		URI:         uriScheme + "corpus",
		Name:        "corpus",
		Description: "Load state and size of the search corpus",
		MIMEType:    "application/json",
	}, s.handleCorpusResource)

	s.server.AddResourceTemplate(&mcp.ResourceTemplate{
		URITemplate: uriScheme + "search/{query}",
		Name:        "search-results",
		Description: "Ranked results for a URL-escaped query",
		MIMEType:    "application/json",
	}, s.handleSearchResource)
}

// corpusInfo describes the engine's corpus.
type corpusInfo struct {
	State     string `json:"state"`
	Documents int    `json:"documents"`
	Error     string `json:"error,omitempty"`
}

// handleCorpusResource reports the engine state.
func (s *Server) handleCorpusResource(
	_ context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	info := corpusInfo{
		State:     s.ports.Search.State().String(),
		Documents: s.ports.Search.Size(),
	}
	if err := s.ports.Search.LoadErr(); err != nil {
		info.Error = err.Error()
	}

	return jsonResource(req.Params.URI, info)
}

// handleSearchResource runs the query embedded in the URI.
func (s *Server) handleSearchResource(
	_ context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	query, ok := extractQuery(req.Params.URI)
	if !ok {
		return nil, mcp.ResourceNotFoundError(req.Params.URI)
	}

	results := s.ports.Search.Search(query, s.searchOptions(0))
	return jsonResource(req.Params.URI, toOutput(results))
}

func jsonResource(uri string, v any) (*mcp.ReadResourceResult, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshalling %s: %w", uri, err)
	}

	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      uri,
			MIMEType: "application/json",
			Text:     string(data),
		}},
	}, nil
}

// extractQuery extracts the unescaped query from a URI like docsearch://search/{query}.
func extractQuery(uri string) (string, bool) {
	const prefix = uriScheme + "search/"

	if !strings.HasPrefix(uri, prefix) {
		return "", false
	}

	query, err := url.PathUnescape(strings.TrimPrefix(uri, prefix))
	if err != nil {
		return "", false
	}
	return query, true
}
