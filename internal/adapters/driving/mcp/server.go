package mcp

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/kennyvt/kennyvt.github.io/internal/core/domain"
	"github.com/kennyvt/kennyvt.github.io/internal/core/ports/driving"
)

// Version is the MCP server version.
const Version = "0.1.0"

// Server exposes the loaded document corpus to MCP clients.
type Server struct {
	ports        *Ports
	server       *mcp.Server
	instructions string
}

// NewServer creates a new MCP server with the given ports. The corpus
// should already be loaded; its state is reported to clients on connect.
func NewServer(ports *Ports) (*Server, error) {
	if err := ports.Validate(); err != nil {
		return nil, fmt.Errorf("validating ports: %w", err)
	}

	impl := &mcp.Implementation{
		Name:    "docsearch",
		Title:   "Document corpus search",
		Version: Version,
	}

	s := &Server{
		ports:        ports,
		instructions: instructions(ports.Search),
	}
	s.server = mcp.NewServer(impl, &mcp.ServerOptions{
		Instructions: s.instructions,
	})

	s.registerTools()
	s.registerResources()

	return s, nil
}

// instructions tells clients how the corpus is ranked and what it holds.
func instructions(search driving.SearchService) string {
	var b strings.Builder
	b.WriteString("Searches a corpus of PDF documents and listing pages by title and content.\n")
	fmt.Fprintf(&b, "Use the search tool with a free-text query. Tokens shorter than %d characters are ignored. ",
		domain.MinTokenLength)
	fmt.Fprintf(&b, "An exact title match scores %d, a title containing a token %d, and each content occurrence 1. ",
		domain.ExactTitleScore, domain.TitleMatchScore)
	b.WriteString("Read " + uriScheme + "corpus for the load state.\n")

	switch search.State() {
	case domain.EngineLoaded:
		fmt.Fprintf(&b, "The corpus holds %d documents.", search.Size())
	case domain.EngineLoadFailed:
		fmt.Fprintf(&b, "The corpus failed to load (%v); every search returns no results.", search.LoadErr())
	default:
		b.WriteString("No corpus is loaded; every search returns no results.")
	}
	return b.String()
}

// Run starts the MCP server over stdio.
// It blocks until the context is cancelled or an error occurs.
func (s *Server) Run(ctx context.Context) error {
	return s.server.Run(ctx, &mcp.StdioTransport{})
}

// RunHTTP starts the MCP server over HTTP on the specified address.
// It blocks until the context is cancelled or an error occurs.
func (s *Server) RunHTTP(ctx context.Context, addr string) error {
	handler := mcp.NewStreamableHTTPHandler(func(_ *http.Request) *mcp.Server {
		return s.server
	}, nil)

	httpServer := &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		<-ctx.Done()
		httpServer.Shutdown(context.Background()) //nolint:errcheck
	}()

	err := httpServer.ListenAndServe()
	if errors.Is(err, http.ErrServerClosed) {
		return nil
	}
	return err
}
