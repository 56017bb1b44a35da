package mcp

import (
	"context"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/custodia-labs/mdtool/internal/core/domain"
)

// Version is the MCP server version.
const Version = "0.1.0"

// maxRuns bounds how many generated READMEs are kept for the readmes resource.
const maxRuns = 20

// Server is the MCP server for mdtool.
type Server struct {
	ports  *Ports
	server *mcp.Server

	mu    sync.Mutex
	runs  map[string]*domain.Readme
	order []string
}

// NewServer creates a new MCP server with the given ports.
func NewServer(ports *Ports) (*Server, error) {
	if err := ports.Validate(); err != nil {
		return nil, fmt.Errorf("validating ports: %w", err)
	}

	impl := &mcp.Implementation{
		Name:    "mdtool",
		Version: Version,
	}

	s := &Server{
		ports:  ports,
		server: mcp.NewServer(impl, nil),
		runs:   make(map[string]*domain.Readme),
	}

	s.registerTools()
	s.registerResources()

	return s, nil
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

	// Graceful shutdown when context is cancelled
	go func() {
		<-ctx.Done()
		httpServer.Shutdown(context.Background()) //nolint:errcheck
	}()

	err := httpServer.ListenAndServe()
	if err == http.ErrServerClosed {
		return nil
	}
	return err
}

// remember keeps readme for the readmes resource, evicting the oldest run.
func (s *Server) remember(readme *domain.Readme) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.runs[readme.RunID]; !ok {
		s.order = append(s.order, readme.RunID)
	}
	s.runs[readme.RunID] = readme

	for len(s.order) > maxRuns {
		delete(s.runs, s.order[0])
		s.order = s.order[1:]
	}
}

// lookup returns a remembered run.
func (s *Server) lookup(runID string) (*domain.Readme, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	r, ok := s.runs[runID]
	return r, ok
}
