// Package tools implements the operation dispatcher: one service method
// per exposed operation, and a registry that publishes them as MCP tools
// with JSON input schemas.
package tools

import (
	"context"

	"github.com/kgribble/s3vmcp/internal/embedcli"
	"github.com/kgribble/s3vmcp/internal/s3vec"
)

// EmbedRunner executes the external embedding tool. *embedcli.Runner
// satisfies it; tests substitute a fake.
type EmbedRunner interface {
	Run(ctx context.Context, subcommand string, args []string) (string, error)
}

// Service dispatches operations to the S3 Vectors API or the embedding
// tool. Operations are independent and stateless: every call validates its
// own request and builds its own arguments.
type Service struct {
	api    s3vec.API
	runner EmbedRunner
}

// NewService returns a dispatcher over the given transports.
func NewService(api s3vec.API, runner EmbedRunner) *Service {
	return &Service{api: api, runner: runner}
}

var _ EmbedRunner = (*embedcli.Runner)(nil)
