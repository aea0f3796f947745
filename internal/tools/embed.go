package tools

import (
	"context"

	"github.com/kgribble/s3vmcp/internal/embedcli"
	"github.com/kgribble/s3vmcp/internal/schema"
)

// EmbedAndStoreText embeds a raw text literal and stores the vector. The
// text is sanitized before it reaches the subprocess command line.
func (s *Service) EmbedAndStoreText(ctx context.Context, req *schema.EmbedAndStoreTextRequest) (any, error) {
	req.TextValue = schema.SanitizeText(req.TextValue)
	if err := req.Validate(); err != nil {
		return nil, err
	}

	out, err := s.runner.Run(ctx, embedcli.SubcommandPut, embedcli.BuildPutTextArgs(req))
	if err != nil {
		return nil, err
	}
	return embedcli.Decode(out), nil
}

// EmbedAndStoreFile embeds one local file, or several via wildcards, and
// stores the vectors.
func (s *Service) EmbedAndStoreFile(ctx context.Context, req *schema.EmbedAndStoreFileRequest) (any, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	out, err := s.runner.Run(ctx, embedcli.SubcommandPut, embedcli.BuildPutFileArgs(req))
	if err != nil {
		return nil, err
	}
	return embedcli.Decode(out), nil
}

// EmbedAndStoreS3Objects embeds S3 objects and stores the vectors. The
// tool's output for wildcard runs is a progress report, not JSON, so the
// result carries raw text.
func (s *Service) EmbedAndStoreS3Objects(ctx context.Context, req *schema.EmbedAndStoreS3ObjectsRequest) (any, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	out, err := s.runner.Run(ctx, embedcli.SubcommandPut, embedcli.BuildPutS3ObjectsArgs(req))
	if err != nil {
		return nil, err
	}
	return &embedcli.Result{Text: out}, nil
}

// EmbedAndQuery embeds a query input and runs a similarity search. The
// tool formats its own results (including the table output mode), so the
// result carries raw text.
func (s *Service) EmbedAndQuery(ctx context.Context, req *schema.EmbedAndQueryRequest) (any, error) {
	req.QueryInput = schema.SanitizeText(req.QueryInput)
	if err := req.Validate(); err != nil {
		return nil, err
	}

	args, err := embedcli.BuildQueryArgs(req)
	if err != nil {
		return nil, err
	}

	out, err := s.runner.Run(ctx, embedcli.SubcommandQuery, args)
	if err != nil {
		return nil, err
	}
	return &embedcli.Result{Text: out}, nil
}
