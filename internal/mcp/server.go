package mcp

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"sync"

	"github.com/charmbracelet/log"

	"github.com/kgribble/s3vmcp/internal/embedcli"
	"github.com/kgribble/s3vmcp/internal/tools"
)

// Server speaks MCP over newline-delimited JSON-RPC. One request is
// handled at a time; a failed request answers with an error and the loop
// keeps reading.
type Server struct {
	name     string
	version  string
	registry *tools.Registry

	in  io.Reader
	out io.Writer
	mu  sync.Mutex
}

// NewServer creates an MCP server over the given streams. The caller
// passes os.Stdin/os.Stdout in production; tests pass buffers.
func NewServer(name, version string, registry *tools.Registry, in io.Reader, out io.Writer) *Server {
	return &Server{
		name:     name,
		version:  version,
		registry: registry,
		in:       in,
		out:      out,
	}
}

// Run reads requests until the input stream closes or the context is
// canceled.
func (s *Server) Run(ctx context.Context) error {
	scanner := bufio.NewScanner(s.in)
	scanner.Buffer(make([]byte, 0, 64*1024), 10*1024*1024)

	log.Debug("MCP server started", "name", s.name, "version", s.version)

	for scanner.Scan() {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		line := scanner.Bytes()
		if len(line) == 0 {
			continue
		}

		var req Request
		if err := json.Unmarshal(line, &req); err != nil {
			s.sendError(nil, ParseError, "parse error: "+err.Error())
			continue
		}

		s.handleRequest(ctx, &req)
	}

	if err := scanner.Err(); err != nil {
		return fmt.Errorf("reading requests: %w", err)
	}
	log.Debug("MCP input closed, shutting down")
	return nil
}

func (s *Server) handleRequest(ctx context.Context, req *Request) {
	log.Debug("Handling request", "method", req.Method, "id", req.ID)

	switch req.Method {
	case "initialize":
		s.handleInitialize(req)
	case "notifications/initialized":
		// Notification, no response.
	case "ping":
		s.sendResult(req.ID, struct{}{})
	case "tools/list":
		s.handleListTools(req)
	case "tools/call":
		s.handleCallTool(ctx, req)
	default:
		if req.ID != nil {
			s.sendError(req.ID, MethodNotFound, "method not found: "+req.Method)
		}
	}
}

func (s *Server) handleInitialize(req *Request) {
	var params InitializeParams
	if len(req.Params) > 0 {
		if err := json.Unmarshal(req.Params, &params); err != nil {
			s.sendError(req.ID, InvalidParams, "invalid initialize params: "+err.Error())
			return
		}
	}
	log.Debug("Client connected", "client", params.ClientInfo.Name, "clientVersion", params.ClientInfo.Version)

	s.sendResult(req.ID, InitializeResult{
		ProtocolVersion: ProtocolVersion,
		Capabilities: Capabilities{
			Tools: &ToolsCapability{},
		},
		ServerInfo: ServerInfo{
			Name:    s.name,
			Version: s.version,
		},
	})
}

func (s *Server) handleListTools(req *Request) {
	list := s.registry.List()
	result := ListToolsResult{Tools: make([]Tool, 0, len(list))}
	for _, t := range list {
		result.Tools = append(result.Tools, Tool{
			Name:        t.Name,
			Description: t.Description,
			InputSchema: t.InputSchema,
		})
	}
	s.sendResult(req.ID, result)
}

func (s *Server) handleCallTool(ctx context.Context, req *Request) {
	var params CallToolParams
	if err := json.Unmarshal(req.Params, &params); err != nil {
		s.sendError(req.ID, InvalidParams, "invalid tools/call params: "+err.Error())
		return
	}

	result, err := s.registry.Call(ctx, params.Name, params.Arguments)
	if err != nil {
		log.Debug("Tool call failed", "tool", params.Name, "error", err)
		s.sendResult(req.ID, CallToolResult{
			Content: []ContentBlock{{Type: "text", Text: err.Error()}},
			IsError: true,
		})
		return
	}

	text, err := renderResult(result)
	if err != nil {
		s.sendError(req.ID, InternalError, "encoding result: "+err.Error())
		return
	}

	s.sendResult(req.ID, CallToolResult{
		Content: []ContentBlock{{Type: "text", Text: text}},
	})
}

// renderResult flattens a tool result to text. Subprocess results keep
// their tagged shape: decoded JSON re-marshals, raw text passes through
// unchanged.
func renderResult(result any) (string, error) {
	switch v := result.(type) {
	case *embedcli.Result:
		if !v.Decoded {
			return v.Text, nil
		}
		data, err := json.MarshalIndent(v.Value, "", "  ")
		return string(data), err
	case string:
		return v, nil
	default:
		data, err := json.MarshalIndent(v, "", "  ")
		return string(data), err
	}
}

func (s *Server) sendResult(id any, result any) {
	s.send(Response{JSONRPC: JSONRPCVersion, ID: id, Result: result})
}

func (s *Server) sendError(id any, code int, message string) {
	s.send(Response{JSONRPC: JSONRPCVersion, ID: id, Error: &Error{Code: code, Message: message}})
}

func (s *Server) send(resp Response) {
	data, err := json.Marshal(resp)
	if err != nil {
		log.Error("Failed to encode response", "error", err)
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if _, err := s.out.Write(append(data, '\n')); err != nil {
		log.Error("Failed to write response", "error", err)
	}
}
