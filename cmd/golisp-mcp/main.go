package main

import (
	"context"
	"flag"
	"log"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/jpschroeder/golisp"
	"github.com/jpschroeder/golisp/internal/config"
)

// tools holds the interpreter shared by every tool call. Calls may arrive
// concurrently; the interpreter serializes them.
type tools struct {
	in  *golisp.Interpreter
	cfg config.Config
}

func (t *tools) handleEval(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	expr, err := request.RequireString("expr")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	out, err := t.in.Evaluate(expr)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return mcp.NewToolResultText(out), nil
}

func (t *tools) handleReset(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	t.in.Reset()
	if err := t.cfg.Apply(t.in); err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return mcp.NewToolResultText("()"), nil
}

func newServer(t *tools) *server.MCPServer {
	s := server.NewMCPServer(
		"golisp",
		"1.0.0",
		server.WithToolCapabilities(false),
	)

	s.AddTool(
		mcp.NewTool("golisp_eval",
			mcp.WithDescription("Evaluate a golisp program against the shared environment. Definitions made with def persist between calls."),
			mcp.WithString("expr",
				mcp.Required(),
				mcp.Description("Parenthesized program, e.g. (progn (def a 1) (+ a 1))"),
			),
		),
		t.handleEval,
	)

	s.AddTool(
		mcp.NewTool("golisp_reset",
			mcp.WithDescription("Discard every definition and start over from the base environment."),
		),
		t.handleReset,
	)
	return s
}

func main() {
	configPath := flag.String("config", "", "YAML config file (default $"+config.EnvVar+")")
	flag.Parse()

	cfg, err := config.Load(config.Path(*configPath))
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	in := golisp.NewInterpreter(
		golisp.WithMaxDepth(cfg.MaxDepth),
		golisp.WithLogger(log.Default()),
	)
	if err := cfg.Apply(in); err != nil {
		log.Fatalf("preload: %v", err)
	}

	log.Printf("golisp mcp server on stdio (max depth %d, %d preloaded programs)", cfg.MaxDepth, len(cfg.Preload))
	if err := server.ServeStdio(newServer(&tools{in: in, cfg: cfg})); err != nil {
		log.Fatalf("server error: %v", err)
	}
}
