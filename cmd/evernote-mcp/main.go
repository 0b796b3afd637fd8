package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/mark3labs/mcp-go/server"

	"github.com/SqREL/evernote-mcp/internal/common"
	"github.com/SqREL/evernote-mcp/internal/config"
	"github.com/SqREL/evernote-mcp/internal/evernote"
	evmcp "github.com/SqREL/evernote-mcp/internal/mcp"
)

func main() {
	stdio := flag.Bool("stdio", false, "Use stdio transport (for desktop MCP clients)")
	configFile := flag.String("config", "evernote-mcp.toml", "Path to config file")
	flag.Parse()

	cfg, err := config.Load(*configFile)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	common.LoadVersionFromFile()

	logger := common.NewLoggerFromConfig(cfg.Logging)

	client := evernote.NewClient(
		cfg.Evernote.BaseURL,
		cfg.Evernote.APIKey,
		cfg.Evernote.GetTimeout(),
		logger,
	)
	dispatcher := evmcp.NewDispatcher(client, logger)

	mcpServer := server.NewMCPServer(
		cfg.Server.Name,
		common.GetVersion(),
		server.WithToolCapabilities(true),
	)

	count := evmcp.Register(mcpServer, dispatcher)
	logger.Info().Int("tools", count).Str("base_url", cfg.Evernote.BaseURL).Msg("registered tools")

	if *stdio {
		// Stdio transport reads stdin and writes stdout
		if err := server.ServeStdio(mcpServer); err != nil {
			fmt.Fprintf(os.Stderr, "stdio server error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	port := cfg.Server.Port

	// Streamable HTTP transport on the configured port
	httpServer := server.NewStreamableHTTPServer(mcpServer,
		server.WithStateLess(true),
	)

	fmt.Fprintf(os.Stderr, "Starting MCP Streamable HTTP on :%s\n", port)

	if err := httpServer.Start(":" + port); err != nil {
		fmt.Fprintf(os.Stderr, "http server error: %v\n", err)
		os.Exit(1)
	}
}
