package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/claude/liftlog/internal/api"
	"github.com/claude/liftlog/internal/mcp"
	"github.com/claude/liftlog/internal/token"
	"github.com/claude/liftlog/internal/tokenstore"
	"github.com/joho/godotenv"
	mcpserver "github.com/mark3labs/mcp-go/server"
)

// Version is set at build time via -ldflags.
var Version = "dev"

// staticToken serves a fixed token passed via flag or environment.
type staticToken string

func (t staticToken) Token() (string, error) { return string(t), nil }

func main() {
	serverURL := flag.String("server", "", "LiftLog API base URL (e.g. https://fitness.example.com/api)")
	tokenFlag := flag.String("token", "", "session token (overrides LIFTLOG_TOKEN and the state database)")
	stateDir := flag.String("state-dir", "", "state directory holding the persisted session token (default ~/.liftlog)")
	version := flag.Bool("version", false, "print version and exit")
	flag.Parse()

	if *version {
		fmt.Println("liftlog-mcp", Version)
		return
	}

	_ = godotenv.Load()

	// Stdout carries the MCP protocol; logs go to stderr.
	log := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelInfo}))

	if *serverURL == "" {
		*serverURL = os.Getenv("LIFTLOG_API_BASE_URL")
	}
	if *serverURL == "" {
		fmt.Fprintf(os.Stderr, "Usage: liftlog-mcp -server <URL> [-token <token>] [-state-dir <dir>]\n\n")
		flag.PrintDefaults()
		os.Exit(1)
	}

	// Token comes from the environment, or from the state database the
	// UI binary persisted it to.
	var tokens api.TokenSource
	var raw string
	if *tokenFlag != "" {
		tokens = staticToken(*tokenFlag)
		raw = *tokenFlag
	} else if env := os.Getenv("LIFTLOG_TOKEN"); env != "" {
		tokens = staticToken(env)
		raw = env
	} else {
		dir := *stateDir
		if dir == "" {
			home, err := os.UserHomeDir()
			if err != nil {
				log.Error("failed to get home directory", "error", err)
				os.Exit(1)
			}
			dir = filepath.Join(home, ".liftlog")
		}
		store, err := tokenstore.Open(dir)
		if err != nil {
			log.Error("failed to open state database", "dir", dir, "error", err)
			os.Exit(1)
		}
		defer store.Close()
		tokens = store

		raw, err = store.Token()
		if err != nil {
			log.Error("no session token found; log in via the UI or set LIFTLOG_TOKEN", "error", err)
			os.Exit(1)
		}
	}

	claims, err := token.Decode(raw)
	if err != nil {
		log.Error("invalid session token", "error", err)
		os.Exit(1)
	}
	if claims.Expired(time.Now()) {
		log.Error("session token has expired; log in again")
		os.Exit(1)
	}

	client := api.NewClient(*serverURL, tokens, 30*time.Second)
	s := mcp.New(client, Version, log)

	log.Info("liftlog-mcp serving on stdio", "server", *serverURL, "user", claims.Subject)

	err = mcpserver.ServeStdio(s, mcpserver.WithStdioContextFunc(
		func(ctx context.Context) context.Context {
			return mcp.WithUserID(ctx, claims.Subject)
		},
	))
	if err != nil {
		log.Error("mcp server error", "error", err)
		os.Exit(1)
	}
}
