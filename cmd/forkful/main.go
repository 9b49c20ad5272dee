// Forkful — a terminal client for the shared recipe box.
//
// Usage:
//
//	forkful [-verbose] [-quiet] [-api URL] [-data-dir DIR]
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	stdlog "log"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"

	"github.com/forkful-app/forkful/internal/api"
	"github.com/forkful-app/forkful/internal/localstore"
	"github.com/forkful-app/forkful/internal/logger"
	"github.com/forkful-app/forkful/internal/store"
	"github.com/forkful-app/forkful/internal/tui"
)

// EnvAPIURL overrides the remote service base URL.
const EnvAPIURL = "FORKFUL_API_URL"

const defaultAPIURL = "https://67f287c9ec56ec1a36d35d40.mockapi.io/api/v1"

func main() {
	_ = godotenv.Load()

	verbose := flag.Bool("verbose", false, "enable verbose/debug logging")
	quiet := flag.Bool("quiet", false, "disable all logging")
	logFile := flag.String("log-file", ".forkful/forkful.log", "file to write logs to (use \"stderr\" to log to console)")
	apiURL := flag.String("api", "", "base URL of the remote store (defaults to $"+EnvAPIURL+" or the hosted mock)")
	dataDir := flag.String("data-dir", ".forkful", "directory for persisted session data")
	flag.Parse()

	// Configure logger.
	logLevel := logger.LevelNormal
	if *verbose {
		logLevel = logger.LevelVerbose
	}
	if *quiet {
		logLevel = logger.LevelOff
	}

	// Direct logs to a file by default so the TUI stays clean.
	var logOut io.Writer = os.Stderr
	if *logFile != "" && *logFile != "stderr" {
		dir := filepath.Dir(*logFile)
		var err error
		if dir != "" && dir != "." {
			err = os.MkdirAll(dir, 0o755)
		}
		var f *os.File
		if err == nil {
			f, err = os.OpenFile(*logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		}
		if err != nil {
			fmt.Fprintf(os.Stderr, "warning: could not open log file %s: %v (falling back to stderr)\n", *logFile, err)
		} else {
			logOut = f
			defer f.Close()
		}
	}

	// Third-party code logging through the log package lands in the
	// same file instead of garbling the terminal.
	stdlog.SetOutput(logOut)
	stdlog.SetFlags(stdlog.Ltime)

	log := logger.New(logLevel, logOut)

	baseURL := *apiURL
	if baseURL == "" {
		baseURL = os.Getenv(EnvAPIURL)
	}
	if baseURL == "" {
		baseURL = defaultAPIURL
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Wire dependencies. The unauthorized hook is bound to the view
	// once it exists; a 401 before then just clears the session.
	creds := localstore.NewFileStore(*dataDir, log.Named("localstore"))

	var app *tui.App
	client := api.NewClient(baseURL, creds, log.Named("api"),
		api.WithUnauthorizedHook(func() {
			if app != nil {
				app.ForceLogin()
			}
		}),
	)
	auth := api.NewAuthService(client)
	st := store.New(client, auth, creds, log.Named("store"))
	app = tui.NewApp(st, log.Named("tui"))

	log.Info("forkful starting (api=%s)", baseURL)
	if err := app.Run(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "forkful: %v\n", err)
		os.Exit(1)
	}
}
