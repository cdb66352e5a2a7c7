// AngelaMos | 2026
// main.go

// Command memorialctl browses the archive and works the moderation queue
// against a running API. The login session is kept in the user's config
// directory between runs.
//
// Usage:
//
//	memorialctl [-server=URL] [-session=PATH] <command> [flags] [args]
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/angelamos/memorial/internal/session"
)

const defaultServer = "http://localhost:8080"

func main() {
	ctx, stop := signal.NotifyContext(
		context.Background(),
		syscall.SIGINT,
		syscall.SIGTERM,
	)
	defer stop()

	os.Exit(run(ctx, os.Args[1:], os.Stdout, os.Stderr))
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("memorialctl", flag.ContinueOnError)
	fs.SetOutput(stderr)
	server := fs.String("server", envOr("MEMORIAL_API_URL", defaultServer), "API base URL")
	sessionPath := fs.String("session", "", "session file (default: user config dir)")
	verbose := fs.Bool("v", false, "log requests to stderr")
	fs.Usage = func() { usage(fs, stderr) }

	if err := fs.Parse(args); err != nil {
		return 2
	}

	level := slog.LevelWarn
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	store, err := openStore(*sessionPath)
	if err != nil {
		fmt.Fprintln(stderr, "error:", err)
		return 1
	}

	a := newApp(*server, store, stdout, logger)
	if err := a.dispatch(ctx, fs.Args()); err != nil {
		fmt.Fprintln(stderr, "error:", err)
		if errors.Is(err, errUsage) {
			usage(fs, stderr)
			return 2
		}
		return 1
	}
	return 0
}

func openStore(path string) (session.Store, error) {
	if path != "" {
		return session.NewFileStore(path), nil
	}
	return session.DefaultFileStore()
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func usage(fs *flag.FlagSet, w io.Writer) {
	fmt.Fprintln(w, "usage: memorialctl [flags] <command> [args]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "commands:")
	for _, c := range commands {
		fmt.Fprintf(w, "  %-12s %s\n", c.name, c.summary)
	}
	fmt.Fprintln(w)
	fmt.Fprintln(w, "flags:")
	fs.PrintDefaults()
}
