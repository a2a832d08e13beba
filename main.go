package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/bnema/corral/internal/adapters/in/cli"
)

var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := cli.Execute(ctx, os.Args[1:], cli.VersionInfo{
		Version:   version,
		Commit:    commit,
		BuildDate: date,
	})
	stop()
	os.Exit(code)
}
