// Command cancel-all waits a few seconds, giving the operator a chance to
// abort with Ctrl+C, then cancels every open order on the account.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/betbot/cryptsy/cryptsy/client"
	"github.com/betbot/cryptsy/cryptsy/types"
	"github.com/betbot/cryptsy/internal/mockexchange"
	"github.com/betbot/cryptsy/pkg/config"
	"github.com/betbot/cryptsy/pkg/logger"

	"github.com/joho/godotenv"
	"github.com/pkg/errors"
)

func main() {
	var (
		configPath = flag.String("config", "", "config file (.yaml, .yml or .json)")
		dryRun     = flag.Bool("dry-run", false, "talk to an in-process fake exchange instead of the real one")
		delay      = flag.Duration("delay", -1, "override the countdown before cancelling")
	)
	flag.Parse()

	if err := godotenv.Load(); err != nil {
		fmt.Fprintln(os.Stderr, "[CancelAll] no .env file found, using environment variables")
	}

	cfg, err := config.LoadFromFile(*configPath)
	if err != nil {
		fatalf("load config: %v", err)
	}
	if *delay >= 0 {
		cfg.CancelDelay = *delay
	}

	if err := logger.Init(logger.Config{
		Level:      cfg.LogLevel,
		OutputFile: cfg.LogFile,
		MaxSize:    100,
		MaxBackups: 3,
		MaxAge:     7,
		Compress:   true,
		Console:    os.Stderr,
	}); err != nil {
		fatalf("init logger: %v", err)
	}

	clientCfg := cfg.ClientConfig()
	if *dryRun {
		clientCfg = dryRunConfig(clientCfg)
		logger.Infof("[CancelAll] dry run against the in-process fake exchange")
	} else if err := cfg.Validate(); err != nil {
		fatalf("invalid config: %v", err)
	}

	os.Exit(cancelAll(&runner{
		client: client.NewClient(clientCfg),
		delay:  cfg.CancelDelay,
		out:    os.Stdout,
	}))
}

// cancelAll runs r until done or interrupted and returns the exit code.
func cancelAll(r *runner) int {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	report, err := r.run(ctx)
	switch code := exitCode(err); code {
	case exitAborted:
		logger.Warnf("[CancelAll] interrupted during countdown, no orders were cancelled")
		return code
	case exitFailed:
		logger.Errorf("[CancelAll] cancel failed: %v", err)
		return code
	}
	logger.WithField("cancelled", len(report.Entries)).Info("[CancelAll] done")
	return exitOK
}

const (
	exitOK      = 0
	exitFailed  = 1
	exitAborted = 130
)

func exitCode(err error) int {
	switch {
	case err == nil:
		return exitOK
	case errors.Is(err, errAborted):
		return exitAborted
	default:
		return exitFailed
	}
}

// dryRunConfig routes both paths to a fake that accepts the configured
// credentials, or a throwaway pair when none are set.
func dryRunConfig(cfg client.Config) client.Config {
	if cfg.Credentials.Empty() {
		cfg.Credentials = types.Credentials{Key: "dry-run", Secret: "dry-run"}
	}
	fake := mockexchange.New(cfg.Credentials)
	cfg.PublicURL = "http://mockexchange" + mockexchange.PublicPath
	cfg.PrivateURL = "http://mockexchange" + mockexchange.PrivatePath
	cfg.Transport = fake.Transport()
	cfg.ProxyURL = ""
	cfg.Timeout = 5 * time.Second
	return cfg
}

func fatalf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "[CancelAll] "+format+"\n", args...)
	os.Exit(1)
}
