package main

import (
	"context"
	"errors"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"github.com/ogurasousui/payroll-batch-engine/internal/adapters/repository/memory"
	"github.com/ogurasousui/payroll-batch-engine/internal/core/runner"
	"github.com/ogurasousui/payroll-batch-engine/internal/core/script"
	"github.com/ogurasousui/payroll-batch-engine/internal/core/transaction"
	"github.com/ogurasousui/payroll-batch-engine/internal/platform/config"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		logrus.Fatalf("failed to load .env: %v", err)
	}

	cfgPath := os.Getenv("CONFIG_PATH")
	if cfgPath == "" {
		cfgPath = "assets/local.yaml"
	}

	cfg, err := config.Load(cfgPath)
	if err != nil {
		logrus.Fatalf("failed to load config: %v", err)
	}

	logger := logrus.New()
	logger.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: "2006-01-02 15:04:05",
	})
	level, err := logrus.ParseLevel(cfg.Log.Level)
	if err != nil {
		logrus.Fatalf("failed to parse log level: %v", err)
	}
	logger.SetLevel(level)

	store := memory.NewStore()
	dispatcher := transaction.NewDispatcher(store, nil, logger)

	source, closeSource, err := buildSource(cfg)
	if err != nil {
		logger.Fatalf("failed to open command source: %v", err)
	}
	defer closeSource()

	policy, err := buildPolicy(cfg, logger, os.Stdout)
	if err != nil {
		logger.Fatalf("failed to build policy: %v", err)
	}

	r := runner.New(source, dispatcher, policy, nil)

	logger.WithFields(logrus.Fields{
		"policy":      cfg.Runner.Policy,
		"chronograph": cfg.Runner.Chronograph,
	}).Info("starting payroll run")

	if err := r.Run(ctx); err != nil {
		logger.Fatalf("run stopped with error: %v", err)
	}

	logger.Info("payroll run completed")
}

func buildSource(cfg *config.Config) (runner.Source, func(), error) {
	if cfg.Queue.Path != "" {
		f, err := os.Open(cfg.Queue.Path)
		if err != nil {
			return nil, nil, err
		}
		defer f.Close()

		cmds, err := script.DecodeQueue(f)
		if err != nil {
			return nil, nil, err
		}
		return runner.NewSliceSource(cmds), func() {}, nil
	}

	if cfg.Script.Path == "-" {
		return runner.NewLineSource(os.Stdin), func() {}, nil
	}

	f, err := os.Open(cfg.Script.Path)
	if err != nil {
		return nil, nil, err
	}
	return runner.NewLineSource(f), func() { f.Close() }, nil
}

func buildPolicy(cfg *config.Config, logger *logrus.Logger, sink io.Writer) (runner.Policy, error) {
	var policy runner.Policy
	switch cfg.Runner.Policy {
	case config.PolicyHalt:
		policy = runner.HaltPolicy{}
	case config.PolicyEcho:
		policy = runner.EchoPolicy{Sink: sink}
	case config.PolicySilent:
		policy = runner.SilentPolicy{}
	case config.PolicyFailOpen:
		policy = runner.NewFailOpen(logger, runner.EchoPolicy{Sink: sink})
	case config.PolicyFailSafe:
		policy = runner.NewFailSafe(logger, runner.EchoPolicy{Sink: sink})
	default:
		return nil, errors.New("main: unknown runner policy")
	}

	if cfg.Runner.Chronograph {
		policy = runner.NewChronograph(sink, policy)
	}
	return policy, nil
}
