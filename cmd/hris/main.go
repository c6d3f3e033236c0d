package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"go-hris-cli/internal/app"
	"go-hris-cli/internal/cli"
)

func main() {
	_ = godotenv.Load()

	logger := newLogger()
	defer logger.Sync()
	zap.ReplaceGlobals(logger)

	a, err := app.New(app.LoadConfig(), logger)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", cli.FormatError(err))
		os.Exit(1)
	}

	if err := cli.New(a).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", cli.FormatError(err))
		os.Exit(1)
	}
}

// newLogger keeps the console quiet by default; HRIS_DEBUG=true turns on
// development logging to stderr.
func newLogger() *zap.Logger {
	if os.Getenv("HRIS_DEBUG") == "true" {
		l, err := zap.NewDevelopment()
		if err != nil {
			panic(err)
		}
		return l
	}
	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(zap.ErrorLevel)
	cfg.OutputPaths = []string{"stderr"}
	l, err := cfg.Build()
	if err != nil {
		panic(err)
	}
	return l
}
