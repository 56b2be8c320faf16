package main

import (
	"TreeDB/cli"
	"TreeDB/config"
	executor "TreeDB/query_executor"
	"bufio"
	"flag"
	"fmt"
	"os"

	"github.com/fatih/color"
	"go.uber.org/zap"
)

var (
	configPath = flag.String("config", "", "Path to a YAML config file.")
	capacity   = flag.Int("capacity", 0, "Max keys per node (even, >= 2). Overrides the config file.")
	logLevel   = flag.String("log-level", "", "Log level (debug, info, warn, error). Overrides the config file.")
)

func main() {
	flag.Usage = func() {
		fmt.Println("\nTreeDB REPL\n\nArguments:")
		flag.PrintDefaults()
	}
	flag.Parse()

	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	color.NoColor = color.NoColor || !cfg.Color

	logger, err := cfg.NewLogger()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	tree, err := cfg.OpenTree(logger)
	if err != nil {
		logger.Fatal("open tree", zap.Error(err))
	}
	defer tree.Close()

	logger.Info("tree ready", zap.Int("capacity", cfg.Capacity), zap.Int64("cache_entries", cfg.CacheEntries))

	vm := executor.NewVM(tree, os.Stdout, logger)
	shell := cli.NewCli(bufio.NewScanner(os.Stdin), vm, os.Stdout, logger)
	shell.PrintHelp()
	if err := shell.Start(); err != nil {
		logger.Error("read input", zap.Error(err))
	}
	fmt.Println()
}

// loadConfig applies explicitly set flags on top of the config file.
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(*configPath)
	if err != nil {
		return nil, err
	}
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "capacity":
			cfg.Capacity = *capacity
		case "log-level":
			cfg.LogLevel = *logLevel
		}
	})
	return cfg, cfg.Validate()
}
