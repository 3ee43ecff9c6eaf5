package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/McGIllicuddy7/psi/internal/config"
	"github.com/McGIllicuddy7/psi/internal/injector"
)

func main() {
	configPath := flag.String("config", "", "path to a YAML config file")
	output := flag.String("out", "", "image output path, overrides the config")
	logLevel := flag.String("log-level", "", "log level: debug, info, warn, error")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error loading config:", err)
		os.Exit(1)
	}
	if *output != "" {
		cfg.Image.Output = *output
		cfg.Image.Format = ""
	}
	if *logLevel != "" {
		cfg.LogLevel = *logLevel
	}
	if err = cfg.Validate(); err != nil {
		fmt.Fprintln(os.Stderr, "Error in config:", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	a := injector.InitializeApp(cfg)
	if _, err = a.Run(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		stop()
		os.Exit(1)
	}
}
