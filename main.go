package main

import (
	"context"
	"flag"
	"io"
	"os"
	"os/signal"
	"syscall"

	log "github.com/sirupsen/logrus"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/chocolatedesue/satnet/middleware"
	"github.com/chocolatedesue/satnet/routing"
	"github.com/chocolatedesue/satnet/simulation"
)

// log init
func init() {
	logDir := "./logs"
	os.MkdirAll(logDir, 0755)

	// Configure log rotation with lumberjack
	fileLogger := &lumberjack.Logger{
		Filename:   logDir + "/satnet.log",
		MaxSize:    50, // MB
		MaxBackups: 3,
		MaxAge:     30,   // Days
		Compress:   true, // Compress old log files
	}

	// Output to both file and stdout
	multiWriter := io.MultiWriter(os.Stdout, fileLogger)
	log.SetOutput(multiWriter)
	log.SetFormatter(&log.TextFormatter{FullTimestamp: true})
	log.SetLevel(log.InfoLevel)

	log.Infof("Logging initialized: file=%s/satnet.log, stdout=enabled", logDir)
}

func main() {
	var configPath string
	flag.StringVar(&configPath, "config", "", "path to the TOML configuration file")
	flag.Parse()

	if configPath == "" {
		configPath = os.Getenv("SATNET_CONFIG")
	}
	if configPath == "" {
		configPath = "satnet_config.toml"
	}

	log.Infof("Loading configuration from: %s", configPath)
	cfg, err := middleware.LoadConfig(configPath)
	if err != nil {
		log.Fatalf("Failed to load configuration from %s: %v", configPath, err)
	}
	log.Infof("Configuration loaded successfully")
	log.Infof("Available routing variants: %v", routing.List())

	sim, err := simulation.New(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize simulation: %v", err)
	}

	// Cancel the run on SIGINT/SIGTERM so a partial report still lands.
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	shutdownSignal := make(chan os.Signal, 1)
	signal.Notify(shutdownSignal, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-shutdownSignal
		log.Infof("Received shutdown signal. Stopping simulation...")
		cancel()
	}()

	log.Infof("Starting simulation '%s' with algorithm %s", cfg.Name, sim.Algorithm())
	if err := sim.Run(ctx); err != nil {
		log.Fatalf("Simulation failed: %v", err)
	}
	log.Infof("Simulation complete.")
}
