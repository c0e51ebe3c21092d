package main

import (
	"flag"
	"log/slog"
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rhyrak/go-timetable/internal/timetable"
)

func main() {
	addr := flag.String("addr", "", "listen address (env TIMETABLE_ADDR, default :3001)")
	configPath := flag.String("config", "", "YAML configuration file (env TIMETABLE_CONFIG)")
	ttl := flag.Duration("ttl", time.Hour, "how long finished timetables are kept")
	maxEntries := flag.Int("max-entries", 256, "maximum number of cached timetables")
	maxUpload := flag.Int64("max-upload", 32<<20, "maximum upload size in bytes")
	verbose := flag.Bool("verbose", false, "enable debug logging")
	flag.Parse()

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	} else {
		gin.SetMode(gin.ReleaseMode)
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	if *addr == "" {
		*addr = os.Getenv("TIMETABLE_ADDR")
		if *addr == "" {
			*addr = ":3001"
		}
	}
	if *configPath == "" {
		*configPath = os.Getenv("TIMETABLE_CONFIG")
	}
	cfg, err := timetable.LoadConfiguration(*configPath)
	if err != nil {
		logger.Error("failed to load configuration", "error", err)
		os.Exit(1)
	}

	srv := &server{
		cfg:       cfg,
		store:     newStore(*maxEntries, *ttl),
		logger:    logger,
		maxUpload: *maxUpload,
	}
	r := newRouter(srv, true)

	logger.Info("listening", "addr", *addr)
	if err := r.Run(*addr); err != nil {
		logger.Error("server stopped", "error", err)
		os.Exit(1)
	}
}
