package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/exec"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/cubeworks/mc-manager/internal/config"
	"github.com/cubeworks/mc-manager/internal/events"
	"github.com/cubeworks/mc-manager/internal/httpapi"
	"github.com/cubeworks/mc-manager/internal/instance"
	"github.com/cubeworks/mc-manager/internal/logger"
	"github.com/cubeworks/mc-manager/internal/save"
	"github.com/cubeworks/mc-manager/internal/version"
)

const programName = "mc-manager"

// buildVersion is stamped by the release build.
var buildVersion = "dev"

func main() {
	root := &cobra.Command{
		Use:   "mc-manager",
		Short: "mc-manager — manage Minecraft server instances over HTTP",
		Long:  "An HTTP daemon that lets clients create, delete, start, and stop Minecraft server instances and tail their consoles.",
		RunE: func(cmd *cobra.Command, args []string) error {
			return run()
		},
	}
	root.AddCommand(runCmd(), versionCmd())
	if err := root.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func runCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "run",
		Short: "Run the daemon in the foreground",
		RunE: func(cmd *cobra.Command, args []string) error {
			return run()
		},
	}
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the program name and version",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("%s %s\n", programName, buildVersion)
		},
	}
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func run() error {
	if err := logger.Init(envOr("MC_MANAGER_LOG_LEVEL", "info"), os.Getenv("MC_MANAGER_LOG_FILE")); err != nil {
		return fmt.Errorf("init logger: %w", err)
	}

	cfg, err := config.Load(config.DefaultPath)
	if err != nil {
		return err
	}

	java := os.Getenv("MC_MANAGER_JAVA")
	if java == "" {
		if found, err := exec.LookPath("java"); err == nil {
			java = found
		} else {
			java = "java"
		}
	}
	instance.SetJavaPath(java)
	slog.Info("using java interpreter", "path", java)

	saves := save.NewStore(".")
	sup := instance.NewSupervisor(saves, instance.JavaSpawner{})

	ev, err := events.Open("mc-manager.db")
	if err != nil {
		slog.Warn("event store unavailable", "error", err)
		ev = nil
	} else {
		defer ev.Close()
	}

	versions := version.Open("versions")
	defer versions.Close()

	apiServer := &httpapi.Server{
		Saves:    saves,
		Sup:      sup,
		Versions: versions,
		Events:   ev,
	}
	srv := &http.Server{
		Addr:    cfg.Addr(),
		Handler: apiServer.Routes(),
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	go func() {
		<-ctx.Done()
		slog.Info("shutdown signal received")
		sup.ShutdownAll()
		drainCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		srv.Shutdown(drainCtx)
	}()

	slog.Info("listening", "addr", cfg.Addr())
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
