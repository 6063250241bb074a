// Command estatekit-smoke runs a login, snapshot, dashboard fetch, and
// logout against a live backend. It is meant for manual verification of a
// deployment, not for load testing.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	estatekit "github.com/estateops/estatekit"
	"github.com/estateops/estatekit/storage"
	"go.uber.org/zap"
)

func main() {
	var (
		configPath  = flag.String("config", "", "path to a YAML config file (optional)")
		baseURL     = flag.String("base-url", "http://localhost:8000", "backend base URL when no config file is given")
		email       = flag.String("email", "", "login email")
		password    = flag.String("password", "", "login password")
		storagePath = flag.String("storage", "", "path to a JSON token store (defaults to in-memory)")
		timeout     = flag.Duration("timeout", 30*time.Second, "overall deadline for the smoke run")
	)
	flag.Parse()

	if *email == "" || *password == "" {
		fmt.Fprintln(os.Stderr, "usage: estatekit-smoke -email EMAIL -password PASSWORD [-config FILE]")
		os.Exit(2)
	}

	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatalf("logger: %v", err)
	}
	defer logger.Sync()

	builder := estatekit.New().WithLogger(logger)

	if *configPath != "" {
		cfg, err := estatekit.LoadConfigFile(*configPath)
		if err != nil {
			log.Fatalf("load config: %v", err)
		}
		builder = builder.WithConfig(cfg)
	} else {
		builder = builder.WithBaseURL(*baseURL)
	}

	if *storagePath != "" {
		backend, err := storage.NewFile(*storagePath)
		if err != nil {
			log.Fatalf("open token store: %v", err)
		}
		builder = builder.WithStorage(backend)
	}

	client, err := builder.Build()
	if err != nil {
		log.Fatalf("build client: %v", err)
	}
	defer client.Close()

	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()

	session := client.Session()

	if err := session.Login(ctx, *email, *password); err != nil {
		log.Fatalf("login: %v", err)
	}

	snapshot := session.Snapshot()
	fmt.Printf("authenticated: user=%s role=%s\n", snapshot.User.Email, snapshot.Role)

	stats := client.Analytics().GetDashboardStats(ctx, snapshot.Role)
	if stats.Success {
		fmt.Printf("dashboard ok (%d bytes)\n", len(stats.Data))
	} else {
		fmt.Printf("dashboard failed: status=%d err=%s\n", stats.Status, stats.Err)
	}

	session.Logout(ctx)
	fmt.Println("logged out")

	for id, v := range client.MetricsSnapshot().Counters {
		fmt.Printf("metric %d = %d\n", id, v)
	}
}
