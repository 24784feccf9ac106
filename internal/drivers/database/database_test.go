package database

import (
	"context"
	"log"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/gdrivehub/YTLinkerBot/internal/config"
	"github.com/gdrivehub/YTLinkerBot/internal/containers"

	"github.com/joho/godotenv"
)

var ( // Package global variables
	testCfg        *config.Config
	testDB         Service
	baseCtx, noCtx context.Context
)

func TestMain(m *testing.M) {
	os.Exit(runTests(m))
}

// runTests performs a setup and runs all the tests in this package
func runTests(m *testing.M) int {

	// Get the project root
	projectRoot, err := containers.GetProjectRoot()
	if err != nil {
		log.Fatal(err)
	}

	// Get the path to project's .env file and load the env vars
	// This is valid only for local test runs
	envPath := filepath.Join(projectRoot, ".env")
	if err := godotenv.Load(envPath); err != nil {
		log.Printf("failed to load .env file; %v", err)
	}

	baseCtx = context.Background()

	c, cancel := context.WithCancel(baseCtx)
	noCtx = c
	cancel()

	testCfg = config.New()

	setupCtx, setupCancel := context.WithTimeout(baseCtx, 2*time.Minute)
	defer setupCancel()

	// Spin up a Postgres container with the migrations applied
	container, err := containers.SetupTestDB(setupCtx, testCfg, projectRoot)
	if err != nil {
		log.Fatalf("failed to create Postgres container; %v", err)
	}

	defer container.Terminate(baseCtx)

	// New is a singleton, the whole package shares this service
	testDB, err = New(testCfg)
	if err != nil {
		log.Fatalf("failed to create DB service; %v", err)
	}

	defer testDB.Close()

	return m.Run()
}

func TestExecAndQuery(t *testing.T) {

	affected, err := testDB.Exec(
		baseCtx,
		`INSERT INTO extraction_history (user_id, video_id, links_found, links_kept)
		 VALUES ($1, $2, $3, $4)`,
		"user-1", "dQw4w9WgXcQ", 5, 3,
	)
	if err != nil {
		t.Fatalf("failed to insert a row; %v", err)
	}
	if affected != 1 {
		t.Errorf("got %d affected rows, want 1", affected)
	}

	var videoID string
	var found, kept int
	err = testDB.QueryRow(
		baseCtx,
		`SELECT video_id, links_found, links_kept
		 FROM extraction_history WHERE user_id = $1`,
		"user-1",
	).Scan(&videoID, &found, &kept)

	if err != nil {
		t.Fatalf("failed to query the row back; %v", err)
	}

	if videoID != "dQw4w9WgXcQ" || found != 5 || kept != 3 {
		t.Errorf("got (%q, %d, %d), want (%q, 5, 3)", videoID, found, kept, "dQw4w9WgXcQ")
	}
}

func TestHealth(t *testing.T) {

	tests := []struct {
		name     string
		ctx      context.Context
		expected string
	}{
		{"cancelled context", noCtx, "down"},
		{"valid result", baseCtx, "up"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stats := testDB.Health(tt.ctx)
			if got := stats["status"]; got != tt.expected {
				t.Errorf("got status = %v, want %v", got, tt.expected)
			}
		})
	}
}
