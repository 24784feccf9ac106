package history

import (
	"context"
	"log"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/gdrivehub/YTLinkerBot/internal/config"
	"github.com/gdrivehub/YTLinkerBot/internal/containers"
	"github.com/gdrivehub/YTLinkerBot/internal/drivers/database"
	"github.com/gdrivehub/YTLinkerBot/internal/models"

	"github.com/joho/godotenv"
)

var (
	testRepo *Repository
	baseCtx  context.Context
)

func TestMain(m *testing.M) {
	os.Exit(runTests(m))
}

// runTests performs a setup and runs all the tests in this package
func runTests(m *testing.M) int {

	projectRoot, err := containers.GetProjectRoot()
	if err != nil {
		log.Fatal(err)
	}

	envPath := filepath.Join(projectRoot, ".env")
	if err := godotenv.Load(envPath); err != nil {
		log.Printf("failed to load .env file; %v", err)
	}

	baseCtx = context.Background()
	cfg := config.New()

	setupCtx, setupCancel := context.WithTimeout(baseCtx, 2*time.Minute)
	defer setupCancel()

	container, err := containers.SetupTestDB(setupCtx, cfg, projectRoot)
	if err != nil {
		log.Fatalf("failed to create Postgres container; %v", err)
	}

	defer container.Terminate(baseCtx)

	db, err := database.New(cfg)
	if err != nil {
		log.Fatalf("failed to create DB service; %v", err)
	}

	defer db.Close()

	testRepo = New(db)

	return m.Run()
}

func TestRecordAndRecent(t *testing.T) {

	extractions := []*models.Extraction{
		{UserID: "alice", VideoID: "video-one", Found: 4, Kept: 2},
		{UserID: "alice", VideoID: "video-two", Found: 1, Kept: 1},
		{UserID: "bob", VideoID: "video-one", Found: 4, Kept: 4},
	}

	for _, e := range extractions {
		if err := testRepo.Record(baseCtx, e); err != nil {
			t.Fatalf("failed to record an extraction; %v", err)
		}
	}

	recent, err := testRepo.Recent(baseCtx, "alice", 10)
	if err != nil {
		t.Fatalf("failed to fetch recent extractions; %v", err)
	}

	if len(recent) != 2 {
		t.Fatalf("got %d extractions, want 2", len(recent))
	}

	// Newest first
	if recent[0].VideoID != "video-two" || recent[1].VideoID != "video-one" {
		t.Errorf("got order (%q, %q), want (%q, %q)",
			recent[0].VideoID, recent[1].VideoID, "video-two", "video-one")
	}

	for _, e := range recent {
		if e.UserID != "alice" {
			t.Errorf("got user %q, want %q", e.UserID, "alice")
		}
		if e.CreatedAt.IsZero() {
			t.Error("got zero created_at, want a timestamp")
		}
	}

	// The limit caps the result
	limited, err := testRepo.Recent(baseCtx, "alice", 1)
	if err != nil {
		t.Fatalf("failed to fetch limited extractions; %v", err)
	}
	if len(limited) != 1 {
		t.Errorf("got %d extractions, want 1", len(limited))
	}

	// A user with no history gets an empty result, not an error
	empty, err := testRepo.Recent(baseCtx, "nobody", 10)
	if err != nil {
		t.Fatalf("failed to fetch empty history; %v", err)
	}
	if len(empty) != 0 {
		t.Errorf("got %d extractions, want 0", len(empty))
	}
}
