package history

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/pdiddy/rulegen/pkg/types"
)

// --- test helpers ---

func testLedger(t *testing.T) *Ledger {
	t.Helper()
	path := filepath.Join(t.TempDir(), ".rulegen", "history.db")
	l, err := Open(path)
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { l.Close() })
	return l
}

func sampleRun(command string, started time.Time) types.Run {
	run := types.Run{
		ID:         uuid.NewString(),
		Command:    command,
		Model:      "gpt-4.1-mini-2025-04-14",
		StartedAt:  started,
		FinishedAt: started.Add(3 * time.Second),
		Converted:  2,
		Failed:     1,
	}
	run.Files = []types.FileRecord{
		{
			DocPath:  "docs/Button_Group.mdx",
			RulePath: ".cursor/rules/button-group.mdc",
			Status:   types.FileConverted,
			Duration: 1200 * time.Millisecond,
		},
		{
			DocPath:  "docs/Side_Bar.mdx",
			RulePath: ".cursor/rules/side-bar.mdc",
			Status:   types.FileConverted,
			Duration: 900 * time.Millisecond,
		},
		{
			DocPath:  "docs/Tooltip.mdx",
			Status:   types.FileFailed,
			Error:    "anthropic API returned 429: rate limited",
			Duration: 150 * time.Millisecond,
		},
	}
	return run
}

// --- tests ---

func TestOpen_CreatesDatabaseAndParents(t *testing.T) {
	path := filepath.Join(t.TempDir(), "deep", "nested", "history.db")

	l, err := Open(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	defer l.Close()

	if _, err := os.Stat(path); err != nil {
		t.Errorf("database file should exist: %v", err)
	}
}

func TestRecordAndRecent(t *testing.T) {
	l := testLedger(t)
	ctx := context.Background()

	run := sampleRun("batch", time.Date(2026, 3, 14, 10, 0, 0, 0, time.UTC))
	if err := l.Record(ctx, run); err != nil {
		t.Fatalf("recording run: %v", err)
	}

	runs, err := l.Recent(ctx, 10)
	if err != nil {
		t.Fatalf("reading runs: %v", err)
	}
	if len(runs) != 1 {
		t.Fatalf("runs = %d, want 1", len(runs))
	}

	got := runs[0]
	if got.ID != run.ID {
		t.Errorf("id = %q, want %q", got.ID, run.ID)
	}
	if got.Command != "batch" {
		t.Errorf("command = %q, want %q", got.Command, "batch")
	}
	if got.Model != run.Model {
		t.Errorf("model = %q, want %q", got.Model, run.Model)
	}
	if !got.StartedAt.Equal(run.StartedAt) {
		t.Errorf("started_at = %v, want %v", got.StartedAt, run.StartedAt)
	}
	if got.Converted != 2 || got.Failed != 1 {
		t.Errorf("counts = %d/%d, want 2/1", got.Converted, got.Failed)
	}

	if len(got.Files) != 3 {
		t.Fatalf("files = %d, want 3", len(got.Files))
	}
	if got.Files[0].DocPath != "docs/Button_Group.mdx" {
		t.Errorf("first file = %q, want insertion order preserved", got.Files[0].DocPath)
	}
	if got.Files[2].Status != types.FileFailed {
		t.Errorf("third file status = %q, want failed", got.Files[2].Status)
	}
	if got.Files[2].Error == "" {
		t.Error("failed file should keep its error text")
	}
	if got.Files[0].Duration != 1200*time.Millisecond {
		t.Errorf("duration = %v, want 1.2s", got.Files[0].Duration)
	}
}

func TestRecent_NewestFirst(t *testing.T) {
	l := testLedger(t)
	ctx := context.Background()

	base := time.Date(2026, 3, 14, 10, 0, 0, 0, time.UTC)
	older := sampleRun("convert", base.Add(-2*time.Hour))
	newer := sampleRun("batch", base)

	// Insert out of order to prove ordering comes from timestamps.
	if err := l.Record(ctx, newer); err != nil {
		t.Fatal(err)
	}
	if err := l.Record(ctx, older); err != nil {
		t.Fatal(err)
	}

	runs, err := l.Recent(ctx, 10)
	if err != nil {
		t.Fatal(err)
	}
	if len(runs) != 2 {
		t.Fatalf("runs = %d, want 2", len(runs))
	}
	if runs[0].ID != newer.ID {
		t.Errorf("first run = %q, want the newer run %q", runs[0].ID, newer.ID)
	}
	if runs[1].ID != older.ID {
		t.Errorf("second run = %q, want the older run %q", runs[1].ID, older.ID)
	}
}

func TestRecent_Limit(t *testing.T) {
	l := testLedger(t)
	ctx := context.Background()

	base := time.Date(2026, 3, 14, 10, 0, 0, 0, time.UTC)
	for i := 0; i < 5; i++ {
		if err := l.Record(ctx, sampleRun("batch", base.Add(time.Duration(i)*time.Minute))); err != nil {
			t.Fatal(err)
		}
	}

	runs, err := l.Recent(ctx, 3)
	if err != nil {
		t.Fatal(err)
	}
	if len(runs) != 3 {
		t.Errorf("runs = %d, want 3", len(runs))
	}
}

func TestRecent_EmptyLedger(t *testing.T) {
	l := testLedger(t)

	runs, err := l.Recent(context.Background(), 10)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(runs) != 0 {
		t.Errorf("runs = %d, want 0", len(runs))
	}
}

func TestRecent_CorruptTimestamp(t *testing.T) {
	l := testLedger(t)
	ctx := context.Background()

	run := sampleRun("batch", time.Date(2026, 3, 14, 10, 0, 0, 0, time.UTC))
	if err := l.Record(ctx, run); err != nil {
		t.Fatalf("recording run: %v", err)
	}

	// Damage the stored timestamp behind the ledger's back.
	if _, err := l.db.ExecContext(ctx,
		`UPDATE runs SET started_at = 'not-a-timestamp' WHERE id = ?`, run.ID); err != nil {
		t.Fatalf("corrupting row: %v", err)
	}

	_, err := l.Recent(ctx, 10)
	if err == nil {
		t.Fatal("Recent should fail on an unparseable started_at")
	}
	if !strings.Contains(err.Error(), "started_at") {
		t.Errorf("error %q should name the bad column", err)
	}
}

func TestOpen_Reopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "history.db")
	ctx := context.Background()

	l, err := Open(path)
	if err != nil {
		t.Fatal(err)
	}
	run := sampleRun("convert", time.Date(2026, 3, 14, 10, 0, 0, 0, time.UTC))
	if err := l.Record(ctx, run); err != nil {
		t.Fatal(err)
	}
	if err := l.Close(); err != nil {
		t.Fatal(err)
	}

	// Reopening the same file sees the previous run.
	l2, err := Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer l2.Close()

	runs, err := l2.Recent(ctx, 10)
	if err != nil {
		t.Fatal(err)
	}
	if len(runs) != 1 || runs[0].ID != run.ID {
		t.Errorf("reopened ledger should contain the recorded run")
	}
}
