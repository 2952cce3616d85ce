package main

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/vovakirdan/shimonopoly/internal/game"
	"github.com/vovakirdan/shimonopoly/internal/storage"
)

func TestPrintSessionAndStats(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "sessions.db"))
	if err != nil {
		t.Fatal(err)
	}
	defer store.Close()

	id, err := store.SaveSession(game.Summary{
		Player: "alice", Mode: "advanced", Seed: 42, NumCities: 10,
		Damaged: 8, Restored: 3, Score: 12345.5, TransformersLeft: 5, TimerDuration: 180,
	})
	if err != nil {
		t.Fatal(err)
	}
	if _, err := store.SaveSession(game.Summary{Player: "bob", Mode: "basic", Damaged: 4, Restored: 4, Score: 4}); err != nil {
		t.Fatal(err)
	}

	session, err := store.SessionByID(id)
	if err != nil || session == nil {
		t.Fatalf("SessionByID() = %v, %v", session, err)
	}
	var out bytes.Buffer
	printSession(&out, *session)
	for _, want := range []string{id, "alice", "advanced", "12,345.5", "3 of 8", "Seed:          42"} {
		if !strings.Contains(out.String(), want) {
			t.Errorf("session output missing %q:\n%s", want, out.String())
		}
	}

	all, err := store.GetAllModesStats()
	if err != nil {
		t.Fatal(err)
	}
	out.Reset()
	printStats(&out, all)
	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	if len(lines) != 4 {
		t.Fatalf("stats output has %d lines, want header, rule and two modes:\n%s", len(lines), out.String())
	}
	if !strings.Contains(lines[2], "advanced") || !strings.Contains(lines[3], "basic") {
		t.Errorf("modes not sorted:\n%s", out.String())
	}

	out.Reset()
	printStats(&out, nil)
	if !strings.Contains(out.String(), "No games recorded yet.") {
		t.Errorf("empty stats = %q", out.String())
	}
}
