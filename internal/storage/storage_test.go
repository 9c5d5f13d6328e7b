package storage

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func openTemp(t *testing.T) *Storage {
	t.Helper()
	s, err := NewStorage(t.TempDir(), nil)
	if err != nil {
		t.Fatalf("NewStorage failed: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestPreferences(t *testing.T) {
	s := openTemp(t)

	t.Run("Defaults", func(t *testing.T) {
		prefs, err := s.LoadPreferences()
		if err != nil {
			t.Fatal(err)
		}
		if prefs.Theme != "default" || prefs.PieceStyle != "classic" {
			t.Errorf("Expected default theme/style, got %q/%q", prefs.Theme, prefs.PieceStyle)
		}
		if !prefs.SoundEnabled || !prefs.DarkMode {
			t.Errorf("Expected sound and dark mode enabled by default")
		}
	})

	t.Run("RoundTrip", func(t *testing.T) {
		before := time.Now()
		in := &Preferences{Theme: "blue", PieceStyle: "flat", DarkMode: false, SoundEnabled: false}
		if err := s.SavePreferences(in); err != nil {
			t.Fatal(err)
		}
		if in.LastPlayed.Before(before) {
			t.Errorf("LastPlayed not stamped")
		}
		out, err := s.LoadPreferences()
		if err != nil {
			t.Fatal(err)
		}
		if out.Theme != "blue" || out.PieceStyle != "flat" || out.DarkMode || out.SoundEnabled {
			t.Errorf("Loaded %+v", out)
		}
	})
}

func TestFirstLaunch(t *testing.T) {
	s := openTemp(t)
	first, err := s.IsFirstLaunch()
	if err != nil || !first {
		t.Fatalf("IsFirstLaunch() = %v, %v; want true", first, err)
	}
	if err := s.MarkFirstLaunchComplete(); err != nil {
		t.Fatal(err)
	}
	first, err = s.IsFirstLaunch()
	if err != nil || first {
		t.Errorf("IsFirstLaunch() after mark = %v, %v; want false", first, err)
	}
}

func TestRecordSession(t *testing.T) {
	s := openTemp(t)
	sessions := []Session{
		{Moves: 10, Captures: 2, Illegal: 3, Resets: 1, Duration: time.Minute},
		{Moves: 5, Illegal: 2, Duration: 30 * time.Second},
	}
	for _, sess := range sessions {
		if err := s.RecordSession(sess); err != nil {
			t.Fatal(err)
		}
	}
	stats, err := s.LoadStats()
	if err != nil {
		t.Fatal(err)
	}
	want := Stats{
		Sessions:        2,
		MovesPlayed:     15,
		Captures:        2,
		IllegalAttempts: 5,
		Resets:          1,
		TotalPlayTime:   90 * time.Second,
	}
	if *stats != want {
		t.Errorf("stats = %+v, want %+v", *stats, want)
	}
	if rate := stats.IllegalRate(); rate != 25 {
		t.Errorf("Expected 25%% illegal rate, got %.2f%%", rate)
	}
	if (&Stats{}).IllegalRate() != 0 {
		t.Errorf("Expected 0 rate with no attempts")
	}
}

func TestReopenKeepsData(t *testing.T) {
	dir := t.TempDir()
	s, err := NewStorage(dir, nil)
	if err != nil {
		t.Fatal(err)
	}
	if err := s.SavePreferences(&Preferences{Theme: "green", PieceStyle: "outline"}); err != nil {
		t.Fatal(err)
	}
	if err := s.Close(); err != nil {
		t.Fatal(err)
	}

	s, err = NewStorage(dir, nil)
	if err != nil {
		t.Fatal(err)
	}
	defer s.Close()
	prefs, err := s.LoadPreferences()
	if err != nil {
		t.Fatal(err)
	}
	if prefs.Theme != "green" {
		t.Errorf("Expected green after reopen, got %q", prefs.Theme)
	}
}

func TestDatabaseDir(t *testing.T) {
	base := t.TempDir()
	dir, err := DatabaseDir(base)
	if err != nil {
		t.Fatal(err)
	}
	if dir != filepath.Join(base, "db") {
		t.Errorf("DatabaseDir = %s", dir)
	}
	if _, err := os.Stat(dir); err != nil {
		t.Errorf("Database directory was not created: %v", err)
	}
}

func TestDataPaths(t *testing.T) {
	t.Setenv("XDG_DATA_HOME", t.TempDir())
	dataDir, err := GetDataDir()
	if err != nil {
		t.Fatalf("GetDataDir failed: %v", err)
	}
	if filepath.Base(dataDir) != appName {
		t.Errorf("GetDataDir = %s, want %s suffix", dataDir, appName)
	}
	if _, err := os.Stat(dataDir); os.IsNotExist(err) {
		t.Errorf("Data directory was not created: %s", dataDir)
	}
}
