package game

import (
	"encoding/json"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
)

// RunLog records statistics gathered during one run.
type RunLog struct {
	RunID         string    `json:"run_id"`
	Seed          int64     `json:"seed"`
	TurnsPlayed   int       `json:"turns_played"`
	RoomCount     int       `json:"room_count"`
	TilesRevealed int       `json:"tiles_revealed"`
	StartedAt     time.Time `json:"started_at"`
	EndedAt       time.Time `json:"ended_at"`
}

// newRunLog starts a log entry for a fresh run.
func newRunLog(seed int64) RunLog {
	return RunLog{
		RunID:     uuid.NewString(),
		Seed:      seed,
		StartedAt: time.Now().UTC(),
	}
}

// saveRunLog appends the completed run as a single JSON line to runs.jsonl.
// Errors are silently discarded so a disk problem never crashes the game.
func saveRunLog(log RunLog) {
	dir, err := runLogDir()
	if err != nil {
		return
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return
	}
	f, err := os.OpenFile(filepath.Join(dir, "runs.jsonl"), os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return
	}
	defer f.Close()

	data, err := json.Marshal(log)
	if err != nil {
		return
	}
	f.Write(data)         //nolint:errcheck — best-effort write
	f.Write([]byte("\n")) //nolint:errcheck
}

// runLogDir returns the directory where run logs are stored, following the
// XDG Base Directory spec: $XDG_DATA_HOME/rogue-depths, defaulting to
// ~/.local/share/rogue-depths.
func runLogDir() (string, error) {
	dataHome := os.Getenv("XDG_DATA_HOME")
	if dataHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		dataHome = filepath.Join(home, ".local", "share")
	}
	return filepath.Join(dataHome, "rogue-depths"), nil
}
