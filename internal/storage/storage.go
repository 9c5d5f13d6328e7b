package storage

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/dgraph-io/badger/v4"
	"go.uber.org/zap"
)

// Storage keys
const (
	keyPreferences = "preferences"
	keyStats       = "stats"
	keyFirstLaunch = "first_launch"
)

// Preferences are the interface settings remembered between runs.
type Preferences struct {
	Theme        string    `json:"theme"`
	PieceStyle   string    `json:"piece_style"`
	DarkMode     bool      `json:"dark_mode"`
	SoundEnabled bool      `json:"sound_enabled"`
	LastPlayed   time.Time `json:"last_played"`
}

// DefaultPreferences returns the preferences used before anything is saved.
func DefaultPreferences() *Preferences {
	return &Preferences{
		Theme:        "default",
		PieceStyle:   "classic",
		DarkMode:     true,
		SoundEnabled: true,
	}
}

// Stats accumulates play counters across sessions.
type Stats struct {
	Sessions        int           `json:"sessions"`
	MovesPlayed     int           `json:"moves_played"`
	Captures        int           `json:"captures"`
	IllegalAttempts int           `json:"illegal_attempts"`
	Resets          int           `json:"resets"`
	TotalPlayTime   time.Duration `json:"total_play_time"`
}

// Session is what one run of the board contributes to Stats.
type Session struct {
	Moves    int
	Captures int
	Illegal  int
	Resets   int
	Duration time.Duration
}

// IllegalRate returns the share of drops that were rejected, 0-100.
func (s *Stats) IllegalRate() float64 {
	attempts := s.MovesPlayed + s.IllegalAttempts
	if attempts == 0 {
		return 0
	}
	return float64(s.IllegalAttempts) / float64(attempts) * 100
}

// Storage wraps BadgerDB for persistent storage
type Storage struct {
	db     *badger.DB
	logger *zap.Logger
}

// NewStorage opens the database under dataDir (see DatabaseDir).
func NewStorage(dataDir string, logger *zap.Logger) (*Storage, error) {
	dbDir, err := DatabaseDir(dataDir)
	if err != nil {
		return nil, err
	}
	return Open(dbDir, logger)
}

// Open opens the database in dir.
func Open(dir string, logger *zap.Logger) (*Storage, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	logger = logger.Named("storage")

	opts := badger.DefaultOptions(dir)
	opts.Logger = badgerLogger{logger.Sugar()}

	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("open badger at %s: %w", dir, err)
	}
	logger.Debug("storage opened", zap.String("dir", dir))
	return &Storage{db: db, logger: logger}, nil
}

// Close closes the database
func (s *Storage) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// IsFirstLaunch returns true if this is the first launch
func (s *Storage) IsFirstLaunch() (bool, error) {
	firstLaunch := true
	err := s.db.View(func(txn *badger.Txn) error {
		_, err := txn.Get([]byte(keyFirstLaunch))
		if errors.Is(err, badger.ErrKeyNotFound) {
			return nil
		}
		if err != nil {
			return err
		}
		firstLaunch = false
		return nil
	})
	return firstLaunch, err
}

// MarkFirstLaunchComplete marks that first launch setup is complete
func (s *Storage) MarkFirstLaunchComplete() error {
	return s.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(keyFirstLaunch), []byte("done"))
	})
}

// SavePreferences stores prefs, stamping LastPlayed.
func (s *Storage) SavePreferences(prefs *Preferences) error {
	prefs.LastPlayed = time.Now()
	return s.put(keyPreferences, prefs)
}

// LoadPreferences loads user preferences, returns defaults if not found
func (s *Storage) LoadPreferences() (*Preferences, error) {
	prefs := DefaultPreferences()
	if err := s.get(keyPreferences, prefs); err != nil {
		return DefaultPreferences(), err
	}
	return prefs, nil
}

// SaveStats saves play statistics
func (s *Storage) SaveStats(stats *Stats) error {
	return s.put(keyStats, stats)
}

// LoadStats loads play statistics, returns empty stats if not found
func (s *Storage) LoadStats() (*Stats, error) {
	stats := &Stats{}
	if err := s.get(keyStats, stats); err != nil {
		return &Stats{}, err
	}
	return stats, nil
}

// RecordSession adds one session to the stored statistics.
func (s *Storage) RecordSession(sess Session) error {
	stats, err := s.LoadStats()
	if err != nil {
		return err
	}
	stats.Sessions++
	stats.MovesPlayed += sess.Moves
	stats.Captures += sess.Captures
	stats.IllegalAttempts += sess.Illegal
	stats.Resets += sess.Resets
	stats.TotalPlayTime += sess.Duration
	return s.SaveStats(stats)
}

func (s *Storage) put(key string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encode %s: %w", key, err)
	}
	return s.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(key), data)
	})
}

// get decodes key into v, leaving v untouched when the key is missing.
func (s *Storage) get(key string, v any) error {
	return s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(key))
		if errors.Is(err, badger.ErrKeyNotFound) {
			return nil
		}
		if err != nil {
			return err
		}
		return item.Value(func(val []byte) error {
			if err := json.Unmarshal(val, v); err != nil {
				return fmt.Errorf("decode %s: %w", key, err)
			}
			return nil
		})
	})
}

// badgerLogger routes badger's internal logging through zap. Badger is
// chatty at info level, so that is demoted to debug.
type badgerLogger struct {
	s *zap.SugaredLogger
}

func (l badgerLogger) Errorf(f string, args ...any)   { l.s.Errorf(f, args...) }
func (l badgerLogger) Warningf(f string, args ...any) { l.s.Warnf(f, args...) }
func (l badgerLogger) Infof(f string, args ...any)    { l.s.Debugf(f, args...) }
func (l badgerLogger) Debugf(f string, args ...any)   { l.s.Debugf(f, args...) }
