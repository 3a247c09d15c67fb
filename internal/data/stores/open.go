package stores

import (
	"fmt"

	"github.com/rs/zerolog"

	"github.com/colonyops/tasklet/internal/data/db"
)

// OpenKVStore opens the SQLite database at path and returns a medium over it.
// A corrupted database file is moved aside once and recreated empty.
func OpenKVStore(path string, opts db.OpenOptions, log zerolog.Logger) (*KVStore, error) {
	database, err := db.Open(path, opts)
	if err != nil && IsCorruptionError(err) {
		log.Warn().Err(err).Str("path", path).Msg("database corrupted, recreating")
		if rerr := RecoverFromCorruption(path); rerr != nil {
			return nil, fmt.Errorf("recover corrupted database: %w", rerr)
		}
		database, err = db.Open(path, opts)
	}
	if err != nil {
		return nil, err
	}
	return NewKVStore(database), nil
}
