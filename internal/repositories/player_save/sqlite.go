package playersave

import (
	"context"
	"database/sql"

	// registers the "sqlite" driver
	_ "modernc.org/sqlite"

	"github.com/KirkDiggler/codequest/internal/errors"
	"github.com/KirkDiggler/codequest/internal/pkg/clock"
)

const (
	createSavesTable = `CREATE TABLE IF NOT EXISTS saves (
	slot       TEXT PRIMARY KEY,
	data       TEXT NOT NULL,
	updated_at INTEGER NOT NULL
)`
	selectSave = `SELECT data FROM saves WHERE slot = ?`
	upsertSave = `INSERT INTO saves (slot, data, updated_at) VALUES (?, ?, ?)
ON CONFLICT(slot) DO UPDATE SET data = excluded.data, updated_at = excluded.updated_at`
	deleteSave = `DELETE FROM saves WHERE slot = ?`
)

// SQLiteConfig holds the configuration for the SQLite repository
type SQLiteConfig struct {
	// Path to the database file. ":memory:" keeps saves in process.
	Path  string
	Clock clock.Clock
}

// Validate ensures all required fields are provided
func (c *SQLiteConfig) Validate() error {
	if c == nil {
		return errors.InvalidArgument("config cannot be nil")
	}
	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("path", c.Path, vb)
	if err := vb.Build(); err != nil {
		return err
	}
	if c.Clock == nil {
		c.Clock = clock.New()
	}
	return nil
}

// SQLiteRepository stores saves in a single local table
type SQLiteRepository struct {
	db    *sql.DB
	clock clock.Clock
}

// Ensure SQLiteRepository implements Repository
var _ Repository = (*SQLiteRepository)(nil)

// OpenSQLite opens (and creates if missing) the save database
func OpenSQLite(ctx context.Context, cfg *SQLiteConfig) (*SQLiteRepository, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	db, err := sql.Open("sqlite", cfg.Path)
	if err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeUnavailable, "failed to open sqlite")
	}
	// a single connection keeps ":memory:" databases shared across calls
	db.SetMaxOpenConns(1)

	if _, err := db.ExecContext(ctx, createSavesTable); err != nil {
		_ = db.Close()
		return nil, errors.WrapWithCode(err, errors.CodeUnavailable, "failed to create saves table")
	}

	return &SQLiteRepository{db: db, clock: cfg.Clock}, nil
}

// Close releases the database handle
func (r *SQLiteRepository) Close() error {
	return r.db.Close()
}

// Load reads the save for a slot
func (r *SQLiteRepository) Load(ctx context.Context, input LoadInput) (*LoadOutput, error) {
	if input.Slot == "" {
		return nil, errors.InvalidArgument(errSlotEmpty)
	}

	var data string
	err := r.db.QueryRowContext(ctx, selectSave, input.Slot).Scan(&data)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, errors.NotFoundf("save %q not found", input.Slot)
		}
		return nil, errors.WrapWithCode(err, errors.CodeUnavailable, "failed to load save from sqlite")
	}

	player, err := decode(input.Slot, []byte(data))
	if err != nil {
		return nil, err
	}

	return &LoadOutput{Player: player}, nil
}

// Save writes the whole snapshot, replacing any previous one
func (r *SQLiteRepository) Save(ctx context.Context, input SaveInput) (*SaveOutput, error) {
	if err := validateSave(input); err != nil {
		return nil, err
	}

	snapshot := input.Player.Clone()
	snapshot.SavedAt = r.clock.Now()

	data, err := encode(&snapshot)
	if err != nil {
		return nil, err
	}

	if _, err := r.db.ExecContext(ctx, upsertSave, input.Slot, string(data), snapshot.SavedAt.Unix()); err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeUnavailable, "failed to store save in sqlite")
	}

	return &SaveOutput{SavedAt: snapshot.SavedAt}, nil
}

// Delete removes the save for a slot
func (r *SQLiteRepository) Delete(ctx context.Context, input DeleteInput) (*DeleteOutput, error) {
	if input.Slot == "" {
		return nil, errors.InvalidArgument(errSlotEmpty)
	}

	res, err := r.db.ExecContext(ctx, deleteSave, input.Slot)
	if err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeUnavailable, "failed to delete save from sqlite")
	}

	n, err := res.RowsAffected()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read affected rows")
	}

	return &DeleteOutput{Deleted: n > 0}, nil
}
