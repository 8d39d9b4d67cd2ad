package refdata

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"math/rand/v2"

	_ "modernc.org/sqlite"
)

const driverName = "sqlite"

var schema = []string{
	`CREATE TABLE IF NOT EXISTS names (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		name TEXT NOT NULL,
		gender TEXT NOT NULL CHECK (gender IN ('M', 'F'))
	)`,
	`CREATE TABLE IF NOT EXISTS adjectives (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		text TEXT NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS areacodes (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		code TEXT NOT NULL
	)`,
}

// Each query takes a uniform draw u in [0, 1) as ?1 and selects row
// floor(u * count) in id order, so a seeded source reproduces selections.
const (
	nameAnyQuery = `SELECT name FROM names ORDER BY id LIMIT 1
		OFFSET CAST(?1 * (SELECT COUNT(*) FROM names) AS INTEGER)`
	nameByGenderQuery = `SELECT name FROM names WHERE gender = ?2 ORDER BY id LIMIT 1
		OFFSET CAST(?1 * (SELECT COUNT(*) FROM names WHERE gender = ?2) AS INTEGER)`
	adjectiveQuery = `SELECT text FROM adjectives ORDER BY id LIMIT 1
		OFFSET CAST(?1 * (SELECT COUNT(*) FROM adjectives) AS INTEGER)`
	areaCodeQuery = `SELECT code FROM areacodes ORDER BY id LIMIT 1
		OFFSET CAST(?1 * (SELECT COUNT(*) FROM areacodes) AS INTEGER)`
	countsQuery = `SELECT
		(SELECT COUNT(*) FROM names WHERE gender = 'M'),
		(SELECT COUNT(*) FROM names WHERE gender = 'F'),
		(SELECT COUNT(*) FROM adjectives),
		(SELECT COUNT(*) FROM areacodes)`
)

// Config locates the working database and the template it is copied from.
// An empty TemplatePath builds the working file from the compiled-in seed data.
type Config struct {
	Path         string
	TemplatePath string
}

// Store serves random reference lookups. Every call opens the database,
// runs one query and closes it again; a Store holds no connection.
// It is not safe for concurrent use because it owns its random source.
type Store struct {
	path     string
	template string
	rng      *rand.Rand
	log      *slog.Logger
}

// Option configures a Store.
type Option func(*Store)

// WithRand sets the random source used to pick rows.
func WithRand(r *rand.Rand) Option {
	return func(s *Store) { s.rng = r }
}

// WithLogger sets the logger used to report degraded lookups.
func WithLogger(l *slog.Logger) Option {
	return func(s *Store) { s.log = l }
}

// New returns a store for cfg. No I/O happens until the first lookup.
func New(cfg Config, opts ...Option) *Store {
	s := &Store{
		path:     cfg.Path,
		template: cfg.TemplatePath,
	}
	for _, o := range opts {
		o(s)
	}
	if s.rng == nil {
		s.rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	if s.log == nil {
		s.log = slog.Default()
	}
	return s
}

// Path returns the working database path.
func (s *Store) Path() string {
	return s.path
}

// RandomName returns a random name matching g, or any name for GenderAny.
func (s *Store) RandomName(ctx context.Context, g Gender) Lookup {
	if g == GenderAny {
		v, err := s.pick(ctx, nameAnyQuery)
		return s.lookup("name", v, err, UnknownName)
	}
	v, err := s.pick(ctx, nameByGenderQuery, string(g))
	return s.lookup("name", v, err, UnknownName)
}

// RandomAdjective returns a random adjective.
func (s *Store) RandomAdjective(ctx context.Context) Lookup {
	v, err := s.pick(ctx, adjectiveQuery)
	return s.lookup("adjective", v, err, DefaultAdjective)
}

// RandomAreaCode returns a random two-digit area code.
func (s *Store) RandomAreaCode(ctx context.Context) Lookup {
	v, err := s.pick(ctx, areaCodeQuery)
	if err == nil && !isAreaCode(v) {
		err = fmt.Errorf("%w: malformed area code %q", ErrQuery, v)
	}
	return s.lookup("area code", v, err, AreaCodeFailure)
}

// Counts returns the number of rows in each table.
func (s *Store) Counts(ctx context.Context) (Counts, error) {
	var c Counts
	err := s.with(ctx, func(db *sql.DB) error {
		row := db.QueryRowContext(ctx, countsQuery)
		if err := row.Scan(&c.Male, &c.Female, &c.Adjectives, &c.AreaCodes); err != nil {
			return fmt.Errorf("%w: counts: %w", ErrQuery, err)
		}
		return nil
	})
	if err != nil {
		return Counts{}, err
	}
	return c, nil
}

// pick draws u and runs a single-value query with u bound to ?1.
func (s *Store) pick(ctx context.Context, query string, args ...any) (string, error) {
	u := s.rng.Float64()
	var v string
	err := s.with(ctx, func(db *sql.DB) error {
		err := db.QueryRowContext(ctx, query, append([]any{u}, args...)...).Scan(&v)
		switch {
		case errors.Is(err, sql.ErrNoRows):
			return ErrEmpty
		case err != nil:
			return fmt.Errorf("%w: %w", ErrQuery, err)
		}
		return nil
	})
	return v, err
}

func (s *Store) lookup(field, v string, err error, fallback string) Lookup {
	if err != nil {
		s.log.Warn("reference lookup degraded", "field", field, "fallback", fallback, "err", err)
		return Lookup{Value: fallback, Degraded: true, Reason: err}
	}
	return Lookup{Value: v}
}

// with materializes the database if needed, opens it, ensures the schema,
// runs fn and closes the handle on every path.
func (s *Store) with(ctx context.Context, fn func(*sql.DB) error) error {
	if err := s.materialize(ctx); err != nil {
		return fmt.Errorf("%w: %w", ErrUnavailable, err)
	}

	db, err := openDB(s.path)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrUnavailable, err)
	}
	defer db.Close()

	if err := ensureSchema(ctx, db); err != nil {
		return fmt.Errorf("%w: %w", ErrUnavailable, err)
	}

	return fn(db)
}

func openDB(path string) (*sql.DB, error) {
	dsn := fmt.Sprintf("file:%s?_pragma=busy_timeout(5000)", path)
	db, err := sql.Open(driverName, dsn)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	db.SetMaxOpenConns(1)
	return db, nil
}

func ensureSchema(ctx context.Context, db *sql.DB) error {
	for _, q := range schema {
		if _, err := db.ExecContext(ctx, q); err != nil {
			return fmt.Errorf("ensure schema: %w", err)
		}
	}
	return nil
}
