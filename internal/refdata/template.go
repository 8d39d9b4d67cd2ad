package refdata

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/zarlcorp/core/pkg/zfilesystem"
)

// materialize creates the working database on first use: a verbatim copy
// of the template, or a fresh build from the seed data when no template is
// configured. An existing file is left alone.
func (s *Store) materialize(ctx context.Context) error {
	_, err := os.Stat(s.path)
	if err == nil {
		return nil
	}
	if !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("stat %s: %w", s.path, err)
	}

	if s.template == "" {
		if err := BuildTemplate(ctx, s.path); err != nil {
			return err
		}
		s.log.Info("database created from seed data", "path", s.path)
		return nil
	}

	if err := copyFile(s.template, s.path); err != nil {
		return fmt.Errorf("copy template: %w", err)
	}
	s.log.Info("database copied from template", "path", s.path, "template", s.template)
	return nil
}

func copyFile(src, dst string) error {
	var srcFS zfilesystem.ReadWriteFileFS = zfilesystem.NewOSFileSystem(filepath.Dir(src))
	data, err := srcFS.ReadFile(filepath.Base(src))
	if err != nil {
		return fmt.Errorf("read %s: %w", src, err)
	}

	dir := filepath.Dir(dst)
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return fmt.Errorf("create %s: %w", dir, err)
	}

	var dstFS zfilesystem.ReadWriteFileFS = zfilesystem.NewOSFileSystem(dir)
	if err := dstFS.WriteFile(filepath.Base(dst), data, 0o600); err != nil {
		return fmt.Errorf("write %s: %w", dst, err)
	}
	return nil
}

// BuildTemplate writes a new database at path populated with the seed data.
// An existing file at path is replaced. The file only appears at path once
// it is complete.
func BuildTemplate(ctx context.Context, path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return fmt.Errorf("build template: create %s: %w", dir, err)
	}

	tmp := path + ".tmp"
	if err := os.Remove(tmp); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("build template: %w", err)
	}

	if err := populate(ctx, tmp); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("build template: %w", err)
	}

	if err := os.Rename(tmp, path); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("build template: %w", err)
	}

	slog.Debug("template built", "path", path,
		"names", len(seedNames), "adjectives", len(seedAdjectives), "area_codes", len(seedAreaCodes))
	return nil
}

func populate(ctx context.Context, path string) error {
	db, err := openDB(path)
	if err != nil {
		return err
	}
	defer db.Close()

	if err := ensureSchema(ctx, db); err != nil {
		return err
	}

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin: %w", err)
	}
	defer tx.Rollback()

	for _, n := range seedNames {
		if _, err := tx.ExecContext(ctx, `INSERT INTO names (name, gender) VALUES (?, ?)`, n.Name, string(n.Gender)); err != nil {
			return fmt.Errorf("insert name %q: %w", n.Name, err)
		}
	}
	for _, a := range seedAdjectives {
		if _, err := tx.ExecContext(ctx, `INSERT INTO adjectives (text) VALUES (?)`, a); err != nil {
			return fmt.Errorf("insert adjective %q: %w", a, err)
		}
	}
	for _, c := range seedAreaCodes {
		if _, err := tx.ExecContext(ctx, `INSERT INTO areacodes (code) VALUES (?)`, c); err != nil {
			return fmt.Errorf("insert area code %q: %w", c, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit: %w", err)
	}
	return nil
}
