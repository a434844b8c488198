package games

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/KirkDiggler/wolfbot/internal/domain/game"
	apperr "github.com/KirkDiggler/wolfbot/internal/errors"
	"github.com/KirkDiggler/wolfbot/internal/uuid"
)

// FileRepoConfig holds configuration for the file repository
type FileRepoConfig struct {
	Path          string
	UUIDGenerator uuid.Generator // Optional, defaults to google uuid
	TimeProvider  TimeProvider   // Optional, defaults to the system clock
}

type fileRepo struct {
	path          string
	uuidGenerator uuid.Generator
	timeProvider  TimeProvider
}

// NewFileRepository creates a repository backed by one JSON file
func NewFileRepository(cfg *FileRepoConfig) Repository {
	if cfg == nil || cfg.Path == "" {
		panic("file path is required")
	}

	repo := &fileRepo{
		path:          cfg.Path,
		uuidGenerator: cfg.UUIDGenerator,
		timeProvider:  cfg.TimeProvider,
	}
	if repo.uuidGenerator == nil {
		repo.uuidGenerator = uuid.NewGoogleUUIDGenerator()
	}
	if repo.timeProvider == nil {
		repo.timeProvider = systemTime{}
	}
	return repo
}

// NewFile creates a file repository with default collaborators
func NewFile(path string) Repository {
	return NewFileRepository(&FileRepoConfig{Path: path})
}

// LoadGame reads and validates the game stored at path
func LoadGame(path string) (*game.Game, error) {
	g, _, err := NewFile(path).Load(context.Background())
	return g, err
}

// SaveGame writes g to path, replacing whatever is there
func SaveGame(g *game.Game, path string) error {
	_, err := NewFile(path).Save(context.Background(), g, AnyVersion)
	return err
}

func (r *fileRepo) Load(ctx context.Context) (g *game.Game, version Version, err error) {
	defer func(start time.Time) { observe(backendFile, opLoad, start, err) }(time.Now())

	if err := ctx.Err(); err != nil {
		return nil, NoVersion, err
	}

	data, err := os.ReadFile(r.path)
	if err != nil {
		return nil, NoVersion, apperr.Persistence(err, "failed to read game file").WithMeta("path", r.path)
	}
	g, err = decodeGame(data)
	if err != nil {
		return nil, NoVersion, apperr.Wrap(err, "failed to load game file").WithMeta("path", r.path)
	}
	return g, versionOf(data), nil
}

func (r *fileRepo) Save(ctx context.Context, g *game.Game, expected Version) (version Version, err error) {
	defer func(start time.Time) { observe(backendFile, opSave, start, err) }(time.Now())

	if err := ctx.Err(); err != nil {
		return NoVersion, err
	}

	data, err := encodeGame(g)
	if err != nil {
		return NoVersion, err
	}

	current, err := r.currentVersion()
	if err != nil {
		return NoVersion, err
	}
	if !matches(expected, current) {
		storeConflictsTotal.WithLabelValues(backendFile).Inc()
		return NoVersion, apperr.ConcurrentModificationf("game file changed since it was loaded").
			WithMeta("path", r.path)
	}

	if err := r.replace(data); err != nil {
		return NoVersion, err
	}
	return versionOf(data), nil
}

func (r *fileRepo) Exists(ctx context.Context) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}
	_, err := os.Stat(r.path)
	if err == nil {
		return true, nil
	}
	if errors.Is(err, fs.ErrNotExist) {
		return false, nil
	}
	return false, apperr.Persistence(err, "failed to stat game file").WithMeta("path", r.path)
}

func (r *fileRepo) currentVersion() (Version, error) {
	data, err := os.ReadFile(r.path)
	if errors.Is(err, fs.ErrNotExist) {
		return NoVersion, nil
	}
	if err != nil {
		return NoVersion, apperr.Persistence(err, "failed to read game file").WithMeta("path", r.path)
	}
	return versionOf(data), nil
}

// replace writes data to a sibling temp file and renames it over the target,
// so readers see either the old document or the new one
func (r *fileRepo) replace(data []byte) error {
	dir, name := filepath.Split(r.path)
	if dir == "" {
		dir = "."
	}
	tmpName := fmt.Sprintf("%d_%s_%s", r.timeProvider.Now().UnixMilli(), r.uuidGenerator.New(), name)
	tmpPath := filepath.Join(dir, tmpName)

	f, err := os.OpenFile(tmpPath, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		return apperr.Persistence(err, "failed to create temp game file").WithMeta("path", tmpPath)
	}
	committed := false
	defer func() {
		if !committed {
			_ = os.Remove(tmpPath)
		}
	}()

	if _, err := f.Write(data); err != nil {
		_ = f.Close()
		return apperr.Persistence(err, "failed to write temp game file").WithMeta("path", tmpPath)
	}
	if err := f.Sync(); err != nil {
		_ = f.Close()
		return apperr.Persistence(err, "failed to sync temp game file").WithMeta("path", tmpPath)
	}
	if err := f.Close(); err != nil {
		return apperr.Persistence(err, "failed to close temp game file").WithMeta("path", tmpPath)
	}
	if err := os.Rename(tmpPath, r.path); err != nil {
		return apperr.Persistence(err, "failed to replace game file").WithMeta("path", r.path)
	}
	committed = true

	// not every platform can sync a directory
	if d, err := os.Open(dir); err == nil {
		_ = d.Sync()
		_ = d.Close()
	}
	return nil
}
