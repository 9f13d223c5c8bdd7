package file

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"sync"

	"github.com/spf13/afero"

	"timetable-tracker/internal/engine"
	"timetable-tracker/internal/model"
	"timetable-tracker/internal/tracker/repository"
)

// Keys of the stored document. Each key holds one collection.
const (
	TasksKey    = "timetable-tasks"
	ProgressKey = "timetable-progress"
)

// document is the on-disk key-value layout. Values are kept raw so unknown
// keys survive a rewrite.
type document map[string]json.RawMessage

type implRepository struct {
	fs   afero.Fs
	path string
	mu   sync.Mutex
}

// New creates a Repository that stores both collections in one JSON document
// at path on fs.
func New(afs afero.Fs, path string) repository.Repository {
	return &implRepository{
		fs:   afs,
		path: path,
	}
}

// Load reads the document. A missing file is an empty store.
func (r *implRepository) Load(ctx context.Context) (engine.Snapshot, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	doc, err := r.read()
	if err != nil {
		return engine.Snapshot{}, err
	}

	var snap engine.Snapshot
	if err := decodeKey(doc, TasksKey, &snap.Tasks); err != nil {
		return engine.Snapshot{}, err
	}
	if err := decodeKey(doc, ProgressKey, &snap.Progress); err != nil {
		return engine.Snapshot{}, err
	}
	return snap, nil
}

// Save writes both collections in one document, via a temp file and rename.
func (r *implRepository) Save(ctx context.Context, snap engine.Snapshot) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	doc, err := r.read()
	if err != nil {
		return err
	}

	tasks := snap.Tasks
	if tasks == nil {
		tasks = []model.Task{}
	}
	progress := snap.Progress
	if progress == nil {
		progress = []model.DailyProgress{}
	}

	if doc[TasksKey], err = json.Marshal(tasks); err != nil {
		return fmt.Errorf("%w: marshal tasks: %v", repository.ErrFailedToSave, err)
	}
	if doc[ProgressKey], err = json.Marshal(progress); err != nil {
		return fmt.Errorf("%w: marshal progress: %v", repository.ErrFailedToSave, err)
	}

	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("%w: %v", repository.ErrFailedToSave, err)
	}

	return r.writeAtomic(data)
}

func (r *implRepository) read() (document, error) {
	data, err := afero.ReadFile(r.fs, r.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return document{}, nil
		}
		return nil, fmt.Errorf("%w: %v", repository.ErrFailedToLoad, err)
	}
	if len(data) == 0 {
		return document{}, nil
	}

	var doc document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", repository.ErrCorruptStore, r.path, err)
	}
	return doc, nil
}

func (r *implRepository) writeAtomic(data []byte) error {
	if dir := filepath.Dir(r.path); dir != "." {
		if err := r.fs.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("%w: %v", repository.ErrFailedToSave, err)
		}
	}

	tmp := r.path + ".tmp"
	if err := afero.WriteFile(r.fs, tmp, data, 0o644); err != nil {
		return fmt.Errorf("%w: %v", repository.ErrFailedToSave, err)
	}
	if err := r.fs.Rename(tmp, r.path); err != nil {
		_ = r.fs.Remove(tmp)
		return fmt.Errorf("%w: %v", repository.ErrFailedToSave, err)
	}
	return nil
}

func decodeKey(doc document, key string, v any) error {
	raw, ok := doc[key]
	if !ok || len(raw) == 0 || string(raw) == "null" {
		return nil
	}
	if err := json.Unmarshal(raw, v); err != nil {
		return fmt.Errorf("%w: key %q: %v", repository.ErrCorruptStore, key, err)
	}
	return nil
}
