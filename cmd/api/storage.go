package main

import (
	"fmt"

	"github.com/spf13/afero"

	"timetable-tracker/config"
	"timetable-tracker/internal/engine"
	"timetable-tracker/internal/tracker/repository"
	"timetable-tracker/internal/tracker/repository/file"
	"timetable-tracker/internal/tracker/repository/memory"
)

func newRepository(cfg config.StorageConfig) (repository.Repository, error) {
	switch cfg.Driver {
	case config.StorageDriverFile:
		return file.New(afero.NewOsFs(), cfg.Path), nil
	case config.StorageDriverMemory:
		return memory.New(engine.Snapshot{}), nil
	default:
		return nil, fmt.Errorf("unknown storage driver %q", cfg.Driver)
	}
}
