package cmd

import (
	"context"
	"fmt"

	"github.com/abhisek/oasys/internal/attendance"
	"github.com/abhisek/oasys/internal/config"
	"github.com/abhisek/oasys/internal/dataset"
	"github.com/abhisek/oasys/internal/store"
)

// source is an opened data source.
type source struct {
	Repo     store.Repo
	Name     string
	Writable bool
}

// openSource picks the data source: Redis, then SQLite, then a JSON data
// file, then the built-in sample data. Writable stores that hold no courses
// are seeded with the sample data when seed is true.
func openSource(ctx context.Context, cfg *config.Config, seed bool) (*source, error) {
	var src *source
	switch {
	case cfg.Store.RedisAddr != "":
		r, err := store.OpenRedis(ctx, cfg.Store.RedisAddr, cfg.Store.RedisDB)
		if err != nil {
			return nil, err
		}
		src = &source{
			Repo:     r,
			Name:     fmt.Sprintf("redis %s db %d", cfg.Store.RedisAddr, cfg.Store.RedisDB),
			Writable: true,
		}

	case cfg.Store.Path != "":
		if err := store.EnsureDir(cfg.Store.Path); err != nil {
			return nil, fmt.Errorf("create database directory: %w", err)
		}
		st, err := store.Open(cfg.Store.Path)
		if err != nil {
			return nil, fmt.Errorf("open store: %w", err)
		}
		src = &source{Repo: st, Name: "sqlite " + cfg.Store.Path, Writable: true}

	case cfg.Data.File != "":
		ds, err := dataset.Load(cfg.Data.File)
		if err != nil {
			return nil, err
		}
		return &source{
			Repo: store.NewMemory(ds.Courses, ds.Events),
			Name: "file " + cfg.Data.File,
		}, nil

	default:
		return &source{Repo: store.NewSeed(), Name: "built-in sample data"}, nil
	}

	if seed {
		if _, err := store.Seed(ctx, src.Repo, attendance.SeedCourses(), attendance.SeedEvents()); err != nil {
			src.Repo.Close()
			return nil, fmt.Errorf("seed %s: %w", src.Name, err)
		}
	}
	return src, nil
}

// requireWritable rejects read-only sources with a hint on how to pick a
// writable one.
func requireWritable(src *source) error {
	if src.Writable {
		return nil
	}
	return fmt.Errorf("%w (%s): pass --db or --redis to choose a writable store", store.ErrReadOnly, src.Name)
}
