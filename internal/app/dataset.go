package app

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/iso639/internal/adapter/postgres"
	"github.com/heartmarshall/iso639/internal/adapter/postgres/language"
	"github.com/heartmarshall/iso639/internal/config"
	"github.com/heartmarshall/iso639/internal/dataset"
)

// LoadedDataset is a validated dataset with the pool it was read from, if any.
type LoadedDataset struct {
	*dataset.Dataset
	Source string
	Pool   *pgxpool.Pool
}

// Close releases the database pool, if one was opened.
func (d *LoadedDataset) Close() {
	if d.Pool != nil {
		d.Pool.Close()
	}
}

// LoadDataset reads the dataset from the configured source. For the
// "postgres" source the returned pool stays open until Close.
func LoadDataset(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*LoadedDataset, error) {
	out := &LoadedDataset{Source: cfg.Dataset.Source}

	var err error
	switch cfg.Dataset.Source {
	case config.SourceFile:
		out.Dataset, err = dataset.LoadFile(cfg.Dataset.Path)
	case config.SourcePostgres:
		out.Pool, err = postgres.NewPool(ctx, cfg.Database)
		if err != nil {
			return nil, err
		}
		out.Dataset, err = language.New(out.Pool).Load(ctx)
		if err != nil {
			out.Pool.Close()
		}
	default:
		out.Dataset, err = dataset.Embedded()
	}
	if err != nil {
		return nil, fmt.Errorf("load dataset from %s: %w", cfg.Dataset.Source, err)
	}

	logger.Info("dataset loaded",
		slog.String("source", out.Source),
		slog.String("version", out.Version),
		slog.Int("records", len(out.Languages)),
		slog.Int("deprecations", len(out.Deprecated)),
	)
	return out, nil
}
