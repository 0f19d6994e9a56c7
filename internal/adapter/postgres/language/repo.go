// Package language stores the ISO 639 dataset in PostgreSQL. The dataset is
// written as a whole and read back as a whole; the tables are never edited
// piecemeal.
package language

import (
	"context"
	"fmt"
	"maps"
	"slices"

	sq "github.com/Masterminds/squirrel"

	postgres "github.com/heartmarshall/iso639/internal/adapter/postgres"
	"github.com/heartmarshall/iso639/internal/dataset"
	"github.com/heartmarshall/iso639/internal/domain"
)

// insertChunk bounds the rows per INSERT so the statement stays below the
// PostgreSQL limit of 65535 bind parameters.
const insertChunk = 1000

var builder = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

var languageColumns = []string{
	"lang_key", "name", "pt1", "pt2b", "pt2t", "pt3", "pt5", "type", "scope", "other_names",
}

var deprecationColumns = []string{
	"id", "field", "name", "reason", "change_to", "remedy", "effective",
}

// Repo provides dataset persistence backed by PostgreSQL.
type Repo struct {
	db postgres.DB
	tx *postgres.TxManager
}

// New creates a new dataset repository.
func New(db postgres.DB) *Repo {
	return &Repo{db: db, tx: postgres.NewTxManager(db)}
}

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// Load reads and validates the stored dataset.
// Returns domain.ErrNotFound if no dataset was ever stored.
func (r *Repo) Load(ctx context.Context) (*dataset.Dataset, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	ds := &dataset.Dataset{Macrolanguages: map[string][]string{}}

	version, err := r.Version(ctx)
	if err != nil {
		return nil, err
	}
	ds.Version = version

	if ds.Languages, err = selectLanguages(ctx, q); err != nil {
		return nil, err
	}
	if err := selectMacros(ctx, q, ds.Macrolanguages); err != nil {
		return nil, err
	}
	if ds.Deprecated, err = selectDeprecations(ctx, q); err != nil {
		return nil, err
	}

	if err := ds.Validate(); err != nil {
		return nil, fmt.Errorf("stored dataset: %w", err)
	}
	return ds, nil
}

// Version returns the version of the stored dataset.
func (r *Repo) Version(ctx context.Context) (string, error) {
	query, args, err := builder.Select("version").From("dataset_meta").Where(sq.Eq{"id": 1}).ToSql()
	if err != nil {
		return "", fmt.Errorf("build version query: %w", err)
	}

	var version string
	if err := postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx, query, args...).Scan(&version); err != nil {
		return "", postgres.MapError(err, "dataset_meta")
	}
	return version, nil
}

func selectLanguages(ctx context.Context, q postgres.Querier) ([]domain.Language, error) {
	query, args, err := builder.Select(languageColumns...).From("languages").OrderBy("lang_key").ToSql()
	if err != nil {
		return nil, fmt.Errorf("build languages query: %w", err)
	}

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, postgres.MapError(err, "languages")
	}
	defer rows.Close()

	var out []domain.Language
	for rows.Next() {
		var (
			key   string
			l     domain.Language
			typ   string
			scope string
		)
		if err := rows.Scan(&key, &l.Name, &l.PT1, &l.PT2B, &l.PT2T, &l.PT3, &l.PT5, &typ, &scope, &l.OtherNames); err != nil {
			return nil, postgres.MapError(err, "languages")
		}
		l.Type, l.Scope = domain.Type(typ), domain.Scope(scope)
		if len(l.OtherNames) == 0 {
			l.OtherNames = nil
		}
		if l.Key() != key {
			return nil, fmt.Errorf("languages: stored key %q does not match record key %q", key, l.Key())
		}
		out = append(out, l)
	}
	if err := rows.Err(); err != nil {
		return nil, postgres.MapError(err, "languages")
	}
	return out, nil
}

func selectMacros(ctx context.Context, q postgres.Querier, into map[string][]string) error {
	query, args, err := builder.Select("macro_key", "individual_key").
		From("language_macros").
		OrderBy("macro_key", "individual_key").
		ToSql()
	if err != nil {
		return fmt.Errorf("build macros query: %w", err)
	}

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return postgres.MapError(err, "language_macros")
	}
	defer rows.Close()

	for rows.Next() {
		var macro, individual string
		if err := rows.Scan(&macro, &individual); err != nil {
			return postgres.MapError(err, "language_macros")
		}
		into[macro] = append(into[macro], individual)
	}
	return postgres.MapError(rows.Err(), "language_macros")
}

func selectDeprecations(ctx context.Context, q postgres.Querier) ([]domain.Deprecation, error) {
	query, args, err := builder.Select(deprecationColumns...).From("deprecations").OrderBy("id").ToSql()
	if err != nil {
		return nil, fmt.Errorf("build deprecations query: %w", err)
	}

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, postgres.MapError(err, "deprecations")
	}
	defer rows.Close()

	var out []domain.Deprecation
	for rows.Next() {
		var (
			d     domain.Deprecation
			field string
		)
		if err := rows.Scan(&d.ID, &field, &d.Name, &d.Reason, &d.ChangeTo, &d.Remedy, &d.Effective); err != nil {
			return nil, postgres.MapError(err, "deprecations")
		}
		d.Field = domain.Field(field)
		out = append(out, d)
	}
	if err := rows.Err(); err != nil {
		return nil, postgres.MapError(err, "deprecations")
	}
	return out, nil
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// Store validates ds and replaces the stored dataset with it in a single
// transaction.
func (r *Repo) Store(ctx context.Context, ds *dataset.Dataset) error {
	if err := ds.Validate(); err != nil {
		return err
	}

	return r.tx.RunInTx(ctx, func(ctx context.Context) error {
		q := postgres.QuerierFromCtx(ctx, r.db)

		for _, table := range []string{"language_macros", "deprecations", "languages"} {
			if err := exec(ctx, q, builder.Delete(table), table); err != nil {
				return err
			}
		}

		for chunk := range slices.Chunk(ds.Languages, insertChunk) {
			ins := builder.Insert("languages").Columns(languageColumns...)
			for _, l := range chunk {
				otherNames := l.OtherNames
				if otherNames == nil {
					otherNames = []string{}
				}
				ins = ins.Values(l.Key(), l.Name, l.PT1, l.PT2B, l.PT2T, l.PT3, l.PT5,
					string(l.Type), string(l.Scope), otherNames)
			}
			if err := exec(ctx, q, ins, "languages"); err != nil {
				return err
			}
		}

		if len(ds.Macrolanguages) > 0 {
			ins := builder.Insert("language_macros").Columns("macro_key", "individual_key")
			for _, macro := range slices.Sorted(maps.Keys(ds.Macrolanguages)) {
				for _, individual := range ds.Macrolanguages[macro] {
					ins = ins.Values(macro, individual)
				}
			}
			if err := exec(ctx, q, ins, "language_macros"); err != nil {
				return err
			}
		}

		for chunk := range slices.Chunk(ds.Deprecated, insertChunk) {
			ins := builder.Insert("deprecations").Columns(deprecationColumns...)
			for _, d := range chunk {
				ins = ins.Values(d.ID, string(d.Field), d.Name, d.Reason, d.ChangeTo, d.Remedy, d.Effective)
			}
			if err := exec(ctx, q, ins, "deprecations"); err != nil {
				return err
			}
		}

		meta := builder.Insert("dataset_meta").
			Columns("id", "version").
			Values(1, ds.Version).
			Suffix("ON CONFLICT (id) DO UPDATE SET version = EXCLUDED.version, imported_at = now()")
		return exec(ctx, q, meta, "dataset_meta")
	})
}

func exec(ctx context.Context, q postgres.Querier, stmt sq.Sqlizer, entity string) error {
	query, args, err := stmt.ToSql()
	if err != nil {
		return fmt.Errorf("build %s statement: %w", entity, err)
	}
	if _, err := q.Exec(ctx, query, args...); err != nil {
		return postgres.MapError(err, entity)
	}
	return nil
}
