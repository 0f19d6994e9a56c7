package language

import (
	"context"
	"errors"
	"testing"

	"github.com/jackc/pgx/v5"
	pgxmock "github.com/pashagolub/pgxmock/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/heartmarshall/iso639/internal/dataset"
	"github.com/heartmarshall/iso639/internal/domain"
)

func newMock(t *testing.T) pgxmock.PgxPoolIface {
	t.Helper()
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(mock.Close)
	return mock
}

func sampleDataset() *dataset.Dataset {
	return &dataset.Dataset{
		Version: "test-1",
		Languages: []domain.Language{
			{Name: "Persian", PT1: "fa", PT2B: "per", PT2T: "fas", PT3: "fas", Type: domain.TypeLiving, Scope: domain.ScopeMacrolanguage},
			{Name: "Dari", PT3: "prs", Type: domain.TypeLiving, Scope: domain.ScopeIndividual, OtherNames: []string{"Afghan Persian"}},
			{Name: "Celtic languages", PT2B: "cel", PT2T: "cel", PT5: "cel", Scope: domain.ScopeGroup},
		},
		Deprecated: []domain.Deprecation{
			{ID: "mhh", Field: domain.FieldPT3, Name: "Maskoy Pidgin", Reason: "N", Effective: "2018-01-26"},
		},
		Macrolanguages: map[string][]string{"fas": {"prs"}},
	}
}

// sampleLanguageArgs are the bound values of the languages insert for
// sampleDataset, in key order.
var sampleLanguageArgs = []any{
	"cel", "Celtic languages", "", "cel", "cel", "", "cel", "", "Group", []string{},
	"fas", "Persian", "fa", "per", "fas", "fas", "", "Living", "Macrolanguage", []string{},
	"prs", "Dari", "", "", "", "prs", "", "Living", "Individual", []string{"Afghan Persian"},
}

func expectLoad(mock pgxmock.PgxPoolIface) {
	mock.ExpectQuery("SELECT version FROM dataset_meta").
		WithArgs(1).
		WillReturnRows(pgxmock.NewRows([]string{"version"}).AddRow("test-1"))

	mock.ExpectQuery("FROM languages").
		WillReturnRows(pgxmock.NewRows(languageColumns).
			AddRow("cel", "Celtic languages", "", "cel", "cel", "", "cel", "", "Group", []string{}).
			AddRow("fas", "Persian", "fa", "per", "fas", "fas", "", "Living", "Macrolanguage", []string{}).
			AddRow("prs", "Dari", "", "", "", "prs", "", "Living", "Individual", []string{"Afghan Persian"}))

	mock.ExpectQuery("FROM language_macros").
		WillReturnRows(pgxmock.NewRows([]string{"macro_key", "individual_key"}).AddRow("fas", "prs"))

	mock.ExpectQuery("FROM deprecations").
		WillReturnRows(pgxmock.NewRows(deprecationColumns).
			AddRow("mhh", "pt3", "Maskoy Pidgin", "N", "", "", "2018-01-26"))
}

func TestRepo_Load(t *testing.T) {
	t.Parallel()
	mock := newMock(t)
	expectLoad(mock)

	ds, err := New(mock).Load(context.Background())
	require.NoError(t, err)
	require.NoError(t, mock.ExpectationsWereMet())

	assert.Equal(t, "test-1", ds.Version)
	require.Len(t, ds.Languages, 3)
	assert.Equal(t, "cel", ds.Languages[0].Key())
	assert.Nil(t, ds.Languages[0].OtherNames)
	assert.Equal(t, []string{"Afghan Persian"}, ds.Languages[2].OtherNames)
	assert.Equal(t, domain.ScopeGroup, ds.Languages[0].Scope)
	assert.Equal(t, map[string][]string{"fas": {"prs"}}, ds.Macrolanguages)
	require.Len(t, ds.Deprecated, 1)
	assert.Equal(t, domain.FieldPT3, ds.Deprecated[0].Field)
}

func TestRepo_Load_NotFound(t *testing.T) {
	t.Parallel()
	mock := newMock(t)

	mock.ExpectQuery("SELECT version FROM dataset_meta").
		WithArgs(1).
		WillReturnError(pgx.ErrNoRows)

	_, err := New(mock).Load(context.Background())
	assert.True(t, errors.Is(err, domain.ErrNotFound))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepo_Load_KeyMismatch(t *testing.T) {
	t.Parallel()
	mock := newMock(t)

	mock.ExpectQuery("SELECT version FROM dataset_meta").
		WithArgs(1).
		WillReturnRows(pgxmock.NewRows([]string{"version"}).AddRow("v"))
	mock.ExpectQuery("FROM languages").
		WillReturnRows(pgxmock.NewRows(languageColumns).
			AddRow("xxx", "Persian", "fa", "per", "fas", "fas", "", "Living", "Macrolanguage", []string{}))

	_, err := New(mock).Load(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "does not match")
}

func TestRepo_Load_QueryError(t *testing.T) {
	t.Parallel()
	mock := newMock(t)

	mock.ExpectQuery("SELECT version FROM dataset_meta").
		WithArgs(1).
		WillReturnRows(pgxmock.NewRows([]string{"version"}).AddRow("v"))
	mock.ExpectQuery("FROM languages").WillReturnError(context.DeadlineExceeded)

	_, err := New(mock).Load(context.Background())
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestRepo_Store(t *testing.T) {
	t.Parallel()
	mock := newMock(t)

	mock.ExpectBegin()
	mock.ExpectExec("DELETE FROM language_macros").WillReturnResult(pgxmock.NewResult("DELETE", 0))
	mock.ExpectExec("DELETE FROM deprecations").WillReturnResult(pgxmock.NewResult("DELETE", 0))
	mock.ExpectExec("DELETE FROM languages").WillReturnResult(pgxmock.NewResult("DELETE", 0))
	mock.ExpectExec("INSERT INTO languages").
		WithArgs(sampleLanguageArgs...).
		WillReturnResult(pgxmock.NewResult("INSERT", 3))
	mock.ExpectExec("INSERT INTO language_macros").
		WithArgs("fas", "prs").
		WillReturnResult(pgxmock.NewResult("INSERT", 1))
	mock.ExpectExec("INSERT INTO deprecations").
		WithArgs("mhh", "pt3", "Maskoy Pidgin", "N", "", "", "2018-01-26").
		WillReturnResult(pgxmock.NewResult("INSERT", 1))
	mock.ExpectExec("INSERT INTO dataset_meta").
		WithArgs(1, "test-1").
		WillReturnResult(pgxmock.NewResult("INSERT", 1))
	mock.ExpectCommit()

	require.NoError(t, New(mock).Store(context.Background(), sampleDataset()))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepo_Store_RollsBackOnError(t *testing.T) {
	t.Parallel()
	mock := newMock(t)

	mock.ExpectBegin()
	mock.ExpectExec("DELETE FROM language_macros").WillReturnResult(pgxmock.NewResult("DELETE", 0))
	mock.ExpectExec("DELETE FROM deprecations").WillReturnResult(pgxmock.NewResult("DELETE", 0))
	mock.ExpectExec("DELETE FROM languages").WillReturnResult(pgxmock.NewResult("DELETE", 0))
	mock.ExpectExec("INSERT INTO languages").
		WithArgs(sampleLanguageArgs...).
		WillReturnError(errors.New("disk full"))
	mock.ExpectRollback()

	err := New(mock).Store(context.Background(), sampleDataset())
	require.Error(t, err)
	assert.EqualError(t, err, "languages: disk full")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepo_Store_InvalidDataset(t *testing.T) {
	t.Parallel()
	mock := newMock(t)

	err := New(mock).Store(context.Background(), &dataset.Dataset{Version: "empty"})
	assert.ErrorIs(t, err, domain.ErrValidation)
	assert.NoError(t, mock.ExpectationsWereMet())
}
