package language_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/heartmarshall/iso639/internal/adapter/postgres/language"
	"github.com/heartmarshall/iso639/internal/adapter/postgres/testhelper"
	"github.com/heartmarshall/iso639/internal/dataset"
)

func TestRepo_StoreLoad_RoundTrip(t *testing.T) {
	pool := testhelper.SetupTestDB(t)
	repo := language.New(pool)
	ctx := context.Background()

	want, err := dataset.Embedded()
	require.NoError(t, err)
	require.NoError(t, repo.Store(ctx, want))

	got, err := repo.Load(ctx)
	require.NoError(t, err)

	assert.Equal(t, want.Version, got.Version)
	assert.Equal(t, want.Languages, got.Languages)
	assert.Equal(t, want.Deprecated, got.Deprecated)
	assert.Len(t, got.Macrolanguages, len(want.Macrolanguages))
	for macro, members := range want.Macrolanguages {
		assert.ElementsMatch(t, members, got.Macrolanguages[macro], macro)
	}

	// A second store replaces the first.
	want.Version = "replaced"
	require.NoError(t, repo.Store(ctx, want))
	version, err := repo.Version(ctx)
	require.NoError(t, err)
	assert.Equal(t, "replaced", version)
}
