package iso639

import (
	"errors"
	"slices"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const craftedJSON = `{
  "version": "test",
  "languages": [
    {"name": "Alpha", "pt3": "xyz", "type": "Living", "scope": "Individual"},
    {"name": "Beta", "pt3": "abc", "type": "Living", "scope": "Individual", "other_names": ["xyz", "Bet"]}
  ]
}`

func TestLoad_CodeBeatsOtherName(t *testing.T) {
	t.Parallel()

	reg, err := Load(strings.NewReader(craftedJSON))
	require.NoError(t, err)

	lg, err := reg.New("xyz")
	require.NoError(t, err)
	assert.Equal(t, "Alpha", lg.Name())

	lg, err = reg.New("Bet")
	require.NoError(t, err)
	assert.Equal(t, "Beta", lg.Name())
}

func TestLoad_Invalid(t *testing.T) {
	t.Parallel()

	_, err := Load(strings.NewReader(`{"version": "x", "languages": []}`))
	require.Error(t, err)

	_, err = Load(strings.NewReader(`{`))
	require.Error(t, err)
}

func TestDefault_Once(t *testing.T) {
	t.Parallel()

	var wg sync.WaitGroup
	regs := make([]*Registry, 8)
	for i := range regs {
		wg.Add(1)
		go func() {
			defer wg.Done()
			regs[i] = Default()
		}()
	}
	wg.Wait()

	for _, r := range regs {
		assert.Same(t, regs[0], r)
	}
	assert.NotEmpty(t, Default().Version())
}

func TestDefault_CoversISO6391(t *testing.T) {
	t.Parallel()

	pt1 := 0
	for lg := range Langs() {
		if lg.PT1() != "" {
			pt1++
		}
	}
	assert.GreaterOrEqual(t, pt1, 183)

	tests := []struct {
		value string
		pt3   string
	}{
		{"Hindi", "hin"},
		{"hi", "hin"},
		{"Zulu", "zul"},
		{"zu", "zul"},
		{"wel", "cym"},
		{"cy", "cym"},
		{"Punjabi", "pan"},
		{"Gheg Albanian", "aln"},
	}
	for _, tt := range tests {
		lg, err := New(tt.value)
		require.NoError(t, err, tt.value)
		assert.Equal(t, tt.pt3, lg.PT3(), tt.value)
	}

	gheg := MustNew("aln")
	macro, ok := gheg.Macro()
	require.True(t, ok)
	assert.Equal(t, "Albanian", macro.Name())
}

func TestNew_AllRepresentationsAgree(t *testing.T) {
	t.Parallel()

	values := []string{"fr", "fre", "fra", "French"}
	var langs []Lang
	for _, v := range values {
		lg, err := New(v)
		require.NoError(t, err, v)
		langs = append(langs, lg)
	}
	for _, lg := range langs[1:] {
		assert.Equal(t, langs[0], lg)
		assert.True(t, langs[0].Equal(lg))
	}

	fr := langs[0]
	assert.Equal(t, "French", fr.Name())
	assert.Equal(t, "fr", fr.PT1())
	assert.Equal(t, "fre", fr.PT2B())
	assert.Equal(t, "fra", fr.PT2T())
	assert.Equal(t, "fra", fr.PT3())
	assert.Equal(t, "", fr.PT5())
	assert.Equal(t, TypeLiving, fr.Type())
	assert.Equal(t, ScopeIndividual, fr.Scope())
}

func TestNew_CaseSensitive(t *testing.T) {
	t.Parallel()

	ak, err := New("ak")
	require.NoError(t, err)
	assert.Equal(t, "Akan", ak.Name())

	upper, err := New("Ak")
	require.NoError(t, err)
	assert.Equal(t, "Ak", upper.Name())
	assert.Equal(t, "akq", upper.PT3())

	assert.False(t, ak.Equal(upper))
}

func TestNew_Deprecated(t *testing.T) {
	t.Parallel()

	_, err := New("gsc")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrDeprecatedLanguageValue))

	var dep *DeprecatedLanguageValueError
	require.True(t, errors.As(err, &dep))
	assert.Equal(t, "gsc", dep.Value)
	assert.Equal(t, "Gascon", dep.Name)
	assert.Equal(t, "oci", dep.ChangeTo)

	occitan, err := New(dep.ChangeTo)
	require.NoError(t, err)
	assert.Equal(t, "Occitan (post 1500)", occitan.Name())

	_, err = New("Gascon")
	assert.True(t, errors.Is(err, ErrDeprecatedLanguageValue))

	_, err = New("mhh")
	require.True(t, errors.As(err, &dep))
	assert.Empty(t, dep.ChangeTo)
}

func TestNew_Invalid(t *testing.T) {
	t.Parallel()

	for _, v := range []string{"foobar", "", "FR", "french", " fr"} {
		_, err := New(v)
		require.Error(t, err, v)
		assert.True(t, errors.Is(err, ErrInvalidLanguageValue), v)

		var inv *InvalidLanguageValueError
		require.True(t, errors.As(err, &inv))
		assert.Equal(t, v, inv.Value)
	}
}

func TestMustNew(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "German", MustNew("de").Name())
	assert.Panics(t, func() { MustNew("xx") })
}

func TestIsLanguage(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		value  string
		fields []Field
		want   bool
	}{
		{"any field", "fr", nil, true},
		{"name", "French", nil, true},
		{"other name", "Valencian", nil, true},
		{"unknown", "foobar", nil, false},
		{"deprecated", "gsc", nil, false},
		{"restricted hit", "fra", []Field{FieldPT3}, true},
		{"restricted miss", "fr", []Field{FieldPT3}, false},
		{"name restricted", "French", []Field{FieldPT1, FieldPT2B}, false},
		{"other names only", "Valencian", []Field{FieldOtherNames}, true},
		{"group code", "cel", []Field{FieldPT5}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, IsLanguage(tt.value, tt.fields...))
		})
	}
}

func TestLangs_OrderedAndRestartable(t *testing.T) {
	t.Parallel()

	reg := Default()
	first := slices.Collect(reg.Langs())
	require.Len(t, first, reg.Len())

	for i := 1; i < len(first); i++ {
		assert.Negative(t, first[i-1].Compare(first[i]), "%s before %s", first[i-1].Name(), first[i].Name())
	}

	second := slices.Collect(reg.Langs())
	assert.Equal(t, first, second)

	seen := make(map[Lang]struct{}, len(first))
	for _, lg := range first {
		seen[lg] = struct{}{}
	}
	assert.Len(t, seen, len(first))
}

func TestLangs_EarlyStop(t *testing.T) {
	t.Parallel()

	var names []string
	for lg := range Langs() {
		names = append(names, lg.Name())
		if len(names) == 3 {
			break
		}
	}
	assert.Equal(t, []string{"'Are'are", "'Auhelawa", "A'ou"}, names)
}

func TestDeprecation(t *testing.T) {
	t.Parallel()

	dep, ok := Default().Deprecation("mo")
	require.True(t, ok)
	assert.Equal(t, FieldPT1, dep.Field)
	assert.Equal(t, "ro", dep.ChangeTo)

	_, ok = Default().Deprecation("fr")
	assert.False(t, ok)
}
