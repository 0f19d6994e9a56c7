package domain

import "testing"

func TestLanguage_Key(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		lang Language
		want string
	}{
		{"individual", Language{PT1: "fr", PT2B: "fre", PT2T: "fra", PT3: "fra"}, "fra"},
		{"group with part 2", Language{PT2B: "cel", PT2T: "cel", PT5: "cel"}, "cel"},
		{"part 2 only", Language{PT2B: "qaa"}, "qaa"},
		{"part 1 only", Language{PT1: "xx"}, "xx"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := tt.lang.Key(); got != tt.want {
				t.Errorf("Key() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestLanguage_Value(t *testing.T) {
	t.Parallel()

	l := Language{Name: "German", PT1: "de", PT2B: "ger", PT2T: "deu", PT3: "deu"}

	want := map[Field]string{
		FieldName: "German", FieldPT1: "de", FieldPT2B: "ger",
		FieldPT2T: "deu", FieldPT3: "deu", FieldPT5: "", FieldOtherNames: "",
	}
	for f, v := range want {
		if got := l.Value(f); got != v {
			t.Errorf("Value(%s) = %q, want %q", f, got, v)
		}
	}
}

func TestLanguage_HasIdentifier(t *testing.T) {
	t.Parallel()

	if (&Language{Name: "Nameless"}).HasIdentifier() {
		t.Error("record without codes should report no identifier")
	}
	if !(&Language{Name: "Ak", PT3: "akq"}).HasIdentifier() {
		t.Error("record with pt3 should report an identifier")
	}
}
