package domain

import "testing"

func TestType_IsValid(t *testing.T) {
	t.Parallel()

	tests := []struct {
		typ  Type
		want bool
	}{
		{TypeLiving, true},
		{TypeExtinct, true},
		{TypeAncient, true},
		{TypeHistorical, true},
		{TypeConstructed, true},
		{TypeSpecial, true},
		{Type("living"), false},
		{Type(""), false},
	}
	for _, tt := range tests {
		t.Run(string(tt.typ), func(t *testing.T) {
			t.Parallel()
			if got := tt.typ.IsValid(); got != tt.want {
				t.Errorf("Type(%q).IsValid() = %v, want %v", tt.typ, got, tt.want)
			}
		})
	}
}

func TestScope_IsValid(t *testing.T) {
	t.Parallel()

	tests := []struct {
		scope Scope
		want  bool
	}{
		{ScopeIndividual, true},
		{ScopeMacrolanguage, true},
		{ScopeSpecial, true},
		{ScopeDialect, true},
		{ScopeGroup, true},
		{Scope("M"), false},
		{Scope(""), false},
	}
	for _, tt := range tests {
		t.Run(string(tt.scope), func(t *testing.T) {
			t.Parallel()
			if got := tt.scope.IsValid(); got != tt.want {
				t.Errorf("Scope(%q).IsValid() = %v, want %v", tt.scope, got, tt.want)
			}
		})
	}
}

func TestScope_String(t *testing.T) {
	t.Parallel()
	if got := ScopeMacrolanguage.String(); got != "Macrolanguage" {
		t.Errorf("got %q, want Macrolanguage", got)
	}
}

func TestField_IsIdentifier(t *testing.T) {
	t.Parallel()

	tests := []struct {
		field Field
		valid bool
		ident bool
	}{
		{FieldPT1, true, true},
		{FieldPT2B, true, true},
		{FieldPT2T, true, true},
		{FieldPT3, true, true},
		{FieldPT5, true, true},
		{FieldName, true, false},
		{FieldOtherNames, true, false},
		{Field("pt4"), false, false},
	}
	for _, tt := range tests {
		t.Run(string(tt.field), func(t *testing.T) {
			t.Parallel()
			if got := tt.field.IsValid(); got != tt.valid {
				t.Errorf("Field(%q).IsValid() = %v, want %v", tt.field, got, tt.valid)
			}
			if got := tt.field.IsIdentifier(); got != tt.ident {
				t.Errorf("Field(%q).IsIdentifier() = %v, want %v", tt.field, got, tt.ident)
			}
		})
	}
}
