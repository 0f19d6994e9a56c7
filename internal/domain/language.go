package domain

// Language is one canonical record of the dataset: a language, a
// macrolanguage, a special code or a group of languages.
// Records are immutable once the dataset is loaded.
type Language struct {
	Name       string   `json:"name"`
	PT1        string   `json:"pt1"`
	PT2B       string   `json:"pt2b"`
	PT2T       string   `json:"pt2t"`
	PT3        string   `json:"pt3"`
	PT5        string   `json:"pt5"`
	Type       Type     `json:"type,omitempty"`
	Scope      Scope    `json:"scope"`
	OtherNames []string `json:"other_names,omitempty"`
}

// Key returns the stable identifier of the record: the ISO 639-3 code if
// present, then the ISO 639-5 code, then the ISO 639-2 and 639-1 codes for
// entries catalogued only there.
func (l *Language) Key() string {
	switch {
	case l.PT3 != "":
		return l.PT3
	case l.PT5 != "":
		return l.PT5
	case l.PT2B != "":
		return l.PT2B
	default:
		return l.PT1
	}
}

// Value returns the value of a projected field. Unknown fields and
// FieldOtherNames yield "".
func (l *Language) Value(f Field) string {
	switch f {
	case FieldName:
		return l.Name
	case FieldPT1:
		return l.PT1
	case FieldPT2B:
		return l.PT2B
	case FieldPT2T:
		return l.PT2T
	case FieldPT3:
		return l.PT3
	case FieldPT5:
		return l.PT5
	}
	return ""
}

// HasIdentifier reports whether at least one coded identifier is set.
func (l *Language) HasIdentifier() bool {
	return l.PT1 != "" || l.PT2B != "" || l.PT2T != "" || l.PT3 != "" || l.PT5 != ""
}

// Deprecation describes a withdrawn identifier.
type Deprecation struct {
	// ID is the withdrawn identifier.
	ID string `json:"id"`
	// Field is the identifier field ID belonged to.
	Field Field `json:"field"`
	// Name is the former reference name of the withdrawn record.
	Name string `json:"name"`
	// Reason is the registration authority's change category (e.g. "M" for merge).
	Reason   string `json:"reason,omitempty"`
	ChangeTo string `json:"change_to,omitempty"`
	Remedy   string `json:"remedy,omitempty"`
	// Effective is the withdrawal date, YYYY-MM-DD.
	Effective string `json:"effective,omitempty"`
}
