// Package iso639 resolves language identifiers and names to ISO 639 records.
//
// Any ISO 639-1, 639-2 (bibliographic or terminological), 639-3 or 639-5
// code, reference name or alternate name resolves to the same record:
//
//	fr, _ := iso639.New("French")
//	de, _ := iso639.New("deu")
//	fmt.Println(fr.PT2B(), de.Name()) // fre German
//
// Matching is exact and case-sensitive. Values are checked, in order,
// against ISO 639-1, ISO 639-2/B and /T, ISO 639-3, ISO 639-5, reference
// names and alternate names; the first match wins. A value matching none of
// them yields a *DeprecatedLanguageValueError when it is a withdrawn code or
// former name, and an *InvalidLanguageValueError otherwise.
//
// The package-level functions use a registry built lazily, exactly once,
// from the dataset embedded in the binary. The embedded dataset is a curated
// subset: the ISO 639-1 languages, the ISO 639-2 and 639-5 groups and
// special codes it references, and a sample of ISO 639-3 individual
// languages. Use Load with the complete tables, or run the service with
// dataset.source set to file or postgres (filled by "iso639 import"), when
// every ISO 639-3 code must resolve. Registries are read-only and safe
// for concurrent use; Lang values are owned by their holder.
package iso639
