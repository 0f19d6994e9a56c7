package rest

import (
	"log/slog"
	"net/http"

	"github.com/heartmarshall/iso639/pkg/iso639"
)

// LanguageHandler serves read-only lookups against a registry.
type LanguageHandler struct {
	reg *iso639.Registry
	log *slog.Logger
}

// NewLanguageHandler creates a LanguageHandler.
func NewLanguageHandler(reg *iso639.Registry, logger *slog.Logger) *LanguageHandler {
	return &LanguageHandler{reg: reg, log: logger.With("component", "rest.language")}
}

// ListResponse wraps a list of records.
type ListResponse struct {
	Version   string             `json:"version,omitempty"`
	Count     int                `json:"count"`
	Languages []LanguageResponse `json:"languages"`
}

// CheckResponse reports whether a value denotes a language.
type CheckResponse struct {
	Value      string   `json:"value"`
	Fields     []string `json:"fields,omitempty"`
	IsLanguage bool     `json:"is_language"`
}

// Get resolves {value} and returns the record.
func (h *LanguageHandler) Get(w http.ResponseWriter, r *http.Request) {
	lg, ok := h.resolve(w, r)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, toLanguageResponse(lg))
}

// List returns every record ordered by name, optionally filtered by the
// scope and type query parameters.
func (h *LanguageHandler) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	scope, typ := iso639.Scope(q.Get("scope")), iso639.Type(q.Get("type"))
	if scope != "" && !scope.IsValid() {
		writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: "unknown scope " + string(scope), Code: codeBadRequest})
		return
	}
	if typ != "" && !typ.IsValid() {
		writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: "unknown type " + string(typ), Code: codeBadRequest})
		return
	}

	out := make([]LanguageResponse, 0, h.reg.Len())
	for lg := range h.reg.Langs() {
		if scope != "" && lg.Scope() != scope {
			continue
		}
		if typ != "" && lg.Type() != typ {
			continue
		}
		out = append(out, toLanguageResponse(lg))
	}

	writeJSON(w, http.StatusOK, ListResponse{Version: h.reg.Version(), Count: len(out), Languages: out})
}

// Individuals returns the individual languages of macrolanguage {value}.
func (h *LanguageHandler) Individuals(w http.ResponseWriter, r *http.Request) {
	lg, ok := h.resolve(w, r)
	if !ok {
		return
	}
	members := toLanguageResponses(lg.Individuals())
	writeJSON(w, http.StatusOK, ListResponse{Count: len(members), Languages: members})
}

// Macro returns the macrolanguage {value} belongs to, or 404.
func (h *LanguageHandler) Macro(w http.ResponseWriter, r *http.Request) {
	lg, ok := h.resolve(w, r)
	if !ok {
		return
	}
	macro, ok := lg.Macro()
	if !ok {
		writeJSON(w, http.StatusNotFound, ErrorResponse{
			Error: lg.Name() + " is not part of a macrolanguage",
			Code:  codeNotFound,
		})
		return
	}
	writeJSON(w, http.StatusOK, toLanguageResponse(macro))
}

// Check reports whether {value} resolves, restricted to the field query
// parameters when present. It never fails on unknown values.
func (h *LanguageHandler) Check(w http.ResponseWriter, r *http.Request) {
	value := r.PathValue("value")
	raw := r.URL.Query()["field"]

	fields := make([]iso639.Field, 0, len(raw))
	for _, name := range raw {
		f, ok := iso639.ParseField(name)
		if !ok {
			writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: "unknown field " + name, Code: codeBadRequest})
			return
		}
		fields = append(fields, f)
	}

	writeJSON(w, http.StatusOK, CheckResponse{
		Value:      value,
		Fields:     raw,
		IsLanguage: h.reg.IsLanguage(value, fields...),
	})
}

func (h *LanguageHandler) resolve(w http.ResponseWriter, r *http.Request) (iso639.Lang, bool) {
	lg, err := h.reg.New(r.PathValue("value"))
	if err != nil {
		writeResolveError(w, r, h.log, err)
		return iso639.Lang{}, false
	}
	return lg, true
}
