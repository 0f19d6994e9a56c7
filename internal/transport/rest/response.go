package rest

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/heartmarshall/iso639/pkg/ctxutil"
	"github.com/heartmarshall/iso639/pkg/iso639"
)

// LanguageResponse is the JSON form of one record.
type LanguageResponse struct {
	Name       string   `json:"name"`
	PT1        string   `json:"pt1"`
	PT2B       string   `json:"pt2b"`
	PT2T       string   `json:"pt2t"`
	PT3        string   `json:"pt3"`
	PT5        string   `json:"pt5"`
	Type       string   `json:"type,omitempty"`
	Scope      string   `json:"scope"`
	OtherNames []string `json:"other_names,omitempty"`
	Macro      string   `json:"macro,omitempty"`
}

func toLanguageResponse(lg iso639.Lang) LanguageResponse {
	resp := LanguageResponse{
		Name:       lg.Name(),
		PT1:        lg.PT1(),
		PT2B:       lg.PT2B(),
		PT2T:       lg.PT2T(),
		PT3:        lg.PT3(),
		PT5:        lg.PT5(),
		Type:       string(lg.Type()),
		Scope:      string(lg.Scope()),
		OtherNames: lg.OtherNames(),
	}
	if macro, ok := lg.Macro(); ok {
		resp.Macro = macro.Key()
	}
	return resp
}

func toLanguageResponses(langs []iso639.Lang) []LanguageResponse {
	out := make([]LanguageResponse, 0, len(langs))
	for _, lg := range langs {
		out = append(out, toLanguageResponse(lg))
	}
	return out
}

// ErrorResponse is the JSON body of every error.
type ErrorResponse struct {
	Error       string               `json:"error"`
	Code        string               `json:"code"`
	Deprecation *DeprecationResponse `json:"deprecation,omitempty"`
}

// DeprecationResponse describes a withdrawn value and its replacement.
type DeprecationResponse struct {
	ID        string `json:"id"`
	Field     string `json:"field"`
	Name      string `json:"name,omitempty"`
	Reason    string `json:"reason,omitempty"`
	ChangeTo  string `json:"change_to,omitempty"`
	Remedy    string `json:"remedy,omitempty"`
	Effective string `json:"effective,omitempty"`
}

// Error codes.
const (
	codeInvalid    = "invalid_language_value"
	codeDeprecated = "deprecated_language_value"
	codeBadRequest = "bad_request"
	codeNotFound   = "not_found"
	codeInternal   = "internal"
)

// writeResolveError maps a resolution error to its HTTP form:
// withdrawn values are 410 Gone, unknown values 404.
func writeResolveError(w http.ResponseWriter, r *http.Request, logger *slog.Logger, err error) {
	var (
		dep *iso639.DeprecatedLanguageValueError
		inv *iso639.InvalidLanguageValueError
	)
	switch {
	case errors.As(err, &dep):
		writeJSON(w, http.StatusGone, ErrorResponse{
			Error: dep.Error(),
			Code:  codeDeprecated,
			Deprecation: &DeprecationResponse{
				ID:        dep.ID,
				Field:     string(dep.Field),
				Name:      dep.Name,
				Reason:    dep.Reason,
				ChangeTo:  dep.ChangeTo,
				Remedy:    dep.Remedy,
				Effective: dep.Effective,
			},
		})
	case errors.As(err, &inv):
		writeJSON(w, http.StatusNotFound, ErrorResponse{Error: inv.Error(), Code: codeInvalid})
	default:
		ctxutil.Logger(r.Context(), logger).ErrorContext(r.Context(), "resolve language", slog.Any("error", err))
		writeJSON(w, http.StatusInternalServerError, ErrorResponse{Error: "internal server error", Code: codeInternal})
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v) //nolint:errcheck
}
