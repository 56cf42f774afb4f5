package utils

import (
	"encoding/json"
	"io"
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/nullchan-dev/nullchan/internal/errors"
	"github.com/nullchan-dev/nullchan/internal/logger"
)

// WriteErrorAndStatusCode renders err as a JSON body. Validation errors
// carry the full violation list; everything else is a single message.
// Unrecognized errors default to 500.
func WriteErrorAndStatusCode(w http.ResponseWriter, err error) {
	w.Header().Set("Content-Type", "application/json")
	if ve, ok := err.(*errors.ValidationError); ok {
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(map[string]any{"errors": ve.Violations})
		return
	}
	statusCode := http.StatusInternalServerError
	if e, ok := err.(*errors.ErrorWithStatusCode); ok {
		statusCode = e.StatusCode
	}
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(map[string]string{"error": err.Error()})
}

// Decode parses a request body into body. Proxies sometimes rewrite
// Content-Type to text/plain, so a body that is not valid JSON gets a
// second chance as "key:value" or "key=value" lines before we give up.
func Decode(r io.ReadCloser, body any) error {
	raw, err := io.ReadAll(r)
	if err != nil {
		return &errors.ErrorWithStatusCode{Message: "Can't read request body", StatusCode: http.StatusBadRequest}
	}
	if err := json.Unmarshal(raw, body); err == nil {
		return nil
	}
	obj := parseKeyValueLines(string(raw))
	if len(obj) == 0 {
		return &errors.ErrorWithStatusCode{Message: "Body is invalid json", StatusCode: http.StatusBadRequest}
	}
	coerced, err := json.Marshal(obj)
	if err != nil {
		return &errors.ErrorWithStatusCode{Message: "Body is invalid json", StatusCode: http.StatusBadRequest}
	}
	if err := json.Unmarshal(coerced, body); err != nil {
		logger.Log.Debug("coercing plaintext body", "err", err)
		return &errors.ErrorWithStatusCode{Message: "Body is invalid json", StatusCode: http.StatusBadRequest}
	}
	return nil
}

// DecodeValidate decodes the body and checks `validate` struct tags.
func DecodeValidate(r io.ReadCloser, body any) error {
	if err := Decode(r, body); err != nil {
		return err
	}
	validate := validator.New(validator.WithRequiredStructEnabled())
	if err := validate.Struct(body); err != nil {
		logger.Log.Debug("validating request body", "err", err)
		return &errors.ErrorWithStatusCode{Message: "Required fields missing", StatusCode: http.StatusBadRequest}
	}
	return nil
}

func parseKeyValueLines(text string) map[string]string {
	obj := make(map[string]string)
	text = strings.TrimSpace(text)
	for _, line := range strings.FieldsFunc(text, func(r rune) bool { return r == '\n' || r == '&' }) {
		line = strings.TrimSuffix(line, "\r")
		sep := strings.IndexAny(line, ":=")
		if sep < 0 {
			continue
		}
		key, val := line[:sep], line[sep+1:]
		key = strings.TrimSpace(key)
		if key != "" {
			obj[key] = strings.TrimSpace(val)
		}
	}
	return obj
}
