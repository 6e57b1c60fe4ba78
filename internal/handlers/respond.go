package handlers

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"

	"bookmystay-backend/internal/apperrors"
	"bookmystay-backend/internal/logger"
)

const invalidJSONMessage = "Invalid JSON body"

func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		logger.Log.Errorw("failed to encode response", "error", err)
	}
}

// writeError renders err as {success:false, message}. Errors that are not
// AppErrors are answered with 500.
func writeError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	message := "Error: " + err.Error()
	if appErr, ok := apperrors.As(err); ok {
		status = appErr.HTTPStatus
		message = appErr.Message
	}

	writeJSON(w, status, map[string]interface{}{
		"success": false,
		"message": message,
	})
}

// decodeBody parses a JSON body into a field map. An empty body or a
// top-level array yields an empty map; a bare scalar is rejected like any
// other non-object payload a strict JSON body parser would refuse.
func decodeBody(r *http.Request) (map[string]interface{}, error) {
	if r.Body == nil {
		return map[string]interface{}{}, nil
	}

	decoder := json.NewDecoder(r.Body)
	decoder.UseNumber()

	var raw interface{}
	if err := decoder.Decode(&raw); err != nil {
		if errors.Is(err, io.EOF) {
			return map[string]interface{}{}, nil
		}
		return nil, apperrors.New(apperrors.ValidationError, invalidJSONMessage, err.Error())
	}

	switch v := raw.(type) {
	case map[string]interface{}:
		return v, nil
	case []interface{}:
		return map[string]interface{}{}, nil
	default:
		return nil, apperrors.New(apperrors.ValidationError, invalidJSONMessage, "body must be a JSON object or array")
	}
}

// fieldText converts a decoded JSON value to text. Values that count as
// absent (missing, null, "", false, 0) yield "" and false.
func fieldText(body map[string]interface{}, key string) (string, bool) {
	switch v := body[key].(type) {
	case nil:
		return "", false
	case string:
		return v, v != ""
	case bool:
		if !v {
			return "", false
		}
		return strconv.FormatBool(v), true
	case json.Number:
		if f, err := v.Float64(); err == nil && f == 0 {
			return "", false
		}
		return v.String(), true
	default:
		raw, err := json.Marshal(v)
		if err != nil {
			return "", false
		}
		return string(raw), true
	}
}

// NotFound answers routes nothing is mounted on.
func NotFound(w http.ResponseWriter, r *http.Request) {
	writeError(w, apperrors.New(apperrors.NotFoundError, "Route not found", r.URL.Path))
}

func MethodNotAllowed(w http.ResponseWriter, r *http.Request) {
	writeError(w, apperrors.New(apperrors.MethodError, "Method not allowed", r.Method))
}
