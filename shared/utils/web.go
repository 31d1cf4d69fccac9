package utils

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	internal_errors "github.com/itchan-dev/forum/shared/errors"
	"github.com/itchan-dev/forum/shared/logger"
	"github.com/itchan-dev/forum/shared/validation"
)

// WriteErrorAndStatusCode answers with the status carried by err.
// Unclassified errors become 500 and their text stays in the log.
func WriteErrorAndStatusCode(w http.ResponseWriter, err error) {
	code := internal_errors.StatusCode(err)
	if code == http.StatusInternalServerError {
		logger.Log.Error("internal error", "error", err)
		http.Error(w, "Internal error", code)
		return
	}
	http.Error(w, err.Error(), code)
}

// DecodeValidate decodes json from r into body and checks its validate tags.
func DecodeValidate(r io.ReadCloser, body any) error {
	if err := Decode(r, body); err != nil {
		return err
	}
	return validation.Struct(body)
}

func Decode(r io.ReadCloser, body any) error {
	if err := json.NewDecoder(r).Decode(body); err != nil {
		logger.Log.Debug("can't decode body", "error", err)
		if errors.Is(err, io.EOF) {
			return internal_errors.BadRequest("Body is empty")
		}
		return internal_errors.BadRequest("Body is invalid json")
	}
	return nil
}

func WriteJSON(w http.ResponseWriter, status int, v any) {
	payload, err := json.Marshal(v)
	if err != nil {
		logger.Log.Error("can't encode response", "error", err)
		http.Error(w, "Internal error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	w.Write(payload)
	w.Write([]byte("\n"))
}
