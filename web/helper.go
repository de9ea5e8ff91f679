package web

import (
	"encoding/json"
	stderrors "errors"
	"net/http"

	"github.com/gilliss/AttenCalc/errors"
)

func writeJSONResponse(w http.ResponseWriter, httpStatus int, body interface{}) error {
	marshaled, marshalingErr := json.Marshal(body)
	if marshalingErr != nil {
		w.WriteHeader(http.StatusInternalServerError)
		return marshalingErr
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(httpStatus)
	_, writeErr := w.Write(marshaled)
	return writeErr
}

func decodeJSONRequest(r *http.Request, unpackObject interface{}) error {
	return json.NewDecoder(r.Body).Decode(unpackObject)
}

func handleRequestErr(w http.ResponseWriter, err error) {
	log.Errorf("request failed: %s", err.Error())
	_ = writeJSONResponse(w, statusForErr(err), map[string]string{"error": err.Error()})
}

func statusForErr(err error) int {
	switch {
	case stderrors.Is(err, errors.ErrNotFound):
		return http.StatusNotFound
	case stderrors.Is(err, errors.ErrMalformed),
		stderrors.Is(err, errors.ErrInvalidNumber),
		stderrors.Is(err, errors.ErrUnknownCommand),
		stderrors.Is(err, errors.ErrScriptFormat):
		return http.StatusBadRequest
	default:
		// malformed or incomplete data tables are a server-side problem
		return http.StatusInternalServerError
	}
}
