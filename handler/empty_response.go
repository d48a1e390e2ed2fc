package handler

import "net/http"

type emptyResponse int

func (s emptyResponse) Render(w http.ResponseWriter, _ *http.Request) error {
	w.WriteHeader(int(s))
	return nil
}

// Empty responds 204 No Content, e.g. after a delete or logout.
func Empty() Response {
	return emptyResponse(http.StatusNoContent)
}

// EmptyWithStatus responds with status and no body.
func EmptyWithStatus(status int) Response {
	return emptyResponse(status)
}
