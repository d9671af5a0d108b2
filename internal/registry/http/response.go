package http

import (
	"net/http"

	"github.com/broadvale/registry/pkg/httpx"
)

// The registry speaks a three-shape envelope: object lists for reads,
// a human-readable message for mutations, and an error with its code echoed
// in the body.

type objectsResponse struct {
	Objects any `json:"objects"`
}

type messageResponse struct {
	Message string `json:"message"`
}

type errorResponse struct {
	Error string `json:"error"`
	Code  int    `json:"code"`
}

func writeObjects(w http.ResponseWriter, objects any) {
	httpx.WriteJSON(w, http.StatusOK, objectsResponse{Objects: objects})
}

func writeMessage(w http.ResponseWriter, msg string) {
	httpx.WriteJSON(w, http.StatusOK, messageResponse{Message: msg})
}

func writeError(w http.ResponseWriter, code int, msg string) {
	httpx.WriteJSON(w, code, errorResponse{Error: msg, Code: code})
}
