package handler

import (
	"encoding/json"
	"maps"
	"net/http"
)

// JSONResponse is the envelope of every API answer.
type JSONResponse struct {
	Data  any            `json:"data,omitempty"`
	Meta  map[string]any `json:"meta,omitempty"`
	Error *ErrorDetail   `json:"error,omitempty"`
}

// ErrorDetail describes a failed request. Message is safe to show a shopper.
type ErrorDetail struct {
	Code    string              `json:"code,omitempty"`
	Message string              `json:"message,omitempty"`
	Details map[string][]string `json:"details,omitempty"`
}

type jsonResponse struct {
	status int
	body   JSONResponse
}

func (j jsonResponse) Render(w http.ResponseWriter, _ *http.Request) error {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.Header().Set("Cache-Control", "no-store")
	w.WriteHeader(j.status)
	return json.NewEncoder(w).Encode(j.body)
}

// JSON answers 200 with data.
func JSON(data any) Response {
	return JSONWithStatus(data, http.StatusOK)
}

func JSONWithStatus(data any, status int) Response {
	return jsonResponse{status: status, body: JSONResponse{Data: data}}
}

// JSONWithMeta answers 200 with data and a copy of meta.
func JSONWithMeta(data any, meta map[string]any) Response {
	return jsonResponse{status: http.StatusOK, body: JSONResponse{Data: data, Meta: maps.Clone(meta)}}
}

// JSONError answers status with an error envelope. data, when non-nil, is
// sent alongside so clients can still refresh their view.
func JSONError(status int, detail ErrorDetail, data any) Response {
	return jsonResponse{status: status, body: JSONResponse{Data: data, Error: &detail}}
}

type emptyResponse struct {
	status int
}

func (e emptyResponse) Render(w http.ResponseWriter, _ *http.Request) error {
	w.WriteHeader(e.status)
	return nil
}

// Empty answers 204 No Content.
func Empty() Response {
	return emptyResponse{status: http.StatusNoContent}
}
