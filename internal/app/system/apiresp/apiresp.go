// Package apiresp writes the console's JSON envelopes through go-chi/render.
//
// Success bodies look like {"status":"ok","data":...}; failures look like
// {"status":"error","error":"..."}.
package apiresp

import (
	"errors"
	"io"
	"net/http"

	"github.com/go-chi/render"
)

const (
	StatusOK    = "ok"
	StatusError = "error"
)

// Response is the envelope every endpoint returns.
type Response struct {
	Status  string `json:"status"`
	Data    any    `json:"data,omitempty"`
	Message string `json:"message,omitempty"`
	Error   string `json:"error,omitempty"`
	Fields  any    `json:"fields,omitempty"`
}

// Ok wraps data in a success envelope.
func Ok(data any) Response {
	return Response{Status: StatusOK, Data: data}
}

// Message is a success envelope carrying only a message.
func Message(msg string) Response {
	return Response{Status: StatusOK, Message: msg}
}

// Error builds a failure envelope.
func Error(msg string) Response {
	return Response{Status: StatusError, Error: msg}
}

// Write sends v with the given status code.
func Write(w http.ResponseWriter, r *http.Request, status int, v Response) {
	render.Status(r, status)
	render.JSON(w, r, v)
}

// OK sends data with 200.
func OK(w http.ResponseWriter, r *http.Request, data any) {
	Write(w, r, http.StatusOK, Ok(data))
}

// Fail sends a failure envelope with status.
func Fail(w http.ResponseWriter, r *http.Request, status int, msg string) {
	Write(w, r, status, Error(msg))
}

// Invalid sends 400 with the first message and the per-field details.
func Invalid(w http.ResponseWriter, r *http.Request, msg string, fields any) {
	resp := Error(msg)
	resp.Fields = fields
	Write(w, r, http.StatusBadRequest, resp)
}

// Decode reads a JSON request body into v. An empty body leaves v untouched.
func Decode(r *http.Request, v any) error {
	if r.Body == nil {
		return nil
	}
	err := render.DecodeJSON(r.Body, v)
	if errors.Is(err, io.EOF) {
		return nil
	}
	return err
}
