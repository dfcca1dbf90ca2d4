// Package models provides the transport-neutral data structures exchanged between the runtimes and the responder.
package models

// Request represents an incoming client request. Header keys are lower-cased.
type Request struct {
	Method  string
	Path    string
	Body    string
	Headers map[string]string
}

// Response defines the structure for a response containing a body, headers, and a status code.
type Response struct {
	Body       string
	Headers    map[string]string
	StatusCode int
}
