package api

import (
	"net/http"
)

// Service is one gateway: a name for the health check and a single POST
// action that turns a request into an Outcome.
type Service interface {
	Name() string
	ActionPath() string
	Handle(r *http.Request) Outcome
}
