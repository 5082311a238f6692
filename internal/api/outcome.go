package api

import (
	"fmt"
	"net/http"

	apperrors "cloud-gateway/internal/errors"
)

// Outcome is the result of handling one action request. Every request
// produces exactly one Outcome and Format maps each to one response.
type Outcome interface {
	outcome()
}

// ValidationFailed is returned by the validators and also used as an
// Outcome, so it satisfies error.
type ValidationFailed struct {
	Message string
}

// Skipped means no target is configured and no external call was made.
type Skipped struct {
	Action    string
	TargetEnv string
	Echo      map[string]string
}

type Succeeded struct {
	Message   string
	TargetKey string
	Target    string
	Echo      map[string]string
}

type CredentialsMissing struct{}

// GatewayError carries the provider's error text verbatim.
type GatewayError struct {
	Text string
}

func (ValidationFailed) outcome()   {}
func (Skipped) outcome()            {}
func (Succeeded) outcome()          {}
func (CredentialsMissing) outcome() {}
func (GatewayError) outcome()       {}

func (v ValidationFailed) Error() string {
	return v.Message
}

const internalErrorText = "internal server error"

// Format renders an Outcome as an HTTP status and JSON body. It is total:
// an Outcome it does not recognise becomes a 500.
func Format(o Outcome) (int, map[string]any) {
	switch o := o.(type) {
	case ValidationFailed:
		return http.StatusBadRequest, errorBody(o.Message)
	case Skipped:
		body := withEcho(o.Echo)
		body["message"] = fmt.Sprintf("%s skipped (%s not set)", o.Action, o.TargetEnv)
		return http.StatusOK, body
	case Succeeded:
		body := withEcho(o.Echo)
		body["message"] = o.Message
		body[o.TargetKey] = o.Target
		return http.StatusOK, body
	case CredentialsMissing:
		return http.StatusInternalServerError, errorBody(apperrors.ErrCredentialsMissing.Error())
	case GatewayError:
		return http.StatusInternalServerError, errorBody(o.Text)
	default:
		return http.StatusInternalServerError, errorBody(internalErrorText)
	}
}

// gatewayOutcome classifies the error from a single provider call.
func gatewayOutcome(err error) Outcome {
	if apperrors.IsCredentialsMissing(err) {
		return CredentialsMissing{}
	}
	return GatewayError{Text: apperrors.ProviderMessage(err)}
}

func errorBody(msg string) map[string]any {
	return map[string]any{"error": msg}
}

func withEcho(echo map[string]string) map[string]any {
	body := make(map[string]any, len(echo)+2)
	for k, v := range echo {
		body[k] = v
	}
	return body
}
