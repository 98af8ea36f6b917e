package adapter

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
)

// errorEnvelope is the JSON body the record store returns on failure, both at
// call level and per zone/record.
type errorEnvelope struct {
	Code              ErrorCode `json:"code"`
	Message           string    `json:"message,omitempty"`
	RetryAfterSeconds float64   `json:"retryAfterSeconds,omitempty"`
}

func (e *errorEnvelope) toRemoteError() *RemoteError {
	if e == nil || e.Code == "" {
		return nil
	}
	return &RemoteError{
		Code:       e.Code,
		Message:    e.Message,
		RetryAfter: time.Duration(e.RetryAfterSeconds * float64(time.Second)),
	}
}

// mapHTTPError converts a non-2xx response into a *RemoteError. The body's
// error envelope wins; when the body is not an envelope the HTTP status is
// mapped to the closest code so the classifier still sees something usable.
func mapHTTPError(resp *resty.Response) error {
	if resp.StatusCode() >= http.StatusOK && resp.StatusCode() < http.StatusMultipleChoices {
		return nil
	}

	var envelope errorEnvelope
	if err := json.Unmarshal(resp.Body(), &envelope); err == nil && envelope.Code != "" {
		return envelope.toRemoteError()
	}

	body := strings.TrimSpace(string(resp.Body()))
	if body == "" {
		body = http.StatusText(resp.StatusCode())
	}

	switch resp.StatusCode() {
	case http.StatusTooManyRequests:
		return &RemoteError{Code: CodeThrottled, Message: body, RetryAfter: retryAfterHeader(resp)}
	case http.StatusServiceUnavailable:
		return &RemoteError{Code: CodeServiceUnavailable, Message: body, RetryAfter: retryAfterHeader(resp)}
	case http.StatusGone:
		return &RemoteError{Code: CodeTokenExpired, Message: body}
	case http.StatusUnauthorized:
		return &RemoteError{Code: CodeAuthFailed, Message: body}
	case http.StatusForbidden:
		return &RemoteError{Code: CodePermissionDenied, Message: body}
	case http.StatusNotFound:
		return &RemoteError{Code: CodeNotFound, Message: body}
	case http.StatusBadRequest:
		return &RemoteError{Code: CodeBadRequest, Message: body}
	default:
		return &RemoteError{Code: CodeInternal, Message: body}
	}
}

func retryAfterHeader(resp *resty.Response) time.Duration {
	seconds, err := strconv.Atoi(strings.TrimSpace(resp.Header().Get("Retry-After")))
	if err != nil || seconds < 0 {
		return 0
	}
	return time.Duration(seconds) * time.Second
}
