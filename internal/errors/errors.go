package errors

import (
	"errors"
	"net/http"
)

var (
	// ErrUserNotFound is returned when the authenticated user no longer exists.
	ErrUserNotFound = errors.New("user not found")
	// ErrUserAlreadyExists is returned when registering an email that is taken.
	ErrUserAlreadyExists = errors.New("user already exists")
	// ErrInvalidCredentials is returned when email or password is incorrect.
	ErrInvalidCredentials = errors.New("invalid credentials")
	// ErrNoProfile is returned when the current user has not created a profile yet.
	ErrNoProfile = errors.New("no profile for this user")
	// ErrProfileNotFound is returned when looking up another user's profile fails.
	ErrProfileNotFound = errors.New("profile not found")
	// ErrExperienceNotFound is returned when an experience entry id is unknown.
	ErrExperienceNotFound = errors.New("experience not found")
	// ErrEducationNotFound is returned when an education entry id is unknown.
	ErrEducationNotFound = errors.New("education not found")
	// ErrPostNotFound is returned when a post id is unknown or malformed.
	ErrPostNotFound = errors.New("post not found")
	// ErrCommentNotFound is returned when a comment id is unknown.
	ErrCommentNotFound = errors.New("comment does not exist")
	// ErrNotAuthorized is returned when a user mutates content they do not own.
	ErrNotAuthorized = errors.New("user not authorized")
	// ErrPostAlreadyLiked is returned when liking a post twice.
	ErrPostAlreadyLiked = errors.New("post already liked")
	// ErrPostNotLiked is returned when unliking a post that was never liked.
	ErrPostNotLiked = errors.New("post has not yet been liked")
	// ErrGithubProfileNotFound is returned when GitHub does not know the username.
	ErrGithubProfileNotFound = errors.New("no github profile found")
)

// mapping is the client-facing rendering of a domain error.
type mapping struct {
	err    error
	status int
	msg    string
	list   bool
}

var mappings = []mapping{
	{ErrUserAlreadyExists, http.StatusBadRequest, "User already exists", true},
	{ErrInvalidCredentials, http.StatusBadRequest, "Invalid Credentials", true},
	{ErrNoProfile, http.StatusBadRequest, "There is no profile for this user", false},
	{ErrProfileNotFound, http.StatusBadRequest, "Profile not found", false},
	{ErrPostAlreadyLiked, http.StatusBadRequest, "Post already liked", false},
	{ErrPostNotLiked, http.StatusBadRequest, "Post has not yet been liked", false},
	{ErrNotAuthorized, http.StatusUnauthorized, "User not authorized", false},
	{ErrUserNotFound, http.StatusNotFound, "User not found", false},
	{ErrExperienceNotFound, http.StatusNotFound, "Experience not found", false},
	{ErrEducationNotFound, http.StatusNotFound, "Education not found", false},
	{ErrPostNotFound, http.StatusNotFound, "Post not found", false},
	{ErrCommentNotFound, http.StatusNotFound, "Comment does not exist", false},
	{ErrGithubProfileNotFound, http.StatusNotFound, "No Github profile found", false},
}

// ServerErrorMessage is the only message clients see for unexpected failures.
const ServerErrorMessage = "Server Error"

// ErrorResponse represents a single-message error body.
type ErrorResponse struct {
	Msg string `json:"msg"`
}

// FieldError is one entry of a validation error list.
type FieldError struct {
	Msg      string `json:"msg"`
	Param    string `json:"param,omitempty"`
	Location string `json:"location,omitempty"`
}

// ValidationResponse represents a list-of-errors body.
type ValidationResponse struct {
	Errors []FieldError `json:"errors"`
}

// ValidationError carries field errors produced while validating a request.
type ValidationError struct {
	Fields []FieldError
}

func (e *ValidationError) Error() string {
	if len(e.Fields) == 0 {
		return "validation failed"
	}
	return e.Fields[0].Msg
}

// Response converts the error to its JSON body.
func (e *ValidationError) Response() ValidationResponse {
	return ValidationResponse{Errors: e.Fields}
}

// NewFieldError builds a single-field validation error for a body parameter.
func NewFieldError(param, msg string) *ValidationError {
	return &ValidationError{Fields: []FieldError{{Msg: msg, Param: param, Location: "body"}}}
}

// HTTPError represents an HTTP error with status code and body.
type HTTPError struct {
	StatusCode int
	Body       interface{}
}

func (e *HTTPError) Error() string {
	switch b := e.Body.(type) {
	case ErrorResponse:
		return b.Msg
	case ValidationResponse:
		if len(b.Errors) > 0 {
			return b.Errors[0].Msg
		}
	}
	return http.StatusText(e.StatusCode)
}

// NewHTTPError creates a new HTTP error with a single message body.
func NewHTTPError(statusCode int, message string) *HTTPError {
	return &HTTPError{StatusCode: statusCode, Body: ErrorResponse{Msg: message}}
}

func newListError(statusCode int, message string) *HTTPError {
	return &HTTPError{StatusCode: statusCode, Body: ValidationResponse{Errors: []FieldError{{Msg: message}}}}
}

// IsInternal reports whether the mapped error hides an unexpected failure.
func (e *HTTPError) IsInternal() bool {
	return e.StatusCode >= http.StatusInternalServerError
}

// MapErrorToHTTP maps domain errors to HTTP errors. Wrapped errors are matched
// with errors.Is and never leak their context to clients.
func MapErrorToHTTP(err error) *HTTPError {
	var verr *ValidationError
	if errors.As(err, &verr) {
		return &HTTPError{StatusCode: http.StatusBadRequest, Body: verr.Response()}
	}

	for _, m := range mappings {
		if !errors.Is(err, m.err) {
			continue
		}
		if m.list {
			return newListError(m.status, m.msg)
		}
		return NewHTTPError(m.status, m.msg)
	}
	return NewHTTPError(http.StatusInternalServerError, ServerErrorMessage)
}
