package api

import (
	"fmt"
	"net/http"
)

// Kind identifies one error class on the wire. The string value is what
// clients see in the "err" field of an error body.
type Kind string

const (
	KindBadRequest        Kind = "BadRequest"
	KindBadName           Kind = "BadName"
	KindNotFound          Kind = "NotFound"
	KindAlreadyExists     Kind = "AlreadyExists"
	KindVersionNotFound   Kind = "VersionNotFound"
	KindPropertyNotFound  Kind = "PropertyNotFound"
	KindPropertyReadOnly  Kind = "PropertyReadOnly"
	KindPropertyInvalid   Kind = "PropertyInvalid"
	KindBadConfig         Kind = "BadConfig"
	KindBadInstanceStatus Kind = "BadInstanceStatus"
	KindPortInUse         Kind = "PortInUse"
	KindJavaError         Kind = "JavaError"
	KindIOError           Kind = "IOError"
)

// Error is the single error type surfaced by every operation. Prop is set
// for the property kinds, Status for BadInstanceStatus, Detail for the
// internal kinds (never sent to clients).
type Error struct {
	Kind   Kind
	Prop   string
	Status string
	Detail string
}

func (e *Error) Error() string {
	switch {
	case e.Prop != "":
		return fmt.Sprintf("%s: %s", e.Kind, e.Prop)
	case e.Status != "":
		return fmt.Sprintf("%s: %s", e.Kind, e.Status)
	case e.Detail != "":
		return fmt.Sprintf("%s: %s", e.Kind, e.Detail)
	default:
		return string(e.Kind)
	}
}

// HTTPStatus maps the kind to a response code: internal failures are 500,
// everything the client caused is 400.
func (e *Error) HTTPStatus() int {
	switch e.Kind {
	case KindJavaError, KindIOError:
		return http.StatusInternalServerError
	default:
		return http.StatusBadRequest
	}
}

// Desc is the human-readable message placed in the "desc" field.
func (e *Error) Desc() string {
	switch e.Kind {
	case KindBadRequest:
		return "The request is malformed"
	case KindBadName:
		return "That name cannot be used as the name of a save"
	case KindNotFound:
		return "The save was not found"
	case KindAlreadyExists:
		return "The name is already used by a save"
	case KindVersionNotFound:
		return "The version does not exist, or is not installed"
	case KindPropertyNotFound:
		return "That property does not exist"
	case KindPropertyReadOnly:
		return "That property cannot be written to"
	case KindPropertyInvalid:
		return "The value used for that property is invalid"
	case KindBadConfig:
		return "That property is configured with an invalid value"
	case KindBadInstanceStatus:
		switch e.Status {
		case "loading":
			return "The save is starting up"
		case "online":
			return "The save is running"
		case "shutdown":
			return "The save is shutting down"
		default:
			return "The save is not running"
		}
	case KindPortInUse:
		return "The port is already used by another save"
	case KindJavaError:
		return "An error occurred while launching Java"
	case KindIOError:
		return "An error occurred while operating on files"
	default:
		return string(e.Kind)
	}
}

func BadRequest() *Error     { return &Error{Kind: KindBadRequest} }
func BadName() *Error        { return &Error{Kind: KindBadName} }
func NotFound() *Error       { return &Error{Kind: KindNotFound} }
func AlreadyExists() *Error  { return &Error{Kind: KindAlreadyExists} }
func VersionNotFound() *Error { return &Error{Kind: KindVersionNotFound} }
func PortInUse() *Error      { return &Error{Kind: KindPortInUse} }

func PropertyNotFound(prop string) *Error { return &Error{Kind: KindPropertyNotFound, Prop: prop} }
func PropertyReadOnly(prop string) *Error { return &Error{Kind: KindPropertyReadOnly, Prop: prop} }
func PropertyInvalid(prop string) *Error  { return &Error{Kind: KindPropertyInvalid, Prop: prop} }
func BadConfig(prop string) *Error        { return &Error{Kind: KindBadConfig, Prop: prop} }

func BadInstanceStatus(status string) *Error {
	return &Error{Kind: KindBadInstanceStatus, Status: status}
}

func Java(err error) *Error { return &Error{Kind: KindJavaError, Detail: err.Error()} }

func IO(err error) *Error { return &Error{Kind: KindIOError, Detail: err.Error()} }

func IOf(format string, args ...any) *Error {
	return &Error{Kind: KindIOError, Detail: fmt.Sprintf(format, args...)}
}
