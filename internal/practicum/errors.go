package practicum

import (
	"fmt"
	"strconv"
	"strings"
)

// Kinds returned by the Kind() method of each error type. The poll loop keys
// duplicate-error suppression on kind + message, not on a bare string compare.
const (
	KindEndpoint      = "endpoint_unavailable"
	KindMalformed     = "malformed_response"
	KindNoHomework    = "no_homework"
	KindUnknownStatus = "unknown_status"
)

// EndpointError reports a transport failure or a non-2xx response from the
// homework-statuses endpoint.
type EndpointError struct {
	URL        string
	StatusCode int // 0 when the request never got an HTTP response
	Err        error
}

func (e *EndpointError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("эндпоинт %s недоступен: код ответа %d", e.URL, e.StatusCode)
	}
	return fmt.Sprintf("сбой при запросе к эндпоинту %s: %v", e.URL, e.Err)
}

func (e *EndpointError) Unwrap() error { return e.Err }
func (e *EndpointError) Kind() string  { return KindEndpoint }

// MalformedError reports a response whose shape does not match the API
// contract (missing keys, wrong value types, undecodable body).
type MalformedError struct {
	Reason string
}

func (e *MalformedError) Error() string {
	return "структура ответа API не соответствует ожиданиям: " + e.Reason
}

func (e *MalformedError) Kind() string { return KindMalformed }

// MissingFieldsError reports a homework record lacking required fields.
type MissingFieldsError struct {
	Fields []string
}

func (e *MissingFieldsError) Error() string {
	return "в домашней работе нет обязательных полей: " + strings.Join(e.Fields, ", ")
}

func (e *MissingFieldsError) Kind() string { return KindNoHomework }

// UnknownStatusError reports a status value outside the fixed verdict table.
type UnknownStatusError struct {
	Status string
}

func (e *UnknownStatusError) Error() string {
	return "неожиданный статус домашней работы: " + strconv.Quote(e.Status)
}

func (e *UnknownStatusError) Kind() string { return KindUnknownStatus }
