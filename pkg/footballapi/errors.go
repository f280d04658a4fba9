package footballapi

import (
	"errors"
	"fmt"
	"strings"
)

// ErrorKind classifies a failed call. The zero value is KindUnknownServer.
type ErrorKind int

const (
	KindUnknownServer ErrorKind = iota
	KindAuth
	KindInvalidAction
	KindSubscription
	KindInvalidCompetition
	KindMissingDate
	KindMissingParameter
	KindTransport
	KindDecode
)

var kindNames = map[ErrorKind]string{
	KindUnknownServer:      "unknown_server",
	KindAuth:               "auth",
	KindInvalidAction:      "invalid_action",
	KindSubscription:       "subscription",
	KindInvalidCompetition: "invalid_competition",
	KindMissingDate:        "missing_date",
	KindMissingParameter:   "missing_parameter",
	KindTransport:          "transport",
	KindDecode:             "decode",
}

var kindMessages = map[ErrorKind]string{
	KindUnknownServer:      "unrecognized response status",
	KindAuth:               "the API key was not found, check it",
	KindInvalidAction:      "the action could not be found",
	KindSubscription:       "the competition is not in your subscription",
	KindInvalidCompetition: "the competition cannot be found, check the competition id",
	KindMissingDate:        "check the match_date or from_date and to_date",
	KindMissingParameter:   "missing required parameter",
	KindTransport:          "request failed",
	KindDecode:             "malformed response body",
}

func (k ErrorKind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("kind(%d)", int(k))
}

func (k ErrorKind) message() string {
	if msg, ok := kindMessages[k]; ok {
		return msg
	}
	return kindMessages[KindUnknownServer]
}

// kindSentinel lets callers match an *Error by kind with errors.Is.
type kindSentinel ErrorKind

func (s kindSentinel) Error() string { return "footballapi: " + ErrorKind(s).message() }

// Sentinel errors, one per kind.
var (
	ErrUnknownServer      error = kindSentinel(KindUnknownServer)
	ErrAuth               error = kindSentinel(KindAuth)
	ErrInvalidAction      error = kindSentinel(KindInvalidAction)
	ErrSubscription       error = kindSentinel(KindSubscription)
	ErrInvalidCompetition error = kindSentinel(KindInvalidCompetition)
	ErrMissingDate        error = kindSentinel(KindMissingDate)
	ErrMissingParameter   error = kindSentinel(KindMissingParameter)
	ErrTransport          error = kindSentinel(KindTransport)
	ErrDecode             error = kindSentinel(KindDecode)
)

// Error is returned by every failed client call.
type Error struct {
	Kind   ErrorKind
	Action string
	// Param names the missing parameter for KindMissingParameter.
	Param string
	// StatusCode is set when the HTTP layer returned a non-success status.
	StatusCode int
	// ServerMessage holds the ERROR phrase, or a body snippet for HTTP failures.
	ServerMessage string
	Err           error
}

func (e *Error) Error() string {
	var b strings.Builder
	b.WriteString(e.Summary())
	if e.StatusCode > 0 {
		fmt.Fprintf(&b, " (status=%d)", e.StatusCode)
	}
	if e.ServerMessage != "" {
		fmt.Fprintf(&b, ": %q", e.ServerMessage)
	}
	if e.Err != nil {
		b.WriteString(": " + e.Err.Error())
	}
	return b.String()
}

// Summary describes the failure by action, kind and parameter only. It never
// includes upstream bodies or transport details, so it is safe to show callers.
func (e *Error) Summary() string {
	var b strings.Builder
	b.WriteString("footballapi")
	if e.Action != "" {
		b.WriteString(" " + e.Action)
	}
	b.WriteString(": " + e.Kind.message())
	if e.Param != "" {
		fmt.Fprintf(&b, " %q", e.Param)
	}
	return b.String()
}

func (e *Error) Unwrap() error { return e.Err }

// Is reports whether target is the sentinel for e's kind.
func (e *Error) Is(target error) bool {
	s, ok := target.(kindSentinel)
	return ok && ErrorKind(s) == e.Kind
}

// AsError attempts to unwrap err into an *Error.
func AsError(err error) (*Error, bool) {
	var apiErr *Error
	if errors.As(err, &apiErr) {
		return apiErr, true
	}
	return nil, false
}

// KindOf returns the kind of the first *Error in err's chain.
func KindOf(err error) (ErrorKind, bool) {
	if apiErr, ok := AsError(err); ok {
		return apiErr.Kind, true
	}
	return KindUnknownServer, false
}

func missingParam(action, param string) *Error {
	return &Error{Kind: KindMissingParameter, Action: action, Param: param}
}

// Phrases returned in the ERROR field by the Football-API.
const (
	phraseAuth               = "API Key not found"
	phraseInvalidAction      = "That Action cannot be found.  Did you send the 'Action' parameter?  List Actions with Action=DescribeActions"
	phraseSubscription       = "The requested competition is not included in your subscription"
	phraseInvalidCompetition = "Competition cannot be found"
	phraseMissingDate        = "please specify the parameter 'match_date' or the two parameters 'from_date' and 'to_date' to get the matches"
	phraseNoMatchToday       = "Did not find any match today"
)

var serverPhrases = buildPhraseTable(map[string]ErrorKind{
	phraseAuth:               KindAuth,
	phraseInvalidAction:      KindInvalidAction,
	phraseSubscription:       KindSubscription,
	phraseInvalidCompetition: KindInvalidCompetition,
	phraseMissingDate:        KindMissingDate,
	phraseNoMatchToday:       KindMissingDate,
})

func buildPhraseTable(raw map[string]ErrorKind) map[string]ErrorKind {
	table := make(map[string]ErrorKind, len(raw))
	for phrase, kind := range raw {
		table[normalizePhrase(phrase)] = kind
	}
	return table
}

// normalizePhrase collapses runs of whitespace so the server's double spacing does not matter.
func normalizePhrase(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// classifyStatus maps a non-OK ERROR value to its kind; unknown phrases fail closed.
func classifyStatus(status string) ErrorKind {
	if kind, ok := serverPhrases[normalizePhrase(status)]; ok {
		return kind
	}
	return KindUnknownServer
}
