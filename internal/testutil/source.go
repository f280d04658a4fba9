package testutil

import (
	"context"
	"encoding/json"

	"github.com/preston-bernstein/football-api/pkg/footballapi"
)

// SourceCall records one call made against a StubSource.
type SourceCall struct {
	Action string
	Args   []string
}

// StubSource implements the gateway's upstream source with canned results.
type StubSource struct {
	Payload  json.RawMessage
	Envelope footballapi.Envelope
	Err      error
	Calls    []SourceCall
}

func (s *StubSource) record(action string, args ...string) (json.RawMessage, error) {
	s.Calls = append(s.Calls, SourceCall{Action: action, Args: args})
	if s.Err != nil {
		return nil, s.Err
	}
	return s.Payload, nil
}

func (s *StubSource) Competitions(ctx context.Context) (json.RawMessage, error) {
	_ = ctx
	return s.record(footballapi.ActionCompetitions)
}

func (s *StubSource) Standings(ctx context.Context, compID string) (json.RawMessage, error) {
	_ = ctx
	return s.record(footballapi.ActionStandings, compID)
}

func (s *StubSource) Today(ctx context.Context, compID string) (json.RawMessage, error) {
	_ = ctx
	return s.record(footballapi.ActionToday, compID)
}

func (s *StubSource) FixturesByDay(ctx context.Context, compID, matchDate string) (json.RawMessage, error) {
	_ = ctx
	return s.record(footballapi.ActionFixtures, compID, matchDate)
}

func (s *StubSource) FixturesByPeriod(ctx context.Context, compID, fromDate, toDate string) (json.RawMessage, error) {
	_ = ctx
	return s.record(footballapi.ActionFixtures, compID, fromDate, toDate)
}

func (s *StubSource) Commentary(ctx context.Context, matchID string) (footballapi.Envelope, error) {
	_ = ctx
	s.Calls = append(s.Calls, SourceCall{Action: footballapi.ActionCommentaries, Args: []string{matchID}})
	if s.Err != nil {
		return nil, s.Err
	}
	return s.Envelope, nil
}

// LastCall returns the most recent call, or the zero value.
func (s *StubSource) LastCall() SourceCall {
	if len(s.Calls) == 0 {
		return SourceCall{}
	}
	return s.Calls[len(s.Calls)-1]
}
