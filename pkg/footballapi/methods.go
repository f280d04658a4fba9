package footballapi

import (
	"context"
	"encoding/json"
	"fmt"
)

// Competitions lists the competitions the current subscription covers.
func (c *Client) Competitions(ctx context.Context) (json.RawMessage, error) {
	return c.fetchField(ctx, ActionCompetitions, nil, FieldCompetition)
}

// Standings returns the league table for compID.
func (c *Client) Standings(ctx context.Context, compID string) (json.RawMessage, error) {
	params, err := required(ActionStandings, Param{ParamCompID, compID})
	if err != nil {
		return nil, err
	}
	return c.fetchField(ctx, ActionStandings, params, FieldTeams)
}

// Today returns today's matches for compID, including live ones and their events.
func (c *Client) Today(ctx context.Context, compID string) (json.RawMessage, error) {
	params, err := required(ActionToday, Param{ParamCompID, compID})
	if err != nil {
		return nil, err
	}
	return c.fetchField(ctx, ActionToday, params, FieldMatches)
}

// FixturesByDay returns the fixtures of compID on matchDate (dd.mm.yyyy, passed verbatim).
func (c *Client) FixturesByDay(ctx context.Context, compID, matchDate string) (json.RawMessage, error) {
	params, err := required(ActionFixtures,
		Param{ParamCompID, compID},
		Param{ParamMatchDate, matchDate},
	)
	if err != nil {
		return nil, err
	}
	return c.fetchField(ctx, ActionFixtures, params, FieldMatches)
}

// FixturesByPeriod returns the fixtures of compID between fromDate and toDate (dd.mm.yyyy).
func (c *Client) FixturesByPeriod(ctx context.Context, compID, fromDate, toDate string) (json.RawMessage, error) {
	params, err := required(ActionFixtures,
		Param{ParamCompID, compID},
		Param{ParamFromDate, fromDate},
		Param{ParamToDate, toDate},
	)
	if err != nil {
		return nil, err
	}
	return c.fetchField(ctx, ActionFixtures, params, FieldMatches)
}

// Commentary returns the whole envelope for matchID's live commentary.
func (c *Client) Commentary(ctx context.Context, matchID string) (Envelope, error) {
	params, err := required(ActionCommentaries, Param{ParamMatchID, matchID})
	if err != nil {
		return nil, err
	}
	return c.Do(ctx, ActionCommentaries, params)
}

func (c *Client) fetchField(ctx context.Context, action string, params Params, field string) (json.RawMessage, error) {
	env, err := c.Do(ctx, action, params)
	if err != nil {
		return nil, err
	}
	raw, ok := env.Field(field)
	if !ok {
		return nil, &Error{Kind: KindUnknownServer, Action: action, Err: fmt.Errorf("response has no %q field", field)}
	}
	return raw, nil
}

// required fails on the first empty value, in the order given.
func required(action string, pairs ...Param) (Params, error) {
	for _, p := range pairs {
		if p.Value == "" {
			return nil, missingParam(action, p.Key)
		}
	}
	return Params(pairs), nil
}
