package footballapi

import "time"

const (
	defaultBaseURL     = "http://football-api.com/api/"
	defaultHTTPTimeout = 10 * time.Second
	maxErrorBodyBytes  = 512
	redactedValue      = "REDACTED"
)

// Actions understood by the Football-API.
const (
	ActionCompetitions = "competitions"
	ActionStandings    = "standings"
	ActionToday        = "today"
	ActionFixtures     = "fixtures"
	ActionCommentaries = "commentaries"
)

// Query parameter names. Action and APIKey always lead the query string.
const (
	ParamAction    = "Action"
	ParamAPIKey    = "APIKey"
	ParamCompID    = "comp_id"
	ParamMatchID   = "match_id"
	ParamMatchDate = "match_date"
	ParamFromDate  = "from_date"
	ParamToDate    = "to_date"
)

// Envelope field names.
const (
	FieldError       = "ERROR"
	FieldCompetition = "Competition"
	FieldTeams       = "teams"
	FieldMatches     = "matches"

	statusOK = "OK"
)
