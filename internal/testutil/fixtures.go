package testutil

import (
	"encoding/json"
	"fmt"
)

// Sample payloads shaped like Football-API responses.
const (
	SampleCompetitions = `[{"id":"1204","name":"Premier League","region":"England"}]`
	SampleTeams        = `[{"stand_team_id":"9092","stand_team_name":"Chelsea","stand_position":"1"}]`
	SampleMatches      = `[{"match_id":"1941","match_comp_id":"1204","match_formatted_date":"10.02.2015","match_status":"FT"}]`
	SampleCommentary   = `[{"comm_match_id":"1941","comm_commentaries":{"comment":[]}}]`
)

// OKEnvelope renders a successful response body carrying raw under field.
func OKEnvelope(field, raw string) string {
	return fmt.Sprintf(`{"ERROR":"OK",%q:%s}`, field, raw)
}

// ErrorEnvelope renders a response body whose ERROR field carries phrase.
func ErrorEnvelope(phrase string) string {
	b, _ := json.Marshal(map[string]string{"ERROR": phrase})
	return string(b)
}
