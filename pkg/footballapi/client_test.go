package footballapi

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
)

type roundTripperFunc func(req *http.Request) (*http.Response, error)

func (f roundTripperFunc) RoundTrip(req *http.Request) (*http.Response, error) {
	return f(req)
}

func jsonResponse(status int, body string) *http.Response {
	header := make(http.Header)
	header.Set("Content-Type", "application/json")
	return &http.Response{
		StatusCode: status,
		Body:       io.NopCloser(strings.NewReader(body)),
		Header:     header,
	}
}

func respondWith(status int, body string) roundTripperFunc {
	return func(req *http.Request) (*http.Response, error) {
		_ = req
		return jsonResponse(status, body), nil
	}
}

func newTestClient(rt roundTripperFunc, opts ...Option) *Client {
	base := []Option{
		WithBaseURL("http://example.com/api/"),
		WithHTTPClient(&http.Client{Transport: rt}),
	}
	return New("secret", append(base, opts...)...)
}

type recordingObserver struct {
	mu        sync.Mutex
	calls     []string
	errs      []error
	durations []time.Duration
}

func (o *recordingObserver) ObserveCall(action string, duration time.Duration, err error) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.calls = append(o.calls, action)
	o.errs = append(o.errs, err)
	o.durations = append(o.durations, duration)
}

func TestBuildQueryLeadsWithActionAndKey(t *testing.T) {
	c := New("ABC123")
	params := Params{}.Add(ParamCompID, 1204).Add(ParamFromDate, "01.02.2015").Add(ParamToDate, "10.02.2015")

	got := c.buildQuery(ActionFixtures, params)
	want := "Action=fixtures&APIKey=ABC123&comp_id=1204&from_date=01.02.2015&to_date=10.02.2015"
	if got != want {
		t.Fatalf("expected %s, got %s", want, got)
	}

	if got := c.buildQuery(ActionCompetitions, nil); got != "Action=competitions&APIKey=ABC123" {
		t.Fatalf("unexpected query without params: %s", got)
	}
}

func TestBuildQueryEncodesValuesAndKeepsDuplicates(t *testing.T) {
	c := New("key with space")
	params := Params{}.Add("q", "a b&c").Add("q", "second")

	got := c.buildQuery("search", params)
	want := "Action=search&APIKey=key+with+space&q=a+b%26c&q=second"
	if got != want {
		t.Fatalf("expected %s, got %s", want, got)
	}
}

func TestDoSendsOrderedQueryToBaseURL(t *testing.T) {
	var captured *http.Request
	c := newTestClient(func(req *http.Request) (*http.Response, error) {
		captured = req
		return jsonResponse(http.StatusOK, `{"ERROR":"OK","teams":[]}`), nil
	})

	env, err := c.Do(context.Background(), ActionStandings, Params{}.Add(ParamCompID, "1204"))
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if captured == nil {
		t.Fatal("expected a request to be sent")
	}
	if captured.Method != http.MethodGet {
		t.Fatalf("expected GET, got %s", captured.Method)
	}
	if captured.URL.Host != "example.com" || captured.URL.Path != "/api/" {
		t.Fatalf("unexpected request url %s", captured.URL)
	}
	if captured.URL.RawQuery != "Action=standings&APIKey=secret&comp_id=1204" {
		t.Fatalf("unexpected query %s", captured.URL.RawQuery)
	}
	if status, ok := env.Status(); !ok || status != "OK" {
		t.Fatalf("expected OK status, got %q", status)
	}
}

func TestDoRejectsEmptyActionWithoutNetwork(t *testing.T) {
	c := newTestClient(func(req *http.Request) (*http.Response, error) {
		t.Fatalf("unexpected request to %s", req.URL)
		return nil, nil
	})

	_, err := c.Do(context.Background(), "", nil)
	if !errors.Is(err, ErrMissingParameter) {
		t.Fatalf("expected missing parameter error, got %v", err)
	}
	apiErr, _ := AsError(err)
	if apiErr.Param != ParamAction {
		t.Fatalf("expected Action to be named, got %q", apiErr.Param)
	}
}

func TestDoNon2xxIsTransportError(t *testing.T) {
	c := newTestClient(respondWith(http.StatusBadGateway, "boom"))

	_, err := c.Do(context.Background(), ActionCompetitions, nil)
	if !errors.Is(err, ErrTransport) {
		t.Fatalf("expected transport error, got %v", err)
	}
	apiErr, ok := AsError(err)
	if !ok || apiErr.StatusCode != http.StatusBadGateway || apiErr.ServerMessage != "boom" {
		t.Fatalf("unexpected error details %+v", apiErr)
	}
}

func TestDoConnectionFailureRedactsAPIKey(t *testing.T) {
	c := New("k3y-XYZ",
		WithBaseURL("http://example.com/api/"),
		WithHTTPClient(&http.Client{Transport: roundTripperFunc(func(req *http.Request) (*http.Response, error) {
			_ = req
			return nil, errors.New("connection refused")
		})}),
	)

	_, err := c.Do(context.Background(), ActionCompetitions, nil)
	if !errors.Is(err, ErrTransport) {
		t.Fatalf("expected transport error, got %v", err)
	}
	if strings.Contains(err.Error(), "k3y-XYZ") {
		t.Fatalf("api key leaked into error: %v", err)
	}
	if !strings.Contains(err.Error(), "connection refused") {
		t.Fatalf("expected cause to be preserved, got %v", err)
	}
}

func TestDoHonorsContextCancellation(t *testing.T) {
	c := newTestClient(func(req *http.Request) (*http.Response, error) {
		<-req.Context().Done()
		return nil, req.Context().Err()
	})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := c.Do(ctx, ActionCompetitions, nil)
	if !errors.Is(err, ErrTransport) {
		t.Fatalf("expected transport error, got %v", err)
	}
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled in chain, got %v", err)
	}
}

func TestDoDecodeErrors(t *testing.T) {
	for _, body := range []string{"{bad json", "[1,2,3]", "null", `"OK"`} {
		c := newTestClient(respondWith(http.StatusOK, body))
		_, err := c.Do(context.Background(), ActionCompetitions, nil)
		if !errors.Is(err, ErrDecode) {
			t.Fatalf("body %q: expected decode error, got %v", body, err)
		}
	}
}

func TestDoMissingStatusFailsClosed(t *testing.T) {
	c := newTestClient(respondWith(http.StatusOK, `{"Competition":[{"id":"1204"}]}`))

	env, err := c.Do(context.Background(), ActionCompetitions, nil)
	if !errors.Is(err, ErrUnknownServer) {
		t.Fatalf("expected unknown server error, got %v", err)
	}
	if env != nil {
		t.Fatalf("expected no envelope on failure, got %v", env)
	}
}

func TestDoNonStringStatusFailsClosed(t *testing.T) {
	c := newTestClient(respondWith(http.StatusOK, `{"ERROR":0}`))

	_, err := c.Do(context.Background(), ActionCompetitions, nil)
	if !errors.Is(err, ErrUnknownServer) {
		t.Fatalf("expected unknown server error, got %v", err)
	}
}

func TestDoClassifiesServerPhrases(t *testing.T) {
	cases := []struct {
		phrase string
		want   error
	}{
		{"API Key not found", ErrAuth},
		{"That Action cannot be found.  Did you send the 'Action' parameter?  List Actions with Action=DescribeActions", ErrInvalidAction},
		{"That Action cannot be found. Did you send the 'Action' parameter? List Actions with\n   Action=DescribeActions", ErrInvalidAction},
		{"The requested competition is not included in your subscription", ErrSubscription},
		{"Competition cannot be found", ErrInvalidCompetition},
		{"please specify the parameter 'match_date' or the two parameters 'from_date' and 'to_date' to get the matches", ErrMissingDate},
		{"Did not find any match today", ErrMissingDate},
		{"Something new went wrong", ErrUnknownServer},
		{"", ErrUnknownServer},
	}

	for _, tc := range cases {
		body := `{"ERROR":` + quoteJSON(tc.phrase) + `}`
		c := newTestClient(respondWith(http.StatusOK, body))
		_, err := c.Do(context.Background(), ActionStandings, Params{}.Add(ParamCompID, 1))
		if !errors.Is(err, tc.want) {
			t.Fatalf("phrase %q: expected %v, got %v", tc.phrase, tc.want, err)
		}
		apiErr, ok := AsError(err)
		if !ok || apiErr.ServerMessage != tc.phrase || apiErr.Action != ActionStandings {
			t.Fatalf("phrase %q: unexpected error details %+v", tc.phrase, apiErr)
		}
	}
}

func TestObserverSeesEachRoundTripOnly(t *testing.T) {
	obs := &recordingObserver{}
	c := newTestClient(respondWith(http.StatusOK, `{"ERROR":"API Key not found"}`), WithObserver(obs))

	_, _ = c.Competitions(context.Background())
	_, _ = c.Standings(context.Background(), "")

	if len(obs.calls) != 1 || obs.calls[0] != ActionCompetitions {
		t.Fatalf("expected a single observed competitions call, got %v", obs.calls)
	}
	if !errors.Is(obs.errs[0], ErrAuth) {
		t.Fatalf("expected observer to receive the auth error, got %v", obs.errs[0])
	}
}

func TestObserverReceivesRoundTripLatency(t *testing.T) {
	clock := clockwork.NewFakeClock()
	obs := &recordingObserver{}
	c := newTestClient(func(req *http.Request) (*http.Response, error) {
		clock.Advance(250 * time.Millisecond)
		return jsonResponse(http.StatusOK, `{"ERROR":"OK","Competition":[]}`), nil
	}, WithObserver(obs), WithClock(clock))

	if _, err := c.Competitions(context.Background()); err != nil {
		t.Fatalf("unexpected error %v", err)
	}
	if len(obs.durations) != 1 || obs.durations[0] != 250*time.Millisecond {
		t.Fatalf("expected 250ms latency, got %v", obs.durations)
	}
}

func TestAPIKeySentOncePerRequestAcrossCalls(t *testing.T) {
	var queries []string
	c := New("ABC123",
		WithBaseURL("http://example.com/api/"),
		WithHTTPClient(&http.Client{Transport: roundTripperFunc(func(req *http.Request) (*http.Response, error) {
			queries = append(queries, req.URL.RawQuery)
			return jsonResponse(http.StatusOK, `{"ERROR":"OK","Competition":[]}`), nil
		})}),
	)

	for i := 0; i < 3; i++ {
		if _, err := c.Competitions(context.Background()); err != nil {
			t.Fatalf("call %d: unexpected error %v", i, err)
		}
	}

	if len(queries) != 3 {
		t.Fatalf("expected 3 requests, got %d", len(queries))
	}
	for _, raw := range queries {
		if strings.Count(raw, "APIKey=ABC123") != 1 {
			t.Fatalf("expected APIKey exactly once in %s", raw)
		}
		q, err := url.ParseQuery(raw)
		if err != nil {
			t.Fatalf("failed parsing query %s: %v", raw, err)
		}
		if len(q[ParamAPIKey]) != 1 {
			t.Fatalf("expected a single APIKey value, got %v", q[ParamAPIKey])
		}
	}
}

func TestLoggerRecordsCallsWithoutKey(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	c := New("k3y-XYZ",
		WithBaseURL("http://example.com/api/"),
		WithLogger(logger),
		WithHTTPClient(&http.Client{Transport: respondWith(http.StatusOK, `{"ERROR":"Competition cannot be found"}`)}),
	)

	_, _ = c.Standings(context.Background(), "999")

	out := buf.String()
	if !strings.Contains(out, "action=standings") || !strings.Contains(out, "error_kind=invalid_competition") {
		t.Fatalf("expected action and error kind in log, got %s", out)
	}
	if strings.Contains(out, "k3y-XYZ") {
		t.Fatalf("api key leaked into log: %s", out)
	}
}

func TestNewAppliesDefaults(t *testing.T) {
	c := New("key")
	if c.BaseURL() != defaultBaseURL {
		t.Fatalf("expected default base url, got %s", c.BaseURL())
	}
	rt, ok := c.transport.(*restyTransport)
	if !ok {
		t.Fatalf("expected resty transport, got %T", c.transport)
	}
	if got := rt.client.GetClient().Timeout; got != defaultHTTPTimeout {
		t.Fatalf("expected default timeout %s, got %s", defaultHTTPTimeout, got)
	}
}

func TestWithHTTPClientIsNotMutated(t *testing.T) {
	custom := &http.Client{}
	c := New("key", WithHTTPClient(custom), WithTimeout(3*time.Second))

	if custom.Timeout != 0 {
		t.Fatalf("expected caller's client untouched, got timeout %s", custom.Timeout)
	}
	rt := c.transport.(*restyTransport)
	if got := rt.client.GetClient().Timeout; got != 3*time.Second {
		t.Fatalf("expected 3s timeout on copy, got %s", got)
	}
}

func quoteJSON(s string) string {
	b, _ := json.Marshal(s)
	return string(b)
}
