package footballapi

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
)

// transport performs a single GET and hands back the raw status and body.
type transport interface {
	get(ctx context.Context, rawURL string) (int, []byte, error)
}

type restyTransport struct {
	client *resty.Client
}

func newRestyTransport(httpClient *http.Client, timeout time.Duration, logger *slog.Logger) *restyTransport {
	hc := resolveHTTPClient(httpClient, timeout)
	rc := resty.NewWithClient(hc)
	rc.SetHeader("Accept", "application/json")
	if logger != nil {
		rc.SetLogger(restyLogger{logger: logger})
	}
	return &restyTransport{client: rc}
}

func (t *restyTransport) get(ctx context.Context, rawURL string) (int, []byte, error) {
	resp, err := t.client.R().SetContext(ctx).Get(rawURL)
	if err != nil {
		return 0, nil, err
	}
	return resp.StatusCode(), resp.Body(), nil
}

// resolveHTTPClient copies the caller's client so a timeout override never mutates it.
func resolveHTTPClient(client *http.Client, timeout time.Duration) *http.Client {
	if client == nil {
		if timeout <= 0 {
			timeout = defaultHTTPTimeout
		}
		return &http.Client{Timeout: timeout}
	}
	hc := *client
	if timeout > 0 {
		hc.Timeout = timeout
	}
	return &hc
}

func normalizeBaseURL(raw string) string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		raw = defaultBaseURL
	}
	return strings.TrimRight(raw, "?&")
}

// restyLogger routes resty's internal messages into slog.
type restyLogger struct {
	logger *slog.Logger
}

func (l restyLogger) Errorf(format string, v ...interface{}) {
	l.logger.Error(strings.TrimSpace(fmt.Sprintf(format, v...)), slog.String("component", "resty"))
}

func (l restyLogger) Warnf(format string, v ...interface{}) {
	l.logger.Warn(strings.TrimSpace(fmt.Sprintf(format, v...)), slog.String("component", "resty"))
}

func (l restyLogger) Debugf(format string, v ...interface{}) {
	l.logger.Debug(strings.TrimSpace(fmt.Sprintf(format, v...)), slog.String("component", "resty"))
}

// redactError strips the API key from any URL carried by a transport error.
func redactError(err error, apiKey string) error {
	if err == nil || apiKey == "" {
		return err
	}
	var urlErr *url.Error
	if errors.As(err, &urlErr) {
		return &url.Error{Op: urlErr.Op, URL: redactURL(urlErr.URL, apiKey), Err: urlErr.Err}
	}
	if msg := err.Error(); strings.Contains(msg, apiKey) {
		return redactedError{msg: strings.ReplaceAll(msg, apiKey, redactedValue), err: err}
	}
	return err
}

func redactURL(raw, apiKey string) string {
	u, err := url.Parse(raw)
	if err != nil || u.RawQuery == "" {
		return strings.ReplaceAll(raw, url.QueryEscape(apiKey), redactedValue)
	}
	parts := strings.Split(u.RawQuery, "&")
	for i, part := range parts {
		if strings.HasPrefix(part, ParamAPIKey+"=") {
			parts[i] = ParamAPIKey + "=" + redactedValue
		}
	}
	u.RawQuery = strings.Join(parts, "&")
	return u.String()
}

type redactedError struct {
	msg string
	err error
}

func (e redactedError) Error() string { return e.msg }
func (e redactedError) Unwrap() error { return e.err }

func bodySnippet(body []byte) string {
	if len(body) > maxErrorBodyBytes {
		body = body[:maxErrorBodyBytes]
	}
	return strings.TrimSpace(string(body))
}
