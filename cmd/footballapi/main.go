package main

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/lithammer/fuzzysearch/fuzzy"
	"gopkg.in/yaml.v3"

	"github.com/preston-bernstein/football-api/internal/config"
	"github.com/preston-bernstein/football-api/internal/logging"
	"github.com/preston-bernstein/football-api/internal/server"
	"github.com/preston-bernstein/football-api/internal/timeutil"
	"github.com/preston-bernstein/football-api/pkg/footballapi"
)

const (
	appName    = "football-api"
	appVersion = "dev"
)

const usage = "usage: footballapi [flags] <competitions|standings|today|fixtures|commentary|serve>"

var errFixturesDates = errors.New("fixtures needs -date, or -from and -to")

var commands = []string{"competitions", "standings", "today", "fixtures", "commentary", "serve"}

// maxSuggestDistance bounds the edit distance of a "did you mean" suggestion.
const maxSuggestDistance = 2

type cliFlags struct {
	comp   string
	date   string
	from   string
	to     string
	match  string
	output string
}

func (f *cliFlags) resolveDates(now time.Time) {
	f.date = timeutil.ResolveMatchDate(f.date, now)
	f.from = timeutil.ResolveMatchDate(f.from, now)
	f.to = timeutil.ResolveMatchDate(f.to, now)
}

func main() {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		fmt.Fprintln(os.Stderr, "load .env:", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := run(ctx, stop, os.Args[1:], os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}

func run(ctx context.Context, stop context.CancelFunc, args []string, stdout, stderr io.Writer) int {
	var f cliFlags
	flags := flag.NewFlagSet("footballapi", flag.ContinueOnError)
	flags.SetOutput(stderr)
	flags.Usage = func() {
		fmt.Fprintln(stderr, usage)
		flags.PrintDefaults()
	}
	flags.StringVar(&f.comp, "comp", "", "competition id")
	flags.StringVar(&f.date, "date", "", "match date, dd.mm.yyyy or today/yesterday/tomorrow")
	flags.StringVar(&f.from, "from", "", "period start, dd.mm.yyyy or a keyword")
	flags.StringVar(&f.to, "to", "", "period end, dd.mm.yyyy or a keyword")
	flags.StringVar(&f.match, "match", "", "match id")
	flags.StringVar(&f.output, "output", "json", "output format: json or yaml")
	if err := flags.Parse(args); err != nil {
		return 2
	}
	if flags.NArg() != 1 {
		flags.Usage()
		return 2
	}
	if f.output != "json" && f.output != "yaml" {
		fmt.Fprintf(stderr, "unknown output format %q\n", f.output)
		return 2
	}
	f.resolveDates(time.Now())

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(stderr, err)
		return 1
	}
	logger := logging.NewLogger(logging.Config{
		Level:   cfg.Logging.Level,
		Format:  cfg.Logging.Format,
		Service: appName,
		Version: appVersion,
		Output:  stderr,
	})

	command := flags.Arg(0)
	if command == "serve" {
		server.New(cfg, logger).Run(ctx, stop)
		return 0
	}

	client := footballapi.New(cfg.API.Key,
		footballapi.WithBaseURL(cfg.API.BaseURL),
		footballapi.WithTimeout(cfg.API.Timeout),
		footballapi.WithLogger(logger),
	)
	result, err := dispatch(ctx, client, command, f)
	if err != nil {
		kind, _ := footballapi.KindOf(err)
		logger.Error("command failed",
			slog.String("command", command),
			slog.String(logging.FieldErrorKind, kind.String()),
			slog.Any("error", err),
		)
		return 1
	}
	if err := printResult(stdout, f.output, result); err != nil {
		logger.Error("failed to write output", slog.Any("error", err))
		return 1
	}
	return 0
}

func dispatch(ctx context.Context, client *footballapi.Client, command string, f cliFlags) (any, error) {
	switch command {
	case "competitions":
		return client.Competitions(ctx)
	case "standings":
		return client.Standings(ctx, f.comp)
	case "today":
		return client.Today(ctx, f.comp)
	case "fixtures":
		if f.date != "" {
			return client.FixturesByDay(ctx, f.comp, f.date)
		}
		if f.comp != "" && f.from == "" && f.to == "" {
			return nil, &footballapi.Error{
				Kind:   footballapi.KindMissingParameter,
				Action: footballapi.ActionFixtures,
				Param:  footballapi.ParamMatchDate,
				Err:    errFixturesDates,
			}
		}
		return client.FixturesByPeriod(ctx, f.comp, f.from, f.to)
	case "commentary":
		return client.Commentary(ctx, f.match)
	default:
		if s := suggestCommand(command); s != "" {
			return nil, fmt.Errorf("unknown command %q, did you mean %q?", command, s)
		}
		return nil, fmt.Errorf("unknown command %q", command)
	}
}

func suggestCommand(input string) string {
	input = strings.ToLower(input)
	best, bestDistance := "", maxSuggestDistance+1
	for _, c := range commands {
		if d := fuzzy.LevenshteinDistance(input, c); d < bestDistance {
			best, bestDistance = c, d
		}
	}
	return best
}

func printResult(w io.Writer, format string, v any) error {
	if format == "yaml" {
		return printYAML(w, v)
	}
	return printJSON(w, v)
}

// printYAML round-trips through JSON so raw payloads render as plain YAML values.
func printYAML(w io.Writer, v any) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return err
	}
	var doc any
	if err := json.Unmarshal(raw, &doc); err != nil {
		return err
	}
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(doc); err != nil {
		return err
	}
	return enc.Close()
}

func printJSON(w io.Writer, v any) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return err
	}
	var out bytes.Buffer
	if err := json.Indent(&out, raw, "", "  "); err != nil {
		return err
	}
	out.WriteByte('\n')
	_, err = out.WriteTo(w)
	return err
}
