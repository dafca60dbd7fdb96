package userclient

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"qa-platform/internal/question"
)

const (
	defaultServer      = "http://127.0.0.1:3000"
	defaultPageSize    = 20
	defaultRandomCount = 10
	defaultHTTPTimeout = 5 * time.Second
)

type Config struct {
	// ServerURL is the API base URL used when DataURL is empty.
	ServerURL string
	// DataURL switches the client to mirror mode: the raw source document is
	// loaded from this URL or file path and queried locally.
	DataURL     string
	PageSize    int
	HTTPTimeout time.Duration
}

// session keeps what is currently on screen so a failed command never
// replaces it.
type session struct {
	source    Source
	out       io.Writer
	pageSize  int
	describe  string
	displayed []question.Record
	all       []question.Record
}

func Run(ctx context.Context, in io.Reader, out io.Writer, cfg Config) error {
	pageSize := cfg.PageSize
	if pageSize <= 0 {
		pageSize = defaultPageSize
	}
	timeout := cfg.HTTPTimeout
	if timeout <= 0 {
		timeout = defaultHTTPTimeout
	}
	httpClient := &http.Client{Timeout: timeout}

	var (
		source   Source
		describe string
	)
	if dataURL := strings.TrimSpace(cfg.DataURL); dataURL != "" {
		mirror, err := NewMirror(ctx, dataURL, httpClient)
		if err != nil {
			return err
		}
		source = mirror
		describe = "mirror of " + dataURL
	} else {
		serverURL := strings.TrimSpace(cfg.ServerURL)
		if serverURL == "" {
			serverURL = defaultServer
		}
		source = NewHTTPClient(serverURL, httpClient)
		describe = serverURL
	}

	return RunWithSource(ctx, in, out, source, describe, pageSize)
}

// RunWithSource drives the interactive loop against an already built source.
func RunWithSource(ctx context.Context, in io.Reader, out io.Writer, source Source, describe string, pageSize int) error {
	if pageSize <= 0 {
		pageSize = defaultPageSize
	}
	s := &session{
		source:   source,
		out:      out,
		pageSize: pageSize,
		describe: describe,
	}
	reader := bufio.NewReader(in)

	fmt.Fprintf(out, "qa-cli\nsource=%s\n\n", describe)
	printHelp(out)

	if err := s.loadAll(ctx); err != nil {
		s.notify(err)
	} else {
		s.show(s.all)
	}

	for {
		fmt.Fprint(out, "\n> ")
		line, err := reader.ReadString('\n')
		if err != nil && !errors.Is(err, io.EOF) {
			return err
		}
		eof := err != nil

		line = strings.TrimSpace(line)
		if line == "" {
			if eof {
				fmt.Fprintln(out)
				return nil
			}
			continue
		}

		command, rest := splitCommand(line)
		if command == "exit" || command == "quit" {
			return nil
		}
		if err := s.dispatch(ctx, command, rest); err != nil {
			s.notify(err)
		}
		if eof {
			return nil
		}
	}
}

func (s *session) dispatch(ctx context.Context, command, rest string) error {
	switch command {
	case "help":
		printHelp(s.out)
	case "all", "reset":
		if err := s.loadAll(ctx); err != nil {
			return err
		}
		s.show(s.all)
	case "list":
		s.show(s.displayed)
	case "show":
		id, err := parseID(rest)
		if err != nil {
			return err
		}
		record, err := s.source.Question(ctx, id)
		if err != nil {
			return err
		}
		printRecord(s.out, record)
	case "search":
		if rest == "" {
			return errors.New("please enter a search term")
		}
		results, err := s.source.Search(ctx, rest)
		if err != nil {
			return err
		}
		s.show(results)
	case "category":
		if rest == "" {
			return errors.New("usage: category <name>")
		}
		return s.filter(ctx, question.Criteria{Category: rest})
	case "difficulty":
		if rest == "" {
			return errors.New("usage: difficulty <level>")
		}
		return s.filter(ctx, question.Criteria{Difficulty: rest})
	case "filter":
		criteria, err := parseFilterArgs(rest)
		if err != nil {
			return err
		}
		return s.filter(ctx, criteria)
	case "random":
		count, err := parseCount(rest, defaultRandomCount)
		if err != nil {
			return err
		}
		results, err := s.source.Random(ctx, count)
		if err != nil {
			return err
		}
		s.show(results)
	case "categories":
		categories, err := s.source.Categories(ctx)
		if err != nil {
			return err
		}
		printValues(s.out, "Categories", categories)
	case "difficulties":
		difficulties, err := s.source.Difficulties(ctx)
		if err != nil {
			return err
		}
		printValues(s.out, "Difficulties", difficulties)
	case "stats":
		stats, err := s.source.Stats(ctx)
		if err != nil {
			return err
		}
		printStats(s.out, stats)
	default:
		fmt.Fprintln(s.out, "unknown command. type 'help' for usage.")
	}
	return nil
}

func (s *session) loadAll(ctx context.Context) error {
	if s.all != nil {
		return nil
	}
	records, err := s.source.Questions(ctx)
	if err != nil {
		return err
	}
	s.all = records
	return nil
}

func (s *session) filter(ctx context.Context, criteria question.Criteria) error {
	results, err := s.source.Filter(ctx, criteria)
	if err != nil {
		return err
	}
	s.show(results)
	return nil
}

func (s *session) show(records []question.Record) {
	s.displayed = records
	printRecords(s.out, records, s.pageSize)
}

// notify prints a one-line notice; the displayed list is left as it was.
func (s *session) notify(err error) {
	fmt.Fprintf(s.out, "! %s\n", describeClientError(err, s.describe))
}
