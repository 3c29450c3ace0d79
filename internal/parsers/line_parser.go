package parsers

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"access-analytics/internal/models"
	"access-analytics/internal/shared/validators"

	"github.com/sourcegraph/conc/iter"
)

// combinedLogPattern matches the Combined Log Format:
//
//	IP - - [timestamp] "METHOD PATH PROTOCOL" STATUS BYTES "REFERER" "USER_AGENT"
//
// The trailing referer and user agent pair may be omitted (Common Log Format); any other
// token count is a mismatch.
var combinedLogPattern = regexp.MustCompile(
	`^(\S+) \S+ \S+ \[([^\]]+)\] "(\S+) (\S+) (\S+)" (\d+) (\d+)(?: "([^"]*)" "([^"]*)")?$`,
)

const (
	groupIP = iota + 1
	groupTimestamp
	groupMethod
	groupPath
	groupProtocol
	groupStatus
	groupBytes
	groupReferer
	groupUserAgent
)

// ParseResult is the outcome of parsing one line; exactly one of Entry and Err is set.
type ParseResult struct {
	Entry *models.LogEntry
	Err   error
}

//go:generate mockgen -source=line_parser.go -destination=./mocks/line_parser_mock.go -package=mocks
type LineParser interface {
	// Parse converts one raw line into a LogEntry. It never panics on bad input; failures
	// wrap ErrEmptyLine, ErrGrammarMismatch or ErrInvalidEntry.
	Parse(line string) (*models.LogEntry, error)
	// ParseLines parses lines concurrently; result i always belongs to lines[i].
	ParseLines(lines []string) []ParseResult
}

type combinedLogParser struct {
	workers int
}

// NewCombinedLogParser returns a stateless parser that uses up to workers goroutines in ParseLines.
func NewCombinedLogParser(workers int) LineParser {
	if workers < 1 {
		workers = 1
	}
	return &combinedLogParser{workers: workers}
}

func (p *combinedLogParser) Parse(line string) (*models.LogEntry, error) {
	line = strings.TrimSpace(line)
	if line == "" {
		return nil, ErrEmptyLine
	}

	match := combinedLogPattern.FindStringSubmatch(line)
	if match == nil {
		return nil, ErrGrammarMismatch
	}

	statusCode, err := strconv.Atoi(match[groupStatus])
	if err != nil {
		return nil, fmt.Errorf("%w: status %q: %w", ErrInvalidEntry, match[groupStatus], err)
	}
	bytesSent, err := strconv.ParseInt(match[groupBytes], 10, 64)
	if err != nil {
		return nil, fmt.Errorf("%w: bytes %q: %w", ErrInvalidEntry, match[groupBytes], err)
	}

	entry := &models.LogEntry{
		IPAddress:  match[groupIP],
		Timestamp:  match[groupTimestamp],
		Method:     match[groupMethod],
		Path:       match[groupPath],
		StatusCode: statusCode,
		BytesSent:  bytesSent,
		Referer:    match[groupReferer],
		UserAgent:  match[groupUserAgent],
	}
	if err := validators.Struct(entry); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidEntry, err)
	}

	return entry, nil
}

func (p *combinedLogParser) ParseLines(lines []string) []ParseResult {
	mapper := iter.Mapper[string, ParseResult]{MaxGoroutines: p.workers}
	return mapper.Map(lines, func(line *string) ParseResult {
		entry, err := p.Parse(*line)
		return ParseResult{Entry: entry, Err: err}
	})
}
