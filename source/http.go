package source

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/gocolly/colly"

	"github.com/notaneet/ttmerge/model"
)

const defaultTimeout = 30 * time.Second

// HTTPSource fetches a timetable document with a colly collector.
type HTTPSource struct {
	UserAgent string
	Timeout   time.Duration
}

func (s HTTPSource) Load(ctx context.Context, location string) (*model.Timetable, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	c := colly.NewCollector()
	if s.UserAgent != "" {
		c.UserAgent = s.UserAgent
	}
	timeout := s.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	if deadline, ok := ctx.Deadline(); ok && time.Until(deadline) < timeout {
		timeout = time.Until(deadline)
	}
	c.SetRequestTimeout(timeout)

	var (
		body        []byte
		contentType string
		fetchErr    error
	)
	c.OnResponse(func(r *colly.Response) {
		body = r.Body
		contentType = r.Headers.Get("Content-Type")
	})
	c.OnError(func(r *colly.Response, err error) {
		fetchErr = err
	})

	if err := c.Visit(location); err != nil {
		return nil, fmt.Errorf("failed to fetch %s: %w", location, err)
	}
	c.Wait()
	if fetchErr != nil {
		return nil, fmt.Errorf("failed to fetch %s: %w", location, fetchErr)
	}

	format, err := responseFormat(location, contentType)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", location, err)
	}

	t, err := Decode(body, format)
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", location, err)
	}
	return t, nil
}

// responseFormat trusts the Content-Type header before the URL extension.
func responseFormat(location, contentType string) (Format, error) {
	switch ct := strings.ToLower(contentType); {
	case strings.Contains(ct, "yaml"):
		return FormatYAML, nil
	case strings.Contains(ct, "json"):
		return FormatJSON, nil
	default:
		return FormatOf(location)
	}
}
