// Package source loads timetable documents from files and URLs.
package source

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"path"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/notaneet/ttmerge/model"
)

// ErrUnsupportedFormat is returned for documents that are neither JSON nor YAML.
var ErrUnsupportedFormat = errors.New("unsupported document format")

type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// Source loads one timetable from a location.
type Source interface {
	Load(ctx context.Context, location string) (*model.Timetable, error)
}

// NewSource picks the source for location: HTTP(S) URLs go through colly,
// anything else is a local path.
func NewSource(location string) Source {
	if IsURL(location) {
		return HTTPSource{}
	}
	return FileSource{}
}

// IsURL reports whether location is an http or https URL.
func IsURL(location string) bool {
	u, err := url.Parse(location)
	return err == nil && (u.Scheme == "http" || u.Scheme == "https") && u.Host != ""
}

// FormatOf guesses the format from a file name or URL path. Names without an
// extension are read as JSON.
func FormatOf(name string) (Format, error) {
	ext := filepath.Ext(name)
	if IsURL(name) {
		u, _ := url.Parse(name)
		ext = path.Ext(u.Path)
	}
	switch strings.ToLower(ext) {
	case ".json", "":
		return FormatJSON, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	default:
		return "", fmt.Errorf("%w: %s", ErrUnsupportedFormat, ext)
	}
}

// Decode parses data as a timetable in the given format.
func Decode(data []byte, format Format) (*model.Timetable, error) {
	t := model.New()
	switch format {
	case FormatJSON:
		if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
			return nil, model.ErrNotObject
		}
		if err := json.Unmarshal(data, t); err != nil {
			return nil, err
		}
	case FormatYAML:
		var doc yaml.Node
		if err := yaml.Unmarshal(data, &doc); err != nil {
			return nil, err
		}
		if doc.Kind == 0 {
			return nil, fmt.Errorf("empty document: %w", model.ErrNotObject)
		}
		if err := doc.Decode(t); err != nil {
			return nil, err
		}
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, format)
	}
	return t, nil
}

// LoadAll loads every location in order and stops at the first failure.
func LoadAll(ctx context.Context, locations []string) ([]*model.Timetable, error) {
	out := make([]*model.Timetable, 0, len(locations))
	for _, loc := range locations {
		t, err := NewSource(loc).Load(ctx, loc)
		if err != nil {
			return nil, err
		}
		out = append(out, t)
	}
	return out, nil
}
