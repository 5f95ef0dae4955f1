package source

import (
	"context"
	"fmt"
	"os"

	"github.com/notaneet/ttmerge/model"
)

// FileSource reads a timetable from the local filesystem.
type FileSource struct{}

func (FileSource) Load(ctx context.Context, location string) (*model.Timetable, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	format, err := FormatOf(location)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", location, err)
	}

	data, err := os.ReadFile(location)
	if err != nil {
		return nil, fmt.Errorf("failed to read timetable: %w", err)
	}

	t, err := Decode(data, format)
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", location, err)
	}
	return t, nil
}
