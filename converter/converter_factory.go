package converter

import (
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/notaneet/ttmerge/config"
)

var ErrUnknownConverter = errors.New("unknown converter")

// Names lists the converters accepted by Converter.
var Names = []string{"json", "pjson", "yaml", "xlsx", "ics", "sqlite", "pgsql"}

// Options carries settings some converters need.
type Options struct {
	ICS config.ICSConfig
	Log zerolog.Logger
	// Now is used for the ICS week start; nil means time.Now.
	Now func() time.Time
}

func Converter(converter string, opts Options) (IConverter, error) {
	switch converter {
	case "json":
		return JSONConverter{}, nil
	case "pjson":
		return JSONConverter{Pretty: true}, nil
	case "yaml":
		return YAMLConverter{}, nil
	case "xlsx":
		return XLSXConverter{}, nil
	case "ics":
		return ICSConverter{Config: opts.ICS, Log: opts.Log, Now: opts.Now}, nil
	case "sqlite":
		return SQLConverter{Driver: "sqlite"}, nil
	case "pgsql":
		return SQLConverter{Driver: "postgres"}, nil
	default:
		return nil, fmt.Errorf("%w %q, expected one of %v", ErrUnknownConverter, converter, Names)
	}
}
