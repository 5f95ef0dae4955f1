package converter

import "github.com/notaneet/ttmerge/model"

// IConverter writes a timetable to out: a file path, or a DSN for SQL targets.
type IConverter interface {
	Write(t *model.Timetable, out string) error
}
