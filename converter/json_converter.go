package converter

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"

	"github.com/notaneet/ttmerge/model"
)

type JSONConverter struct {
	Pretty bool
}

func (j JSONConverter) Write(t *model.Timetable, out string) error {
	if out == "" {
		return fmt.Errorf("output can not be empty")
	}

	if t == nil {
		t = model.New()
	}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if j.Pretty {
		enc.SetIndent("", "  ")
	}
	if err := enc.Encode(t); err != nil {
		return err
	}
	ret := bytes.TrimSuffix(buf.Bytes(), []byte("\n"))

	return os.WriteFile(out, ret, 0644)
}
