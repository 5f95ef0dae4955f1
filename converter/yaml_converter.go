package converter

import (
	"bytes"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/notaneet/ttmerge/model"
)

type YAMLConverter struct{}

func (YAMLConverter) Write(t *model.Timetable, out string) error {
	if out == "" {
		return fmt.Errorf("output can not be empty")
	}

	if t == nil {
		t = model.New()
	}

	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(t); err != nil {
		return err
	}
	if err := enc.Close(); err != nil {
		return err
	}

	return os.WriteFile(out, buf.Bytes(), 0644)
}
