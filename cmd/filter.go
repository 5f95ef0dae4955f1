package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/notaneet/ttmerge/config"
	"github.com/notaneet/ttmerge/converter"
	"github.com/notaneet/ttmerge/model"
	"github.com/notaneet/ttmerge/source"
)

func newFilterCmd(a *app) *cobra.Command {
	var o outputFlags
	cmd := &cobra.Command{
		Use:   "filter <timetable>",
		Short: "Keep only selected courses of a timetable",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(o.courses) == 0 && len(a.cfg.Courses) == 0 {
				return fmt.Errorf("filter needs at least one --course")
			}

			t, err := source.NewSource(args[0]).Load(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			out, err := a.write(cmd, &o, "filter", t)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Filtered timetable saved to %s\n", out)
			return nil
		},
	}
	o.register(cmd, "filtered.json")
	return cmd
}

// write applies the course selection and writes t with the chosen converter.
// Flags win over the config file.
func (a *app) write(cmd *cobra.Command, o *outputFlags, component string, t *model.Timetable) (string, error) {
	courses := []string(o.courses)
	if len(courses) == 0 {
		courses = a.cfg.Courses
	}
	m, err := config.NewMatcher(courses)
	if err != nil {
		return "", err
	}
	if !m.Empty() {
		t = t.Filter(m.MatchClass)
	}

	out := o.output
	if out == "" {
		out = a.cfg.Output
	}
	name := o.converter
	if name == "" {
		name = a.cfg.Converter
	}

	conv, err := converter.Converter(name, converter.Options{ICS: a.cfg.ICS, Log: a.log.With().Str("converter", name).Logger()})
	if err != nil {
		return "", err
	}
	if err := conv.Write(t, out); err != nil {
		return "", fmt.Errorf("%s: failed to write %s: %w", component, out, err)
	}
	a.log.Debug().Str("output", out).Str("converter", name).Msg("timetable written")
	return out, nil
}
