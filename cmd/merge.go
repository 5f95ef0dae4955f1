package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/notaneet/ttmerge/converter"
	"github.com/notaneet/ttmerge/merger"
	"github.com/notaneet/ttmerge/source"
	"github.com/notaneet/ttmerge/utils"
)

type outputFlags struct {
	output    string
	converter string
	courses   utils.StringEnum
}

func (o *outputFlags) register(cmd *cobra.Command, defaultOutput string) {
	cmd.Flags().StringVarP(&o.output, "output", "o", defaultOutput, "output file, or DSN for sqlite/pgsql")
	cmd.Flags().StringVarP(&o.converter, "format", "f", "", fmt.Sprintf("output format %v", converter.Names))
	cmd.Flags().VarP(&o.courses, "course", "s", "keep only this course (repeatable, ~regex allowed)")
}

func newMergeCmd(a *app) *cobra.Command {
	var o outputFlags
	cmd := &cobra.Command{
		Use:   "merge [timetable...]",
		Short: "Merge timetables into one document",
		Long: `Merge two or more timetables. Classes of a slot present in several inputs
are appended in input order. Without arguments the configured inputs are used.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			inputs := args
			if len(inputs) == 0 {
				inputs = a.cfg.Inputs
			}
			if len(inputs) < 2 {
				return fmt.Errorf("merge needs at least two timetables, got %d", len(inputs))
			}

			timetables, err := source.LoadAll(cmd.Context(), inputs)
			if err != nil {
				return err
			}
			a.log.Debug().Strs("inputs", inputs).Msg("timetables loaded")

			merged := merger.MergeAll(timetables...)
			a.log.Info().Int("days", merged.Len()).Int("courses", len(merged.Courses())).Msg("timetables merged")

			out, err := a.write(cmd, &o, "merge", merged)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Merged timetable saved to %s\n", out)
			return nil
		},
	}
	o.register(cmd, "")
	return cmd
}
