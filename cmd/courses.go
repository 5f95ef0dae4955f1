package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/notaneet/ttmerge/merger"
	"github.com/notaneet/ttmerge/source"
)

func newCoursesCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "courses [timetable...]",
		Short: "List the course identifiers found in timetables",
		RunE: func(cmd *cobra.Command, args []string) error {
			inputs := args
			if len(inputs) == 0 {
				inputs = a.cfg.Inputs
			}

			timetables, err := source.LoadAll(cmd.Context(), inputs)
			if err != nil {
				return err
			}
			for _, id := range merger.MergeAll(timetables...).Courses() {
				fmt.Fprintln(cmd.OutOrStdout(), id)
			}
			return nil
		},
	}
}
