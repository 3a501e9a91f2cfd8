package cmd

import (
	"github.com/spf13/cobra"
	"github.com/spf13/cobra/doc"
)

func newManCmd(rootCmd *cobra.Command) *cobra.Command {
	// https://unix.stackexchange.com/questions/3586/what-do-the-numbers-in-a-man-page-mean
	header := &doc.GenManHeader{
		Title:   "AUDIOCONV",
		Section: "1",
		Source:  "audioconv " + rootCmd.Version,
	}
	return &cobra.Command{
		Use:                   "man DIR",
		Short:                 "Generate man pages",
		SilenceUsage:          true,
		Hidden:                true,
		DisableFlagsInUseLine: true,
		Example:               "audioconv man . && cat audioconv.1",
		Args:                  cobra.ExactArgs(1),
		ValidArgsFunction:     cobra.NoFileCompletions,
		RunE: func(_ *cobra.Command, args []string) error {
			return doc.GenManTree(rootCmd, header, args[0])
		},
	}
}
