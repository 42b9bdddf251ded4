package cmd

import (
	"github.com/jsphweid/midirect/file"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(fileCmd)
}

var fileCmd = &cobra.Command{
	Use:   "file <pathMIDI> <pathCSV>",
	Short: "MIDI file -> CSV file",
	Long:  `Converts a single MIDI file into a CSV file.`,
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		return file.Convert(withLogger(cmd.Context()), args[0], args[1], rectOptions(cfg))
	},
}
