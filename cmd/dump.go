package cmd

import (
	"github.com/jsphweid/midirect/midi"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(dumpCmd)
}

var dumpCmd = &cobra.Command{
	Use:   "dump <pathMIDI>",
	Short: "Dump a MIDI file",
	Long:  `Prints the decoded events of every track, with absolute and delta ticks.`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := midi.ReadMidiFile(args[0])
		if err != nil {
			return err
		}
		song, err := midi.Decode(s)
		if err != nil {
			return err
		}
		midi.Dump(cmd.OutOrStdout(), song)
		return nil
	},
}
