package cmd

import (
	"github.com/jsphweid/midirect/manifest"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(manifestCmd)
}

var manifestCmd = &cobra.Command{
	Use:   "manifest <pathCSV>",
	Short: "CSV manifest -> CSV files",
	Long: `Converts every MIDI file named in the manifest, then adds performer,
composer years and CSV paths to the manifest.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		source, err := composerSource(cfg)
		if err != nil {
			return err
		}
		return manifest.Execute(withLogger(cmd.Context()), args[0], manifest.Options{
			Root:      cfg.AsapRoot,
			Rect:      rectOptions(cfg),
			Composers: source,
		})
	},
}
