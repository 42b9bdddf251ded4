package cmd

import (
	"strconv"
	"time"

	"github.com/hako/durafmt"
	"github.com/jsphweid/midirect/file"
	"github.com/jsphweid/midirect/util"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(dirCmd)
}

var dirCmd = &cobra.Command{
	Use:   "dir <path> [max]",
	Short: "MIDI directory -> CSV files",
	Long:  `Converts every MIDI file below a directory, writing each CSV beside its MIDI file.`,
	Args:  cobra.RangeArgs(1, 2),
	RunE: func(cmd *cobra.Command, args []string) error {
		var maxNum int
		if len(args) == 2 {
			arg1, err := strconv.Atoi(args[1])
			if err != nil {
				return errors.Wrapf(err, "max %q", args[1])
			}
			maxNum = arg1
		}
		return convertDir(cmd, args[0], maxNum)
	},
}

func convertDir(cmd *cobra.Command, path string, maxNum int) error {
	ctx := withLogger(cmd.Context())
	paths, err := util.GatherAllMidiPaths(path, maxNum)
	if err != nil {
		return err
	}
	start := time.Now()
	for i, src := range paths {
		if err := ctx.Err(); err != nil {
			return err
		}
		logger.Info("processing", "file", i+1, "of", len(paths), "src", src)
		if err := file.Convert(ctx, src, file.CsvPath(src), rectOptions(cfg)); err != nil {
			return err
		}
	}
	logger.Info("processed directory", "files", len(paths), "elapsed", durafmt.Parse(time.Since(start)).LimitFirstN(2).String())
	return nil
}
