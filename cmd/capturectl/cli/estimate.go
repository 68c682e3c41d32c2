package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/rapidaai/capture/pkg/audio"
)

func NewEstimateCmd() *cobra.Command {
	var (
		formatName  string
		qualityName string
		duration    time.Duration
	)

	cmd := &cobra.Command{
		Use:   "estimate",
		Short: "Estimate the file size of a recording",
		RunE: func(cmd *cobra.Command, args []string) error {
			format, err := audio.ParseFormat(formatName)
			if err != nil {
				return err
			}
			quality, err := audio.ParseQuality(qualityName)
			if err != nil {
				return err
			}
			sizeMB, err := audio.EstimateFileSize(format, quality, duration)
			if err != nil {
				return err
			}
			fmt.Printf("%s at %s quality for %s: %.2f MB\n", format, quality, duration, sizeMB)
			return nil
		},
	}

	cmd.Flags().StringVar(&formatName, "format", "aac", "recording format")
	cmd.Flags().StringVar(&qualityName, "quality", "medium", "quality tier (low, medium, high, ultra)")
	cmd.Flags().DurationVar(&duration, "duration", 30*time.Minute, "expected recording duration")
	return cmd
}
