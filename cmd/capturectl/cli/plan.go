package cli

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/rapidaai/capture/pkg/audio"
	"github.com/rapidaai/capture/pkg/utils"
)

func NewPlanCmd() *cobra.Command {
	var (
		recordingType     string
		prioritizeQuality bool
		prioritizeSize    bool
		maxFileSizeMB     float64
		duration          time.Duration
	)

	cmd := &cobra.Command{
		Use:   "plan",
		Short: "Build a full recording configuration",
		RunE: func(cmd *cobra.Command, args []string) error {
			req := audio.OptimalConfigurationRequest{
				RecordingType:     recordingType,
				PrioritizeQuality: prioritizeQuality,
				PrioritizeSize:    prioritizeSize,
			}
			if maxFileSizeMB > 0 && duration > 0 {
				req.MaxFileSizeMB = utils.Ptr(maxFileSizeMB)
				req.ExpectedDuration = utils.Ptr(duration)
			}

			cfg := audio.OptimalConfiguration(req)
			out, err := json.MarshalIndent(cfg, "", "  ")
			if err != nil {
				return err
			}
			fmt.Println(string(out))

			if duration > 0 {
				if sizeMB, err := audio.EstimateFileSize(cfg.Format, cfg.Quality, duration); err == nil {
					fmt.Printf("\nestimated size over %s: %.2f MB\n", duration, sizeMB)
				}
			}
			fmt.Println(audio.FormatRecommendation(cfg.Format, cfg.Quality, recordingType))
			return nil
		},
	}

	cmd.Flags().StringVar(&recordingType, "type", "meeting", "recording type (meeting, interview, music, voice, ...)")
	cmd.Flags().BoolVar(&prioritizeQuality, "prioritize-quality", false, "prefer fidelity over size")
	cmd.Flags().BoolVar(&prioritizeSize, "prioritize-size", false, "prefer size over fidelity")
	cmd.Flags().Float64Var(&maxFileSizeMB, "max-size", 0, "file size bound in MB (requires --duration)")
	cmd.Flags().DurationVar(&duration, "duration", 0, "expected recording duration")
	return cmd
}
