package cli

import (
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/rapidaai/capture/pkg/audio"
)

func NewFormatsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "formats",
		Short: "List supported formats and their size profile",
		RunE: func(cmd *cobra.Command, args []string) error {
			w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "FORMAT\tVBR\tRATIO\tLOW MB/MIN\tMEDIUM MB/MIN\tHIGH MB/MIN\tULTRA MB/MIN")
			for _, format := range audio.SupportedFormats() {
				fmt.Fprintf(w, "%s\t%v\t%.2f", format, format.SupportsVBR(), format.CompressionRatio())
				for _, quality := range audio.Qualities() {
					sizeMB, err := audio.EstimateFileSize(format, quality, time.Minute)
					if err != nil {
						return err
					}
					fmt.Fprintf(w, "\t%.2f", sizeMB)
				}
				fmt.Fprintln(w)
			}
			return w.Flush()
		},
	}
}
