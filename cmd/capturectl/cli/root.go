package cli

import (
	"github.com/spf13/cobra"
)

const version = "0.0.1"

func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "capturectl",
		Short: "Plan recording formats, qualities and file sizes",
		Long:  "A developer CLI for the capture selection engine: inspect the format catalog, estimate file sizes, and build full recording configurations.",
	}

	rootCmd.Version = version
	rootCmd.SetVersionTemplate("capturectl " + version + "\n")

	rootCmd.AddCommand(NewFormatsCmd())
	rootCmd.AddCommand(NewEstimateCmd())
	rootCmd.AddCommand(NewPlanCmd())
	rootCmd.AddCommand(NewDoctorCmd())

	return rootCmd
}
