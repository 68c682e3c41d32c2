package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	config "github.com/rapidaai/capture/api/capture-api/config"
	"github.com/rapidaai/capture/pkg/vault"
)

func check(name string, ok bool, detail string) {
	mark := "✅"
	if !ok {
		mark = "❌"
	}
	fmt.Printf("%s %s: %s\n", mark, name, detail)
}

func NewDoctorCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "doctor",
		Short: "Check configuration and transcription credentials",
		RunE: func(cmd *cobra.Command, args []string) error {
			ok := true

			vConfig, err := config.InitConfig()
			if err != nil {
				check("Config", false, err.Error())
				ok = false
			} else if cfg, err := config.GetApplicationConfig(vConfig); err != nil {
				check("Config", false, err.Error())
				ok = false
			} else {
				check("Config", true, fmt.Sprintf("%s v%s, database driver %s", cfg.Name, cfg.Version, cfg.Database.Driver))
			}

			for _, provider := range []string{"google", "deepgram", "assemblyai", "voxtral"} {
				if _, err := vault.Resolve(provider, nil); err != nil {
					check(provider+" credential", false, "not set. Set CAPTURE_"+strings.ToUpper(provider)+"_API_KEY or configure the settings store")
					ok = false
				} else {
					check(provider+" credential", true, "configured")
				}
			}

			if ok {
				fmt.Println("\n✅ All checks passed.")
			} else {
				fmt.Println("\n⚠️  Some checks failed; transcription providers without credentials stay disabled.")
			}
			return nil
		},
	}
}
