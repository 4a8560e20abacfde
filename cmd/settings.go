package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/nikhilmn/fintrack/internal/store"
)

var (
	flagParticles    bool
	flagReduceMotion bool
)

var settingsCmd = &cobra.Command{
	Use:   "settings",
	Short: "Show or change presentation settings",
	RunE:  runSettings,
}

func init() {
	settingsCmd.Flags().BoolVar(&flagParticles, "particles", true, "Enable particle effects")
	settingsCmd.Flags().BoolVar(&flagReduceMotion, "reduce-motion", false, "Reduce motion")
	rootCmd.AddCommand(settingsCmd)
}

func runSettings(cmd *cobra.Command, _ []string) error {
	s, _, err := openStore()
	if err != nil {
		return err
	}
	defer func() { _ = s.Close() }()

	var p store.SettingsPatch
	if cmd.Flags().Changed("particles") {
		p.ParticlesEnabled = &flagParticles
	}
	if cmd.Flags().Changed("reduce-motion") {
		p.ReduceMotion = &flagReduceMotion
	}
	if p.ParticlesEnabled != nil || p.ReduceMotion != nil {
		s.UpdateSettings(p)
	}

	cur := s.Settings()
	fmt.Println()
	fmt.Printf("  particles:      %v\n", cur.ParticlesEnabled)
	fmt.Printf("  reduce-motion:  %v\n", cur.ReduceMotion)
	fmt.Println()
	return nil
}
