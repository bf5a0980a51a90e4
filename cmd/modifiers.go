package cmd

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/pders01/timeshift/internal/models"
	"github.com/pders01/timeshift/internal/timemod"
)

var (
	modifiersJSON bool
	modifiersToon bool
)

var modifiersCmd = &cobra.Command{
	Use:   "modifiers",
	Short: "List available modifiers and the unit each steps by",
	Args:  cobra.NoArgs,
	RunE:  runModifiers,
}

func init() {
	rootCmd.AddCommand(modifiersCmd)

	modifiersCmd.Flags().BoolVar(&modifiersJSON, "json", false, "Output as JSON")
	modifiersCmd.Flags().BoolVar(&modifiersToon, "toon", false, "Output in LLM-friendly toon format")
}

func runModifiers(cmd *cobra.Command, args []string) error {
	format, err := outputFormat(modifiersJSON, modifiersToon)
	if err != nil {
		return err
	}

	var infos []models.ModifierInfo
	for _, m := range timemod.Modifiers() {
		infos = append(infos, models.ModifierInfo{Name: m.String(), Unit: m.Unit().String()})
	}

	return render(cmd, format, infos, func(w io.Writer) {
		for _, info := range infos {
			fmt.Fprintf(w, "  %-16s %s\n", info.Name, info.Unit)
		}
	})
}
