package cmd

import (
	"fmt"
	"text/tabwriter"

	"github.com/BrandonKowalski/battleground/pkg/battleground/locale"
	"github.com/BrandonKowalski/battleground/pkg/battleground/theme"
	"github.com/spf13/cobra"
)

var themesCmd = &cobra.Command{
	Use:   "themes",
	Short: "List the available themes in selector order",
	RunE: func(cmd *cobra.Command, args []string) error {
		reg, err := theme.Default()
		if err != nil {
			return err
		}
		loc, err := locale.New(lang)
		if err != nil {
			return err
		}

		w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "#\tKEY\tTITLE\tSUBTITLE")
		for i, key := range reg.Keys() {
			def, _ := reg.Get(key)
			title, subtitle := loc.Caption(def)
			fmt.Fprintf(w, "%d\t%s\t%s\t%s\n", i+1, key, title, subtitle)
		}
		return w.Flush()
	},
}
