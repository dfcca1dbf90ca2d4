package cmd

import (
	"strconv"

	"github.com/isometry/delay-responder/internal/config"
	"github.com/isometry/delay-responder/internal/responder"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
)

func cmdVariants() *cobra.Command {
	return &cobra.Command{
		Use:   "variants",
		Short: "List the available delay variants",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			table := tablewriter.NewWriter(cmd.OutOrStdout())
			table.SetHeader([]string{"Variant", "Delay", "Prints payload", "Selected"})
			for _, v := range responder.Variants() {
				selected := ""
				if v.Name == config.Global.Variant {
					selected = "*"
				}
				table.Append([]string{v.Name, v.Delay.String(), strconv.FormatBool(v.InspectBody), selected})
			}
			table.Render()
		},
	}
}
