package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/golangsnmp/snmpbind"
)

func (c *cli) modulesCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "modules",
		Short: "List the modules of the built-in MIB view",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			m := snmpbind.GetView(c.cache).Mib()
			var out []ModuleJSON
			for _, mod := range m.Modules() {
				out = append(out, ModuleJSON{
					Name:          mod.Name(),
					Language:      mod.Language().String(),
					OID:           mod.OID().String(),
					Objects:       len(mod.Objects()),
					Types:         len(mod.Types()),
					Notifications: len(mod.Notifications()),
				})
			}
			if c.format != formatText {
				return encode(cmd.OutOrStdout(), c.format, out)
			}
			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "MODULE\tOBJECTS\tTYPES\tNOTIFICATIONS")
			for _, mod := range out {
				fmt.Fprintf(tw, "%s\t%d\t%d\t%d\n", mod.Name, mod.Objects, mod.Types, mod.Notifications)
			}
			return tw.Flush()
		},
	}
}
