package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/golangsnmp/snmpbind"
	"github.com/golangsnmp/snmpbind/pdu"
	"github.com/golangsnmp/snmpbind/smi"
)

// parseIndex reads an instance index value: decimal numbers become
// integers, anything else stays a string.
func parseIndex(s string) any {
	if n, err := strconv.ParseInt(s, 10, 64); err == nil {
		return n
	}
	return s
}

func (c *cli) notifyCommand() *cobra.Command {
	var (
		index   []string
		set     []string
		add     []string
		showPDU bool
	)
	cmd := &cobra.Command{
		Use:   "notify NOTIFICATION",
		Short: "Expand a notification into its bindings",
		Long: `Expand a notification into its bindings.

The first binding is snmpTrapOID.0, followed by one binding per object of the
notification's OBJECTS clause with --index appended to its name. --set gives
an object's value by MODULE::symbol; --add appends a binding, or replaces the
member binding with the same name.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := smi.ObjectIdentityFromName(args[0])
			if err != nil {
				return err
			}

			var instance []any
			for _, s := range index {
				instance = append(instance, parseIndex(s))
			}
			objects := make(map[string]any, len(set))
			for _, s := range set {
				name, value := parseAssignment(s)
				if value == nil {
					return fmt.Errorf("--set %s: want MODULE::symbol=VALUE", s)
				}
				objects[name] = value
			}
			tmpl := smi.NewNotificationType(id, instance, objects)
			for _, s := range add {
				name, value := parseAssignment(s)
				extra, err := smi.ObjectIdentityFromName(name)
				if err != nil {
					return err
				}
				tmpl = tmpl.AddVarBinds(smi.NewObjectType(extra, value))
			}

			orig := snmpbind.NewNotificationOriginator(c.options()...)
			bindings, err := orig.MakeVarBinds(c.cache, []snmpbind.Binding{snmpbind.Template(tmpl)})
			if err != nil {
				return err
			}
			if showPDU {
				pdus, err := pdu.ToPDUs(bindings)
				if err != nil {
					return err
				}
				return writePDUs(cmd.OutOrStdout(), c.format, pdus)
			}
			return writeBindings(cmd.OutOrStdout(), c.format, bindings)
		},
	}
	cmd.Flags().StringArrayVar(&index, "index", nil, "instance index value appended to each object (repeatable)")
	cmd.Flags().StringArrayVar(&set, "set", nil, "object value as MODULE::symbol=VALUE (repeatable)")
	cmd.Flags().StringArrayVar(&add, "add", nil, "additional binding as NAME=VALUE (repeatable)")
	cmd.Flags().BoolVar(&showPDU, "pdu", false, "print the gosnmp PDUs instead of the bindings")
	return cmd
}
