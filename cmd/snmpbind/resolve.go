package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/golangsnmp/snmpbind"
	"github.com/golangsnmp/snmpbind/pdu"
)

// request is the YAML request file read by resolve -f. Each binding is a
// sequence in one of the accepted shapes:
//
//	bindings:
//	  - [SNMPv2-MIB::sysDescr.0]
//	  - [[[IF-MIB, ifAdminStatus], 3], down]
//	  - [1.3.6.1.2.1.1.5.0, core-1]
type request struct {
	Bindings [][]any `yaml:"bindings"`
}

func loadRequest(path string) ([]snmpbind.Binding, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var req request
	if err := yaml.Unmarshal(data, &req); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	out := make([]snmpbind.Binding, 0, len(req.Bindings))
	for i, tuple := range req.Bindings {
		b, err := snmpbind.FromTuple(tuple)
		if err != nil {
			return nil, fmt.Errorf("%s: binding %d: %w", path, i, err)
		}
		out = append(out, b)
	}
	return out, nil
}

// parseAssignment splits NAME=VALUE. A missing value is the unspecified
// placeholder.
func parseAssignment(arg string) (name string, value any) {
	name, v, ok := strings.Cut(arg, "=")
	if !ok {
		return arg, nil
	}
	return name, v
}

func (c *cli) resolveCommand() *cobra.Command {
	var (
		file    string
		showPDU bool
	)
	cmd := &cobra.Command{
		Use:   "resolve NAME[=VALUE]...",
		Short: "Resolve names and values for an outbound request",
		Long: `Resolve names and values for an outbound request.

Names are MODULE::symbol.index, a plain symbol.index or a numeric OID.
Values are cast to the object's syntax: enumeration labels, decimal
integers, text, dotted IP addresses and OIDs or OID names are accepted.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			var bindings []snmpbind.Binding
			if file != "" {
				loaded, err := loadRequest(file)
				if err != nil {
					return err
				}
				bindings = loaded
			}
			for _, arg := range args {
				bindings = append(bindings, snmpbind.Named(parseAssignment(arg)))
			}
			if len(bindings) == 0 {
				return errNoBindings
			}

			gen := snmpbind.NewCommandGenerator(c.options()...)
			resolved, err := gen.MakeVarBinds(c.cache, bindings)
			if err != nil {
				return err
			}
			if showPDU {
				pdus, err := pdu.ToPDUs(resolved)
				if err != nil {
					return err
				}
				return writePDUs(cmd.OutOrStdout(), c.format, pdus)
			}
			return writeBindings(cmd.OutOrStdout(), c.format, resolved)
		},
	}
	cmd.Flags().StringVarP(&file, "file", "f", "", "read bindings from a YAML request file")
	cmd.Flags().BoolVar(&showPDU, "pdu", false, "print the gosnmp PDUs instead of the bindings")
	return cmd
}
