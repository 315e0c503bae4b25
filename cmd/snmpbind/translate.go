package main

import (
	"fmt"
	"os"

	"github.com/gosnmp/gosnmp"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/golangsnmp/snmpbind"
	"github.com/golangsnmp/snmpbind/mib"
	"github.com/golangsnmp/snmpbind/pdu"
	"github.com/golangsnmp/snmpbind/smi"
)

// response is the YAML response file read by translate -f, listing
// received PDUs:
//
//	pdus:
//	  - {name: .1.3.6.1.2.1.1.1.0, type: OctetString, value: Linux}
//	  - {name: .1.3.6.1.2.1.2.2.1.7.1, type: Integer, value: 1}
type response struct {
	PDUs []struct {
		Name  string `yaml:"name"`
		Type  string `yaml:"type"`
		Value any    `yaml:"value"`
	} `yaml:"pdus"`
}

func loadResponse(path string) ([]smi.ObjectType, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var resp response
	if err := yaml.Unmarshal(data, &resp); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	pdus := make([]gosnmp.SnmpPDU, 0, len(resp.PDUs))
	for i, p := range resp.PDUs {
		tag, ok := asn1Types[p.Type]
		if !ok {
			return nil, fmt.Errorf("%s: pdu %d: unknown type %q", path, i, p.Type)
		}
		pdus = append(pdus, gosnmp.SnmpPDU{Name: p.Name, Type: tag, Value: p.Value})
	}
	return pdu.FromPDUs(pdus)
}

func (c *cli) translateCommand() *cobra.Command {
	var (
		file     string
		noLookup bool
	)
	cmd := &cobra.Command{
		Use:   "translate OID...",
		Short: "Name received OIDs and values",
		Long: `Name received OIDs and values the way a response is interpreted.

OIDs the view does not know are printed as they are.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			var bindings []smi.ObjectType
			if file != "" {
				loaded, err := loadResponse(file)
				if err != nil {
					return err
				}
				bindings = loaded
			}
			for _, arg := range args {
				oid, err := mib.ParseOID(arg)
				if err != nil {
					return err
				}
				bindings = append(bindings, smi.NewObjectType(smi.ObjectIdentityFromOID(oid), nil))
			}
			if len(bindings) == 0 {
				return errNoBindings
			}

			gen := snmpbind.NewCommandGenerator(c.options()...)
			named, err := gen.UnmakeVarBinds(c.cache, bindings, snmpbind.WithLookupMib(!noLookup))
			if err != nil {
				return err
			}
			if err := writeBindings(cmd.OutOrStdout(), c.format, named); err != nil {
				return err
			}
			if file != "" && snmpbind.IsEndOfMib(named) {
				fmt.Fprintln(cmd.ErrOrStderr(), "end of MIB view")
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&file, "file", "f", "", "read received PDUs from a YAML response file")
	cmd.Flags().BoolVar(&noLookup, "no-lookup", false, "print bindings without MIB lookup")
	return cmd
}
