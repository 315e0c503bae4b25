package main

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/gosnmp/gosnmp"
	"gopkg.in/yaml.v3"

	"github.com/golangsnmp/snmpbind/smi"
)

// Output formats.
const (
	formatText = "text"
	formatJSON = "json"
	formatYAML = "yaml"
)

// BindingJSON is the serialized form of one binding.
type BindingJSON struct {
	Name     string `json:"name" yaml:"name"`
	OID      string `json:"oid,omitempty" yaml:"oid,omitempty"`
	Type     string `json:"type,omitempty" yaml:"type,omitempty"`
	Value    string `json:"value" yaml:"value"`
	Resolved bool   `json:"resolved" yaml:"resolved"`
}

// PDUJSON is the serialized form of one gosnmp PDU.
type PDUJSON struct {
	Name  string `json:"name" yaml:"name"`
	Type  string `json:"type" yaml:"type"`
	Value any    `json:"value" yaml:"value"`
}

// ModuleJSON summarizes one module of the view.
type ModuleJSON struct {
	Name          string `json:"name" yaml:"name"`
	Language      string `json:"language" yaml:"language"`
	OID           string `json:"oid,omitempty" yaml:"oid,omitempty"`
	Objects       int    `json:"objects" yaml:"objects"`
	Types         int    `json:"types" yaml:"types"`
	Notifications int    `json:"notifications" yaml:"notifications"`
}

func bindingJSON(ot smi.ObjectType) BindingJSON {
	out := BindingJSON{
		Name:     ot.Identity.String(),
		Value:    ot.ValueString(),
		Resolved: ot.IsResolved(),
	}
	if oid := ot.Identity.OID(); oid != nil {
		out.OID = oid.String()
	}
	if val, ok := ot.TypedValue(); ok {
		out.Type = val.TypeName()
	}
	return out
}

func pduJSON(p gosnmp.SnmpPDU) PDUJSON {
	out := PDUJSON{Name: p.Name, Type: asn1Name(p.Type), Value: p.Value}
	if b, ok := p.Value.([]byte); ok {
		out.Value = fmt.Sprintf("%x", b)
	}
	return out
}

// encode writes v as JSON or YAML.
func encode(w io.Writer, format string, v any) error {
	switch format {
	case formatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	case formatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return err
		}
		return enc.Close()
	}
	return fmt.Errorf("unknown format %q", format)
}

func writeBindings(w io.Writer, format string, bindings []smi.ObjectType) error {
	if format != formatText {
		out := make([]BindingJSON, len(bindings))
		for i, ot := range bindings {
			out[i] = bindingJSON(ot)
		}
		return encode(w, format, out)
	}
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	for _, ot := range bindings {
		oid := "?"
		if o := ot.Identity.OID(); o != nil {
			oid = o.String()
		}
		fmt.Fprintf(tw, "%s\t%s\t= %s\n", ot.Identity, oid, ot.ValueString())
	}
	return tw.Flush()
}

func writePDUs(w io.Writer, format string, pdus []gosnmp.SnmpPDU) error {
	out := make([]PDUJSON, len(pdus))
	for i, p := range pdus {
		out[i] = pduJSON(p)
	}
	if format != formatText {
		return encode(w, format, out)
	}
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	for _, p := range out {
		fmt.Fprintf(tw, "%s\t%s\t%v\n", p.Name, p.Type, p.Value)
	}
	return tw.Flush()
}

// asn1Types maps the type names accepted in response files to gosnmp tags.
var asn1Types = map[string]gosnmp.Asn1BER{
	"Integer":          gosnmp.Integer,
	"OctetString":      gosnmp.OctetString,
	"Null":             gosnmp.Null,
	"ObjectIdentifier": gosnmp.ObjectIdentifier,
	"IpAddress":        gosnmp.IPAddress,
	"Counter32":        gosnmp.Counter32,
	"Gauge32":          gosnmp.Gauge32,
	"TimeTicks":        gosnmp.TimeTicks,
	"Opaque":           gosnmp.Opaque,
	"Counter64":        gosnmp.Counter64,
	"Unsigned32":       gosnmp.Uinteger32,
	"NoSuchObject":     gosnmp.NoSuchObject,
	"NoSuchInstance":   gosnmp.NoSuchInstance,
	"EndOfMibView":     gosnmp.EndOfMibView,
}

func asn1Name(t gosnmp.Asn1BER) string {
	for name, tag := range asn1Types {
		if tag == t {
			return name
		}
	}
	return fmt.Sprintf("0x%02X", uint8(t))
}
