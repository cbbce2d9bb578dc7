package main

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/mgutz/ansi"
	"gopkg.in/yaml.v3"

	"github.com/Wildcard209/UUID-Generator/internal/uuidgen/entity"
	"github.com/Wildcard209/UUID-Generator/internal/uuidgen/usecase"
)

var (
	colorValue = ansi.ColorFunc("cyan+b")
	colorLabel = ansi.ColorFunc("black+h")
	colorOK    = ansi.ColorFunc("green")
	colorBad   = ansi.ColorFunc("red+b")
)

type inspectView struct {
	UUID    string        `json:"uuid" yaml:"uuid"`
	Version uint8         `json:"version" yaml:"version"`
	Variant uint8         `json:"variant" yaml:"variant"`
	IsV4    bool          `json:"is_v4" yaml:"is_v4"`
	Layout  entity.Layout `json:"layout" yaml:"layout"`
}

func renderInspect(w io.Writer, format string, res usecase.InspectResult) error {
	view := inspectView{
		UUID:    res.UUID.String(),
		Version: res.Version,
		Variant: res.Variant,
		IsV4:    res.IsV4,
		Layout:  res.Layout,
	}

	switch format {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(view)
	case "yaml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(view); err != nil {
			return err
		}
		return enc.Close()
	case "text", "":
		return renderInspectText(w, view)
	default:
		return fmt.Errorf("unsupported format %q", format)
	}
}

func renderInspectText(w io.Writer, v inspectView) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)

	v4 := colorBad("no")
	if v.IsV4 {
		v4 = colorOK("yes")
	}

	rows := [][2]string{
		{"uuid", colorValue(v.UUID)},
		{"version", fmt.Sprint(v.Version)},
		{"variant", fmt.Sprintf("%d (%s)", v.Variant, variantName(v.Variant))},
		{"v4", v4},
		{"time_low", fmt.Sprintf("%08x", v.Layout.TimeLow)},
		{"time_mid", fmt.Sprintf("%04x", v.Layout.TimeMid)},
		{"time_hi_and_version", fmt.Sprintf("%04x", v.Layout.TimeHiAndVersion)},
		{"clock_seq_hi_and_reserved", fmt.Sprintf("%02x", v.Layout.ClockSeqHi)},
		{"clock_seq_low", fmt.Sprintf("%02x", v.Layout.ClockSeqLow)},
		{"node", fmt.Sprintf("%012x", v.Layout.Node)},
	}
	for _, row := range rows {
		fmt.Fprintf(tw, "%s\t%s\n", colorLabel(row[0]), row[1])
	}

	return tw.Flush()
}

func variantName(v uint8) string {
	switch v {
	case 2:
		return "RFC 4122"
	case 3:
		return "Microsoft or reserved"
	default:
		return "NCS"
	}
}

func renderCompare(w io.Writer, equal bool) {
	if equal {
		fmt.Fprintln(w, colorOK("equal"))
		return
	}
	fmt.Fprintln(w, colorBad("different"))
}

func renderSelfTest(w io.Writer, res usecase.SelfTestResult) {
	status := colorBad("FAIL")
	if res.Passed() {
		status = colorOK("PASS")
	}

	fmt.Fprintf(w, "%s generated=%d/%d duplicates=%d malformed=%d workers=%d elapsed=%s\n",
		status, res.Generated, res.Requested, res.Duplicates, res.Malformed, res.Workers, res.Elapsed)
}
