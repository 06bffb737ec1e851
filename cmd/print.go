package cmd

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"

	"sigs.k8s.io/yaml"

	"github.com/giantswarm/k8sobjects/pkg/model"
)

const (
	outputTable = "table"
	outputJSON  = "json"
	outputYAML  = "yaml"
)

// printObject renders a single document in the requested output format.
func printObject(w io.Writer, obj model.Object, format string) error {
	data, err := model.Marshal(obj)
	if err != nil {
		return err
	}
	return printDocument(w, data, format)
}

// printDocument renders raw wire JSON in the requested output format.
func printDocument(w io.Writer, data []byte, format string) error {
	switch format {
	case outputJSON:
		var buf bytes.Buffer
		if err := json.Indent(&buf, data, "", "  "); err != nil {
			return err
		}
		fmt.Fprintln(w, buf.String())
		return nil

	case outputYAML:
		out, err := yaml.JSONToYAML(data)
		if err != nil {
			return err
		}
		_, err = w.Write(out)
		return err

	case outputTable:
		meta, err := model.ItemMetadata(data)
		if err != nil {
			return err
		}
		tw := newTable(w)
		tableRow(tw, meta.Name, meta.CreationTimestamp.String())
		return tw.Flush()

	default:
		return fmt.Errorf("unknown output format %q", format)
	}
}

// printItems renders raw list items in the requested output format.
func printItems(w io.Writer, items []json.RawMessage, format string) error {
	switch format {
	case outputJSON, outputYAML:
		for _, item := range items {
			if err := printDocument(w, item, format); err != nil {
				return err
			}
		}
		return nil

	case outputTable:
		tw := newTable(w)
		for _, item := range items {
			meta, err := model.ItemMetadata(item)
			if err != nil {
				return err
			}
			tableRow(tw, meta.Name, meta.CreationTimestamp.String())
		}
		return tw.Flush()

	default:
		return fmt.Errorf("unknown output format %q", format)
	}
}

func newTable(w io.Writer) *tabwriter.Writer {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	tableRow(tw, "NAME", "CREATED")
	return tw
}

func tableRow(tw *tabwriter.Writer, cols ...string) {
	for i, col := range cols {
		if i > 0 {
			fmt.Fprint(tw, "\t")
		}
		fmt.Fprint(tw, col)
	}
	fmt.Fprintln(tw)
}
