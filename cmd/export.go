package main

import (
	"os"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"nexttrain.dev/nexttrain"
)

var exportCmd = &cobra.Command{
	Use:   "export <page.html> [page.html ...]",
	Short: "Export parsed trips as CSV",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runExport,
}

var exportPath string

func init() {
	exportCmd.Flags().StringVarP(&exportPath, "output", "o", "", "Write the CSV to a file instead of stdout")
}

func runExport(cmd *cobra.Command, args []string) error {
	converter, err := newConverter(profileName)
	if err != nil {
		return err
	}

	docs, err := readDocuments(args)
	if err != nil {
		return err
	}

	tables, err := converter.ParseAll(docs)
	if err != nil {
		return err
	}

	out := os.Stdout
	if exportPath != "" {
		f, err := os.Create(exportPath)
		if err != nil {
			return errors.Wrap(err, "creating csv file")
		}
		defer f.Close()
		out = f
	}

	return nexttrain.ExportCSV(out, converter.Profile, tables)
}
