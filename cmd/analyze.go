package main

import (
	"os"

	"github.com/spf13/cobra"

	"nexttrain.dev/nexttrain"
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze <page.html>",
	Short: "Print the parsed structure of a timetable page",
	Args:  cobra.ExactArgs(1),
	RunE:  runAnalyze,
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	converter, err := newConverter(profileName)
	if err != nil {
		return err
	}

	doc, err := readDocument(args[0])
	if err != nil {
		return err
	}

	table, err := converter.Parse(doc)
	if err != nil {
		return err
	}

	nexttrain.WriteAnalysis(os.Stdout, table)
	return nil
}
