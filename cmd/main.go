package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spkg/bom"

	"nexttrain.dev/nexttrain"
	"nexttrain.dev/nexttrain/extract"
	"nexttrain.dev/nexttrain/profile"
)

var rootCmd = &cobra.Command{
	Use:          "nexttrain",
	Short:        "Toei timetable to NextTrain converter",
	Long:         "Converts Toei Asakusa line timetable pages (HTML) into the NextTrain schedule format",
	SilenceUsage: true,
}

var (
	profileName string
	useScanner  bool

	log = logrus.New()
)

func init() {
	log.SetOutput(os.Stderr)
	log.SetFormatter(&logrus.TextFormatter{
		DisableColors: true,
		FullTimestamp: true,
	})

	rootCmd.PersistentFlags().StringVarP(
		&profileName,
		"profile",
		"p",
		"oshiage",
		"Line profile ("+strings.Join(profile.Names(), ", ")+")",
	)
	rootCmd.PersistentFlags().BoolVarP(
		&useScanner,
		"scanner",
		"",
		false,
		"Use the pattern-matching scanner instead of the DOM parser",
	)

	rootCmd.AddCommand(convertCmd, analyzeCmd, exportCmd, batchCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func newConverter(profileName string) (*nexttrain.Converter, error) {
	p, err := profile.Lookup(profileName)
	if err != nil {
		return nil, err
	}

	converter := nexttrain.NewConverter(p)
	if useScanner {
		converter.Backend = extract.BackendScanner
	}
	return converter, nil
}

// readDocument reads one timetable page. The BOM reader strips a
// unicode BOM if present.
func readDocument(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", errors.Wrap(err, "opening document")
	}
	defer f.Close()

	data, err := io.ReadAll(bom.NewReader(f))
	if err != nil {
		return "", errors.Wrapf(err, "reading %s", path)
	}
	return string(data), nil
}

func readDocuments(paths []string) ([]string, error) {
	docs := make([]string, 0, len(paths))
	for _, path := range paths {
		log.WithField("file", path).Info("reading timetable page")
		doc, err := readDocument(path)
		if err != nil {
			return nil, err
		}
		docs = append(docs, doc)
	}
	return docs, nil
}
