package main

import (
	"fmt"
	"os"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"nexttrain.dev/nexttrain"
	"nexttrain.dev/nexttrain/storage"
)

var convertCmd = &cobra.Command{
	Use:   "convert <page.html> [page.html ...]",
	Short: "Convert timetable pages to a NextTrain schedule",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runConvert,
}

var (
	outputPath  string
	archivePath string
)

func init() {
	convertCmd.Flags().StringVarP(&outputPath, "output", "o", "", "Write the schedule to a file instead of stdout")
	convertCmd.Flags().StringVarP(&archivePath, "archive", "", "", "Record parsed timetables in a SQLite archive")
}

func runConvert(cmd *cobra.Command, args []string) error {
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

	if archivePath != "" {
		archive, err := storage.NewSQLiteArchive(archivePath)
		if err != nil {
			return errors.Wrap(err, "opening archive")
		}
		defer archive.Close()

		now := time.Now()
		for _, table := range tables {
			err = archive.Record(nexttrain.BuildSnapshot(converter.Profile, table, now))
			if err != nil {
				return errors.Wrap(err, "recording snapshot")
			}
		}
	}

	schedule := nexttrain.Serialize(converter.Profile, tables)

	if outputPath == "" {
		fmt.Println(schedule)
		return nil
	}

	if err := os.WriteFile(outputPath, []byte(schedule), 0644); err != nil {
		return errors.Wrap(err, "writing schedule")
	}
	log.WithFields(logrus.Fields{
		"output": outputPath,
		"pages":  len(args),
	}).Info("schedule written")

	return nil
}
