package main

import (
	"fmt"
	"os"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

var batchCmd = &cobra.Command{
	Use:   "batch <jobs.yaml>",
	Short: "Run several conversions from a job file",
	Long: `Runs several conversions from a YAML job file:

    jobs:
      - profile: oshiage
        inputs: [oshiage_weekday.html, oshiage_holiday.html]
        output: oshiage.txt

A failed job is logged and does not stop the remaining jobs.`,
	Args: cobra.ExactArgs(1),
	RunE: runBatch,
}

type batchJob struct {
	Profile string   `yaml:"profile"`
	Inputs  []string `yaml:"inputs"`
	Output  string   `yaml:"output"`
}

type batchFile struct {
	Jobs []batchJob `yaml:"jobs"`
}

func loadBatchFile(path string) (*batchFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "reading job file")
	}

	var jobs batchFile
	if err := yaml.Unmarshal(data, &jobs); err != nil {
		return nil, errors.Wrap(err, "parsing job file")
	}

	if len(jobs.Jobs) == 0 {
		return nil, fmt.Errorf("job file has no jobs")
	}
	for i, job := range jobs.Jobs {
		if job.Profile == "" {
			return nil, fmt.Errorf("job %d: profile is required", i+1)
		}
		if len(job.Inputs) == 0 {
			return nil, fmt.Errorf("job %d: inputs are required", i+1)
		}
		if job.Output == "" {
			return nil, fmt.Errorf("job %d: output is required", i+1)
		}
	}

	return &jobs, nil
}

func runBatch(cmd *cobra.Command, args []string) error {
	jobs, err := loadBatchFile(args[0])
	if err != nil {
		return err
	}

	failed := 0
	for i, job := range jobs.Jobs {
		jobLog := log.WithFields(logrus.Fields{
			"job":     i + 1,
			"profile": job.Profile,
			"output":  job.Output,
		})

		if err := runBatchJob(job); err != nil {
			jobLog.WithField("error", err).Error("job failed")
			failed++
			continue
		}
		jobLog.Info("job done")
	}

	if failed > 0 {
		return fmt.Errorf("%d of %d jobs failed", failed, len(jobs.Jobs))
	}
	return nil
}

func runBatchJob(job batchJob) error {
	converter, err := newConverter(job.Profile)
	if err != nil {
		return err
	}

	docs, err := readDocuments(job.Inputs)
	if err != nil {
		return err
	}

	schedule, err := converter.Convert(docs)
	if err != nil {
		return err
	}

	return errors.Wrap(os.WriteFile(job.Output, []byte(schedule), 0644), "writing schedule")
}
