// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package main

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/google/go-cmp/cmp"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/danielhkuo/apportion/apportionment"
	"github.com/danielhkuo/apportion/digest"
	"github.com/danielhkuo/apportion/electionio"
	"github.com/danielhkuo/apportion/models"
)

var errReportMismatch = errors.New("report does not match a fresh apportionment")

func newRunCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "run FILE...",
		Short: "Apportion seats for one or more elections",
		Long: `Reads each election document (JSON, or YAML for .yaml/.yml files; "-" is
JSON on stdin), apportions the seats and writes one report per election.`,
		Args: cobra.MinimumNArgs(1),
		RunE: a.run,
	}
}

func (a *app) run(cmd *cobra.Command, files []string) error {
	docs := make([]models.ElectionDocument, len(files))
	jobs := make([]apportionment.Job, len(files))
	for i, file := range files {
		doc, err := electionio.ReadElection(file, a.stdin)
		if err != nil {
			return &apportionment.JobError{Index: i, Name: file, Err: err}
		}
		engine, err := a.engine(doc, a.cfg.TieBreak, file)
		if err != nil {
			return err
		}
		docs[i] = doc
		jobs[i] = apportionment.Job{Name: file, Input: doc.Input(), Engine: engine}
	}

	a.logger.Info("apportioning",
		zap.Int("elections", len(jobs)),
		zap.Int("parallel", a.cfg.Parallel),
		zap.String("tie_break", a.cfg.TieBreak),
	)
	results, err := apportionment.RunAll(cmd.Context(), jobs, a.cfg.Parallel)
	if err != nil {
		return err
	}

	reports := make([]models.Report, len(results))
	for i, res := range results {
		sum, err := digest.Input(docs[i])
		if err != nil {
			return err
		}
		reports[i] = models.Report{
			Election:    docs[i].Name,
			InputDigest: sum,
			TieBreak:    a.cfg.TieBreak,
			Result:      res,
		}
		a.logger.Info("election apportioned",
			zap.String("file", files[i]),
			zap.String("quota", res.Quota.String()),
			zap.Int("full_seats", res.FullSeatsTotal),
			zap.Int("residual_seats", res.ResidualSeatsTotal),
		)
	}

	return a.writeReports(cmd, reports)
}

func (a *app) writeReports(cmd *cobra.Command, reports []models.Report) error {
	if a.cfg.Output == "" {
		return electionio.WriteReports(cmd.OutOrStdout(), a.cfg.Format, reports)
	}

	f, err := os.Create(a.cfg.Output)
	if err != nil {
		return fmt.Errorf("failed to create output: %w", err)
	}
	if err := electionio.WriteReports(f, a.cfg.Format, reports); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func newVerifyCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "verify FILE REPORT",
		Short: "Check a report against its election",
		Long: `Recomputes the apportionment of FILE with the tie policy recorded in
REPORT and fails unless the input digest and the whole result match.`,
		Args: cobra.ExactArgs(2),
		RunE: a.verify,
	}
}

func (a *app) verify(cmd *cobra.Command, args []string) error {
	file, reportFile := args[0], args[1]

	doc, err := electionio.ReadElection(file, a.stdin)
	if err != nil {
		return &apportionment.JobError{Name: file, Err: err}
	}
	rep, err := electionio.ReadReport(reportFile, a.stdin)
	if err != nil {
		return err
	}
	if err := digest.Verify(doc, rep.InputDigest); err != nil {
		return err
	}

	engine, err := a.engine(doc, rep.TieBreak, file)
	if err != nil {
		return err
	}
	res, err := engine.Apportion(doc.Input())
	if err != nil {
		return &apportionment.JobError{Name: file, Err: err}
	}

	published := *rep.Result
	if published.Steps == nil {
		published.Steps = []apportionment.Step{}
	}
	want, err := json.Marshal(res)
	if err != nil {
		return err
	}
	got, err := json.Marshal(published)
	if err != nil {
		return err
	}
	if !bytes.Equal(want, got) {
		a.logger.Warn("report differs", zap.String("diff", cmp.Diff(res, &published)))
		return fmt.Errorf("%s: %w", reportFile, errReportMismatch)
	}

	a.logger.Info("report verified", zap.String("file", file), zap.String("report", reportFile))
	fmt.Fprintf(cmd.OutOrStdout(), "%s: ok\n", reportFile)
	return nil
}

// engine builds the apportionment engine for one document
func (a *app) engine(doc models.ElectionDocument, policy, file string) (*apportionment.Engine, error) {
	ties, err := doc.TieBreaker(policy)
	if err != nil {
		return nil, err
	}
	return apportionment.New(
		apportionment.WithTieBreaker(ties),
		apportionment.WithLogger(a.logger.With(zap.String("file", file))),
	), nil
}
