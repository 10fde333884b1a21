package main

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"sift/internal/config"
	"sift/internal/ingest"
	"sift/internal/record"
	"sift/internal/report"
	"sift/internal/validate"
)

// findingsError signals bad records through the exit code. The report
// already showed the details, so main does not print it again.
type findingsError struct {
	count int
}

func (e *findingsError) Error() string {
	return fmt.Sprintf("%d bad records", e.count)
}

func newCheckCommand(ctx *commandContext) *cobra.Command {
	var outputFlag string

	cmd := &cobra.Command{
		Use:   "check <file>",
		Short: "Validate records in a file and report bad identifiers",
		Long: `Check reads a list of records from a JSON or YAML file, flags records
with a blank name, address, or zip, records with a malformed U.S. ZIP
code, and records whose content duplicates an earlier record
(identifiers excluded), then reports the flagged identifiers.

The exit code is 0 when every record is clean and 1 otherwise.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			logger, err := ctx.ensureLogger()
			if err != nil {
				return err
			}
			log := logger.With("run_id", uuid.NewString())

			format, err := resolveReportFormat(outputFlag, cfg)
			if err != nil {
				return err
			}

			records, err := ingest.File(args[0])
			if err != nil {
				return err
			}
			log.Debug("records loaded", "source", args[0], "count", len(records))

			validator := validate.New(log)
			skipped, err := runValidation(validator, records, cfg.Validation.OnMissingID, log)
			if err != nil {
				return fmt.Errorf("validate %s: %w", args[0], err)
			}

			findings := validator.Findings()
			summary := report.Summary{
				Source:   args[0],
				Records:  len(records),
				Skipped:  skipped,
				Findings: findings,
			}
			if err := report.Render(cmd.OutOrStdout(), summary, format); err != nil {
				return err
			}
			if len(findings) > 0 {
				return &findingsError{count: len(findings)}
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&outputFlag, "output", "o", "", "Report format: auto, table, lines, or json (defaults to config)")
	return cmd
}

// runValidation drives the validator under the configured
// missing-identifier policy and returns how many records were skipped.
func runValidation(validator *validate.Validator, records []record.Record, policy string, log *slog.Logger) (int, error) {
	if policy != config.MissingIDSkip {
		_, err := validator.ValidateAll(records)
		return 0, err
	}

	skipped := 0
	for _, rec := range records {
		if err := validator.Process(rec); err != nil {
			var missing *validate.MissingIDError
			if !errors.As(err, &missing) {
				return skipped, err
			}
			skipped++
			log.Warn("skipping record without identifier", "index", missing.Index)
		}
	}
	log.Info("validation pass complete", "records", validator.Processed(), "skipped", skipped)
	return skipped, nil
}

func resolveReportFormat(flagValue string, cfg *config.Config) (report.Format, error) {
	if flagValue != "" {
		return report.ParseFormat(flagValue)
	}
	return report.ParseFormat(cfg.Report.Format)
}
