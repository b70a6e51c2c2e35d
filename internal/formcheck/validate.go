package formcheck

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/hangulform/pkg/logger"
)

func (a *app) validateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "validate FILE...",
		Short: "Validate records from YAML or JSON files (- reads stdin)",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var reports []recordReport
			for _, name := range args {
				rs, err := a.validateSource(cmd, name)
				if err != nil {
					return fmt.Errorf("%s: %w", name, err)
				}
				reports = append(reports, rs...)
			}

			if a.opts.output == outputJSON {
				if err := writeJSON(cmd.OutOrStdout(), reports); err != nil {
					return err
				}
			} else {
				writeText(cmd.OutOrStdout(), reports)
			}

			for _, r := range reports {
				if !r.Valid {
					return ErrInvalidRecords
				}
			}
			return nil
		},
	}
}

func (a *app) validateSource(cmd *cobra.Command, name string) ([]recordReport, error) {
	var r io.Reader
	source := name
	if name == stdinName {
		r = cmd.InOrStdin()
		source = "stdin"
	} else {
		f, err := os.Open(name)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		r = f
	}

	records, err := decodeRecords(name, r)
	if err != nil {
		return nil, err
	}

	out := make([]recordReport, 0, len(records))
	for i, rec := range records {
		rep := a.report(source, i+1, rec)
		a.log.DebugContext(cmd.Context(), "record validated",
			logger.Source(source),
			logger.FieldCount(len(rec)),
			logger.Valid(rep.Valid),
		)
		out = append(out, rep)
	}
	return out, nil
}
