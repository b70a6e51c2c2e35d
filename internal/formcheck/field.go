package formcheck

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/hangulform/pkg/hangul"
)

type fieldReport struct {
	Field     string      `json:"field"`
	Kind      hangul.Kind `json:"kind"`
	Valid     bool        `json:"valid"`
	Sanitized string      `json:"sanitized"`
	Error     string      `json:"error,omitempty"`
}

func (a *app) fieldCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "field NAME VALUE",
		Short: "Validate a single value as the named form field",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			name, value := args[0], args[1]
			res := a.form.ValidateField(name, value)

			rep := fieldReport{Field: name, Kind: a.form.KindOf(name), Valid: res.Valid}
			if res.Valid {
				rep.Sanitized = res.Sanitized
				if a.opts.mask {
					rep.Sanitized = a.mask(name, res.Sanitized)
				}
			} else {
				rep.Error = a.loc.Message(a.opts.lang, *res.Err)
			}

			w := cmd.OutOrStdout()
			if a.opts.output == outputJSON {
				if err := writeJSON(w, rep); err != nil {
					return err
				}
			} else if rep.Valid {
				fmt.Fprintln(w, printable(rep.Sanitized))
			} else {
				fmt.Fprintln(w, rep.Error)
			}

			if !rep.Valid {
				return ErrInvalidField
			}
			return nil
		},
	}
}

func (a *app) fieldsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "fields",
		Short: "List known field names and their grammars",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			fields := a.form.Fields()
			w := cmd.OutOrStdout()
			if a.opts.output == outputJSON {
				return writeJSON(w, fields)
			}
			for _, f := range fields {
				fmt.Fprintf(w, "%-16s %s\n", f.Name, f.Kind)
			}
			return nil
		},
	}
}
