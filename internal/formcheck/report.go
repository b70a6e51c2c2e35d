package formcheck

import (
	"encoding/json"
	"fmt"
	"io"
	"sort"

	"github.com/dmitrymomot/hangulform/binder"
	"github.com/dmitrymomot/hangulform/pkg/hangul"
	"github.com/dmitrymomot/hangulform/pkg/sanitizer"
)

// recordReport is one validated record as printed by validate.
type recordReport struct {
	Source    string            `json:"source"`
	Index     int               `json:"index"`
	Valid     bool              `json:"valid"`
	Errors    map[string]string `json:"errors,omitempty"`
	Sanitized map[string]string `json:"sanitized"`
}

func (a *app) report(source string, index int, rec binder.Record) recordReport {
	res := a.form.Validate(rec)
	r := recordReport{
		Source:    source,
		Index:     index,
		Valid:     res.Valid,
		Sanitized: res.Sanitized,
	}
	if !res.Valid {
		r.Errors = a.loc.Errors(a.opts.lang, res)
	}
	if a.opts.mask {
		r.Sanitized = a.maskAll(res.Sanitized)
	}
	return r
}

// mask hides personal data for the grammar kinds that carry it.
func (a *app) mask(field, value string) string {
	if value == "" {
		return value
	}
	switch a.form.KindOf(field) {
	case hangul.KindName:
		return sanitizer.MaskName(value)
	case hangul.KindPhone:
		return sanitizer.MaskPhone(value)
	case hangul.KindEmail:
		return sanitizer.MaskEmail(value)
	default:
		return value
	}
}

func (a *app) maskAll(values map[string]string) map[string]string {
	out := make(map[string]string, len(values))
	for k, v := range values {
		out[k] = a.mask(k, v)
	}
	return out
}

func sortedKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// printable strips terminal control characters from values echoed back.
func printable(s string) string {
	return sanitizer.RemoveControlChars(s)
}

func writeText(w io.Writer, reports []recordReport) {
	for _, r := range reports {
		status := "valid"
		if !r.Valid {
			status = "invalid"
		}
		fmt.Fprintf(w, "%s#%d: %s\n", r.Source, r.Index, status)
		for _, k := range sortedKeys(r.Errors) {
			fmt.Fprintf(w, "  ✗ %s: %s\n", k, r.Errors[k])
		}
		for _, k := range sortedKeys(r.Sanitized) {
			fmt.Fprintf(w, "  ✓ %s: %s\n", k, printable(r.Sanitized[k]))
		}
	}
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
