package report

import (
	"fmt"
	"io"
	"strings"
	"text/template"
)

// writePlain prints one line per item: its String method, else its row
// cells joined by spaces, else its %v form.
func writePlain[T any](w io.Writer, items []T) error {
	for _, item := range items {
		var line string
		switch v := any(item).(type) {
		case fmt.Stringer:
			line = v.String()
		case Rower:
			line = strings.Join(v.Row(), " ")
		default:
			line = fmt.Sprintf("%v", item)
		}
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}

// writeGoTemplate executes tmplStr once per item, each followed by a newline.
// Referencing a missing map key is an error.
func writeGoTemplate[T any](w io.Writer, tmplStr string, items []T) error {
	tmpl, err := template.New("report").Option("missingkey=error").Parse(tmplStr)
	if err != nil {
		return fmt.Errorf("%w: %s", ErrInvalidTemplate, err)
	}
	for _, item := range items {
		if err := tmpl.Execute(w, item); err != nil {
			return err
		}
		if _, err := io.WriteString(w, "\n"); err != nil {
			return err
		}
	}
	return nil
}
