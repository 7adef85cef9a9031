package archive

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"
)

// WriteColumns writes the results as an aligned text table, one line per
// checked file.
func WriteColumns(w io.Writer, results []Result) error {
	_, err := fmt.Fprintf(w, "%-7s %-9s %-9s %-44s %s\n", "# Valid", "Location", "Expected", "Name", "Problems")
	if err != nil {
		return err
	}
	for _, res := range results {
		probs := "-"
		if p := problems(res); len(p) > 0 {
			probs = strings.Join(p, "; ")
		}
		_, err := fmt.Fprintf(w, "%-7s %-9s %-9s %-44s %s\n",
			yesno(res.Valid()), res.Location, expected(res, "-"), res.Name, probs)
		if err != nil {
			return err
		}
	}
	return nil
}

// WriteCSV writes the results as CSV records with a header row.
func WriteCSV(w io.Writer, results []Result) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"path", "name", "valid", "location", "expected", "problems"}); err != nil {
		return err
	}
	for _, res := range results {
		rec := []string{
			res.Path,
			res.Name,
			yesno(res.Valid()),
			res.Location.String(),
			expected(res, ""),
			strings.Join(problems(res), "; "),
		}
		if err := cw.Write(rec); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// problems returns the violations and warnings of a result as one list.
func problems(res Result) []string {
	var probs []string
	if res.Err != nil {
		for _, v := range res.Err.Violations {
			probs = append(probs, v.String())
		}
	}
	for _, warn := range res.Warnings {
		probs = append(probs, "warning: "+warn)
	}
	return probs
}

func expected(res Result, none string) string {
	if res.Expected == nil {
		return none
	}
	return res.Expected.String()
}

func yesno(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}
