package cli

import (
	"encoding/json"
	"fmt"
	"text/tabwriter"

	"github.com/dmitrymomot/infovalid/internal/config"
	"github.com/dmitrymomot/infovalid/pkg/validator"
)

type result struct {
	Kind    validator.Kind `json:"kind"`
	Value   string         `json:"value"`
	Valid   bool           `json:"valid"`
	Message string         `json:"message,omitempty"`
}

type report struct {
	Results []result `json:"results"`
	Passed  int      `json:"passed"`
	Failed  int      `json:"failed"`
}

func check(kind validator.Kind, value string) result {
	r := result{Kind: kind, Value: value, Valid: validator.Match(kind, value)}
	if !r.Valid {
		r.Message = kind.Message()
	}
	return r
}

func newReport(results []result) report {
	rep := report{Results: results}
	for _, r := range results {
		if r.Valid {
			rep.Passed++
		} else {
			rep.Failed++
		}
	}
	return rep
}

// write renders rep in the selected output format and returns
// ErrChecksFailed when any result failed.
func (a *app) write(rep report) error {
	if err := a.render(rep); err != nil {
		return err
	}
	if rep.Failed > 0 {
		return ErrChecksFailed
	}
	return nil
}

func (a *app) render(rep report) error {
	if a.output == config.OutputJSON {
		enc := json.NewEncoder(a.out)
		enc.SetIndent("", "  ")
		return enc.Encode(rep)
	}

	tw := tabwriter.NewWriter(a.out, 0, 4, 2, ' ', 0)
	for _, r := range rep.Results {
		status := "ok"
		if !r.Valid {
			status = "FAIL"
		}
		fmt.Fprintf(tw, "%s\t%s\t%q\n", status, r.Kind, r.Value)
	}
	fmt.Fprintf(tw, "\n%d passed, %d failed\n", rep.Passed, rep.Failed)
	return tw.Flush()
}
