package validate

import "storycaster/diag"

// Stats is the validator's running tally. It lives on the Validator value,
// scoped to one invocation context, not on the package.
type Stats struct {
	Total     int
	Failed    int
	Histogram map[string]int
}

// MostCommon returns the histogram code with the highest count, or "" when
// nothing has been recorded. Ties break alphabetically for determinism.
func (s Stats) MostCommon() string {
	best, bestCount := "", 0
	for code, count := range s.Histogram {
		if count > bestCount || (count == bestCount && code < best) {
			best, bestCount = code, count
		}
	}

	return best
}

// Stats returns a copy of the running statistics.
func (v *Validator) Stats() Stats {
	out := v.stats
	out.Histogram = make(map[string]int, len(v.stats.Histogram))
	for k, c := range v.stats.Histogram {
		out.Histogram[k] = c
	}

	return out
}

func (v *Validator) record(res *diag.Result) {
	v.stats.Total++
	if !res.IsValid {
		v.stats.Failed++
	}

	v.logger.Debug().
		Bool("valid", res.IsValid).
		Int("errors", len(res.Errors)).
		Int("warnings", len(res.Warnings)).
		Msg("layout validated")
}

func (v *Validator) addError(res *diag.Result, code string, d diag.Diagnostic) {
	v.stats.Histogram[code]++
	res.AddError(d)
}

func (v *Validator) addWarning(res *diag.Result, code string, d diag.Diagnostic) {
	v.stats.Histogram[code]++
	res.AddWarning(d)
}
