package filter

import (
	"strings"
	"time"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"

	"github.com/s0up4200/gosonarr/sonarr"
)

// Filter is a compiled boolean expression over series fields
type Filter struct {
	expression string
	program    *vm.Program
}

// Compile compiles an expression into an executable filter
func Compile(expression string) (*Filter, error) {
	expression = strings.TrimSpace(expression)
	if expression == "" {
		return nil, &CompilationError{
			Expression: expression,
			Reason:     "empty expression",
		}
	}

	program, err := expr.Compile(expression,
		expr.Env(helperFunctions()),
		expr.AllowUndefinedVariables(), // Allow series properties
		expr.AsBool(),                  // Ensure boolean result
	)
	if err != nil {
		return nil, &CompilationError{
			Expression: expression,
			Reason:     "failed to compile expression",
			Err:        err,
		}
	}

	return &Filter{
		expression: expression,
		program:    program,
	}, nil
}

// Match evaluates the filter against a series
func (f *Filter) Match(series sonarr.Series) bool {
	env := environment(series)

	result, err := expr.Run(f.program, env)
	if err != nil {
		// Skip series that cause evaluation errors
		return false
	}

	// Result is guaranteed to be bool due to AsBool() option during compilation
	return result.(bool)
}

// Expression returns the original expression
func (f *Filter) Expression() string {
	return f.expression
}

// Apply returns the subset of series matching the filter
func Apply(f *Filter, series []sonarr.Series) []sonarr.Series {
	var matched []sonarr.Series
	for _, s := range series {
		if f.Match(s) {
			matched = append(matched, s)
		}
	}
	return matched
}

// environment exposes series fields and helpers to the expression
func environment(s sonarr.Series) map[string]interface{} {
	env := helperFunctions()
	env["Title"] = s.Title
	env["Status"] = s.Status
	env["Network"] = s.Network
	env["Year"] = s.Year
	env["Monitored"] = s.Monitored
	env["SeasonFolder"] = s.SeasonFolder
	env["SeasonCount"] = len(s.Seasons)
	env["SeriesType"] = s.SeriesType
	env["TvdbId"] = s.TVDBID
	env["Path"] = s.Path
	env["QualityProfileId"] = s.QualityProfileID
	env["Added"] = s.Added
	env["FirstAired"] = s.FirstAired
	env["Tags"] = s.Tags
	return env
}

func helperFunctions() map[string]interface{} {
	return map[string]interface{}{
		"now": func() time.Time {
			return time.Now()
		},
		"daysAgo": func(days int) time.Time {
			return time.Now().AddDate(0, 0, -days)
		},
		"monthsAgo": func(months int) time.Time {
			return time.Now().AddDate(0, -months, 0)
		},
		"contains": func(str, substr string) bool {
			return strings.Contains(strings.ToLower(str), strings.ToLower(substr))
		},
	}
}
