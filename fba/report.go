package fba

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// WriteText prints the result as three lines: status, the flux vector and
// the objective value. Absent values print as None.
func WriteText(w io.Writer, r Result) error {
	values, objective := "None", "None"
	if r.Values != nil {
		parts := make([]string, len(r.Values))
		for i, v := range r.Values {
			parts[i] = formatFloat(v)
		}
		values = "[" + strings.Join(parts, " ") + "]"
	}
	if r.Objective != nil {
		objective = formatFloat(*r.Objective)
	}

	_, err := fmt.Fprintf(w,
		"Optimization Status: %s\nOptimal Values for X1 to X%d: %s\nOptimal Value of the Objective Function: %s\n",
		r.Message, NumFluxes, values, objective)
	return err
}

// formatFloat prints v without exponent for typical flux magnitudes and
// folds negative zero into zero.
func formatFloat(v float64) string {
	if v == 0 {
		v = 0
	}
	return strconv.FormatFloat(v, 'g', -1, 64)
}

// Flux is one named entry of a report.
type Flux struct {
	Name  string  `json:"name" yaml:"name"`
	Value float64 `json:"value" yaml:"value"`
}

// Report is the structured form of a Result.
type Report struct {
	RunID      string      `json:"run_id" yaml:"run_id"`
	Status     string      `json:"status" yaml:"status"`
	Message    string      `json:"message" yaml:"message"`
	Fluxes     []Flux      `json:"fluxes,omitempty" yaml:"fluxes,omitempty"`
	Objective  *float64    `json:"objective,omitempty" yaml:"objective,omitempty"`
	Production *Production `json:"production,omitempty" yaml:"production,omitempty"`
}

// NewReport builds a report for r under a fresh run id.
func NewReport(p Problem, r Result) Report {
	rep := Report{
		RunID:     uuid.NewString(),
		Status:    r.Status.String(),
		Message:   r.Message,
		Objective: r.Objective,
	}
	if r.Values != nil {
		names := p.Names()
		rep.Fluxes = make([]Flux, len(r.Values))
		for i, v := range r.Values {
			name := fmt.Sprintf("X%d", i+1)
			if i < len(names) {
				name = names[i]
			}
			rep.Fluxes[i] = Flux{Name: name, Value: v}
		}
	}
	if prod, ok := r.Production(); ok {
		rep.Production = &prod
	}
	return rep
}

// WriteJSON writes the report as indented JSON.
func WriteJSON(w io.Writer, rep Report) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return errors.Wrap(enc.Encode(rep), "fba: encode json")
}

// WriteYAML writes the report as YAML.
func WriteYAML(w io.Writer, rep Report) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(rep); err != nil {
		return errors.Wrap(err, "fba: encode yaml")
	}
	return errors.Wrap(enc.Close(), "fba: encode yaml")
}
