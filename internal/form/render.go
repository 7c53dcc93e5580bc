package form

import (
	"fmt"
	"io"
	"strings"

	"github.com/muesli/termenv"

	"physprop/internal/domain"
	"physprop/internal/units"
)

const rule = "========================================"

// Renderer writes results and errors to the terminal, colored when the
// output supports it.
type Renderer struct {
	out       *termenv.Output
	vaporUnit string
}

// NewRenderer wraps w. vaporUnit selects the vapor-pressure display unit;
// empty means mmHg.
func NewRenderer(w io.Writer, vaporUnit string) *Renderer {
	return &Renderer{out: termenv.NewOutput(w), vaporUnit: vaporUnit}
}

// Title prints the form heading.
func (r *Renderer) Title() {
	fmt.Fprintln(r.out, r.out.String("Solution property predictor").Bold())
	fmt.Fprintln(r.out)
}

// Result renders one row per predicted target plus any skipped targets.
func (r *Renderer) Result(res domain.PredictionResult) error {
	header := "Predictions:"
	if len(res.Predictions) == 0 {
		header = "No predictions for these inputs."
	}
	fmt.Fprintln(r.out)
	fmt.Fprintln(r.out, r.out.String(header).Bold())
	fmt.Fprintln(r.out, rule)

	for _, p := range res.Predictions {
		if units.IsVaporPressure(p.Target) {
			if err := r.vaporRow(p); err != nil {
				return err
			}
			continue
		}
		r.row(p.Label, p.Value, p.Unit)
	}
	for _, sk := range res.Skipped {
		line := fmt.Sprintf("skipped %s (%s)", sk.Target, sk.Reason)
		fmt.Fprintln(r.out, r.out.String(line).Faint())
	}

	fmt.Fprintln(r.out, rule)
	return nil
}

// Error renders a failure message from whichever stage failed.
func (r *Renderer) Error(err error) {
	msg := "error: " + err.Error()
	fmt.Fprintln(r.out, r.out.String(msg).Foreground(termenv.ANSIRed))
}

func (r *Renderer) row(label string, value float64, unit string) {
	if unit == "" {
		fmt.Fprintf(r.out, "%-18s: %8.4f\n", label, value)
		return
	}
	fmt.Fprintf(r.out, "%-18s: %8.4f %s\n", label, value, unit)
}

// vaporRow converts the mmHg prediction to the selected unit and, when that
// unit is not mmHg itself, shows two common units alongside for reference.
func (r *Renderer) vaporRow(p domain.Prediction) error {
	unit := r.vaporUnit
	if unit == "" {
		unit = "mmHg"
	}
	converted, err := units.VaporFromMMHg(p.Value, unit)
	if err != nil {
		return err
	}
	r.row(p.Label, converted, unit)

	if unit == "mmHg" {
		return nil
	}
	shown := 0
	for _, ref := range []string{"kPa", "bar", "atm", "psi"} {
		if ref == unit || shown == 2 {
			continue
		}
		v, err := units.VaporFromMMHg(p.Value, ref)
		if err != nil {
			return err
		}
		fmt.Fprintf(r.out, "%-18s  (%8.4f %s)\n", "", v, ref)
		shown++
	}
	return nil
}

// Prompt writes an input prompt without a trailing newline.
func (r *Renderer) Prompt(label, hint string) {
	if hint != "" {
		fmt.Fprintf(r.out, "%s %s: ", label, r.out.String(hint).Faint())
		return
	}
	fmt.Fprintf(r.out, "%s: ", label)
}

// Notice prints a dim informational line.
func (r *Renderer) Notice(lines ...string) {
	for _, l := range lines {
		fmt.Fprintln(r.out, r.out.String(l).Faint())
	}
}

// joinUnits formats a unit list for prompt hints.
func joinUnits(us []string) string {
	return strings.Join(us, "/")
}
