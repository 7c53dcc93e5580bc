package form

import (
	"bufio"
	"io"
	"strings"

	"go.uber.org/zap"

	"physprop/internal/domain"
	"physprop/internal/units"
	"physprop/internal/validate"
)

// Options configures a Form.
type Options struct {
	In        io.Reader
	Out       io.Writer
	VaporUnit string // vapor-pressure display unit, default mmHg
}

// Form drives the interactive request/response cycle: read the two inputs
// (plus optional pressure), validate, predict, render, repeat.
type Form struct {
	in        *bufio.Scanner
	renderer  *Renderer
	validator *validate.Validator
	predictor domain.Predictor
	logger    *zap.Logger
}

func New(v *validate.Validator, p domain.Predictor, logger *zap.Logger, opts Options) *Form {
	return &Form{
		in:        bufio.NewScanner(opts.In),
		renderer:  NewRenderer(opts.Out, opts.VaporUnit),
		validator: v,
		predictor: p,
		logger:    logger,
	}
}

// Run loops until the user quits or input ends. Validation and prediction
// failures are rendered and the loop continues; only I/O ends it.
func (f *Form) Run() error {
	f.renderer.Title()
	f.renderer.Notice(
		"Enter q to quit. Pressure is optional; append a unit to convert",
		"(accepted: "+joinUnits(units.PressureUnits)+", default bar.A).",
	)

	for {
		in, ok := f.readInput()
		if !ok {
			return f.in.Err()
		}

		req, err := f.validator.Request(in)
		if err != nil {
			f.logger.Debug("rejected input", zap.Error(err))
			f.renderer.Error(err)
			continue
		}

		res, err := f.predictor.Predict(req)
		if err != nil {
			f.logger.Warn("prediction failed", zap.Error(err))
			f.renderer.Error(err)
			continue
		}
		if err := f.renderer.Result(res); err != nil {
			f.renderer.Error(err)
		}
	}
}

// readInput collects one submission. The second return is false when the
// user quit or input ended.
func (f *Form) readInput() (validate.Input, bool) {
	var in validate.Input
	var ok bool

	if in.Solution, ok = f.prompt("Solution", strings.Join(domain.Solutions, "/")+"/all"); !ok {
		return in, false
	}
	if in.Concentration, ok = f.prompt("Concentration", "%"); !ok {
		return in, false
	}
	if in.Temperature, ok = f.prompt("Temperature", "°C"); !ok {
		return in, false
	}
	pressure, ok := f.prompt("Pressure", "optional")
	if !ok {
		return in, false
	}
	in.Pressure, in.PressureUnit = splitPressure(pressure)
	return in, true
}

// prompt reads one line; false means quit or EOF.
func (f *Form) prompt(label, hint string) (string, bool) {
	f.renderer.Prompt(label, hint)
	if !f.in.Scan() {
		return "", false
	}
	line := strings.TrimSpace(f.in.Text())
	switch strings.ToLower(line) {
	case "q", "quit", "exit":
		return "", false
	}
	return line, true
}

// splitPressure splits "250 kPa.A" into value and unit; a bare number keeps
// an empty unit (bar.A by convention).
func splitPressure(raw string) (value, unit string) {
	fields := strings.Fields(raw)
	switch len(fields) {
	case 0:
		return "", ""
	case 1:
		return fields[0], ""
	default:
		return fields[0], strings.Join(fields[1:], "")
	}
}
