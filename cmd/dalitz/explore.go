package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"math"
	"math/cmplx"
	"os"
	"os/signal"
	"strconv"
	"text/tabwriter"

	"github.com/san-kum/dalitz/internal/config"
	"github.com/san-kum/dalitz/internal/export"
	"github.com/san-kum/dalitz/internal/kinematics"
	"github.com/san-kum/dalitz/internal/model"
	"github.com/san-kum/dalitz/internal/toy"
	"github.com/san-kum/dalitz/internal/viz"
	"github.com/spf13/cobra"
)

const maxWeightScan = 20000

func runAmplitude(cmd *cobra.Command, args []string) error {
	var p kinematics.Point
	var err error
	if p.M2AB, err = strconv.ParseFloat(args[0], 64); err != nil {
		return fmt.Errorf("m2_ab: %w", err)
	}
	if p.M2BC, err = strconv.ParseFloat(args[1], 64); err != nil {
		return fmt.Errorf("m2_bc: %w", err)
	}

	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}
	mdl, err := cfg.Build(model.NewRegistry())
	if err != nil {
		return err
	}

	if !p.Contains(mdl.Masses()) {
		fmt.Printf("(%g, %g) is outside the Dalitz plot; every amplitude is zero\n", p.M2AB, p.M2BC)
		return nil
	}

	amps := make([]complex128, mdl.NumResonances())
	if err := mdl.Amplitudes(p, amps); err != nil {
		return err
	}

	fmt.Printf("m2_ab=%g m2_bc=%g m2_ac=%g\n\n", p.M2AB, p.M2BC, p.M2AC(mdl.Masses()))
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "RESONANCE\tRE\tIM\t|A|\tPHASE(deg)")
	for i, r := range mdl.Resonances() {
		a := amps[i]
		fmt.Fprintf(w, "%s\t%+.6e\t%+.6e\t%.6e\t%+.2f\n", r.Name, real(a), imag(a), cmplx.Abs(a), cmplx.Phase(a)*180/math.Pi)
	}
	if err := w.Flush(); err != nil {
		return err
	}

	intensity, err := mdl.Intensity(p, mdl.UnitCoefficients())
	if err != nil {
		return err
	}
	fmt.Printf("\nintensity: %.6e\n", intensity)
	return nil
}

// sampleEvents draws n toy events from the configured model, uniform or
// distributed as its intensity.
func sampleEvents(ctx context.Context, mdl *model.Model, s uint64, n int, byIntensity bool) ([]kinematics.Point, error) {
	gen, err := toy.New(mdl.Masses(), s)
	if err != nil {
		return nil, err
	}
	if !byIntensity {
		return gen.Uniform(n)
	}

	unit := mdl.UnitCoefficients()
	weight := func(p kinematics.Point) (float64, error) { return mdl.Intensity(p, unit) }
	wmax, err := gen.MaxWeight(maxWeightScan, weight, 1.5)
	if err != nil {
		return nil, err
	}
	if wmax == 0 {
		return nil, fmt.Errorf("model intensity vanishes on %d scanned points", maxWeightScan)
	}

	tries := gen.Tries
	points, err := gen.Weighted(ctx, n, weight, wmax)
	if err != nil {
		return nil, err
	}
	slog.Debug("generated", "events", len(points), "tries", gen.Tries-tries, "wmax", wmax)
	return points, nil
}

func runGenerate(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}
	mdl, err := cfg.Build(model.NewRegistry())
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	points, err := sampleEvents(ctx, mdl, cfg.Seed, events, weighted)
	if err != nil {
		return err
	}

	write := func(w io.Writer) error { return toy.WriteCSV(w, points, mdl.Masses(), momenta) }
	if outputFile == "" {
		return write(os.Stdout)
	}
	if err := writeFile(outputFile, write); err != nil {
		return err
	}
	slog.Info("wrote events", "path", outputFile, "events", len(points))
	return nil
}

func runPlot(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}
	mdl, err := cfg.Build(model.NewRegistry())
	if err != nil {
		return err
	}

	points, err := sampleEvents(cmd.Context(), mdl, cfg.Seed, plotEvents, plotWeighted)
	if err != nil {
		return err
	}

	s := viz.NewStyles(viz.GetTheme(themeName))
	canvas := viz.DalitzPlot(mdl.Masses(), points, plotWidth, plotHeight)
	fmt.Println(s.Title.Render(fmt.Sprintf("%s: %d events", channelLabel(cfg), len(points))))
	fmt.Print(s.Value.Render(canvas.String()))
	fmt.Println(s.Muted.Render("m2_ab →, m2_bc ↑"))

	if plotSVG != "" {
		err := writeFile(plotSVG, func(w io.Writer) error {
			return export.DalitzSVG(w, mdl.Masses(), points, 8*plotWidth, 8*plotHeight)
		})
		if err != nil {
			return err
		}
		slog.Info("wrote svg", "path", plotSVG)
	}
	return nil
}

func runLineshape(cmd *cobra.Command, args []string) error {
	reg := model.NewRegistry()
	p, err := reg.GetResonance(args[0])
	if err != nil {
		return fmt.Errorf("%w (available: %v)", err, reg.ListResonances())
	}
	m, err := reg.GetChannel(chartChannel)
	if err != nil {
		return err
	}

	chart, err := viz.PlotLineshape(p, m, chartWidth, chartHeight)
	if err != nil {
		return err
	}
	fmt.Println(chart)
	return nil
}

func listPresets(cmd *cobra.Command, args []string) error {
	channels := config.ListChannels()
	if len(args) > 0 {
		channels = args
	}
	for _, ch := range channels {
		presets := config.ListPresets(ch)
		if len(presets) == 0 {
			fmt.Printf("no presets for channel: %s\n", ch)
			continue
		}
		fmt.Printf("presets for %s:\n", ch)
		for _, p := range presets {
			fmt.Printf("  %s/%s\n", ch, p)
		}
	}
	return nil
}

func listResonances(cmd *cobra.Command, args []string) error {
	reg := model.NewRegistry()

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "NAME\tSHAPE\tSPIN\tMASS\tWIDTH")
	for _, name := range reg.ListResonances() {
		p, err := reg.GetResonance(name)
		if err != nil {
			return err
		}
		fmt.Fprintf(w, "%s\t%s\t%d\t%.4f\t%.4f\n", p.Name, p.Shape, p.Spin, p.Mass, p.Width)
	}
	return w.Flush()
}
