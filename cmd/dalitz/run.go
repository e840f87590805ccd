package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/san-kum/dalitz/internal/config"
	"github.com/san-kum/dalitz/internal/mcint"
	"github.com/san-kum/dalitz/internal/model"
	"github.com/san-kum/dalitz/internal/normint"
	"github.com/san-kum/dalitz/internal/storage"
	"github.com/san-kum/dalitz/internal/viz"
	"github.com/spf13/cobra"
)

const catalogFile = "catalog.db"

// resolveConfig layers the default, a preset, a config file and explicitly
// set flags, in that order. Each layer only replaces the keys it sets.
func resolveConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.DefaultConfig()

	if preset != "" {
		p, err := config.Lookup(preset)
		if err != nil {
			return nil, err
		}
		cfg = p
	}

	if configFile != "" {
		c, err := config.LoadOnto(configFile, cfg)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = c
	}

	flags := cmd.Flags()
	if flags.Changed("channel") {
		cfg.Channel = channel
		cfg.Masses = nil
	}
	if flags.Changed("resonance") {
		cfg.Resonances = make([]config.ResonanceConfig, len(resonances))
		for i, name := range resonances {
			cfg.Resonances[i] = config.ResonanceConfig{Name: strings.TrimSpace(name)}
		}
	}
	if flags.Changed("symmetrize") {
		cfg.Symmetrize = symmetrize
	}
	if flags.Changed("bounds") {
		cfg.Bounds = make([]mcint.Interval, len(bounds))
		for i, s := range bounds {
			iv, err := mcint.ParseInterval(s)
			if err != nil {
				return nil, fmt.Errorf("--bounds: %w", err)
			}
			cfg.Bounds[i] = iv
		}
	}
	if flags.Changed("samples") {
		cfg.Samples = samples
	}
	if flags.Changed("seed") {
		cfg.Seed = seed
	}
	if flags.Changed("workers") {
		cfg.Workers = workers
	}
	if flags.Changed("name") {
		cfg.Name = runName
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func channelLabel(cfg *config.Config) string {
	if cfg.Masses != nil {
		return "custom"
	}
	return cfg.Channel
}

func resonanceNames(m *model.Model) []string {
	res := m.Resonances()
	names := make([]string, len(res))
	for i, p := range res {
		names[i] = p.Name
	}
	return names
}

// openStore returns the run store with its catalog attached. The caller
// closes the catalog.
func openStore() (*storage.Store, *storage.Catalog, error) {
	st := storage.New(dataDir)
	if err := st.Init(); err != nil {
		return nil, nil, err
	}
	cat, err := storage.OpenCatalog(filepath.Join(dataDir, catalogFile))
	if err != nil {
		return nil, nil, err
	}
	st.SetCatalog(cat)
	return st, cat, nil
}

// logProgress reports every tenth of the work at debug level.
func logProgress() func(done, total int) {
	next := 0.1
	return func(done, total int) {
		frac := float64(done) / float64(total)
		if frac >= next || done == total {
			slog.Debug("integrating", "done", done, "total", total)
			for next <= frac {
				next += 0.1
			}
		}
	}
}

func runIntegrate(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}

	mdl, err := cfg.Build(model.NewRegistry())
	if err != nil {
		return err
	}
	b := cfg.IntegrationBounds()
	if b == nil {
		b = mdl.Bounds()
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	it := &mcint.Integrator{Workers: cfg.Workers, Seed: cfg.Seed}
	names := resonanceNames(mdl)
	slog.Info("integrating",
		"channel", channelLabel(cfg),
		"resonances", strings.Join(names, ","),
		"samples", cfg.Samples,
		"seed", cfg.Seed,
		"bounds", fmt.Sprint(b),
	)

	var value, errs *normint.Matrix
	job := func(ctx context.Context, progress func(done, total int)) error {
		it.Progress = progress
		var err error
		value, errs, err = mdl.Integrate(ctx, it, b, cfg.Samples)
		return err
	}

	start := time.Now()
	if useTUI {
		title := fmt.Sprintf("%s: %s", channelLabel(cfg), strings.Join(names, " + "))
		err = viz.Run(ctx, title, viz.GetTheme(themeName), job)
	} else {
		err = job(ctx, logProgress())
	}
	if err != nil {
		return err
	}
	elapsed := time.Since(start)

	norm, err := mdl.Norm(mdl.UnitCoefficients(), value)
	if err != nil {
		return err
	}
	slog.Info("integrated", "elapsed", elapsed.Round(time.Millisecond), "norm", norm, "hermiticity", value.HermitianDeviation())

	fmt.Print(viz.RenderMatrix(names, value, errs, viz.GetTheme(themeName)))
	fmt.Printf("\nnorm: %.6e\n", norm)

	if outputFile != "" {
		if err := writeFile(outputFile, func(w io.Writer) error { return normint.FormatLiteral(w, value) }); err != nil {
			return err
		}
		slog.Info("wrote matrix", "path", outputFile)
	}

	if noSave {
		return nil
	}
	st, cat, err := openStore()
	if err != nil {
		return err
	}
	defer cat.Close()

	runID, err := st.Save(storage.RunMetadata{
		Name:       cfg.Name,
		Channel:    channelLabel(cfg),
		Resonances: names,
		Symmetrize: cfg.Symmetrize,
		Seed:       cfg.Seed,
		Samples:    cfg.Samples,
		Bounds:     b,
		Elapsed:    elapsed.Seconds(),
	}, value, errs)
	if err != nil {
		return err
	}
	fmt.Printf("run id: %s\n", runID)
	return nil
}

func listRuns(cmd *cobra.Command, args []string) error {
	_, cat, err := openStore()
	if err != nil {
		return err
	}
	defer cat.Close()

	runs, err := cat.List(cmd.Context(), listChannel)
	if err != nil {
		return err
	}
	if len(runs) == 0 {
		fmt.Println("no runs found")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tNAME\tCHANNEL\tTIME\tSAMPLES\tSEED\tRESONANCES")
	for _, run := range runs {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%d\t%d\t%s\n",
			run.ID,
			run.Name,
			run.Channel,
			run.Timestamp.Local().Format("2006-01-02 15:04:05"),
			run.Samples,
			run.Seed,
			strings.Join(run.Resonances, ","),
		)
	}
	return w.Flush()
}

func showRun(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	meta, err := st.Load(args[0])
	if err != nil {
		return err
	}
	value, errs, err := st.LoadMatrix(args[0])
	if err != nil {
		return err
	}

	fmt.Printf("run: %s\n", meta.ID)
	if meta.Name != "" {
		fmt.Printf("name: %s\n", meta.Name)
	}
	fmt.Printf("channel: %s (symmetrized: %v)\n", meta.Channel, meta.Symmetrize)
	fmt.Printf("samples: %d per pass, seed %d, %.2fs\n", meta.Samples, meta.Seed, meta.Elapsed)
	fmt.Printf("bounds: %v\n\n", meta.Bounds)
	fmt.Print(viz.RenderMatrix(meta.Resonances, value, errs, viz.GetTheme(themeName)))
	return nil
}

type matrixJSON struct {
	Run   string      `json:"run"`
	Names []string    `json:"resonances"`
	Re    [][]float64 `json:"re"`
	Im    [][]float64 `json:"im"`
	Error [][]float64 `json:"error"`
}

func exportRun(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	meta, err := st.Load(args[0])
	if err != nil {
		return err
	}
	value, errs, err := st.LoadMatrix(args[0])
	if err != nil {
		return err
	}

	var write func(w io.Writer) error
	switch format {
	case "literal":
		write = func(w io.Writer) error { return normint.FormatLiteral(w, value) }
	case "csv":
		write = func(w io.Writer) error { return normint.WriteCSV(w, value) }
	case "json":
		write = func(w io.Writer) error {
			enc := json.NewEncoder(w)
			enc.SetIndent("", "  ")
			return enc.Encode(matrixJSON{
				Run:   meta.ID,
				Names: meta.Resonances,
				Re:    value.Real(),
				Im:    value.Imag(),
				Error: errs.Real(),
			})
		}
	default:
		return fmt.Errorf("unknown format %q (literal, csv, json)", format)
	}

	if outputFile == "" {
		return write(os.Stdout)
	}
	if err := writeFile(outputFile, write); err != nil {
		return err
	}
	fmt.Printf("exported %s to %s\n", meta.ID, outputFile)
	return nil
}

func deleteRun(cmd *cobra.Command, args []string) error {
	st, cat, err := openStore()
	if err != nil {
		return err
	}
	defer cat.Close()

	if err := st.Delete(args[0]); err != nil {
		return err
	}
	fmt.Printf("deleted %s\n", args[0])
	return nil
}

func writeFile(path string, write func(io.Writer) error) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := write(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
