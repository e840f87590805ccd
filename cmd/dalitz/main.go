package main

import (
	"fmt"
	"os"

	"github.com/san-kum/dalitz/internal/logging"
	"github.com/san-kum/dalitz/internal/viz"
	"github.com/spf13/cobra"
)

var (
	dataDir   string
	logLevel  string
	noColor   bool
	themeName string

	configFile string
	preset     string
	channel    string
	resonances []string
	symmetrize bool
	bounds     []string
	samples    int
	seed       uint64
	workers    int

	useTUI     bool
	noSave     bool
	runName    string
	outputFile string
	format     string

	events   int
	weighted bool
	momenta  bool

	listChannel string

	plotEvents   int
	plotWeighted bool
	plotWidth    int
	plotHeight   int
	plotSVG      string

	chartChannel string
	chartWidth   int
	chartHeight  int
)

// main registers the dalitz commands and exits with status 1 when the
// selected command fails.
func main() {
	rootCmd := &cobra.Command{
		Use:           "dalitz",
		Short:         "Dalitz-plot amplitudes and Monte Carlo normalization integrals",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			level, err := logging.ParseLevel(logLevel)
			if err != nil {
				return err
			}
			logging.Setup(os.Stderr, level, noColor)
			return nil
		},
	}

	pf := rootCmd.PersistentFlags()
	pf.StringVar(&dataDir, "data", ".dalitz", "data directory")
	pf.StringVar(&logLevel, "log-level", "info", "log level (debug, info, warn, error)")
	pf.BoolVar(&noColor, "no-color", false, "disable colored log output")
	pf.StringVar(&themeName, "theme", viz.ThemeDefault.Name, fmt.Sprintf("terminal theme %v", viz.ThemeNames()))

	integrateCmd := &cobra.Command{
		Use:   "integrate",
		Short: "compute the normalization integral of a model",
		Args:  cobra.NoArgs,
		RunE:  runIntegrate,
	}
	modelFlags(integrateCmd)
	integrateCmd.Flags().StringArrayVar(&bounds, "bounds", nil, "integration interval lo,hi (repeat once per variable)")
	integrateCmd.Flags().IntVar(&samples, "samples", 0, "samples per pass")
	integrateCmd.Flags().Uint64Var(&seed, "seed", 0, "random seed")
	integrateCmd.Flags().IntVar(&workers, "workers", 0, "worker goroutines (0 uses every CPU)")
	integrateCmd.Flags().BoolVar(&useTUI, "tui", false, "show a live progress view")
	integrateCmd.Flags().BoolVar(&noSave, "no-save", false, "do not store the run")
	integrateCmd.Flags().StringVar(&runName, "name", "", "run name")
	integrateCmd.Flags().StringVarP(&outputFile, "output", "o", "", "also write the matrix literal to this file")

	amplitudeCmd := &cobra.Command{
		Use:   "amplitude [m2_ab] [m2_bc]",
		Short: "evaluate the resonance amplitudes at one point",
		Args:  cobra.ExactArgs(2),
		RunE:  runAmplitude,
	}
	modelFlags(amplitudeCmd)

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list stored runs",
		Args:  cobra.NoArgs,
		RunE:  listRuns,
	}
	listCmd.Flags().StringVar(&listChannel, "channel", "", "only runs of this channel")

	showCmd := &cobra.Command{
		Use:   "show [run_id]",
		Short: "show a stored matrix",
		Args:  cobra.ExactArgs(1),
		RunE:  showRun,
	}

	exportCmd := &cobra.Command{
		Use:   "export [run_id]",
		Short: "export a stored matrix",
		Args:  cobra.ExactArgs(1),
		RunE:  exportRun,
	}
	exportCmd.Flags().StringVar(&format, "format", "literal", "output format (literal, csv, json)")
	exportCmd.Flags().StringVarP(&outputFile, "output", "o", "", "output file (default stdout)")

	deleteCmd := &cobra.Command{
		Use:   "delete [run_id]",
		Short: "delete a stored run",
		Args:  cobra.ExactArgs(1),
		RunE:  deleteRun,
	}

	generateCmd := &cobra.Command{
		Use:   "generate",
		Short: "generate toy events as CSV",
		Args:  cobra.NoArgs,
		RunE:  runGenerate,
	}
	modelFlags(generateCmd)
	generateCmd.Flags().IntVar(&events, "events", 1000, "number of events")
	generateCmd.Flags().Uint64Var(&seed, "seed", 0, "random seed")
	generateCmd.Flags().BoolVar(&weighted, "weighted", false, "distribute events as the model intensity")
	generateCmd.Flags().BoolVar(&momenta, "momenta", false, "include daughter four-momenta")
	generateCmd.Flags().StringVarP(&outputFile, "output", "o", "", "output file (default stdout)")

	plotCmd := &cobra.Command{
		Use:   "plot",
		Short: "draw toy events on the Dalitz plot",
		Args:  cobra.NoArgs,
		RunE:  runPlot,
	}
	modelFlags(plotCmd)
	plotCmd.Flags().IntVar(&plotEvents, "events", 2000, "number of events")
	plotCmd.Flags().Uint64Var(&seed, "seed", 0, "random seed")
	plotCmd.Flags().BoolVar(&plotWeighted, "weighted", true, "distribute events as the model intensity")
	plotCmd.Flags().IntVar(&plotWidth, "width", 60, "canvas width in cells")
	plotCmd.Flags().IntVar(&plotHeight, "height", 30, "canvas height in cells")
	plotCmd.Flags().StringVar(&plotSVG, "svg", "", "also write the plot as SVG to this file")

	lineshapeCmd := &cobra.Command{
		Use:   "lineshape [resonance]",
		Short: "plot |A|² of one resonance along m2_ab",
		Args:  cobra.ExactArgs(1),
		RunE:  runLineshape,
	}
	lineshapeCmd.Flags().StringVar(&chartChannel, "channel", "d3pi", "decay channel")
	lineshapeCmd.Flags().IntVar(&chartWidth, "width", 80, "chart width")
	lineshapeCmd.Flags().IntVar(&chartHeight, "height", 15, "chart height")

	presetsCmd := &cobra.Command{
		Use:   "presets [channel]",
		Short: "list configuration presets",
		Args:  cobra.MaximumNArgs(1),
		RunE:  listPresets,
	}

	resonancesCmd := &cobra.Command{
		Use:   "resonances",
		Short: "list catalog resonances",
		Args:  cobra.NoArgs,
		RunE:  listResonances,
	}

	rootCmd.AddCommand(integrateCmd, amplitudeCmd, listCmd, showCmd, exportCmd, deleteCmd,
		generateCmd, plotCmd, lineshapeCmd, presetsCmd, resonancesCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

// modelFlags registers the flags that select and override a model.
func modelFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&configFile, "config", "", "config file path (yaml)")
	cmd.Flags().StringVar(&preset, "preset", "", "preset as channel/name")
	cmd.Flags().StringVar(&channel, "channel", "", "decay channel")
	cmd.Flags().StringSliceVarP(&resonances, "resonance", "r", nil, "resonance names")
	cmd.Flags().BoolVar(&symmetrize, "symmetrize", false, "symmetrize over a <-> c")
}
