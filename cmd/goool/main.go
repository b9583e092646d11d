package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"gopkg.in/yaml.v3"

	"github.com/san-kum/goool/internal/color"
	"github.com/san-kum/goool/internal/config"
	"github.com/san-kum/goool/internal/life"
	"github.com/san-kum/goool/internal/render"
	"github.com/san-kum/goool/internal/saver"
	"github.com/san-kum/goool/internal/stats"
	"github.com/san-kum/goool/internal/terminal"
)

// options holds every flag value of one command tree.
type options struct {
	cellType   life.Mode
	delay      uint64
	aliveColor color.Flag
	deadColor  color.Flag
	theme      string
	seed       int64
	configFile string
	frames     int
	// stats
	generations int
	width       int
	height      int
	plotWidth   int
	plotHeight  int
	// config
	savePath string
}

var (
	errorLabel = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#dc1e14"))
	errorText  = lipgloss.NewStyle().Bold(true)
	titleStyle = lipgloss.NewStyle().Bold(true)
)

// Two-letter short flags from the original interface; pflag shorthands are single letters.
var longForms = map[string]string{
	"-ac": "--alive-color",
	"-dc": "--dead-color",
}

// main runs the root command and exits with status 1 on any error.
func main() {
	rootCmd := newRootCmd()
	rootCmd.SetArgs(normalizeArgs(os.Args[1:]))

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, errorLabel.Render("Error:"), errorText.Render(err.Error()))
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	opts := &options{cellType: life.Small}

	rootCmd := &cobra.Command{
		Use:           "goool",
		Short:         "CLI Game of Life screensaver",
		Long:          titleStyle.Render("CLI Game of Life screensaver"),
		Args:          cobra.NoArgs,
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSaver(cmd, opts)
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.VarP(&opts.cellType, "cell-type", "c", "cell size: 'big' (2 characters per cell), 'small' (2 cells per character), 'braille' (8 cells per character)")
	flags.Uint64VarP(&opts.delay, "delay", "d", config.DefaultDelay, "delay between updates in milliseconds")
	flags.Var(&opts.aliveColor, "alive-color", "color of alive cells, -ac (e.g. e7c27d, 8a8)")
	flags.Var(&opts.deadColor, "dead-color", "color of dead cells, -dc (e.g. 182020, 000)")
	flags.StringVar(&opts.theme, "theme", "", "color theme (see 'goool themes')")
	flags.Int64Var(&opts.seed, "seed", 0, "random seed (0 picks one from the clock)")
	flags.StringVar(&opts.configFile, "config", "", "config file path (yaml)")
	flags.SetNormalizeFunc(func(f *pflag.FlagSet, name string) pflag.NormalizedName {
		return pflag.NormalizedName(strings.ReplaceAll(name, "_", "-"))
	})
	rootCmd.Flags().IntVar(&opts.frames, "frames", 0, "stop after this many frames (0 runs forever)")

	themesCmd := &cobra.Command{
		Use:   "themes",
		Short: "list color themes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return listThemes(cmd)
		},
	}

	statsCmd := &cobra.Command{
		Use:   "stats",
		Short: "run generations headless and plot the population",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runStats(cmd, opts)
		},
	}
	statsCmd.Flags().IntVar(&opts.generations, "generations", 500, "number of generations")
	statsCmd.Flags().IntVar(&opts.width, "width", 80, "simulated terminal width")
	statsCmd.Flags().IntVar(&opts.height, "height", 24, "simulated terminal height")
	statsCmd.Flags().IntVar(&opts.plotWidth, "plot-width", 80, "plot width")
	statsCmd.Flags().IntVar(&opts.plotHeight, "plot-height", 10, "plot height")

	configCmd := &cobra.Command{
		Use:   "config",
		Short: "print the resolved configuration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return showConfig(cmd, opts)
		},
	}
	configCmd.Flags().StringVar(&opts.savePath, "save", "", "also write the configuration to this path")

	rootCmd.AddCommand(themesCmd, statsCmd, configCmd)
	return rootCmd
}

func normalizeArgs(args []string) []string {
	out := make([]string, len(args))
	for i, arg := range args {
		name, value, hasValue := strings.Cut(arg, "=")
		if long, ok := longForms[name]; ok {
			if hasValue {
				arg = long + "=" + value
			} else {
				arg = long
			}
		}
		out[i] = arg
	}
	return out
}

// atLeast rejects values below least with an argument error naming the flag.
func atLeast(name string, value, least int) error {
	if value < least {
		return &config.ArgumentError{
			Name:  name,
			Value: strconv.Itoa(value),
			Err:   fmt.Errorf("must be at least %d", least),
		}
	}
	return nil
}

// loadConfig layers defaults, the config file, GOOOL_* variables and finally
// flags that were set explicitly.
func loadConfig(cmd *cobra.Command, opts *options) (*config.Config, error) {
	cfg := config.DefaultConfig()
	if opts.configFile != "" {
		loaded, err := config.Load(opts.configFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loaded
	}
	if err := config.ApplyEnv(cfg); err != nil {
		return nil, err
	}

	flags := cmd.Flags()
	if flags.Changed("cell-type") {
		cfg.CellType = opts.cellType.String()
	}
	if flags.Changed("delay") {
		cfg.Delay = opts.delay
	}
	if flags.Changed("theme") {
		cfg.Theme = opts.theme
	}
	if flags.Changed("alive-color") {
		cfg.AliveColor = opts.aliveColor.String()
	}
	if flags.Changed("dead-color") {
		cfg.DeadColor = opts.deadColor.String()
	}
	if flags.Changed("seed") {
		cfg.Seed = opts.seed
	}
	return cfg, nil
}

func runSaver(cmd *cobra.Command, opts *options) error {
	if err := atLeast("frames", opts.frames, 0); err != nil {
		return err
	}

	cfg, err := loadConfig(cmd, opts)
	if err != nil {
		return err
	}
	settings, err := cfg.Resolve()
	if err != nil {
		return err
	}

	board, err := life.New(settings.Mode, terminal.Stdout(), settings.Seed)
	if err != nil {
		return err
	}
	renderer := render.New(settings.Mode, settings.Colors)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return saver.New(board, renderer, cmd.OutOrStdout()).Run(ctx, saver.Config{
		Delay:  settings.Delay,
		Frames: opts.frames,
	})
}

func listThemes(cmd *cobra.Command) error {
	out := cmd.OutOrStdout()
	sample := "██▀▄⣿⡇⠉ "
	for _, name := range config.ThemeNames() {
		t, _ := config.GetTheme(name)
		swatch := lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Alive.Hex())).
			Background(lipgloss.Color(t.Dead.Hex())).
			Render(sample)
		fmt.Fprintf(out, "  %-10s %s  %s on %s\n", t.Name, swatch, t.Alive.Hex(), t.Dead.Hex())
	}
	return nil
}

func runStats(cmd *cobra.Command, opts *options) error {
	if err := atLeast("generations", opts.generations, 1); err != nil {
		return err
	}
	if err := atLeast("width", opts.width, 0); err != nil {
		return err
	}
	if err := atLeast("height", opts.height, 0); err != nil {
		return err
	}

	cfg, err := loadConfig(cmd, opts)
	if err != nil {
		return err
	}
	settings, err := cfg.Resolve()
	if err != nil {
		return err
	}

	size := terminal.Fixed{Width: opts.width, Height: opts.height}
	board, err := life.New(settings.Mode, size, settings.Seed)
	if err != nil {
		return err
	}

	rec := stats.NewRecorder()
	s := saver.New(board, render.New(settings.Mode, render.Colors{}), io.Discard)
	s.AddObserver(rec)

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "running %d generations on %s (%s cells, seed %d)...\n",
		opts.generations, terminal.Size(size), settings.Mode, settings.Seed)
	if err := s.Run(context.Background(), saver.Config{Frames: opts.generations}); err != nil {
		return err
	}

	fmt.Fprintln(out, rec.Summary())
	fmt.Fprintln(out, rec.Plot(opts.plotWidth, opts.plotHeight))
	return nil
}

func showConfig(cmd *cobra.Command, opts *options) error {
	cfg, err := loadConfig(cmd, opts)
	if err != nil {
		return err
	}
	if _, err := cfg.Resolve(); err != nil {
		return err
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	fmt.Fprint(out, string(data))

	if opts.savePath != "" {
		if err := config.Save(opts.savePath, cfg); err != nil {
			return err
		}
		fmt.Fprintf(out, "saved to %s\n", opts.savePath)
	}
	return nil
}
