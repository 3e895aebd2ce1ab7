package main

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"os/signal"
	"strings"
	"text/tabwriter"

	"github.com/mattn/go-isatty"
	"github.com/sirilv/termfolio/internal/commands"
	"github.com/sirilv/termfolio/internal/config"
	"github.com/sirilv/termfolio/internal/console"
	"github.com/sirilv/termfolio/internal/content"
	"github.com/sirilv/termfolio/internal/export"
	"github.com/sirilv/termfolio/internal/logging"
	"github.com/sirilv/termfolio/internal/theme"
	"github.com/sirilv/termfolio/internal/ui"
	"github.com/spf13/cobra"
)

const appName = "termfolio"

var (
	configFile  string
	profileFile string
	themeName   string
	rainPreset  string
	noRain      bool
	logLevel    string
	svgFile     string
)

// app is what every subcommand runs against once flags are resolved.
type app struct {
	cfg      *config.Config
	profile  *content.Profile
	registry *console.Registry
}

func main() {
	rootCmd := &cobra.Command{
		Use:           appName,
		Short:         "interactive terminal portfolio",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			logging.Sync()
		},
		RunE: runInteractive,
	}

	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "config file (default $XDG_CONFIG_HOME/termfolio/config.yaml)")
	rootCmd.PersistentFlags().StringVar(&profileFile, "profile", "", "profile yaml replacing the built-in content")
	rootCmd.PersistentFlags().StringVar(&themeName, "theme", "", "dark or light")
	rootCmd.PersistentFlags().StringVar(&rainPreset, "rain-preset", "", "background animation preset")
	rootCmd.PersistentFlags().BoolVar(&noRain, "no-rain", false, "disable the background animation")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "debug, info, warn or error")

	execCmd := newExecCmd()

	commandsCmd := &cobra.Command{
		Use:   "commands",
		Short: "list the available commands",
		RunE:  listCommands,
	}

	configCmd := &cobra.Command{
		Use:   "config",
		Short: "manage the config file",
	}
	configInitCmd := &cobra.Command{
		Use:   "init [path]",
		Short: "write the default config",
		Args:  cobra.MaximumNArgs(1),
		RunE:  initConfig,
	}
	configCmd.AddCommand(configInitCmd)

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list background animation presets",
		Run: func(cmd *cobra.Command, args []string) {
			for _, name := range config.ListPresets() {
				p, _ := config.GetPreset(name)
				fmt.Printf("  %-8s speed %.2f  fade %.2f  reset %.3f\n", name, p.Speed, p.Fade, p.ResetChance)
			}
		},
	}

	rootCmd.AddCommand(execCmd, commandsCmd, configCmd, presetsCmd)

	if err := rootCmd.Execute(); err != nil {
		if !errors.Is(err, console.ErrUnknownCommand) {
			fmt.Fprintf(os.Stderr, "%s: %v\n", appName, err)
		}
		os.Exit(1)
	}
}

// newExecCmd stops flag parsing at the command name so arguments like
// "sudo rm -rf" reach the console untouched.
func newExecCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "exec [--svg file] <command> [args...]",
		Short: "run one command and print its output",
		Args:  cobra.MinimumNArgs(1),
		RunE:  runExec,
	}
	cmd.Flags().StringVar(&svgFile, "svg", "", "write the output as an SVG screenshot instead")
	cmd.Flags().SetInterspersed(false)
	return cmd
}

func setup() (*app, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, err
	}
	if themeName != "" {
		cfg.Theme = strings.ToLower(themeName)
	}
	if rainPreset != "" {
		if err := cfg.ApplyPreset(rainPreset); err != nil {
			return nil, err
		}
	}
	if noRain {
		cfg.Rain.Enabled = false
	}
	if logLevel != "" {
		cfg.Log.Level = logLevel
	}
	if profileFile != "" {
		cfg.Profile = profileFile
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	path := logging.Init(appName, logging.Options{Level: cfg.Log.Level, File: cfg.Log.File})
	log := logging.L()
	log.Debugw("starting", "log", path, "theme", cfg.Theme, "rain", cfg.Rain.Enabled)

	profile := content.Default()
	if cfg.Profile != "" {
		if profile, err = content.Load(cfg.Profile); err != nil {
			return nil, err
		}
		log.Infow("profile loaded", "path", cfg.Profile)
	}

	reg, err := commands.Builtin(profile, cfg.CommandOptions())
	if err != nil {
		return nil, err
	}
	return &app{cfg: cfg, profile: profile, registry: reg}, nil
}

// loadConfig reads --config, or the default path when it exists.
func loadConfig() (*config.Config, error) {
	if configFile != "" {
		return config.Load(configFile)
	}
	path, err := config.DefaultPath()
	if err != nil {
		return config.DefaultConfig(), nil
	}
	cfg, err := config.Load(path)
	if errors.Is(err, fs.ErrNotExist) {
		return config.DefaultConfig(), nil
	}
	return cfg, err
}

func (a *app) prompt() console.Prompt {
	id := a.profile.Identity
	return console.Prompt{User: id.User, Host: id.Host, Path: id.Path}
}

func (a *app) opener() console.Opener {
	if !a.cfg.OpenLinks {
		return nil
	}
	return commands.SystemOpener{}
}

func runInteractive(cmd *cobra.Command, args []string) error {
	a, err := setup()
	if err != nil {
		return err
	}
	if !isTerminal(os.Stdout) {
		return errors.New("interactive mode needs a terminal; use exec for scripted output")
	}

	cfg := a.cfg
	return ui.Run(ui.Options{
		Registry:       a.registry,
		Prompt:         a.prompt(),
		Title:          a.profile.Identity.Title,
		Welcome:        commands.Welcome(a.profile, cfg.CommandOptions()),
		Mode:           cfg.Mode(),
		Opener:         a.opener(),
		Rain:           cfg.Rain.Engine(),
		RainEnabled:    cfg.Rain.Enabled,
		Frame:          cfg.Rain.Frame,
		VisibleOpacity: cfg.Rain.VisibleOpacity,
		HiddenOpacity:  cfg.Rain.HiddenOpacity,
		EggDuration:    cfg.EasterEgg.Duration,
		EggPeriod:      cfg.EasterEgg.Period,
	})
}

func runExec(cmd *cobra.Command, args []string) error {
	a, err := setup()
	if err != nil {
		return err
	}

	raw := strings.Join(args, " ")
	if svgFile != "" {
		return writeSVG(a, raw)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	tty := isTerminal(os.Stdout)
	opts := console.ExecOptions{
		Typewriter: tty,
		Terminal:   tty,
		Opener:     a.opener(),
		Mode:       a.cfg.Mode(),
	}
	if tty {
		opts.Renderer = console.NewRenderer(theme.For(a.cfg.Mode()))
	}
	return console.Exec(ctx, a.registry, raw, cmd.OutOrStdout(), opts)
}

// writeSVG renders the prompt echo and the command's final output, skipping
// delays and side effects.
func writeSVG(a *app, raw string) error {
	mode := a.cfg.Mode()
	actions, dispatchErr := a.registry.Dispatch(&console.Context{Registry: a.registry, Mode: mode}, raw)
	for _, act := range actions {
		if _, ok := act.(console.ToggleTheme); ok {
			mode = mode.Toggle()
		}
	}
	lines := append([]console.Line{console.EchoLine(a.prompt(), raw)}, console.Collect(actions)...)

	f, err := os.Create(svgFile)
	if err != nil {
		return err
	}
	if err := export.TranscriptSVG(f, lines, theme.For(mode), a.profile.Identity.Title); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}
	logging.L().Infow("svg written", "path", svgFile, "lines", len(lines))
	return dispatchErr
}

func listCommands(cmd *cobra.Command, args []string) error {
	a, err := setup()
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "COMMAND\tDESCRIPTION\tHIDDEN")
	for _, c := range a.registry.Commands() {
		name := c.Name
		if c.Usage != "" {
			name = c.Usage
		}
		hidden := ""
		if c.Hidden {
			hidden = "yes"
		}
		fmt.Fprintf(w, "%s\t%s\t%s\n", name, c.Description, hidden)
	}
	return w.Flush()
}

func initConfig(cmd *cobra.Command, args []string) error {
	path := configFile
	if len(args) > 0 {
		path = args[0]
	}
	if path == "" {
		var err error
		if path, err = config.DefaultPath(); err != nil {
			return err
		}
	}
	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("config: %s already exists", path)
	}
	if err := config.Save(path, config.DefaultConfig()); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", path)
	return nil
}

func isTerminal(f *os.File) bool {
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
