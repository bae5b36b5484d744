package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"hypr-raise/internal/launch"
	"hypr-raise/internal/match"
	"hypr-raise/internal/raise"
	"hypr-raise/internal/rofi"
	"hypr-raise/internal/wm"
	"hypr-raise/pkg/config"
	"hypr-raise/pkg/logger"
	"hypr-raise/pkg/notify"
)

var (
	version = "dev"
	commit  = "unknown"
)

type options struct {
	class      string
	launch     string
	matches    []string
	preset     string
	configPath string
	backend    string
	pick       bool
	dryRun     bool
	notify     bool
	debug      bool
}

func newRootCmd() *cobra.Command {
	opts := &options{}

	cmd := &cobra.Command{
		Use:   "raise",
		Short: "Raise window if it exists, otherwise launch new window",
		Long: `raise focuses a window matching the given criteria. If the focused window
already matches, the next matching window is focused instead, wrapping around
after the last one. When no window matches, the launch command is started.

Matchers take the form field[:method]=pattern:

  fields:  class (c), initialClass (initial-class), title,
           initialTitle (initial-title), tag, xdgTag (xdg-tag, xdgtag)
  methods: equals (eq, default), contains (substr), prefix (starts-with),
           suffix (ends-with), regex (re)

All matchers must match. Examples:

  raise -c firefox -e firefox
  raise -m 'title:contains=YouTube' -m 'class=firefox' -e 'firefox youtube.com'
  raise -m 'initialTitle:re=(?i)^spotify' -e spotify`,
		Args:          cobra.NoArgs,
		Version:       fmt.Sprintf("%s (commit %s)", version, commit),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRaise(cmd, opts)
		},
	}

	f := cmd.Flags()
	f.StringVarP(&opts.class, "class", "c", "", "class to focus (shorthand for --match class=...)")
	f.StringVarP(&opts.launch, "launch", "e", "", "command to launch when no window matches")
	f.StringArrayVarP(&opts.matches, "match", "m", nil, "additional matcher in the form field[:method]=pattern (repeatable)")
	f.StringVarP(&opts.preset, "preset", "p", "", "use matchers and launch command from a config preset")
	f.BoolVar(&opts.pick, "pick", false, "choose a preset from a rofi menu")
	f.StringVar(&opts.configPath, "config", "", "path to config file")
	f.StringVar(&opts.backend, "backend", "", "window manager backend: auto, hyprland or x11")
	f.BoolVar(&opts.dryRun, "dry-run", false, "print the decision without focusing or launching")
	f.BoolVar(&opts.notify, "notify", false, "show a desktop notification when raising fails")
	f.BoolVar(&opts.debug, "debug", false, "enable debug logging")

	cmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return &raise.ArgumentError{Msg: err.Error()}
	})
	return cmd
}

// resolve builds the match set and launch command from flags and an optional
// preset. It does no I/O, so bad input fails before the compositor is
// contacted.
func resolve(opts *options, cfg *config.Config) (match.Set, string, error) {
	flagSet, err := parseFlagMatchers(opts, cfg)
	if err != nil {
		return nil, "", err
	}
	return withPreset(opts, cfg, flagSet)
}

// parseFlagMatchers parses --class and --match in that order.
func parseFlagMatchers(opts *options, cfg *config.Config) (match.Set, error) {
	parser := match.Parser{Engine: cfg.GetRegexEngine()}

	var set match.Set
	if opts.class != "" {
		m, err := parser.New(match.Class, match.Equals, opts.class)
		if err != nil {
			return nil, err
		}
		set = append(set, m)
	}

	for _, raw := range opts.matches {
		m, err := parser.Parse(raw)
		if err != nil {
			return nil, err
		}
		set = append(set, m)
	}
	return set, nil
}

// withPreset puts the preset's matchers in front of flagSet and fills in the
// launch command when --launch was not given.
func withPreset(opts *options, cfg *config.Config, flagSet match.Set) (match.Set, string, error) {
	var set match.Set
	launchCmd := opts.launch

	if opts.preset != "" {
		p, presetSet, ok := cfg.GetPreset(opts.preset)
		if !ok {
			known := strings.Join(cfg.GetPresetNames(), ", ")
			if known == "" {
				known = "none configured"
			}
			return nil, "", &raise.ArgumentError{
				Msg: fmt.Sprintf("unknown preset %q (available: %s)", opts.preset, known),
			}
		}
		set = append(set, presetSet...)
		if launchCmd == "" {
			launchCmd = p.Launch
		}
	}
	set = append(set, flagSet...)

	if len(set) == 0 {
		return nil, "", &raise.ArgumentError{Msg: "provide at least one matcher via --class, --match or --preset"}
	}
	if launchCmd == "" {
		return nil, "", &raise.ArgumentError{Msg: "required flag \"launch\" not set"}
	}
	return set, launchCmd, nil
}

func resolveBackend(opts *options, cfg *config.Config) (string, error) {
	switch opts.backend {
	case "":
		return cfg.GetBackend(), nil
	case wm.BackendAuto, wm.BackendHyprland, wm.BackendX11:
		return opts.backend, nil
	}
	return "", &raise.ArgumentError{Msg: fmt.Sprintf("unknown backend %q", opts.backend)}
}

func newLogger(opts *options, cfg *config.Config, stderr io.Writer) (*logger.Logger, error) {
	level, err := logger.ParseLevel(cfg.GetLogLevel(), zerolog.WarnLevel)
	if err != nil {
		return nil, err
	}
	if opts.debug {
		level = zerolog.DebugLevel
	}
	// Failures reach stderr once, through reportError. The console log is
	// only attached for --debug.
	logOpts := []logger.Option{
		logger.WithFile(cfg.GetLogFile()),
		logger.WithLevel(level),
	}
	if opts.debug {
		logOpts = append(logOpts, logger.WithConsole(stderr))
	}
	return logger.NewLogger(logOpts...)
}

func runRaise(cmd *cobra.Command, opts *options) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	stderr := cmd.ErrOrStderr()

	var err error
	bootLog := logger.Nop()
	if opts.debug {
		bootLog, err = logger.NewLogger(logger.WithConsole(stderr), logger.WithLevel(zerolog.DebugLevel))
		if err != nil {
			return err
		}
	}

	cfg, err := config.FindConfig(opts.configPath, bootLog)
	if err != nil {
		bootLog.Error("Failed to load configuration", err, "provided_path", opts.configPath)
		if opts.notify {
			notifyFailure(notify.NewNotifyService("", bootLog), err)
		}
		return err
	}

	log, err := newLogger(opts, cfg, stderr)
	if err != nil {
		return err
	}
	defer log.Close()

	err = raiseOnce(ctx, cmd.OutOrStdout(), opts, cfg, log)
	if err != nil && (opts.notify || cfg.GetNotifyOnError()) {
		notifyFailure(notify.NewNotifyService(cfg.GetNotifyCommand(), log), err)
	}
	return err
}

type selector interface {
	Select(ctx context.Context, entries []string) (string, error)
}

func pickPreset(ctx context.Context, opts *options, cfg *config.Config, menu selector) (string, error) {
	if opts.preset != "" {
		return "", &raise.ArgumentError{Msg: "--pick and --preset cannot be combined"}
	}
	names := cfg.GetPresetNames()
	if len(names) == 0 {
		return "", &raise.ArgumentError{Msg: "--pick needs at least one preset in the config file"}
	}
	return menu.Select(ctx, names)
}

func raiseOnce(ctx context.Context, out io.Writer, opts *options, cfg *config.Config, log *logger.Logger) error {
	flagSet, err := parseFlagMatchers(opts, cfg)
	if err != nil {
		return err
	}
	backend, err := resolveBackend(opts, cfg)
	if err != nil {
		return err
	}

	if opts.pick {
		picked, err := pickPreset(ctx, opts, cfg, rofi.NewMenu(rofi.Config{
			Prompt:    "raise",
			ThemePath: cfg.GetRofiThemePath(),
		}, log))
		if errors.Is(err, rofi.ErrCancelled) {
			log.Debug("Preset selection cancelled")
			return nil
		}
		if err != nil {
			return err
		}
		opts.preset = picked
	}

	set, launchCmd, err := withPreset(opts, cfg, flagSet)
	if err != nil {
		return err
	}
	log.Debug("Matchers resolved", "matchers", fmt.Sprint(set), "launch", launchCmd)

	manager, err := wm.NewManager(backend, os.Getenv, log)
	if err != nil {
		return &raise.QueryError{Err: err}
	}
	defer manager.Close()

	launcher, err := launch.New(cfg.GetLauncher(), manager, log)
	if err != nil {
		return err
	}

	r := raise.New(manager, manager, launcher, log)
	if opts.dryRun {
		d, err := r.Plan(ctx, set)
		if err != nil {
			return err
		}
		printDecision(out, d, launchCmd)
		return nil
	}

	_, err = r.Run(ctx, set, launchCmd)
	return err
}

func notifyFailure(n *notify.NotifyService, err error) {
	_ = n.Show("raise", err.Error(), notify.Error)
}
