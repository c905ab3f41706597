package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"runtime"
	"strings"
	"syscall"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"github.com/go-gl/glfw/v3.3/glfw"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/ytget/yt-visualizer/internal/config"
	"github.com/ytget/yt-visualizer/internal/engine"
	_ "github.com/ytget/yt-visualizer/internal/engine/projectm"
	"github.com/ytget/yt-visualizer/internal/glwindow"
	"github.com/ytget/yt-visualizer/internal/render"
	"github.com/ytget/yt-visualizer/internal/ui"
	"github.com/ytget/yt-visualizer/internal/visualizer"
)

// Version is set during build via -ldflags "-X main.version=X.Y.Z"
var version = "dev"

const (
	AppID   = "com.ytget.yt-visualizer"
	AppName = "YT Visualizer"

	WindowWidth  = 1280
	WindowHeight = 720
)

func init() {
	// GLFW and the GL context must stay on the main thread
	runtime.LockOSThread()
}

type options struct {
	configPath   string
	logLevel     string
	logFormat    string
	editSettings bool
	engineName   string
	width        int
	height       int
	fullscreen   bool
}

func parseFlags(args []string) (options, error) {
	var opts options
	fs := flag.NewFlagSet(AppName, flag.ContinueOnError)
	fs.StringVar(&opts.configPath, "config", "", "YAML or TOML configuration file (default: application preferences)")
	fs.StringVar(&opts.logLevel, "log-level", "info", "log level: debug, info, warn, error")
	fs.StringVar(&opts.logFormat, "log-format", "console", "log format: console or json")
	fs.BoolVar(&opts.editSettings, "settings", false, "open the settings editor and exit")
	fs.StringVar(&opts.engineName, "engine", defaultEngine(), "engine: "+strings.Join(engine.Names(), ", "))
	fs.IntVar(&opts.width, "width", WindowWidth, "window width")
	fs.IntVar(&opts.height, "height", WindowHeight, "window height")
	fs.BoolVar(&opts.fullscreen, "fullscreen", false, "open on the primary monitor in fullscreen")
	if err := fs.Parse(args); err != nil {
		return opts, err
	}
	return opts, nil
}

// defaultEngine prefers libprojectM when it was compiled in
func defaultEngine() string {
	for _, name := range engine.Names() {
		if name == "projectm" {
			return name
		}
	}
	return engine.NativeName
}

func newLogger(level, format string) (*zap.Logger, error) {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return nil, err
	}

	var cfg zap.Config
	switch format {
	case "json":
		cfg = zap.NewProductionConfig()
	case "console":
		cfg = zap.NewDevelopmentConfig()
	default:
		return nil, fmt.Errorf("unknown log format %q", format)
	}
	cfg.Level = zap.NewAtomicLevelAt(lvl)
	return cfg.Build()
}

func main() {
	opts, err := parseFlags(os.Args[1:])
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return
		}
		os.Exit(2)
	}

	logger, err := newLogger(opts.logLevel, opts.logFormat)
	if err != nil {
		fmt.Fprintf(os.Stderr, "logger: %v\n", err)
		os.Exit(2)
	}
	defer func() { _ = logger.Sync() }()

	logger.Info("starting", zap.String("app", AppName), zap.String("version", version))

	if err := run(opts, logger); err != nil {
		logger.Error("visualizer stopped", zap.Error(err))
		_ = logger.Sync()
		os.Exit(1)
	}
}

func run(opts options, logger *zap.Logger) error {
	if opts.editSettings {
		showSettings()
		return nil
	}

	src, err := configSource(opts.configPath, logger)
	if err != nil {
		return err
	}

	factory, err := engine.Lookup(opts.engineName)
	if err != nil {
		return err
	}

	win, err := glwindow.Open(glwindow.Options{
		Title:      fmt.Sprintf("%s v%s", AppName, version),
		Width:      opts.width,
		Height:     opts.height,
		Fullscreen: opts.fullscreen,
	})
	if err != nil {
		return err
	}
	defer win.Close()

	adapter := visualizer.NewAdapter(factory, glwindow.Target{}, logger)
	if err := adapter.Initialize(src, win); err != nil {
		return err
	}
	defer adapter.Uninitialize()

	win.OnKey(func(key glfw.Key, _ glfw.ModifierKey) {
		eng := adapter.Engine()
		if eng == nil {
			return
		}
		switch key {
		case glfw.KeyN:
			eng.SelectNextPreset(true)
		case glfw.KeyR:
			eng.SelectRandomPreset(true)
		case glfw.KeyEscape, glfw.KeyQ:
			win.SetShouldClose(true)
		}
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	pacer := render.NewPacer()
	for !win.ShouldClose() {
		if err := pacer.Wait(ctx, adapter.TargetFPS()); err != nil {
			logger.Info("shutting down", zap.Error(err))
			return nil
		}
		adapter.RenderFrame()
		win.SwapBuffers()
		win.PollEvents()
	}
	return nil
}

// configSource returns the file source when a path is given, otherwise the
// preferences of the application id shared with the settings editor.
func configSource(path string, logger *zap.Logger) (config.Source, error) {
	if path != "" {
		src, err := config.LoadFile(path)
		if err != nil {
			return nil, err
		}
		logger.Info("config loaded", zap.String("path", src.Path()), zap.Int("keys", src.Keys()))
		return src, nil
	}
	return config.NewPreferencesSource(app.NewWithID(AppID)), nil
}

func showSettings() {
	myApp := app.NewWithID(AppID)
	myWindow := myApp.NewWindow(fmt.Sprintf("%s Settings", AppName))
	myWindow.Resize(fyne.NewSize(560, 700))

	settings := config.NewSettings(config.NewPreferencesSource(myApp))
	dlg := ui.NewSettingsDialog(settings, myWindow)
	dlg.SetOnClosed(myApp.Quit)

	myWindow.Show()
	dlg.Show()
	myApp.Run()
}
