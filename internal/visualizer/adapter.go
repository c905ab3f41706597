package visualizer

import (
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/ytget/yt-visualizer/internal/config"
	"github.com/ytget/yt-visualizer/internal/engine"
	"github.com/ytget/yt-visualizer/internal/platform"
	"github.com/ytget/yt-visualizer/internal/render"
)

// Name identifies the adapter in logs
const Name = "ProjectM Wrapper"

// Adapter owns a single engine instance. It is not safe for concurrent use;
// all calls are expected from the render loop.
type Adapter struct {
	factory       engine.Factory
	target        render.Target
	logger        *zap.Logger
	blocklistPath string

	settings   *config.Settings
	engine     engine.Engine
	instanceID string
}

// NewAdapter creates an adapter that builds engines with factory and clears
// target before each frame. A nil logger disables logging; a nil target
// skips clearing.
func NewAdapter(factory engine.Factory, target render.Target, logger *zap.Logger) *Adapter {
	if logger == nil {
		logger = zap.NewNop()
	}
	if target == nil {
		target = render.TargetFunc(func() {})
	}
	return &Adapter{
		factory:       factory,
		target:        target,
		logger:        logger.Named("visualizer"),
		blocklistPath: platform.DefaultBlocklistFile,
	}
}

// SetBlocklistPath overrides the blocklist location
func (a *Adapter) SetBlocklistPath(path string) {
	a.blocklistPath = path
}

// Name returns the adapter name
func (a *Adapter) Name() string {
	return Name
}

// Initialize creates the engine from configuration and curates its playlist.
// It does nothing when an engine is already running. Engine creation errors
// are returned to the caller.
func (a *Adapter) Initialize(src config.Source, surface render.Surface) error {
	a.settings = config.NewSettings(src)

	if a.engine != nil {
		return nil
	}

	width, height := surface.DrawableSize()
	settings := a.engineSettings(width, height)

	eng, err := a.factory(settings, engine.FlagNone)
	if err != nil {
		return fmt.Errorf("create engine: %w", err)
	}
	a.engine = eng
	a.instanceID = uuid.NewString()

	log := a.logger.With(zap.String("instance", a.instanceID))
	log.Info("engine created",
		zap.Int("width", width),
		zap.Int("height", height),
		zap.String("presetPath", settings.PresetURL),
		zap.Int("presets", eng.PlaylistSize()))

	if filter := a.settings.GetPresetFilter(); filter != "" {
		log.Info("INIT preset filter", zap.String("filter", filter))
		removed := filterPresets(eng, filter, log)
		log.Debug("preset filter applied", zap.Int("removed", removed), zap.Int("remaining", eng.PlaylistSize()))
	}

	a.applyBlocklist(log)

	if !a.settings.GetEnableSplash() {
		if settings.ShuffleEnabled {
			eng.SelectRandomPreset(true)
		} else {
			eng.SelectNextPreset(true)
		}
	}

	return nil
}

// engineSettings maps configuration onto the engine settings record
func (a *Adapter) engineSettings(width, height int) engine.Settings {
	s := a.settings
	return engine.Settings{
		WindowWidth:      width,
		WindowHeight:     height,
		FPS:              s.GetFPS(),
		MeshX:            s.GetMeshX(),
		MeshY:            s.GetMeshY(),
		AspectCorrection: s.GetAspectCorrectionEnabled(),

		PresetDuration:     float64(s.GetDisplayDuration()),
		SoftCutDuration:    float64(s.GetTransitionDuration()),
		HardCutEnabled:     s.GetHardCutsEnabled(),
		HardCutDuration:    float64(s.GetHardCutDuration()),
		HardCutSensitivity: s.GetHardCutSensitivity(),
		BeatSensitivity:    s.GetBeatSensitivity(),
		ShuffleEnabled:     s.GetShuffleEnabled(),
		PresetURL:          s.GetPresetPath(),

		// Unsupported
		SoftCutRatingsEnabled: false,
		MenuFontURL:           "",
		TitleFontURL:          "",
	}
}

func (a *Adapter) applyBlocklist(log *zap.Logger) {
	names, err := platform.ReadBlocklist(a.blocklistPath)
	if err != nil {
		log.Warn("blocklist skipped", zap.String("path", a.blocklistPath), zap.Error(err))
		return
	}
	for _, name := range blockPresets(a.engine, names) {
		log.Info("INIT preset block", zap.String("preset", name))
	}
}

// Uninitialize destroys the engine. It is safe to call repeatedly.
func (a *Adapter) Uninitialize() {
	if a.engine == nil {
		return
	}
	a.engine.Destroy()
	a.logger.Info("engine destroyed", zap.String("instance", a.instanceID))
	a.engine = nil
	a.instanceID = ""
}

// Engine returns the running engine, or nil. Callers may drive it directly
// but must not destroy it or keep it past Uninitialize.
func (a *Adapter) Engine() engine.Engine {
	return a.engine
}

// InstanceID identifies the running engine instance in logs; empty when stopped
func (a *Adapter) InstanceID() string {
	return a.instanceID
}

// TargetFPS reads the configured frame rate. The value is looked up on every
// call so configuration changes apply without a restart.
func (a *Adapter) TargetFPS() int {
	if a.settings == nil {
		return config.DefaultFPS
	}
	return a.settings.GetFPS()
}

// RenderFrame clears the render target, then lets the engine draw one frame
func (a *Adapter) RenderFrame() {
	a.target.Clear()
	if a.engine == nil {
		return
	}
	a.engine.RenderFrame()
}
