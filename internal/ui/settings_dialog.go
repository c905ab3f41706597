package ui

import (
	"strconv"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/yt-visualizer/internal/config"
	"github.com/ytget/yt-visualizer/internal/platform"
)

// SettingsDialog represents the visualizer settings dialog
type SettingsDialog struct {
	settings *config.Settings
	window   fyne.Window
	dialog   *dialog.ConfirmDialog

	// loadedPresetPath is the resolved path shown when the dialog opened
	loadedPresetPath string

	// UI components
	presetPathEntry         *widget.Entry
	presetFilterEntry       *widget.Entry
	fpsEntry                *widget.Entry
	meshXEntry              *widget.Entry
	meshYEntry              *widget.Entry
	displayDurationEntry    *widget.Entry
	transitionDurationEntry *widget.Entry
	hardCutDurationEntry    *widget.Entry
	hardCutSensitivityEntry *widget.Entry
	beatSensitivityEntry    *widget.Entry
	aspectCorrectionCheck   *widget.Check
	hardCutsCheck           *widget.Check
	shuffleCheck            *widget.Check
	splashCheck             *widget.Check
}

// NewSettingsDialog creates a new settings dialog
func NewSettingsDialog(settings *config.Settings, window fyne.Window) *SettingsDialog {
	sd := &SettingsDialog{
		settings: settings,
		window:   window,
	}

	sd.createUI()
	return sd
}

// Show displays the settings dialog
func (sd *SettingsDialog) Show() {
	sd.loadCurrentSettings()
	sd.dialog.Show()
}

// SetOnClosed registers a callback run after the dialog is dismissed
func (sd *SettingsDialog) SetOnClosed(fn func()) {
	sd.dialog.SetOnClosed(fn)
}

func newNumberEntry(placeholder string) *widget.Entry {
	e := widget.NewEntry()
	e.SetPlaceHolder(placeholder)
	return e
}

// createUI creates the settings dialog UI
func (sd *SettingsDialog) createUI() {
	sd.presetPathEntry = widget.NewEntry()
	sd.presetPathEntry.SetPlaceHolder("Preset directory")
	browseBtn := widget.NewButton("Browse", sd.onBrowseDirectory)
	revealBtn := widget.NewButton("Open", sd.onRevealDirectory)
	presetPathRow := container.NewBorder(nil, nil, nil, container.NewHBox(browseBtn, revealBtn), sd.presetPathEntry)

	sd.presetFilterEntry = widget.NewEntry()
	sd.presetFilterEntry.SetPlaceHolder("Only presets whose file name contains this text")

	sd.fpsEntry = newNumberEntry(strconv.Itoa(config.DefaultFPS))
	sd.meshXEntry = newNumberEntry(strconv.Itoa(config.DefaultMeshX))
	sd.meshYEntry = newNumberEntry(strconv.Itoa(config.DefaultMeshY))
	sd.displayDurationEntry = newNumberEntry(strconv.Itoa(config.DefaultDisplayDuration))
	sd.transitionDurationEntry = newNumberEntry(strconv.Itoa(config.DefaultTransitionDuration))
	sd.hardCutDurationEntry = newNumberEntry(strconv.Itoa(config.DefaultHardCutDuration))
	sd.hardCutSensitivityEntry = newNumberEntry(formatFloat(config.DefaultHardCutSensitivity))
	sd.beatSensitivityEntry = newNumberEntry(formatFloat(config.DefaultBeatSensitivity))

	sd.aspectCorrectionCheck = widget.NewCheck("Aspect correction", nil)
	sd.hardCutsCheck = widget.NewCheck("Hard cuts on beats", nil)
	sd.shuffleCheck = widget.NewCheck("Shuffle presets", nil)
	sd.splashCheck = widget.NewCheck("Start on splash screen", nil)

	form := container.NewVBox(
		widget.NewLabel("Presets"),
		widget.NewSeparator(),

		widget.NewLabel("Preset Directory:"),
		presetPathRow,

		widget.NewLabel("Preset Filter:"),
		sd.presetFilterEntry,

		sd.shuffleCheck,
		sd.splashCheck,

		widget.NewSeparator(),
		widget.NewLabel("Rendering"),
		widget.NewSeparator(),

		widget.NewLabel("Frames Per Second:"),
		sd.fpsEntry,

		widget.NewLabel("Mesh Size:"),
		container.NewGridWithColumns(2, sd.meshXEntry, sd.meshYEntry),

		sd.aspectCorrectionCheck,

		widget.NewSeparator(),
		widget.NewLabel("Transitions"),
		widget.NewSeparator(),

		widget.NewLabel("Display Duration (s):"),
		sd.displayDurationEntry,

		widget.NewLabel("Transition Duration (s):"),
		sd.transitionDurationEntry,

		sd.hardCutsCheck,

		widget.NewLabel("Hard Cut Duration (s):"),
		sd.hardCutDurationEntry,

		widget.NewLabel("Hard Cut Sensitivity:"),
		sd.hardCutSensitivityEntry,

		widget.NewLabel("Beat Sensitivity:"),
		sd.beatSensitivityEntry,
	)

	sd.dialog = dialog.NewCustomConfirm(
		"Visualizer Settings",
		"Save",
		"Cancel",
		container.NewVScroll(form),
		sd.onSave,
		sd.window,
	)

	sd.dialog.Resize(fyne.NewSize(520, 640))
}

// loadCurrentSettings loads current settings into the UI
func (sd *SettingsDialog) loadCurrentSettings() {
	s := sd.settings
	sd.loadedPresetPath = s.GetPresetPath()
	sd.presetPathEntry.SetText(sd.loadedPresetPath)
	sd.presetFilterEntry.SetText(s.GetPresetFilter())
	sd.fpsEntry.SetText(strconv.Itoa(s.GetFPS()))
	sd.meshXEntry.SetText(strconv.Itoa(s.GetMeshX()))
	sd.meshYEntry.SetText(strconv.Itoa(s.GetMeshY()))
	sd.displayDurationEntry.SetText(strconv.Itoa(s.GetDisplayDuration()))
	sd.transitionDurationEntry.SetText(strconv.Itoa(s.GetTransitionDuration()))
	sd.hardCutDurationEntry.SetText(strconv.Itoa(s.GetHardCutDuration()))
	sd.hardCutSensitivityEntry.SetText(formatFloat(s.GetHardCutSensitivity()))
	sd.beatSensitivityEntry.SetText(formatFloat(s.GetBeatSensitivity()))
	sd.aspectCorrectionCheck.SetChecked(s.GetAspectCorrectionEnabled())
	sd.hardCutsCheck.SetChecked(s.GetHardCutsEnabled())
	sd.shuffleCheck.SetChecked(s.GetShuffleEnabled())
	sd.splashCheck.SetChecked(s.GetEnableSplash())
}

// onBrowseDirectory handles directory browsing
func (sd *SettingsDialog) onBrowseDirectory() {
	dialog.ShowFolderOpen(func(uri fyne.ListableURI, err error) {
		if err != nil || uri == nil {
			return
		}
		sd.presetPathEntry.SetText(uri.Path())
	}, sd.window)
}

// onRevealDirectory opens the preset directory in the file manager
func (sd *SettingsDialog) onRevealDirectory() {
	if err := platform.OpenDirectory(sd.presetPathEntry.Text); err != nil {
		dialog.ShowError(err, sd.window)
	}
}

// onSave handles saving the settings. Numeric fields are written only when
// they parse and are positive where zero makes no sense.
func (sd *SettingsDialog) onSave(confirmed bool) {
	if !confirmed {
		return
	}
	s := sd.settings

	// An untouched path may be the application.dir fallback and must not be pinned
	if path := strings.TrimSpace(sd.presetPathEntry.Text); path != "" && path != sd.loadedPresetPath {
		s.SetPresetPath(path)
	}
	s.SetPresetFilter(sd.presetFilterEntry.Text)

	if v, ok := parsePositiveInt(sd.fpsEntry.Text); ok {
		s.SetFPS(v)
	}
	if v, ok := parsePositiveInt(sd.meshXEntry.Text); ok {
		s.SetMeshX(v)
	}
	if v, ok := parsePositiveInt(sd.meshYEntry.Text); ok {
		s.SetMeshY(v)
	}
	if v, ok := parseNonNegativeInt(sd.displayDurationEntry.Text); ok {
		s.SetDisplayDuration(v)
	}
	if v, ok := parseNonNegativeInt(sd.transitionDurationEntry.Text); ok {
		s.SetTransitionDuration(v)
	}
	if v, ok := parseNonNegativeInt(sd.hardCutDurationEntry.Text); ok {
		s.SetHardCutDuration(v)
	}
	if v, err := strconv.ParseFloat(strings.TrimSpace(sd.hardCutSensitivityEntry.Text), 64); err == nil && v >= 0 {
		s.SetHardCutSensitivity(v)
	}
	if v, err := strconv.ParseFloat(strings.TrimSpace(sd.beatSensitivityEntry.Text), 64); err == nil && v >= 0 {
		s.SetBeatSensitivity(v)
	}

	s.SetAspectCorrectionEnabled(sd.aspectCorrectionCheck.Checked)
	s.SetHardCutsEnabled(sd.hardCutsCheck.Checked)
	s.SetShuffleEnabled(sd.shuffleCheck.Checked)
	s.SetEnableSplash(sd.splashCheck.Checked)

	dialog.ShowInformation("Settings", "Settings saved. Restart the visualizer to apply them.", sd.window)
}

func parsePositiveInt(text string) (int, bool) {
	v, err := strconv.Atoi(strings.TrimSpace(text))
	if err != nil || v <= 0 {
		return 0, false
	}
	return v, true
}

func parseNonNegativeInt(text string) (int, bool) {
	v, err := strconv.Atoi(strings.TrimSpace(text))
	if err != nil || v < 0 {
		return 0, false
	}
	return v, true
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
