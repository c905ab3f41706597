//go:build projectm

package projectm

/*
#cgo pkg-config: libprojectM
#include <stdlib.h>
#include <string.h>
#include <stdbool.h>
#include <libprojectM/projectM.h>

// Settings and index types differ between library releases, so calls go
// through thin wrappers where C applies the conversions.
static projectm_handle ytv_create(int width, int height, int fps, int mesh_x, int mesh_y,
		int aspect_correction, double preset_duration, double soft_cut_duration,
		int hard_cut_enabled, double hard_cut_duration, double hard_cut_sensitivity,
		double beat_sensitivity, int shuffle_enabled, char* preset_url, int flags)
{
	projectm_settings settings;
	memset(&settings, 0, sizeof(settings));

	settings.window_width = width;
	settings.window_height = height;
	settings.fps = fps;
	settings.mesh_x = mesh_x;
	settings.mesh_y = mesh_y;
	settings.aspect_correction = aspect_correction != 0;

	settings.preset_duration = preset_duration;
	settings.soft_cut_duration = soft_cut_duration;
	settings.hard_cut_enabled = hard_cut_enabled != 0;
	settings.hard_cut_duration = hard_cut_duration;
	settings.hard_cut_sensitivity = (float)hard_cut_sensitivity;
	settings.beat_sensitivity = (float)beat_sensitivity;
	settings.shuffle_enabled = shuffle_enabled != 0;
	settings.preset_url = preset_url;

	settings.soft_cut_ratings_enabled = false;
	settings.menu_font_url = NULL;
	settings.title_font_url = NULL;

	return projectm_create_settings(&settings, flags);
}

static char* ytv_preset_name(projectm_handle h, unsigned int index)
{
	return (char*)projectm_get_preset_name(h, index);
}

static char* ytv_preset_filename(projectm_handle h, unsigned int index)
{
	return (char*)projectm_get_preset_filename(h, index);
}

static void ytv_free(char* s)
{
	projectm_free_string(s);
}

static unsigned int ytv_playlist_size(projectm_handle h)
{
	return projectm_get_playlist_size(h);
}

static unsigned int ytv_preset_index(projectm_handle h, const char* name)
{
	return projectm_get_preset_index(h, name);
}

static void ytv_remove_preset(projectm_handle h, unsigned int index)
{
	projectm_remove_preset(h, index);
}

static void ytv_select_random(projectm_handle h, int hard_cut)
{
	projectm_select_random_preset(h, hard_cut != 0);
}

static void ytv_select_next(projectm_handle h, int hard_cut)
{
	projectm_select_next_preset(h, hard_cut != 0);
}
*/
import "C"

import (
	"errors"
	"unsafe"

	"github.com/ytget/yt-visualizer/internal/engine"
)

// Name is the registry name of the libprojectM engine
const Name = "projectm"

// ErrCreate is returned when libprojectM fails to create an instance
var ErrCreate = errors.New("projectm: create instance failed")

func init() {
	engine.Register(Name, New)
}

// Engine is a libprojectM instance
type Engine struct {
	handle C.projectm_handle
}

// New creates a libprojectM instance. It must be called on the thread that
// owns the current GL context.
func New(settings engine.Settings, flags engine.Flags) (engine.Engine, error) {
	if err := settings.Validate(); err != nil {
		return nil, err
	}

	presetURL := C.CString(settings.PresetURL)
	defer C.free(unsafe.Pointer(presetURL))

	handle := C.ytv_create(
		C.int(settings.WindowWidth),
		C.int(settings.WindowHeight),
		C.int(settings.FPS),
		C.int(settings.MeshX),
		C.int(settings.MeshY),
		cBool(settings.AspectCorrection),
		C.double(settings.PresetDuration),
		C.double(settings.SoftCutDuration),
		cBool(settings.HardCutEnabled),
		C.double(settings.HardCutDuration),
		C.double(settings.HardCutSensitivity),
		C.double(settings.BeatSensitivity),
		cBool(settings.ShuffleEnabled),
		presetURL,
		C.int(flags),
	)
	if handle == nil {
		return nil, ErrCreate
	}
	return &Engine{handle: handle}, nil
}

func cBool(b bool) C.int {
	if b {
		return 1
	}
	return 0
}

// takeString copies a library-owned string and releases it
func takeString(s *C.char) string {
	if s == nil {
		return ""
	}
	defer C.ytv_free(s)
	return C.GoString(s)
}

func (e *Engine) PlaylistSize() int {
	return int(C.ytv_playlist_size(e.handle))
}

func (e *Engine) PresetName(index int) string {
	return takeString(C.ytv_preset_name(e.handle, C.uint(index)))
}

func (e *Engine) PresetIndex(name string) (int, bool) {
	cname := C.CString(name)
	defer C.free(unsafe.Pointer(cname))

	// The library reports a miss as an index past the end
	index := int(C.ytv_preset_index(e.handle, cname))
	if index >= e.PlaylistSize() {
		return -1, false
	}
	return index, true
}

func (e *Engine) PresetFilename(index int) string {
	return takeString(C.ytv_preset_filename(e.handle, C.uint(index)))
}

func (e *Engine) RemovePreset(index int) {
	C.ytv_remove_preset(e.handle, C.uint(index))
}

func (e *Engine) SelectRandomPreset(hardCut bool) {
	C.ytv_select_random(e.handle, cBool(hardCut))
}

func (e *Engine) SelectNextPreset(hardCut bool) {
	C.ytv_select_next(e.handle, cBool(hardCut))
}

func (e *Engine) RenderFrame() {
	C.projectm_render_frame(e.handle)
}

func (e *Engine) Destroy() {
	if e.handle == nil {
		return
	}
	C.projectm_destroy(e.handle)
	e.handle = nil
}
