package config

// View exposes the keys of a Source that live under a dotted prefix, so
// "fps" in a "projectM" view reads "projectM.fps".
type View struct {
	src    Source
	prefix string
}

// NewView creates a view of src rooted at prefix.
func NewView(src Source, prefix string) *View {
	return &View{src: src, prefix: prefix}
}

// Prefix returns the view's prefix without the trailing dot.
func (v *View) Prefix() string {
	return v.prefix
}

func (v *View) key(key string) string {
	if v.prefix == "" {
		return key
	}
	return v.prefix + "." + key
}

func (v *View) String(key, fallback string) string {
	return v.src.String(v.key(key), fallback)
}

func (v *View) Int(key string, fallback int) int {
	return v.src.Int(v.key(key), fallback)
}

func (v *View) Float(key string, fallback float64) float64 {
	return v.src.Float(v.key(key), fallback)
}

func (v *View) Bool(key string, fallback bool) bool {
	return v.src.Bool(v.key(key), fallback)
}

// SetString forwards to the underlying source when it is writable.
func (v *View) SetString(key, value string) {
	if w, ok := v.src.(Writer); ok {
		w.SetString(v.key(key), value)
	}
}

// SetInt forwards to the underlying source when it is writable.
func (v *View) SetInt(key string, value int) {
	if w, ok := v.src.(Writer); ok {
		w.SetInt(v.key(key), value)
	}
}

// SetFloat forwards to the underlying source when it is writable.
func (v *View) SetFloat(key string, value float64) {
	if w, ok := v.src.(Writer); ok {
		w.SetFloat(v.key(key), value)
	}
}

// SetBool forwards to the underlying source when it is writable.
func (v *View) SetBool(key string, value bool) {
	if w, ok := v.src.(Writer); ok {
		w.SetBool(v.key(key), value)
	}
}
