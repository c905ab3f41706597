package config

// Source provides typed configuration lookups. Every lookup takes a fallback
// that is returned when the key is absent or cannot be converted.
type Source interface {
	String(key, fallback string) string
	Int(key string, fallback int) int
	Float(key string, fallback float64) float64
	Bool(key string, fallback bool) bool
}

// Writer is implemented by sources that accept runtime changes.
type Writer interface {
	SetString(key, value string)
	SetInt(key string, value int)
	SetFloat(key string, value float64)
	SetBool(key string, value bool)
}

// Store is a Source that can also be written to.
type Store interface {
	Source
	Writer
}
