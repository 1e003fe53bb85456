package preset

// Preset is a declarative request recipe. Entries are applied in order, then
// the array wrapping, then the tag.
type Preset struct {
	Tag     string  `mapstructure:"tag"`
	Entries []Entry `mapstructure:"entries"`
	Array   *Array  `mapstructure:"array"`
}

// Entry stores one value. Exactly one of Value or Path is set.
type Entry struct {
	// Key to store under. Empty selects the default key of the value.
	Key string `mapstructure:"key"`
	// Value is an expression evaluated against the build variables
	Value string `mapstructure:"value"`
	// Path holds expressions joined with '/' into a reference path
	Path []string `mapstructure:"path"`
	// Search names a search mode; the value becomes a pattern under Key+"$"
	Search string `mapstructure:"search"`
	// Raw stores strings without percent-encoding
	Raw bool `mapstructure:"raw"`
	// Object nests the entry in a child object, '/' separated for deeper levels
	Object string `mapstructure:"object"`
}

// Array wraps the built request as a paginated array sub-request.
type Array struct {
	Name  string `mapstructure:"name"`
	Count string `mapstructure:"count"`
	Page  string `mapstructure:"page"`
}

// Vars are the variables visible to preset expressions.
type Vars map[string]any
