package core

// ParameterControl describes one adjustable integer parameter exposed on the
// HUD. Bounds are inclusive and always enforced by the owner of the value.
type ParameterControl struct {
	Key   string
	Label string
	Step  int
	Min   int
	Max   int
}

// ParameterControlsProvider exposes the list of HUD-adjustable controls.
type ParameterControlsProvider interface {
	ParameterControls() []ParameterControl
}

// IntParameterGetter reads the current value of a parameter by key.
type IntParameterGetter interface {
	IntParameter(key string) (int, bool)
}

// IntParameterSetter allows HUD interactions to update a parameter. It
// returns false when the key is unknown or the value was rejected.
type IntParameterSetter interface {
	SetIntParameter(key string, value int) bool
}

// ParameterSource is the full contract the HUD drives.
type ParameterSource interface {
	ParameterControlsProvider
	IntParameterGetter
	IntParameterSetter
}

// StatusLinesProvider exposes short free-form status text for display.
type StatusLinesProvider interface {
	StatusLines() []string
}
