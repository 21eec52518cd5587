package slider

import "github.com/charmbracelet/log"

// Config configures a slider Model.
type Config struct {
	// ID names the slider in events, like the host input's id attribute.
	ID string

	Min          int
	Max          int
	Step         int
	InitialValue int

	// Keyboard enables arrow-key stepping while the slider owns focus.
	Keyboard bool

	// Hooks. Each is optional and called synchronously from Update.
	OnCreate func(Event)
	OnStart  func(Event)
	OnChange func(Event)
	OnFinish func(Event)

	// Width is the container's outer width in cells, margins included.
	// Zero follows the terminal width from tea.WindowSizeMsg, minus X.
	Width int
	// X and Y place the container's top-left corner on screen. Mouse
	// messages are hit-tested against them.
	X, Y int

	// ShowInput renders the bound input after the container.
	ShowInput bool

	Style  Style
	KeyMap KeyMap

	// Logger receives invariant-violation diagnostics. Nil uses the default
	// charm logger.
	Logger *log.Logger
}

// DefaultConfig returns the documented defaults: min 0, max 100, step 1,
// initial value 0, keyboard enabled.
func DefaultConfig() Config {
	return Config{
		Min:      0,
		Max:      100,
		Step:     1,
		Keyboard: true,
		Style:    DefaultStyle(),
		KeyMap:   DefaultKeyMap(),
	}
}

// Options is the loosely specified option bag, typically decoded from a
// config file. Nil fields keep whatever the base Config holds; unknown keys
// in the source are ignored by the decoder.
type Options struct {
	ID           *string `toml:"id"`
	Min          *int    `toml:"min"`
	Max          *int    `toml:"max"`
	Step         *int    `toml:"step"`
	InitialValue *int    `toml:"initial_value"`
	Keyboard     *bool   `toml:"keyboard"`
	ShowInput    *bool   `toml:"show_input"`
	Width        *int    `toml:"width"`
}

// Apply overlays the set options onto cfg.
func (o Options) Apply(cfg Config) Config {
	if o.ID != nil {
		cfg.ID = *o.ID
	}
	if o.Min != nil {
		cfg.Min = *o.Min
	}
	if o.Max != nil {
		cfg.Max = *o.Max
	}
	if o.Step != nil {
		cfg.Step = *o.Step
	}
	if o.InitialValue != nil {
		cfg.InitialValue = *o.InitialValue
	}
	if o.Keyboard != nil {
		cfg.Keyboard = *o.Keyboard
	}
	if o.ShowInput != nil {
		cfg.ShowInput = *o.ShowInput
	}
	if o.Width != nil {
		cfg.Width = *o.Width
	}
	return cfg
}
