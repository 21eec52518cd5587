package main

import (
	_ "embed"
	"errors"
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"

	"github.com/iw2rmb/rangeslider/slider"
)

//go:embed demo.toml
var builtinConfig []byte

var errNoSliders = errors.New("config has no [[slider]] tables")

// entry is one [[slider]] table.
type entry struct {
	slider.Options
	Label string
}

func loadEntries(path string) ([]entry, error) {
	if path == "" {
		return parseEntries(builtinConfig)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	return parseEntries(data)
}

// parseEntries decodes the slider options and the demo-only labels in two
// passes so slider.Options stays free of presentation keys.
func parseEntries(data []byte) ([]entry, error) {
	var opts struct {
		Sliders []slider.Options `toml:"slider"`
	}
	if err := toml.Unmarshal(data, &opts); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	var labels struct {
		Sliders []struct {
			Label string `toml:"label"`
		} `toml:"slider"`
	}
	if err := toml.Unmarshal(data, &labels); err != nil {
		return nil, fmt.Errorf("decode labels: %w", err)
	}
	if len(opts.Sliders) == 0 {
		return nil, errNoSliders
	}

	out := make([]entry, len(opts.Sliders))
	for i, o := range opts.Sliders {
		if o.ID == nil {
			id := fmt.Sprintf("slider-%d", i+1)
			o.ID = &id
		}
		label := labels.Sliders[i].Label
		if label == "" {
			label = *o.ID
		}
		out[i] = entry{Options: o, Label: label}
	}
	return out, nil
}
