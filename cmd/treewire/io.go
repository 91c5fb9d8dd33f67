package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/treewire/go-treewire/desc"
	"github.com/treewire/go-treewire/shorthand"
)

func readArg(arg string) ([]byte, error) {
	if arg == "-" {
		return io.ReadAll(os.Stdin)
	}
	data, err := os.ReadFile(arg)
	if err != nil {
		return nil, fmt.Errorf("error opening %s: %w", arg, err)
	}
	return data, nil
}

// loadShorthand reads a shorthand document, defaulting to JSON with -y
// switching to YAML.
func loadShorthand(cfg *MainConfig, arg string) (shorthand.Shorthand, error) {
	data, err := readArg(arg)
	if err != nil {
		return nil, err
	}
	var s shorthand.Shorthand
	if cfg.Y {
		s, err = shorthand.UnmarshalYAML(data)
	} else {
		s, err = shorthand.Unmarshal(data)
	}
	if err != nil {
		return nil, fmt.Errorf("error decoding %s: %w", arg, err)
	}
	return s, nil
}

// loadDescription reads a canonical description. Descriptions always travel
// as JSON; they are the wire contract.
func loadDescription(arg string) (*desc.Node, error) {
	data, err := readArg(arg)
	if err != nil {
		return nil, err
	}
	d := &desc.Node{}
	if err := json.Unmarshal(data, d); err != nil {
		return nil, fmt.Errorf("error decoding %s: %w", arg, err)
	}
	return d, nil
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
