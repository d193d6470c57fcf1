package emu

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

// Config is a machine description: which byte images to place where, an
// optional reset vector override, and a cycle budget for the run.
//
//	cycles = 100000
//	reset_vector = 0xC000
//
//	[[image]]
//	path = "prog.bin"
//	offset = 0x8000
//
//	[[image]]
//	path = "data.bin"
//	offset = 0x2000
//
//	[tiles]
//	path = "chr.bin"
type Config struct {
	Images      []Image    `toml:"image"`
	Tiles       *TileImage `toml:"tiles"`
	ResetVector *int64     `toml:"reset_vector"`
	Cycles      int64      `toml:"cycles"`
}

type Image struct {
	Path   string `toml:"path"`
	Offset int64  `toml:"offset"`
}

type TileImage struct {
	Path string `toml:"path"`
}

// LoadConfig decodes a machine description file.
func LoadConfig(path string) (Config, error) {
	var cfg Config
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return Config{}, fmt.Errorf("machine file %s: %w", path, err)
	}

	for _, img := range cfg.Images {
		if img.Offset < 0 || img.Offset > 0xFFFF {
			return Config{}, fmt.Errorf("machine file %s: image %s: offset 0x%X out of range", path, img.Path, img.Offset)
		}
	}
	if cfg.ResetVector != nil {
		if v := *cfg.ResetVector; v < 0 || v > 0xFFFF {
			return Config{}, fmt.Errorf("machine file %s: reset vector 0x%X out of range", path, v)
		}
	}
	return cfg, nil
}

// Apply loads the described images into the machine and plants the reset
// vector override if one is given.
func (cfg Config) Apply(m *Machine) error {
	for _, img := range cfg.Images {
		data, err := os.ReadFile(img.Path)
		if err != nil {
			return err
		}
		m.LoadImage(uint16(img.Offset), data)
	}

	if cfg.Tiles != nil {
		data, err := os.ReadFile(cfg.Tiles.Path)
		if err != nil {
			return err
		}
		m.LoadTiles(data)
	}

	if cfg.ResetVector != nil {
		m.SetResetVector(uint16(*cfg.ResetVector))
	}
	return nil
}
