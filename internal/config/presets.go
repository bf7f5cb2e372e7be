package config

import "sort"

var Presets = map[string]*Config{
	"tiny": {
		Disks: 2, SpeedMs: 1000, SpeedPolicy: "next",
	},
	"classic": {
		Disks: 3, SpeedMs: 800, SpeedPolicy: "next",
	},
	"tower": {
		Disks: 5, SpeedMs: 500, SpeedPolicy: "next",
	},
	"blitz": {
		Disks: 7, SpeedMs: 200, SpeedPolicy: "immediate", Theme: "sunset",
	},
	"study": {
		Disks: 4, SpeedMs: 1500, SpeedPolicy: "next", Paused: true, Theme: "retro",
	},
}

var presetInfo = map[string]string{
	"tiny":    "two disks, slow",
	"classic": "three disks, default speed",
	"tower":   "five disks, quick",
	"blitz":   "seven disks, fastest",
	"study":   "four disks, starts paused for manual stepping",
}

// GetPreset returns a copy of the named preset, or nil.
func GetPreset(name string) *Config {
	cfg, ok := Presets[name]
	if !ok {
		return nil
	}
	c := *cfg
	if c.Theme == "" {
		c.Theme = DefaultTheme
	}
	if c.LogLevel == "" {
		c.LogLevel = DefaultLogLevel
	}
	return &c
}

func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func PresetInfo(name string) string {
	return presetInfo[name]
}
