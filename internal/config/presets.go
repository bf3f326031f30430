package config

var Presets = map[string]*Config{
	"classic": {
		Width: 800, Height: 600, MaxBodies: 10,
		Rebound: 0.5, Mass: 10, G: 9.8, FPS: 60,
	},
	"bouncy": {
		Width: 800, Height: 600, MaxBodies: 10,
		Rebound: 0.95, Mass: 10, G: 9.8, FPS: 60,
	},
	"heavy": {
		Width: 800, Height: 600, MaxBodies: 10,
		Rebound: 0.3, Mass: 40, G: 9.8, FPS: 60,
	},
	"crowded": {
		Width: 1024, Height: 768, MaxBodies: 25,
		Rebound: 0.5, Mass: 10, G: 9.8, FPS: 60,
	},
	"slow": {
		Width: 800, Height: 600, MaxBodies: 10,
		Rebound: 0.5, Mass: 10, G: 9.8, FPS: 30,
	},
}

func GetPreset(name string) *Config {
	cfg, ok := Presets[name]
	if !ok {
		return nil
	}
	c := *cfg
	return &c
}

func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	return names
}
