package renderer

import "testing"

func TestDefaultConfig(t *testing.T) {
	config := DefaultConfig()
	if err := config.Validate(); err != nil {
		t.Fatalf("Expected default config to be valid, got %v", err)
	}
	if config.ColorLimit != 0.01 || config.LightSamples != 16 {
		t.Errorf("Expected color limit 0.01 and 16 light samples, got %g and %d", config.ColorLimit, config.LightSamples)
	}
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*Config)
	}{
		{"zero width", func(c *Config) { c.Width = 0 }},
		{"negative height", func(c *Config) { c.Height = -4 }},
		{"negative depth", func(c *Config) { c.Depth = -1 }},
		{"zero color limit", func(c *Config) { c.ColorLimit = 0 }},
		{"zero light samples", func(c *Config) { c.LightSamples = 0 }},
		{"zero tile size", func(c *Config) { c.TileSize = 0 }},
		{"negative workers", func(c *Config) { c.NumWorkers = -2 }},
		{"unsupported antialias", func(c *Config) { c.Antialias = 5 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			config := DefaultConfig()
			tt.modify(&config)
			if err := config.Validate(); err == nil {
				t.Errorf("Expected %s to be rejected", tt.name)
			}
		})
	}
}
