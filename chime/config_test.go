package chime

import "testing"

func TestLoadConfig(t *testing.T) {
	tests := []struct {
		name    string
		enabled string
		volume  string
		rate    string
		want    Config
	}{
		{"defaults", "", "", "", DefaultConfig()},
		{"overrides", "false", "25", "48000", Config{Enabled: false, Volume: 0.25, SampleRate: 48000}},
		{"volume clamped high", "", "250", "", Config{Enabled: true, Volume: 1, SampleRate: 44100}},
		{"volume clamped low", "", "-5", "", Config{Enabled: true, Volume: 0, SampleRate: 44100}},
		{"malformed ignored", "maybe", "loud", "-1", DefaultConfig()},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(EnvEnabled, tt.enabled)
			t.Setenv(EnvVolume, tt.volume)
			t.Setenv(EnvSampleRate, tt.rate)

			if got := LoadConfig(); got != tt.want {
				t.Errorf("LoadConfig() = %+v, want %+v", got, tt.want)
			}
		})
	}
}
