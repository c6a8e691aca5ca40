package config

import (
	"testing"
)

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr bool
	}{
		{
			name: "valid config",
			cfg: Config{
				Sonarr: SonarrConfig{
					URL:    "http://localhost:8989",
					APIKey: "valid-api-key",
				},
				Logging: LoggingConfig{Level: "info", Format: "console"},
			},
			wantErr: false,
		},
		{
			name: "missing URL",
			cfg: Config{
				Sonarr:  SonarrConfig{APIKey: "valid-api-key"},
				Logging: LoggingConfig{Level: "info", Format: "console"},
			},
			wantErr: true,
		},
		{
			name: "missing API key",
			cfg: Config{
				Sonarr:  SonarrConfig{URL: "http://localhost:8989"},
				Logging: LoggingConfig{Level: "info", Format: "console"},
			},
			wantErr: true,
		},
		{
			name: "placeholder API key",
			cfg: Config{
				Sonarr: SonarrConfig{
					URL:    "http://localhost:8989",
					APIKey: "your-api-key-here",
				},
				Logging: LoggingConfig{Level: "info", Format: "console"},
			},
			wantErr: true,
		},
		{
			name: "invalid logging level",
			cfg: Config{
				Sonarr: SonarrConfig{
					URL:    "http://localhost:8989",
					APIKey: "valid-api-key",
				},
				Logging: LoggingConfig{Level: "verbose", Format: "console"},
			},
			wantErr: true,
		},
		{
			name: "invalid logging format",
			cfg: Config{
				Sonarr: SonarrConfig{
					URL:    "http://localhost:8989",
					APIKey: "valid-api-key",
				},
				Logging: LoggingConfig{Level: "info", Format: "xml"},
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validate(&tt.cfg)
			if (err != nil) != tt.wantErr {
				t.Errorf("validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
