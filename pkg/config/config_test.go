package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		config  Config
		wantErr bool
	}{
		{
			name: "valid config",
			config: Config{
				Server:     ServerConfig{Port: 8080},
				Segmenting: SegmentingConfig{DefaultChunkSeconds: 60},
			},
			wantErr: false,
		},
		{
			name: "invalid port",
			config: Config{
				Server: ServerConfig{Port: 0},
			},
			wantErr: true,
		},
		{
			name: "port out of range",
			config: Config{
				Server: ServerConfig{Port: 70000},
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.config.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestConfigValidateCorrectsChunkSeconds(t *testing.T) {
	config := Config{
		Server:     ServerConfig{Port: 8080},
		Segmenting: SegmentingConfig{DefaultChunkSeconds: -5},
	}

	require.NoError(t, config.Validate())
	assert.Equal(t, 60, config.Segmenting.DefaultChunkSeconds)
}

func TestInit(t *testing.T) {
	require.NoError(t, Init())

	// Defaults are in place after initialization
	assert.Equal(t, 8080, GetInt("server.port"))
	assert.Equal(t, 60, GetInt("segmenting.default_chunk_seconds"))
	assert.Equal(t, "./data/swipecut.db", GetString("database.path"))
	assert.True(t, GetBool("security.enable_cors"))
}
