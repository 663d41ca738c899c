package config

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateSecretKey(t *testing.T) {
	tests := []struct {
		name    string
		key     string
		wantErr bool
	}{
		{name: "Chave vazia", key: "", wantErr: true},
		{name: "Apenas espaços", key: "   ", wantErr: true},
		{name: "Placeholder de exemplo", key: "your_secret_key", wantErr: true},
		{name: "Chave curta", key: "segredo-curto", wantErr: true},
		{name: "Chave própria", key: strings.Repeat("k", 32)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateSecretKey(tt.key)

			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInsecureSecretKey)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestNewConfig_RecusaChavePadrao(t *testing.T) {
	t.Setenv("SECRET_KEY", "your_secret_key")

	cfg, err := NewConfig()

	assert.ErrorIs(t, err, ErrInsecureSecretKey)
	assert.Nil(t, cfg)
}
