package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		config  Config
		wantErr error
	}{
		{name: "zero value is valid", config: Config{}},
		{name: "full config", config: Config{DataDir: "/tmp/x", RemoteURL: "http://localhost:9002", PageSize: 50}},
		{name: "negative page size", config: Config{PageSize: -1}, wantErr: ErrPageSizeInvalid},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.config.Validate()
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			assert.NoError(t, err)
		})
	}
}
