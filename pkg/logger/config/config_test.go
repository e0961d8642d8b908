package config

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Configuration
		wantErr bool
	}{
		{"info", Configuration{Level: INFO_LEVEL, TimeFormat: time.RFC3339Nano}, false},
		{"debug", Configuration{Level: DEBUG_LEVEL, TimeFormat: time.Kitchen}, false},
		{"fatal", Configuration{Level: FATAL_LEVEL, TimeFormat: time.RFC3339}, false},
		{"below debug", Configuration{Level: -2, TimeFormat: time.RFC3339}, true},
		{"above fatal", Configuration{Level: 6, TimeFormat: time.RFC3339}, true},
		{"empty time format", Configuration{Level: INFO_LEVEL}, true},
		{"constant time format", Configuration{Level: INFO_LEVEL, TimeFormat: "log"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
		})
	}

	assert.True(t, errors.Is(Configuration{Level: 9, TimeFormat: time.RFC3339}.Validate(), ErrInvalidLogLevel))
}
