package validators

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNew_LogPrefixTag(t *testing.T) {
	t.Parallel()

	type target struct {
		Prefix string `validate:"logprefix"`
	}

	tests := []struct {
		name   string
		prefix string
		valid  bool
	}{
		{name: "plain prefix", prefix: "metrics_reader_", valid: true},
		{name: "empty", prefix: "", valid: false},
		{name: "dotfile", prefix: ".hidden_", valid: false},
		{name: "slash", prefix: "log/metrics_", valid: false},
		{name: "backslash", prefix: `log\metrics_`, valid: false},
	}

	validate := New()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validate.Struct(&target{Prefix: tt.prefix})
			if tt.valid {
				assert.NoError(t, err)
			} else {
				assert.Error(t, err)
			}
		})
	}
}
