package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfigDefaults(t *testing.T) {
	t.Setenv("TEATR_TEST_INT", "42")
	t.Setenv("TEATR_TEST_BAD_INT", "x")
	t.Setenv("TEATR_TEST_BOOL", "true")
	t.Setenv("TEATR_TEST_FLOAT", "12.5")

	assert.Equal(t, 42, ConfigInt("TEATR_TEST_INT", 1))
	assert.Equal(t, 1, ConfigInt("TEATR_TEST_BAD_INT", 1))
	assert.True(t, ConfigBool("TEATR_TEST_BOOL", false))
	assert.False(t, ConfigBool("TEATR_TEST_MISSING", false))
	assert.Equal(t, 12.5, ConfigFloat("TEATR_TEST_FLOAT", 0))
	assert.Equal(t, "fallback", ConfigDefault("TEATR_TEST_MISSING", "fallback"))
}

func TestReportSchedule(t *testing.T) {
	tests := []struct {
		name    string
		value   string
		want    string
		wantErr bool
	}{
		{"Default", "", "0 6 * * *", false},
		{"Custom", "30 5 * * 1-5", "30 5 * * 1-5", false},
		{"Invalid", "every morning", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("REPORT_SCHEDULE", tt.value)
			got, err := ReportSchedule()
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
