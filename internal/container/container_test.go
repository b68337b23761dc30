package container

import (
	"bytes"
	"path/filepath"
	"testing"

	"fjacquet/budget-csv/internal/config"
	"fjacquet/budget-csv/internal/logging"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig(t *testing.T) *config.Config {
	t.Helper()
	cfg := &config.Config{}
	cfg.Log.Level = "info"
	cfg.Log.Format = "text"
	cfg.Ledger.File = filepath.Join(t.TempDir(), "ledger.csv")
	cfg.Query.DefaultDays = 30
	cfg.Chart.Width = 12
	cfg.Report.Directory = "reports"
	cfg.Report.Format = "json"
	return cfg
}

func TestNewContainer(t *testing.T) {
	tests := []struct {
		name        string
		config      func(t *testing.T) *config.Config
		expectError bool
		errorMsg    string
	}{
		{
			name:        "nil config",
			config:      func(*testing.T) *config.Config { return nil },
			expectError: true,
			errorMsg:    "configuration cannot be nil",
		},
		{
			name:   "valid config",
			config: testConfig,
		},
		{
			name: "json logging",
			config: func(t *testing.T) *config.Config {
				cfg := testConfig(t)
				cfg.Log.Level = "debug"
				cfg.Log.Format = "json"
				return cfg
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := tt.config(t)
			c, err := NewContainer(cfg)

			if tt.expectError {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.errorMsg)
				assert.Nil(t, c)
				return
			}

			require.NoError(t, err)
			require.NotNil(t, c)
			assert.Same(t, cfg, c.GetConfig())
			assert.NotNil(t, c.GetLogger())
			assert.NotNil(t, c.GetReportGenerator())
			assert.NotNil(t, c.GetExporter())
			assert.Equal(t, cfg.Ledger.File, c.GetStore().Path())
			assert.NoError(t, c.Close())
		})
	}
}

func TestNewContainerWithLogger(t *testing.T) {
	logger := logging.NewMockLogger()
	c, err := NewContainerWithLogger(testConfig(t), logger)
	require.NoError(t, err)

	assert.Same(t, logger, c.GetLogger())
	assert.True(t, logger.HasEntry("DEBUG", "Container initialized successfully"))

	_, err = NewContainerWithLogger(testConfig(t), nil)
	assert.EqualError(t, err, "logger cannot be nil")
}

func TestContainer_StoreIsUsable(t *testing.T) {
	c, err := NewContainerWithLogger(testConfig(t), logging.NewMockLogger())
	require.NoError(t, err)

	store := c.GetStore()
	require.NoError(t, store.Initialize())

	records, err := store.All()
	require.NoError(t, err)
	assert.Empty(t, records)
}

func TestContainer_NewRendererUsesConfiguredWidth(t *testing.T) {
	c, err := NewContainerWithLogger(testConfig(t), logging.NewMockLogger())
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, c.NewRenderer(&buf).MonthlyNetSaving(nil))
	assert.Contains(t, buf.String(), "(no data)")
}
