package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	adaptermocks "covquest.dev/pkg/covquest/internal/adapter/mocks"
)

func TestNewPipeline(t *testing.T) {
	tests := []struct {
		name       string
		settings   func() Settings
		wantErr    string
		wantLayout string
	}{
		{
			name:       "defaults",
			settings:   DefaultSettings,
			wantLayout: LayoutJacoco,
		},
		{
			name: "nested layout",
			settings: func() Settings {
				s := DefaultSettings()
				s.Layout = LayoutNested

				return s
			},
			wantLayout: LayoutNested,
		},
		{
			name: "empty settings fall back to defaults",
			settings: func() Settings {
				return Settings{}
			},
			wantLayout: LayoutJacoco,
		},
		{
			name: "unknown layout",
			settings: func() Settings {
				s := DefaultSettings()
				s.Layout = "lcov"

				return s
			},
			wantErr: "unknown report layout",
		},
		{
			name: "invalid exclude",
			settings: func() Settings {
				s := DefaultSettings()
				s.Exclude = []string{"[a-"}

				return s
			},
			wantErr: "invalid exclude pattern",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pipeline, err := NewPipeline(
				adaptermocks.NewMockRepositoryOpener(t),
				adaptermocks.NewMockReportReader(t),
				adaptermocks.NewMockWorkspaceFSAdapter(t),
				tt.settings(),
				nil,
			)

			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.wantLayout, pipeline.Naming.Name())
			assert.NotNil(t, pipeline.Walker)
			assert.NotNil(t, pipeline.Selector)
			assert.NotNil(t, pipeline.Inspector)
			assert.NotNil(t, pipeline.Generator)
		})
	}
}
