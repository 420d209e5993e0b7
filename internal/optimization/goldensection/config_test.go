package goldensection

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConfig(t *testing.T) {
	tests := []struct {
		name     string
		maxIters int
		xAbsTol  float64
		xRelTol  float64
		wantErr  error
	}{
		{
			name:     "valid tight tolerances",
			maxIters: 100,
			xAbsTol:  1e-12,
			xRelTol:  1e-12,
		},
		{
			name:     "single iteration allowed",
			maxIters: 1,
			xAbsTol:  1e-6,
			xRelTol:  0,
		},
		{
			name:     "zero iterations rejected",
			maxIters: 0,
			xAbsTol:  1e-12,
			xRelTol:  1e-12,
			wantErr:  ErrMaxIters,
		},
		{
			name:     "negative absolute tolerance rejected",
			maxIters: 100,
			xAbsTol:  -1e-12,
			xRelTol:  1e-12,
			wantErr:  ErrXAbsTol,
		},
		{
			name:     "negative relative tolerance rejected",
			maxIters: 100,
			xAbsTol:  1e-12,
			xRelTol:  -1e-12,
			wantErr:  ErrXRelTol,
		},
		{
			name:     "NaN tolerance rejected",
			maxIters: 100,
			xAbsTol:  math.NaN(),
			xRelTol:  1e-12,
			wantErr:  ErrXAbsTol,
		},
		{
			name:     "infinite tolerance rejected",
			maxIters: 100,
			xAbsTol:  1e-12,
			xRelTol:  math.Inf(1),
			wantErr:  ErrXRelTol,
		},
		{
			name:     "both tolerances zero rejected",
			maxIters: 100,
			xAbsTol:  0,
			xRelTol:  0,
			wantErr:  ErrNoTolerance,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := NewConfig(tt.maxIters, tt.xAbsTol, tt.xRelTol)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.maxIters, cfg.MaxIters())
			assert.Equal(t, tt.xAbsTol, cfg.XAbsTol())
			assert.Equal(t, tt.xRelTol, cfg.XRelTol())
		})
	}
}

func TestDefaultConfigIsValid(t *testing.T) {
	def := DefaultConfig()

	cfg, err := NewConfig(def.MaxIters(), def.XAbsTol(), def.XRelTol())
	require.NoError(t, err)
	assert.Equal(t, def, cfg)
	assert.Equal(t, 100, def.MaxIters())
}
