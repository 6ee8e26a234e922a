package records_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agentstation/omm/pkg/errors"
	"github.com/agentstation/omm/pkg/records"
)

func TestParseVersion(t *testing.T) {
	tests := []struct {
		in      string
		parts   []int
		wantErr bool
	}{
		{in: "12.0", parts: []int{12, 0}},
		{in: "9", parts: []int{9}},
		{in: "16.0.1", parts: []int{16, 0, 1}},
		{in: "007.10", parts: []int{7, 10}},
		{in: "", wantErr: true},
		{in: "12.", wantErr: true},
		{in: ".1", wantErr: true},
		{in: "12.x", wantErr: true},
		{in: "-1.0", wantErr: true},
		{in: "+1", wantErr: true},
		{in: "comment", wantErr: true},
		{in: "12 .0", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			v, err := records.ParseVersion(tt.in)
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, errors.IsValidationError(err))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.parts, v.Parts())
			assert.Equal(t, tt.in, v.String())
		})
	}
}

func TestVersionCompare(t *testing.T) {
	tests := []struct {
		a, b string
		want int
	}{
		{"12.0", "9.0", 1},
		{"9.0", "12.0", -1},
		{"12.0", "12.0", 0},
		{"12.0", "12", 1},
		{"12", "12.0", -1},
		{"10.0", "9.10", 1},
		{"16.0", "16.00", 0},
	}

	for _, tt := range tests {
		t.Run(tt.a+"_vs_"+tt.b, func(t *testing.T) {
			a := records.MustParseVersion(tt.a)
			b := records.MustParseVersion(tt.b)
			assert.Equal(t, tt.want, a.Compare(b))
		})
	}
}

func TestMustParseVersionPanics(t *testing.T) {
	assert.Panics(t, func() { records.MustParseVersion("twelve") })
}
