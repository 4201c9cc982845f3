package stdparts

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/partforge/mechdraw"
)

func TestLookupBearing(t *testing.T) {
	b, err := LookupBearing("6204")
	require.NoError(t, err)
	assert.Equal(t, float32(20), b.Bore)
	assert.Equal(t, float32(47), b.Outer)
	assert.Equal(t, float32(14), b.Width)
}

func TestLookupFastener(t *testing.T) {
	f, err := LookupFastener("M10")
	require.NoError(t, err)
	assert.Equal(t, float32(10), f.Diameter)
	assert.Equal(t, float32(1.5), f.Pitch)
	assert.Equal(t, float32(16), f.HeadWidth)
	assert.Equal(t, float32(20), f.WasherOuter)
}

func TestLookupUnknownDesignation(t *testing.T) {
	_, err := LookupBearing("9999")
	var nf *NotFoundError
	require.ErrorAs(t, err, &nf)
	assert.Equal(t, FamilyBearing, nf.Family)
	assert.Equal(t, "9999", nf.Designation)
}

func TestResolveBearingParams(t *testing.T) {
	p, err := Resolve(FamilyBearing, "6204")
	require.NoError(t, err)
	inner, _ := p.Float("inner_diameter")
	outer, _ := p.Float("outer_diameter")
	width, _ := p.Float("width")
	assert.Equal(t, float32(20), inner)
	assert.Equal(t, float32(47), outer)
	assert.Equal(t, float32(14), width)
}

func TestResolveUnknownFamily(t *testing.T) {
	_, err := Resolve("sprocket", "X1")
	var nf *NotFoundError
	assert.True(t, errors.As(err, &nf))
}

func TestMergeExplicitWins(t *testing.T) {
	resolved := mechdraw.Params{"diameter": float32(10), "pitch": float32(1.5)}
	explicit := mechdraw.Params{"diameter": float32(12)}
	merged := Merge(resolved, explicit)

	dia, _ := merged.Float("diameter")
	pitch, _ := merged.Float("pitch")
	assert.Equal(t, float32(12), dia, "explicit field must override the table")
	assert.Equal(t, float32(1.5), pitch, "table field must survive when not overridden")

	// Merge must not mutate its inputs.
	orig, _ := resolved.Float("diameter")
	assert.Equal(t, float32(10), orig)
}

func TestDesignationsSorted(t *testing.T) {
	des := Designations(FamilyFastener)
	require.NotEmpty(t, des)
	assert.Contains(t, des, "M10")
	assert.IsIncreasing(t, des)

	assert.Empty(t, Designations("sprocket"))
}
