package pipeline

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTransformWidthAndScaling(t *testing.T) {
	p := loadTestPredictor(t)

	vec, err := p.pre.Transform(baselineSample())
	require.NoError(t, err)
	require.Len(t, vec, p.pre.Width())
	require.Equal(t, 20, p.pre.Width())

	// Numeric block is zero at the fitted means.
	for i := 0; i < 14; i++ {
		assert.Zero(t, vec[i], "numeric column %d", i)
	}

	// One-hot blocks: first category of each, divided by its scale.
	assert.Equal(t, 2.0, vec[14])  // DIEM_QUAN_TRAC "Kênh Xáng", scale 0.5
	assert.Zero(t, vec[15])
	assert.Equal(t, 2.5, vec[16])  // XA "Tân Ân", scale 0.4
	assert.Zero(t, vec[17])
	assert.Equal(t, 2.5, vec[18])  // HUYEN "Ngọc Hiển", scale 0.4
	assert.Zero(t, vec[19])
}

func TestTransformUnseenCategoryEncodesUnknown(t *testing.T) {
	p := loadTestPredictor(t)

	s := baselineSample()
	s.Xa = "Xã Lạ"

	vec, err := p.pre.Transform(s)
	require.NoError(t, err)

	// The whole XA block stays zero instead of erroring.
	assert.Zero(t, vec[16])
	assert.Zero(t, vec[17])
}

func TestTransformNilSample(t *testing.T) {
	p := loadTestPredictor(t)
	_, err := p.pre.Transform(nil)
	assert.Error(t, err)
}
