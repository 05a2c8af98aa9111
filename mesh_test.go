package main

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
)

func TestGridVerticesLieOnGroundPlane(t *testing.T) {
	verts := gridVertices(10, 20)

	// 21 lines per direction, 2 vertices per line, 3 floats per vertex.
	assert.Len(t, verts, 2*21*2*3)

	for i := 1; i < len(verts); i += 3 {
		assert.Equal(t, float32(0), verts[i])
	}
}

func TestGridVerticesSpanExtent(t *testing.T) {
	verts := gridVertices(5, 10)
	for i := 0; i < len(verts); i += 3 {
		assert.LessOrEqual(t, verts[i], float32(5))
		assert.GreaterOrEqual(t, verts[i], float32(-5))
		assert.LessOrEqual(t, verts[i+2], float32(5))
		assert.GreaterOrEqual(t, verts[i+2], float32(-5))
	}
}

func TestCubeNormalsAreUnitAxisAligned(t *testing.T) {
	assert.Len(t, cubeVertices, 24*6)
	assert.Len(t, cubeIndices, 36)

	for i := 0; i < len(cubeVertices); i += 6 {
		n := mgl32.Vec3{cubeVertices[i+3], cubeVertices[i+4], cubeVertices[i+5]}
		assert.InDelta(t, 1, float64(n.Len()), 1e-6)

		// Flat-shaded faces: every normal is along a principal axis, and
		// it points away from the face it belongs to.
		pos := mgl32.Vec3{cubeVertices[i], cubeVertices[i+1], cubeVertices[i+2]}
		assert.InDelta(t, 0.5, float64(pos.Dot(n)), 1e-6)
	}
}

func TestAxesSegmentsStartAtOrigin(t *testing.T) {
	assert.Len(t, axesVertices, axisSegments*2*3)
	for i := 0; i < len(axesVertices); i += 6 {
		assert.Equal(t, float32(0), axesVertices[i])
		assert.Equal(t, float32(0), axesVertices[i+1])
		assert.Equal(t, float32(0), axesVertices[i+2])
	}
}
