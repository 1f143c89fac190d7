package export

import (
	"os"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/piwi3910/RoomFit/internal/model"
)

// conflictLayout has one item through the right wall and two overlapping chairs.
func conflictLayout() model.Layout {
	return model.Layout{
		RoomDimensions: model.RoomDimensions{Width: 6, Length: 5, Height: 3},
		FurnitureItems: []model.FurnitureItem{
			{ID: "bed-1", Type: "bed", Position: mgl64.Vec3{2.5, 0, 0}, Price: model.Float64Ptr(1000)},
			{ID: "chair-1", Type: "chair", Position: mgl64.Vec3{-1, 0, 1}},
			{ID: "chair-2", Type: "chair", Position: mgl64.Vec3{-0.8, 0, 1.2}, Color: "#3d5a80"},
		},
	}
}

func assertFile(t *testing.T, path string, minSize int64) []byte {
	t.Helper()
	info, err := os.Stat(path)
	require.NoError(t, err, "file was not created")
	assert.Greater(t, info.Size(), minSize)
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	return data
}
