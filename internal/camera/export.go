package camera

import (
	"fmt"
	"strings"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/xlab/linmath"
)

// MatrixLayout is the memory order matrices are handed to the GPU in. It is
// chosen once per process so projection, view and model agree.
type MatrixLayout int

const (
	ColumnMajor MatrixLayout = iota
	RowMajor
)

func (l MatrixLayout) String() string {
	switch l {
	case ColumnMajor:
		return "column_major"
	case RowMajor:
		return "row_major"
	}
	return fmt.Sprintf("MatrixLayout(%d)", int(l))
}

func ParseMatrixLayout(s string) (MatrixLayout, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "column_major", "column":
		return ColumnMajor, nil
	case "row_major", "row":
		return RowMajor, nil
	}
	return ColumnMajor, fmt.Errorf("unknown matrix layout %q", s)
}

// Transpose is the flag a GL uniform upload needs for this layout.
func (l MatrixLayout) Transpose() bool {
	return l == RowMajor
}

// ToLinmath copies m into a linmath matrix laid out as requested. For
// ColumnMajor out[i] is column i, for RowMajor out[i] is row i.
func ToLinmath(m mgl32.Mat4, layout MatrixLayout) linmath.Mat4x4 {
	var out linmath.Mat4x4
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			if layout == RowMajor {
				out[i][j] = m.At(i, j)
			} else {
				out[i][j] = m[i*4+j]
			}
		}
	}
	return out
}

// ViewMatrixExport is GetViewMatrix in the given layout.
func (c *Camera) ViewMatrixExport(layout MatrixLayout) linmath.Mat4x4 {
	return ToLinmath(c.GetViewMatrix(), layout)
}
