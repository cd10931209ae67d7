package export

import (
	"fmt"

	"github.com/yofu/dxf"
	"github.com/yofu/dxf/color"
	"github.com/yofu/dxf/drawing"

	"github.com/piwi3910/cargostack/internal/model"
)

// Layer names used in DXF exports.
const (
	dxfContainerLayer = "CONTAINERS"
	dxfItemLayer      = "ITEMS"
)

// dxfContainerGap separates neighbouring containers, as a fraction of the
// container width.
const dxfContainerGap = 0.25

// ExportDXF writes a 3D wireframe of every packing: twelve LINE entities for
// each container outline and for each placed item. Containers are laid out
// side by side along the y axis.
func ExportDXF(path string, result model.PackResult) error {
	if len(result.Packings) == 0 {
		return fmt.Errorf("no packings to export")
	}

	d := dxf.NewDrawing()
	if _, err := d.AddLayer(dxfContainerLayer, color.Red, dxf.DefaultLineType, false); err != nil {
		return fmt.Errorf("failed to add layer %s: %w", dxfContainerLayer, err)
	}
	if _, err := d.AddLayer(dxfItemLayer, dxf.DefaultColor, dxf.DefaultLineType, false); err != nil {
		return fmt.Errorf("failed to add layer %s: %w", dxfItemLayer, err)
	}
	frame := containerFrame(result.Container)
	stride := frame[1] * (1 + dxfContainerGap)

	for i, pk := range result.Packings {
		offset := [3]float64{0, float64(i) * stride, 0}

		if err := d.ChangeLayer(dxfContainerLayer); err != nil {
			return err
		}
		if err := boxLines(d, offset, frame); err != nil {
			return fmt.Errorf("failed to draw container %d: %w", i+1, err)
		}

		if err := d.ChangeLayer(dxfItemLayer); err != nil {
			return err
		}
		for j, p := range pk.Placements {
			lo := [3]float64{
				offset[0] + p.Position[0],
				offset[1] + p.Position[1],
				offset[2] + p.Position[2],
			}
			if err := boxLines(d, lo, p.Dimensions); err != nil {
				return fmt.Errorf("failed to draw item %d of container %d: %w", j+1, i+1, err)
			}
		}
	}

	if err := d.SaveAs(path); err != nil {
		return fmt.Errorf("failed to write DXF: %w", err)
	}
	return nil
}

// boxLines draws the twelve edges of the box with low corner lo and the
// given size.
func boxLines(d *drawing.Drawing, lo, size [3]float64) error {
	hi := [3]float64{lo[0] + size[0], lo[1] + size[1], lo[2] + size[2]}
	corner := func(i int) [3]float64 {
		c := lo
		for axis := 0; axis < 3; axis++ {
			if i&(1<<axis) != 0 {
				c[axis] = hi[axis]
			}
		}
		return c
	}
	// Edges join corners whose index differs in exactly one bit
	for i := 0; i < 8; i++ {
		for axis := 0; axis < 3; axis++ {
			j := i | 1<<axis
			if j == i {
				continue
			}
			a, b := corner(i), corner(j)
			if _, err := d.Line(a[0], a[1], a[2], b[0], b[1], b[2]); err != nil {
				return err
			}
		}
	}
	return nil
}
