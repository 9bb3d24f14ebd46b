// Package integration bridges external mesh sources into the contact mesh
// representation. Currently it adapts gocfd DG3D tetrahedral meshes, which
// covers the Gambit, Gmsh and SU2 readers.
package integration

import (
	"fmt"

	dg3d "github.com/notargets/gocfd/DG3D/mesh"
	"github.com/notargets/gocfd/DG3D/mesh/readers"
	"github.com/notargets/gocfd/utils"
	"github.com/notargets/mortar/mesh"
)

// FromDG3D converts a gocfd tetrahedral mesh into a contact mesh. Facet
// connectivity is rebuilt; gocfd's own face maps are ignored so the two mesh
// representations stay independent.
func FromDG3D(gm *dg3d.Mesh) (*mesh.Mesh, error) {
	if gm.NumElements == 0 {
		return nil, fmt.Errorf("mesh has no elements")
	}
	cells := make([][]int, 0, gm.NumElements)
	for e := 0; e < gm.NumElements; e++ {
		if gm.ElementTypes[e] != utils.Tet {
			return nil, fmt.Errorf("element %d is %s, only tetrahedra are supported",
				e, gm.ElementTypes[e])
		}
		cells = append(cells, gm.EtoV[e])
	}
	return mesh.New(3, 3, gm.Vertices, cells)
}

// LoadMeshFile reads a mesh file (.neu, .msh, .su2) with the gocfd readers
// and converts it.
func LoadMeshFile(path string) (*mesh.Mesh, error) {
	gm, err := readers.ReadMeshFile(path)
	if err != nil {
		return nil, err
	}
	return FromDG3D(gm)
}
