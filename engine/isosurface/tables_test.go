package isosurface

import "testing"

func TestRegularTablesAreConsistent(t *testing.T) {
	for caseCode := 0; caseCode < 256; caseCode++ {
		cell := regularCellData[regularCellClass[caseCode]]
		codes := regularVertexData[caseCode]

		used := 0
		for _, code := range codes {
			if code != 0 {
				used++
			}
		}
		if used != cell.VertexCount() {
			t.Fatalf("case %#x: %d vertex codes for %d vertices", caseCode, used, cell.VertexCount())
		}

		for i := 0; i < cell.VertexCount(); i++ {
			v0 := (codes[i] >> 4) & 0x0F
			v1 := codes[i] & 0x0F
			if v0 >= v1 || v1 > 7 {
				t.Fatalf("case %#x: malformed edge %#x", caseCode, codes[i])
			}
			inside0 := caseCode&(1<<v0) != 0
			inside1 := caseCode&(1<<v1) != 0
			if inside0 == inside1 {
				t.Fatalf("case %#x: edge %d-%d does not cross the surface", caseCode, v0, v1)
			}
		}

		for i := 0; i < cell.TriangleCount()*3; i++ {
			if int(cell.vertexIndex[i]) >= cell.VertexCount() {
				t.Fatalf("case %#x: triangle index %d out of range", caseCode, cell.vertexIndex[i])
			}
		}
	}
	if regularCellData[regularCellClass[0]].TriangleCount() != 0 || regularCellData[regularCellClass[255]].TriangleCount() != 0 {
		t.Fatalf("uniform cases must not produce triangles")
	}
}
