package isosurface

// Case tables for regular cells. A case code is built from the sign bits of the
// eight corner densities (bit i set when corner i is inside). Corner i sits at
// offset (i&1, (i>>1)&1, (i>>2)&1) from the cell origin.

type regularCell struct {
	geometryCounts uint8 // high nibble: vertex count, low nibble: triangle count
	vertexIndex    [15]uint8
}

func (c regularCell) VertexCount() int {
	return int(c.geometryCounts >> 4)
}

func (c regularCell) TriangleCount() int {
	return int(c.geometryCounts & 0x0F)
}

// regularCellClass maps a case code to an index into regularCellData.
var regularCellClass = [256]uint8{
	0x00, 0x01, 0x01, 0x02, 0x01, 0x02, 0x03, 0x04, 0x01, 0x03, 0x02, 0x04, 0x02, 0x04, 0x04, 0x02,
	0x01, 0x02, 0x03, 0x04, 0x03, 0x04, 0x05, 0x06, 0x03, 0x07, 0x07, 0x06, 0x07, 0x06, 0x08, 0x04,
	0x01, 0x03, 0x02, 0x04, 0x03, 0x07, 0x07, 0x06, 0x03, 0x05, 0x04, 0x06, 0x07, 0x08, 0x06, 0x04,
	0x02, 0x04, 0x04, 0x02, 0x07, 0x06, 0x08, 0x04, 0x07, 0x08, 0x06, 0x04, 0x09, 0x0A, 0x0A, 0x02,
	0x01, 0x03, 0x03, 0x07, 0x02, 0x04, 0x07, 0x06, 0x03, 0x05, 0x07, 0x08, 0x04, 0x06, 0x06, 0x04,
	0x02, 0x04, 0x07, 0x06, 0x04, 0x02, 0x08, 0x04, 0x07, 0x08, 0x09, 0x0A, 0x06, 0x04, 0x0A, 0x02,
	0x03, 0x05, 0x07, 0x08, 0x07, 0x08, 0x09, 0x0A, 0x05, 0x0B, 0x08, 0x0C, 0x08, 0x0C, 0x0A, 0x06,
	0x04, 0x06, 0x06, 0x04, 0x06, 0x04, 0x0A, 0x02, 0x08, 0x0C, 0x0A, 0x06, 0x0A, 0x06, 0x03, 0x01,
	0x01, 0x03, 0x03, 0x07, 0x03, 0x07, 0x05, 0x08, 0x02, 0x07, 0x04, 0x06, 0x04, 0x06, 0x06, 0x04,
	0x03, 0x07, 0x05, 0x08, 0x05, 0x08, 0x0B, 0x0C, 0x07, 0x09, 0x08, 0x0A, 0x08, 0x0A, 0x0C, 0x06,
	0x02, 0x07, 0x04, 0x06, 0x07, 0x09, 0x08, 0x0A, 0x04, 0x08, 0x02, 0x04, 0x06, 0x0A, 0x04, 0x02,
	0x04, 0x06, 0x06, 0x04, 0x08, 0x0A, 0x0C, 0x06, 0x06, 0x0A, 0x04, 0x02, 0x0A, 0x03, 0x06, 0x01,
	0x02, 0x07, 0x07, 0x09, 0x04, 0x06, 0x08, 0x0A, 0x04, 0x08, 0x06, 0x0A, 0x02, 0x04, 0x04, 0x02,
	0x04, 0x06, 0x08, 0x0A, 0x06, 0x04, 0x0C, 0x06, 0x06, 0x0A, 0x0A, 0x03, 0x04, 0x02, 0x06, 0x01,
	0x04, 0x08, 0x06, 0x0A, 0x06, 0x0A, 0x0A, 0x03, 0x06, 0x0C, 0x04, 0x06, 0x04, 0x06, 0x02, 0x01,
	0x02, 0x04, 0x04, 0x02, 0x04, 0x02, 0x06, 0x01, 0x04, 0x06, 0x02, 0x01, 0x02, 0x01, 0x01, 0x00,
}

// regularCellData lists, per class, the triangles as indices into the
// vertex list of the case.
var regularCellData = [13]regularCell{
	{0x00, [15]uint8{}},
	{0x31, [15]uint8{0, 2, 1}},
	{0x42, [15]uint8{0, 2, 1, 0, 3, 2}},
	{0x62, [15]uint8{0, 2, 1, 3, 5, 4}},
	{0x53, [15]uint8{0, 2, 1, 0, 3, 2, 0, 4, 3}},
	{0x93, [15]uint8{0, 2, 1, 3, 5, 4, 6, 8, 7}},
	{0x64, [15]uint8{0, 2, 1, 0, 3, 2, 0, 4, 3, 0, 5, 4}},
	{0x73, [15]uint8{0, 2, 1, 0, 3, 2, 4, 6, 5}},
	{0x84, [15]uint8{0, 2, 1, 0, 3, 2, 0, 4, 3, 5, 7, 6}},
	{0x84, [15]uint8{0, 2, 1, 0, 3, 2, 4, 6, 5, 4, 7, 6}},
	{0x75, [15]uint8{0, 2, 1, 0, 3, 2, 0, 4, 3, 0, 5, 4, 0, 6, 5}},
	{0xC4, [15]uint8{0, 2, 1, 3, 5, 4, 6, 8, 7, 9, 11, 10}},
	{0x95, [15]uint8{0, 2, 1, 0, 3, 2, 0, 4, 3, 0, 5, 4, 6, 8, 7}},
}

// regularVertexData gives, per case, one code per emitted vertex. The low byte
// holds the two corner indices of the edge (lower index in the high nibble).
// The high byte holds the reuse data: the high nibble is the direction to the
// cell owning the vertex (1 = -x, 2 = -y, 4 = -z, 8 = owned by this cell) and
// the low nibble is the reuse slot in that cell.
var regularVertexData = [256][12]uint16{
	{},
	{0x6201, 0x3304, 0x5102},
	{0x6201, 0x4113, 0x2315},
	{0x5102, 0x4113, 0x2315, 0x3304},
	{0x5102, 0x1326, 0x4223},
	{0x6201, 0x3304, 0x1326, 0x4223},
	{0x6201, 0x4113, 0x2315, 0x5102, 0x1326, 0x4223},
	{0x3304, 0x1326, 0x4223, 0x4113, 0x2315},
	{0x4113, 0x4223, 0x8337},
	{0x6201, 0x3304, 0x5102, 0x4113, 0x4223, 0x8337},
	{0x6201, 0x4223, 0x8337, 0x2315},
	{0x5102, 0x4223, 0x8337, 0x2315, 0x3304},
	{0x5102, 0x1326, 0x8337, 0x4113},
	{0x6201, 0x3304, 0x1326, 0x8337, 0x4113},
	{0x6201, 0x5102, 0x1326, 0x8337, 0x2315},
	{0x3304, 0x1326, 0x8337, 0x2315},
	{0x3304, 0x2245, 0x1146},
	{0x6201, 0x2245, 0x1146, 0x5102},
	{0x6201, 0x4113, 0x2315, 0x3304, 0x2245, 0x1146},
	{0x5102, 0x4113, 0x2315, 0x2245, 0x1146},
	{0x5102, 0x1326, 0x4223, 0x3304, 0x2245, 0x1146},
	{0x6201, 0x2245, 0x1146, 0x1326, 0x4223},
	{0x6201, 0x4113, 0x2315, 0x5102, 0x1326, 0x4223, 0x3304, 0x2245, 0x1146},
	{0x4113, 0x2315, 0x2245, 0x1146, 0x1326, 0x4223},
	{0x3304, 0x2245, 0x1146, 0x4113, 0x4223, 0x8337},
	{0x6201, 0x2245, 0x1146, 0x5102, 0x4113, 0x4223, 0x8337},
	{0x6201, 0x4223, 0x8337, 0x2315, 0x3304, 0x2245, 0x1146},
	{0x5102, 0x4223, 0x8337, 0x2315, 0x2245, 0x1146},
	{0x5102, 0x1326, 0x8337, 0x4113, 0x3304, 0x2245, 0x1146},
	{0x6201, 0x2245, 0x1146, 0x1326, 0x8337, 0x4113},
	{0x6201, 0x5102, 0x1326, 0x8337, 0x2315, 0x3304, 0x2245, 0x1146},
	{0x2315, 0x2245, 0x1146, 0x1326, 0x8337},
	{0x2315, 0x8157, 0x2245},
	{0x6201, 0x3304, 0x5102, 0x2315, 0x8157, 0x2245},
	{0x6201, 0x4113, 0x8157, 0x2245},
	{0x5102, 0x4113, 0x8157, 0x2245, 0x3304},
	{0x5102, 0x1326, 0x4223, 0x2315, 0x8157, 0x2245},
	{0x6201, 0x3304, 0x1326, 0x4223, 0x2315, 0x8157, 0x2245},
	{0x6201, 0x4113, 0x8157, 0x2245, 0x5102, 0x1326, 0x4223},
	{0x3304, 0x1326, 0x4223, 0x4113, 0x8157, 0x2245},
	{0x4113, 0x4223, 0x8337, 0x2315, 0x8157, 0x2245},
	{0x6201, 0x3304, 0x5102, 0x4113, 0x4223, 0x8337, 0x2315, 0x8157, 0x2245},
	{0x6201, 0x4223, 0x8337, 0x8157, 0x2245},
	{0x5102, 0x4223, 0x8337, 0x8157, 0x2245, 0x3304},
	{0x5102, 0x1326, 0x8337, 0x4113, 0x2315, 0x8157, 0x2245},
	{0x6201, 0x3304, 0x1326, 0x8337, 0x4113, 0x2315, 0x8157, 0x2245},
	{0x6201, 0x5102, 0x1326, 0x8337, 0x8157, 0x2245},
	{0x3304, 0x1326, 0x8337, 0x8157, 0x2245},
	{0x3304, 0x2315, 0x8157, 0x1146},
	{0x6201, 0x2315, 0x8157, 0x1146, 0x5102},
	{0x6201, 0x4113, 0x8157, 0x1146, 0x3304},
	{0x5102, 0x4113, 0x8157, 0x1146},
	{0x3304, 0x2315, 0x8157, 0x1146, 0x5102, 0x1326, 0x4223},
	{0x6201, 0x2315, 0x8157, 0x1146, 0x1326, 0x4223},
	{0x6201, 0x4113, 0x8157, 0x1146, 0x3304, 0x5102, 0x1326, 0x4223},
	{0x4113, 0x8157, 0x1146, 0x1326, 0x4223},
	{0x3304, 0x2315, 0x8157, 0x1146, 0x4113, 0x4223, 0x8337},
	{0x6201, 0x2315, 0x8157, 0x1146, 0x5102, 0x4113, 0x4223, 0x8337},
	{0x6201, 0x4223, 0x8337, 0x8157, 0x1146, 0x3304},
	{0x5102, 0x4223, 0x8337, 0x8157, 0x1146},
	{0x5102, 0x1326, 0x8337, 0x4113, 0x3304, 0x2315, 0x8157, 0x1146},
	{0x6201, 0x2315, 0x8157, 0x1146, 0x1326, 0x8337, 0x4113},
	{0x6201, 0x5102, 0x1326, 0x8337, 0x8157, 0x1146, 0x3304},
	{0x1326, 0x8337, 0x8157, 0x1146},
	{0x1326, 0x1146, 0x8267},
	{0x6201, 0x3304, 0x5102, 0x1326, 0x1146, 0x8267},
	{0x6201, 0x4113, 0x2315, 0x1326, 0x1146, 0x8267},
	{0x5102, 0x4113, 0x2315, 0x3304, 0x1326, 0x1146, 0x8267},
	{0x5102, 0x1146, 0x8267, 0x4223},
	{0x6201, 0x3304, 0x1146, 0x8267, 0x4223},
	{0x5102, 0x1146, 0x8267, 0x4223, 0x6201, 0x4113, 0x2315},
	{0x3304, 0x1146, 0x8267, 0x4223, 0x4113, 0x2315},
	{0x4113, 0x4223, 0x8337, 0x1326, 0x1146, 0x8267},
	{0x6201, 0x3304, 0x5102, 0x4113, 0x4223, 0x8337, 0x1326, 0x1146, 0x8267},
	{0x6201, 0x4223, 0x8337, 0x2315, 0x1326, 0x1146, 0x8267},
	{0x5102, 0x4223, 0x8337, 0x2315, 0x3304, 0x1326, 0x1146, 0x8267},
	{0x5102, 0x1146, 0x8267, 0x8337, 0x4113},
	{0x6201, 0x3304, 0x1146, 0x8267, 0x8337, 0x4113},
	{0x6201, 0x5102, 0x1146, 0x8267, 0x8337, 0x2315},
	{0x3304, 0x1146, 0x8267, 0x8337, 0x2315},
	{0x3304, 0x2245, 0x8267, 0x1326},
	{0x6201, 0x2245, 0x8267, 0x1326, 0x5102},
	{0x3304, 0x2245, 0x8267, 0x1326, 0x6201, 0x4113, 0x2315},
	{0x5102, 0x4113, 0x2315, 0x2245, 0x8267, 0x1326},
	{0x5102, 0x3304, 0x2245, 0x8267, 0x4223},
	{0x6201, 0x2245, 0x8267, 0x4223},
	{0x5102, 0x3304, 0x2245, 0x8267, 0x4223, 0x6201, 0x4113, 0x2315},
	{0x4113, 0x2315, 0x2245, 0x8267, 0x4223},
	{0x3304, 0x2245, 0x8267, 0x1326, 0x4113, 0x4223, 0x8337},
	{0x6201, 0x2245, 0x8267, 0x1326, 0x5102, 0x4113, 0x4223, 0x8337},
	{0x6201, 0x4223, 0x8337, 0x2315, 0x3304, 0x2245, 0x8267, 0x1326},
	{0x5102, 0x4223, 0x8337, 0x2315, 0x2245, 0x8267, 0x1326},
	{0x5102, 0x3304, 0x2245, 0x8267, 0x8337, 0x4113},
	{0x6201, 0x2245, 0x8267, 0x8337, 0x4113},
	{0x6201, 0x5102, 0x3304, 0x2245, 0x8267, 0x8337, 0x2315},
	{0x2315, 0x2245, 0x8267, 0x8337},
	{0x2315, 0x8157, 0x2245, 0x1326, 0x1146, 0x8267},
	{0x6201, 0x3304, 0x5102, 0x2315, 0x8157, 0x2245, 0x1326, 0x1146, 0x8267},
	{0x6201, 0x4113, 0x8157, 0x2245, 0x1326, 0x1146, 0x8267},
	{0x5102, 0x4113, 0x8157, 0x2245, 0x3304, 0x1326, 0x1146, 0x8267},
	{0x5102, 0x1146, 0x8267, 0x4223, 0x2315, 0x8157, 0x2245},
	{0x6201, 0x3304, 0x1146, 0x8267, 0x4223, 0x2315, 0x8157, 0x2245},
	{0x6201, 0x4113, 0x8157, 0x2245, 0x5102, 0x1146, 0x8267, 0x4223},
	{0x3304, 0x1146, 0x8267, 0x4223, 0x4113, 0x8157, 0x2245},
	{0x4113, 0x4223, 0x8337, 0x2315, 0x8157, 0x2245, 0x1326, 0x1146, 0x8267},
	{0x6201, 0x3304, 0x5102, 0x4113, 0x4223, 0x8337, 0x2315, 0x8157, 0x2245, 0x1326, 0x1146, 0x8267},
	{0x6201, 0x4223, 0x8337, 0x8157, 0x2245, 0x1326, 0x1146, 0x8267},
	{0x5102, 0x4223, 0x8337, 0x8157, 0x2245, 0x3304, 0x1326, 0x1146, 0x8267},
	{0x5102, 0x1146, 0x8267, 0x8337, 0x4113, 0x2315, 0x8157, 0x2245},
	{0x6201, 0x3304, 0x1146, 0x8267, 0x8337, 0x4113, 0x2315, 0x8157, 0x2245},
	{0x6201, 0x5102, 0x1146, 0x8267, 0x8337, 0x8157, 0x2245},
	{0x3304, 0x1146, 0x8267, 0x8337, 0x8157, 0x2245},
	{0x3304, 0x2315, 0x8157, 0x8267, 0x1326},
	{0x6201, 0x2315, 0x8157, 0x8267, 0x1326, 0x5102},
	{0x6201, 0x4113, 0x8157, 0x8267, 0x1326, 0x3304},
	{0x5102, 0x4113, 0x8157, 0x8267, 0x1326},
	{0x5102, 0x3304, 0x2315, 0x8157, 0x8267, 0x4223},
	{0x6201, 0x2315, 0x8157, 0x8267, 0x4223},
	{0x6201, 0x4113, 0x8157, 0x8267, 0x4223, 0x5102, 0x3304},
	{0x4113, 0x8157, 0x8267, 0x4223},
	{0x3304, 0x2315, 0x8157, 0x8267, 0x1326, 0x4113, 0x4223, 0x8337},
	{0x6201, 0x2315, 0x8157, 0x8267, 0x1326, 0x5102, 0x4113, 0x4223, 0x8337},
	{0x6201, 0x4223, 0x8337, 0x8157, 0x8267, 0x1326, 0x3304},
	{0x5102, 0x4223, 0x8337, 0x8157, 0x8267, 0x1326},
	{0x5102, 0x3304, 0x2315, 0x8157, 0x8267, 0x8337, 0x4113},
	{0x6201, 0x2315, 0x8157, 0x8267, 0x8337, 0x4113},
	{0x6201, 0x5102, 0x3304, 0x8337, 0x8157, 0x8267},
	{0x8337, 0x8157, 0x8267},
	{0x8337, 0x8267, 0x8157},
	{0x6201, 0x3304, 0x5102, 0x8337, 0x8267, 0x8157},
	{0x6201, 0x4113, 0x2315, 0x8337, 0x8267, 0x8157},
	{0x5102, 0x4113, 0x2315, 0x3304, 0x8337, 0x8267, 0x8157},
	{0x5102, 0x1326, 0x4223, 0x8337, 0x8267, 0x8157},
	{0x6201, 0x3304, 0x1326, 0x4223, 0x8337, 0x8267, 0x8157},
	{0x6201, 0x4113, 0x2315, 0x5102, 0x1326, 0x4223, 0x8337, 0x8267, 0x8157},
	{0x3304, 0x1326, 0x4223, 0x4113, 0x2315, 0x8337, 0x8267, 0x8157},
	{0x4113, 0x4223, 0x8267, 0x8157},
	{0x4113, 0x4223, 0x8267, 0x8157, 0x6201, 0x3304, 0x5102},
	{0x6201, 0x4223, 0x8267, 0x8157, 0x2315},
	{0x5102, 0x4223, 0x8267, 0x8157, 0x2315, 0x3304},
	{0x5102, 0x1326, 0x8267, 0x8157, 0x4113},
	{0x6201, 0x3304, 0x1326, 0x8267, 0x8157, 0x4113},
	{0x6201, 0x5102, 0x1326, 0x8267, 0x8157, 0x2315},
	{0x3304, 0x1326, 0x8267, 0x8157, 0x2315},
	{0x3304, 0x2245, 0x1146, 0x8337, 0x8267, 0x8157},
	{0x6201, 0x2245, 0x1146, 0x5102, 0x8337, 0x8267, 0x8157},
	{0x6201, 0x4113, 0x2315, 0x3304, 0x2245, 0x1146, 0x8337, 0x8267, 0x8157},
	{0x5102, 0x4113, 0x2315, 0x2245, 0x1146, 0x8337, 0x8267, 0x8157},
	{0x5102, 0x1326, 0x4223, 0x3304, 0x2245, 0x1146, 0x8337, 0x8267, 0x8157},
	{0x6201, 0x2245, 0x1146, 0x1326, 0x4223, 0x8337, 0x8267, 0x8157},
	{0x6201, 0x4113, 0x2315, 0x5102, 0x1326, 0x4223, 0x3304, 0x2245, 0x1146, 0x8337, 0x8267, 0x8157},
	{0x4113, 0x2315, 0x2245, 0x1146, 0x1326, 0x4223, 0x8337, 0x8267, 0x8157},
	{0x4113, 0x4223, 0x8267, 0x8157, 0x3304, 0x2245, 0x1146},
	{0x6201, 0x2245, 0x1146, 0x5102, 0x4113, 0x4223, 0x8267, 0x8157},
	{0x6201, 0x4223, 0x8267, 0x8157, 0x2315, 0x3304, 0x2245, 0x1146},
	{0x5102, 0x4223, 0x8267, 0x8157, 0x2315, 0x2245, 0x1146},
	{0x5102, 0x1326, 0x8267, 0x8157, 0x4113, 0x3304, 0x2245, 0x1146},
	{0x6201, 0x2245, 0x1146, 0x1326, 0x8267, 0x8157, 0x4113},
	{0x6201, 0x5102, 0x1326, 0x8267, 0x8157, 0x2315, 0x3304, 0x2245, 0x1146},
	{0x2315, 0x2245, 0x1146, 0x1326, 0x8267, 0x8157},
	{0x2315, 0x8337, 0x8267, 0x2245},
	{0x2315, 0x8337, 0x8267, 0x2245, 0x6201, 0x3304, 0x5102},
	{0x6201, 0x4113, 0x8337, 0x8267, 0x2245},
	{0x5102, 0x4113, 0x8337, 0x8267, 0x2245, 0x3304},
	{0x2315, 0x8337, 0x8267, 0x2245, 0x5102, 0x1326, 0x4223},
	{0x6201, 0x3304, 0x1326, 0x4223, 0x2315, 0x8337, 0x8267, 0x2245},
	{0x6201, 0x4113, 0x8337, 0x8267, 0x2245, 0x5102, 0x1326, 0x4223},
	{0x3304, 0x1326, 0x4223, 0x4113, 0x8337, 0x8267, 0x2245},
	{0x4113, 0x4223, 0x8267, 0x2245, 0x2315},
	{0x4113, 0x4223, 0x8267, 0x2245, 0x2315, 0x6201, 0x3304, 0x5102},
	{0x6201, 0x4223, 0x8267, 0x2245},
	{0x5102, 0x4223, 0x8267, 0x2245, 0x3304},
	{0x5102, 0x1326, 0x8267, 0x2245, 0x2315, 0x4113},
	{0x6201, 0x3304, 0x1326, 0x8267, 0x2245, 0x2315, 0x4113},
	{0x6201, 0x5102, 0x1326, 0x8267, 0x2245},
	{0x3304, 0x1326, 0x8267, 0x2245},
	{0x3304, 0x2315, 0x8337, 0x8267, 0x1146},
	{0x6201, 0x2315, 0x8337, 0x8267, 0x1146, 0x5102},
	{0x6201, 0x4113, 0x8337, 0x8267, 0x1146, 0x3304},
	{0x5102, 0x4113, 0x8337, 0x8267, 0x1146},
	{0x3304, 0x2315, 0x8337, 0x8267, 0x1146, 0x5102, 0x1326, 0x4223},
	{0x6201, 0x2315, 0x8337, 0x8267, 0x1146, 0x1326, 0x4223},
	{0x6201, 0x4113, 0x8337, 0x8267, 0x1146, 0x3304, 0x5102, 0x1326, 0x4223},
	{0x4113, 0x8337, 0x8267, 0x1146, 0x1326, 0x4223},
	{0x3304, 0x2315, 0x4113, 0x4223, 0x8267, 0x1146},
	{0x6201, 0x2315, 0x4113, 0x4223, 0x8267, 0x1146, 0x5102},
	{0x6201, 0x4223, 0x8267, 0x1146, 0x3304},
	{0x5102, 0x4223, 0x8267, 0x1146},
	{0x5102, 0x1326, 0x8267, 0x1146, 0x3304, 0x2315, 0x4113},
	{0x6201, 0x2315, 0x4113, 0x1326, 0x8267, 0x1146},
	{0x6201, 0x5102, 0x1326, 0x8267, 0x1146, 0x3304},
	{0x1326, 0x8267, 0x1146},
	{0x1326, 0x1146, 0x8157, 0x8337},
	{0x1326, 0x1146, 0x8157, 0x8337, 0x6201, 0x3304, 0x5102},
	{0x1326, 0x1146, 0x8157, 0x8337, 0x6201, 0x4113, 0x2315},
	{0x5102, 0x4113, 0x2315, 0x3304, 0x1326, 0x1146, 0x8157, 0x8337},
	{0x5102, 0x1146, 0x8157, 0x8337, 0x4223},
	{0x6201, 0x3304, 0x1146, 0x8157, 0x8337, 0x4223},
	{0x5102, 0x1146, 0x8157, 0x8337, 0x4223, 0x6201, 0x4113, 0x2315},
	{0x3304, 0x1146, 0x8157, 0x8337, 0x4223, 0x4113, 0x2315},
	{0x4113, 0x4223, 0x1326, 0x1146, 0x8157},
	{0x4113, 0x4223, 0x1326, 0x1146, 0x8157, 0x6201, 0x3304, 0x5102},
	{0x6201, 0x4223, 0x1326, 0x1146, 0x8157, 0x2315},
	{0x5102, 0x4223, 0x1326, 0x1146, 0x8157, 0x2315, 0x3304},
	{0x5102, 0x1146, 0x8157, 0x4113},
	{0x6201, 0x3304, 0x1146, 0x8157, 0x4113},
	{0x6201, 0x5102, 0x1146, 0x8157, 0x2315},
	{0x3304, 0x1146, 0x8157, 0x2315},
	{0x3304, 0x2245, 0x8157, 0x8337, 0x1326},
	{0x6201, 0x2245, 0x8157, 0x8337, 0x1326, 0x5102},
	{0x3304, 0x2245, 0x8157, 0x8337, 0x1326, 0x6201, 0x4113, 0x2315},
	{0x5102, 0x4113, 0x2315, 0x2245, 0x8157, 0x8337, 0x1326},
	{0x5102, 0x3304, 0x2245, 0x8157, 0x8337, 0x4223},
	{0x6201, 0x2245, 0x8157, 0x8337, 0x4223},
	{0x5102, 0x3304, 0x2245, 0x8157, 0x8337, 0x4223, 0x6201, 0x4113, 0x2315},
	{0x4113, 0x2315, 0x2245, 0x8157, 0x8337, 0x4223},
	{0x3304, 0x2245, 0x8157, 0x4113, 0x4223, 0x1326},
	{0x6201, 0x2245, 0x8157, 0x4113, 0x4223, 0x1326, 0x5102},
	{0x6201, 0x4223, 0x1326, 0x3304, 0x2245, 0x8157, 0x2315},
	{0x5102, 0x4223, 0x1326, 0x2315, 0x2245, 0x8157},
	{0x5102, 0x3304, 0x2245, 0x8157, 0x4113},
	{0x6201, 0x2245, 0x8157, 0x4113},
	{0x6201, 0x5102, 0x3304, 0x2245, 0x8157, 0x2315},
	{0x2315, 0x2245, 0x8157},
	{0x2315, 0x8337, 0x1326, 0x1146, 0x2245},
	{0x2315, 0x8337, 0x1326, 0x1146, 0x2245, 0x6201, 0x3304, 0x5102},
	{0x6201, 0x4113, 0x8337, 0x1326, 0x1146, 0x2245},
	{0x5102, 0x4113, 0x8337, 0x1326, 0x1146, 0x2245, 0x3304},
	{0x5102, 0x1146, 0x2245, 0x2315, 0x8337, 0x4223},
	{0x6201, 0x3304, 0x1146, 0x2245, 0x2315, 0x8337, 0x4223},
	{0x6201, 0x4113, 0x8337, 0x4223, 0x5102, 0x1146, 0x2245},
	{0x3304, 0x1146, 0x2245, 0x4113, 0x8337, 0x4223},
	{0x4113, 0x4223, 0x1326, 0x1146, 0x2245, 0x2315},
	{0x4113, 0x4223, 0x1326, 0x1146, 0x2245, 0x2315, 0x6201, 0x3304, 0x5102},
	{0x6201, 0x4223, 0x1326, 0x1146, 0x2245},
	{0x5102, 0x4223, 0x1326, 0x1146, 0x2245, 0x3304},
	{0x5102, 0x1146, 0x2245, 0x2315, 0x4113},
	{0x6201, 0x3304, 0x1146, 0x2245, 0x2315, 0x4113},
	{0x6201, 0x5102, 0x1146, 0x2245},
	{0x3304, 0x1146, 0x2245},
	{0x3304, 0x2315, 0x8337, 0x1326},
	{0x6201, 0x2315, 0x8337, 0x1326, 0x5102},
	{0x6201, 0x4113, 0x8337, 0x1326, 0x3304},
	{0x5102, 0x4113, 0x8337, 0x1326},
	{0x5102, 0x3304, 0x2315, 0x8337, 0x4223},
	{0x6201, 0x2315, 0x8337, 0x4223},
	{0x6201, 0x4113, 0x8337, 0x4223, 0x5102, 0x3304},
	{0x4113, 0x8337, 0x4223},
	{0x3304, 0x2315, 0x4113, 0x4223, 0x1326},
	{0x6201, 0x2315, 0x4113, 0x4223, 0x1326, 0x5102},
	{0x6201, 0x4223, 0x1326, 0x3304},
	{0x5102, 0x4223, 0x1326},
	{0x5102, 0x3304, 0x2315, 0x4113},
	{0x6201, 0x2315, 0x4113},
	{0x6201, 0x5102, 0x3304},
	{},
}
