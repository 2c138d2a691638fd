package meshing

// slot names a corner or edge midpoint of a cell
type slot uint8

const (
	slotTopLeft slot = iota
	slotTopRight
	slotBottomRight
	slotBottomLeft
	slotCentreTop
	slotCentreRight
	slotCentreBottom
	slotCentreLeft

	slotCount
)

const (
	variantEmpty = 0
	variantSolid = 15
)

// caseEntry is the geometry of one marching-squares variant. polygon is
// clockwise (y up) and is fan triangulated. Each edges entry is a run of
// points registered as directed boundary edges.
type caseEntry struct {
	polygon []slot
	edges   [][]slot
}

// Short aliases keep the table readable
const (
	tl = slotTopLeft
	tr = slotTopRight
	br = slotBottomRight
	bl = slotBottomLeft
	ct = slotCentreTop
	cr = slotCentreRight
	cb = slotCentreBottom
	cl = slotCentreLeft
)

var caseTable = [16]caseEntry{
	0: {},

	// single corner
	1: {polygon: []slot{cl, cb, bl}, edges: [][]slot{{cl, cb}}},
	2: {polygon: []slot{br, cb, cr}, edges: [][]slot{{cb, cr}}},
	4: {polygon: []slot{tr, cr, ct}, edges: [][]slot{{cr, ct}}},
	8: {polygon: []slot{tl, ct, cl}, edges: [][]slot{{ct, cl}}},

	// two adjacent corners
	3:  {polygon: []slot{cr, br, bl, cl}, edges: [][]slot{{cl, cr}}},
	6:  {polygon: []slot{ct, tr, br, cb}, edges: [][]slot{{cb, ct}}},
	9:  {polygon: []slot{tl, ct, cb, bl}, edges: [][]slot{{ct, cb}}},
	12: {polygon: []slot{tl, tr, cr, cl}, edges: [][]slot{{cr, cl}}},

	// opposite corners: one diamond, two separate edges
	5:  {polygon: []slot{ct, tr, cr, cb, bl, cl}, edges: [][]slot{{cr, cb}, {cl, ct}}},
	10: {polygon: []slot{tl, ct, cr, br, cb, cl}, edges: [][]slot{{ct, cr}, {cb, cl}}},

	// three corners
	7:  {polygon: []slot{ct, tr, br, bl, cl}, edges: [][]slot{{cl, ct}}},
	11: {polygon: []slot{tl, ct, cr, br, bl}, edges: [][]slot{{ct, cr}}},
	13: {polygon: []slot{tl, tr, cr, cb, bl}, edges: [][]slot{{cr, cb}}},
	14: {polygon: []slot{tl, tr, br, cb, cl}, edges: [][]slot{{cb, cl}}},

	// fully solid cells are merged into blocks instead
	15: {polygon: []slot{tl, tr, br, bl}},
}
