package oracle

import (
	"fmt"

	"github.com/go-highway/fixedvec/hwy"
	"github.com/go-highway/fixedvec/hwy/lane"
)

//go:generate go run ../../cmd/hwytables --output tables_gen.go

// TableLanes is the lane count of every literal table row.
const TableLanes = 4

// table is one literal test case: op applied to a and b (or to a and
// shift) yields want. mask selects the lanes of the masked ops.
type table[T hwy.Integers] struct {
	op    string
	a, b  [TableLanes]T
	shift uint64
	mask  [TableLanes]bool
	want  [TableLanes]T
}

// TableOps lists the operations covered by the literal tables.
var TableOps = []string{
	"add", "sub", "mul", "satadd", "satsub", "min", "max",
	"shl", "shr", "rol", "ror", "maskedadd",
}

// RunTables checks every literal row against the vector operations.
func RunTables(tc *Context) {
	runTable(tc, tablesInt8)
	runTable(tc, tablesUint8)
	runTable(tc, tablesInt16)
	runTable(tc, tablesUint16)
	runTable(tc, tablesInt32)
	runTable(tc, tablesUint32)
	runTable(tc, tablesInt64)
	runTable(tc, tablesUint64)
}

func runTable[T hwy.Integers](tc *Context, rows []table[T]) {
	for i, r := range rows {
		got, ok := applyTable(r)
		name := fmt.Sprintf("%s[%s] row %d", r.op, lane.KindOf[T](), i)
		if !tc.Check(name, ok, "unknown op %q", r.op) {
			continue
		}
		CheckLanes(tc, name, got.Lanes(), r.want[:])
	}
}

func applyTable[T hwy.Integers](r table[T]) (hwy.Vec[T, hwy.N4], bool) {
	a := hwy.Load[T, hwy.N4](r.a[:])
	b := hwy.Load[T, hwy.N4](r.b[:])
	switch r.op {
	case "add":
		return a.Add(b), true
	case "sub":
		return a.Sub(b), true
	case "mul":
		return a.Mul(b), true
	case "satadd":
		return a.SatAdd(b), true
	case "satsub":
		return a.SatSub(b), true
	case "min":
		return a.Min(b), true
	case "max":
		return a.Max(b), true
	case "shl":
		return hwy.ShlScalar(a, r.shift), true
	case "shr":
		return hwy.ShrScalar(a, r.shift), true
	case "rol":
		return hwy.RolScalar(a, r.shift), true
	case "ror":
		return hwy.RorScalar(a, r.shift), true
	case "maskedadd":
		return a.MaskedAdd(hwy.MaskLoad[hwy.N4](r.mask[:]), b), true
	}
	return hwy.Vec[T, hwy.N4]{}, false
}
