package engine

import "fmt"

// OpKind identifies an operation applied to a table
type OpKind byte

const (
	// InsertOp inserts Value
	InsertOp OpKind = iota
	// ContainsOp queries Value
	ContainsOp
	// RemoveOp tombstones Value
	RemoveOp
	// SnapshotOp captures the current render; Value is ignored
	SnapshotOp
)

func (k OpKind) String() string {
	switch k {
	case InsertOp:
		return "insert"
	case ContainsOp:
		return "contains"
	case RemoveOp:
		return "remove"
	case SnapshotOp:
		return "snapshot"
	default:
		return fmt.Sprintf("OpKind(%d)", byte(k))
	}
}

// Op is a single scripted operation
type Op struct {
	Kind  OpKind
	Value int
}

// Insert returns an InsertOp for v
func Insert(v int) Op { return Op{Kind: InsertOp, Value: v} }

// Contains returns a ContainsOp for v
func Contains(v int) Op { return Op{Kind: ContainsOp, Value: v} }

// Remove returns a RemoveOp for v
func Remove(v int) Op { return Op{Kind: RemoveOp, Value: v} }

// Snapshot returns a SnapshotOp
func Snapshot() Op { return Op{Kind: SnapshotOp} }

func (o Op) String() string {
	if o.Kind == SnapshotOp {
		return o.Kind.String()
	}
	return fmt.Sprintf("%s(%d)", o.Kind, o.Value)
}

// DemoScript is the canonical demonstration: five colliding inserts, a
// snapshot, a lookup and removal of 20, and a final snapshot.
func DemoScript() []Op {
	return []Op{
		Insert(10),
		Insert(20),
		Insert(30),
		Insert(21),
		Insert(31),
		Snapshot(),
		Contains(20),
		Remove(20),
		Snapshot(),
	}
}
