package value

// Kind is a node in the runtime kind hierarchy.
//
// Abstract kinds (Any, Number) organize the hierarchy and have no direct
// instances; concrete kinds are the runtime kinds of actual Values and have
// no children. The hierarchy is fixed at package init and never mutated.
type Kind struct {
	name     string
	abstract bool
	parent   *Kind
}

// Kind hierarchy:
//
//	Any
//	├── Number
//	│   ├── Int
//	│   └── Money
//	├── Bool
//	└── Text
var (
	Any       = &Kind{name: "Any", abstract: true}
	Number    = &Kind{name: "Number", abstract: true, parent: Any}
	IntKind   = &Kind{name: "Int", parent: Number}
	MoneyKind = &Kind{name: "Money", parent: Number}
	BoolKind  = &Kind{name: "Bool", parent: Any}
	TextKind  = &Kind{name: "Text", parent: Any}
)

// Kinds lists every kind in the hierarchy, parents before children.
func Kinds() []*Kind {
	return []*Kind{Any, Number, IntKind, MoneyKind, BoolKind, TextKind}
}

// String returns the kind's name.
func (k *Kind) String() string { return k.name }

// Abstract reports whether the kind can have direct instances.
func (k *Kind) Abstract() bool { return k.abstract }

// Parent returns the kind's supertype, or nil for Any.
func (k *Kind) Parent() *Kind { return k.parent }

// IsA reports whether k is other or a descendant of other.
func (k *Kind) IsA(other *Kind) bool {
	for c := k; c != nil; c = c.parent {
		if c == other {
			return true
		}
	}
	return false
}

// DistanceTo returns how many parent steps separate k from other, and
// whether other is reachable at all. DistanceTo(k, k) is 0.
// Used by dispatch to rank method specificity.
func (k *Kind) DistanceTo(other *Kind) (int, bool) {
	steps := 0
	for c := k; c != nil; c = c.parent {
		if c == other {
			return steps, true
		}
		steps++
	}
	return 0, false
}
