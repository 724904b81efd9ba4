package money

// Unit is one denomination level in a System.
type Unit struct {
	// Name is the singular unit name, e.g. "shilling".
	Name string `json:"name"`

	// Symbol tags the unit in rendered and parsed text, e.g. "s".
	Symbol string `json:"symbol"`

	// Prefix renders the symbol before the count ("£1") instead of after ("4s").
	Prefix bool `json:"prefix,omitempty"`

	// Count is how many of this unit make one of the next larger unit.
	// The largest unit has Count 0: nothing above it to carry into.
	Count int64 `json:"count"`
}

// System is an ordered denomination table, largest unit first.
//
// A System fixes the carry bases for normalization: an Amount in the system
// keeps every field below its unit's Count, carrying overflow upward.
// Systems are identified by Name; arithmetic never crosses systems.
type System struct {
	Name  string `json:"name"`
	Units []Unit `json:"units"`
}

// Smallest returns the system's smallest unit.
func (s *System) Smallest() Unit {
	return s.Units[len(s.Units)-1]
}

// factors returns, per unit, the number of smallest units it is worth.
// For sterling: [240, 12, 1].
func (s *System) factors() []int64 {
	f := make([]int64, len(s.Units))
	f[len(f)-1] = 1
	for i := len(f) - 2; i >= 0; i-- {
		f[i] = f[i+1] * s.Units[i+1].Count
	}
	return f
}

// sterling is the built-in pre-decimal pounds/shillings/pence system:
// 20 shillings to the pound, 12 pence to the shilling.
var sterling = &System{
	Name: "sterling",
	Units: []Unit{
		{Name: "pound", Symbol: "£", Prefix: true, Count: 0},
		{Name: "shilling", Symbol: "s", Count: 20},
		{Name: "penny", Symbol: "d", Count: 12},
	},
}

// Sterling returns the built-in pre-decimal £/s/d system.
// The returned System is shared; callers must not modify it.
func Sterling() *System {
	return sterling
}
