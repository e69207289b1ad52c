package listdiff

import "fmt"

// Kind is the type of a list edit.
type Kind int

const (
	Move Kind = iota
	Add
	Remove
	Replace
)

var kindNames = [...]string{
	Move:    "move",
	Add:     "add",
	Remove:  "remove",
	Replace: "replace",
}

func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return fmt.Sprintf("Kind(%d)", int(k))
	}
	return kindNames[k]
}

// Action is one list edit.
//
//	Remove   A: index in the list being edited
//	Add      A: index in the next list
//	Replace  A: index in the list being edited, B: index in the next list
//	Move     A: from, B: to
type Action struct {
	Kind Kind
	A    int
	B    int
}

func (a Action) String() string {
	switch a.Kind {
	case Move, Replace:
		return fmt.Sprintf("%s(%d, %d)", a.Kind, a.A, a.B)
	default:
		return fmt.Sprintf("%s(%d)", a.Kind, a.A)
	}
}

// Count returns the number of actions of each kind.
func Count(actions []Action) map[Kind]int {
	out := make(map[Kind]int, 4)
	for _, a := range actions {
		out[a.Kind]++
	}
	return out
}
