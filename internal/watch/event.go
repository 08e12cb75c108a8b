package watch

import "time"

// Kind is the type of a filesystem event.
type Kind int

const (
	KindOther Kind = iota
	KindAdded
	KindDirAdded
	KindChanged
	KindRemoved
	KindDirRemoved
)

var kindNames = map[Kind]string{
	KindOther:      "other",
	KindAdded:      "added",
	KindDirAdded:   "dirAdded",
	KindChanged:    "changed",
	KindRemoved:    "removed",
	KindDirRemoved: "dirRemoved",
}

// String returns the kind name, e.g. "dirAdded".
func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return "other"
}

// Relevant reports whether events of this kind trigger regeneration.
func (k Kind) Relevant() bool {
	switch k {
	case KindAdded, KindDirAdded, KindChanged, KindRemoved, KindDirRemoved:
		return true
	default:
		return false
	}
}

// Event is a single filesystem change under the watched root.
type Event struct {
	Kind Kind
	Path string
	Time time.Time
}
