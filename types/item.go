package types

// Actions a client may request against the server's list.
const (
	PushItem    = "PushItem"
	PopItem     = "PopItem"
	UnshiftItem = "UnshiftItem"
	ShiftItem   = "ShiftItem"
	GetItem     = "GetItem"
	SetItem     = "SetItem"
	InsertItem  = "InsertItem"
	RemoveItem  = "RemoveItem"
	InspectList = "InspectList"
)

// Item is a single operation request, JSON-encoded on the queue. Index is
// only meaningful for the indexed actions, Value only for the inserting and
// overwriting ones.
type Item struct {
	Action string
	Index  int
	Value  string
}
