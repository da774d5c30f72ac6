package types

// ArrayMap simulates an array over an index-keyed map: indices run from 0 to
// Len()-1 without gaps. It is independent of LinkedList and, like it, leaves
// concurrent access control to the caller.
type ArrayMap[V comparable] struct {
	data   map[int]V
	length int
}

func NewArrayMap[V comparable]() *ArrayMap[V] {
	return &ArrayMap[V]{
		data: make(map[int]V),
	}
}

// Len returns the number of stored items.
func (a *ArrayMap[V]) Len() int {
	return a.length
}

// Push appends item behind the last index and returns the new length.
func (a *ArrayMap[V]) Push(item V) int {
	a.data[a.length] = item
	a.length++
	return a.length
}

// Get returns the item stored at index, reporting false when index is
// outside [0, Len()).
func (a *ArrayMap[V]) Get(index int) (item V, ok bool) {
	if index < 0 || index >= a.length {
		return
	}

	return a.data[index], true
}

// IndexOf returns the lowest index holding item, reporting false when item
// is not present.
func (a *ArrayMap[V]) IndexOf(item V) (int, bool) {
	for i := 0; i < a.length; i++ {
		if a.data[i] == item {
			return i, true
		}
	}

	return 0, false
}

// Pop removes and returns the item at the last index, reporting false when
// the ArrayMap is empty.
func (a *ArrayMap[V]) Pop() (item V, ok bool) {
	if a.length == 0 {
		return
	}

	item = a.data[a.length-1]
	delete(a.data, a.length-1)
	a.length--
	return item, true
}

// Shift removes and returns the item at index 0 and moves every following
// item one index down, reporting false when the ArrayMap is empty.
func (a *ArrayMap[V]) Shift() (item V, ok bool) {
	if a.length == 0 {
		return
	}

	item = a.data[0]
	for i := 0; i < a.length-1; i++ {
		a.data[i] = a.data[i+1]
	}
	delete(a.data, a.length-1)
	a.length--
	return item, true
}
