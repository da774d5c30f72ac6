package types

import "fmt"

// Node is a single link of a LinkedList chain. It carries an arbitrary
// payload in Value and owns the link to its successor.
type Node[V any] struct {
	next *Node[V]

	Value V
}

// Next returns the successor node, or nil for the last node of a chain and
// for nodes detached by a removal.
func (n *Node[V]) Next() *Node[V] {
	return n.next
}

// LinkedList is a singly linked list that tracks its head, tail and length
// so that appends on either end stay O(1). The zero value is an empty list
// ready to use.
//
// A LinkedList is not safe for concurrent use; callers sharing one across
// goroutines must serialize access themselves.
type LinkedList[V any] struct {
	head   *Node[V]
	tail   *Node[V]
	length int
}

func NewLinkedList[V any]() *LinkedList[V] {
	return &LinkedList[V]{}
}

// Len returns the number of nodes currently in the chain.
func (l *LinkedList[V]) Len() int {
	return l.length
}

// Head returns the first node, or nil if the list is empty. A full
// traversal walks Next() from here until it returns nil; every traversal
// starts fresh.
func (l *LinkedList[V]) Head() *Node[V] {
	return l.head
}

// Tail returns the last node, or nil if the list is empty.
func (l *LinkedList[V]) Tail() *Node[V] {
	return l.tail
}

// Push appends value at the end of the list and returns the list so calls
// can be chained.
func (l *LinkedList[V]) Push(value V) *LinkedList[V] {
	node := &Node[V]{Value: value}

	if l.head == nil {
		// First element
		l.head = node
		l.tail = node
	} else {
		l.tail.next = node
		l.tail = node
	}

	l.length++
	return l
}

// Pop removes and returns the last node. It reports false when the list is
// empty. Without backward links the new tail has to be found by walking the
// chain with a trailing reference, so Pop is O(n) where front removal is
// O(1).
func (l *LinkedList[V]) Pop() (*Node[V], bool) {
	if l.head == nil {
		return nil, false
	}

	temp := l.head
	pre := l.head
	for temp.next != nil {
		pre = temp
		temp = temp.next
	}

	l.tail = pre
	pre.next = nil
	l.length--

	if l.length == 0 {
		// pre == temp == the only node; the list is empty now.
		l.head = nil
		l.tail = nil
	}

	return temp, true
}

// Unshift inserts value at the front of the list and returns the list so
// calls can be chained.
func (l *LinkedList[V]) Unshift(value V) *LinkedList[V] {
	node := &Node[V]{Value: value}

	if l.head == nil {
		l.head = node
		l.tail = node
	} else {
		node.next = l.head
		l.head = node
	}

	l.length++
	return l
}

// Shift removes and returns the first node, detached from the remaining
// chain. It reports false when the list is empty.
func (l *LinkedList[V]) Shift() (*Node[V], bool) {
	if l.head == nil {
		return nil, false
	}

	node := l.head
	l.head = node.next
	l.length--

	if l.length == 0 {
		l.tail = nil
	}

	node.next = nil
	return node, true
}

// Get returns the node at position index, walking from the head. It reports
// false when index is outside [0, Len()).
func (l *LinkedList[V]) Get(index int) (*Node[V], bool) {
	if index < 0 || index >= l.length {
		return nil, false
	}

	node := l.head
	for i := 0; i < index; i++ {
		node = node.next
	}

	return node, true
}

// Set overwrites the value at position index and reports whether the index
// was in range.
func (l *LinkedList[V]) Set(index int, value V) bool {
	node, ok := l.Get(index)
	if !ok {
		return false
	}

	node.Value = value
	return true
}

// Insert places value at position index, shifting later nodes one position
// towards the tail. index may equal Len(), which appends. It reports false
// when index is outside [0, Len()].
func (l *LinkedList[V]) Insert(index int, value V) bool {
	if index < 0 || index > l.length {
		return false
	}
	if index == l.length {
		l.Push(value)
		return true
	}
	if index == 0 {
		l.Unshift(value)
		return true
	}

	pre, _ := l.Get(index - 1)
	node := &Node[V]{Value: value}
	node.next = pre.next
	pre.next = node
	l.length++
	return true
}

// Remove takes out the node at position index and returns it detached from
// the remaining chain. It reports false when index is outside [0, Len()).
func (l *LinkedList[V]) Remove(index int) (*Node[V], bool) {
	if index < 0 || index >= l.length {
		return nil, false
	}
	if index == 0 {
		return l.Shift()
	}
	if index == l.length-1 {
		return l.Pop()
	}

	pre, _ := l.Get(index - 1)
	node := pre.next
	pre.next = node.next
	node.next = nil
	l.length--
	return node, true
}

// Values collects the payloads in list order by a full traversal.
func (l *LinkedList[V]) Values() []V {
	values := make([]V, 0, l.length)
	for node := l.head; node != nil; node = node.next {
		values = append(values, node.Value)
	}

	return values
}

// String renders the diagnostic view of the list: its length, the head and
// tail values (or an explicit empty marker) and the ordered values.
func (l *LinkedList[V]) String() string {
	if l.length == 0 {
		return "LinkedList(length: 0, head: empty, tail: empty, values: [])"
	}

	return fmt.Sprintf("LinkedList(length: %d, head: %v, tail: %v, values: %v)",
		l.length, l.head.Value, l.tail.Value, l.Values())
}
