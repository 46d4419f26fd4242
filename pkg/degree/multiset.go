/*
Copyright 2022 The Numaproj Authors.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package degree

import (
	"errors"
	"fmt"
	"math/bits"
)

const defaultCapacity = 16

var (
	// ErrInvalidValue is returned for values smaller than 1.
	ErrInvalidValue = errors.New("value must be positive")
	// ErrValueNotFound is returned when removing a value the multiset does not hold.
	ErrValueNotFound = errors.New("value not found")
)

// Multiset is a bag of positive integers supporting rank queries.
type Multiset struct {
	// counts[v] is the number of entries equal to v, index 0 is unused.
	counts []int
	// tree is the 1-indexed Fenwick tree over counts. len(tree)-1 is always a power of two.
	tree []int
	size int
}

// NewMultiset returns an empty Multiset.
func NewMultiset() *Multiset {
	return &Multiset{
		counts: make([]int, defaultCapacity+1),
		tree:   make([]int, defaultCapacity+1),
	}
}

// Len returns the number of entries.
func (m *Multiset) Len() int {
	return m.size
}

// Count returns how many entries are equal to v.
func (m *Multiset) Count(v int) int {
	if v < 1 || v > m.capacity() {
		return 0
	}
	return m.counts[v]
}

// Insert adds one entry with value v.
func (m *Multiset) Insert(v int) error {
	if v < 1 {
		return fmt.Errorf("insert %d: %w", v, ErrInvalidValue)
	}
	m.grow(v)
	m.add(v, 1)
	m.size++
	return nil
}

// Remove deletes one entry with value v.
func (m *Multiset) Remove(v int) error {
	if m.Count(v) == 0 {
		return fmt.Errorf("remove %d: %w", v, ErrValueNotFound)
	}
	m.add(v, -1)
	m.size--
	return nil
}

// Move replaces one entry with value from by an entry with value to.
func (m *Multiset) Move(from, to int) error {
	if to < 1 {
		return fmt.Errorf("move %d to %d: %w", from, to, ErrInvalidValue)
	}
	if m.Count(from) == 0 {
		return fmt.Errorf("move %d to %d: %w", from, to, ErrValueNotFound)
	}
	if from == to {
		return nil
	}
	m.grow(to)
	m.add(from, -1)
	m.add(to, 1)
	return nil
}

// Kth returns the k-th smallest value, k starting at 1.
func (m *Multiset) Kth(k int) (int, bool) {
	if k < 1 || k > m.size {
		return 0, false
	}
	pos := 0
	for step := m.capacity(); step > 0; step >>= 1 {
		if next := pos + step; next <= m.capacity() && m.tree[next] < k {
			pos = next
			k -= m.tree[next]
		}
	}
	return pos + 1, true
}

// Median returns the two middle values of the sorted multiset. Both are the same element
// when the size is odd. ok is false for an empty multiset.
func (m *Multiset) Median() (lo, hi int, ok bool) {
	if m.size == 0 {
		return 0, 0, false
	}
	hi, _ = m.Kth(m.size/2 + 1)
	if m.size%2 == 1 {
		return hi, hi, true
	}
	lo, _ = m.Kth(m.size / 2)
	return lo, hi, true
}

// Values returns all entries in ascending order.
func (m *Multiset) Values() []int {
	out := make([]int, 0, m.size)
	for v := 1; v <= m.capacity(); v++ {
		for i := 0; i < m.counts[v]; i++ {
			out = append(out, v)
		}
	}
	return out
}

func (m *Multiset) capacity() int {
	return len(m.tree) - 1
}

func (m *Multiset) add(v, delta int) {
	m.counts[v] += delta
	for i := v; i <= m.capacity(); i += i & -i {
		m.tree[i] += delta
	}
}

// grow resizes to the next power of two holding v and rebuilds the tree in linear time.
func (m *Multiset) grow(v int) {
	if v <= m.capacity() {
		return
	}
	capacity := 1 << bits.Len(uint(v-1))
	counts := make([]int, capacity+1)
	copy(counts, m.counts)
	tree := make([]int, capacity+1)
	copy(tree, counts)
	for i := 1; i <= capacity; i++ {
		if j := i + (i & -i); j <= capacity {
			tree[j] += tree[i]
		}
	}
	m.counts = counts
	m.tree = tree
}
