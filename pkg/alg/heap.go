package alg

import (
	"container/heap"
)

// Heap 最小堆 元素的排序分数可能在入堆后改变 改变后需调用Update
type Heap[T comparable] struct {
	inner *heapInner[T]
}

type heapInner[T comparable] struct {
	content []T
	index   map[T]int
	score   func(T) float64
}

func (h *heapInner[T]) Len() int {
	return len(h.content)
}

func (h *heapInner[T]) Less(i, j int) bool {
	return h.score(h.content[i]) < h.score(h.content[j])
}

func (h *heapInner[T]) Swap(i, j int) {
	h.content[i], h.content[j] = h.content[j], h.content[i]
	h.index[h.content[i]] = i
	h.index[h.content[j]] = j
}

func (h *heapInner[T]) Push(x any) {
	item := x.(T)
	h.index[item] = len(h.content)
	h.content = append(h.content, item)
}

func (h *heapInner[T]) Pop() any {
	n := len(h.content)
	item := h.content[n-1]
	var zero T
	h.content[n-1] = zero
	h.content = h.content[:n-1]
	delete(h.index, item)
	return item
}

func NewHeap[T comparable](score func(T) float64) *Heap[T] {
	return &Heap[T]{
		inner: &heapInner[T]{
			content: make([]T, 0),
			index:   make(map[T]int),
			score:   score,
		},
	}
}

func (h *Heap[T]) Push(item T) {
	heap.Push(h.inner, item)
}

// Pop 弹出分数最小的元素 堆为空时ok为false
func (h *Heap[T]) Pop() (item T, ok bool) {
	if h.inner.Len() == 0 {
		return item, false
	}
	return heap.Pop(h.inner).(T), true
}

// Update 元素分数改变后重新调整位置 元素不在堆中时返回false
func (h *Heap[T]) Update(item T) bool {
	i, exist := h.inner.index[item]
	if !exist {
		return false
	}
	heap.Fix(h.inner, i)
	return true
}

func (h *Heap[T]) Size() int {
	return h.inner.Len()
}
