package seq

import (
	"fmt"

	"github.com/tychoish/dsa/dt/cmp"
)

// Algorithm selects the strategy used by SortWith. Every algorithm
// sorts by relinking nodes and never copies or moves the values
// stored in the list. Only Merge, Insertion, and Bubble are stable.
type Algorithm int

const (
	// Merge is an iterative bottom-up merge sort: O(n log n)
	// comparisons, no extra storage, stable. It is the algorithm
	// used by Sort.
	Merge Algorithm = iota
	// Insertion sort: O(n²), stable, linear on sorted input.
	Insertion
	// Selection sort: O(n²) comparisons, at most n relinks.
	Selection
	// Bubble sort: O(n²), stable.
	Bubble
	// Quick sort partitions around the middle element into three
	// runs: O(n log n) expected comparisons.
	Quick
	// Heap sort orders pointers to the nodes in a binary heap, using
	// O(n) extra storage: O(n log n) comparisons.
	Heap
)

func (a Algorithm) String() string {
	switch a {
	case Merge:
		return "merge"
	case Insertion:
		return "insertion"
	case Selection:
		return "selection"
	case Bubble:
		return "bubble"
	case Quick:
		return "quick"
	case Heap:
		return "heap"
	default:
		return fmt.Sprintf("Algorithm(%d)", int(a))
	}
}

// Algorithms lists every supported sorting algorithm.
func Algorithms() []Algorithm { return []Algorithm{Merge, Insertion, Selection, Bubble, Quick, Heap} }

// sortChain sorts a nil terminated chain, returning its new head.
// Unknown algorithms fall back to merge sort.
func sortChain[T any](alg Algorithm, head *node[T], lt cmp.LessThan[T]) *node[T] {
	switch alg {
	case Insertion:
		return insertionSort(head, lt)
	case Selection:
		return selectionSort(head, lt)
	case Bubble:
		return bubbleSort(head, lt)
	case Quick:
		ch := quickSort(chainOf(head), lt)
		return ch.head
	case Heap:
		return heapSort(head, lt)
	default:
		return mergeSort(head, lt)
	}
}

// mergeSort merges runs of 1, 2, 4... nodes until a pass performs at
// most one merge. Ties are taken from the left run, which makes the
// sort stable.
func mergeSort[T any](head *node[T], lt cmp.LessThan[T]) *node[T] {
	if head == nil {
		return nil
	}

	for run := 1; ; run *= 2 {
		var out chain[T]
		merges := 0

		for left := head; left != nil; {
			merges++

			right := left
			leftSize := 0
			for leftSize < run && right != nil {
				leftSize++
				right = right.next
			}
			rightSize := run

			for leftSize > 0 || (rightSize > 0 && right != nil) {
				var n *node[T]
				switch {
				case leftSize == 0:
					n, right = right, right.next
					rightSize--
				case rightSize == 0 || right == nil:
					n, left = left, left.next
					leftSize--
				case lt(right.value(), left.value()):
					n, right = right, right.next
					rightSize--
				default:
					n, left = left, left.next
					leftSize--
				}
				out.push(n)
			}

			left = right
		}

		head = out.head
		if merges <= 1 {
			return head
		}
	}
}

// mergeChains merges two sorted chains. Ties are taken from a.
func mergeChains[T any](a, b chain[T], lt cmp.LessThan[T]) chain[T] {
	var out chain[T]
	for a.head != nil && b.head != nil {
		if lt(b.head.value(), a.head.value()) {
			out.push(b.pop())
		} else {
			out.push(a.pop())
		}
	}
	out.extend(&a)
	out.extend(&b)
	return out
}

func insertionSort[T any](head *node[T], lt cmp.LessThan[T]) *node[T] {
	var sorted chain[T]
	for head != nil {
		n := head
		head = head.next

		switch {
		case sorted.head == nil || !lt(n.value(), sorted.tail.value()):
			sorted.push(n)
		case lt(n.value(), sorted.head.value()):
			n.next = sorted.head
			sorted.head = n
			sorted.size++
		default:
			prev := sorted.head
			for !lt(n.value(), prev.next.value()) {
				prev = prev.next
			}
			n.next = prev.next
			prev.next = n
			sorted.size++
		}
	}
	return sorted.head
}

func selectionSort[T any](head *node[T], lt cmp.LessThan[T]) *node[T] {
	var out chain[T]
	for head != nil {
		var minPrev *node[T]
		least := head
		for prev, n := head, head.next; n != nil; prev, n = n, n.next {
			if lt(n.value(), least.value()) {
				least, minPrev = n, prev
			}
		}

		if minPrev == nil {
			head = least.next
		} else {
			minPrev.next = least.next
		}
		out.push(least)
	}
	return out.head
}

func bubbleSort[T any](head *node[T], lt cmp.LessThan[T]) *node[T] {
	anchor := &node[T]{next: head}

	// nodes from end onward are in their final position.
	var end *node[T]
	for swapped := true; swapped; {
		swapped = false

		prev := anchor
		for prev.next != end && prev.next.next != end {
			a, b := prev.next, prev.next.next
			if lt(b.value(), a.value()) {
				a.next = b.next
				b.next = a
				prev.next = b
				swapped = true
			}
			prev = prev.next
		}
		end = prev.next
	}
	return anchor.next
}

func quickSort[T any](ch chain[T], lt cmp.LessThan[T]) chain[T] {
	if ch.size < 2 {
		return ch
	}

	mid := ch.head
	for i := 0; i < ch.size/2; i++ {
		mid = mid.next
	}
	pivot := mid.value()

	var less, equal, greater chain[T]
	for ch.head != nil {
		n := ch.pop()
		switch {
		case lt(n.value(), pivot):
			less.push(n)
		case lt(pivot, n.value()):
			greater.push(n)
		default:
			equal.push(n)
		}
	}

	out := quickSort(less, lt)
	out.extend(&equal)
	greater = quickSort(greater, lt)
	out.extend(&greater)
	return out
}

func heapSort[T any](head *node[T], lt cmp.LessThan[T]) *node[T] {
	nodes := []*node[T]{}
	for n := head; n != nil; n = n.next {
		nodes = append(nodes, n)
	}

	less := func(i, j int) bool { return lt(nodes[i].value(), nodes[j].value()) }
	siftDown := func(root, size int) {
		for {
			child := 2*root + 1
			if child >= size {
				return
			}
			if child+1 < size && less(child, child+1) {
				child++
			}
			if !less(root, child) {
				return
			}
			nodes[root], nodes[child] = nodes[child], nodes[root]
			root = child
		}
	}

	for i := len(nodes)/2 - 1; i >= 0; i-- {
		siftDown(i, len(nodes))
	}
	for end := len(nodes) - 1; end > 0; end-- {
		nodes[0], nodes[end] = nodes[end], nodes[0]
		siftDown(0, end)
	}

	var out chain[T]
	for _, n := range nodes {
		out.push(n)
	}
	return out.head
}
