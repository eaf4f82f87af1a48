package sorting

func heap(s *stepper) {
	n := s.a.Len()
	for i := n/2 - 1; i >= 0 && s.live(); i-- {
		siftDown(s, n, i)
	}
	for end := n - 1; end > 0 && s.live(); end-- {
		s.d.Poll()
		s.swap(0, end, Highlight{Compare: 0, Target: end, Min: -1}, 0, s.timing.Step)
		siftDown(s, end, 0)
	}
}

// siftDown restores the max-heap property of the subtree rooted at root,
// considering only the first n elements.
func siftDown(s *stepper, n, root int) {
	if !s.live() {
		return
	}
	s.d.Poll()
	largest := root
	left, right := 2*root+1, 2*root+2
	comparisons := 0
	if left < n {
		comparisons++
		if s.a.Less(largest, left) {
			largest = left
		}
	}
	if right < n {
		comparisons++
		if s.a.Less(largest, right) {
			largest = right
		}
	}
	if comparisons == 0 {
		return
	}

	h := Highlight{Compare: root, Target: largest, Min: left}
	if largest == root {
		s.compare(h, comparisons)
		return
	}
	s.swap(root, largest, h, comparisons, s.timing.Step)
	siftDown(s, n, largest)
}
