package sorting

// selection scans the unsorted suffix for its minimum and swaps it into
// place once per outer pass.
func selection(s *stepper) {
	n := s.a.Len()
	for i := 0; i < n-1 && s.live(); i++ {
		minIdx := i
		for j := i + 1; j < n && s.live(); j++ {
			s.d.Poll()
			if s.a.Less(j, minIdx) {
				minIdx = j
			}
			s.compare(Highlight{Compare: j, Target: i, Min: minIdx}, 1)
		}

		if s.live() && minIdx != i {
			s.swap(minIdx, i, Highlight{Compare: i, Target: i, Min: minIdx}, 0, s.timing.Swap)
		}
	}
}
