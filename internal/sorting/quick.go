package sorting

func quick(s *stepper) {
	quickSort(s, 0, s.a.Len()-1)
}

func quickSort(s *stepper, lo, hi int) {
	if lo >= hi || !s.live() {
		return
	}
	p := partition(s, lo, hi)
	if !s.live() {
		return
	}
	quickSort(s, lo, p-1)
	quickSort(s, p+1, hi)
}

// partition is the Lomuto scheme with a[hi] as the pivot. The returned index
// is meaningless once the context is cancelled.
func partition(s *stepper, lo, hi int) int {
	pivot := s.a.At(hi)
	boundary := lo
	for j := lo; j < hi && s.live(); j++ {
		s.d.Poll()
		h := Highlight{Compare: j, Target: hi, Min: boundary}
		if s.a.At(j) < pivot {
			if j != boundary {
				s.swap(boundary, j, h, 1, s.timing.Step)
			} else {
				s.compare(h, 1)
			}
			boundary++
		} else {
			s.compare(h, 1)
		}
	}
	if !s.live() {
		return boundary
	}
	if boundary != hi {
		s.swap(boundary, hi, Highlight{Compare: boundary, Target: hi, Min: -1}, 0, s.timing.Step)
	}
	return boundary
}
