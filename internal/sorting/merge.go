package sorting

func merge(s *stepper) {
	mergeSort(s, 0, s.a.Len()-1)
}

func mergeSort(s *stepper, lo, hi int) {
	if lo >= hi || !s.live() {
		return
	}
	mid := lo + (hi-lo)/2
	mergeSort(s, lo, mid)
	mergeSort(s, mid+1, hi)
	mergeHalves(s, lo, mid, hi)
}

// mergeHalves fills a scratch buffer from both sorted halves, then copies it
// back. A cancellation while filling leaves the array untouched; once the
// copy-back has started it always finishes so no element is lost.
func mergeHalves(s *stepper, lo, mid, hi int) {
	buf := make([]int, 0, hi-lo+1)
	i, j := lo, mid+1
	for len(buf) < cap(buf) && s.live() {
		s.d.Poll()
		switch {
		case i > mid:
			buf = append(buf, s.a.At(j))
			s.compare(Highlight{Compare: j, Target: -1, Min: lo + len(buf) - 1}, 0)
			j++
		case j > hi:
			buf = append(buf, s.a.At(i))
			s.compare(Highlight{Compare: i, Target: -1, Min: lo + len(buf) - 1}, 0)
			i++
		case s.a.At(i) <= s.a.At(j):
			buf = append(buf, s.a.At(i))
			s.compare(Highlight{Compare: i, Target: j, Min: lo + len(buf) - 1}, 1)
			i++
		default:
			buf = append(buf, s.a.At(j))
			s.compare(Highlight{Compare: j, Target: i, Min: lo + len(buf) - 1}, 1)
			j++
		}
	}
	if len(buf) < cap(buf) {
		return
	}

	for k, v := range buf {
		if !s.live() {
			s.a.Set(lo+k, v)
			continue
		}
		s.d.Poll()
		s.write(lo+k, v, Highlight{Compare: -1, Target: lo + k, Min: -1}, 0)
	}
}
