package sorting

// shell runs gapped insertion sort with the gap halved each pass.
func shell(s *stepper) {
	n := s.a.Len()
	for gap := n / 2; gap > 0 && s.live(); gap /= 2 {
		for i := gap; i < n && s.live(); i++ {
			tmp := s.a.At(i)
			j := i
			for j >= gap && s.live() {
				s.d.Poll()
				if s.a.At(j-gap) <= tmp {
					s.compare(Highlight{Compare: j - gap, Target: j, Min: -1}, 1)
					break
				}
				s.write(j, s.a.At(j-gap), Highlight{Compare: j - gap, Target: j, Min: -1}, 1)
				j -= gap
			}

			if j == i {
				continue
			}
			if s.live() {
				s.write(j, tmp, Highlight{Compare: -1, Target: j, Min: -1}, 0)
			} else {
				s.a.Set(j, tmp)
			}
		}
	}
}
