package sorting

// insertion grows a sorted prefix, shifting larger elements right until the
// insertion target for the current key is found.
func insertion(s *stepper) {
	n := s.a.Len()
	for i := 1; i < n && s.live(); i++ {
		key := s.a.At(i)
		j := i - 1
		for j >= 0 && s.live() {
			s.d.Poll()
			if s.a.At(j) <= key {
				s.compare(Highlight{Compare: j, Target: j + 1, Min: -1}, 1)
				break
			}
			s.write(j+1, s.a.At(j), Highlight{Compare: j, Target: j + 1, Min: -1}, 1)
			j--
		}

		// The key is put back even when cancelled mid-shift, otherwise the
		// shifted slot would hold a duplicate.
		if j+1 == i {
			continue
		}
		if s.live() {
			s.write(j+1, key, Highlight{Compare: -1, Target: j + 1, Min: -1}, 0)
		} else {
			s.a.Set(j+1, key)
		}
	}
}
