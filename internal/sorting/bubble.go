package sorting

func bubble(s *stepper) {
	n := s.a.Len()
	for i := 0; i < n-1 && s.live(); i++ {
		for j := 0; j < n-i-1 && s.live(); j++ {
			s.d.Poll()
			h := Highlight{Compare: j, Target: j + 1, Min: -1}
			if s.a.Less(j+1, j) {
				s.swap(j, j+1, h, 1, s.timing.Step)
			} else {
				s.compare(h, 1)
			}
		}
	}
}
