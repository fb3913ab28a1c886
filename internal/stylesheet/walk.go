package stylesheet

// Questions returns every question placement of the stylesheet in
// document order, descending into sections.
func (s *Stylesheet) Questions() []*Question {
	var out []*Question
	for _, page := range s.Pages {
		if page != nil {
			out = collectQuestions(page.Segments, out)
		}
	}
	return out
}

func collectQuestions(segments []Segment, out []*Question) []*Question {
	for _, seg := range segments {
		switch s := seg.(type) {
		case *Section:
			if s != nil {
				out = collectQuestions(s.Segments, out)
			}
		case *Question:
			if s != nil {
				out = append(out, s)
			}
		}
	}
	return out
}
