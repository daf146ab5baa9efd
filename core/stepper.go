package core

// Stepper walks a fixed number of pages. Advancing past the last page, or
// skipping, fires the completion callback instead of moving.
type Stepper struct {
	index    int
	pages    int
	complete func()
}

func NewStepper(pages int, complete func()) *Stepper {
	if pages < 1 {
		pages = 1
	}
	return &Stepper{pages: pages, complete: complete}
}

func (s *Stepper) Index() int { return s.index }
func (s *Stepper) Pages() int { return s.pages }
func (s *Stepper) Last() bool { return s.index == s.pages-1 }

func (s *Stepper) Next() {
	if s.index < s.pages-1 {
		s.index++
		return
	}
	s.finish()
}

func (s *Stepper) Prev() {
	if s.index > 0 {
		s.index--
	}
}

func (s *Stepper) Skip() { s.finish() }

func (s *Stepper) finish() {
	if s.complete != nil {
		s.complete()
	}
}
