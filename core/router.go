package core

type ModalStack struct {
	items []Modal
}

func (s *ModalStack) Push(modal Modal) {
	if modal == nil {
		return
	}
	s.items = append(s.items, modal)
}

func (s *ModalStack) Pop() Modal {
	if len(s.items) == 0 {
		return nil
	}
	last := s.items[len(s.items)-1]
	s.items = s.items[:len(s.items)-1]
	return last
}

// Replace swaps the top modal for next.
func (s *ModalStack) Replace(next Modal) {
	if len(s.items) == 0 || next == nil {
		return
	}
	s.items[len(s.items)-1] = next
}

func (s ModalStack) Top() Modal {
	if len(s.items) == 0 {
		return nil
	}
	return s.items[len(s.items)-1]
}

func (s ModalStack) Len() int {
	return len(s.items)
}
