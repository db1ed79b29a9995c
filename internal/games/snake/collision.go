package snake

// OutOfBounds reports whether the head has left the w x h board.
func OutOfBounds(s *Snake, w, h int) bool {
	return !s.Head().In(w, h)
}

// SelfCollision reports whether any non-head segment shares the head's cell.
func SelfCollision(s *Snake) bool {
	return s.Intersects(s.Head(), true)
}
