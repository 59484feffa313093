package snake

// IsWallCollision reports whether head lies outside the dim×dim board.
func IsWallCollision(head Cell, dim int) bool {
	return head.X < 0 || head.X >= dim || head.Y < 0 || head.Y >= dim
}

// IsSelfCollision reports whether head overlaps any body cell other than the
// head itself. body is head-first, so only body[1:] is checked.
func IsSelfCollision(head Cell, body []Cell) bool {
	if len(body) < 2 {
		return false
	}
	for _, seg := range body[1:] {
		if seg == head {
			return true
		}
	}
	return false
}

// IsFoodEaten reports whether head is on the food cell.
func IsFoodEaten(head, food Cell) bool {
	return head == food
}
