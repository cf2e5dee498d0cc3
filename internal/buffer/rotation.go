package buffer

// rotateTriple applies the fixed cyclic permutation: first'=third, second'=first, third'=second.
func rotateTriple(a, b, c string) (string, string, string) {
	return c, a, b
}

// Rotate cyclically reassigns which physical slot holds which buffer's content
// and title: A gets C's, B gets A's, C gets B's. The base designation is not
// touched. Three rotations restore the original arrangement.
func (s *Session) Rotate() {
	s.buffers[SlotA].Content, s.buffers[SlotB].Content, s.buffers[SlotC].Content =
		rotateTriple(s.buffers[SlotA].Content, s.buffers[SlotB].Content, s.buffers[SlotC].Content)
	s.buffers[SlotA].Title, s.buffers[SlotB].Title, s.buffers[SlotC].Title =
		rotateTriple(s.buffers[SlotA].Title, s.buffers[SlotB].Title, s.buffers[SlotC].Title)
}
