package runner

// Session holds the single command awaiting confirmation. It is owned by the
// Engine and passed to commands through Env.
type Session struct {
	pending Command
}

// SetPending stores cmd, replacing whatever was pending.
func (s *Session) SetPending(cmd Command) {
	s.pending = cmd
}

// Pending returns the command awaiting confirmation, or nil.
func (s *Session) Pending() Command {
	return s.pending
}

// ClearPending empties the slot.
func (s *Session) ClearPending() {
	s.pending = nil
}
