package domain

// UndoRecord describes the inverse of a single mutation. It is a closed
// sum type: exactly one of the variants below.
//
// Records are kept in a process-local stack; they are never persisted.
type UndoRecord interface {
	// isUndoRecord keeps the set of variants closed to this package.
	isUndoRecord()
}

// UndoAdd reverses an add: the session with Session.ID is removed.
type UndoAdd struct {
	Session Session
}

// DeletedItem pairs a removed session with the index it occupied before
// the batch removal.
type DeletedItem struct {
	Index   int
	Session Session
}

// UndoDelete reverses a (possibly multi-item) delete. Items are
// reinserted in ascending index order, each at min(Index, current length),
// so earlier reinsertions do not shift later targets incorrectly.
type UndoDelete struct {
	Items []DeletedItem
}

// UndoEdit reverses an edit: the session sharing Before's id is replaced
// with Before. If that session was deleted after the edit, Before is
// reinserted at min(Index, current length).
type UndoEdit struct {
	Before Session
	Index  int
}

func (UndoAdd) isUndoRecord()    {}
func (UndoDelete) isUndoRecord() {}
func (UndoEdit) isUndoRecord()   {}
