package schedule

// The cell state machine. A cell moves between OFF, W and the leave
// codes; coding is guarded so a leave can only land on an available work
// day, and deleting only applies to a coded day. Resetting a cell to W is
// an administrative override and is never guarded.

// CodeLeave returns the cell value after coding a leave of the given
// type. The cell must currently be exactly W.
func CodeLeave(current, code CellStatus) (CellStatus, error) {
	if !IsLeaveCode(code) {
		return current, ErrInvalidLeaveType
	}
	switch {
	case current == StatusWork:
		return code, nil
	case current == StatusOff:
		return current, ErrDayNotWorkable
	case IsLeaveCode(current):
		return current, ErrDayAlreadyCoded
	default:
		return current, ErrDayNotWorkable
	}
}

// DeleteLeave returns the cell value after removing a coded leave. The
// cell must currently hold a leave code; it reverts to W.
func DeleteLeave(current CellStatus) (CellStatus, error) {
	if !IsLeaveCode(current) {
		return current, ErrNoLeaveToDelete
	}
	return StatusWork, nil
}

// ApplyStatus handles the direct status-set override used by the update
// paths. Setting W always succeeds regardless of the current value and
// the caller must clear any leave records for the cell. Setting a leave
// code goes through the same guard as regular coding, so the ledger can
// never diverge from the cells.
func ApplyStatus(current, target CellStatus) (CellStatus, error) {
	if target == StatusWork {
		return StatusWork, nil
	}
	return CodeLeave(current, target)
}
