package webgl

// uniformTable maps integer uniform locations to the host's location
// objects. Entries belong to a program and go away with it, so a page
// that rebuilds programs does not accumulate dead locations.
type uniformTable[T any] struct {
	next    int32
	entries map[int32]uniformEntry[T]
}

type uniformEntry[T any] struct {
	program uint32
	loc     T
}

// add stores loc for program and returns its location value, starting at 0.
func (t *uniformTable[T]) add(program uint32, loc T) int32 {
	if t.entries == nil {
		t.entries = make(map[int32]uniformEntry[T])
	}
	id := t.next
	t.next++
	t.entries[id] = uniformEntry[T]{program: program, loc: loc}
	return id
}

func (t *uniformTable[T]) get(id int32) (T, bool) {
	e, ok := t.entries[id]
	return e.loc, ok
}

// dropProgram removes every location of program.
func (t *uniformTable[T]) dropProgram(program uint32) {
	for id, e := range t.entries {
		if e.program == program {
			delete(t.entries, id)
		}
	}
}

func (t *uniformTable[T]) len() int { return len(t.entries) }
