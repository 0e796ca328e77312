package state

import "github.com/hy4ri/todo-tui/internal/api"

// Todos returns the cached list for the current sort order.
func (s *State) Todos() []api.Todo {
	todos, _ := s.Cache.ReadTodos(s.Sort)
	return todos
}

// HasData reports whether a list has ever been cached for the current sort.
func (s *State) HasData() bool {
	_, ok := s.Cache.ReadTodos(s.Sort)
	return ok
}

// IsCompletedLocally reports whether id was checked off in this session.
func (s *State) IsCompletedLocally(id string) bool {
	for _, t := range s.Completed {
		if t.ID == id {
			return true
		}
	}
	return false
}

// ToDo returns the fetched tasks whose id is not in the local completed list,
// regardless of each task's own completed flag.
func (s *State) ToDo() []api.Todo {
	todos := s.Todos()
	done := make(map[string]struct{}, len(s.Completed))
	for _, t := range s.Completed {
		done[t.ID] = struct{}{}
	}

	out := make([]api.Todo, 0, len(todos))
	for _, t := range todos {
		if _, ok := done[t.ID]; ok {
			continue
		}
		out = append(out, t)
	}
	return out
}

// Done returns the local completed list.
func (s *State) Done() []api.Todo {
	return s.Completed
}

// ToDoCount is the number of tasks shown under "Tasks to do".
func (s *State) ToDoCount() int {
	return len(s.ToDo())
}

// DoneCount is the number of tasks shown under "Done".
func (s *State) DoneCount() int {
	return len(s.Completed)
}

// ToDoHidden reports whether the to-do section is replaced by the loading or
// error line. The done section stays visible either way.
func (s *State) ToDoHidden() bool {
	return s.QueryErr != nil || (s.Loading && !s.HasData())
}

// VisibleToDo is ToDo, or nil while the to-do section is hidden.
func (s *State) VisibleToDo() []api.Todo {
	if s.ToDoHidden() {
		return nil
	}
	return s.ToDo()
}

// Rows returns the visible to-do rows followed by the done list, in cursor
// order. Hidden rows are never selectable.
func (s *State) Rows() []api.Todo {
	rows := s.VisibleToDo()
	return append(rows, s.Completed...)
}

// SelectedTodo returns a copy of the task under the cursor, or nil.
// The cursor walks the visible to-do rows first and then the done list.
func (s *State) SelectedTodo() *api.Todo {
	rows := s.Rows()
	if s.TaskCursor < 0 || s.TaskCursor >= len(rows) {
		return nil
	}
	t := rows[s.TaskCursor]
	return &t
}

// CursorInDone reports whether the cursor sits on the done list.
func (s *State) CursorInDone() bool {
	return s.TaskCursor >= len(s.VisibleToDo())
}

// ClampCursor keeps the cursor inside the combined list.
func (s *State) ClampCursor() {
	n := len(s.Rows())
	if s.TaskCursor >= n {
		s.TaskCursor = n - 1
	}
	if s.TaskCursor < 0 {
		s.TaskCursor = 0
	}
}
