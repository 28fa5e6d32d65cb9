package dispatcher

import (
	"github.com/dshills/arbor/internal/session"
)

func builtinActions() []Action {
	return []Action{
		{Name: ActionGoLeft, Handle: navigate(func(s *session.Session) bool { return s.Navigator().GoLeft() })},
		{Name: ActionGoUp, Handle: navigate(func(s *session.Session) bool { return s.Navigator().GoUp() })},
		{Name: ActionGoRight, Handle: navigate(func(s *session.Session) bool { return s.Navigator().GoRight() })},
		{Name: ActionGoDown, Handle: navigate(func(s *session.Session) bool { return s.Navigator().GoDown() })},
		{Name: ActionWalkRight, Handle: navigate(func(s *session.Session) bool { return s.Navigator().WalkRight() })},
		{Name: ActionWalkDown, Handle: navigate(func(s *session.Session) bool { return s.Navigator().WalkDown() })},
		{Name: ActionDelete, Suppress: true, Handle: deleteSelected},
		{Name: ActionEdit, Suppress: true, Handle: enableEdit},
		{Name: ActionInsert, Suppress: true, Handle: insertToken},
		{Name: ActionExitEdit, Suppress: true, Handle: disableEdit},
		{Name: ActionEditNext, Suppress: true, Handle: editNext},
		{Name: ActionQuit, Suppress: true, Handle: quit},
	}
}

func navigate(move func(*session.Session) bool) HandlerFunc {
	return func(s *session.Session) error {
		move(s)
		return nil
	}
}

func deleteSelected(s *session.Session) error {
	return s.DeleteSelected()
}

func enableEdit(s *session.Session) error {
	s.EnableEditMode()
	return nil
}

func insertToken(s *session.Session) error {
	s.InsertToken()
	return nil
}

func disableEdit(s *session.Session) error {
	return s.DisableEditMode()
}

// editNext leaves edit mode, walks to the next node in document order and
// starts editing there.
func editNext(s *session.Session) error {
	err := s.DisableEditMode()
	s.Navigator().WalkRight()
	s.EnableEditMode()
	return err
}

func quit(_ *session.Session) error {
	return ErrQuit
}
