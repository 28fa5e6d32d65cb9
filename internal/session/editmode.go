package session

import (
	"golang.org/x/text/unicode/norm"

	"github.com/dshills/arbor/internal/input/mode"
)

// EnableEditMode enters edit mode on the selected token.
//
// On a collection it first descends through first children until it reaches
// a token. The descent is bounded by the tree height; when it ends on an
// empty collection edit mode is not entered. It reports whether edit mode
// is active afterwards.
func (s *Session) EnableEditMode() bool {
	limit := s.tree.Height() + 1
	for i := 0; i <= limit; i++ {
		cur := s.Current()
		if cur.IsToken() {
			if err := s.modes.SwitchWithContext(mode.ModeEdit, mode.NewContext(cur)); err != nil {
				s.logger.Warn("enter edit mode failed", "error", err)
				return false
			}
			s.surface.Focus(cur)
			return true
		}
		if !s.nav.GoDown() {
			break
		}
	}
	s.logger.Debug("edit mode not entered: no token below selection")
	return false
}

// DisableEditMode leaves edit mode. It only acts when the selection is a
// token. The token text is normalized to NFC; a token left empty is
// deleted.
func (s *Session) DisableEditMode() error {
	cur := s.Current()
	if !cur.IsToken() {
		return nil
	}

	if s.Editing() {
		if err := s.modes.SwitchWithContext(mode.ModeNavigate, mode.NewContext(cur)); err != nil {
			return err
		}
	}
	s.surface.Blur(cur)
	cur.SetText(norm.NFC.String(cur.Text()))

	if s.surface.Text(cur) == "" {
		return s.DeleteSelected()
	}
	return nil
}
