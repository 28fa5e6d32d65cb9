package session

import (
	"fmt"

	"github.com/dshills/arbor/internal/engine/tree"
)

// InsertToken inserts an empty token right after the selected node, selects
// it and enters edit mode on it. It returns the new token, or nil when the
// selection is the root and has no parent to insert into.
func (s *Session) InsertToken() *tree.Node {
	cur := s.Current()
	if cur.Parent() == nil {
		s.logger.Debug("insert skipped: selection has no parent")
		return nil
	}

	tok := tree.NewToken("")
	if err := s.tree.InsertAfter(cur, tok); err != nil {
		s.logger.Warn("insert failed", "error", err)
		return nil
	}
	s.nav.GoRight()
	s.EnableEditMode()

	s.logger.Debug("token inserted", "id", tok.ID(), "index", tok.Index())
	return tok
}

// DeleteSelected removes the selected node and its subtree.
//
// The cursor first moves right (wrapping among siblings); if that leaves it
// in place it moves up to the parent. The root cannot be deleted: the call
// returns ErrDeleteRoot and nothing changes.
func (s *Session) DeleteSelected() error {
	target := s.Current()
	if target.Parent() == nil {
		return ErrDeleteRoot
	}

	if !s.nav.GoRight() {
		s.nav.GoUp()
	}

	if err := s.tree.Remove(target); err != nil {
		return fmt.Errorf("delete selected: %w", err)
	}

	s.logger.Debug("node deleted", "id", target.ID(), "kind", target.Kind().String())
	return nil
}
