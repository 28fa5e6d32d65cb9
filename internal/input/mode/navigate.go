package mode

// NavigateMode moves the cursor around the tree.
type NavigateMode struct{}

// NewNavigateMode creates a new navigate mode instance.
func NewNavigateMode() *NavigateMode {
	return &NavigateMode{}
}

// Name returns the mode identifier.
func (m *NavigateMode) Name() string {
	return ModeNavigate
}

// DisplayName returns the human-readable mode name.
func (m *NavigateMode) DisplayName() string {
	return "NAVIGATE"
}

// CursorStyle returns the cursor style for navigate mode.
func (m *NavigateMode) CursorStyle() CursorStyle {
	return CursorHidden
}

// Enter is called when entering navigate mode.
func (m *NavigateMode) Enter(_ *Context) error {
	return nil
}

// Exit is called when leaving navigate mode.
func (m *NavigateMode) Exit(_ *Context) error {
	return nil
}
