package app

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOperationError(t *testing.T) {
	base := errors.New("boom")

	tests := []struct {
		name string
		err  *OperationError
		want string
	}{
		{"op only", NewOperationError("replay", "", base), "replay: boom"},
		{"with target", NewOperationError("load", "seed.yaml", base), "load seed.yaml: boom"},
		{"with context", NewOperationError("bind", "edit", base).WithContext("from config"), "bind edit (from config): boom"},
		{"no cause", NewOperationError("load", "x", nil), "load x"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.err.Error())
		})
	}

	assert.ErrorIs(t, NewOperationError("load", "x", base), base)

	var nilErr *OperationError
	assert.Equal(t, "", nilErr.Error())
	assert.Nil(t, nilErr.Unwrap())
	assert.Nil(t, nilErr.WithContext("x"))
}

func TestInitError(t *testing.T) {
	err := &InitError{Component: "backend", Err: ErrNoBackend}

	assert.Equal(t, "init backend: no backend", err.Error())
	assert.ErrorIs(t, err, ErrNoBackend)
}
