package app

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"
	"time"

	"github.com/dshills/arbor/internal/document"
	"github.com/dshills/arbor/internal/engine/tree"
	"github.com/dshills/arbor/internal/plugin/lua"
)

// luaTimeout bounds how long a seed script may run.
const luaTimeout = 5 * time.Second

// LoadDocument builds the seed tree named by path. An empty path yields
// the built-in default document. YAML files are decoded directly and Lua
// scripts run in the sandbox.
func LoadDocument(ctx context.Context, path string, logger *slog.Logger) (*tree.Tree, error) {
	if logger == nil {
		logger = DiscardLogger()
	}

	var (
		root *tree.Node
		err  error
	)
	switch ext := strings.ToLower(filepath.Ext(path)); {
	case path == "":
		root = document.Default()
	case ext == ".yaml" || ext == ".yml":
		root, err = document.LoadYAMLFile(path)
	case ext == ".lua":
		root, err = lua.BuildDocumentFile(ctx, path,
			lua.WithExecutionTimeout(luaTimeout),
			lua.WithLogger(logger),
		)
	default:
		err = fmt.Errorf("%w: %q", ErrUnsupportedDocument, ext)
	}
	if err != nil {
		return nil, NewOperationError("load", path, err)
	}

	tr, err := tree.New(root)
	if err != nil {
		return nil, NewOperationError("load", path, err)
	}
	source := path
	if source == "" {
		source = "default"
	}
	logger.Debug("document loaded", "source", source, "nodes", tr.Count(), "height", tr.Height())
	return tr, nil
}
