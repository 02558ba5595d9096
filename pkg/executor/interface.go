package executor

import "context"

// Executor runs external commands. An empty dir means the current directory.
type Executor interface {
	ExecuteInDir(ctx context.Context, dir string, name string, args ...string) (string, error)
}
