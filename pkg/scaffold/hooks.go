package scaffold

import (
	"bytes"
	"context"
	"errors"
	"os/exec"
	"strings"

	"github.com/inizio/initt/pkg/catalog"
	"github.com/inizio/initt/pkg/logging"
)

// RunHooks executes the template's hook commands sequentially through the
// shell, with basePath as each command's working directory. The base path
// is threaded into exec.Cmd directly; the process working directory is
// never changed. A missing parameter or non-zero exit fails that command
// and degrades the overall outcome without stopping subsequent commands.
func (c *Creator) RunHooks(ctx context.Context, def catalog.Definition, basePath string, values catalog.Context) ([]HookResult, bool) {
	if len(def.Hooks) == 0 {
		return nil, true
	}

	logging.Infof(c.logger, "Hooks", "Executing %d post-creation hook(s)", len(def.Hooks))

	ok := true
	results := make([]HookResult, 0, len(def.Hooks))
	for _, pattern := range def.Hooks {
		result := c.runHook(ctx, pattern, basePath, values)
		if result.Failed() {
			ok = false
		}
		results = append(results, result)
	}
	return results, ok
}

func (c *Creator) runHook(ctx context.Context, pattern, basePath string, values catalog.Context) HookResult {
	command, err := expand(pattern, values)
	if err != nil {
		logging.Errorf(c.logger, "Hook", "%v", err)
		return HookResult{Command: pattern, Err: err}
	}

	logging.Hook(c.logger, command)

	var stdout, stderr bytes.Buffer
	cmd := exec.CommandContext(ctx, c.shell, "-c", command)
	cmd.Dir = basePath
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	runErr := cmd.Run()
	result := HookResult{
		Command: command,
		Stdout:  stdout.String(),
		Stderr:  stderr.String(),
	}

	switch {
	case runErr == nil:
		logging.Successf(c.logger, "Hook", "Command executed successfully: %s", command)
		c.logger.Echo(strings.TrimSpace(result.Stdout))
	default:
		var exitErr *exec.ExitError
		if errors.As(runErr, &exitErr) {
			result.ExitCode = exitErr.ExitCode()
			logging.Errorf(c.logger, "Hook", "Command failed with exit code %d: %s", result.ExitCode, command)
		} else {
			result.Err = runErr
			logging.Errorf(c.logger, "Hook", "Failed to execute hook command: %s - %v", command, runErr)
		}
		c.logger.Echo(strings.TrimSpace(result.Stderr))
	}
	return result
}
