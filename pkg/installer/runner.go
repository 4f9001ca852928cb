package installer

import (
	"os/exec"
	"strings"

	"github.com/arthur-debert/nvup/pkg/errors"
	"github.com/arthur-debert/nvup/pkg/logging"
)

// Runner executes external commands. Implementations capture combined
// output so failures can be reported with what the tool printed.
type Runner interface {
	// Run executes name with args and returns combined output.
	Run(name string, args ...string) (string, error)

	// RunShell executes script through sh -c, for the installers that
	// are documented as shell pipelines.
	RunShell(script string) (string, error)
}

// execRunner is the os/exec backed Runner.
type execRunner struct{}

// NewRunner creates the default Runner.
func NewRunner() Runner {
	return &execRunner{}
}

func (r *execRunner) Run(name string, args ...string) (string, error) {
	logging.LogCommand(name, args)

	out, err := exec.Command(name, args...).CombinedOutput()
	output := strings.TrimSpace(string(out))
	if err != nil {
		return output, errors.Wrapf(err, errors.ErrCommandFailed, "command %s failed", name).
			WithDetail("output", output)
	}
	return output, nil
}

func (r *execRunner) RunShell(script string) (string, error) {
	logging.LogCommand("sh", []string{"-c", script})

	out, err := exec.Command("sh", "-c", script).CombinedOutput()
	output := strings.TrimSpace(string(out))
	if err != nil {
		return output, errors.Wrapf(err, errors.ErrCommandFailed, "shell command failed").
			WithDetail("script", script).
			WithDetail("output", output)
	}
	return output, nil
}
