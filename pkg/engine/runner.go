package engine

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"
	"sync"

	"github.com/hashicorp/go-hclog"

	"github.com/provide-io/wininstall/internal/options"
	"github.com/provide-io/wininstall/pkg/utils/shellparse"
)

// ScriptPhase identifies whether a script is the pre- or post-install step.
type ScriptPhase string

const (
	PhasePre  ScriptPhase = "pre"
	PhasePost ScriptPhase = "post"
)

// RunScriptNative spawns the interpreter against a native script directly:
// -File <script>, no shim involved.
func RunScriptNative(interpreter, scriptPath string, scratch *ScratchPaths, phase ScriptPhase, verbosity options.Verbosity, logger hclog.Logger) ([]string, error) {
	args := []string{"-NoProfile", "-NonInteractive", "-ExecutionPolicy", "Bypass", "-File", scriptPath}
	env := buildNativeEnv(scratch)
	return run(interpreter, args, scratch.Root(), env, "native", phase, verbosity, logger)
}

// RunScriptForeign spawns the interpreter against a foreign script with the
// Compatibility Shim dot-sourced ahead of it, per the command construction
// rule: -Command "& { . <shim>; . <script> }".
func RunScriptForeign(interpreter, shimPath, scriptPath string, scratch *ScratchPaths, info *PackageInfo, phase ScriptPhase, verbosity options.Verbosity, logger hclog.Logger) ([]string, error) {
	command := fmt.Sprintf("& { . %s; . %s }",
		shellparse.Join([]string{shimPath}),
		shellparse.Join([]string{scriptPath}))
	args := []string{"-NoProfile", "-NonInteractive", "-ExecutionPolicy", "Bypass", "-Command", command}
	env := buildForeignEnv(info)
	return run(interpreter, args, scratch.Root(), env, "foreign", phase, verbosity, logger)
}

// buildNativeEnv propagates the entire parent environment — omitting it has
// been observed to produce a child with no environment at all — and adds
// the four payload-directory variables native scripts expect.
func buildNativeEnv(scratch *ScratchPaths) []string {
	env := os.Environ()
	payload := scratch.Payload()
	env = append(env,
		"payloadRoot="+payload,
		"payloadDir="+payload,
		"PAYLOAD_ROOT="+payload,
		"PAYLOAD_DIR="+payload,
	)
	return env
}

// buildForeignEnv propagates the entire parent environment and adds the
// three package-identity variables the Compatibility Shim and Chocolatey-
// style foreign scripts expect.
func buildForeignEnv(info *PackageInfo) []string {
	env := os.Environ()
	name, version := "", ""
	if info.ForeignMeta != nil {
		name = info.ForeignMeta.ID
		version = info.ForeignMeta.Version
	}
	env = append(env,
		"ChocolateyPackageName="+name,
		"ChocolateyPackageFolder="+info.ScratchDir,
		"ChocolateyPackageVersion="+version,
	)
	return env
}

func run(interpreter string, args []string, cwd string, env []string, kind string, phase ScriptPhase, verbosity options.Verbosity, logger hclog.Logger) ([]string, error) {
	cmd := exec.Command(interpreter, args...)
	cmd.Dir = cwd
	cmd.Env = env
	applyHiddenWindow(cmd)

	stdout, err := cmd.StdoutPipe()
	if err != nil {
		return nil, fmt.Errorf("opening stdout pipe: %w", err)
	}
	stderr, err := cmd.StderrPipe()
	if err != nil {
		return nil, fmt.Errorf("opening stderr pipe: %w", err)
	}

	logger.Debug("🚀 spawning script", "interpreter", interpreter, "kind", kind, "phase", phase)
	if err := cmd.Start(); err != nil {
		return nil, fmt.Errorf("starting %s %s script: %w", kind, phase, err)
	}

	var mu sync.Mutex
	var lines []string
	collect := func(r io.Reader) {
		scanner := bufio.NewScanner(r)
		for scanner.Scan() {
			line := fixMojibake(scanner.Text())
			mu.Lock()
			lines = append(lines, line)
			mu.Unlock()
			if verbosity == options.VerbosityEchoed || verbosity == options.VerbosityDump {
				logger.Info("📜 " + line)
			}
		}
	}

	var wg sync.WaitGroup
	wg.Add(2)
	go func() { defer wg.Done(); collect(stdout) }()
	go func() { defer wg.Done(); collect(stderr) }()
	wg.Wait()

	waitErr := cmd.Wait()
	if waitErr != nil {
		tail := boundedTail(lines, BoundedOutputTailLines)
		if exitErr, ok := waitErr.(*exec.ExitError); ok {
			logger.Info("⏹️ script exited nonzero", "code", exitErr.ExitCode(), "kind", kind, "phase", phase)
			return lines, NewScriptFailedError(fmt.Sprintf("%s %s", kind, phase), cwd, strings.Join(tail, "\n"), exitErr)
		}
		return lines, NewScriptFailedError(fmt.Sprintf("%s %s", kind, phase), cwd, strings.Join(tail, "\n"), waitErr)
	}

	logger.Debug("✅ script completed", "kind", kind, "phase", phase)
	return lines, nil
}

func boundedTail(lines []string, n int) []string {
	if len(lines) <= n {
		return lines
	}
	return lines[len(lines)-n:]
}
