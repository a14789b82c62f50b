package engine

import (
	"path/filepath"

	"github.com/hashicorp/go-hclog"

	"github.com/provide-io/wininstall/internal/options"
)

// InstallResult is everything the CLI layer needs to report on a
// completed (successful or failed) invocation.
type InstallResult struct {
	Info             *PackageInfo
	Classification   Classification
	TargetRoot       string
	PreScriptOutput  []string
	PostScriptOutput []string
	ScratchRemoved   bool
}

// RunInstall sequences the whole engine under the single transactional
// lifecycle: Start → OpenArchive → Extract → ParseMeta → Classify →
// PrivilegeCheck → PreScript → Mirror → PostScript → Cleanup → Done.
// Every transition other than OpenArchive and Cleanup itself deletes the
// scratch directory on failure; Cleanup failures are logged and never
// escalated to the primary result.
func RunInstall(opts *options.Options, logger hclog.Logger) (*InstallResult, error) {
	if opts.PkgPath == "" {
		return nil, NewBadInputError("--pkg is required")
	}

	kind, err := ClassifyArchiveKind(opts.PkgPath)
	if err != nil {
		return nil, err // OpenArchive-equivalent: nothing extracted, no cleanup.
	}

	reader, err := OpenArchive(opts.PkgPath, logger)
	if err != nil {
		return nil, err
	}
	defer reader.Close()

	scratch, err := NewScratchRoot()
	if err != nil {
		return nil, err
	}

	result := &InstallResult{}
	cleanup := func() {
		if err := scratch.Remove(); err != nil {
			logger.Warn("🧹 failed to remove scratch directory", "path", scratch.Root(), "error", err)
			return
		}
		result.ScratchRemoved = true
	}

	if err := ExtractEntries(reader, scratch, logger); err != nil {
		cleanup()
		return result, err
	}

	info, err := BuildPackageInfo(opts.PkgPath, kind, scratch, logger)
	if err != nil {
		cleanup()
		return result, err
	}
	result.Info = info

	targetRoot, err := ResolveTargetRoot(opts.Target)
	if err != nil {
		cleanup()
		return result, err
	}
	result.TargetRoot = targetRoot

	classification := Classify(info, targetRoot)
	result.Classification = classification

	anyScript := info.HasPreNative || info.HasPostNative || info.HasPreForeign || info.HasPostForeign
	isAdmin, elevErr := IsElevated()
	if elevErr != nil {
		logger.Warn("🔒 failed to determine elevation state", "error", elevErr)
	}
	if err := CheckPrivilege(isAdmin, classification.EffectiveInstallLocation, anyScript); err != nil {
		cleanup()
		return result, err
	}

	interpreter := opts.Interpreter
	if interpreter == "" {
		interpreter = "powershell.exe"
	}

	if out, err := runPreScript(info, scratch, interpreter, opts, logger); err != nil {
		result.PreScriptOutput = out
		cleanup()
		return result, err
	} else {
		result.PreScriptOutput = out
	}

	if classification.Mode == ModeCopyType {
		if err := mirrorForClassification(info, classification.EffectiveInstallLocation, logger); err != nil {
			cleanup()
			return result, err
		}
	}

	if out, err := runPostScript(info, scratch, interpreter, opts, logger); err != nil {
		result.PostScriptOutput = out
		cleanup()
		return result, err
	} else {
		result.PostScriptOutput = out
	}

	if info.HasPostForeign {
		if path, err := RefreshEnvironmentPath(); err != nil {
			logger.Debug("🔁 could not re-read PATH from registry after foreign script", "error", err)
		} else {
			logger.Debug("🔁 refreshed PATH after foreign post-install script", "path", path)
		}
	}

	cleanup()
	return result, nil
}

// runPreScript and runPostScript implement the native-over-foreign
// precedence rule: only one of (native, foreign) runs per phase, and
// native always wins when both are present.
func runPreScript(info *PackageInfo, scratch *ScratchPaths, interpreter string, opts *options.Options, logger hclog.Logger) ([]string, error) {
	switch {
	case info.HasPreNative:
		return RunScriptNative(interpreter, scratch.NativePreScript(), scratch, PhasePre, opts.Verbosity(), logger)
	case info.HasPreForeign:
		shimPath, err := MaterializeShim(scratch)
		if err != nil {
			return nil, NewScriptFailedError("foreign pre", scratch.Root(), "", err)
		}
		return RunScriptForeign(interpreter, shimPath, scratch.ForeignPreScript(), scratch, info, PhasePre, opts.Verbosity(), logger)
	default:
		return nil, nil
	}
}

func runPostScript(info *PackageInfo, scratch *ScratchPaths, interpreter string, opts *options.Options, logger hclog.Logger) ([]string, error) {
	switch {
	case info.HasPostNative:
		return RunScriptNative(interpreter, scratch.NativePostScript(), scratch, PhasePost, opts.Verbosity(), logger)
	case info.HasPostForeign:
		shimPath, err := MaterializeShim(scratch)
		if err != nil {
			return nil, NewScriptFailedError("foreign post", scratch.Root(), "", err)
		}
		return RunScriptForeign(interpreter, shimPath, scratch.ForeignPostScript(), scratch, info, PhasePost, opts.Verbosity(), logger)
	default:
		return nil, nil
	}
}

func mirrorForClassification(info *PackageInfo, effectiveLocation string, logger hclog.Logger) error {
	if info.Kind == KindNative {
		return MirrorPayload(filepath.Join(info.ScratchDir, NativePayloadDir), effectiveLocation, logger)
	}
	return MirrorForeignPayload(info.ScratchDir, effectiveLocation, logger)
}

// ProbePackageInfo runs just enough of the pipeline — open, extract,
// parse metadata — to answer --pkginfo/--query, then always removes the
// scratch directory before returning: these are read-only operations with
// no privilege check and no scripts, so every exit path cleans up.
func ProbePackageInfo(pkgPath string, logger hclog.Logger) (*PackageInfo, error) {
	kind, err := ClassifyArchiveKind(pkgPath)
	if err != nil {
		return nil, err
	}

	reader, err := OpenArchive(pkgPath, logger)
	if err != nil {
		return nil, err
	}
	defer reader.Close()

	scratch, err := NewScratchRoot()
	if err != nil {
		return nil, err
	}
	defer func() {
		if err := scratch.Remove(); err != nil {
			logger.Warn("🧹 failed to remove scratch directory", "path", scratch.Root(), "error", err)
		}
	}()

	if err := ExtractEntries(reader, scratch, logger); err != nil {
		return nil, err
	}

	return BuildPackageInfo(pkgPath, kind, scratch, logger)
}
