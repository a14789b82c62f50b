package main

import (
	"fmt"
	"os"
	"os/exec"
	"runtime/debug"
	"time"

	"github.com/hashicorp/go-hclog"
	"github.com/spf13/cobra"

	"github.com/provide-io/wininstall/internal/options"
	"github.com/provide-io/wininstall/internal/wenv"
	"github.com/provide-io/wininstall/pkg/engine"
	"github.com/provide-io/wininstall/pkg/logging"
)

var (
	opts    options.Options
	rootCmd *cobra.Command
)

func getVersionTimestamp() string {
	if info, ok := debug.ReadBuildInfo(); ok {
		for _, setting := range info.Settings {
			if setting.Key == "vcs.time" {
				if t, err := time.Parse(time.RFC3339, setting.Value); err == nil {
					return t.UTC().Format("2006.01.02.1504")
				}
			}
		}
	}
	if exePath, err := os.Executable(); err == nil {
		if stat, err := os.Stat(exePath); err == nil {
			return stat.ModTime().UTC().Format("2006.01.02.1504")
		}
	}
	return time.Now().UTC().Format("2006.01.02.1504")
}

func init() {
	rootCmd = &cobra.Command{
		Use:   "wininstall",
		Short: "Install a native or foreign package archive",
		Long:  `wininstall extracts a single archive, runs its pre/post scripts, and mirrors its payload to a target location.`,
		Run:   runMain,
	}

	rootCmd.Flags().StringVar(&opts.PkgPath, "pkg", "", "Path to the archive to install")
	rootCmd.Flags().StringVar(&opts.Target, "target", "/", "Target root, per the Target Resolver table")
	rootCmd.Flags().BoolVar(&opts.PkgInfo, "pkginfo", false, "Print metadata summary for the archive and exit")
	rootCmd.Flags().BoolVar(&opts.DomInfo, "dominfo", false, "Print a fixed list of installation domains")
	rootCmd.Flags().BoolVar(&opts.VolInfo, "volinfo", false, "Print available filesystem volumes with sizes")
	rootCmd.Flags().StringVar(&opts.Query, "query", "", "Print one metadata field: name, version, description, author, license, RestartAction")
	rootCmd.Flags().BoolVar(&opts.Verbose, "verbose", false, "Verbose output")
	rootCmd.Flags().BoolVar(&opts.VerboseR, "verboseR", false, "Verbose output, echoing script lines as they arrive")
	rootCmd.Flags().BoolVar(&opts.DumpLog, "dumplog", false, "Echo script lines as they arrive, as --verboseR does")
	rootCmd.Flags().BoolVar(&opts.Plist, "plist", false, "Frame info output as an XML property list")
	rootCmd.Flags().BoolVar(&opts.AllowUntrusted, "allowUntrusted", false, "Accepted and ignored; no signature verification is implemented")
	rootCmd.Flags().BoolVar(&opts.ShowVersion, "vers", false, "Print the tool version and exit")
	rootCmd.Flags().BoolVar(&opts.ShowConfig, "config", false, "Echo the resolved pkg, target, query, log level, interpreter and allowUntrusted options and exit")
	rootCmd.Flags().StringVar(&opts.LogLevel, "log-level", "", "Log level (trace, debug, info, warn, error)")
	rootCmd.Flags().StringVar(&opts.Interpreter, "interpreter", "", "Override the shell interpreter binary")
}

func main() {
	if len(os.Args) > 1 && os.Args[1] == "--vers" {
		fmt.Println(getVersionTimestamp())
		os.Exit(0)
	}

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func runMain(cmd *cobra.Command, args []string) {
	if opts.LogLevel == "" {
		opts.LogLevel = wenv.LogLevel()
		if opts.Verbose {
			opts.LogLevel = "debug"
		} else if opts.Verbosity() != options.VerbositySilent && hclog.LevelFromString(opts.LogLevel) > hclog.Info {
			// Echoed script lines are logged at info level.
			opts.LogLevel = "info"
		}
	}
	if opts.Interpreter == "" {
		opts.Interpreter = wenv.Interpreter()
	}

	logger := logging.NewLogger("wininstall", opts.LogLevel, nil)

	if opts.ShowVersion {
		fmt.Println(getVersionTimestamp())
		return
	}

	if opts.ShowConfig {
		printConfig(&opts)
		return
	}

	if opts.DomInfo {
		printDomains(&opts)
		return
	}

	if opts.VolInfo {
		exitCode := printVolumes(&opts, logger)
		os.Exit(exitCode)
	}

	if opts.PkgInfo || opts.Query != "" {
		os.Exit(runInfo(&opts, logger))
	}

	os.Exit(runInstall(&opts, logger))
}

func printConfig(o *options.Options) {
	dict := map[string]string{
		"pkg":            o.PkgPath,
		"target":         o.Target,
		"query":          o.Query,
		"logLevel":       o.LogLevel,
		"interpreter":    o.Interpreter,
		"allowUntrusted": fmt.Sprintf("%v", o.AllowUntrusted),
	}
	printDict(dict, o.Plist)
}

func printDomains(o *options.Options) {
	if o.Plist {
		data, err := engine.EncodeArrayPlist(engine.Domains)
		if err == nil {
			fmt.Println(string(data))
			return
		}
	}
	for _, d := range engine.Domains {
		fmt.Println(d)
	}
}

func printVolumes(o *options.Options, logger hclog.Logger) int {
	volumes, err := engine.EnumerateVolumes()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	if o.Plist {
		names := make([]string, 0, len(volumes))
		for _, v := range volumes {
			names = append(names, fmt.Sprintf("%s %d/%d", v.Name, v.Available, v.Total))
		}
		data, err := engine.EncodeArrayPlist(names)
		if err == nil {
			fmt.Println(string(data))
			return 0
		}
	}
	for _, v := range volumes {
		fmt.Printf("%s\t%d available / %d total\n", v.Name, v.Available, v.Total)
	}
	return 0
}

func runInfo(o *options.Options, logger hclog.Logger) int {
	info, err := engine.ProbePackageInfo(o.PkgPath, logger)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}

	if o.Query != "" {
		value, ok := engine.QueryField(info, o.Query)
		if !ok {
			fmt.Fprintf(os.Stderr, "unknown or unavailable field %q\n", o.Query)
			return 1
		}
		fmt.Println(value)
		return 0
	}

	printDict(engine.InfoDict(info), o.Plist)
	return 0
}

func printDict(dict map[string]string, asPlist bool) {
	if asPlist {
		data, err := engine.EncodeDictPlist(dict)
		if err == nil {
			fmt.Println(string(data))
			return
		}
	}
	for k, v := range dict {
		fmt.Printf("%s: %s\n", k, v)
	}
}

func runInstall(o *options.Options, logger hclog.Logger) int {
	result, err := engine.RunInstall(o, logger)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		if eerr, ok := err.(*engine.EngineError); ok && eerr.Kind == engine.ScriptFailed {
			if exitErr, ok := eerr.Cause.(*exec.ExitError); ok {
				return exitErr.ExitCode()
			}
		}
		if eerr, ok := err.(*engine.EngineError); ok {
			return eerr.ExitCode()
		}
		return 1
	}

	logger.Info("✅ install complete",
		"mode", result.Classification.Mode,
		"location", result.Classification.EffectiveInstallLocation,
		"scratchRemoved", result.ScratchRemoved)
	return 0
}
