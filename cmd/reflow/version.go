package main

import (
	"fmt"
	"io"
	"runtime"
	"runtime/debug"

	"github.com/spf13/cobra"
)

// buildInfo is the version data of the running binary.
type buildInfo struct {
	Version   string
	Commit    string
	Date      string
	Module    string
	GoVersion string
	Deps      int
}

// readBuildInfo fills the link-time variables in from the module build
// info when they were not set with -ldflags.
func readBuildInfo() buildInfo {
	bi := buildInfo{
		Version:   version,
		Commit:    commit,
		Date:      date,
		Module:    "github.com/vango-dev/reflow",
		GoVersion: runtime.Version(),
	}
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return bi
	}
	if info.Main.Path != "" {
		bi.Module = info.Main.Path
	}
	if bi.Version == "dev" && info.Main.Version != "" && info.Main.Version != "(devel)" {
		bi.Version = info.Main.Version
	}
	for _, s := range info.Settings {
		switch s.Key {
		case "vcs.revision":
			if bi.Commit == "none" {
				bi.Commit = s.Value
			}
		case "vcs.time":
			if bi.Date == "unknown" {
				bi.Date = s.Value
			}
		}
	}
	bi.GoVersion = info.GoVersion
	bi.Deps = len(info.Deps)
	return bi
}

func (bi buildInfo) print(w io.Writer) {
	fmt.Fprint(w, banner)
	fmt.Fprintln(w)
	fmt.Fprintf(w, "  Version:    %s\n", bi.Version)
	fmt.Fprintf(w, "  Commit:     %s\n", bi.Commit)
	fmt.Fprintf(w, "  Built:      %s\n", bi.Date)
	fmt.Fprintf(w, "  Module:     %s (%d deps)\n", bi.Module, bi.Deps)
	fmt.Fprintf(w, "  Go version: %s\n", bi.GoVersion)
	fmt.Fprintf(w, "  OS/Arch:    %s/%s\n", runtime.GOOS, runtime.GOARCH)
	fmt.Fprintln(w)
}

func versionCmd() *cobra.Command {
	var short bool

	cmd := &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Long: `Print version, commit, module and build information for the reflow CLI.

Values not set at link time are read from the module build info.`,
		Run: func(cmd *cobra.Command, args []string) {
			bi := readBuildInfo()
			if short {
				fmt.Fprintln(cmd.OutOrStdout(), bi.Version)
				return
			}
			bi.print(cmd.OutOrStdout())
		},
	}

	cmd.Flags().BoolVarP(&short, "short", "s", false, "Print only version number")

	return cmd
}
