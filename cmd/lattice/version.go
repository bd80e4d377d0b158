package main

import (
	"fmt"
	"runtime"
	"runtime/debug"

	"github.com/spf13/cobra"
)

// Set with -ldflags "-X main.gitRelease=... -X main.gitCommit=..."
var (
	gitRelease = "dev"
	gitCommit  = ""
)

func versionString() string {
	if gitRelease == "dev" {
		if info, ok := debug.ReadBuildInfo(); ok && info.Main.Version != "" && info.Main.Version != "(devel)" {
			return info.Main.Version
		}
	}
	return gitRelease
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "lattice %s\n", versionString())
			fmt.Fprintf(out, "  Go:     %s\n", runtime.Version())
			if gitCommit != "" {
				fmt.Fprintf(out, "  Commit: %s\n", gitCommit)
			}
		},
	}
}
