package main

import (
	"fmt"
	"io"
	"runtime"

	"github.com/spf13/cobra"
)

func versionCmd() *cobra.Command {
	var short bool

	cmd := &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Long:  `Print the routegen version, the commit it was built from, and the
Go toolchain and platform of the binary. Use --short in scripts.`,
		Run: func(cmd *cobra.Command, args []string) {
			printVersion(cmd.OutOrStdout(), short)
		},
	}

	cmd.Flags().BoolVarP(&short, "short", "s", false, "Print only version number")

	return cmd
}

// printVersion writes the build information. The short form is the bare
// version string, for scripts.
func printVersion(w io.Writer, short bool) {
	if short {
		fmt.Fprintln(w, version)
		return
	}

	printBanner(w)
	fmt.Fprintln(w)
	for _, row := range [][2]string{
		{"Version", version},
		{"Commit", commit},
		{"Built", date},
		{"Go version", runtime.Version()},
		{"OS/Arch", runtime.GOOS + "/" + runtime.GOARCH},
		{"Module", "github.com/vango-dev/routegen"},
	} {
		fmt.Fprintf(w, "  %-11s %s\n", row[0]+":", row[1])
	}
	fmt.Fprintln(w)
}
