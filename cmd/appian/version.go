package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"runtime/debug"
	"strings"

	"github.com/spf13/cobra"

	"appian/internal/version"
)

// buildInfo is what `appian version` prints; empty fields are not shown.
type buildInfo struct {
	Tool      string `json:"tool"`
	Version   string `json:"version"`
	GitCommit string `json:"git_commit,omitempty"`
	BuildDate string `json:"build_date,omitempty"`
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show appian build information",
	RunE:  runVersion,
}

func init() {
	f := versionCmd.Flags()
	f.Bool("hash", false, "include git commit hash")
	f.Bool("date", false, "include build timestamp")
	f.Bool("full", false, "include every recorded bit of build metadata")
	f.String("format", "pretty", "output format (pretty|json)")
}

func runVersion(cmd *cobra.Command, _ []string) error {
	f := cmd.Flags()
	format, _ := f.GetString("format")
	full, _ := f.GetBool("full")
	withHash, _ := f.GetBool("hash")
	withDate, _ := f.GetBool("date")

	info := currentBuild(withHash || full, withDate || full, vcsSettings())
	switch strings.ToLower(format) {
	case "json":
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(info)
	case "pretty":
		colored, err := useColor(cmd, os.Stdout)
		if err != nil {
			return err
		}
		writeVersion(cmd.OutOrStdout(), info, colored)
		return nil
	default:
		return fmt.Errorf("unsupported format %q (must be pretty or json)", format)
	}
}

// currentBuild берёт значения из ldflags, пустые добирает из vcs-настроек
// `go build`; запрошенное, но неизвестное поле становится "unknown".
func currentBuild(withHash, withDate bool, vcs map[string]string) buildInfo {
	info := buildInfo{Tool: "appian", Version: strings.TrimSpace(version.Version)}
	if info.Version == "" {
		info.Version = "dev"
	}
	pick := func(ldflag, vcsKey string) string {
		if v := strings.TrimSpace(ldflag); v != "" {
			return v
		}
		if v := vcs[vcsKey]; v != "" {
			return v
		}
		return "unknown"
	}
	if withHash {
		info.GitCommit = pick(version.GitCommit, "vcs.revision")
	}
	if withDate {
		info.BuildDate = pick(version.BuildDate, "vcs.time")
	}
	return info
}

func vcsSettings() map[string]string {
	bi, ok := debug.ReadBuildInfo()
	if !ok {
		return nil
	}
	out := make(map[string]string, len(bi.Settings))
	for _, s := range bi.Settings {
		out[s.Key] = s.Value
	}
	return out
}

func writeVersion(w io.Writer, info buildInfo, colored bool) {
	fmt.Fprintf(w, "appian %s\n", version.Colored(info.Version, colored))
	if info.GitCommit != "" {
		fmt.Fprintf(w, "commit: %s\n", info.GitCommit)
	}
	if info.BuildDate != "" {
		fmt.Fprintf(w, "built:  %s\n", info.BuildDate)
	}
}
