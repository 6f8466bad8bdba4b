// Package cli implements the command-line interface of wkreport.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/DataDog/dd-trace-go.v1/ddtrace/tracer"

	"github.com/lderezinski/wkreport/internal/config"
	"github.com/lderezinski/wkreport/internal/report"
	"github.com/lderezinski/wkreport/internal/trace"
	"github.com/lderezinski/wkreport/internal/util"
)

// parseOutputFormat takes an output format name and returns an
// outputFormat enum value.
func parseOutputFormat(formatStr string) outputFormat {
	switch formatStr {
	case "table":
		return outputFormatTable
	case "tabs":
		return outputFormatTabs
	case "html":
		return outputFormatHTML
	case "docs":
		return outputFormatDocs
	case "slides":
		return outputFormatSlides
	case "json":
		return outputFormatJSON
	default:
		util.Die(`Error: invalid format %#v (must be "table", "tabs", "html", "docs", "slides", or "json")`, formatStr)
		return 0
	}
}

// version is set at build time via -ldflags to the release tag;
// untagged builds report "unknown version".
var version = "unknown version"

// getVersion returns a string that can be printed when calling
// 'wkreport --version'.
func getVersion() string {
	return "wkreport " + version
}

// DoCLI reads the command-line arguments and runs the appropriate
// code, then exits the process (or returns to indicate normal exit).
func DoCLI() {
	var configPath string
	var filterRef string
	var reportFormatStr string
	var filtersFormatStr string
	var maxSummary int
	var offline bool
	var xlsxPath string
	var pushSheet bool

	if trace.MaybeTrace(version) {
		defer tracer.Stop()
	}

	cobra.EnableCommandSorting = false

	rootCmd := &cobra.Command{
		Use:     "wkreport",
		Short:   "Build weekly status reports from Jira filters",
		Version: getVersion(),
	}
	rootCmd.SetVersionTemplate(`{{.Version}}` + "\n")
	rootCmd.PersistentFlags().StringVarP(
		&configPath, "config", "c", config.DefaultPath, "path to the credentials file",
	)
	rootCmd.PersistentFlags().BoolVarP(
		&config.Quiet, "quiet", "q", false, "don't show progress messages",
	)
	rootCmd.PersistentFlags().BoolP(
		"help", "h", false, "display command-line usage",
	)
	rootCmd.PersistentFlags().BoolP(
		"version", "v", false, "display command version",
	)

	cmdReport := &cobra.Command{
		Use:   "report",
		Short: "Build the status report for a filter",
		Long: "Fetch the issues matched by a Jira filter and render them in\n" +
			"the requested format. The filter and format can also come from\n" +
			"a wkreport.toml in the working directory.",
		Args: cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			runReport(configPath, filterRef, reportFormatStr,
				maxSummary, cmd.Flags().Changed("max-summary"),
				offline, xlsxPath, pushSheet)
		},
	}
	cmdReport.Flags().SortFlags = false
	cmdReport.Flags().StringVarP(
		&filterRef, "filter", "f", "", "filter name or numeric id (-f123 also works)",
	)
	cmdReport.Flags().StringVar(
		&reportFormatStr, "format", "",
		`output format ("table", "tabs", "html", "docs", "slides", or "json")`,
	)
	cmdReport.Flags().IntVar(
		&maxSummary, "max-summary", report.DefaultMaxSummary,
		"rune budget for the summary column",
	)
	cmdReport.Flags().BoolVar(
		&offline, "offline", false, "render the last cached fetch instead of asking Jira",
	)
	cmdReport.Flags().StringVar(
		&xlsxPath, "xlsx", "", "also save the report as an .xlsx workbook at this path",
	)
	cmdReport.Flags().BoolVar(
		&pushSheet, "push-sheet", false, "also push the report to Google Sheets",
	)
	rootCmd.AddCommand(cmdReport)

	cmdFilters := &cobra.Command{
		Use:   "filters",
		Short: "List the Jira filters you can report on",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			runFilters(configPath, filtersFormatStr)
		},
	}
	cmdFilters.Flags().SortFlags = false
	cmdFilters.Flags().StringVar(
		&filtersFormatStr, "format", "table", `output format ("table" or "json")`,
	)
	rootCmd.AddCommand(cmdFilters)

	cmdSample := &cobra.Command{
		Use:   "sample",
		Short: "Print a demo report table as HTML",
		Long: "Print a small fixed dataset as an HTML table, with the current\n" +
			"time in the RESOLVED column. Shows what the html format produces\n" +
			"without touching Jira.",
		Args: cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			runSample()
		},
	}
	rootCmd.AddCommand(cmdSample)

	cmdPing := &cobra.Command{
		Use:   "ping",
		Short: "Check connectivity and credentials against Jira",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			runPing(configPath)
		},
	}
	rootCmd.AddCommand(cmdPing)

	specialArgs := map[string](func()){}
	for _, helpFlag := range []string{"-help", "-?"} {
		specialArgs[helpFlag] = func() {
			rootCmd.Usage()
			os.Exit(0)
		}
	}
	for _, versionFlag := range []string{"-version", "-V"} {
		specialArgs[versionFlag] = func() {
			fmt.Println(getVersion())
			os.Exit(0)
		}
	}

	if len(os.Args) >= 2 {
		fn, ok := specialArgs[os.Args[1]]
		if ok {
			fn()
		}
	}

	rootCmd.Execute()
}
