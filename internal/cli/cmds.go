package cli

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"gopkg.in/DataDog/dd-trace-go.v1/ddtrace/tracer"

	"github.com/lderezinski/wkreport/internal/api"
	"github.com/lderezinski/wkreport/internal/cache"
	"github.com/lderezinski/wkreport/internal/clipboard"
	"github.com/lderezinski/wkreport/internal/config"
	"github.com/lderezinski/wkreport/internal/export"
	"github.com/lderezinski/wkreport/internal/jira"
	"github.com/lderezinski/wkreport/internal/report"
	"github.com/lderezinski/wkreport/internal/store"
	"github.com/lderezinski/wkreport/internal/table"
	"github.com/lderezinski/wkreport/internal/trace"
	"github.com/lderezinski/wkreport/internal/util"
)

// runReport implements 'wkreport report'.
func runReport(configPath, filterRef, formatStr string, maxSummary int,
	maxSummarySet, offline bool, xlsxPath string, pushSheet bool) {
	span, ctx := trace.StartSpanFromExistingContext("wkreport.report")
	defer span.Finish()

	prefs, err := config.LoadProject()
	if err != nil {
		util.Die("%s", err)
	}

	if filterRef == "" {
		filterRef = prefs.Report.Filter
	}
	if formatStr == "" {
		formatStr = prefs.Report.Format
	}
	if formatStr == "" {
		formatStr = "table"
	}
	if !maxSummarySet && prefs.Report.MaxSummary > 0 {
		maxSummary = prefs.Report.MaxSummary
	}
	format := parseOutputFormat(formatStr)

	filterRef = strings.TrimSpace(filterRef)
	if filterRef == "" {
		util.Die("filter is required (--filter or wkreport.toml)")
	}
	span.SetTag("filter", filterRef)

	// Offline runs never touch the network, so they also work
	// without credentials; pushing to Sheets needs them back.
	var cfg *config.Config
	if !offline || pushSheet {
		cfg, err = config.Load(configPath)
		if err != nil {
			util.Die("%s", err)
		}
	}

	var filter *api.Filter
	var issues []api.Issue
	if offline {
		filter, issues = loadCachedReport(filterRef)
	} else {
		filter, issues = fetchReport(ctx, cfg, filterRef)
	}

	if len(issues) == 0 {
		fmt.Println("No issues found.")
		return
	}

	if format == outputFormatSlides {
		report.SortByStatus(issues)
	} else {
		report.Sort(issues)
	}

	if xlsxPath != "" {
		if err := export.WriteXLSX(xlsxPath, report.Rows(issues, maxSummary)); err != nil {
			util.Die("write xlsx: %s", err)
		}
		util.ProgressMsg("wrote " + xlsxPath)
	}
	if pushSheet {
		pushReportToSheet(ctx, cfg, filter, report.Rows(issues, maxSummary))
	}

	switch format {
	case outputFormatTable:
		t := report.Table(issues, maxSummary)
		t.Print()

	case outputFormatTabs:
		emitTabs(report.TabDelimited(issues, maxSummary))

	case outputFormatHTML:
		fmt.Println(table.RenderHTML(report.Rows(issues, maxSummary)))

	case outputFormatDocs:
		emitDocs(report.DocsHTML(issues, maxSummary))

	case outputFormatSlides:
		plain, htmlContent := report.SlidesContent(issues, maxSummary)
		if plain == "" && htmlContent == "" {
			fmt.Println("No slide content generated.")
			return
		}
		emitSlides(plain, htmlContent)

	case outputFormatJSON:
		payload, err := report.JSON(issues)
		if err != nil {
			panic(err)
		}
		fmt.Println(string(payload))
	}
}

// fetchReport resolves the filter and fetches its issues from Jira,
// refreshing the store and the offline cache along the way.
func fetchReport(ctx context.Context, cfg *config.Config, filterRef string) (*api.Filter, []api.Issue) {
	client, err := jira.NewClient(cfg.Jira.URL, cfg.Jira.Email, cfg.Jira.APIToken)
	if err != nil {
		util.Die("create jira client: %s", err)
	}

	st := store.Read()
	var filter *api.Filter
	if id, ok := st.LookupFilter(client.BaseURL(), filterRef); ok {
		filter = &api.Filter{ID: id, Name: filterRef}
	} else {
		util.ProgressMsg("resolving filter " + filterRef)
		filter, err = client.ResolveFilter(ctx, filterRef)
		if err != nil {
			util.Die("resolve filter %#v: %s", filterRef, err)
		}
		st.RememberFilter(client.BaseURL(), filterRef, filter.ID)
		if filter.Name != "" && !strings.EqualFold(filter.Name, filterRef) {
			st.RememberFilter(client.BaseURL(), filter.Name, filter.ID)
		}
	}

	util.ProgressMsg("fetching issues for filter " + filter.ID)
	fetchSpan, fetchCtx := tracer.StartSpanFromContext(ctx, "jira.search")
	issues, err := client.SearchByFilter(fetchCtx, filter)
	fetchSpan.Finish()
	if err != nil {
		util.Die("search jira issues: %s", err)
	}

	if c, err := cache.Open(); err == nil {
		name := filter.Name
		if name == "" {
			name = filterRef
		}
		if err := c.Save(filter.ID, name, issues, time.Now()); err != nil {
			util.Logf("warning: could not cache issues: %s", err)
		}
		c.Close()
	}

	return filter, issues
}

// loadCachedReport serves the report from the offline cache.
func loadCachedReport(filterRef string) (*api.Filter, []api.Issue) {
	c, err := cache.Open()
	if err != nil {
		util.Die("%s", err)
	}
	defer c.Close()

	id, ok := c.FindFilter(filterRef)
	if !ok {
		util.Die("filter %#v has never been fetched; run once without --offline", filterRef)
	}

	issues, fetchedAt, err := c.Load(id)
	if err != nil {
		if errors.Is(err, cache.ErrMiss) {
			util.Die("filter %#v has never been fetched; run once without --offline", filterRef)
		}
		util.Die("%s", err)
	}

	util.ProgressMsg("using issues cached " + fetchedAt.Local().Format("2006-01-02 15:04"))
	return &api.Filter{ID: id, Name: filterRef}, issues
}

// pushReportToSheet sends the rendered rows to Google Sheets.
func pushReportToSheet(ctx context.Context, cfg *config.Config, filter *api.Filter, rows [][]string) {
	if cfg.Google.CredentialsFile == "" {
		util.Die("google.credentials_file must be set in the config file to push to Sheets")
	}

	name := filter.Name
	if name == "" {
		name = filter.ID
	}
	title := fmt.Sprintf("wkreport: %s (%s)", name, time.Now().Format("2006-01-02"))

	util.ProgressMsg("pushing report to Google Sheets")
	result, err := export.PushToSheet(ctx, cfg.Google.CredentialsFile, cfg.Google.SpreadsheetID, title, rows)
	if err != nil {
		util.Die("push to sheets: %s", err)
	}

	if result.URL != "" {
		util.Log("Report pushed to new spreadsheet: " + result.URL)
	} else {
		util.Log("Report pushed to spreadsheet " + result.SpreadsheetID)
	}
}

// emitTabs prints or copies the tab-delimited report, depending on
// where stdout points.
func emitTabs(content string) {
	if util.StdoutIsTerminal() {
		if err := clipboard.Copy("", []byte(content)); err == nil {
			util.Log("Tab-delimited report copied to clipboard. Paste into your spreadsheet or text editor.")
		} else {
			fmt.Print(content)
			util.Logf("Warning: failed to copy tab-delimited report to clipboard (%v).", err)
			util.Log("Tip: run `wkreport report --format tabs ... | pbcopy` manually.")
		}
	} else {
		fmt.Print(content)
		util.Log("Hint: pipe into `pbcopy` to copy the tab-delimited report.")
	}
}

// emitDocs hands the Docs table to the pasteboard as RTF when it can,
// falling back to HTML, falling back to plain stdout.
func emitDocs(tableHTML string) {
	rtfPayload, rtfErr := clipboard.HTMLToRTF(tableHTML)

	if util.StdoutIsTerminal() {
		if rtfErr == nil {
			if err := clipboard.Copy("rtf", rtfPayload); err == nil {
				util.Log("Google Docs table copied to clipboard. Paste directly into your document.")
				return
			}
		}

		if err := clipboard.Copy("html", []byte(tableHTML)); err != nil {
			fmt.Println(tableHTML)
			util.Logf("Warning: failed to copy table to clipboard (%v).", err)
			util.Log("Tip: run `wkreport report --format docs ... | pbcopy -Prefer html` manually.")
		} else {
			util.Log("Table (HTML) copied to clipboard. If Google Docs shows raw markup, use Paste special > Paste HTML.")
		}
	} else {
		if rtfErr == nil {
			os.Stdout.Write(rtfPayload)
			util.Log("Hint: pipe into `pbcopy -Prefer rtf` to preserve table formatting.")
		} else {
			fmt.Println(tableHTML)
			util.Log("Hint: pipe into `pbcopy -Prefer html` to preserve table formatting.")
		}
	}
}

// emitSlides is emitDocs for the slides summary, with a plain-text
// fallback when nothing could be copied.
func emitSlides(plainOutput, htmlContent string) {
	rtfPayload, rtfErr := clipboard.HTMLToRTF(htmlContent)

	if util.StdoutIsTerminal() {
		copied := false

		if rtfErr == nil {
			if err := clipboard.Copy("rtf", rtfPayload); err == nil {
				util.Log("Slides summary copied to clipboard with formatting. Paste directly into your slide notes or text box.")
				copied = true
			} else {
				util.Logf("Warning: failed to copy slides summary as RTF (%v).", err)
			}
		}

		if !copied {
			if err := clipboard.Copy("html", []byte(htmlContent)); err == nil {
				util.Log("Slides summary copied as HTML to clipboard. Paste directly into your slide notes or text box.")
				copied = true
			} else {
				util.Logf("Warning: failed to copy slides summary to clipboard (%v).", err)
				util.Log("Tip: run `wkreport report --format slides ... | pbcopy -Prefer html` manually.")
			}
		}

		if rtfErr != nil {
			util.Logf("Warning: unable to convert slides summary to RTF (%v). Falling back to HTML clipboard behavior.", rtfErr)
		}

		if !copied {
			fmt.Println(plainOutput)
		}
	} else {
		if rtfErr == nil {
			os.Stdout.Write(rtfPayload)
			util.Log("Hint: pipe into `pbcopy -Prefer rtf` to preserve hyperlinks in slides.")
		} else {
			fmt.Println(htmlContent)
			util.Log("Hint: pipe into `pbcopy -Prefer html` to preserve hyperlinks in slides.")
		}
	}
}

// runFilters implements 'wkreport filters'.
func runFilters(configPath, formatStr string) {
	span, ctx := trace.StartSpanFromExistingContext("wkreport.filters")
	defer span.Finish()

	format := parseOutputFormat(formatStr)
	if format != outputFormatTable && format != outputFormatJSON {
		util.Die(`Error: invalid format %#v (must be "table" or "json")`, formatStr)
	}

	cfg, err := config.Load(configPath)
	if err != nil {
		util.Die("%s", err)
	}
	client, err := jira.NewClient(cfg.Jira.URL, cfg.Jira.Email, cfg.Jira.APIToken)
	if err != nil {
		util.Die("create jira client: %s", err)
	}

	util.ProgressMsg("listing filters")
	filters, err := client.ListFilters(ctx)
	if err != nil {
		util.Die("list filters: %s", err)
	}

	switch format {
	case outputFormatTable:
		if len(filters) == 0 {
			util.Log("no filters found")
			return
		}
		t := table.FromStructs(filters)
		t.SortBy("NAME")
		t.Print()

	case outputFormatJSON:
		outputB, err := json.Marshal(filters)
		if err != nil {
			panic(err)
		}
		fmt.Println(string(outputB))
	}
}

// runSample implements 'wkreport sample'.
func runSample() {
	fmt.Println(table.RenderHTML(report.SampleRows(time.Now())))
}

// runPing implements 'wkreport ping'.
func runPing(configPath string) {
	span, ctx := trace.StartSpanFromExistingContext("wkreport.ping")
	defer span.Finish()

	cfg, err := config.Load(configPath)
	if err != nil {
		util.Die("%s", err)
	}
	client, err := jira.NewClient(cfg.Jira.URL, cfg.Jira.Email, cfg.Jira.APIToken)
	if err != nil {
		util.Die("create jira client: %s", err)
	}

	info, err := client.ServerInfo(ctx)
	if err != nil {
		util.Die("ping %s: %s", cfg.Jira.URL, err)
	}

	fmt.Printf("%s (%s %s)\n", cfg.Jira.URL, info.DeploymentType, info.Version)
	if info.ServerTitle != "" {
		fmt.Println("Title:", info.ServerTitle)
	}
	if warning := info.VersionWarning(); warning != "" {
		util.Logf("Warning: %s", warning)
	}
}
