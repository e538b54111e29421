package main

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"readlog/internal/bootstrap"
	activitydomain "readlog/internal/modules/activity/domain"
	renderdto "readlog/internal/modules/render/dto"
	"readlog/internal/platform/clock"
	"readlog/internal/platform/config"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		_, _ = fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

type rootFlags struct {
	libraryDir string
	configPath string
	csvPath    string
	coversDir  string
	year       int
}

func newRootCmd() *cobra.Command {
	flags := &rootFlags{}

	root := &cobra.Command{
		Use:           "readlog",
		Short:         "Reading log aggregator",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&flags.libraryDir, "library", ".", "library directory")
	root.PersistentFlags().StringVar(&flags.configPath, "config", "", "config file path (default: readlog.yaml in the library)")
	root.PersistentFlags().StringVar(&flags.csvPath, "csv", "", "CSV export path (overrides config)")
	root.PersistentFlags().StringVar(&flags.coversDir, "covers-dir", "", "cover image directory (overrides config)")
	root.PersistentFlags().IntVarP(&flags.year, "year", "y", 0, "year to report (default: config, then current year)")

	root.AddCommand(newTUICmd(flags))
	root.AddCommand(newStatsCmd(flags))
	root.AddCommand(newTimelineCmd(flags))
	root.AddCommand(newHeatmapCmd(flags))
	root.AddCommand(newMonthsCmd(flags))
	root.AddCommand(newGenresCmd(flags))
	root.AddCommand(newCoversCmd(flags))
	root.AddCommand(newDiagnosticsCmd(flags))
	root.AddCommand(newReindexCmd(flags))
	root.AddCommand(newRenderCmd(flags))
	root.AddCommand(newPluginsCmd(flags))
	return root
}

func loadApp(flags *rootFlags) (*bootstrap.App, int, error) {
	cfg, err := config.NewFromFile(flags.libraryDir, flags.configPath)
	if err != nil {
		return nil, 0, err
	}
	if flags.csvPath != "" {
		cfg.CSVPath = flags.csvPath
	}
	if flags.coversDir != "" {
		cfg.CoversDir = flags.coversDir
	}
	year := flags.year
	if year == 0 {
		year = cfg.Year
	}
	if year == 0 {
		year = clock.SystemClock{}.Now().Year()
	}
	return bootstrap.New(cfg), year, nil
}

func newTUICmd(flags *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "tui",
		Short: "Run readlog terminal UI",
		RunE: func(_ *cobra.Command, _ []string) error {
			app, year, err := loadApp(flags)
			if err != nil {
				return err
			}
			return bootstrap.RunTUI(year, app)
		},
	}
}

func newStatsCmd(flags *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Summarize finished books for a year",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, year, err := loadApp(flags)
			if err != nil {
				return err
			}
			s, err := app.ActivityCLI.Summary(context.Background(), year)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			_, _ = fmt.Fprintf(out, "year:             %d\n", s.Year)
			_, _ = fmt.Fprintf(out, "finished:         %d\n", s.TotalSessions)
			_, _ = fmt.Fprintf(out, "unique books:     %d\n", s.UniqueBooks)
			_, _ = fmt.Fprintf(out, "rereads:          %d\n", s.RereadBooks)
			_, _ = fmt.Fprintf(out, "active days:      %d\n", s.ActiveDays)
			_, _ = fmt.Fprintf(out, "max per day:      %d\n", s.MaxPerDay)
			_, _ = fmt.Fprintf(out, "avg per active:   %.2f\n", s.AveragePerActive)
			for _, day := range s.BusiestDays {
				_, _ = fmt.Fprintf(out, "busiest:          %s (%d)\n", day.Date.Format("2006-01-02"), day.Count)
			}
			return nil
		},
	}
}

func newTimelineCmd(flags *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "timeline",
		Short: "List finished books in reading order",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, year, err := loadApp(flags)
			if err != nil {
				return err
			}
			out, err := app.ActivityCLI.Year(context.Background(), year)
			if err != nil {
				return err
			}
			if len(out.Entries) == 0 {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "no books finished in %d\n", year)
				return nil
			}
			for i, entry := range out.Entries {
				suffix := ""
				if entry.TotalReads > 1 {
					suffix = fmt.Sprintf("  (read %d of %d)", entry.ReadNumber, entry.TotalReads)
				}
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%3d  %s  %s — %s%s\n",
					i+1, entry.Finish.Format("Jan 02, 2006"), entry.Title, entry.Author, suffix)
			}
			return nil
		},
	}
}

func newHeatmapCmd(flags *rootFlags) *cobra.Command {
	var orientation string
	heatmap := &cobra.Command{
		Use:   "heatmap",
		Short: "Print a week-by-weekday activity grid",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if orientation != "landscape" && orientation != "portrait" {
				return fmt.Errorf("--orientation must be landscape or portrait")
			}
			app, year, err := loadApp(flags)
			if err != nil {
				return err
			}
			out, err := app.ActivityCLI.Year(context.Background(), year)
			if err != nil {
				return err
			}
			counts := map[time.Time]int{}
			for _, day := range out.Days {
				counts[day.Date] = day.Count
			}
			weeks, monthWeeks := activitydomain.WeekGrid(year, counts)
			if orientation == "landscape" {
				printHeatmapLandscape(cmd, weeks, monthWeeks)
			} else {
				printHeatmapPortrait(cmd, weeks, monthWeeks)
			}
			return nil
		},
	}
	heatmap.Flags().StringVar(&orientation, "orientation", "landscape", "grid orientation: landscape|portrait")
	return heatmap
}

func heatmapCell(count int) string {
	switch {
	case count < 0:
		return " "
	case count == 0:
		return "·"
	case count > 9:
		return "+"
	default:
		return fmt.Sprintf("%d", count)
	}
}

func printHeatmapLandscape(cmd *cobra.Command, weeks [][7]int, monthWeeks map[int]time.Month) {
	out := cmd.OutOrStdout()
	var header strings.Builder
	header.WriteString("    ")
	for w := 0; w < len(weeks); w++ {
		if month, ok := monthWeeks[w]; ok && w+3 <= len(weeks) {
			header.WriteString(month.String()[:3])
			w += 2
			continue
		}
		header.WriteString(" ")
	}
	_, _ = fmt.Fprintln(out, strings.TrimRight(header.String(), " "))
	labels := [7]string{"Mon", "Tue", "Wed", "Thu", "Fri", "Sat", "Sun"}
	for d := 0; d < 7; d++ {
		var row strings.Builder
		row.WriteString(labels[d] + " ")
		for _, week := range weeks {
			row.WriteString(heatmapCell(week[d]))
		}
		_, _ = fmt.Fprintln(out, strings.TrimRight(row.String(), " "))
	}
}

func printHeatmapPortrait(cmd *cobra.Command, weeks [][7]int, monthWeeks map[int]time.Month) {
	out := cmd.OutOrStdout()
	_, _ = fmt.Fprintln(out, "    M T W T F S S")
	for w, week := range weeks {
		label := "   "
		if month, ok := monthWeeks[w]; ok {
			label = month.String()[:3]
		}
		var row strings.Builder
		row.WriteString(label + " ")
		for d := 0; d < 7; d++ {
			row.WriteString(heatmapCell(week[d]))
			if d < 6 {
				row.WriteString(" ")
			}
		}
		_, _ = fmt.Fprintln(out, strings.TrimRight(row.String(), " "))
	}
}

func newMonthsCmd(flags *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "months",
		Short: "List finished books grouped by month",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, year, err := loadApp(flags)
			if err != nil {
				return err
			}
			out, err := app.ActivityCLI.Year(context.Background(), year)
			if err != nil {
				return err
			}
			for _, month := range out.Months {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s %d (%d)\n", month.Month, year, len(month.Entries))
				for _, entry := range month.Entries {
					suffix := ""
					if entry.TotalReads > 1 {
						suffix = fmt.Sprintf("  (read %d of %d)", entry.ReadNumber, entry.TotalReads)
					}
					_, _ = fmt.Fprintf(cmd.OutOrStdout(), "  %s  %s — %s%s\n",
						entry.Finish.Format("02"), entry.Title, entry.Author, suffix)
				}
			}
			return nil
		},
	}
}

func newGenresCmd(flags *rootFlags) *cobra.Command {
	var limit int
	genres := &cobra.Command{
		Use:   "genres",
		Short: "Rank genres of the year's finished books",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, year, err := loadApp(flags)
			if err != nil {
				return err
			}
			ranked, err := app.ActivityCLI.Genres(context.Background(), year, limit)
			if err != nil {
				return err
			}
			if len(ranked) == 0 {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "no genre data for %d\n", year)
				return nil
			}
			for _, genre := range ranked {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%-24s %5d votes  %d books\n", genre.Genre, genre.Votes, genre.Books)
			}
			return nil
		},
	}
	genres.Flags().IntVar(&limit, "limit", 10, "maximum genres to print")
	return genres
}

func newCoversCmd(flags *rootFlags) *cobra.Command {
	covers := &cobra.Command{Use: "covers", Short: "Cover image commands"}

	covers.AddCommand(&cobra.Command{
		Use:   "missing",
		Short: "List finished books without a cover image",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, year, err := loadApp(flags)
			if err != nil {
				return err
			}
			missing, err := app.CoversCLI.Missing(context.Background(), year)
			if err != nil {
				return err
			}
			if len(missing) == 0 {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "all covers present for %d\n", year)
				return nil
			}
			for _, cover := range missing {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s — %s\tfinished %s\twant %s\n",
					cover.BookID, cover.Title, cover.Author, cover.FinishDate.Format("2006-01-02"), cover.ExpectedPath)
			}
			return nil
		},
	})

	covers.AddCommand(&cobra.Command{
		Use:   "status <book-id>",
		Short: "Show whether a book's cover is present",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, _, err := loadApp(flags)
			if err != nil {
				return err
			}
			status, err := app.CoversCLI.Status(context.Background(), args[0])
			if err != nil {
				return err
			}
			if status.Present {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "present: %s\n", status.Path)
			} else {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "missing: expected %s\n", status.Path)
			}
			return nil
		},
	})

	covers.AddCommand(&cobra.Command{
		Use:   "open <book-id>",
		Short: "Open a book's cover in the configured viewer",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, _, err := loadApp(flags)
			if err != nil {
				return err
			}
			path, err := app.CoversCLI.Open(context.Background(), args[0])
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "opened %s\n", path)
			return nil
		},
	})

	return covers
}

func newDiagnosticsCmd(flags *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "diagnostics",
		Short: "Report rows and segments the CSV load could not use",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, _, err := loadApp(flags)
			if err != nil {
				return err
			}
			diagnostics, err := app.LibraryCLI.Diagnostics(context.Background())
			if err != nil {
				return err
			}
			if len(diagnostics) == 0 {
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), "no diagnostics")
				return nil
			}
			for _, d := range diagnostics {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "row %d\t%s\t%s\tsegment %d\t%s: %s\n",
					d.Row, d.BookID, d.Title, d.Segment, d.Kind, d.Detail)
			}
			return nil
		},
	}
}

func newReindexCmd(flags *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "reindex",
		Short: "Rebuild the SQLite projection from the CSV export",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, _, err := loadApp(flags)
			if err != nil {
				return err
			}
			out, err := app.LibraryCLI.Reindex(context.Background())
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "reindexed %d books\n", out.Books)
			return nil
		},
	}
}

func newRenderCmd(flags *rootFlags) *cobra.Command {
	var renderer, format, outputPath string
	var frameDurationMS int
	render := &cobra.Command{
		Use:   "render --plugin <name>",
		Short: "Render the year's reading sequence with a renderer plugin",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if strings.TrimSpace(renderer) == "" {
				return fmt.Errorf("--plugin is required")
			}
			app, year, err := loadApp(flags)
			if err != nil {
				return err
			}
			if strings.TrimSpace(outputPath) == "" {
				outputPath = fmt.Sprintf("readlog-%d.%s", year, format)
			}
			out, err := app.RenderCLI.Render(context.Background(), renderdto.RenderInput{
				Renderer:     renderer,
				Year:         year,
				Format:       format,
				OutputPath:   outputPath,
				FrameDelayMS: frameDurationMS,
			})
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "rendered %d frames to %s\n", out.FrameCount, out.OutputPath)
			if out.Log != "" {
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), out.Log)
			}
			return nil
		},
	}
	render.Flags().StringVar(&renderer, "plugin", "", "renderer plugin name")
	render.Flags().StringVar(&format, "format", "gif", "output format: gif|mp4|storyboard")
	render.Flags().StringVar(&outputPath, "output", "", "output file path (default: readlog-<year>.<format>)")
	render.Flags().IntVar(&frameDurationMS, "frame-duration", 800, "per-frame duration in milliseconds")
	return render
}

func newPluginsCmd(flags *rootFlags) *cobra.Command {
	plugins := &cobra.Command{Use: "plugins", Short: "Renderer plugin commands"}

	plugins.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List installed renderer plugins",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, _, err := loadApp(flags)
			if err != nil {
				return err
			}
			list, err := app.RenderCLI.List(context.Background())
			if err != nil {
				return err
			}
			if len(list) == 0 {
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), "no renderers installed")
				return nil
			}
			for _, info := range list {
				state := "disabled"
				if info.Enabled {
					state = "enabled"
				}
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\t%s\t%s\t%s\n",
					info.Name, info.Version, state, strings.Join(info.Formats, ","), info.Binary)
			}
			return nil
		},
	})

	plugins.AddCommand(&cobra.Command{
		Use:   "check",
		Short: "Verify renderer binaries, checksums, and lifecycle",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, _, err := loadApp(flags)
			if err != nil {
				return err
			}
			results, err := app.RenderCLI.Check(context.Background())
			if err != nil {
				return err
			}
			if len(results) == 0 {
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), "no renderers installed")
				return nil
			}
			for _, result := range results {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s\tbinary=%t\tchecksum=%t\tlifecycle=%t",
					result.Name, result.BinaryReachable, result.ChecksumValid, result.LifecycleOK)
				if result.Error != "" {
					_, _ = fmt.Fprintf(cmd.OutOrStdout(), "\terror=%s", result.Error)
				}
				_, _ = fmt.Fprintln(cmd.OutOrStdout())
			}
			return nil
		},
	})

	return plugins
}
