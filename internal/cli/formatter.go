package cli

import (
	"cmp"
	"encoding/json"
	"fmt"
	"io"
	"slices"
	"strconv"
	"text/tabwriter"
	"time"

	"github.com/dustin/go-humanize"

	"github.com/idelchi/selectfile/internal/report"
	"github.com/idelchi/selectfile/internal/selection"
)

const (
	// TabSpacing is the number of spaces between tabwriter columns.
	TabSpacing = 2
	timeLayout = "2006-01-02 15:04:05"
)

func printJSON(v any, writer io.Writer) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding JSON output: %w", err)
	}

	if _, err := fmt.Fprintln(writer, string(data)); err != nil {
		return err
	}

	return nil
}

// PrintResultJSON outputs a selection with unset fields as null.
func PrintResultJSON(result selection.Result, writer io.Writer) error {
	return printJSON(result, writer)
}

// PrintResultTable outputs a selection as aligned key/value rows.
//
//nolint:forbidigo // This function prints output to the console.
func PrintResultTable(result selection.Result, writer io.Writer) error {
	w := tabwriter.NewWriter(writer, 0, 4, TabSpacing, ' ', 0)

	kind := "file"
	if result.IsDir() {
		kind = "folder"
	}

	fmt.Fprintf(w, "Path:\t%s\n", result.Path())
	fmt.Fprintf(w, "Type:\t%s\n", kind)

	if result.SizeBytes != nil {
		fmt.Fprintf(w, "Size:\t%s (%d bytes)\n", humanize.IBytes(uint64(max(*result.SizeBytes, 0))), *result.SizeBytes)
	}

	fmt.Fprintf(w, "Modified:\t%s\n", formatTime(result.LastModified))
	fmt.Fprintf(w, "Created:\t%s\n", formatTime(result.Created))
	fmt.Fprintf(w, "Read-only:\t%s\n", formatBool(result.Readonly))
	fmt.Fprintf(w, "Symlink:\t%s\n", formatBool(result.IsSymlink))
	fmt.Fprintf(w, "Broken symlink:\t%s\n", formatBool(result.SymlinkBroken))

	if result.IsDir() {
		fmt.Fprintf(w, "Virtual env:\t%s\n", formatBool(result.FolderHasVenv))
	}

	return w.Flush()
}

func formatTime(t *time.Time) string {
	if t == nil {
		return "-"
	}

	return t.Format(timeLayout)
}

func formatBool(b *bool) string {
	if b == nil {
		return "-"
	}

	return strconv.FormatBool(*b)
}

// PrintStatsJSON outputs report statistics in JSON format.
func PrintStatsJSON(stats *report.Stats, writer io.Writer) error {
	return printJSON(stats, writer)
}

// PrintStatsTable outputs report statistics in human-readable table format.
//
//nolint:forbidigo // This function prints output to the console.
func PrintStatsTable(stats *report.Stats, writer io.Writer) error {
	w := tabwriter.NewWriter(writer, 0, 4, TabSpacing, ' ', 0)

	if !stats.Dirs {
		fmt.Fprintln(w, "Top extensions:\t\t")

		exts := make([]string, 0, len(stats.Extensions))
		for ext := range stats.Extensions {
			exts = append(exts, ext)
		}

		slices.SortFunc(exts, func(a, b string) int {
			return cmp.Or(cmp.Compare(stats.Extensions[b].Size, stats.Extensions[a].Size), cmp.Compare(a, b))
		})

		if len(exts) > stats.TopN {
			exts = exts[:stats.TopN]
		}

		for i, ext := range exts {
			stat := stats.Extensions[ext]
			if ext == "" {
				ext = `""`
			}

			fmt.Fprintf(w, "  %d) %s:\t%d files, %s (%.1f%%)\n",
				i+1, ext, stat.Count, humanize.IBytes(uint64(max(stat.Size, 0))), stats.Share(stat.Size))
		}

		fmt.Fprintln(w, "\t\t")
	}

	if stats.Dirs {
		fmt.Fprintln(w, "Top directories:\t\t")
	} else {
		fmt.Fprintln(w, "Top files:\t\t")
	}

	for i, item := range stats.Top {
		fmt.Fprintf(w, "  %d) '%s'\t%s (%.1f%%)\n",
			i+1, item.Path, humanize.IBytes(uint64(max(item.Size, 0))), stats.Share(item.Size))
	}

	fmt.Fprintln(w, "\nStats:\t\t")

	if stats.Dirs {
		fmt.Fprintf(w, "Total directories:\t%d\n", stats.Count)
	} else {
		fmt.Fprintf(w, "Total files:\t%d\n", stats.Count)
	}

	fmt.Fprintf(w, "Total size:\t%s (%d bytes)\n",
		humanize.IBytes(uint64(max(stats.TotalBytes, 0))), stats.TotalBytes)

	if stats.Errors > 0 {
		fmt.Fprintf(w, "Unreadable entries:\t%d\n", stats.Errors)
	}

	fmt.Fprintf(w, "\nElapsed:\t%v\n", stats.Elapsed.Round(time.Millisecond))

	return w.Flush()
}
