package cmd

import (
	"fmt"
	"io"
	"time"

	"minio-storage/core/filestore"

	"github.com/fatih/color"
	"github.com/goccy/go-json"
)

var (
	okColor   = color.New(color.FgGreen)
	warnColor = color.New(color.FgYellow)
	errColor  = color.New(color.FgRed)
	keyColor  = color.New(color.FgCyan)
)

func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func outcomeColor(o filestore.Outcome) *color.Color {
	switch o {
	case filestore.OutcomeStored:
		return okColor
	case filestore.OutcomeConnectionUnavailable:
		return warnColor
	default:
		return errColor
	}
}

func printSaveResult(w io.Writer, source string, res filestore.SaveResult) {
	fmt.Fprintf(w, "%s -> %s [%s] %s\n",
		source,
		keyColor.Sprint(res.Name),
		outcomeColor(res.Outcome).Sprint(res.Outcome),
		humanSize(res.Size),
	)
	if res.Err != nil {
		fmt.Fprintf(w, "  %s\n", errColor.Sprint(res.Err))
	}
}

func printEntry(w io.Writer, e filestore.Entry) {
	fmt.Fprintf(w, "%10s  %s  %s",
		humanSize(e.Size),
		e.LastModified.Format(time.DateTime),
		keyColor.Sprint(e.Name),
	)
	if e.ContentType != "" {
		fmt.Fprintf(w, "  %s", e.ContentType)
	}
	fmt.Fprintln(w)
}

func humanSize(n int64) string {
	const unit = 1024
	if n < unit {
		return fmt.Sprintf("%d B", n)
	}
	div, exp := int64(unit), 0
	for m := n / unit; m >= unit; m /= unit {
		div *= unit
		exp++
	}
	return fmt.Sprintf("%.1f %ciB", float64(n)/float64(div), "KMGTPE"[exp])
}
