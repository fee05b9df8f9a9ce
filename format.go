package main

import (
	"fmt"
	"path/filepath"

	"github.com/dustin/go-humanize"
	"github.com/dustin/go-humanize/english"
)

// formatResult returns a one-line description of a generated icon, e.g.
// "icon_20x20.png: 20x20 on white, 412 B" or "icon_20x20.png: <error>".
func formatResult(r result) string {
	name := filepath.Base(r.Spec.Path)
	if r.Err != nil {
		return fmt.Sprintf("%s: %v", name, r.Err)
	}
	return fmt.Sprintf("%s: %dx%d on %s, %s",
		name, r.Spec.Size, r.Spec.Size, r.Spec.BackgroundName, humanize.Bytes(uint64(r.Bytes)))
}

// formatSummary returns the end-of-run line.
func formatSummary(results []result) string {
	failed := countFailed(results)
	var total uint64
	for _, r := range results {
		if r.Err == nil {
			total += uint64(r.Bytes)
		}
	}
	written := len(results) - failed
	if failed == 0 {
		return fmt.Sprintf("Done! %s written (%s)",
			english.Plural(written, "icon", ""), humanize.Bytes(total))
	}
	return fmt.Sprintf("Done with errors: %s written (%s), %d failed",
		english.Plural(written, "icon", ""), humanize.Bytes(total), failed)
}
