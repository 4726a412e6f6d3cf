package main

import (
	"strings"

	"github.com/ext-sakamoro/ALICE-Text/skeleton"
)

// renderAll renders every stream against cols and joins the results with
// "\n", used by the v2 decompress path which has no query.Engine to lean on.
func renderAll(streams []skeleton.Stream, cols skeleton.Columns) string {
	records := make([]string, len(streams))
	for i, st := range streams {
		records[i] = cols.Render(st)
	}

	return strings.Join(records, "\n")
}

// buildSkeleton splits text into records and runs them through a fresh
// skeleton.Builder, shared by the compress and compress-v3 commands and by
// the estimate command's in-memory dry run.
func buildSkeleton(text string) ([]skeleton.Stream, skeleton.Columns) {
	text = strings.TrimSuffix(text, "\n")

	var records []string
	if text != "" {
		records = strings.Split(text, "\n")
	}

	b := skeleton.NewBuilder()
	streams := make([]skeleton.Stream, len(records))
	for i, rec := range records {
		streams[i] = b.AddRecord(rec)
	}

	return streams, b.Finish()
}
