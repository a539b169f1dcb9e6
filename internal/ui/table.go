package ui

import (
	"fmt"
	"sort"
	"strings"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"

	"github.com/muurk/odintv/internal/catalog"
	"github.com/muurk/odintv/internal/remote"
	"github.com/muurk/odintv/internal/trending"
)

const tableSeparator = "  "

func newTable(maxWidth uint, headings ...string) *uitable.Table {
	bold := color.New(color.Bold)

	tbl := uitable.New()
	tbl.Separator = tableSeparator
	tbl.MaxColWidth = maxWidth
	tbl.Wrap = true

	row := make([]interface{}, len(headings))
	for i, h := range headings {
		row[i] = bold.Sprint(h)
	}
	tbl.AddRow(row...)
	return tbl
}

// SitesTable lists the catalog in grid order
func SitesTable(c *catalog.Catalog) *uitable.Table {
	tbl := newTable(48, "#", "ID", "NAME", "CATEGORY", "URL")

	for i, item := range c.All() {
		name := item.Name
		if c.IsPinned(i) {
			name = PinnedMarker + " " + name
		}
		tbl.AddRow(i, item.ID, name, item.Category, item.URL)
	}
	tbl.RightAlign(0)
	return tbl
}

// TrendingTable lists trending topics with wrapped summaries
func TrendingTable(items []trending.Item) *uitable.Table {
	tbl := newTable(72, "#", "TOPIC", "SUMMARY")
	for i, item := range items {
		tbl.AddRow(i+1, item.Title, item.Summary)
	}
	tbl.RightAlign(0)
	return tbl
}

// ReceiversTable lists discovered remote-control receivers sorted by name
func ReceiversTable(receivers []*remote.Receiver) *uitable.Table {
	sorted := make([]*remote.Receiver, len(receivers))
	copy(sorted, receivers)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Name < sorted[j].Name })

	tbl := newTable(48, "NAME", "ADDRESS", "HOST", "DETAILS")
	for _, r := range sorted {
		tbl.AddRow(r.Name, r.Addr(), r.Hostname, formatMetadata(r.Metadata))
	}
	return tbl
}

func formatMetadata(md map[string]string) string {
	if len(md) == 0 {
		return "-"
	}
	keys := make([]string, 0, len(md))
	for k := range md {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, fmt.Sprintf("%s=%s", k, md[k]))
	}
	return strings.Join(parts, " ")
}
