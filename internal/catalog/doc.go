// Package catalog holds the speed-dial sites shown in the dashboard grid.
//
// A catalog has two groups: pinned sites (the "Top Sites" row) followed by
// utilities. The dashboard grid indexes them as one list, pinned first, so
// Catalog.Len is the grid's item count and Catalog.ItemAt resolves a focused
// grid index back to a site.
//
// The built-in catalog is embedded from defaults.yaml. A user file (sites.yaml
// in the configuration directory) replaces it entirely when present:
//
//	version: 1
//	pinned:
//	  - id: yt
//	    name: YouTube
//	    url: https://youtube.com/tv
//	    icon: "📺"
//	    category: Entertainment
//	utilities: []
//
// Watch reports edits to the user file so a running dashboard can resize its
// grid without a restart.
package catalog
