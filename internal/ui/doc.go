// Package ui renders the non-interactive output of the odintv subcommands.
//
// Everything here follows a "print once and exit" pattern: a command builds a
// Header, does its work, then prints a Result box or one of the tables. The
// interactive browser lives in internal/tui; this package only shares its
// colors.
//
// Components:
//
//   - Header: command banner with an ordered parameter list
//   - Result: success, warning and failure boxes with troubleshooting tips
//   - SitesTable, TrendingTable, ReceiversTable: uitable listings
//
// Printer binds the components to an io.Writer and the terminal width so
// commands can be tested against a bytes.Buffer.
//
// Logging stays silent unless ODINTV_LOG_LEVEL is set, so the curated output
// here is all the user sees.
package ui
