// Package iocsv reads and writes every tabular file a DTA run uses
// (node.csv, link.csv, demand.csv, columns.csv, link_performance_ue.csv,
// link_performance_dta.csv, trajectories.csv) using the standard
// library's encoding/csv. Columns are identified by header name, not
// position, so field order in the file never matters.
package iocsv
