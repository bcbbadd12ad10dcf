// Package dataprocessing normalizes raw National Achievement Survey
// CSV files into typed records and derives subject averages, group
// summaries and rankings from them.
//
// The pipeline is: clean headers, map columns by name, parse rows into
// SurveyRecords, classify outcome columns into subject buckets, then
// aggregate. Missing measurements stay absent throughout; nothing in
// this package ever substitutes zero for a value the source did not
// carry.
package dataprocessing
