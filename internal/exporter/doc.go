// Package exporter writes survey summary reports.
//
// CSVWriter is the core CSV writing layer with UTF-8 BOM support for
// Excel compatibility. SummaryExporter flattens group summaries into
// CSV files or streams them to an io.Writer for HTTP downloads.
// WorkbookExporter bundles every grouping into one .xlsx workbook.
//
// Absent subject averages are exported as empty cells, never 0.00.
package exporter
