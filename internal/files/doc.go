// Package files discovers generated summary exports in the reports
// directory and resolves download requests to safe paths within it.
package files
