// Package report renders plans as plain text for terminals and the text endpoint.
package report
