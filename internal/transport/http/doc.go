// Package http provides the HTTP transport layer for the survey API.
//
// Handlers follow a consistent pattern: parse and validate request
// input, delegate to the service layer, and render either a JSON
// success envelope or an RFC 7807 problem document through the shared
// error handler. Export endpoints stream CSV and Excel documents
// directly to the response body.
//
// Routes are mounted under /api:
//
//	GET  /api/survey/overview
//	GET  /api/survey/states
//	GET  /api/survey/states/{state}/districts
//	GET  /api/survey/districts?state=...
//	GET  /api/survey/regions
//	GET  /api/survey/rankings?group=...&metric=...&order=...&limit=...
//	GET  /api/survey/outcomes?present=true
//	POST /api/survey/reload
//	GET  /api/survey/export/{states,districts,regions}.csv
//	GET  /api/survey/export/summary.xlsx
//	GET  /api/health{,/ready,/live}
//	GET  /api/reports
//	GET  /api/reports/{filename}
//
// All list endpoints accept optional year and class query filters.
package http
