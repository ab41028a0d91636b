// Package middleware contains HTTP middleware for the Fiber application.
//
// # Components
//
//   - auth: API key validation to protect endpoints.
//   - rayid: a unique Request ID (RayID) for every incoming request, stored in the
//     context and echoed in the response headers for tracing.
//
// These middleware components are registered globally in the start command.
package middleware
