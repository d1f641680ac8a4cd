// Package http implements the HTTP transport of the BlockPlot backend.
//
// It wires the login flow endpoints, the session-protected JSON API and the
// operational endpoints onto a chi router. Request tracing, access logging,
// CORS, login rate limiting, session resolution and response compression
// are handled here before requests reach the service layer.
package http
