// Package server runs the HTTP transport of the backend and shuts it down
// gracefully on SIGINT, SIGTERM or SIGQUIT.
package server
