// Package server holds the HTTP server configuration: listen port, CORS
// origins for the browser clients, and the token signing settings shared by
// the auth feature and the auth middleware.
package server
