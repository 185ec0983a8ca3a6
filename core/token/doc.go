// Package token issues and verifies the JWT session credentials: a
// short-lived access token carried as a Bearer header and a long-lived
// refresh token carried as an HTTP-only cookie. The refresh token holds
// only the user id.
package token
