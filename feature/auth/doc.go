// Package auth implements account management and session issuance.
//
// Registration stores bcrypt-hashed credentials; login issues a short-lived
// access token (response body) and a long-lived refresh token (HTTP-only
// cookie) that can be exchanged for new access tokens. Accounts inactive
// for more than the dormancy window are rejected until they log in again.
//
// The package also implements the middleware auth.Gate, which the request
// guard uses to confirm the token's account still exists and to refresh
// its activity clock.
//
// # HTTP Endpoints
//
//   - POST   /api/auth/register : Create an account.
//   - POST   /api/auth/login    : Verify credentials, issue tokens.
//   - POST   /api/auth/token    : Exchange the refresh cookie for an access token.
//   - GET    /api/auth/check    : Probe whether an email/username is taken.
//   - DELETE /api/auth/user     : Delete the authenticated account and its records.
package auth
