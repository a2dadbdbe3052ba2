// Package common contains shared constants and sentinel errors used across
// todokeeper components.
package common

// AuthHeaderName is the HTTP header carrying the auth token on requests and
// returning freshly issued tokens on responses.
const AuthHeaderName = "x-auth"

// AccessAuth is the only access kind a token may carry.
const AccessAuth = "auth"
