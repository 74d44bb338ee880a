package common

// DefaultAuthHeaderName is the HTTP header that carries the bearer token
// unless configured otherwise.
const DefaultAuthHeaderName = "Authorization"

// BearerScheme prefixes the token inside the auth header.
const BearerScheme = "Bearer"
