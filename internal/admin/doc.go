// Package admin implements the hopeconnect-admin maintenance commands.
//
// The tool shares the server configuration (flags, environment and config
// file) and talks to the database directly, so it can be used before the
// HTTP API is running. Commands:
//
//	migrate                                      apply pending schema migrations
//	create-admin -email E [-password P] [-first F] [-last L]
//	promote -email E [-role admin|user]          change the role of an existing user
//	help
//
// Administrators cannot be created over the public API; create-admin and
// promote are the supported way to obtain one. When -password is omitted the
// password is read from the terminal without echo.
package admin
