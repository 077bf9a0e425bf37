// Package emsapi is the typed HTTP client for the EMS SMTP panel API.
//
// Every remote operation is described by an immutable Endpoint built from
// a typed request value. The Client executes an Endpoint, decodes the
// uniform response envelope, translates API status codes into the typed
// error taxonomy, and captures the session cookie issued on login.
//
// DTOs in this package are pure wire-shape mirrors. Each one owns a
// single one-way ToDomain mapping; domain types never serialize back
// into DTOs here.
package emsapi
