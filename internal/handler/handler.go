// Package handler is the HTTP entry point after the router.
//
// It parses and validates requests using the validation package, calls
// the appropriate service, and shapes the response. No business rules
// live here.
package handler
