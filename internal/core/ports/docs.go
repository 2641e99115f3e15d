// Package ports defines the contracts between the storefront core and its
// adapters: aggregate repositories bound to a unit of work, the web session
// store, the event publisher and the credential helpers.
package ports
