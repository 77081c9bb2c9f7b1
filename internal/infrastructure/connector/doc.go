// Package connector adapts external services to the domain contracts:
// Stripe for donations and the payment mirror, OpenAI for press release
// cleanup, and local disk or Azure Blob Storage for uploaded images.
package connector
