// Package web renders the public site and the admin CMS as server-side HTML.
// It shares the application services and the session cookie with the JSON API.
package web
