// Package models contains the GORM models behind the site tables. They are kept
// apart from the domain entities; each model converts with ToDomain/FromDomain.
package models
