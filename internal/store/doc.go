// Package store defines the persistence contracts for cards and answers.
// The practice core depends only on these interfaces; concrete SQL
// implementations live in internal/platform/sqlstore.
package store
