// Package session applies user edits to a split session.
//
// Every function takes a models.Session and returns a new one, leaving the
// input untouched. Receipts, lines and payers are addressed by index; an out
// of range index or an unknown participant is rejected with a sentinel error.
// Editing a receipt clears the allocation set, which must then be rebuilt
// with AssignLines.
package session
