// Package models defines the core domain models for receipt splitting.
//
// # Models
//
//   - Session: one split, holding participants, receipts, line items and payers
//   - Receipt: an independently priced document with items, taxes and a discount
//   - LineItem: one billable line (item, tax or discount) and its contributors
//   - Amount: a money value that can be deliberately blank during editing
//
// Participants are identified by display name strings; there are no user accounts.
//
// # Design Principles
//
// 1. **Values, not globals**: a Session is copied and replaced, never shared mutably
// 2. **Explicit blanks**: Amount distinguishes "not entered yet" from zero
// 3. **No pointers between models**: lines refer to receipts by index
package models
