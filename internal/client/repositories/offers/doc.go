// Package offers provides storage for the skill-offer catalog.
//
// Two implementations satisfy Repository:
//
//   - SQLiteRepository reads an SQLite database opened in memory by
//     InitDatabase (schema from embedded goose migrations, seed rows
//     inserted in one transaction). Nothing outlives the process.
//   - MemoryRepository keeps a copy of the offers in a slice.
//
// Both return offers in insertion order and report a missing ID with
// common.ErrNotFound.
package offers
