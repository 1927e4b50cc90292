// Package domain contains the core business entities of the questions API:
// users, questions, categories, solutions and rationales. Entities are plain
// records with explicit foreign-key fields; relationships are materialized by
// the store layer rather than held as in-memory object graphs.
package domain
