// Package aoc25 collects small puzzle solvers that each turn a short text
// input into one or two integer answers.
//
// What:
//
//	cascade/  grid cascade removal: staged mark-then-apply passes to a fixpoint
//	dial/     circular dial rotations and zero crossings
//	idrange/  repeated-digit IDs within ranges
//	joltage/  largest in-order digit selection per bank
//	interval/ merged integer interval sets: membership and coverage
//
// The aoc25 command (cmd/aoc25) loads inputs, solves days concurrently and
// renders the answers as a table, JSON or plain text:
//
//	go run ./cmd/aoc25 solve
//	go run ./cmd/aoc25 cascade inputs/day04.txt -v
package aoc25
