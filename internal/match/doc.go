// Package match provides edit-distance helpers for "did you mean" suggestions
// when a declaration dump uses an unknown keyword.
//
// Key functions:
//   - Levenshtein: computes edit distance between strings
//   - Suggest: picks the closest known keyword, if any is close enough
package match
