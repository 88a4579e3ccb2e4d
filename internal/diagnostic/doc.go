// Package diagnostic collects non-fatal findings produced while lowering
// declarations, such as items skipped because they cannot cross the C boundary.
//
// Key capabilities:
//   - Severity levels (info, warning) with stable codes
//   - Item and member location for every message
package diagnostic
