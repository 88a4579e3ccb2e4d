// Package ir defines the intermediate representation handed to header emitters.
//
// Key types:
//   - Repr: layout requested by a declaration (none, C, u32, u16, u8)
//   - Library: lowered structs, enums, opaque items and functions
package ir
