// Package lower converts parsed declarations into the header IR.
//
// Each item is classified through package attrs and either lowered, skipped
// with a diagnostic, or rejected with an error:
//   - structs: repr(C) keeps the layout, anything else becomes opaque (optional)
//   - enums: need a tagged repr (u32, u16, u8) and unit variants only
//   - functions: need extern "C" and #[no_mangle]
//   - extern "C" blocks: every foreign fn is exported, statics are skipped
package lower
