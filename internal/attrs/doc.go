// Package attrs answers per-declaration attribute queries.
//
// The same queries work on all four attributed declaration kinds through the
// Attributed interface. Only outer attributes are ever matched.
//
// Key functions:
//   - HasAttr: structural match against a MetaItem pattern
//   - IsNoMangle, IsReprC, IsReprU32, IsReprU16, IsReprU8: fixed markers
//   - Repr: resolved layout with fixed precedence C > u32 > u16 > u8
//   - Documentation: doc comment lines, each terminated by "\n"
package attrs
