// Package syntax holds the parsed declaration model consumed by the generator.
//
// Declarations are produced by an external front-end and are never mutated
// here. Every declaration kind owns its own ordered attribute list.
//
// Key types:
//   - Attribute: style, sugared-doc flag and a MetaItem payload
//   - MetaItem: closed set of payload shapes (Word, List, NameValue)
//   - Item, ForeignItem, Variant, Field: the four attributed declaration kinds
//   - Abi: optional linkage marker on functions and foreign blocks
//
// Declarations can also be loaded from a YAML dump (see LoadFile).
package syntax
