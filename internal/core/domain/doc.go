// Package domain defines the core business entities for the invoice renderer.
//
// This package is part of the hexagonal architecture's innermost layer.
// It defines the fundamental types:
//
//   - Invoice: The record being rendered, with its party and line items
//   - TotalsSummary: Subtotal, tax lines and grand total derived per render
//   - DrawInstruction: A positioned text, line or image command
//   - Config: Issuer identity, tax components, words locale and layout
//
// # Architectural Position
//
// Domain is at the centre of the hexagon. All other packages depend on
// domain, never the reverse.
//
// # Import Rules
//
//   - Can Import: Standard library, github.com/shopspring/decimal for money
//   - Cannot Import: Any internal/ package, any other external dependency
package domain
