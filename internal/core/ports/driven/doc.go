// Package driven defines the interfaces that core calls OUT to infrastructure.
//
// These are the "driven" or "secondary" ports in hexagonal architecture.
// Core services depend on these interfaces, and infrastructure adapters
// implement them.
//
// # Required Interfaces
//
//   - DocumentRenderer: Turns draw instructions into a finished document
//   - RendererFactory: Creates a fresh DocumentRenderer per render
//   - ConfigStore: Application configuration
//   - InvoiceReader: Decodes invoice records supplied by the user
//
// # Import Rules
//
//   - Can Import: domain package only
//   - Cannot Import: Any adapter package
package driven
