// Package pdf implements driven.DocumentRenderer on top of go-pdf/fpdf.
//
// Coordinates are PDF points with the origin at the top-left corner of the
// page, matching domain.DrawInstruction. Only the core Helvetica faces are
// used, so no font files are needed. Output is byte-for-byte reproducible for
// the same drawing calls and Options.
package pdf
