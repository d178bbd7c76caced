// Package services implements the driving port interfaces.
//
// The render pipeline lives here: Formatter turns values into display
// strings, TotalsCalculator derives the summary block, LayoutEngine turns an
// invoice into positioned draw instructions, and DocumentAssembler replays
// them into a driven DocumentRenderer. None of it touches the filesystem
// except DocumentAssembler.RenderToFile.
package services
