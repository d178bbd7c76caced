// Package invoicefile reads and writes invoice records as JSON, TOML or YAML.
//
// All three formats share one schema. Money and quantities may be written as
// numbers or as strings; strings are exact, numbers go through float parsing
// in the TOML and YAML decoders. Dates use YYYY-MM-DD.
package invoicefile
