// Package main hosts the tsitool CLI entrypoint and command graph.
//
// The Cobra-based command tree covers day-to-day work with tsi membrane
// meshes: summarizing files, auditing vertex references, rescaling geometry
// and converting between compression codecs. It centralizes configuration
// resolution and logger setup so subcommands can focus on their operation
// instead of wiring.
//
// Keep this package lean: mesh semantics belong in the tsigo, codec and check
// packages; commands here only parse flags, call into those packages and
// render results.
package main
