// Command creational runs the creational pattern demos.
//
// With no subcommand every demo runs in order. Each demo is also available as
// its own subcommand:
//
//	creational abstract-factory
//	creational builder
//	creational factory-method
//	creational prototype
//	creational prototype-deep
//	creational prototype-file
//
// Demo output goes to stdout; logs go to stderr.
//
// Flags (persistent, override the environment):
//
//	--log-level    zerolog level (env CREATIONAL_LOG_LEVEL, default info)
//	--scratch-dir  directory for the prototype-file scratch file
//	               (env CREATIONAL_SCRATCH_DIR, default .)
package main
