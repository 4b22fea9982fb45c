// Package hclcfg is the HCL implementation of the config.Loader interface.
//
// A configuration file is a flat sequence of top-level attributes, e.g.
//
//	workflow = "script"
//	system   = "multicore"
//	nproc    = 4
//	stages   = ["bin/xmeshfem2D", "bin/xspecfem2D"]
//
// The loader is schema-agnostic: every top-level binding is passed through
// unchanged, in declaration order, so new configuration keys never require
// loader changes, only consumer changes.
package hclcfg
