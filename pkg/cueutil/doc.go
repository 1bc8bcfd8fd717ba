// SPDX-License-Identifier: MPL-2.0

// Package cueutil holds the CUE plumbing shared by profile files and the
// application config.
//
// Decoding follows three steps:
//
//  1. Compile the embedded schema
//  2. Compile user data and unify it with the schema definition
//  3. Validate and decode into a Go struct (json tags drive field names)
//
// # Usage
//
//	//go:embed profile_schema.cue
//	var schema []byte
//
//	result, err := cueutil.ParseAndDecode[Profile](
//	    schema,
//	    data,
//	    "#Profile",
//	    cueutil.WithFilename("demo.cue"),
//	)
//
// Encode goes the other way and renders a Go value as formatted CUE source.
package cueutil
