// Package io reads and writes trees from files and streams.
//
// # Overview
//
// Two formats are supported:
//
//   - Newick text in any named text encoding ([ReadNewick], [WriteNewick])
//   - A nested JSON interchange format ([ReadJSON], [WriteJSON])
//
// Each reader/writer pair has a path-based convenience form ([ImportNewick],
// [ExportNewick], [ImportJSON], [ExportJSON]) that opens, creates and closes
// the file.
//
// # Encodings
//
// Encoding names are resolved through the WHATWG encoding index
// ([golang.org/x/text/encoding/htmlindex]), so "utf-8", "latin1",
// "windows-1252", "utf-16le" and their aliases are all accepted. An empty
// name means UTF-8. A byte order mark at the start of the input overrides the
// requested encoding and is stripped.
//
//	forest, err := io.ImportNewick("trees.nwk", io.Options{Encoding: "latin1"})
//
// Unknown encoding names, undecodable UTF-8 input and characters that the
// target encoding cannot represent fail with INVALID_ENCODING. Missing files
// fail with FILE_NOT_FOUND.
//
// # JSON Format
//
// A forest is a JSON array of trees. Each node is an object with optional
// fields; absent lengths stay absent after a round trip:
//
//	[
//	  {
//	    "name": "R",
//	    "children": [
//	      {"name": "A", "length": 1},
//	      {"name": "B", "length": 2.5, "comment": "&support=90"}
//	    ]
//	  }
//	]
//
// Decoded trees are validated with [tree.Validate] before they are returned.
//
// [tree.Validate]: github.com/matzehuels/newick/pkg/tree.Validate
package io
