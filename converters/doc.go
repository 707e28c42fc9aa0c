// Package converters reads and writes core.Graph values and MST results in
// the formats the mstree command understands.
//
// Text adjacency format (ReadText / WriteText):
//
//	3          number of vertices
//	A          one vertex name per line
//	B
//	C
//	A B 1      one arc per line: from to weight
//	B C 2
//	A C 3
//
// Blank lines and lines starting with '#' are ignored. Arcs may only name
// declared vertices. Parallel arcs are accepted.
//
// TOML (DecodeTOML / EncodeTOML / EncodeResultTOML), via pelletier/go-toml/v2:
//
//	vertices = ["A", "B", "C"]
//
//	[[arcs]]
//	from = "A"
//	to = "B"
//	weight = 1.0
//
// Errors:
//
//	ErrSyntax - malformed input; the message carries the line number.
package converters
