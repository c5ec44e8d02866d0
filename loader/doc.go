// Package loader parses TSPLIB-format (EUC_2D) problem files into a
// core.Graph.
//
// Supported subset: line-oriented header key/value pairs (NAME, COMMENT,
// TYPE, DIMENSION, EDGE_WEIGHT_TYPE), followed by a NODE_COORD_SECTION of
// N "<id> <x> <y>" lines, terminated by "EOF" or end of stream. Only
// EDGE_WEIGHT_TYPE EUC_2D is accepted; distances are computed and rounded
// by core.NewGraph.
package loader
