package loader

import (
	"bufio"
	"os"
	"strconv"
	"strings"

	"github.com/katalvlaran/aco-tsp/core"
)

// edgeWeightTypesAccepted lists the EDGE_WEIGHT_TYPE values this loader
// treats as plain 2D Euclidean coordinates rounded per TSPLIB convention.
// Only EUC_2D is accepted; every other value, including other
// coordinate-based types, is rejected.
var edgeWeightTypesAccepted = map[string]bool{
	"EUC_2D": true,
}

// Load parses the TSPLIB file at path and builds a *core.Graph from its
// NODE_COORD_SECTION.
//
// Contract:
//   - TYPE, if present, must be "TSP".
//   - DIMENSION must be a positive integer.
//   - EDGE_WEIGHT_TYPE must be EUC_2D.
//   - NODE_COORD_SECTION must contain exactly DIMENSION lines of
//     "<id 1..N> <x> <y>"; ids are stored 0-based (id-1).
//
// Returns *ParseError on any malformed header or body content, or the
// core.Graph errors from core.NewGraph (e.g. non-finite coordinates).
func Load(path string) (*core.Graph, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &ParseError{Path: path, Err: err}
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)

	var (
		dimension    int
		haveDim      bool
		edgeType     string
		tspType      = true // TYPE defaults to acceptable if absent
		lineNo       int
		inNodeSect   bool
		sawNodeSect  bool
		cities       []core.City
		seen         map[int]bool
		finishedBody bool
	)

	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		if !inNodeSect {
			if line == "NODE_COORD_SECTION" {
				inNodeSect = true
				sawNodeSect = true
				if !haveDim {
					return nil, &ParseError{Path: path, Line: lineNo, Err: ErrMissingDimension}
				}
				cities = make([]core.City, 0, dimension)
				seen = make(map[int]bool, dimension)

				continue
			}

			key, val, ok := splitHeaderLine(line)
			if !ok {
				// Unrecognized header noise (e.g. a stray COMMENT without
				// a colon); tolerate silently, as TSPLIB files are lenient.
				continue
			}

			switch key {
			case "NAME", "COMMENT":
				// Informational only.
			case "TYPE":
				tspType = val == "TSP"
			case "DIMENSION":
				n, err := strconv.Atoi(val)
				if err != nil || n <= 0 {
					return nil, &ParseError{Path: path, Line: lineNo, Err: ErrMissingDimension}
				}
				dimension = n
				haveDim = true
			case "EDGE_WEIGHT_TYPE":
				edgeType = val
			}

			continue
		}

		// Inside NODE_COORD_SECTION.
		if line == "EOF" {
			finishedBody = true

			break
		}

		id, x, y, err := parseCoordLine(line)
		if err != nil {
			return nil, &ParseError{Path: path, Line: lineNo, Err: ErrMalformedCoordinate}
		}
		if seen[id] {
			return nil, &ParseError{Path: path, Line: lineNo, Err: ErrDuplicateCityID}
		}
		seen[id] = true
		cities = append(cities, core.City{Index: id - 1, X: x, Y: y})

		if len(cities) == dimension {
			finishedBody = true
			// Keep scanning in case an explicit EOF marker follows; if the
			// stream simply ends, that's fine too.
		}
	}

	if err := scanner.Err(); err != nil {
		return nil, &ParseError{Path: path, Err: err}
	}

	if !tspType {
		return nil, &ParseError{Path: path, Err: ErrUnsupportedType}
	}
	if !sawNodeSect {
		return nil, &ParseError{Path: path, Err: ErrMissingNodeSection}
	}
	if !edgeWeightTypesAccepted[edgeType] {
		return nil, &ParseError{Path: path, Err: ErrUnsupportedEdgeWeightType}
	}
	if !finishedBody || len(cities) != dimension {
		return nil, &ParseError{Path: path, Err: ErrCoordinateCountMismatch}
	}

	// Order by 0-based index regardless of file order (TSPLIB ids are
	// usually already ascending, but this is not guaranteed).
	ordered := make([]core.City, dimension)
	var c core.City
	for _, c = range cities {
		if c.Index < 0 || c.Index >= dimension {
			return nil, &ParseError{Path: path, Err: ErrCoordinateCountMismatch}
		}
		ordered[c.Index] = c
	}

	return core.NewGraph(ordered)
}

// splitHeaderLine splits a TSPLIB header line of the form "KEY : VALUE" or
// "KEY: VALUE" into its trimmed key and value. ok is false if no colon is
// present.
func splitHeaderLine(line string) (key, val string, ok bool) {
	idx := strings.IndexByte(line, ':')
	if idx < 0 {
		return "", "", false
	}

	key = strings.TrimSpace(line[:idx])
	val = strings.TrimSpace(line[idx+1:])

	return key, val, true
}

// parseCoordLine parses a "<id> <x> <y>" coordinate line, whitespace
// separated, returning the 1-based id verbatim (callers convert to 0-based).
func parseCoordLine(line string) (id int, x, y float64, err error) {
	fields := strings.Fields(line)
	if len(fields) != 3 {
		return 0, 0, 0, ErrMalformedCoordinate
	}

	id, err = strconv.Atoi(fields[0])
	if err != nil {
		return 0, 0, 0, ErrMalformedCoordinate
	}
	x, err = strconv.ParseFloat(fields[1], 64)
	if err != nil {
		return 0, 0, 0, ErrMalformedCoordinate
	}
	y, err = strconv.ParseFloat(fields[2], 64)
	if err != nil {
		return 0, 0, 0, ErrMalformedCoordinate
	}

	return id, x, y, nil
}
