// Package tsplib reads symmetric TSP instances and writes tours in the
// TSPLIB text format.
//
// Supported input:
//   - TYPE TSP (or omitted).
//   - EDGE_WEIGHT_TYPE EUC_2D (rounded Euclidean, the default when a
//     NODE_COORD_SECTION is present), CEIL_2D, and EXPLICIT with
//     EDGE_WEIGHT_FORMAT FULL_MATRIX, UPPER_ROW or LOWER_DIAG_ROW.
//
// Header lines are "KEYWORD : value"; the colon is optional. Node ids in
// files are 1-based and become 0-based node indices. Unknown header keywords
// are ignored; unknown data sections are rejected.
//
// Errors:
//   - ErrFormat for malformed input. The returned error carries the line
//     number and is matched with errors.Is.
//   - ErrUnsupported for a problem or weight type outside the list above.
package tsplib
