// Package render presents alignment span lists in textual forms.
//
// Two primary forms are provided over the same input:
//
//   - Unified: a single interleaved rendering with -/+ markers and hunk
//     headers, compatible with the common unified diff layout.
//   - SideBySide: one display row per line position, pairing left and
//     right lines and padding the shorter block within each span.
//
// Colors renders either form for terminals, and Report/HTMLReport
// produce a markdown or HTML comparison report.
package render
