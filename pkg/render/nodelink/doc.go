// Package nodelink renders a route as a node-link diagram.
//
// # Overview
//
// Each stop becomes a box and each leg an arrow labelled with its distance,
// laid out left to right in driving order. The start and end stops are drawn
// with a heavier outline.
//
// # Usage
//
// Convert a route to DOT, then render to SVG:
//
//	dot := nodelink.ToDOT(r, legs, nodelink.Options{Unit: "mi"})
//	svg, err := nodelink.RenderSVG(dot)
//
// [Render] dispatches on a format name; [FormatFromPath] derives one from a
// file extension (".dot", ".gv" or ".svg").
//
// # Dependencies
//
// This package uses [github.com/goccy/go-graphviz] for in-process SVG
// rendering; no Graphviz installation is needed.
package nodelink
