// Package drawer executes layout draw commands against concrete outputs: an SVG file, a
// terminal, or several of them at once. It also exports the workflow step chain as a DOT
// graph.
package drawer
