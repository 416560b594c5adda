// Package ui holds the colour themes shared by the command line output, the
// usage text and the interactive explorer. Themes are plain ANSI strings for
// line-oriented output and lipgloss colours for the explorer.
package ui
