// Package inspect renders dissected IPP messages as indented text
// trees for terminal display.
package inspect
