// Package format rewrites value sheets in canonical form.
//
// Only entry values and the separator after a property name are touched:
// comments, blank lines, indentation and trailing ';' are copied from the
// source as they are.
package format
