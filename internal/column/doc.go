// Package column holds column definitions, the ordered column set a view displays, and
// the column cache: per-column X offsets and widths derived from the set and the
// available width.
//
// The cache is rebuilt wholesale on resize or any column-set mutation and is never
// patched in place. Scrolling and selection changes never touch it.
package column
