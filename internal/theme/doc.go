// Package theme holds the drawing-primitive contract every paint operation of the list
// view goes through, and the concrete skins that satisfy it.
//
// A Theme owns no model or geometry state. Its only state is a cache of colors derived
// from the host Style, recomputed once per Refresh (the host's realized and
// style-changed notifications), and a context stack carrying ambient parameters such
// as corner radius through nested paint scopes.
package theme
