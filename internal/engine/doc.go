// Package engine drives a menu.Tree from discrete button events.
//
// The Engine has two states. While browsing it lists the children of the
// current parent a page at a time, moves a wrapping cursor with Increase and
// Decrease, and activates the highlighted node on Select: submenus are
// entered, values start an edit, actions run in place and screens hand the
// display to the host through the Lifecycle. While editing, Increase and
// Decrease step a single pending value, Select commits it through the
// Persister and Back discards it.
//
// Ascent uses a fixed-capacity History rather than recursion. Pushes past
// its capacity are dropped, and Back with an empty history leaves the menu.
//
// The engine never returns errors once constructed. Conditions it absorbs
// (dropped history entries, select values missing from their option list)
// are reported to the Observer so hosts can log or count them.
package engine
