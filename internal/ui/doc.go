// Package ui contains the Bubble Tea program that simulates the front panel
// of a small menu-driven device in a terminal.
//
// Message flow:
//   - Bubble Tea invokes Model.Update with incoming messages, which are routed
//     through a typed handler registry so each tea.Msg is handled by a focused
//     function.
//   - Key presses are translated to engine buttons by input.KeyMap. Presses
//     from a hardware input.Source arrive as buttonMsg values; Update waits
//     for the next one after each event, the same way it would for any other
//     streaming backend.
//   - A periodic tick sends an empty press while the menu owns the panel so
//     values changed elsewhere are repainted.
//
// Panel ownership:
//   - Host implements engine.Lifecycle. It tracks whether the idle screen,
//     the menu, or an exclusive screen action owns the panel, and gives
//     screen actions Print/Printf to draw while they run.
//   - From the idle screen any press enters the menu. From a screen any press
//     returns to the list the screen was started from.
//
// Panels:
//   - Panel wraps either a character LCD (display.LCD) or a pixel OLED
//     (display.Pixel over display.Bitmap). Both are engine renderers; the
//     model only reads their published rows when rendering the view.
package ui
