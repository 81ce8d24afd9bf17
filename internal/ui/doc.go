// Package ui provides semantic text formatting for nstconf output.
//
// Formatters render content according to terminal capabilities. With
// colors available the content is colorized; when NO_COLOR is set or the
// terminal can't do colors, text decorations are used instead.
//
// # Semantic Formatters
//
//	ui.Code.Sprint("nstconf settings list")   // Commands
//	ui.Path.Sprint("~/.config/nestopia")     // File paths
//	ui.Name.Sprint("v_scale")                // Setting and binding names
//	ui.Value.Sprint(2)                       // Current values
//	ui.Success.Sprint("✓")                   // Success indicators
//	ui.Error.Sprint("✗")                     // Error indicators
//	ui.Warning.Sprint("restart required")    // Warnings
//	ui.Info.Sprint("→")                      // Hints
//	ui.Muted.Sprint("1-16")                  // De-emphasized text
//
// # Color Behavior
//
// Colors are disabled when NO_COLOR is set (any value) or when fatih/color
// detects a terminal without color support. Decorations without color:
//   - Code: `backticks`
//   - Name: 'single quotes'
//   - Muted: (parentheses)
//   - Others: none
package ui
