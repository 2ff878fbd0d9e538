// Package ui hosts the Bubble Tea program that renders engine frames and
// turns terminal key presses into engine keys.
//
// Message flow:
//   - The engine runs on its own goroutine and talks to a Session, which
//     implements engine.Terminal. Draw calls become frame messages posted to
//     the running tea.Program.
//   - Model.Update routes every tea.Msg through a typed handler registry.
//     Key presses are translated by keyFor and queued for Session.ReadKey.
//   - Session.ReadLine posts a lineModeMsg. The model then hands keys to a
//     bubbles textinput until Enter submits the value to Session.ReadLine.
//
// Shutdown:
//   - ctrl+c quits the program. The Session notices the program exiting and
//     every blocked read returns ErrClosed, which unwinds the engine.
package ui
