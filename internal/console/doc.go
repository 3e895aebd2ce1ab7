// Package console implements the scripted fake command line.
//
// The package is split into small pieces:
//
//   - [Registry]: static, case-insensitive table of [Command] handlers
//   - [Action]: the steps a handler returns ([Print], [Type], [Pause], ...)
//   - [Transcript] and [History]: the output log and submitted input
//   - [Model]: Bubble Tea component owning the input line and transcript
//     viewport, running scripts through the Idle/Typing/Executing states
//   - [Exec]: one-shot execution of a command line against an io.Writer
//
// # States
//
// The model accepts keys only while [Idle]. A [Type] action moves it to
// [Typing] until the line is fully revealed; a [Pause] moves it to
// [Executing] until the delay elapses. Scripts always run to completion.
package console
