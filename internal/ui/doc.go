// Package ui implements the console prompts used while creating a playlist.
//
// Two [Prompter] implementations exist:
//  1. [TeaPrompter] : bubbletea models (a [textinput.Model] for free text, a y/N model for confirmation)
//  2. [LinePrompter] : plain line reads for pipes, scripts and CI
//
// [NewPrompter] picks one based on whether the input is a terminal.
//
// Both treat an empty answer as the default: the supplied value for [Prompter.Ask] and "no" for
// [Prompter.Confirm]. Cancelling (esc / ctrl+c) returns [shared.ErrCancelled].
package ui
