// Package editor hosts a buffer in a Bubble Tea component and bridges it to an
// input-method surface through editcontext.
//
// The terminal surface turns key presses into text updates relative to the
// text it was last handed, so typed input takes the same path an IME
// composition does. Hosts that own a real IME feed composition, format and
// bounds requests in as messages (CompositionStartMsg, TextFormatMsg, ...).
package editor
