// Copyright (C) 2025 the travel-agency maintainers
// See root-dir/LICENSE for more information

package model

// ErrorReason selects the message shown on the standalone error view.
// Send failures never reach it: they re-render the contact form with the
// entered values preserved.
type ErrorReason int

const (
	ErrorReasonLoad ErrorReason = iota
	ErrorReasonProcess
)
