// ============================================================================
// drawlang - Drawing language toolchain
// ============================================================================
//
// Package:     astviewer
// Description: Message types for async operations in the AST viewer
// Author:      Mike Stoffels
// Created:     2025-03-02
// License:     MIT
// ============================================================================

package astviewer

import (
	"github.com/msto63/drawlang/foundation/drawlang"
)

// parsedMsg is sent when the file has been parsed
type parsedMsg struct {
	result *drawlang.Result
	err    error
}

// reloadMsg asks the viewer to parse the file again
type reloadMsg struct{}
