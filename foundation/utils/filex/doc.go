// Package filex provides the file and path helpers drawlang needs.
//
// Package: filex
// Title: File Utilities
// Description: Existence checks, ~ and environment expansion for
//              configuration paths, and multi-pattern search used by drawc
//              to expand directory arguments into token stream files.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2025-03-02
//
// Change History:
// - 2025-01-25 v0.1.0: Initial implementation with comprehensive file utilities
// - 2025-03-02 v0.2.0: Reduced to path helpers
//
// Usage:
//
//	files, err := filex.FindFiles("streams", "*.yaml", "*.json")
//	if err != nil {
//		return err
//	}
//
// FindFiles skips hidden directories and returns paths sorted, so repeated
// runs visit files in the same order.
package filex
