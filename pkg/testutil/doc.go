// Package testutil provides utilities for testing chromazone components.
//
// Key components:
//   - TestEnvironment: points the config and state locations at temporary
//     directories and clears CHROMAZONE_* settings inherited from the shell
//   - CreateFile: writes fixture files
//
// All test data should be defined inline, not in external files.
package testutil
