// SPDX-License-Identifier: MIT

package gcs

import "go.uber.org/zap"

// Logger receives every non-fatal diagnostic (Warn) this module emits. It
// defaults to a no-op sugared logger so library code stays silent unless a
// host process opts in; cmd/gcsdemo replaces it with a development
// logger at startup.
var Logger = zap.NewNop().Sugar()

// SetLogger replaces Logger. Passing nil restores the no-op default.
func SetLogger(l *zap.SugaredLogger) {
	if l == nil {
		Logger = zap.NewNop().Sugar()
		return
	}
	Logger = l
}
