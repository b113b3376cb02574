package aim

import "log"

// Logf is the package-level diagnostic logger. It defaults to log.Printf.
// Only structural anomalies of input are reported; frames without target are not.
var Logf func(format string, v ...interface{}) = log.Printf

// SetLogger replaces the package logger. Passing nil mutes it.
func SetLogger(f func(format string, v ...interface{})) {
	if f == nil {
		Logf = func(string, ...interface{}) {}
		return
	}
	Logf = f
}
