// meta/meta.go
package meta

// ERROR_PREFIX starts every diagnostic written to stderr.
const ERROR_PREFIX = "kalah: error: "

// EXIT_FAILURE is the process status for any failed run.
const EXIT_FAILURE = 1

// LOG_LEVEL_ENV names the environment fallback for the -log-level flag.
const LOG_LEVEL_ENV = "KALAH_LOG_LEVEL"

const DEFAULT_LOG_LEVEL = "disabled"
