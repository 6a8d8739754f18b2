package core

import "errors"

// ErrConfigurationMissing is returned when a required Qiita client ID or
// secret is absent from the process configuration. Flows abort with a
// local log entry only; the user never sees this error.
var ErrConfigurationMissing = errors.New("required configuration missing")

// ErrIdentityMismatch is returned when the bot token presented with a
// view submission does not match the configured one. Treated as a
// possible spoofing attempt: the submission is dropped silently.
var ErrIdentityMismatch = errors.New("bot token mismatch")
