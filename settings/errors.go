package settings

import "errors"

// ErrBadSettings indicates a settings value that cannot drive a search
// (e.g. MaxIterations < 1) coming from the environment or a YAML profile.
// Option constructors panic instead; this sentinel covers runtime sources.
var ErrBadSettings = errors.New("settings: invalid value")

// ErrUnknownProfile indicates a profile name absent from a loaded profile set.
var ErrUnknownProfile = errors.New("settings: unknown profile")
