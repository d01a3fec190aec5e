// Package config implements the pivot configuration pipeline: a pure
// function from the raw bytes of a human-edited TOML file to a typed
// [Config], an ordered list of [Finding] diagnostics, and partial project
// data.
//
// # Diagnose, don't abort
//
// The pipeline never crashes on malformed input. A syntactically valid
// document with semantically invalid fields produces findings and falls
// back to documented defaults; only a document the TOML decoder rejects
// sets LoadResult.HasParseError and yields a nil Config.
//
// # Containment policy
//
// Content failures are contained at two granularities:
//
//   - Global sections (app, agentLayer, chrome, layout): any failed bounds,
//     enum, or URL check reverts the whole section to its defaults,
//     discarding sibling fields that validated individually. The policy is
//     deliberately section-granular; callers must not assume partial
//     adoption of valid fields within a failing section.
//   - Project entries: a missing or empty name/path drops that entry only,
//     since there is no sensible default for a project identity. Invalid
//     optional fields degrade per field.
//
// # Error layers
//
// [ConfigError] (fileNotFound, createFailed, readFailed) covers "could not
// even obtain text" and always aborts the load. [Finding] (pass/warn/fail)
// covers "text was obtained but some content is invalid" and never does.
//
// The returned Config is immutable value data; a reload produces a new one.
package config
