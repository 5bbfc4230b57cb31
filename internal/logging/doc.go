// Package logging provides opt-in file-based logging with rotation for
// statidx's build and search commands. When --debug is set, comprehensive
// logs are written to ~/.statidx/logs/ for troubleshooting a build.
//
// By default (without --debug), logging is minimal and goes to stderr
// only, so a one-shot `statidx build` stays quiet unless asked otherwise.
package logging
