// Package flows contains the session flow orchestration: login, register,
// refresh, and logout sequencing, decoupled from the host package through
// dependency structs so the ordering rules (persist before transition, clear
// before redirect, never mutate on failure) are testable in isolation and no
// import cycle forms with the public package.
package flows
