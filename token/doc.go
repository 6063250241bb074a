// Package token owns the persisted credential triplet (bearer token, user id,
// role) and its legacy storage-key aliasing.
//
// Historical versions of the web client read the bearer token from three
// different keys. This package keeps that debt behind one interface: there is
// exactly one canonical write path that mirrors the token to every alias, one
// documented read-priority order, and one clear operation that removes every
// key the token could ever have been written under.
//
// Tokens are stored raw. Any "Bearer " prefix is stripped on save so the
// Authorization header is never double-prefixed.
package token
