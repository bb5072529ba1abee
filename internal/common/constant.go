// Package common contains shared constants and sentinel errors used across
// unconfessional components.
package common

// EntriesStorageKey is the local storage key holding the serialized journal.
const EntriesStorageKey = "unconfessional.entries"

// UntitledEntry is shown in place of an empty entry title.
const UntitledEntry = "Untitled"
