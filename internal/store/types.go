package store

// Hash is used in the store to represent a serializable MD5 hash.
type Hash string

// currentVersion gets incremented every time we make a
// backwards-incompatible change to the store layout, and causes older
// stores to be discarded on read.
const currentVersion = 1

// Store represents the JSON written (by default) to
// .wkreport/store.json. It caches filter name lookups so repeat runs
// skip one round trip to Jira.
type Store struct {

	// The version of the store file.
	Version int `json:"version,omitempty"`

	// The hash of the Jira base URL the cached IDs belong to. If
	// the configured URL changes, the cache is discarded rather
	// than served for the wrong instance.
	BaseURLHash Hash `json:"baseUrlHash,omitempty"`

	// Map from lowercased filter names to filter IDs.
	Filters map[string]string `json:"filters,omitempty"`
}
