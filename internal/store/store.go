// Package store persists small lookup results between runs, most
// importantly the mapping from filter names to filter IDs.
package store

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"

	"github.com/lderezinski/wkreport/internal/util"
)

func getStoreLocation() string {
	loc, ok := os.LookupEnv("WKREPORT_STORE")
	if ok {
		return loc
	}
	return ".wkreport/store.json"
}

// Read loads the store from disk. A missing file, or one written by
// an incompatible version, yields an empty store.
func Read() Store {
	filename := getStoreLocation()
	bytes, err := os.ReadFile(filename)

	if err != nil {
		if os.IsNotExist(err) {
			return Store{}
		}
		util.Die("%s: %s", filename, err)
	}

	var st Store
	err = json.Unmarshal(bytes, &st)

	if err != nil {
		util.Die("%s: %s", filename, err)
	}

	if st.Version != currentVersion {
		return Store{}
	}

	return st
}

// Write saves the store, creating its directory if needed.
func (st *Store) Write() {
	filename := getStoreLocation()

	filename, err := filepath.Abs(filename)
	if err != nil {
		util.Die("%s: %s", filename, err)
	}

	directory, _ := filepath.Split(filename)
	if err := os.MkdirAll(directory, 0o777); err != nil {
		util.Die("%s: %s", directory, err)
	}

	st.Version = currentVersion
	content, err := json.MarshalIndent(st, "", "  ")
	if err != nil {
		util.Panicf("store: json.MarshalIndent failed: %s", err)
	}
	content = append(content, '\n')

	util.TryWriteAtomic(filename, content)
}

// matchesInstance reports whether the cached filter IDs were recorded
// against the given Jira base URL.
func (st *Store) matchesInstance(baseURL string) bool {
	return st.BaseURLHash != "" && hashString(baseURL) == st.BaseURLHash
}

// LookupFilter returns the cached ID for a filter name on the given
// instance, if one is known.
func (st *Store) LookupFilter(baseURL, name string) (string, bool) {
	if !st.matchesInstance(baseURL) {
		return "", false
	}
	id, ok := st.Filters[strings.ToLower(name)]
	return id, ok
}

// RememberFilter records a name-to-ID mapping and writes the store.
// Cached IDs from a different instance are discarded first.
func (st *Store) RememberFilter(baseURL, name, id string) {
	if !st.matchesInstance(baseURL) {
		st.BaseURLHash = hashString(baseURL)
		st.Filters = nil
	}
	if st.Filters == nil {
		st.Filters = map[string]string{}
	}
	st.Filters[strings.ToLower(name)] = id
	st.Write()
}
