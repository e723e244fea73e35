// Package sample resolves @sample cells against the filesystem: it strips
// display wrappers, expands glob patterns into matched sample paths, and
// extracts parameter values from sample file names.
package sample

import (
	"path"
	"regexp"
	"strconv"
	"strings"
)

// A parameter token is a run of ASCII letters immediately followed by a
// decimal number, e.g. "key60" or "pan-12.5".
var paramPattern = regexp.MustCompile(`^([a-zA-Z]+)(-?[0-9]+\.?[0-9]*)$`)

// StemParams extracts name/value parameters from a file stem. The stem is
// split on '_' and each token is matched against the name<number> shape;
// tokens that don't fit are ignored, later tokens overwrite earlier ones.
func StemParams(stem string) map[string]float64 {
	params := make(map[string]float64)
	for _, token := range strings.Split(stem, "_") {
		if token == "" {
			continue
		}
		m := paramPattern.FindStringSubmatch(token)
		if m == nil {
			continue
		}
		v, err := strconv.ParseFloat(m[2], 64)
		if err != nil {
			continue
		}
		params[m[1]] = v
	}
	return params
}

// Stem returns the base name of a slash-separated path without its extension.
func Stem(p string) string {
	base := path.Base(p)
	return strings.TrimSuffix(base, path.Ext(base))
}
