// Package fieldschema loads field option files. A file is JSON or YAML and
// maps unique identifiers to the options a host would otherwise supply at
// runtime, so a page can be described, validated and rendered offline.
package fieldschema
