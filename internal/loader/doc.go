// Package loader locates and decodes configuration files.
//
// A logical name such as "logger" is resolved inside a directory by trying
// the supported extensions in priority order (see [Extensions]); the first
// existing file wins and files with other extensions are ignored. JSON files
// are decoded with encoding/json, YAML files with gopkg.in/yaml.v3.
package loader
