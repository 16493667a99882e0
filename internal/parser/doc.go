// Package parser turns environment variables into configuration fragments.
//
// A variable such as LOGGER__COLORS__BLUE=true is split on "__" into levels
// (LOGGER, COLORS, BLUE); every level is split on "_" into tokens which are
// joined into a key, in camelCase or snake_case. The value is interpolated
// (${NAME} tags are replaced with other environment variables) and coerced to
// a bool, number or string, either by inference or by an explicit
// ncm_string:, ncm_number: or ncm_boolean: prefix.
package parser
