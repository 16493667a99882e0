// Package store implements the configuration store.
//
// A [Store] loads named configurations on demand. For a name such as
// "logger" it merges three layers, each overriding the previous one:
//
//  1. the default file {configDir}/logger.{json,yaml,yml};
//  2. the environment file {configDir}/{env}/logger.{json,yaml,yml};
//  3. the environment variables LOGGER__*, parsed into a nested tree.
//
// Loaded configurations are read with [Store.GetConfig] or through an
// [Accessor] obtained from [Store.Accessor]. The store is created by the
// application and passed to the code that needs it; there is no package
// level instance.
package store
