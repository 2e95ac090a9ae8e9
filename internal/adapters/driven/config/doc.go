// Package config holds value coercion shared by the configuration store
// adapters. Stores keep raw values as decoded from TOML or set by callers;
// these helpers read them back as the type a setting expects.
package config
