// Package services implements the driving port interfaces.
// Services contain the core business logic and orchestrate
// calls to driven ports (adapters).
//
//   - Builder: walks document trees into a corpus
//   - SearchService: scores, ranks and annotates corpus documents per query
//   - SettingsService: typed settings over the config store
//
// Services are pure Go with no CGO dependencies.
package services
