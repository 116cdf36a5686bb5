// Package creational collects small, runnable illustrations of the four
// classic object-creation patterns:
//
//   - abstractfactory: a factory per product family (Windows, Linux) that
//     always returns a matched operating system and application
//   - builder: phone builders driven step by step by a director
//   - factorymethod: one factory per shape behind a common Create method
//   - prototype: shallow and deep clones, a file round-trip clone and a
//     registry of prototypes
//
// Each package is a leaf; none depends on another.
//
// Package creational See subpackages:
//   - abstractfactory, builder, factorymethod, prototype: the patterns
//   - internal/demo: the console scenario for each pattern
//   - examples/*: one runnable main per pattern
//   - cmd/creational: CLI running any or all demos
package creational
