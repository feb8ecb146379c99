// Package harness provides conformance testing for measurement
// scenarios.
//
// The harness loads scenarios from YAML, builds the declared
// quantities, applies the operation steps with uncertainty
// propagation, and validates the declared checks.
//
// # Scenario Format
//
// Scenarios are YAML files with the following structure:
//
//	name: scenario_name
//	description: "What this scenario validates"
//	quantities:
//	  - name: length
//	    value: 3.0
//	    uncertainty: 0.1
//	  - name: width
//	    observations: [4.9, 5.0, 5.1]
//	steps:
//	  - name: area
//	    op: mul
//	    left: length
//	    right: width
//	    precision: 2
//	checks:
//	  - type: rendered
//	    name: area
//	    expect: "(15.00 ± 0.78)"
//	  - type: bounds
//	    name: area
//	    lower: 14.0
//	    upper: 16.0
//
// # Check Types
//
// The following check types are supported:
//
//   - equivalent: two quantities agree within the expanded uncertainty
//     of their difference (optional coverage factor, default 2)
//   - distinct: two quantities do not agree
//   - less: strict equivalence-aware ordering between two quantities
//   - rendered: a quantity renders to an exact string
//   - bounds: a quantity's value lies inside a closed interval
//
// # Deterministic Testing
//
// Scenario execution is purely functional: quantities are rebuilt from
// their declarations on every run, so traces are identical across runs
// and suitable for golden snapshot comparison (see RunGolden).
package harness
