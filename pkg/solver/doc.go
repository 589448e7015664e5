// Package solver classifies the unknowns of a constraint system.
//
// [Solve] eliminates one variable at a time. For the first constraint it
// looks for a variable that can be isolated, substitutes the isolation into
// the remaining constraints and continues on the reduced system. Once the
// system is exhausted the eliminated constraints are revisited in reverse
// order and the known values are substituted back to recover each
// eliminated variable.
//
// # Outcomes
//
// Every variable ends up in exactly one of three places of a [Solution]:
//
//   - Assignments: a unique value was derived.
//   - Underdetermined: the constraints allow more than one value.
//   - Inconsistencies: no value satisfies all constraints. A contradiction
//     with no variable to blame is recorded under [Anonymous].
//
// None of these is an error. Callers inspect the Solution and decide how to
// recover, for example by dropping a constraint and solving again.
//
// When a contradiction is found, every constraint that shares a variable
// with an inconsistent one has all of its variables marked inconsistent
// too, so the report names the whole group of entangled unknowns rather
// than only the first one detected.
//
// # Isolation
//
// [Isolate] rewrites a constraint as name = numerator / denominator. The
// denominator is the coefficient of name, which may itself depend on other
// variables. Isolation fails when name appears non-linearly, inside a
// denominator, or when its coefficient cancels to zero.
package solver
