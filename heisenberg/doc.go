// Package heisenberg builds time-dependent Hamiltonians for a
// nearest-neighbor spin chain with a periodically driven transverse
// field.
//
// What:
//
//   - Chain fixes the model parameters: spin count, the three bond
//     couplings Jx, Jy, Jz, and the drive frequency Ω.
//   - Chain.Hamiltonian(t) returns the operator at simulation time t:
//
//     H(t) = Σ_{i=0}^{n−2} (Jx·X_iX_{i+1} + Jy·X_iY_{i+1} + Jz·X_iZ_{i+1})
//     + Σ_{i=0}^{n−1} cos(Ω·t)·X_i
//
//     Exactly 3(n−1) bond terms plus n drive terms, in bond order then
//     site order.
//
// Determinism:
//
//	Hamiltonian is a pure function of (t, chain parameters). Two calls
//	at the same t yield element-wise identical term sequences, which
//	first-order Trotterization depends on.
//
// Options:
//
//   - WithCouplings(jx, jy, jz): bond couplings (defaults 1, 1, 1).
//   - WithOmega(ω): drive angular frequency (default 2π).
//
// Errors:
//
//   - ErrTooFewSpins: a chain needs at least two spins to have a bond.
package heisenberg
