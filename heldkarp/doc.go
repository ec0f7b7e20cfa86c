// Package heldkarp computes the Held–Karp (Lagrangian 1-tree) lower bound of a
// symmetric TSP subproblem by subgradient ascent.
//
// For multipliers λ ∈ ℝⁿ the bound is
//
//	L(λ) = Σ_{e∈T(λ)} c(e) + Σ_v λv·(deg_T(v) − 2)
//
// where T(λ) is a minimum 1-tree under the modified costs c(i,j)+λi+λj and the
// subproblem's required/forbidden edges. Every L(λ) is a lower bound on every
// tour that respects the constraints; ascent moves λ along the degree excess
// deg(v) − 2 to raise it.
//
// Schedule (N = iteration budget, n = size):
//
//   - N = ⌈n²/50⌉ + n + 15 at the root, ⌈n/4⌉ + 5 at warm-started children.
//   - t₀ = W(T₀)/(2n) at the root, mean |λ| at children (W(T₀)/(2n) if all λ are 0).
//   - Δ₀ = 1.5·t₀/N, ΔΔ = t₀/(N² − N); after every iteration t −= Δ, Δ −= ΔΔ.
//     The step reaches zero exactly after N iterations.
//   - Iteration 0: λv += t·(deg(v)−2). Later: λv += t·(0.6·(deg(v)−2) + 0.4·(prev(v)−2)).
//
// The best L over all iterations is returned rounded up, which is still a valid
// bound for integral costs. The tree and multipliers of the best iteration are
// handed back so children can warm-start from them.
//
// Determinism: no RNG; the 1-tree builder breaks ties by EdgeID order, so the
// bound sequence for a given input is reproducible bit for bit.
package heldkarp
