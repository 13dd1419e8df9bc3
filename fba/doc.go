// Package fba formulates and solves the steady-state flux balance problem of a
// small, fixed metabolic network.
//
// The network has 15 flux variables X1..X15 and 13 internal metabolites. Mass
// balance at steady state gives one equality per metabolite with a zero
// right-hand side:
//
//	S · x = 0
//
// where S is the 13×15 stoichiometric matrix. Each flux has an optional lower
// and upper bound. The optimizer maximizes the combined output P + N + Q,
// carried by X12, X14 and X15. The LP solver minimizes, so the objective
// vector holds -1 for those three fluxes and the reported objective value is
// -(P + N + Q).
//
// All coefficients are compiled in. Default returns a fresh copy, and
// Problem.WithBound derives variants for what-if runs:
//
//	res, err := fba.Default().Solve()
//	if err != nil {
//		log.Fatal(err)
//	}
//	if err := res.Err(); err != nil {
//		fmt.Println("no optimum:", err)
//	}
//	fmt.Println(res.Message, res.Values, *res.Objective)
//
// An infeasible or unbounded problem is not an error: Solve reports it through
// Result.Status and leaves Values and Objective nil.
package fba
