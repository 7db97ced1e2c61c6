// Package chain writes box pipelines left to right.
//
// Go has no custom operators, so the three pipeline operators are nested
// calls evaluated from the innermost outwards:
// - "=>": Then, ThenTry, ThenAsync, ThenOpt, ThenTryOpt, ThenAwait, Switch
// - "=>?": ThenMaybe, the only step that lets an absent value through
// - "+": Plus (with a Box) and Join (with another chain)
//
// For example "a + b => m + c => m2" reads
//
//	chain.Then(chain.Plus(chain.Then(chain.Plus(chain.Start(ctx, a), b), fx.Spread(m)), c), fx.Spread(m2))
//
// A failing step skips all later ones and Box returns its error unchanged.
// Ensure and Finally are the usual side-effect and collapse helpers.
package chain
