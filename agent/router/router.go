// Package router is the deterministic fallback classifier: a total function
// from free text to a tool and its arguments. No I/O, no state; everything
// the agent path cannot handle lands here.
package router

import "github.com/jaxfield/assistant/agent/contract"

// Route classifies one message. It always returns a decision: action rules
// first, then the query cascade, then the summary default.
func Route(raw string) contract.RouteDecision {
	m := newMessage(raw)

	for _, r := range actionRules {
		if r.when(m) {
			return r.build(m)
		}
	}
	for _, r := range queryRules {
		if r.when(m) {
			return r.build(m)
		}
	}
	return contract.RouteDecision{Tool: contract.ToolGetSummaryStats, Args: contract.Args{}}
}
