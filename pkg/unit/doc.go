// Package unit is a small sequential test harness.
//
// A suite exposes named test operations, either explicitly through the
// [Suite] interface or implicitly as exported methods whose names begin
// with "Test". [New] discovers them once and assigns dense ids starting at
// zero; [Engine.Run] executes them one at a time:
//
//	type MathSuite struct{ n int }
//
//	func (s *MathSuite) Setup() error { s.n = 1; return nil }
//
//	func (s *MathSuite) Tests() []unit.Test {
//	    return []unit.Test{
//	        {Name: "testAdd", Fn: s.testAdd},
//	    }
//	}
//
//	func (s *MathSuite) testAdd() error {
//	    if s.n+1 != 2 {
//	        return unit.Failf("AssertEqual", "expected 2 got %d", s.n+1)
//	    }
//	    return nil
//	}
//
// # Outcomes
//
// Each test body yields one of three outcomes:
//
//   - success: Teardown runs and the next test starts
//   - assertion failure (*AssertionFailure returned or panicked): a
//     FailureRecord is appended, Teardown is skipped, the run continues
//   - fault (any other error or panic): Run stops and returns a *FaultError
//
// Setup and Teardown follow the same rules: an assertion failure from either
// is recorded against the current test, anything else is a fault. A nil
// *AssertionFailure counts as success, so assertion helpers may return
// their concrete pointer type.
//
// # Discovery order
//
// Registered tests keep registration order. Reflected methods are ordered
// alphabetically, which is the order Go reports a method set in.
package unit
