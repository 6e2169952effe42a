package main

import "github.com/dkoosis/vsut/pkg/unit"

// stack is the subject the demo suite exercises.
type stack struct {
	items []int
}

func (s *stack) push(v int) { s.items = append(s.items, v) }

func (s *stack) pop() (int, bool) {
	if len(s.items) == 0 {
		return 0, false
	}
	v := s.items[len(s.items)-1]
	s.items = s.items[:len(s.items)-1]
	return v, true
}

func (s *stack) size() int { return len(s.items) }

// StackSuite is the suite vsut runs when invoked directly.
type StackSuite struct {
	s *stack
}

func (t *StackSuite) Setup() error {
	t.s = &stack{}
	return nil
}

func (t *StackSuite) Teardown() error {
	t.s = nil
	return nil
}

func (t *StackSuite) Tests() []unit.Test {
	return []unit.Test{
		{Name: "testPushIncreasesLength", Fn: t.testPushIncreasesLength},
		{Name: "testPopReturnsLastPushed", Fn: t.testPopReturnsLastPushed},
		{Name: "testPopOnEmpty", Fn: t.testPopOnEmpty},
	}
}

func (t *StackSuite) testPushIncreasesLength() error {
	t.s.push(1)
	t.s.push(2)
	if n := t.s.size(); n != 2 {
		return unit.Failf("AssertEqual", "expected 2 got %d", n)
	}
	return nil
}

func (t *StackSuite) testPopReturnsLastPushed() error {
	t.s.push(1)
	t.s.push(7)
	v, ok := t.s.pop()
	if !ok {
		return unit.Fail("AssertTrue", "pop reported empty stack")
	}
	if v != 7 {
		return unit.Failf("AssertEqual", "expected 7 got %d", v)
	}
	return nil
}

func (t *StackSuite) testPopOnEmpty() error {
	if _, ok := t.s.pop(); ok {
		return unit.Fail("AssertFalse", "pop on empty stack succeeded")
	}
	return nil
}
