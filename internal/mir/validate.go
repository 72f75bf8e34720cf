package mir

import "fmt"

// Validate checks the invariants §8 states for a HIR->MIR lowering result:
// every block has a terminator (Context.SetTerminator ignores a second
// one), every block belongs to the function that lists it at its Seq
// position, and every branch target lies in the same function. Local ids
// are not checked. It is meant to run in tests and behind a debug flag, not
// on every compile -- a violation here is a lowering bug, not a user error.
func (c *Context) Validate() []error {
	var errs []error
	for _, f := range c.Funcs {
		if len(f.Blocks) == 0 {
			errs = append(errs, fmt.Errorf("mir: func %s has no blocks", f.MangledName))
			continue
		}
		for i, bid := range f.Blocks {
			if int(bid) < 1 || int(bid) > len(c.Blocks) {
				errs = append(errs, fmt.Errorf("mir: func %s: block %d out of range", f.MangledName, bid))
				continue
			}
			b := c.Block(bid)
			if b.Func != f.ID {
				errs = append(errs, fmt.Errorf("mir: block %d claims func %d, found under func %d", bid, b.Func, f.ID))
			}
			if int(b.Seq) != i {
				errs = append(errs, fmt.Errorf("mir: block %d has seq %d, found at index %d", bid, b.Seq, i))
			}
			if !b.Terminated() {
				errs = append(errs, fmt.Errorf("mir: func %s: block bb%d has no terminator", f.MangledName, b.Seq))
			}
			if err := validateTerminatorTargets(f, b.Term); err != nil {
				errs = append(errs, fmt.Errorf("mir: func %s: bb%d: %w", f.MangledName, b.Seq, err))
			}
		}
	}
	return errs
}

func validateTerminatorTargets(f Function, t Terminator) error {
	inFunc := func(id BlockID) bool {
		for _, b := range f.Blocks {
			if b == id {
				return true
			}
		}
		return false
	}
	switch t.Kind {
	case TermBranch:
		if !inFunc(t.Target) {
			return fmt.Errorf("branch target %d not in function", t.Target)
		}
	case TermBranchIf:
		if !inFunc(t.Then) || !inFunc(t.Else) {
			return fmt.Errorf("branch-if targets not in function")
		}
	}
	return nil
}
