package operator

import "sync"

// ForAll applies fn to every index of [0, n) in parallel, each index
// exactly once. It is the engine's device-wide transform: algorithms use
// it for whole-array steps between frontier operations, e.g. merging
// per-round deletion marks or scaling a result buffer.
//
// fn runs on unspecified lanes in unspecified order; side effects on
// shared state must be atomic or index-exclusive. Returns
// ErrPredicateNil or ErrOptionViolation on invalid input.
func ForAll(n int, fn func(i int), opts ...Option) error {
	if fn == nil {
		return ErrPredicateNil
	}
	o, err := resolve(opts)
	if err != nil {
		return err
	}
	if n <= 0 {
		return nil
	}

	lanes := o.Lanes
	if lanes > n {
		lanes = n
	}
	chunk := (n + lanes - 1) / lanes

	var wg sync.WaitGroup
	for lo := 0; lo < n; lo += chunk {
		hi := lo + chunk
		if hi > n {
			hi = n
		}
		wg.Add(1)
		go func(lo, hi int) {
			defer wg.Done()
			for i := lo; i < hi; i++ {
				fn(i)
			}
		}(lo, hi)
	}
	wg.Wait()
	return nil
}
