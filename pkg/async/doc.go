// Package async runs a computation on its own goroutine and exposes its
// eventual result as a Future.
//
//	future := async.Async(ctx, values, func(ctx context.Context, v Values) (Receipt, error) {
//	    return send(ctx, v)
//	})
//
//	// keep handling events ...
//	receipt, err := future.Await()
//
// A Future completes exactly once. Await blocks, AwaitContext and
// AwaitWithTimeout bound the wait, IsComplete and Done observe completion
// without blocking. Resolved builds a Future that is complete from the start,
// which lets APIs return a Future on paths that finish synchronously.
//
// A context that is already done when Async is called completes the Future
// with the context error and the function is never invoked. Cancelling the
// context later is up to the function to observe. Panics inside the function
// are recovered and reported as ErrPanic so a Future always completes.
package async
