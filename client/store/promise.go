package store

import (
	"context"

	"pickup/client/async"
	"pickup/core/logger"
)

// Promise awaits future payloads. It dispatches a pending marker, waits, and
// then dispatches either the resolved value or the failure.
func Promise(next DispatchFunc) DispatchFunc {
	return func(ctx context.Context, action Action) (Action, error) {
		future, ok := action.Payload.(async.Awaiter)
		if !ok {
			return next(ctx, action)
		}

		if _, err := next(ctx, Action{Type: action.Type, Pending: true}); err != nil {
			return action, err
		}

		value, err := future.AwaitAny(ctx)
		if err != nil {
			logger.Warn("action rejected", "type", string(action.Type), "error", err)
			failed := Action{Type: action.Type, Err: err}
			if _, derr := next(ctx, failed); derr != nil {
				return failed, derr
			}
			return failed, err
		}

		return next(ctx, Action{Type: action.Type, Payload: value})
	}
}

// Logging records each action type as it passes.
func Logging(next DispatchFunc) DispatchFunc {
	return func(ctx context.Context, action Action) (Action, error) {
		logger.Debug("dispatch", "type", string(action.Type), "pending", action.Pending)
		return next(ctx, action)
	}
}
