package srv

import (
	"context"
	"errors"
)

// cleanupService runs release funcs on shutdown and does nothing on start.
type cleanupService struct {
	fns []func() error
}

func (c *cleanupService) Start(context.Context) error {
	return nil
}

func (c *cleanupService) Shutdown(context.Context) error {
	var errs []error
	for _, fn := range c.fns {
		if fn == nil {
			continue
		}
		if err := fn(); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

func NewCleanup(fns ...func() error) Service {
	return &cleanupService{fns: fns}
}
