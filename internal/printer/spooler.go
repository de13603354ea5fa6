package printer

import "context"

type spoolerCandidate struct {
	name  string
	print func(name string, data []byte) error
}

func (c *spoolerCandidate) Kind() Kind    { return KindSpooler }
func (c *spoolerCandidate) Label() string { return c.name }

func (c *spoolerCandidate) Print(ctx context.Context, data []byte) error {
	if err := ctx.Err(); err != nil {
		return writeError(c.name, err)
	}
	if err := c.print(c.name, data); err != nil {
		return err
	}
	return nil
}
