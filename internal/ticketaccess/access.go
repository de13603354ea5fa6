package ticketaccess

import (
	"context"

	"loket/internal/daemon"
	"loket/internal/ipc"
)

// Access provides ticket operations regardless of IPC or direct daemon
// backing.
type Access interface {
	Counts(ctx context.Context) (map[string]int, error)
	Create(ctx context.Context, counter, category string) (ipc.Ticket, error)
	Print(ctx context.Context, req ipc.PrintTicketRequest) (string, error)
	List(ctx context.Context) ([]ipc.Ticket, error)
	Describe(ctx context.Context, code string) (*ipc.Ticket, error)
	TestNotification(ctx context.Context) (bool, string, error)
}

// NewIPCAccess returns an Access backed by daemon IPC.
func NewIPCAccess(client *ipc.Client) Access {
	return &ipcAccess{client: client}
}

// NewDirectAccess returns an Access backed by an in-process daemon. Used
// when no daemon is listening on the socket.
func NewDirectAccess(d *daemon.Daemon) Access {
	return &directAccess{daemon: d}
}

type ipcAccess struct {
	client *ipc.Client
}

func (a *ipcAccess) Counts(_ context.Context) (map[string]int, error) {
	resp, err := a.client.Counts()
	if err != nil {
		return nil, err
	}
	return resp.Counts, nil
}

func (a *ipcAccess) Create(_ context.Context, counter, category string) (ipc.Ticket, error) {
	resp, err := a.client.CreateTicket(counter, category)
	if err != nil {
		return ipc.Ticket{}, err
	}
	return resp.Ticket, nil
}

func (a *ipcAccess) Print(_ context.Context, req ipc.PrintTicketRequest) (string, error) {
	resp, err := a.client.PrintTicket(req)
	if err != nil {
		return "", err
	}
	return resp.Message, nil
}

func (a *ipcAccess) List(_ context.Context) ([]ipc.Ticket, error) {
	resp, err := a.client.TicketList()
	if err != nil {
		return nil, err
	}
	return resp.Tickets, nil
}

func (a *ipcAccess) Describe(_ context.Context, code string) (*ipc.Ticket, error) {
	resp, err := a.client.TicketDescribe(code)
	if err != nil {
		return nil, err
	}
	if resp == nil || !resp.Found {
		return nil, nil
	}
	return &resp.Ticket, nil
}

func (a *ipcAccess) TestNotification(_ context.Context) (bool, string, error) {
	resp, err := a.client.TestNotification()
	if err != nil {
		return false, "", err
	}
	return resp.Sent, resp.Message, nil
}

type directAccess struct {
	daemon *daemon.Daemon
}

func (a *directAccess) Counts(ctx context.Context) (map[string]int, error) {
	return a.daemon.CurrentCounts(ctx)
}

func (a *directAccess) Create(ctx context.Context, counter, category string) (ipc.Ticket, error) {
	issued, err := a.daemon.CreateTicket(ctx, counter, category)
	if err != nil {
		return ipc.Ticket{}, err
	}
	return ipc.FromTicket(issued), nil
}

func (a *directAccess) Print(ctx context.Context, req ipc.PrintTicketRequest) (string, error) {
	return a.daemon.PrintTicket(ctx, daemon.PrintRequest{
		Code:      req.Code,
		Counter:   req.Counter,
		Category:  req.Category,
		CreatedAt: req.CreatedAt,
	})
}

func (a *directAccess) List(ctx context.Context) ([]ipc.Ticket, error) {
	tickets, err := a.daemon.ListTickets(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]ipc.Ticket, 0, len(tickets))
	for i := range tickets {
		out = append(out, ipc.FromTicket(&tickets[i]))
	}
	return out, nil
}

func (a *directAccess) Describe(ctx context.Context, code string) (*ipc.Ticket, error) {
	found, err := a.daemon.GetTicket(ctx, code)
	if err != nil {
		return nil, err
	}
	if found == nil {
		return nil, nil
	}
	dto := ipc.FromTicket(found)
	return &dto, nil
}

func (a *directAccess) TestNotification(ctx context.Context) (bool, string, error) {
	if err := a.daemon.TestNotification(ctx); err != nil {
		return false, err.Error(), nil
	}
	return true, "notification sent", nil
}
