package ipc

import (
	"net"
	"net/rpc"
	"net/rpc/jsonrpc"
	"time"
)

// Client provides RPC access to the daemon.
type Client struct {
	conn   net.Conn
	client *rpc.Client
}

// Dial connects to the IPC server at the given socket path.
func Dial(path string) (*Client, error) {
	conn, err := net.DialTimeout("unix", path, 2*time.Second)
	if err != nil {
		return nil, err
	}
	rpcClient := rpc.NewClientWithCodec(jsonrpc.NewClientCodec(conn))
	return &Client{conn: conn, client: rpcClient}, nil
}

// Close closes the underlying connection.
func (c *Client) Close() error {
	if c.client != nil {
		_ = c.client.Close()
	}
	if c.conn != nil {
		return c.conn.Close()
	}
	return nil
}

// Status retrieves the daemon status.
func (c *Client) Status() (*StatusResponse, error) {
	var resp StatusResponse
	if err := c.client.Call("Loket.Status", StatusRequest{}, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// Counts retrieves today's per-counter totals.
func (c *Client) Counts() (*CountsResponse, error) {
	var resp CountsResponse
	if err := c.client.Call("Loket.Counts", CountsRequest{}, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// CreateTicket allocates the next number for a counter.
func (c *Client) CreateTicket(counter, category string) (*CreateTicketResponse, error) {
	var resp CreateTicketResponse
	req := CreateTicketRequest{Counter: counter, Category: category}
	if err := c.client.Call("Loket.CreateTicket", req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// PrintTicket sends one receipt to the print pipeline.
func (c *Client) PrintTicket(req PrintTicketRequest) (*PrintTicketResponse, error) {
	var resp PrintTicketResponse
	if err := c.client.Call("Loket.PrintTicket", req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// TicketList returns today's tickets.
func (c *Client) TicketList() (*TicketListResponse, error) {
	var resp TicketListResponse
	if err := c.client.Call("Loket.TicketList", TicketListRequest{}, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// TicketDescribe looks up one ticket by code.
func (c *Client) TicketDescribe(code string) (*TicketDescribeResponse, error) {
	var resp TicketDescribeResponse
	if err := c.client.Call("Loket.TicketDescribe", TicketDescribeRequest{Code: code}, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// LogTail returns log lines from the daemon.
func (c *Client) LogTail(req LogTailRequest) (*LogTailResponse, error) {
	var resp LogTailResponse
	if err := c.client.Call("Loket.LogTail", req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// TestNotification triggers a notification test via the daemon.
func (c *Client) TestNotification() (*TestNotificationResponse, error) {
	var resp TestNotificationResponse
	if err := c.client.Call("Loket.TestNotification", TestNotificationRequest{}, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// Stop asks the daemon process to shut down.
func (c *Client) Stop() (*StopResponse, error) {
	var resp StopResponse
	if err := c.client.Call("Loket.Stop", StopRequest{}, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}
