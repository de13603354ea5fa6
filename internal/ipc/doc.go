// Package ipc connects the CLI to the daemon over JSON-RPC on a Unix domain
// socket.
//
// The daemon registers one service named Loket; the client wraps each method
// with a typed call. Request and response types carry only plain data so the
// wire format stays stable.
package ipc
