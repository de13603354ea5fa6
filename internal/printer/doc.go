// Package printer discovers thermal print devices and dispatches encoded
// jobs to them.
//
// Discovery is lazy: the resolver yields candidates in fallback order and the
// dispatcher stops at the first device that accepts the job, so queues and
// ports are only probed until one works.
package printer
