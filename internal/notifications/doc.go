// Package notifications pushes operational alerts to an ntfy topic.
//
// The kiosk runs unattended, so print and database failures are pushed to
// whoever carries the on-call phone. Without a configured topic every call is
// a noop.
package notifications
